package store

import "strings"

// ArticleQuery carries the listing parameters as typed values. Zero values
// mean "not supplied": no topic filter, created_at descending. An explicit
// sort_by without an order sorts ascending.
type ArticleQuery struct {
	Topic  string
	SortBy string
	Order  string
}

// articleSortColumns is the allow-list of sortable keys. Values are the SQL
// expressions actually placed in ORDER BY; user input only ever selects a
// map entry, it is never written into the statement.
var articleSortColumns = map[string]string{
	"article_id":      "articles.article_id",
	"title":           "articles.title",
	"topic":           "articles.topic",
	"author":          "articles.author",
	"created_at":      "articles.created_at",
	"votes":           "articles.votes",
	"article_img_url": "articles.article_img_url",
	"comment_count":   "COUNT(comments.comment_id)",
}

var sortDirections = map[string]string{
	"asc":  "ASC",
	"desc": "DESC",
}

// Validate rejects sort keys outside the allow-list and orders other than
// asc/desc (case-insensitive). Controllers call this before touching the
// store so a bad parameter never reaches the database.
func (q ArticleQuery) Validate() error {
	if q.SortBy != "" {
		if _, ok := articleSortColumns[q.SortBy]; !ok {
			return ErrBadRequest
		}
	}
	if q.Order != "" {
		if _, ok := sortDirections[strings.ToLower(q.Order)]; !ok {
			return ErrBadRequest
		}
	}
	return nil
}

const articleListSelect = `SELECT articles.article_id, articles.title, articles.topic, articles.author, ` +
	`articles.created_at, articles.votes, articles.article_img_url, ` +
	`COUNT(comments.comment_id)::text AS comment_count ` +
	`FROM articles LEFT JOIN comments ON comments.article_id = articles.article_id`

// ToSQL builds the single parameterized listing statement. It assumes the
// query passed Validate; unknown keys fall back to the defaults.
func (q ArticleQuery) ToSQL() (string, []interface{}) {
	var b strings.Builder
	b.WriteString(articleListSelect)

	var args []interface{}
	if q.Topic != "" {
		b.WriteString(" WHERE articles.topic = ?")
		args = append(args, q.Topic)
	}

	b.WriteString(" GROUP BY articles.article_id")

	column, ok := articleSortColumns[q.SortBy]
	if !ok {
		column = articleSortColumns["created_at"]
	}
	direction, ok := sortDirections[strings.ToLower(q.Order)]
	if !ok {
		// created_at alone lists newest first; a chosen sort key without
		// an order reads low to high.
		direction = "ASC"
		if q.SortBy == "" {
			direction = "DESC"
		}
	}
	b.WriteString(" ORDER BY " + column + " " + direction)

	return b.String(), args
}
