package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticleQuery_Validate(t *testing.T) {
	tests := []struct {
		name    string
		query   ArticleQuery
		wantErr bool
	}{
		{name: "zero value", query: ArticleQuery{}},
		{name: "topic only", query: ArticleQuery{Topic: "coding"}},
		{name: "allowed sort", query: ArticleQuery{SortBy: "votes"}},
		{name: "aggregate sort", query: ArticleQuery{SortBy: "comment_count"}},
		{name: "order lower", query: ArticleQuery{Order: "asc"}},
		{name: "order upper", query: ArticleQuery{Order: "DESC"}},
		{name: "sort outside allow-list", query: ArticleQuery{SortBy: "body"}, wantErr: true},
		{name: "sort injection attempt", query: ArticleQuery{SortBy: "votes; DROP TABLE articles"}, wantErr: true},
		{name: "bad order", query: ArticleQuery{Order: "sideways"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.query.Validate()
			if tt.wantErr {
				assert.Equal(t, ErrBadRequest, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestArticleQuery_ToSQL(t *testing.T) {
	tests := []struct {
		name     string
		query    ArticleQuery
		wantSQL  string
		wantArgs []interface{}
	}{
		{
			name:  "defaults",
			query: ArticleQuery{},
			wantSQL: articleListSelect +
				" GROUP BY articles.article_id ORDER BY articles.created_at DESC",
		},
		{
			name:  "topic filter is parameterized",
			query: ArticleQuery{Topic: "cats"},
			wantSQL: articleListSelect +
				" WHERE articles.topic = ? GROUP BY articles.article_id ORDER BY articles.created_at DESC",
			wantArgs: []interface{}{"cats"},
		},
		{
			name:  "explicit sort and order",
			query: ArticleQuery{SortBy: "votes", Order: "asc"},
			wantSQL: articleListSelect +
				" GROUP BY articles.article_id ORDER BY articles.votes ASC",
		},
		{
			name:  "order is case-insensitive",
			query: ArticleQuery{SortBy: "title", Order: "ASC"},
			wantSQL: articleListSelect +
				" GROUP BY articles.article_id ORDER BY articles.title ASC",
		},
		{
			name:  "comment_count sorts by the aggregate",
			query: ArticleQuery{SortBy: "comment_count"},
			wantSQL: articleListSelect +
				" GROUP BY articles.article_id ORDER BY COUNT(comments.comment_id) ASC",
		},
		{
			name:  "sort without order defaults ascending",
			query: ArticleQuery{SortBy: "author"},
			wantSQL: articleListSelect +
				" GROUP BY articles.article_id ORDER BY articles.author ASC",
		},
		{
			name:  "order without sort keeps created_at",
			query: ArticleQuery{Order: "asc"},
			wantSQL: articleListSelect +
				" GROUP BY articles.article_id ORDER BY articles.created_at ASC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.query.Validate())
			sql, args := tt.query.ToSQL()
			assert.Equal(t, tt.wantSQL, sql)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestArticleQuery_ToSQL_NeverEmbedsTopic(t *testing.T) {
	sql, args := ArticleQuery{Topic: "'; DROP TABLE articles; --"}.ToSQL()
	assert.NotContains(t, sql, "DROP TABLE")
	require.Len(t, args, 1)
	assert.Equal(t, "'; DROP TABLE articles; --", args[0])
}
