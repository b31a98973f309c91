package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/pressbox/pressbox/models"
)

// Postgres implements Store on top of a gorm connection. Reads that need
// the comment-count aggregate and the two single-statement mutations go
// through raw parameterized SQL; the plain table scans use gorm's builder.
type Postgres struct {
	db *gorm.DB
}

// NewPostgres wraps an initialized gorm DB.
func NewPostgres(db *gorm.DB) *Postgres {
	return &Postgres{db: db}
}

func (s *Postgres) ListTopics(ctx context.Context) ([]models.Topic, error) {
	var topics []models.Topic
	if err := s.db.WithContext(ctx).Find(&topics).Error; err != nil {
		return nil, err
	}
	return topics, nil
}

func (s *Postgres) ListArticles(ctx context.Context, q ArticleQuery) ([]models.Article, error) {
	sql, args := q.ToSQL()
	articles := []models.Article{}
	if err := s.db.WithContext(ctx).Raw(sql, args...).Scan(&articles).Error; err != nil {
		return nil, err
	}

	// An empty result under a topic filter is only an error when the slug
	// itself is unknown; a real topic with no articles lists as empty.
	if len(articles) == 0 && q.Topic != "" {
		var n int64
		if err := s.db.WithContext(ctx).Model(&models.Topic{}).Where("slug = ?", q.Topic).Count(&n).Error; err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, ErrNotFound
		}
	}
	return articles, nil
}

const articleByIDSQL = `SELECT articles.article_id, articles.title, articles.topic, articles.author, ` +
	`articles.body, articles.created_at, articles.votes, articles.article_img_url, ` +
	`COUNT(comments.comment_id)::text AS comment_count ` +
	`FROM articles LEFT JOIN comments ON comments.article_id = articles.article_id ` +
	`WHERE articles.article_id = ? GROUP BY articles.article_id`

func (s *Postgres) GetArticle(ctx context.Context, articleID int) (*models.Article, error) {
	var article models.Article
	tx := s.db.WithContext(ctx).Raw(articleByIDSQL, articleID).Scan(&article)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &article, nil
}

func (s *Postgres) ListComments(ctx context.Context, articleID int) ([]models.Comment, error) {
	if err := s.articleExists(ctx, articleID); err != nil {
		return nil, err
	}
	comments := []models.Comment{}
	err := s.db.WithContext(ctx).
		Where("article_id = ?", articleID).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

const insertCommentSQL = `INSERT INTO comments (article_id, author, body) VALUES (?, ?, ?) ` +
	`RETURNING comment_id, body, article_id, author, votes, created_at`

// InsertComment relies on the store's defaults for votes and created_at and
// on its foreign keys for existence: an unknown article or author surfaces
// as a foreign-key violation, which the error middleware maps to 404.
func (s *Postgres) InsertComment(ctx context.Context, articleID int, author, body string) (*models.Comment, error) {
	var comment models.Comment
	tx := s.db.WithContext(ctx).Raw(insertCommentSQL, articleID, author, body).Scan(&comment)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &comment, nil
}

const updateVotesSQL = `UPDATE articles SET votes = votes + ? WHERE article_id = ? ` +
	`RETURNING article_id, title, topic, author, body, created_at, votes, article_img_url`

// UpdateArticleVotes applies the increment in one statement so concurrent
// updates serialize at the row store. Negative increments pass through
// unclamped.
func (s *Postgres) UpdateArticleVotes(ctx context.Context, articleID, incVotes int) (*models.Article, error) {
	var article models.Article
	tx := s.db.WithContext(ctx).Raw(updateVotesSQL, incVotes, articleID).Scan(&article)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, ErrArticleNotFound
	}
	return &article, nil
}

func (s *Postgres) DeleteComment(ctx context.Context, commentID int) error {
	tx := s.db.WithContext(ctx).Exec(`DELETE FROM comments WHERE comment_id = ?`, commentID)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrCommentNotFound
	}
	return nil
}

func (s *Postgres) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Postgres) articleExists(ctx context.Context, articleID int) error {
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.Article{}).Where("article_id = ?", articleID).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
