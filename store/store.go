package store

import (
	"context"
	"net/http"

	"github.com/pressbox/pressbox/models"
)

// RequestError is a failure the API contract expects: a missing row, a bad
// filter, a malformed id. Handlers forward these untouched and the error
// middleware writes Status and Message as-is.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string { return e.Message }

var (
	ErrBadRequest = &RequestError{Status: http.StatusBadRequest, Message: "Bad Request"}
	ErrNotFound   = &RequestError{Status: http.StatusNotFound, Message: "Not Found"}

	// The two mutations name their missing resource in the 404 body.
	ErrArticleNotFound = &RequestError{Status: http.StatusNotFound, Message: "article does not exist"}
	ErrCommentNotFound = &RequestError{Status: http.StatusNotFound, Message: "comment does not exist"}
)

// Store is the data-access surface the controllers depend on.
type Store interface {
	ListTopics(ctx context.Context) ([]models.Topic, error)
	ListArticles(ctx context.Context, q ArticleQuery) ([]models.Article, error)
	GetArticle(ctx context.Context, articleID int) (*models.Article, error)
	ListComments(ctx context.Context, articleID int) ([]models.Comment, error)
	InsertComment(ctx context.Context, articleID int, author, body string) (*models.Comment, error)
	UpdateArticleVotes(ctx context.Context, articleID, incVotes int) (*models.Article, error)
	DeleteComment(ctx context.Context, commentID int) error
	ListUsers(ctx context.Context) ([]models.User, error)
}
