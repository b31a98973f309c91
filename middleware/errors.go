package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/pressbox/pressbox/store"
	"github.com/pressbox/pressbox/utils"
)

// pgErrorStatus is the closed translation table from Postgres error codes
// to HTTP statuses. Anything outside it is an unhandled store failure.
var pgErrorStatus = map[string]int{
	"22P02": http.StatusBadRequest, // invalid_text_representation: malformed input type
	"23502": http.StatusBadRequest, // not_null_violation: missing required column
	"42703": http.StatusBadRequest, // undefined_column: unknown column reference
	"23503": http.StatusNotFound,   // foreign_key_violation: unknown article or author
}

// ErrorHandler turns errors the handlers attach to the context into the
// API's error envelope. Handlers never write error responses themselves.
func ErrorHandler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Next()

		if len(ctx.Errors) == 0 {
			return
		}
		err := ctx.Errors.Last().Err
		status, message := Classify(err)
		if status == http.StatusInternalServerError && utils.Sugar != nil {
			utils.Sugar.Errorw("unhandled store error",
				"path", ctx.Request.URL.Path,
				"method", ctx.Request.Method,
				"error", err,
			)
		}
		utils.Message(ctx, status, message)
	}
}

// Classify maps an error to the response status and message. Domain errors
// carry their own status; store-level constraint violations go through the
// code table; everything else is a 500 "error".
func Classify(err error) (int, string) {
	var reqErr *store.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Status, reqErr.Message
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if status, ok := pgErrorStatus[pgErr.Code]; ok {
			return status, statusMessage(status)
		}
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return http.StatusNotFound, statusMessage(http.StatusNotFound)
	}

	return http.StatusInternalServerError, "error"
}

func statusMessage(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "Bad Request"
	case http.StatusNotFound:
		return "Not Found"
	default:
		return "error"
	}
}
