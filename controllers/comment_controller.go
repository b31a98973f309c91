package controllers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pressbox/pressbox/store"
	"github.com/pressbox/pressbox/utils"
)

// CommentController serves comment listing, insertion and deletion.
type CommentController struct {
	store store.Store
}

// NewCommentController creates a new CommentController instance.
func NewCommentController(s store.Store) *CommentController {
	return &CommentController{store: s}
}

// ListForArticle returns an article's comments, most recent first. An
// article with no comments lists as an empty array, not an error.
func (c *CommentController) ListForArticle(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("article_id"))
	if err != nil {
		_ = ctx.Error(store.ErrBadRequest)
		return
	}

	comments, err := c.store.ListComments(ctx.Request.Context(), id)
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	utils.OK(ctx, gin.H{"comments": comments})
}

// Create inserts a comment under an article. Unknown fields in the request
// body are ignored; an unknown article or username surfaces from the store
// as a foreign-key violation and maps to 404.
func (c *CommentController) Create(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("article_id"))
	if err != nil {
		_ = ctx.Error(store.ErrBadRequest)
		return
	}

	var req struct {
		Username string `json:"username" binding:"required"`
		Body     string `json:"body" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		_ = ctx.Error(store.ErrBadRequest)
		return
	}

	body := utils.Sanitize(req.Body)
	if strings.TrimSpace(body) == "" {
		_ = ctx.Error(store.ErrBadRequest)
		return
	}

	comment, err := c.store.InsertComment(ctx.Request.Context(), id, req.Username, body)
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	utils.InvalidateByPrefix(articleCachePrefix)
	utils.Created(ctx, gin.H{"comment": comment})
}

// Delete removes a comment by id, answering 204 with no body.
func (c *CommentController) Delete(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("comment_id"))
	if err != nil {
		_ = ctx.Error(store.ErrBadRequest)
		return
	}

	if err := c.store.DeleteComment(ctx.Request.Context(), id); err != nil {
		_ = ctx.Error(err)
		return
	}

	utils.InvalidateByPrefix(articleCachePrefix)
	utils.NoContent(ctx)
}
