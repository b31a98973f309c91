package controllers

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pressbox/pressbox/store"
	"github.com/pressbox/pressbox/utils"
)

// articleCachePrefix covers every cached article response; mutations that
// can change an article or its comment_count invalidate the whole prefix.
const articleCachePrefix = "cache:articles:"

// ArticleController serves article listing, retrieval and vote updates.
type ArticleController struct {
	store store.Store
}

// NewArticleController creates a new ArticleController instance.
func NewArticleController(s store.Store) *ArticleController {
	return &ArticleController{store: s}
}

// List returns articles filtered and sorted per the query string. Sort key
// and order are validated against the allow-list before the store is
// touched.
func (a *ArticleController) List(ctx *gin.Context) {
	q := store.ArticleQuery{
		Topic:  ctx.Query("topic"),
		SortBy: ctx.Query("sort_by"),
		Order:  ctx.Query("order"),
	}
	if err := q.Validate(); err != nil {
		_ = ctx.Error(err)
		return
	}

	cacheKey := fmt.Sprintf("%slist:topic=%s:sort=%s:order=%s", articleCachePrefix, q.Topic, q.SortBy, q.Order)
	if b, ok := utils.CacheGetBytes(cacheKey); ok {
		ctx.Data(200, "application/json; charset=utf-8", b)
		return
	}

	articles, err := a.store.ListArticles(ctx.Request.Context(), q)
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	envelope := gin.H{"articles": articles}
	utils.CacheSetJSON(cacheKey, envelope, time.Hour)
	utils.OK(ctx, envelope)
}

// Get returns a single article by id, including body and comment_count.
func (a *ArticleController) Get(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("article_id"))
	if err != nil {
		_ = ctx.Error(store.ErrBadRequest)
		return
	}

	cacheKey := articleCachePrefix + "detail:" + strconv.Itoa(id)
	if b, ok := utils.CacheGetBytes(cacheKey); ok {
		ctx.Data(200, "application/json; charset=utf-8", b)
		return
	}

	article, err := a.store.GetArticle(ctx.Request.Context(), id)
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	envelope := gin.H{"article": article}
	utils.CacheSetJSON(cacheKey, envelope, time.Hour)
	utils.OK(ctx, envelope)
}

// UpdateVotes applies a relative vote increment to an article and returns
// the updated row.
func (a *ArticleController) UpdateVotes(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("article_id"))
	if err != nil {
		_ = ctx.Error(store.ErrBadRequest)
		return
	}

	var req struct {
		IncVotes *int `json:"inc_votes" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		_ = ctx.Error(store.ErrBadRequest)
		return
	}

	article, err := a.store.UpdateArticleVotes(ctx.Request.Context(), id, *req.IncVotes)
	if err != nil {
		_ = ctx.Error(err)
		return
	}

	utils.InvalidateByPrefix(articleCachePrefix)
	utils.Created(ctx, gin.H{"article": article})
}
