package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/pressbox/pressbox/store"
	"github.com/pressbox/pressbox/utils"
)

// TopicController serves the read-only topic reference data.
type TopicController struct {
	store store.Store
}

// NewTopicController creates a new TopicController instance.
func NewTopicController(s store.Store) *TopicController {
	return &TopicController{store: s}
}

// List returns every topic in store order.
func (t *TopicController) List(ctx *gin.Context) {
	topics, err := t.store.ListTopics(ctx.Request.Context())
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	utils.OK(ctx, gin.H{"topics": topics})
}
