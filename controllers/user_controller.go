package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/pressbox/pressbox/store"
	"github.com/pressbox/pressbox/utils"
)

// UserController serves the read-only user list.
type UserController struct {
	store store.Store
}

// NewUserController creates a new UserController instance.
func NewUserController(s store.Store) *UserController {
	return &UserController{store: s}
}

// List returns every user.
func (u *UserController) List(ctx *gin.Context) {
	users, err := u.store.ListUsers(ctx.Request.Context())
	if err != nil {
		_ = ctx.Error(err)
		return
	}
	utils.OK(ctx, gin.H{"users": users})
}
