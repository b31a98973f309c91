package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK writes a 200 with the given envelope, e.g. gin.H{"articles": articles}.
func OK(ctx *gin.Context, envelope interface{}) {
	ctx.JSON(http.StatusOK, envelope)
}

// Created writes a 201 with the given envelope.
func Created(ctx *gin.Context, envelope interface{}) {
	ctx.JSON(http.StatusCreated, envelope)
}

// NoContent writes a 204 with no body.
func NoContent(ctx *gin.Context) {
	ctx.Status(http.StatusNoContent)
}

// Message writes the error envelope {message: <string>}.
func Message(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, gin.H{"message": message})
}
