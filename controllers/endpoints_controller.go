package controllers

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
)

// EndpointsController serves the endpoint catalogue at GET /api. The
// document is loaded once at boot and handed in here, never read from a
// package global.
type EndpointsController struct {
	doc json.RawMessage
}

// NewEndpointsController creates an EndpointsController around a loaded
// catalogue document.
func NewEndpointsController(doc json.RawMessage) *EndpointsController {
	return &EndpointsController{doc: doc}
}

// LoadEndpoints reads and validates the catalogue document from disk.
func LoadEndpoints(path string) (json.RawMessage, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read endpoints document: %w", err)
	}
	if !json.Valid(b) {
		return nil, fmt.Errorf("endpoints document %s is not valid JSON", path)
	}
	return json.RawMessage(b), nil
}

// Get serves the catalogue verbatim.
func (e *EndpointsController) Get(ctx *gin.Context) {
	ctx.Data(200, "application/json; charset=utf-8", e.doc)
}
