package controllers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEndpoints(t *testing.T) {
	dir := t.TempDir()

	t.Run("loads a valid document", func(t *testing.T) {
		path := filepath.Join(dir, "endpoints.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"GET /api":{"description":"catalogue"}}`), 0o644))

		doc, err := LoadEndpoints(path)
		require.NoError(t, err)
		assert.JSONEq(t, `{"GET /api":{"description":"catalogue"}}`, string(doc))
	})

	t.Run("rejects a missing file", func(t *testing.T) {
		_, err := LoadEndpoints(filepath.Join(dir, "nope.json"))
		assert.Error(t, err)
	})

	t.Run("rejects invalid JSON", func(t *testing.T) {
		path := filepath.Join(dir, "broken.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"GET /api":`), 0o644))

		_, err := LoadEndpoints(path)
		assert.Error(t, err)
	})
}

func TestEndpointsControllerServesDocVerbatim(t *testing.T) {
	gin.SetMode(gin.TestMode)
	doc := []byte(`{"GET /api/topics":{"description":"serves an array of all topics"}}`)

	r := gin.New()
	r.GET("/api", NewEndpointsController(doc).Get)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, string(doc), w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
}
