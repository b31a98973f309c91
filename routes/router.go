package routes

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pressbox/pressbox/config"
	"github.com/pressbox/pressbox/controllers"
	"github.com/pressbox/pressbox/middleware"
	"github.com/pressbox/pressbox/store"
	"github.com/pressbox/pressbox/utils"
)

// SetupRouter wires routes, middlewares, and controllers. The endpoint
// catalogue document is passed in explicitly from boot.
func SetupRouter(s store.Store, endpointsDoc json.RawMessage) *gin.Engine {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Access log and panic recovery go through zap; without a configured
	// access-log path the requests still flow, just unlogged.
	accessLogger := zap.NewNop()
	if cfg.GinPath != "" {
		if gl, err := utils.NewRollingFileLogger(cfg.GinPath, cfg.LogLevel, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress); err == nil {
			accessLogger = gl
		}
	}
	r.Use(middleware.RequestID())
	r.Use(utils.Ginzap(accessLogger, time.RFC3339, true))
	r.Use(utils.RecoveryWithZap(accessLogger, false))
	r.Use(middleware.ErrorHandler())

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	r.GET("/health", func(ctx *gin.Context) {
		utils.OK(ctx, gin.H{"status": "ok"})
	})

	endpointsController := controllers.NewEndpointsController(endpointsDoc)
	topicController := controllers.NewTopicController(s)
	articleController := controllers.NewArticleController(s)
	commentController := controllers.NewCommentController(s)
	userController := controllers.NewUserController(s)

	api := r.Group("/api")
	api.GET("", endpointsController.Get)
	api.GET("/topics", topicController.List)
	api.GET("/articles", articleController.List)
	api.GET("/articles/:article_id", articleController.Get)
	api.GET("/articles/:article_id/comments", commentController.ListForArticle)
	api.GET("/users", userController.List)

	mutations := api.Group("")
	mutations.Use(middleware.RateLimitMiddleware())
	mutations.POST("/articles/:article_id/comments", commentController.Create)
	mutations.PATCH("/articles/:article_id", articleController.UpdateVotes)
	mutations.DELETE("/comments/:comment_id", commentController.Delete)

	r.NoRoute(func(ctx *gin.Context) {
		utils.Message(ctx, http.StatusNotFound, "Not Found")
	})

	return r
}
