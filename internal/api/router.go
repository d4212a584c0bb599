package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/news-forum-api/internal/config"
	"github.com/news-forum-api/internal/service"
	"github.com/rs/zerolog"
)

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	router := gin.New()

	// Middleware. errorMiddleware sits inside recovery so a panic still
	// gets the generic 500 body.
	router.Use(recoveryMiddleware(log))
	router.Use(requestIDMiddleware())
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware(cfg.CORS))
	router.Use(timeoutMiddleware(cfg.Server.RequestTimeout))
	router.Use(errorMiddleware(log))

	// Handlers
	articleHandler := NewArticleHandler(services, log)
	commentHandler := NewCommentHandler(services, log)

	// Health check
	router.GET("/health", healthCheck(services))
	router.GET("/metrics", metricsHandler(services))

	api := router.Group("/api")
	{
		api.GET("", getEndpoints)
		api.GET("/topics", getTopics(services))
		api.GET("/users", getUsers(services))

		articles := api.Group("/articles")
		{
			articles.GET("", articleHandler.GetArticles)
			articles.GET("/:article_id", articleHandler.GetArticleByID)
			articles.PATCH("/:article_id", articleHandler.PatchArticleByID)
			articles.GET("/:article_id/comments", commentHandler.GetCommentsByArticleID)
			articles.POST("/:article_id/comments", commentHandler.PostComment)
		}

		api.DELETE("/comments/:comment_id", commentHandler.DeleteCommentByID)
	}

	router.NoRoute(notFoundHandler)
	router.NoMethod(notFoundHandler)

	return router
}

// healthCheck returns the health status
func healthCheck(services *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		status, code := "healthy", http.StatusOK
		if err := services.Stats.Health(c.Request.Context()); err != nil {
			status, code = "unhealthy", http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status":    status,
			"timestamp": time.Now().Format(time.RFC3339),
			"service":   "news-forum-api",
		})
	}
}

// metricsHandler returns row counts per table
func metricsHandler(services *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		counts, err := services.Stats.Counts(c.Request.Context())
		if err != nil {
			c.Error(err)
			return
		}
		pool := services.Stats.Pool()
		c.JSON(http.StatusOK, gin.H{
			"database": counts,
			"pool": gin.H{
				"open_connections": pool.OpenConnections,
				"in_use":           pool.InUse,
				"idle":             pool.Idle,
				"wait_count":       pool.WaitCount,
			},
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}
