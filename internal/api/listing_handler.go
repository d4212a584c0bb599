package api

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/news-forum-api/internal/service"
)

//go:embed endpoints.json
var endpointsJSON []byte

// getEndpoints handles GET /api
func getEndpoints(c *gin.Context) {
	c.Data(http.StatusOK, "application/json; charset=utf-8", endpointsJSON)
}

// getTopics handles GET /api/topics
func getTopics(services *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		topics, err := services.Topic.FetchAllTopics(c.Request.Context())
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"topic": topics})
	}
}

// getUsers handles GET /api/users
func getUsers(services *service.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := services.User.FetchAllUsers(c.Request.Context())
		if err != nil {
			c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"users": users})
	}
}
