package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/news-forum-api/internal/apperr"
	"github.com/news-forum-api/internal/models"
	"github.com/news-forum-api/internal/service"
	"github.com/rs/zerolog"
)

const msgCommentFieldsRequired = "Username or body are required fields"

// CommentHandler handles comment endpoints
type CommentHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(services *service.Services, log zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		services: services,
		log:      log.With().Str("handler", "comments").Logger(),
	}
}

// GetCommentsByArticleID handles GET /api/articles/:article_id/comments
func (h *CommentHandler) GetCommentsByArticleID(c *gin.Context) {
	comments, err := h.services.Comment.FetchCommentsByArticleID(c.Request.Context(), c.Param("article_id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// PostComment handles POST /api/articles/:article_id/comments
// Body: {"username": "...", "body": "..."}
func (h *CommentHandler) PostComment(c *gin.Context) {
	var req models.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperr.Validation(msgCommentFieldsRequired))
		return
	}

	comment, err := h.services.Comment.InsertComment(c.Request.Context(), &models.NewComment{
		ArticleID: c.Param("article_id"),
		Author:    req.Username,
		Body:      req.Body,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

// DeleteCommentByID handles DELETE /api/comments/:comment_id
func (h *CommentHandler) DeleteCommentByID(c *gin.Context) {
	if err := h.services.Comment.DeleteCommentByID(c.Request.Context(), c.Param("comment_id")); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
