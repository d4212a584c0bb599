package api

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/news-forum-api/internal/apperr"
	"github.com/news-forum-api/internal/models"
	"github.com/news-forum-api/internal/service"
	"github.com/rs/zerolog"
)

const msgInvalidIncVotes = "Bad request, inc_votes must be an integer"

// ArticleHandler handles article endpoints
type ArticleHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(services *service.Services, log zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{
		services: services,
		log:      log.With().Str("handler", "articles").Logger(),
	}
}

// GetArticles handles GET /api/articles?topic=...
func (h *ArticleHandler) GetArticles(c *gin.Context) {
	articles, err := h.services.Article.FetchAllArticles(c.Request.Context(), c.Query("topic"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, articles)
}

// GetArticleByID handles GET /api/articles/:article_id
func (h *ArticleHandler) GetArticleByID(c *gin.Context) {
	article, err := h.services.Article.FetchArticleByID(c.Request.Context(), c.Param("article_id"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, article)
}

// PatchArticleByID handles PATCH /api/articles/:article_id
// Body: {"inc_votes": <integer>}
func (h *ArticleHandler) PatchArticleByID(c *gin.Context) {
	var req models.VoteUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Debug().Err(err).Msg("Rejected vote update body")
		c.Error(apperr.Validation(msgInvalidIncVotes))
		return
	}

	// votes is a Postgres integer column
	if *req.IncVotes < math.MinInt32 || *req.IncVotes > math.MaxInt32 {
		c.Error(apperr.Validation(msgInvalidIncVotes))
		return
	}

	article, err := h.services.Article.UpdateArticleVotes(c.Request.Context(), c.Param("article_id"), *req.IncVotes)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"article": article})
}
