package service

import (
	"context"

	"github.com/news-forum-api/internal/apperr"
	"github.com/news-forum-api/internal/database"
	"github.com/news-forum-api/internal/models"
	"github.com/news-forum-api/internal/repository"
	"github.com/rs/zerolog"
)

const (
	msgArticleIDNotFound = "Article ID not found"
	msgVotesOutOfRange   = "Bad request, votes out of range"
)

// articleService is the concrete implementation of ArticleService
type articleService struct {
	articles repository.ArticleRepository
	checks   *existenceChecker
	log      zerolog.Logger
}

// newArticleService creates a new ArticleService
func newArticleService(articles repository.ArticleRepository, checks *existenceChecker, log zerolog.Logger) *articleService {
	return &articleService{
		articles: articles,
		checks:   checks,
		log:      log.With().Str("service", "article").Logger(),
	}
}

// FetchArticleByID returns the article with its comment count
func (s *articleService) FetchArticleByID(ctx context.Context, id string) (*models.Article, error) {
	article, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, apperr.NotFound(msgArticleIDNotFound)
	}
	return article, nil
}

// FetchAllArticles lists articles newest first. With a topic, an empty result
// is only an error when the topic itself is unknown.
func (s *articleService) FetchAllArticles(ctx context.Context, topic string) ([]models.Article, error) {
	articles, err := s.articles.List(ctx, topic)
	if err != nil {
		return nil, err
	}
	if len(articles) > 0 || topic == "" {
		return articles, nil
	}

	if err := s.checks.checkTopicExists(ctx, topic); err != nil {
		if isMissing(err) {
			return nil, apperr.NotFound("No articles found with topic: " + topic)
		}
		return nil, err
	}
	return []models.Article{}, nil
}

// UpdateArticleVotes adds delta to the article's votes. delta may be negative
// and the total is not floored.
func (s *articleService) UpdateArticleVotes(ctx context.Context, id string, delta int) (*models.Article, error) {
	article, err := s.articles.UpdateVotes(ctx, id, delta)
	if err != nil {
		if database.IsNumericOverflow(err) {
			return nil, apperr.Validation(msgVotesOutOfRange)
		}
		return nil, err
	}
	if article == nil {
		return nil, apperr.NotFound(msgArticleIDNotFound)
	}

	s.log.Debug().
		Int64("article_id", article.ArticleID).
		Int("delta", delta).
		Int("votes", article.Votes).
		Msg("Article votes updated")

	return article, nil
}
