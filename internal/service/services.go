package service

import (
	"context"
	"database/sql"

	"github.com/news-forum-api/internal/models"
	"github.com/news-forum-api/internal/repository"
	"github.com/rs/zerolog"
)

// TopicService defines the interface for topic operations
type TopicService interface {
	FetchAllTopics(ctx context.Context) ([]models.Topic, error)
}

// ArticleService defines the interface for article operations
type ArticleService interface {
	FetchArticleByID(ctx context.Context, id string) (*models.Article, error)
	FetchAllArticles(ctx context.Context, topic string) ([]models.Article, error)
	UpdateArticleVotes(ctx context.Context, id string, delta int) (*models.Article, error)
}

// CommentService defines the interface for comment operations
type CommentService interface {
	FetchCommentsByArticleID(ctx context.Context, articleID string) ([]models.Comment, error)
	InsertComment(ctx context.Context, comment *models.NewComment) (*models.Comment, error)
	DeleteCommentByID(ctx context.Context, id string) error
}

// UserService defines the interface for user operations
type UserService interface {
	FetchAllUsers(ctx context.Context) ([]models.User, error)
}

// StatsService reports service health and table sizes
type StatsService interface {
	Health(ctx context.Context) error
	Counts(ctx context.Context) (map[string]int, error)
	Pool() sql.DBStats
}

// Pinger is satisfied by *database.DB
type Pinger interface {
	HealthCheck(ctx context.Context) error
	Stats() sql.DBStats
}

// Services holds all service interfaces
type Services struct {
	Topic   TopicService
	Article ArticleService
	Comment CommentService
	User    UserService
	Stats   StatsService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, db Pinger, log zerolog.Logger) *Services {
	checks := newExistenceChecker(repos)

	return &Services{
		Topic:   newTopicService(repos.Topic),
		Article: newArticleService(repos.Article, checks, log),
		Comment: newCommentService(repos.Comment, checks, log),
		User:    newUserService(repos.User),
		Stats:   newStatsService(repos, db),
	}
}
