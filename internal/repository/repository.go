package repository

import (
	"context"

	"github.com/news-forum-api/internal/database"
	"github.com/news-forum-api/internal/models"
)

// Identifiers are passed to Postgres as received from the client. A value
// that is not an integer fails in the driver with SQLSTATE 22P02, which the
// API maps to a 400.

// TopicRepository defines the interface for topic data operations
type TopicRepository interface {
	GetAll(ctx context.Context) ([]models.Topic, error)
	Exists(ctx context.Context, slug string) (bool, error)
	Count(ctx context.Context) (int, error)
}

// ArticleRepository defines the interface for article data operations
type ArticleRepository interface {
	GetByID(ctx context.Context, id string) (*models.Article, error)
	List(ctx context.Context, topic string) ([]models.Article, error)
	UpdateVotes(ctx context.Context, id string, delta int) (*models.Article, error)
	Exists(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
}

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	ListByArticleID(ctx context.Context, articleID string) ([]models.Comment, error)
	Create(ctx context.Context, comment *models.NewComment) (*models.Comment, error)
	DeleteByID(ctx context.Context, id string) (bool, error)
	Exists(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	GetAll(ctx context.Context) ([]models.User, error)
	Exists(ctx context.Context, username string) (bool, error)
	Count(ctx context.Context) (int, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Topic   TopicRepository
	Article ArticleRepository
	Comment CommentRepository
	User    UserRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Topic:   NewTopicRepo(db),
		Article: NewArticleRepo(db),
		Comment: NewCommentRepo(db),
		User:    NewUserRepo(db),
	}
}

// exists runs a SELECT EXISTS query with a single argument
func exists(ctx context.Context, db *database.DB, query string, arg interface{}) (bool, error) {
	var found bool
	err := db.QueryRowContext(ctx, query, arg).Scan(&found)
	return found, err
}

// count runs a SELECT COUNT(*) query
func count(ctx context.Context, db *database.DB, query string) (int, error) {
	var n int
	err := db.QueryRowContext(ctx, query).Scan(&n)
	return n, err
}
