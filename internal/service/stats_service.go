package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/news-forum-api/internal/repository"
)

type counter interface {
	Count(ctx context.Context) (int, error)
}

// statsService backs the /health and /metrics endpoints
type statsService struct {
	db       Pinger
	counters map[string]counter
}

func newStatsService(repos *repository.Repositories, db Pinger) *statsService {
	return &statsService{
		db: db,
		counters: map[string]counter{
			"topics":   repos.Topic,
			"articles": repos.Article,
			"comments": repos.Comment,
			"users":    repos.User,
		},
	}
}

// Health pings the database
func (s *statsService) Health(ctx context.Context) error {
	if s.db == nil {
		return fmt.Errorf("no database configured")
	}
	return s.db.HealthCheck(ctx)
}

// Pool returns connection pool statistics
func (s *statsService) Pool() sql.DBStats {
	if s.db == nil {
		return sql.DBStats{}
	}
	return s.db.Stats()
}

// Counts returns the number of rows per table
func (s *statsService) Counts(ctx context.Context) (map[string]int, error) {
	counts := make(map[string]int, len(s.counters))
	for table, c := range s.counters {
		n, err := c.Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("count %s: %w", table, err)
		}
		counts[table] = n
	}
	return counts, nil
}
