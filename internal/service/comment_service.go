package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/news-forum-api/internal/apperr"
	"github.com/news-forum-api/internal/database"
	"github.com/news-forum-api/internal/models"
	"github.com/news-forum-api/internal/repository"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	msgUserNotFound     = "User not found"
	msgArticleNotFound  = "Article not found"
	msgCommentIDMissing = "Comment with provided ID not found"
)

// commentService is the concrete implementation of CommentService
type commentService struct {
	comments repository.CommentRepository
	checks   *existenceChecker
	log      zerolog.Logger
}

// newCommentService creates a new CommentService
func newCommentService(comments repository.CommentRepository, checks *existenceChecker, log zerolog.Logger) *commentService {
	return &commentService{
		comments: comments,
		checks:   checks,
		log:      log.With().Str("service", "comment").Logger(),
	}
}

// FetchCommentsByArticleID returns the article's comments newest first.
// An empty list is returned only when the article exists.
func (s *commentService) FetchCommentsByArticleID(ctx context.Context, articleID string) ([]models.Comment, error) {
	comments, err := s.comments.ListByArticleID(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if len(comments) > 0 {
		return comments, nil
	}

	if err := s.checks.checkArticleExists(ctx, articleID); err != nil {
		if isMissing(err) {
			return nil, apperr.NotFound(msgArticleIDNotFound)
		}
		return nil, err
	}
	return []models.Comment{}, nil
}

// InsertComment verifies author and article concurrently, then inserts.
// A missing author is a 400 and takes precedence over a missing article (404).
func (s *commentService) InsertComment(ctx context.Context, comment *models.NewComment) (*models.Comment, error) {
	var userErr, articleErr error

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		userErr = s.checks.checkUserExists(gctx, comment.Author)
		if isMissing(userErr) {
			return nil
		}
		return userErr
	})
	g.Go(func() error {
		articleErr = s.checks.checkArticleExists(gctx, comment.ArticleID)
		if isMissing(articleErr) {
			return nil
		}
		return articleErr
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if userErr != nil {
		return nil, apperr.Validation(msgUserNotFound)
	}
	if articleErr != nil {
		return nil, apperr.NotFound(msgArticleNotFound)
	}

	created, err := s.comments.Create(ctx, comment)
	if err != nil {
		// The row can disappear between the checks and the insert.
		if constraint, ok := database.IsForeignKeyViolation(err); ok {
			if strings.Contains(constraint, "author") {
				return nil, apperr.Validation(msgUserNotFound)
			}
			return nil, apperr.NotFound(msgArticleNotFound)
		}
		return nil, err
	}

	s.log.Info().
		Int64("comment_id", created.CommentID).
		Int64("article_id", created.ArticleID).
		Str("author", created.Author).
		Msg("Comment created")

	return created, nil
}

// DeleteCommentByID removes a comment. When nothing was deleted the
// comment is looked up again so a missing row is reported as a 404.
func (s *commentService) DeleteCommentByID(ctx context.Context, id string) error {
	deleted, err := s.comments.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		if err := s.checks.checkCommentExists(ctx, id); err != nil {
			if isMissing(err) {
				return apperr.NotFound(msgCommentIDMissing)
			}
			return err
		}
		return fmt.Errorf("comment %s exists but was not deleted", id)
	}

	s.log.Info().Str("comment_id", id).Msg("Comment deleted")
	return nil
}
