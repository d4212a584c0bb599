package repository

import (
	"context"
	"fmt"

	"github.com/news-forum-api/internal/database"
	"github.com/news-forum-api/internal/models"
)

// commentRepo is the concrete implementation of CommentRepository
type commentRepo struct {
	db *database.DB
}

// NewCommentRepo creates a new comment repository
func NewCommentRepo(db *database.DB) CommentRepository {
	return &commentRepo{db: db}
}

// ListByArticleID returns an article's comments, newest first
func (r *commentRepo) ListByArticleID(ctx context.Context, articleID string) ([]models.Comment, error) {
	query := `
		SELECT comment_id, article_id, author, body, votes, created_at
		FROM comments
		WHERE article_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, articleID)
	if err != nil {
		return nil, fmt.Errorf("list comments for article %q: %w", articleID, err)
	}
	defer rows.Close()

	comments := []models.Comment{}
	for rows.Next() {
		var comment models.Comment
		err := rows.Scan(
			&comment.CommentID, &comment.ArticleID, &comment.Author, &comment.Body,
			&comment.Votes, &comment.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}

// Create inserts a comment; id, votes and created_at come from the database
func (r *commentRepo) Create(ctx context.Context, comment *models.NewComment) (*models.Comment, error) {
	query := `
		INSERT INTO comments (article_id, author, body)
		VALUES ($1, $2, $3)
		RETURNING comment_id, article_id, author, body, votes, created_at
	`

	var created models.Comment
	err := r.db.QueryRowContext(ctx, query, comment.ArticleID, comment.Author, comment.Body).Scan(
		&created.CommentID, &created.ArticleID, &created.Author, &created.Body,
		&created.Votes, &created.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}
	return &created, nil
}

// DeleteByID removes a comment and reports whether a row was deleted
func (r *commentRepo) DeleteByID(ctx context.Context, id string) (bool, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM comments WHERE comment_id = $1", id)
	if err != nil {
		return false, fmt.Errorf("delete comment %q: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete comment %q: %w", id, err)
	}
	return affected > 0, nil
}

// Exists checks if a comment with the given ID exists
func (r *commentRepo) Exists(ctx context.Context, id string) (bool, error) {
	return exists(ctx, r.db, "SELECT EXISTS(SELECT 1 FROM comments WHERE comment_id = $1)", id)
}

// Count returns the total number of comments
func (r *commentRepo) Count(ctx context.Context) (int, error) {
	return count(ctx, r.db, "SELECT COUNT(*) FROM comments")
}
