package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/news-forum-api/internal/database"
	"github.com/news-forum-api/internal/models"
)

const articleWithCountColumns = `
		articles.article_id, articles.author, articles.title, articles.topic,
		articles.created_at, articles.votes, articles.article_img_url,
		COUNT(comments.comment_id) AS comment_count`

// articleRepo is the concrete implementation of ArticleRepository
type articleRepo struct {
	db *database.DB
}

// NewArticleRepo creates a new article repository
func NewArticleRepo(db *database.DB) ArticleRepository {
	return &articleRepo{db: db}
}

// GetByID retrieves an article with its body and comment count.
// Returns nil, nil when no article matches.
func (r *articleRepo) GetByID(ctx context.Context, id string) (*models.Article, error) {
	query := `
		SELECT` + articleWithCountColumns + `, articles.body
		FROM articles
		LEFT JOIN comments ON articles.article_id = comments.article_id
		WHERE articles.article_id = $1
		GROUP BY articles.article_id
	`

	var article models.Article
	var commentCount int
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&article.ArticleID, &article.Author, &article.Title, &article.Topic,
		&article.CreatedAt, &article.Votes, &article.ArticleImgURL,
		&commentCount, &article.Body,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get article %q: %w", id, err)
	}

	article.CommentCount = &commentCount
	return &article, nil
}

// List returns articles without bodies, newest first, optionally restricted
// to one topic. An empty topic means no filter.
func (r *articleRepo) List(ctx context.Context, topic string) ([]models.Article, error) {
	var b strings.Builder
	b.WriteString(`
		SELECT` + articleWithCountColumns + `
		FROM articles
		LEFT JOIN comments ON articles.article_id = comments.article_id`)

	var args []interface{}
	if topic != "" {
		b.WriteString(`
		WHERE articles.topic = $1`)
		args = append(args, topic)
	}
	b.WriteString(`
		GROUP BY articles.article_id
		ORDER BY articles.created_at DESC
	`)

	rows, err := r.db.QueryContext(ctx, b.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()

	articles := []models.Article{}
	for rows.Next() {
		var article models.Article
		var commentCount int
		err := rows.Scan(
			&article.ArticleID, &article.Author, &article.Title, &article.Topic,
			&article.CreatedAt, &article.Votes, &article.ArticleImgURL,
			&commentCount,
		)
		if err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		article.CommentCount = &commentCount
		articles = append(articles, article)
	}
	return articles, rows.Err()
}

// UpdateVotes adds delta to the article's votes and returns the updated row.
// Returns nil, nil when no article matches.
func (r *articleRepo) UpdateVotes(ctx context.Context, id string, delta int) (*models.Article, error) {
	query := `
		UPDATE articles
		SET votes = votes + $1
		WHERE article_id = $2
		RETURNING article_id, author, title, body, topic, created_at, votes, article_img_url
	`

	var article models.Article
	err := r.db.QueryRowContext(ctx, query, delta, id).Scan(
		&article.ArticleID, &article.Author, &article.Title, &article.Body, &article.Topic,
		&article.CreatedAt, &article.Votes, &article.ArticleImgURL,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update votes for article %q: %w", id, err)
	}
	return &article, nil
}

// Exists checks if an article with the given ID exists
func (r *articleRepo) Exists(ctx context.Context, id string) (bool, error) {
	return exists(ctx, r.db, "SELECT EXISTS(SELECT 1 FROM articles WHERE article_id = $1)", id)
}

// Count returns the total number of articles
func (r *articleRepo) Count(ctx context.Context) (int, error) {
	return count(ctx, r.db, "SELECT COUNT(*) FROM articles")
}
