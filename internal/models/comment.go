package models

import (
	"time"
)

// Comment represents a comment on an article
type Comment struct {
	CommentID int64     `json:"comment_id" db:"comment_id"`
	ArticleID int64     `json:"article_id" db:"article_id"`
	Author    string    `json:"author" db:"author"`
	Body      string    `json:"body" db:"body"`
	Votes     int       `json:"votes" db:"votes"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CommentRequest is the POST /api/articles/:article_id/comments body
type CommentRequest struct {
	Username string `json:"username" binding:"required"`
	Body     string `json:"body" binding:"required"`
}

// NewComment carries a validated comment into the service layer.
// ArticleID stays a string so Postgres decides whether it is a valid id.
type NewComment struct {
	ArticleID string
	Author    string
	Body      string
}
