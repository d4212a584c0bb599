package models

import (
	"time"
)

// Article represents an article in the system.
// Body is left empty by list queries and CommentCount is only set where the
// query aggregates comments.
type Article struct {
	ArticleID     int64     `json:"article_id" db:"article_id"`
	Author        string    `json:"author" db:"author"`
	Title         string    `json:"title" db:"title"`
	Body          string    `json:"body,omitempty" db:"body"`
	Topic         string    `json:"topic" db:"topic"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	Votes         int       `json:"votes" db:"votes"`
	ArticleImgURL string    `json:"article_img_url" db:"article_img_url"`
	CommentCount  *int      `json:"comment_count,omitempty" db:"comment_count"`
}

// VoteUpdate is the PATCH /api/articles/:article_id body
type VoteUpdate struct {
	IncVotes *int `json:"inc_votes" binding:"required"`
}
