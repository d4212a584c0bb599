package service

import (
	"context"

	"github.com/news-forum-api/internal/apperr"
	"github.com/news-forum-api/internal/repository"
)

// Messages returned by the existence checks when the row is missing.
const (
	msgTopicMissing   = "Topic does not exist"
	msgArticleMissing = "Article does not exist"
	msgCommentMissing = "Comment does not exist"
	msgUserMissing    = "Username does not exist"
)

// existenceChecker turns "zero rows" into a precise NotFound for one resource.
// Each check returns nil when the row exists.
type existenceChecker struct {
	topics   repository.TopicRepository
	articles repository.ArticleRepository
	comments repository.CommentRepository
	users    repository.UserRepository
}

func newExistenceChecker(repos *repository.Repositories) *existenceChecker {
	return &existenceChecker{
		topics:   repos.Topic,
		articles: repos.Article,
		comments: repos.Comment,
		users:    repos.User,
	}
}

func (c *existenceChecker) checkTopicExists(ctx context.Context, slug string) error {
	found, err := c.topics.Exists(ctx, slug)
	return notFoundUnless(found, err, msgTopicMissing)
}

func (c *existenceChecker) checkArticleExists(ctx context.Context, id string) error {
	found, err := c.articles.Exists(ctx, id)
	return notFoundUnless(found, err, msgArticleMissing)
}

func (c *existenceChecker) checkCommentExists(ctx context.Context, id string) error {
	found, err := c.comments.Exists(ctx, id)
	return notFoundUnless(found, err, msgCommentMissing)
}

func (c *existenceChecker) checkUserExists(ctx context.Context, username string) error {
	found, err := c.users.Exists(ctx, username)
	return notFoundUnless(found, err, msgUserMissing)
}

func notFoundUnless(found bool, err error, msg string) error {
	if err != nil {
		return err
	}
	if !found {
		return apperr.NotFound(msg)
	}
	return nil
}

// isMissing reports whether err came from a failed existence check
func isMissing(err error) bool {
	return apperr.IsKind(err, apperr.KindNotFound)
}
