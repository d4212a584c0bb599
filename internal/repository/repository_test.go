package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/news-forum-api/internal/database"
	"github.com/news-forum-api/internal/models"
	"github.com/news-forum-api/internal/repository"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var listColumns = []string{
	"article_id", "author", "title", "topic", "created_at", "votes", "article_img_url", "comment_count",
}

func newTestDB(t *testing.T) (*database.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return database.Wrap(sqlDB, zerolog.Nop()), mock
}

func TestArticleRepo_GetByID(t *testing.T) {
	db, mock := newTestDB(t)
	repo := repository.NewArticleRepo(db)
	created := time.Date(2020, 7, 9, 20, 11, 0, 0, time.UTC)

	rows := sqlmock.NewRows(append(append([]string{}, listColumns...), "body")).
		AddRow(1, "butter_bridge", "Living in the shadow of a great man", "mitch", created, 100, "https://img/1.jpg", 11, "I find this existence challenging")
	mock.ExpectQuery(`SELECT .+ FROM articles\s+LEFT JOIN comments .+ WHERE articles.article_id = \$1\s+GROUP BY articles.article_id`).
		WithArgs("1").
		WillReturnRows(rows)

	article, err := repo.GetByID(context.Background(), "1")
	require.NoError(t, err)
	require.NotNil(t, article)

	assert.Equal(t, int64(1), article.ArticleID)
	assert.Equal(t, "butter_bridge", article.Author)
	assert.Equal(t, "I find this existence challenging", article.Body)
	assert.Equal(t, 100, article.Votes)
	require.NotNil(t, article.CommentCount)
	assert.Equal(t, 11, *article.CommentCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArticleRepo_GetByID_NoRows(t *testing.T) {
	db, mock := newTestDB(t)
	repo := repository.NewArticleRepo(db)

	mock.ExpectQuery(`SELECT .+ FROM articles`).
		WithArgs("9999").
		WillReturnRows(sqlmock.NewRows(listColumns))

	article, err := repo.GetByID(context.Background(), "9999")
	assert.NoError(t, err)
	assert.Nil(t, article)
}

func TestArticleRepo_GetByID_InvalidID(t *testing.T) {
	db, mock := newTestDB(t)
	repo := repository.NewArticleRepo(db)

	mock.ExpectQuery(`SELECT .+ FROM articles`).
		WithArgs("banana").
		WillReturnError(&pq.Error{Code: database.CodeInvalidTextRepresentation})

	_, err := repo.GetByID(context.Background(), "banana")
	require.Error(t, err)
	assert.True(t, database.IsFormatViolation(err), "wrapped pq error should still be detectable")
}

func TestArticleRepo_List(t *testing.T) {
	newer := time.Date(2020, 11, 3, 9, 12, 0, 0, time.UTC)
	older := time.Date(2020, 1, 7, 14, 8, 0, 0, time.UTC)

	t.Run("without topic", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := repository.NewArticleRepo(db)

		rows := sqlmock.NewRows(listColumns).
			AddRow(3, "icellusedkars", "Eight pug gifs", "mitch", newer, 0, "https://img/3.jpg", 2).
			AddRow(6, "icellusedkars", "A", "mitch", older, 0, "https://img/6.jpg", 1)
		mock.ExpectQuery(`GROUP BY articles.article_id\s+ORDER BY articles.created_at DESC`).
			WillReturnRows(rows)

		articles, err := repo.List(context.Background(), "")
		require.NoError(t, err)
		require.Len(t, articles, 2)
		assert.Equal(t, int64(3), articles[0].ArticleID)
		assert.Empty(t, articles[0].Body)
		assert.Equal(t, 2, *articles[0].CommentCount)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("with topic", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := repository.NewArticleRepo(db)

		rows := sqlmock.NewRows(listColumns).
			AddRow(5, "rogersop", "UNCOVERED: catspiracy", "cats", newer, 0, "https://img/5.jpg", 2)
		mock.ExpectQuery(`WHERE articles.topic = \$1\s+GROUP BY`).
			WithArgs("cats").
			WillReturnRows(rows)

		articles, err := repo.List(context.Background(), "cats")
		require.NoError(t, err)
		require.Len(t, articles, 1)
		assert.Equal(t, "cats", articles[0].Topic)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty result is an empty slice", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := repository.NewArticleRepo(db)

		mock.ExpectQuery(`FROM articles`).
			WithArgs("paper").
			WillReturnRows(sqlmock.NewRows(listColumns))

		articles, err := repo.List(context.Background(), "paper")
		require.NoError(t, err)
		assert.NotNil(t, articles)
		assert.Len(t, articles, 0)
	})
}

func TestArticleRepo_UpdateVotes(t *testing.T) {
	db, mock := newTestDB(t)
	repo := repository.NewArticleRepo(db)

	cols := []string{"article_id", "author", "title", "body", "topic", "created_at", "votes", "article_img_url"}
	mock.ExpectQuery(`UPDATE articles\s+SET votes = votes \+ \$1\s+WHERE article_id = \$2\s+RETURNING`).
		WithArgs(10, "1").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(1, "butter_bridge", "Living", "body", "mitch", time.Now(), 110, "https://img/1.jpg"))

	article, err := repo.UpdateVotes(context.Background(), "1", 10)
	require.NoError(t, err)
	require.NotNil(t, article)
	assert.Equal(t, 110, article.Votes)
	assert.Nil(t, article.CommentCount)

	mock.ExpectQuery(`UPDATE articles`).
		WithArgs(1, "9999").
		WillReturnRows(sqlmock.NewRows(cols))

	article, err = repo.UpdateVotes(context.Background(), "9999", 1)
	assert.NoError(t, err)
	assert.Nil(t, article)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArticleRepo_Exists(t *testing.T) {
	db, mock := newTestDB(t)
	repo := repository.NewArticleRepo(db)

	mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM articles WHERE article_id = \$1\)`).
		WithArgs("2").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	found, err := repo.Exists(context.Background(), "2")
	require.NoError(t, err)
	assert.True(t, found)
}

func TestCommentRepo_ListByArticleID(t *testing.T) {
	db, mock := newTestDB(t)
	repo := repository.NewCommentRepo(db)

	cols := []string{"comment_id", "article_id", "author", "body", "votes", "created_at"}
	mock.ExpectQuery(`FROM comments\s+WHERE article_id = \$1\s+ORDER BY created_at DESC`).
		WithArgs("1").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(5, 1, "icellusedkars", "I hate streaming noses", 0, time.Now()).
			AddRow(2, 1, "butter_bridge", "The beautiful thing", 14, time.Now().Add(-time.Hour)))

	comments, err := repo.ListByArticleID(context.Background(), "1")
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, int64(5), comments[0].CommentID)
	assert.Equal(t, 14, comments[1].Votes)
}

func TestCommentRepo_Create(t *testing.T) {
	db, mock := newTestDB(t)
	repo := repository.NewCommentRepo(db)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO comments \(article_id, author, body\)\s+VALUES \(\$1, \$2, \$3\)\s+RETURNING`).
		WithArgs("1", "butter_bridge", "hi").
		WillReturnRows(sqlmock.NewRows([]string{"comment_id", "article_id", "author", "body", "votes", "created_at"}).
			AddRow(19, 1, "butter_bridge", "hi", 0, now))

	comment, err := repo.Create(context.Background(), &models.NewComment{ArticleID: "1", Author: "butter_bridge", Body: "hi"})
	require.NoError(t, err)
	assert.Equal(t, int64(19), comment.CommentID)
	assert.Equal(t, "hi", comment.Body)
	assert.Equal(t, 0, comment.Votes)
}

func TestCommentRepo_Create_ForeignKeyViolation(t *testing.T) {
	db, mock := newTestDB(t)
	repo := repository.NewCommentRepo(db)

	mock.ExpectQuery(`INSERT INTO comments`).
		WillReturnError(&pq.Error{Code: database.CodeForeignKeyViolation, Constraint: "comments_author_fkey"})

	_, err := repo.Create(context.Background(), &models.NewComment{ArticleID: "1", Author: "ghost", Body: "hi"})
	constraint, ok := database.IsForeignKeyViolation(err)
	assert.True(t, ok)
	assert.Equal(t, "comments_author_fkey", constraint)
}

func TestCommentRepo_DeleteByID(t *testing.T) {
	db, mock := newTestDB(t)
	repo := repository.NewCommentRepo(db)

	mock.ExpectExec(`DELETE FROM comments WHERE comment_id = \$1`).
		WithArgs("1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM comments WHERE comment_id = \$1`).
		WithArgs("1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err := repo.DeleteByID(context.Background(), "1")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.DeleteByID(context.Background(), "1")
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepo_Exists(t *testing.T) {
	db, mock := newTestDB(t)
	repo := repository.NewCommentRepo(db)

	mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM comments WHERE comment_id = \$1\)`).
		WithArgs("7").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	found, err := repo.Exists(context.Background(), "7")
	require.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTopicRepo(t *testing.T) {
	db, mock := newTestDB(t)
	repo := repository.NewTopicRepo(db)

	mock.ExpectQuery(`SELECT slug, description FROM topics`).
		WillReturnRows(sqlmock.NewRows([]string{"slug", "description"}).
			AddRow("mitch", "The man, the Mitch, the legend").
			AddRow("cats", "Not dogs"))
	mock.ExpectQuery(`SELECT EXISTS\(SELECT 1 FROM topics WHERE slug = \$1\)`).
		WithArgs("paper").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	topics, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.Topic{
		{Slug: "mitch", Description: "The man, the Mitch, the legend"},
		{Slug: "cats", Description: "Not dogs"},
	}, topics)

	found, err := repo.Exists(context.Background(), "paper")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestUserRepo(t *testing.T) {
	db, mock := newTestDB(t)
	repo := repository.NewUserRepo(db)

	mock.ExpectQuery(`SELECT username, name, avatar_url FROM users`).
		WillReturnRows(sqlmock.NewRows([]string{"username", "name", "avatar_url"}).
			AddRow("butter_bridge", "jonny", "https://avatar/1.jpg"))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	users, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "jonny", users[0].Name)

	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestRepo_QueryErrorIsWrapped(t *testing.T) {
	db, mock := newTestDB(t)
	repo := repository.NewTopicRepo(db)
	boom := errors.New("connection reset")

	mock.ExpectQuery(`FROM topics`).WillReturnError(boom)

	_, err := repo.GetAll(context.Background())
	assert.ErrorIs(t, err, boom)
}
