package mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/lib/pq"
	"github.com/news-forum-api/internal/models"
	"github.com/news-forum-api/internal/repository"
)

// MockStore is an in-memory stand-in for the news tables. The repository
// views below share it so comment counts and existence checks stay consistent.
type MockStore struct {
	mu            sync.RWMutex
	Topics        []models.Topic
	Users         []models.User
	Articles      map[int64]*models.Article
	Comments      map[int64]*models.Comment
	nextCommentID int64
	clock         time.Time

	// Err, when set, is returned by every repository call
	Err error
	// Calls counts repository calls by method name
	Calls map[string]int
}

// NewMockStore creates an empty store
func NewMockStore() *MockStore {
	return &MockStore{
		Articles:      make(map[int64]*models.Article),
		Comments:      make(map[int64]*models.Comment),
		Calls:         make(map[string]int),
		nextCommentID: 1,
		clock:         time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// Repositories exposes the store through the repository interfaces
func (s *MockStore) Repositories() *repository.Repositories {
	return &repository.Repositories{
		Topic:   &MockTopicRepository{s},
		Article: &MockArticleRepository{s},
		Comment: &MockCommentRepository{s},
		User:    &MockUserRepository{s},
	}
}

// AddTopic seeds a topic
func (s *MockStore) AddTopic(slug, description string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Topics = append(s.Topics, models.Topic{Slug: slug, Description: description})
}

// AddUser seeds a user
func (s *MockStore) AddUser(username, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Users = append(s.Users, models.User{
		Username:  username,
		Name:      name,
		AvatarURL: "https://example.com/avatars/" + username + ".png",
	})
}

// AddArticle seeds an article; a zero CreatedAt gets the next clock tick
func (s *MockStore) AddArticle(article models.Article) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if article.CreatedAt.IsZero() {
		article.CreatedAt = s.tick()
	}
	article.CommentCount = nil
	s.Articles[article.ArticleID] = &article
}

// AddComment seeds a comment and returns its id
func (s *MockStore) AddComment(articleID int64, author, body string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertComment(articleID, author, body).CommentID
}

func (s *MockStore) insertComment(articleID int64, author, body string) *models.Comment {
	comment := &models.Comment{
		CommentID: s.nextCommentID,
		ArticleID: articleID,
		Author:    author,
		Body:      body,
		CreatedAt: s.tick(),
	}
	s.nextCommentID++
	s.Comments[comment.CommentID] = comment
	return comment
}

// tick advances the fake clock so rows have distinct timestamps
func (s *MockStore) tick() time.Time {
	s.clock = s.clock.Add(time.Minute)
	return s.clock
}

func (s *MockStore) record(name string) error {
	s.Calls[name]++
	return s.Err
}

func (s *MockStore) commentCount(articleID int64) int {
	n := 0
	for _, c := range s.Comments {
		if c.ArticleID == articleID {
			n++
		}
	}
	return n
}

// parseID mimics Postgres casting a text parameter to an integer column
func parseID(id string) (int64, error) {
	n, err := strconv.ParseInt(id, 10, 32)
	if err == nil {
		return n, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return 0, &pq.Error{
			Code:    "22003",
			Message: fmt.Sprintf("value %q is out of range for type integer", id),
		}
	}
	return 0, &pq.Error{
		Code:    "22P02",
		Message: fmt.Sprintf("invalid input syntax for type integer: %q", id),
	}
}

// MockTopicRepository is a mock implementation of TopicRepository
type MockTopicRepository struct{ store *MockStore }

// MockArticleRepository is a mock implementation of ArticleRepository
type MockArticleRepository struct{ store *MockStore }

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct{ store *MockStore }

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct{ store *MockStore }

// Verify interface compliance
var (
	_ repository.TopicRepository   = (*MockTopicRepository)(nil)
	_ repository.ArticleRepository = (*MockArticleRepository)(nil)
	_ repository.CommentRepository = (*MockCommentRepository)(nil)
	_ repository.UserRepository    = (*MockUserRepository)(nil)
)

func (m *MockTopicRepository) GetAll(ctx context.Context) ([]models.Topic, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	if err := m.store.record("Topic.GetAll"); err != nil {
		return nil, err
	}
	return append([]models.Topic{}, m.store.Topics...), nil
}

func (m *MockTopicRepository) Exists(ctx context.Context, slug string) (bool, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	if err := m.store.record("Topic.Exists"); err != nil {
		return false, err
	}
	for _, t := range m.store.Topics {
		if t.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockTopicRepository) Count(ctx context.Context) (int, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	if err := m.store.record("Topic.Count"); err != nil {
		return 0, err
	}
	return len(m.store.Topics), nil
}

func (m *MockArticleRepository) GetByID(ctx context.Context, id string) (*models.Article, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	if err := m.store.record("Article.GetByID"); err != nil {
		return nil, err
	}
	articleID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	article, ok := m.store.Articles[articleID]
	if !ok {
		return nil, nil
	}
	out := *article
	n := m.store.commentCount(articleID)
	out.CommentCount = &n
	return &out, nil
}

func (m *MockArticleRepository) List(ctx context.Context, topic string) ([]models.Article, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	if err := m.store.record("Article.List"); err != nil {
		return nil, err
	}
	articles := []models.Article{}
	for _, a := range m.store.Articles {
		if topic != "" && a.Topic != topic {
			continue
		}
		out := *a
		out.Body = ""
		n := m.store.commentCount(a.ArticleID)
		out.CommentCount = &n
		articles = append(articles, out)
	}
	sort.Slice(articles, func(i, j int) bool {
		return articles[i].CreatedAt.After(articles[j].CreatedAt)
	})
	return articles, nil
}

func (m *MockArticleRepository) UpdateVotes(ctx context.Context, id string, delta int) (*models.Article, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	if err := m.store.record("Article.UpdateVotes"); err != nil {
		return nil, err
	}
	articleID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	article, ok := m.store.Articles[articleID]
	if !ok {
		return nil, nil
	}
	if total := int64(article.Votes) + int64(delta); total > math.MaxInt32 || total < math.MinInt32 {
		return nil, &pq.Error{Code: "22003", Message: "integer out of range"}
	}
	article.Votes += delta
	out := *article
	return &out, nil
}

func (m *MockArticleRepository) Exists(ctx context.Context, id string) (bool, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	if err := m.store.record("Article.Exists"); err != nil {
		return false, err
	}
	articleID, err := parseID(id)
	if err != nil {
		return false, err
	}
	_, ok := m.store.Articles[articleID]
	return ok, nil
}

func (m *MockArticleRepository) Count(ctx context.Context) (int, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	if err := m.store.record("Article.Count"); err != nil {
		return 0, err
	}
	return len(m.store.Articles), nil
}

func (m *MockCommentRepository) ListByArticleID(ctx context.Context, articleID string) ([]models.Comment, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	if err := m.store.record("Comment.ListByArticleID"); err != nil {
		return nil, err
	}
	id, err := parseID(articleID)
	if err != nil {
		return nil, err
	}
	comments := []models.Comment{}
	for _, c := range m.store.Comments {
		if c.ArticleID == id {
			comments = append(comments, *c)
		}
	}
	sort.Slice(comments, func(i, j int) bool {
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})
	return comments, nil
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.NewComment) (*models.Comment, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	if err := m.store.record("Comment.Create"); err != nil {
		return nil, err
	}
	articleID, err := parseID(comment.ArticleID)
	if err != nil {
		return nil, err
	}
	if _, ok := m.store.Articles[articleID]; !ok {
		return nil, &pq.Error{Code: "23503", Constraint: "comments_article_id_fkey"}
	}
	created := m.store.insertComment(articleID, comment.Author, comment.Body)
	out := *created
	return &out, nil
}

func (m *MockCommentRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	if err := m.store.record("Comment.DeleteByID"); err != nil {
		return false, err
	}
	commentID, err := parseID(id)
	if err != nil {
		return false, err
	}
	if _, ok := m.store.Comments[commentID]; !ok {
		return false, nil
	}
	delete(m.store.Comments, commentID)
	return true, nil
}

func (m *MockCommentRepository) Exists(ctx context.Context, id string) (bool, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	if err := m.store.record("Comment.Exists"); err != nil {
		return false, err
	}
	commentID, err := parseID(id)
	if err != nil {
		return false, err
	}
	_, ok := m.store.Comments[commentID]
	return ok, nil
}

func (m *MockCommentRepository) Count(ctx context.Context) (int, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	if err := m.store.record("Comment.Count"); err != nil {
		return 0, err
	}
	return len(m.store.Comments), nil
}

func (m *MockUserRepository) GetAll(ctx context.Context) ([]models.User, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	if err := m.store.record("User.GetAll"); err != nil {
		return nil, err
	}
	return append([]models.User{}, m.store.Users...), nil
}

func (m *MockUserRepository) Exists(ctx context.Context, username string) (bool, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	if err := m.store.record("User.Exists"); err != nil {
		return false, err
	}
	for _, u := range m.store.Users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockUserRepository) Count(ctx context.Context) (int, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	if err := m.store.record("User.Count"); err != nil {
		return 0, err
	}
	return len(m.store.Users), nil
}

// MockPinger is a mock database health check
type MockPinger struct {
	Err error
}

func (p *MockPinger) HealthCheck(ctx context.Context) error {
	return p.Err
}

func (p *MockPinger) Stats() sql.DBStats {
	return sql.DBStats{OpenConnections: 1, Idle: 1}
}

// CallCount returns how many times a repository method ran
func (s *MockStore) CallCount(name string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Calls[name]
}
