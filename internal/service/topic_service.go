package service

import (
	"context"

	"github.com/news-forum-api/internal/models"
	"github.com/news-forum-api/internal/repository"
)

type topicService struct {
	topics repository.TopicRepository
}

func newTopicService(topics repository.TopicRepository) *topicService {
	return &topicService{topics: topics}
}

// FetchAllTopics returns every topic; an empty list is valid
func (s *topicService) FetchAllTopics(ctx context.Context) ([]models.Topic, error) {
	return s.topics.GetAll(ctx)
}
