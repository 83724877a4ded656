package services

import (
	"context"

	"github.com/vncsmyrnk/polls/internal/core/domain"
	"github.com/vncsmyrnk/polls/internal/core/ports"
)

const latestQuestionsLimit = 5

type questionService struct {
	repo ports.QuestionRepository
}

func NewQuestionService(repo ports.QuestionRepository) ports.QuestionService {
	return &questionService{
		repo: repo,
	}
}

func (s *questionService) ListLatest(ctx context.Context) ([]*domain.Question, error) {
	return s.repo.ListLatest(ctx, latestQuestionsLimit)
}

func (s *questionService) GetQuestion(ctx context.Context, id int64) (*domain.Question, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *questionService) GetResults(ctx context.Context, id int64) (*domain.QuestionResults, error) {
	question, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return domain.NewQuestionResults(question), nil
}
