package ports

import (
	"context"

	"github.com/vncsmyrnk/polls/internal/core/domain"
)

type QuestionRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Question, error)
	ListLatest(ctx context.Context, limit int) ([]*domain.Question, error)
}

type QuestionService interface {
	ListLatest(ctx context.Context) ([]*domain.Question, error)
	GetQuestion(ctx context.Context, id int64) (*domain.Question, error)
	GetResults(ctx context.Context, id int64) (*domain.QuestionResults, error)
}
