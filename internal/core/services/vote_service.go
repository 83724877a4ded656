package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vncsmyrnk/polls/internal/core/domain"
	"github.com/vncsmyrnk/polls/internal/core/ports"
)

type voteService struct {
	questionRepo ports.QuestionRepository
	choiceRepo   ports.ChoiceRepository
}

func NewVoteService(questionRepo ports.QuestionRepository, choiceRepo ports.ChoiceRepository) ports.VoteService {
	return &voteService{
		questionRepo: questionRepo,
		choiceRepo:   choiceRepo,
	}
}

// CastVote adds one vote to the selected choice of a question. A missing,
// malformed or foreign choice all yield domain.ErrNoChoiceSelected and leave
// storage untouched.
func (s *voteService) CastVote(ctx context.Context, input ports.VoteInput) (*ports.VoteOutcome, error) {
	question, err := s.questionRepo.GetByID(ctx, input.QuestionID)
	if err != nil {
		return nil, err
	}

	choiceID, ok := parseChoiceID(input.Choice)
	if !ok {
		return nil, domain.ErrNoChoiceSelected
	}

	votes, err := s.choiceRepo.IncrementVotes(ctx, question.ID, choiceID)
	if err != nil {
		if errors.Is(err, domain.ErrChoiceNotFound) {
			return nil, domain.ErrNoChoiceSelected
		}
		return nil, fmt.Errorf("failed to cast vote: %w", err)
	}

	return &ports.VoteOutcome{
		QuestionID: question.ID,
		ChoiceID:   choiceID,
		Votes:      votes,
	}, nil
}

func parseChoiceID(raw string) (int64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
