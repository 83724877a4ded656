package services

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/vncsmyrnk/polls/internal/core/domain"
)

// memoryStore backs both repositories. Increments run under the mutex so the
// fake keeps the same no-lost-update guarantee as the SQL update.
type memoryStore struct {
	mu         sync.Mutex
	questions  map[int64]*domain.Question
	increments int
	failWith   error
}

func newMemoryStore(questions ...*domain.Question) *memoryStore {
	s := &memoryStore{questions: make(map[int64]*domain.Question)}
	for _, q := range questions {
		s.questions[q.ID] = q
	}
	return s
}

func (s *memoryStore) GetByID(ctx context.Context, id int64) (*domain.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, ok := s.questions[id]
	if !ok {
		return nil, domain.ErrQuestionNotFound
	}
	cp := *q
	cp.Choices = append([]domain.Choice(nil), q.Choices...)
	return &cp, nil
}

func (s *memoryStore) ListLatest(ctx context.Context, limit int) ([]*domain.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var list []*domain.Question
	for _, q := range s.questions {
		list = append(list, q)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].PubDate.After(list[j].PubDate) })
	if len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

func (s *memoryStore) IncrementVotes(ctx context.Context, questionID, choiceID int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failWith != nil {
		return 0, s.failWith
	}
	q, ok := s.questions[questionID]
	if !ok {
		return 0, domain.ErrChoiceNotFound
	}
	for i := range q.Choices {
		if q.Choices[i].ID == choiceID {
			q.Choices[i].Votes++
			s.increments++
			return q.Choices[i].Votes, nil
		}
	}
	return 0, domain.ErrChoiceNotFound
}

func (s *memoryStore) votes(questionID, choiceID int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.questions[questionID].Choices {
		if c.ID == choiceID {
			return c.Votes
		}
	}
	return -1
}

var errStorageDown = errors.New("connection refused")
