package ports

import "context"

type ChoiceRepository interface {
	// IncrementVotes adds one vote to the choice in a single storage-side
	// update and returns the new count. It returns domain.ErrChoiceNotFound
	// when the choice does not exist under the given question.
	IncrementVotes(ctx context.Context, questionID, choiceID int64) (int64, error)
}

type VoteInput struct {
	QuestionID int64
	// Choice is the raw form value; it may be empty or malformed.
	Choice string
}

type VoteOutcome struct {
	QuestionID int64
	ChoiceID   int64
	Votes      int64
}

type VoteService interface {
	CastVote(ctx context.Context, input VoteInput) (*VoteOutcome, error)
}
