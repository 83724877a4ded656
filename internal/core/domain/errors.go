package domain

import "errors"

var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrChoiceNotFound   = errors.New("choice not found for this question")
	ErrInternal         = errors.New("internal server error")
	ErrNoChoiceSelected = &ValidationError{Message: "You didn't select a choice."}
)

// ValidationError is a recoverable input error. The caller is expected to
// show the message next to the form that produced it.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
