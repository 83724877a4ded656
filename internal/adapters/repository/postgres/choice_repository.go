package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vncsmyrnk/polls/internal/core/domain"
	"github.com/vncsmyrnk/polls/internal/core/ports"
)

type choiceRepository struct {
	db *sql.DB
}

func NewChoiceRepository(db *sql.DB) ports.ChoiceRepository {
	return &choiceRepository{
		db: db,
	}
}

// IncrementVotes lets postgres compute votes + 1 under the row lock taken by
// UPDATE, so concurrent calls never overwrite each other.
func (r *choiceRepository) IncrementVotes(ctx context.Context, questionID, choiceID int64) (int64, error) {
	query := `
		UPDATE choices
		SET votes = votes + 1
		WHERE id = $1 AND question_id = $2
		RETURNING votes
	`

	var votes int64
	err := r.db.QueryRowContext(ctx, query, choiceID, questionID).Scan(&votes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.ErrChoiceNotFound
		}
		return 0, fmt.Errorf("failed to increment votes for choice %d: %w", choiceID, err)
	}
	return votes, nil
}
