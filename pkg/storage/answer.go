package storage

import (
	"context"

	"github.com/nailuj1992/polls-api/pkg/domain"
)

// AnswerStorage is the append-only answer ledger. There is intentionally no
// update or delete.
type AnswerStorage interface {
	// StoreAnswers inserts answers and returns them in input order.
	StoreAnswers(ctx context.Context, answers ...domain.Answer) ([]domain.Answer, error)
	// AnswersByQuestionIDs returns every answer of the given questions in a
	// single query, ordered by id.
	AnswersByQuestionIDs(ctx context.Context, ids ...domain.QuestionID) ([]domain.Answer, error)
	// PollHasAnswers reports whether any question of the poll has an answer.
	PollHasAnswers(ctx context.Context, pollID domain.PollID) (bool, error)
}
