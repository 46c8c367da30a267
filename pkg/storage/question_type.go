package storage

import (
	"context"

	"github.com/nailuj1992/polls-api/pkg/domain"
)

// QuestionTypeStorage reads the question type vocabulary. Only out-of-band
// tooling writes to it.
type QuestionTypeStorage interface {
	// QuestionTypes returns the whole vocabulary ordered by code.
	QuestionTypes(ctx context.Context) ([]domain.QuestionType, error)
	// QuestionTypeByCode returns nil when the code is unknown.
	QuestionTypeByCode(ctx context.Context, code string) (*domain.QuestionType, error)
	// QuestionTypesByIDs returns the types matching ids in a single query.
	// Unknown ids are simply absent from the result.
	QuestionTypesByIDs(ctx context.Context, ids ...domain.QuestionTypeID) ([]domain.QuestionType, error)
	// UpsertQuestionType inserts a type or updates the description of the
	// existing type with the same code.
	UpsertQuestionType(ctx context.Context, questionType domain.QuestionType) (*domain.QuestionType, error)
}
