package postgres

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"github.com/nailuj1992/polls-api/pkg/domain"
)

func (p *PgSQL) QuestionTypes(ctx context.Context) ([]domain.QuestionType, error) {
	var rows []PgQuestionType
	if err := p.Builder.From(questionTypesTable).
		Order(goqu.I("code").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch question types from pg: %w", err)
	}

	return pgQuestionTypesToDomain(rows), nil
}

func (p *PgSQL) QuestionTypeByCode(ctx context.Context, code string) (*domain.QuestionType, error) {
	var row PgQuestionType
	found, err := p.Builder.From(questionTypesTable).
		Where(goqu.I("code").Eq(code)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch question type by code: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) QuestionTypesByIDs(ctx context.Context, ids ...domain.QuestionTypeID) ([]domain.QuestionType, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	raw := make([]int64, len(ids))
	for i, id := range ids {
		raw[i] = int64(id)
	}

	var rows []PgQuestionType
	if err := p.Builder.From(questionTypesTable).
		Where(goqu.I("id").In(raw)).
		Order(goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch question types by ids: %w", err)
	}

	return pgQuestionTypesToDomain(rows), nil
}

func (p *PgSQL) UpsertQuestionType(ctx context.Context, questionType domain.QuestionType) (*domain.QuestionType, error) {
	var row PgQuestionType
	if _, err := p.Builder.Insert(questionTypesTable).
		Rows(PgQuestionType{
			Code:        questionType.Code,
			Description: questionType.Description,
		}).
		OnConflict(goqu.DoUpdate("code", goqu.Record{
			"description": goqu.L("EXCLUDED.description"),
		})).
		Returning(&PgQuestionType{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return nil, fmt.Errorf("could not upsert question type into pg: %w", err)
	}

	return row.ToDomain(), nil
}

func pgQuestionTypesToDomain(rows []PgQuestionType) []domain.QuestionType {
	out := make([]domain.QuestionType, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out
}
