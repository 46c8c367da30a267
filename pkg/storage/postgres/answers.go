package postgres

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"github.com/nailuj1992/polls-api/pkg/domain"
)

func (p *PgSQL) StoreAnswers(ctx context.Context, answers ...domain.Answer) ([]domain.Answer, error) {
	if len(answers) == 0 {
		return nil, nil
	}

	rows := make([]PgAnswer, len(answers))
	for i := range answers {
		rows[i].FromDomain(answers[i])
	}

	var stored []PgAnswer
	if err := p.Builder.Insert(answersTable).
		Rows(rows).
		Returning(&PgAnswer{}).
		Executor().ScanStructsContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store answers into pg: %w", err)
	}

	out := pgAnswersToDomain(stored)
	sortAnswers(out)

	return out, nil
}

func (p *PgSQL) AnswersByQuestionIDs(ctx context.Context, ids ...domain.QuestionID) ([]domain.Answer, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	raw := make([]int64, len(ids))
	for i, id := range ids {
		raw[i] = int64(id)
	}

	var rows []PgAnswer
	if err := p.Builder.From(answersTable).
		Where(goqu.I("id_question").In(raw)).
		Order(goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch answers from pg: %w", err)
	}

	return pgAnswersToDomain(rows), nil
}

func (p *PgSQL) PollHasAnswers(ctx context.Context, pollID domain.PollID) (bool, error) {
	var one int
	found, err := p.Builder.From(goqu.T(answersTable).As("a")).
		Join(goqu.T(questionsTable).As("q"), goqu.On(goqu.I("q.id").Eq(goqu.I("a.id_question")))).
		Where(goqu.I("q.id_poll").Eq(int64(pollID))).
		Select(goqu.L("1")).
		Limit(1).
		Executor().ScanValContext(ctx, &one)
	if err != nil {
		return false, fmt.Errorf("could not check poll answers in pg: %w", err)
	}

	return found, nil
}
