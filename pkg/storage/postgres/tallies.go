package postgres

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"github.com/nailuj1992/polls-api/pkg/domain"
)

// RefreshTally recomputes the tally with a single INSERT ... SELECT over the
// answer ledger. The poll row drives the query, so a deleted poll yields no
// row and nil is returned.
func (p *PgSQL) RefreshTally(ctx context.Context, pollID domain.PollID) (*domain.Tally, error) {
	summary := p.Builder.From(goqu.T(pollsTable).As("p")).
		LeftJoin(goqu.T(questionsTable).As("q"), goqu.On(goqu.I("q.id_poll").Eq(goqu.I("p.id")))).
		LeftJoin(goqu.T(answersTable).As("a"), goqu.On(goqu.I("a.id_question").Eq(goqu.I("q.id")))).
		Select(
			goqu.I("p.id"),
			goqu.COUNT(goqu.I("a.id")),
			goqu.COUNT(goqu.DISTINCT(goqu.I("a.id_user_answered"))),
			goqu.MAX(goqu.I("a.created_at")),
			goqu.L("CURRENT_TIMESTAMP"),
		).
		Where(goqu.I("p.id").Eq(int64(pollID))).
		GroupBy(goqu.I("p.id"))

	var row PgTally
	found, err := p.Builder.Insert(pollTalliesTable).
		Cols("id_poll", "answers", "named_respondents", "last_answered_at", "refreshed_at").
		FromQuery(summary).
		OnConflict(goqu.DoUpdate("id_poll", goqu.Record{
			"answers":           goqu.L("EXCLUDED.answers"),
			"named_respondents": goqu.L("EXCLUDED.named_respondents"),
			"last_answered_at":  goqu.L("EXCLUDED.last_answered_at"),
			"refreshed_at":      goqu.L("EXCLUDED.refreshed_at"),
		})).
		Returning(&PgTally{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not refresh poll tally in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) TallyByPoll(ctx context.Context, pollID domain.PollID) (*domain.Tally, error) {
	var row PgTally
	found, err := p.Builder.From(pollTalliesTable).
		Where(goqu.I("id_poll").Eq(int64(pollID))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch poll tally from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
