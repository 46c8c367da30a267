package postgres

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"

	"github.com/nailuj1992/polls-api/pkg/domain"
	"github.com/nailuj1992/polls-api/pkg/storage"
)

// StorePoll inserts a poll with ON CONFLICT DO NOTHING so that a link
// collision does not abort the surrounding transaction.
func (p *PgSQL) StorePoll(ctx context.Context, poll domain.Poll) (*domain.Poll, error) {
	var row PgPoll
	row.FromDomain(poll)

	var stored PgPoll
	found, err := p.Builder.Insert(pollsTable).
		Rows(row).
		OnConflict(goqu.DoNothing()).
		Returning(&PgPoll{}).
		Executor().ScanStructContext(ctx, &stored)
	if err != nil {
		return nil, fmt.Errorf("could not store poll into pg: %w", err)
	}
	if !found {
		return nil, storage.ErrLinkTaken
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) PollByLink(ctx context.Context, link string) (*domain.Poll, error) {
	return p.pollByLink(ctx, p.Builder.From(pollsTable), link)
}

func (p *PgSQL) LockPollByLink(ctx context.Context, link string) (*domain.Poll, error) {
	return p.pollByLink(ctx, p.Builder.From(pollsTable).ForUpdate(exp.Wait), link)
}

func (p *PgSQL) pollByLink(ctx context.Context, ds *goqu.SelectDataset, link string) (*domain.Poll, error) {
	var row PgPoll
	found, err := ds.Where(goqu.I("link").Eq(link)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch poll by link: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) UserPolls(ctx context.Context, userID domain.UserID) ([]domain.Poll, error) {
	var rows []PgPoll
	if err := p.Builder.From(pollsTable).
		Where(goqu.I("id_user").Eq(int64(userID))).
		Order(goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch user polls from pg: %w", err)
	}

	out := make([]domain.Poll, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}

func (p *PgSQL) UpdatePoll(ctx context.Context, id domain.PollID, updates storage.PollUpdates) (*domain.Poll, error) {
	var row PgPoll
	found, err := p.Builder.Update(pollsTable).
		Set(goqu.Record{
			"title":       updates.Title,
			"description": updates.Description,
			"updated_at":  goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(goqu.I("id").Eq(int64(id))).
		Returning(&PgPoll{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update poll in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) DeletePoll(ctx context.Context, id domain.PollID) error {
	if _, err := p.Builder.Delete(pollsTable).
		Where(goqu.I("id").Eq(int64(id))).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not delete poll in pg: %w", err)
	}

	return nil
}

func (p *PgSQL) StoreQuestions(ctx context.Context, questions ...domain.Question) ([]domain.Question, error) {
	if len(questions) == 0 {
		return nil, nil
	}

	rows := make([]PgQuestion, len(questions))
	for i := range questions {
		rows[i].FromDomain(questions[i])
	}

	var stored []PgQuestion
	if err := p.Builder.Insert(questionsTable).
		Rows(rows).
		Returning(&PgQuestion{}).
		Executor().ScanStructsContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store questions into pg: %w", err)
	}

	// a multi-row INSERT ... RETURNING does not promise row order.
	out := pgQuestionsToDomain(stored)
	sortQuestions(out)

	return out, nil
}

func (p *PgSQL) PollQuestions(ctx context.Context, pollID domain.PollID) ([]domain.Question, error) {
	var rows []PgQuestion
	if err := p.Builder.From(questionsTable).
		Where(goqu.I("id_poll").Eq(int64(pollID))).
		Order(goqu.I("position").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch poll questions from pg: %w", err)
	}

	return pgQuestionsToDomain(rows), nil
}

func (p *PgSQL) DeletePollQuestions(ctx context.Context, pollID domain.PollID) error {
	if _, err := p.Builder.Delete(questionsTable).
		Where(goqu.I("id_poll").Eq(int64(pollID))).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not delete poll questions in pg: %w", err)
	}

	return nil
}
