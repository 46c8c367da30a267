package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"github.com/riverqueue/river/rivertype"
)

// AddJob enqueues a River job.
//
// On a transactional handle the job is inserted with InsertTx on the open
// *sql.Tx, so it is only visible to workers once the transaction commits and
// disappears with a rollback. Otherwise it is inserted straight through the
// pgx pool.
//
// The returned bool is false when River skipped the insert because a unique
// job with the same arguments is already waiting.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	var (
		res *rivertype.JobInsertResult
		err error
	)

	switch db := p.DB.(type) {
	case *sql.Tx:
		res, err = insertTx(ctx, db, args, opts)
	default:
		res, err = insert(ctx, p, args, opts)
	}
	if err != nil {
		return false, err
	}

	return !res.UniqueSkippedAsDuplicate, nil
}

func insertTx(ctx context.Context, tx *sql.Tx, args river.JobArgs, opts *river.InsertOpts) (*rivertype.JobInsertResult, error) {
	client, err := river.NewClient[*sql.Tx](riverdatabasesql.New(nil), &river.Config{})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	res, err := client.InsertTx(ctx, tx, args, opts)
	if err != nil {
		return nil, fmt.Errorf("could not insert job %s in tx: %w", args.Kind(), err)
	}

	return res, nil
}

func insert(ctx context.Context, p *PgSQL, args river.JobArgs, opts *river.InsertOpts) (*rivertype.JobInsertResult, error) {
	if p.Pool == nil {
		db, ok := p.DB.(*sql.DB)
		if !ok {
			return nil, fmt.Errorf("could not insert job %s: unsupported db handle %T", args.Kind(), p.DB)
		}

		client, err := river.NewClient(riverdatabasesql.New(db), &river.Config{})
		if err != nil {
			return nil, fmt.Errorf("could not create river queue client: %w", err)
		}

		res, err := client.Insert(ctx, args, opts)
		if err != nil {
			return nil, fmt.Errorf("could not insert job %s: %w", args.Kind(), err)
		}

		return res, nil
	}

	client, err := river.NewClient[pgx.Tx](riverpgxv5.New(p.Pool), &river.Config{})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	res, err := client.Insert(ctx, args, opts)
	if err != nil {
		return nil, fmt.Errorf("could not insert job %s: %w", args.Kind(), err)
	}

	return res, nil
}
