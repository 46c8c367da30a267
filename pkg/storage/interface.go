// Package storage defines the persistence interfaces of the poll service.
// Every method works the same inside and outside a transaction, so the
// lifecycle engine can compose reads that gate writes and the writes
// themselves into one atomic unit.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import "context"

// AllStorage is the composite of all entity repositories.
type AllStorage interface {
	UserStorage
	QuestionTypeStorage
	PollStorage
	AnswerStorage
	TallyStorage
	JobStorage
}

// TxStorage is a storage handle bound to an open transaction. It becomes
// unusable after Commit or Rollback.
type TxStorage interface {
	AllStorage

	// Commit finalizes the transaction, persisting all changes.
	Commit() error
	// Rollback aborts the transaction, discarding all uncommitted changes.
	Rollback() error
}

// Storage is a non-transactional storage handle able to start transactions.
type Storage interface {
	AllStorage

	// Close releases the underlying connection pool.
	Close() error

	// Begin starts a new transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx begins a transaction, invokes cb with it, commits when cb returns
	// nil and rolls back on every other exit, including a panic in cb.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
