package storage

import "errors"

// Common errors returned by storage implementations.
var (
	// ErrAlreadyInTx is returned when Begin is called on a handle that is
	// already inside a transaction.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned when Commit or Rollback is called outside a
	// transaction.
	ErrNotInTx = errors.New("not in tx")
	// ErrDuplicate is returned when an insert violates a unique constraint,
	// e.g. a username or email registered concurrently.
	ErrDuplicate = errors.New("duplicate value")
	// ErrLinkTaken is returned by StorePoll when the generated link is already
	// used by another poll. Nothing is written in that case.
	ErrLinkTaken = errors.New("poll link already taken")
)
