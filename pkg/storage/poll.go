package storage

import (
	"context"

	"github.com/nailuj1992/polls-api/pkg/domain"
)

// PollUpdates holds the mutable fields of a poll.
type PollUpdates struct {
	Title       string
	Description string
}

// PollStorage persists polls and their ordered questions. Lookups return nil
// when nothing matches.
type PollStorage interface {
	// StorePoll inserts a poll. When its link is already used ErrLinkTaken is
	// returned and nothing is written, so callers can retry with a new link
	// inside the same transaction.
	StorePoll(ctx context.Context, poll domain.Poll) (*domain.Poll, error)
	PollByLink(ctx context.Context, link string) (*domain.Poll, error)
	// LockPollByLink is PollByLink taking a row lock (SELECT ... FOR UPDATE)
	// that is held until the surrounding transaction ends. Mutations of a poll
	// and submissions of answers to it serialize on this lock.
	LockPollByLink(ctx context.Context, link string) (*domain.Poll, error)
	// UserPolls returns the polls owned by userID ordered by id.
	UserPolls(ctx context.Context, userID domain.UserID) ([]domain.Poll, error)
	// UpdatePoll sets title and description and returns the updated row, or
	// nil when the poll does not exist.
	UpdatePoll(ctx context.Context, id domain.PollID, updates PollUpdates) (*domain.Poll, error)
	// DeletePoll deletes a poll; its questions are removed by cascade.
	DeletePoll(ctx context.Context, id domain.PollID) error

	// StoreQuestions inserts questions and returns them in input order.
	StoreQuestions(ctx context.Context, questions ...domain.Question) ([]domain.Question, error)
	// PollQuestions returns the questions of a poll ordered by position.
	PollQuestions(ctx context.Context, pollID domain.PollID) ([]domain.Question, error)
	// DeletePollQuestions removes every question of a poll.
	DeletePollQuestions(ctx context.Context, pollID domain.PollID) error
}
