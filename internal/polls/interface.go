package polls

import (
	"context"

	"github.com/nailuj1992/polls-api/pkg/domain"
)

//go:generate mockgen -package mockpolls -source=interface.go -destination=mock/mockpolls.go *
type Lifecycle interface {
	CreatePoll(ctx context.Context, input PollInput) (*domain.PollDetail, error)
	UserPolls(ctx context.Context, username string) ([]domain.Poll, error)
	PollByLink(ctx context.Context, link string) (*domain.PollDetail, error)
	AnswerPoll(ctx context.Context, link string, input AnswerInput) (*AnswerResult, error)
	EditPoll(ctx context.Context, link string, input PollInput) (*domain.PollDetail, error)
	DeletePoll(ctx context.Context, link string, username string) error
	PollAnswers(ctx context.Context, link string, username string) (*domain.PollAnswers, error)
}
