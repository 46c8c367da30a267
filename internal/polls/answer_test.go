package polls_test

import (
	"context"
	"testing"

	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/nailuj1992/polls-api/internal/polls"
	"github.com/nailuj1992/polls-api/pkg/domain"
	"github.com/nailuj1992/polls-api/pkg/serrors"
	mockstorage "github.com/nailuj1992/polls-api/pkg/storage/mock"
)

var twoQuestions = []domain.Question{ //nolint: gochecknoglobals
	{ID: 1, PollID: pollID, Text: "a", TypeID: textType, Position: 0},
	{ID: 2, PollID: pollID, Text: "b", TypeID: choiceType, Position: 1},
}

func answersFor(ids ...domain.QuestionID) polls.AnswerInput {
	in := polls.AnswerInput{}
	for _, id := range ids {
		in.Answers = append(in.Answers, polls.AnswerItem{QuestionID: id, Content: "content"})
	}

	return in
}

func TestLifecycle_AnswerPoll_Empty(t *testing.T) {
	_, _, l := newTestLifecycle(t)

	_, err := l.AnswerPoll(context.Background(), link, polls.AnswerInput{})
	requireKind(t, err, serrors.ErrInvalidInput, "missing required fields")
}

func TestLifecycle_AnswerPoll_PollNotFound(t *testing.T) {
	ctrl, st, l := newTestLifecycle(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().LockPollByLink(gomock.Any(), "unknown-link").Return(nil, nil)
	})

	_, err := l.AnswerPoll(context.Background(), "unknown-link", answersFor(1, 2))
	requireKind(t, err, serrors.ErrNotFound, "poll not found")
}

func TestLifecycle_AnswerPoll_UnknownRespondent(t *testing.T) {
	ctrl, st, l := newTestLifecycle(t)

	in := answersFor(1, 2)
	in.Username = "ghost"

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().LockPollByLink(gomock.Any(), link).Return(lunchPoll, nil)
		tx.EXPECT().UserByUsername(gomock.Any(), "ghost").Return(nil, nil)
	})

	_, err := l.AnswerPoll(context.Background(), link, in)
	requireKind(t, err, serrors.ErrInvalidInput, "username does not exist")
}

func TestLifecycle_AnswerPoll_Arity(t *testing.T) {
	tests := []struct {
		name string
		ids  []domain.QuestionID
	}{
		{"too few", []domain.QuestionID{1}},
		{"too many", []domain.QuestionID{1, 2, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl, st, l := newTestLifecycle(t)

			expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
				tx.EXPECT().LockPollByLink(gomock.Any(), link).Return(lunchPoll, nil)
				tx.EXPECT().PollQuestions(gomock.Any(), pollID).Return(twoQuestions, nil)
				tx.EXPECT().StoreAnswers(gomock.Any(), gomock.Any()).Times(0)
			})

			_, err := l.AnswerPoll(context.Background(), link, answersFor(tt.ids...))
			requireKind(t, err, serrors.ErrInvalidInput, "number of answers does not match number of questions")
		})
	}
}

func TestLifecycle_AnswerPoll_ForeignQuestion(t *testing.T) {
	ctrl, st, l := newTestLifecycle(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().LockPollByLink(gomock.Any(), link).Return(lunchPoll, nil)
		tx.EXPECT().PollQuestions(gomock.Any(), pollID).Return(twoQuestions, nil)
		tx.EXPECT().StoreAnswers(gomock.Any(), gomock.Any()).Times(0)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	})

	_, err := l.AnswerPoll(context.Background(), link, answersFor(1, 99))
	requireKind(t, err, serrors.ErrInvalidInput, "question 99 does not belong to the poll")
}

// duplicates pass: only the count and membership are checked.
func TestLifecycle_AnswerPoll_DuplicateQuestionIDsAccepted(t *testing.T) {
	ctrl, st, l := newTestLifecycle(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().LockPollByLink(gomock.Any(), link).Return(lunchPoll, nil)
		tx.EXPECT().PollQuestions(gomock.Any(), pollID).Return(twoQuestions, nil)
		tx.EXPECT().StoreAnswers(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, answers ...domain.Answer) ([]domain.Answer, error) {
				return answers, nil
			},
		)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(true, nil)
	})

	res, err := l.AnswerPoll(context.Background(), link, answersFor(1, 1))
	require.NoError(t, err)
	require.Equal(t, 2, res.Count)
}

func TestLifecycle_AnswerPoll_Anonymous(t *testing.T) {
	ctrl, st, l := newTestLifecycle(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().LockPollByLink(gomock.Any(), link).Return(lunchPoll, nil)
		tx.EXPECT().PollQuestions(gomock.Any(), pollID).Return(twoQuestions, nil)
		tx.EXPECT().StoreAnswers(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, answers ...domain.Answer) ([]domain.Answer, error) {
				require.Len(t, answers, 2)
				for _, a := range answers {
					require.Nil(t, a.RespondentID)
					require.Equal(t, "content", a.Content)
				}
				require.Equal(t, domain.QuestionID(2), answers[0].QuestionID)

				return answers, nil
			},
		)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
			func(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
				job, ok := args.(polls.TallyJobArgs)
				require.True(t, ok)
				require.Equal(t, pollID, job.PollID)

				return true, nil
			},
		)
	})

	res, err := l.AnswerPoll(context.Background(), link, answersFor(2, 1))
	require.NoError(t, err)
	require.Equal(t, 2, res.Count)
	require.Equal(t, "Poll answered successfully", res.Message)
}

func TestLifecycle_AnswerPoll_Named(t *testing.T) {
	ctrl, st, l := newTestLifecycle(t)

	in := answersFor(1, 2)
	in.Username = "bob"

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().LockPollByLink(gomock.Any(), link).Return(lunchPoll, nil)
		tx.EXPECT().UserByUsername(gomock.Any(), "bob").Return(bob, nil)
		tx.EXPECT().PollQuestions(gomock.Any(), pollID).Return(twoQuestions, nil)
		tx.EXPECT().StoreAnswers(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, answers ...domain.Answer) ([]domain.Answer, error) {
				for _, a := range answers {
					require.NotNil(t, a.RespondentID)
					require.Equal(t, otherID, *a.RespondentID)
				}

				return answers, nil
			},
		)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(true, nil)
	})

	res, err := l.AnswerPoll(context.Background(), link, in)
	require.NoError(t, err)
	require.Equal(t, 2, res.Count)
	require.Equal(t, "Poll answered successfully by bob", res.Message)
}
