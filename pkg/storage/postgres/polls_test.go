package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nailuj1992/polls-api/pkg/domain"
	"github.com/nailuj1992/polls-api/pkg/storage"
)

func TestPgSQL_StorePoll(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	owner := seedUser(t, pg, "owner")

	poll, questions := seedPoll(t, pg, owner.ID, "abcd1234", "first", "second", "third")
	require.NotZero(t, poll.ID)
	require.Equal(t, owner.ID, poll.OwnerID)
	require.True(t, poll.UpdatedAt.IsZero())
	require.Len(t, questions, 3)
	for i, q := range questions {
		require.Equal(t, i, q.Position)
		require.Equal(t, poll.ID, q.PollID)
	}
	require.Equal(t, "first", questions[0].Text)
	require.Equal(t, "third", questions[2].Text)

	t.Run("link collision writes nothing", func(t *testing.T) {
		err := pg.WithTx(ctx, func(s storage.AllStorage) error {
			_, err := s.StorePoll(ctx, domain.Poll{Title: "dup", Link: "abcd1234", OwnerID: owner.ID})
			require.ErrorIs(t, err, storage.ErrLinkTaken)

			// the transaction is still usable after a collision
			_, err = s.StorePoll(ctx, domain.Poll{Title: "retry", Link: "zzzz9999", OwnerID: owner.ID})

			return err
		})
		require.NoError(t, err)

		polls, err := pg.UserPolls(ctx, owner.ID)
		require.NoError(t, err)
		require.Len(t, polls, 2)
		require.Equal(t, "abcd1234", polls[0].Link)
		require.Equal(t, "zzzz9999", polls[1].Link)
	})
}

func TestPgSQL_PollLookupsAndUpdates(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	owner := seedUser(t, pg, "owner")
	poll, _ := seedPoll(t, pg, owner.ID, "link0001", "q1", "q2")

	t.Run("by link", func(t *testing.T) {
		found, err := pg.PollByLink(ctx, "link0001")
		require.NoError(t, err)
		require.Equal(t, poll.ID, found.ID)

		missing, err := pg.PollByLink(ctx, "nope")
		require.NoError(t, err)
		require.Nil(t, missing)
	})

	t.Run("lock by link inside tx", func(t *testing.T) {
		err := pg.WithTx(ctx, func(s storage.AllStorage) error {
			locked, err := s.LockPollByLink(ctx, "link0001")
			require.NoError(t, err)
			require.Equal(t, poll.ID, locked.ID)

			return nil
		})
		require.NoError(t, err)
	})

	t.Run("update sets updated_at", func(t *testing.T) {
		updated, err := pg.UpdatePoll(ctx, poll.ID, storage.PollUpdates{Title: "New", Description: "Changed"})
		require.NoError(t, err)
		require.Equal(t, "New", updated.Title)
		require.Equal(t, "Changed", updated.Description)
		require.Equal(t, "link0001", updated.Link)
		require.False(t, updated.UpdatedAt.IsZero())

		missing, err := pg.UpdatePoll(ctx, domain.PollID(9999), storage.PollUpdates{Title: "x"})
		require.NoError(t, err)
		require.Nil(t, missing)
	})

	t.Run("replace questions", func(t *testing.T) {
		require.NoError(t, pg.DeletePollQuestions(ctx, poll.ID))

		questions, err := pg.PollQuestions(ctx, poll.ID)
		require.NoError(t, err)
		require.Empty(t, questions)

		qt, err := pg.QuestionTypeByCode(ctx, "choice")
		require.NoError(t, err)
		_, err = pg.StoreQuestions(ctx,
			domain.Question{PollID: poll.ID, Text: "b", TypeID: qt.ID, Position: 1},
			domain.Question{PollID: poll.ID, Text: "a", TypeID: qt.ID, Position: 0},
		)
		require.NoError(t, err)

		questions, err = pg.PollQuestions(ctx, poll.ID)
		require.NoError(t, err)
		require.Len(t, questions, 2)
		require.Equal(t, "a", questions[0].Text)
		require.Equal(t, "b", questions[1].Text)
	})

	t.Run("delete cascades questions", func(t *testing.T) {
		require.NoError(t, pg.DeletePoll(ctx, poll.ID))

		found, err := pg.PollByLink(ctx, "link0001")
		require.NoError(t, err)
		require.Nil(t, found)

		questions, err := pg.PollQuestions(ctx, poll.ID)
		require.NoError(t, err)
		require.Empty(t, questions)
	})
}
