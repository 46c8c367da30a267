package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nailuj1992/polls-api/pkg/domain"
)

func TestPgSQL_Tallies(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	owner := seedUser(t, pg, "owner")
	alice := seedUser(t, pg, "alice")
	poll, questions := seedPoll(t, pg, owner.ID, "tally001", "q1", "q2")

	tally, err := pg.TallyByPoll(ctx, poll.ID)
	require.NoError(t, err)
	require.Nil(t, tally)

	tally, err = pg.RefreshTally(ctx, poll.ID)
	require.NoError(t, err)
	require.NotNil(t, tally)
	require.Zero(t, tally.Answers)
	require.Zero(t, tally.NamedRespondents)
	require.True(t, tally.LastAnsweredAt.IsZero())

	_, err = pg.StoreAnswers(ctx,
		domain.Answer{QuestionID: questions[0].ID, Content: "a", RespondentID: &alice.ID},
		domain.Answer{QuestionID: questions[1].ID, Content: "b", RespondentID: &alice.ID},
		domain.Answer{QuestionID: questions[0].ID, Content: "c"},
		domain.Answer{QuestionID: questions[1].ID, Content: "d"},
	)
	require.NoError(t, err)

	tally, err = pg.RefreshTally(ctx, poll.ID)
	require.NoError(t, err)
	require.EqualValues(t, 4, tally.Answers)
	require.EqualValues(t, 1, tally.NamedRespondents)
	require.False(t, tally.LastAnsweredAt.IsZero())

	stored, err := pg.TallyByPoll(ctx, poll.ID)
	require.NoError(t, err)
	require.Equal(t, tally.Answers, stored.Answers)

	missing, err := pg.RefreshTally(ctx, domain.PollID(9999))
	require.NoError(t, err)
	require.Nil(t, missing)
}
