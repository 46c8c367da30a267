package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nailuj1992/polls-api/pkg/domain"
)

func TestPgSQL_Answers(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	owner := seedUser(t, pg, "owner")
	respondent := seedUser(t, pg, "respondent")
	poll, questions := seedPoll(t, pg, owner.ID, "answered", "q1", "q2")
	other, otherQuestions := seedPoll(t, pg, owner.ID, "pristine", "q1")

	answered, err := pg.PollHasAnswers(ctx, poll.ID)
	require.NoError(t, err)
	require.False(t, answered)

	stored, err := pg.StoreAnswers(ctx,
		domain.Answer{QuestionID: questions[0].ID, Content: "yes", RespondentID: &respondent.ID},
		domain.Answer{QuestionID: questions[1].ID, Content: "no"},
	)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	require.Equal(t, "yes", stored[0].Content)
	require.Equal(t, respondent.ID, *stored[0].RespondentID)
	require.Nil(t, stored[1].RespondentID)

	answered, err = pg.PollHasAnswers(ctx, poll.ID)
	require.NoError(t, err)
	require.True(t, answered)

	answered, err = pg.PollHasAnswers(ctx, other.ID)
	require.NoError(t, err)
	require.False(t, answered)

	answers, err := pg.AnswersByQuestionIDs(ctx, questions[0].ID, questions[1].ID, otherQuestions[0].ID)
	require.NoError(t, err)
	require.Len(t, answers, 2)
	require.Equal(t, questions[0].ID, answers[0].QuestionID)
	require.Equal(t, questions[1].ID, answers[1].QuestionID)

	none, err := pg.AnswersByQuestionIDs(ctx)
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestPgSQL_AnsweredQuestionsCannotBeDeleted(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	owner := seedUser(t, pg, "owner")
	poll, questions := seedPoll(t, pg, owner.ID, "kept1234", "q1")

	_, err := pg.StoreAnswers(ctx, domain.Answer{QuestionID: questions[0].ID, Content: "a"})
	require.NoError(t, err)

	require.Error(t, pg.DeletePollQuestions(ctx, poll.ID))
	require.Error(t, pg.DeletePoll(ctx, poll.ID))
}
