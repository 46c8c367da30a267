package v1handler_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/nailuj1992/polls-api/internal/polls"
	"github.com/nailuj1992/polls-api/pkg/domain"
	"github.com/nailuj1992/polls-api/pkg/serrors"
)

const link = "abc12345"

var (
	textType = domain.QuestionType{ID: 100, Code: "text", Description: "Free text answer"}

	lunchPoll = domain.Poll{
		ID:          10,
		Title:       "Lunch",
		Description: "Where do we eat?",
		Link:        link,
		OwnerID:     1,
	}

	lunchDetail = &domain.PollDetail{
		Poll: lunchPoll,
		Questions: []domain.QuestionDetail{
			{
				Question: domain.Question{ID: 7, PollID: 10, Text: "Where?", TypeID: textType.ID},
				Type:     textType,
			},
		},
	}

	lunchInput = polls.PollInput{
		Title:       "Lunch",
		Description: "Where do we eat?",
		Username:    "alice",
		Questions:   []polls.QuestionInput{{Text: "Where?", TypeCode: "text"}},
	}
)

const lunchBody = `{
	"title": "Lunch",
	"description": "Where do we eat?",
	"username": "alice",
	"questions": [{"text": "Where?", "typeField": "text"}]
}`

const lunchCreated = `{
	"poll": {"id": 10, "title": "Lunch", "description": "Where do we eat?", "link": "abc12345", "id_user": 1},
	"questions": [{"id": 7, "id_poll": 10, "text": "Where?", "type_field": 100}]
}`

func TestCreatePoll(t *testing.T) {
	srv := newTestServer(t)

	srv.polls.EXPECT().CreatePoll(gomock.Any(), lunchInput).Return(lunchDetail, nil)

	rec := srv.do(http.MethodPost, "/api/polls", lunchBody)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.JSONEq(t, withMessage(t, lunchCreated, "Poll created successfully"), rec.Body.String())
}

func TestCreatePoll_Errors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "missing fields",
			err:      serrors.With(serrors.ErrInvalidInput, "missing required fields"),
			wantCode: http.StatusBadRequest,
			wantBody: `{"code":"INVALID_INPUT","message":"missing required fields"}`,
		},
		{
			name:     "unknown owner",
			err:      serrors.With(serrors.ErrInvalidInput, "username does not exist"),
			wantCode: http.StatusBadRequest,
			wantBody: `{"code":"INVALID_INPUT","message":"username does not exist"}`,
		},
		{
			name:     "storage failure",
			err:      serrors.Wrap(serrors.ErrInternal, http.ErrHandlerTimeout, "could not store poll"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"code":"INTERNAL","message":"internal error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t)
			srv.polls.EXPECT().CreatePoll(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			rec := srv.do(http.MethodPost, "/api/polls", lunchBody)
			require.Equal(t, tt.wantCode, rec.Code)
			require.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestCreatePoll_EmptyBodyReachesValidation(t *testing.T) {
	srv := newTestServer(t)

	srv.polls.EXPECT().CreatePoll(gomock.Any(), polls.PollInput{Questions: []polls.QuestionInput{}}).
		Return(nil, serrors.With(serrors.ErrInvalidInput, "missing required fields"))

	rec := srv.do(http.MethodPost, "/api/polls", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUserPolls(t *testing.T) {
	srv := newTestServer(t)

	srv.polls.EXPECT().UserPolls(gomock.Any(), "alice").Return([]domain.Poll{lunchPoll}, nil)

	rec := srv.do(http.MethodGet, "/api/polls/alice", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[{"id": 10, "title": "Lunch", "description": "Where do we eat?", "link": "abc12345"}]`,
		rec.Body.String())
}

func TestUserPolls_UnknownUser(t *testing.T) {
	srv := newTestServer(t)

	srv.polls.EXPECT().UserPolls(gomock.Any(), "nobody").
		Return(nil, serrors.With(serrors.ErrInvalidInput, "username does not exist"))

	rec := srv.do(http.MethodGet, "/api/polls/nobody", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"code":"INVALID_INPUT","message":"username does not exist"}`, rec.Body.String())
}

func TestPollByLink(t *testing.T) {
	srv := newTestServer(t)

	srv.polls.EXPECT().PollByLink(gomock.Any(), link).Return(lunchDetail, nil)

	rec := srv.do(http.MethodGet, "/api/polls/link/"+link, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{
		"id": 10,
		"title": "Lunch",
		"description": "Where do we eat?",
		"link": "abc12345",
		"questions": [{
			"id": 7,
			"text": "Where?",
			"typeField": {"id": 100, "code": "text", "description": "Free text answer"}
		}]
	}`, rec.Body.String())
}

func TestPollByLink_NotFound(t *testing.T) {
	srv := newTestServer(t)

	srv.polls.EXPECT().PollByLink(gomock.Any(), "missing1").
		Return(nil, serrors.With(serrors.ErrNotFound, "poll not found"))

	rec := srv.do(http.MethodGet, "/api/polls/link/missing1", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"code":"NOT_FOUND","message":"poll not found"}`, rec.Body.String())
}

func TestAnswerPoll(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		input    polls.AnswerInput
		result   *polls.AnswerResult
		wantBody string
	}{
		{
			name:     "anonymous",
			body:     `{"answers": [{"idQuestion": 7, "content": "Pizza"}]}`,
			input:    polls.AnswerInput{Answers: []polls.AnswerItem{{QuestionID: 7, Content: "Pizza"}}},
			result:   &polls.AnswerResult{Count: 1, Message: "Poll answered successfully"},
			wantBody: `{"message": "Poll answered successfully", "questionsAnswered": 1}`,
		},
		{
			name: "named",
			body: `{"answers": [{"idQuestion": 7, "content": "Sushi"}], "username": "bob"}`,
			input: polls.AnswerInput{
				Answers:  []polls.AnswerItem{{QuestionID: 7, Content: "Sushi"}},
				Username: "bob",
			},
			result:   &polls.AnswerResult{Count: 1, Message: "Poll answered successfully by bob"},
			wantBody: `{"message": "Poll answered successfully by bob", "questionsAnswered": 1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t)
			srv.polls.EXPECT().AnswerPoll(gomock.Any(), link, tt.input).Return(tt.result, nil)

			rec := srv.do(http.MethodPost, "/api/polls/answer/"+link, tt.body)
			require.Equal(t, http.StatusCreated, rec.Code)
			require.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestAnswerPoll_ForeignQuestion(t *testing.T) {
	srv := newTestServer(t)

	srv.polls.EXPECT().AnswerPoll(gomock.Any(), link, gomock.Any()).
		Return(nil, serrors.With(serrors.ErrInvalidInput, "question %d does not belong to the poll", 99))

	rec := srv.do(http.MethodPost, "/api/polls/answer/"+link, `{"answers": [{"idQuestion": 99, "content": "x"}]}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"code":"INVALID_INPUT","message":"question 99 does not belong to the poll"}`,
		rec.Body.String())
}

func TestEditPoll(t *testing.T) {
	srv := newTestServer(t)

	srv.polls.EXPECT().EditPoll(gomock.Any(), link, lunchInput).Return(lunchDetail, nil)

	rec := srv.do(http.MethodPut, "/api/polls/"+link, lunchBody)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.JSONEq(t, withMessage(t, lunchCreated, "Poll modified successfully"), rec.Body.String())
}

func TestEditPoll_Errors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "not owner", err: serrors.With(serrors.ErrForbidden, "you are not the owner of the poll"),
			wantCode: http.StatusForbidden},
		{name: "answered", err: serrors.With(serrors.ErrInvalidInput,
			"this poll cannot be edited because it has already been answered"), wantCode: http.StatusBadRequest},
		{name: "missing", err: serrors.With(serrors.ErrNotFound, "poll not found"), wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t)
			srv.polls.EXPECT().EditPoll(gomock.Any(), link, gomock.Any()).Return(nil, tt.err)

			rec := srv.do(http.MethodPut, "/api/polls/"+link, lunchBody)
			require.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestDeletePoll(t *testing.T) {
	srv := newTestServer(t)

	srv.polls.EXPECT().DeletePoll(gomock.Any(), link, "alice").Return(nil)

	rec := srv.do(http.MethodDelete, "/api/polls/"+link, `{"username": "alice"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"message": "Poll deleted successfully"}`, rec.Body.String())
}

func TestDeletePoll_Answered(t *testing.T) {
	srv := newTestServer(t)

	srv.polls.EXPECT().DeletePoll(gomock.Any(), link, "alice").
		Return(serrors.With(serrors.ErrInvalidInput, "this poll cannot be deleted because it has already been answered"))

	rec := srv.do(http.MethodDelete, "/api/polls/"+link, `{"username": "alice"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t,
		`{"code":"INVALID_INPUT","message":"this poll cannot be deleted because it has already been answered"}`,
		rec.Body.String())
}

func TestPollAnswers(t *testing.T) {
	srv := newTestServer(t)

	bob := domain.UserID(2)
	answeredAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	refreshedAt := answeredAt.Add(2 * time.Second)
	srv.polls.EXPECT().PollAnswers(gomock.Any(), link, "alice").Return(&domain.PollAnswers{
		Poll: lunchPoll,
		Questions: []domain.QuestionAnswers{
			{
				Question: lunchDetail.Questions[0].Question,
				Answers: []domain.Answer{
					{ID: 1, QuestionID: 7, Content: "Pizza", CreatedAt: answeredAt},
					{ID: 2, QuestionID: 7, Content: "Sushi", RespondentID: &bob, CreatedAt: answeredAt},
				},
			},
			{
				Question: domain.Question{ID: 8, PollID: 10, Text: "When?", TypeID: textType.ID},
			},
		},
		Tally: &domain.Tally{
			PollID:           10,
			Answers:          2,
			NamedRespondents: 1,
			LastAnsweredAt:   answeredAt,
			RefreshedAt:      refreshedAt,
		},
	}, nil)

	rec := srv.do(http.MethodGet, "/api/polls/"+link+"/answers/alice", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{
		"poll": {"id": 10, "title": "Lunch", "description": "Where do we eat?"},
		"answers": [
			{
				"question": {"id": 7, "text": "Where?", "type": 100},
				"answers": [
					{"id": 1, "id_question": 7, "content": "Pizza", "id_user_answered": null,
						"created_at": "2024-05-01T12:00:00Z"},
					{"id": 2, "id_question": 7, "content": "Sushi", "id_user_answered": 2,
						"created_at": "2024-05-01T12:00:00Z"}
				]
			},
			{"question": {"id": 8, "text": "When?", "type": 100}, "answers": []}
		],
		"tally": {
			"answers": 2,
			"namedRespondents": 1,
			"lastAnsweredAt": "2024-05-01T12:00:00Z",
			"refreshedAt": "2024-05-01T12:00:02Z"
		}
	}`, rec.Body.String())
}

func TestPollAnswers_NoTallyYet(t *testing.T) {
	srv := newTestServer(t)

	srv.polls.EXPECT().PollAnswers(gomock.Any(), link, "alice").Return(&domain.PollAnswers{Poll: lunchPoll}, nil)

	rec := srv.do(http.MethodGet, "/api/polls/"+link+"/answers/alice", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"poll": {"id": 10, "title": "Lunch", "description": "Where do we eat?"}, "answers": []}`,
		rec.Body.String())
}

func TestPollAnswers_NotOwner(t *testing.T) {
	srv := newTestServer(t)

	srv.polls.EXPECT().PollAnswers(gomock.Any(), link, "bob").
		Return(nil, serrors.With(serrors.ErrForbidden, "you are not the owner of the poll"))

	rec := srv.do(http.MethodGet, "/api/polls/"+link+"/answers/bob", "")
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.JSONEq(t, `{"code":"FORBIDDEN","message":"you are not the owner of the poll"}`, rec.Body.String())
}
