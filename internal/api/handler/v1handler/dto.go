package v1handler

import (
	"time"

	"github.com/nailuj1992/polls-api/internal/identity"
	"github.com/nailuj1992/polls-api/internal/polls"
	"github.com/nailuj1992/polls-api/pkg/domain"
)

type messageResponse struct {
	Message string `json:"message"`
}

type userRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (u userRequest) toNewUser() identity.NewUser {
	return identity.NewUser{
		Name:     u.Name,
		Username: u.Username,
		Email:    u.Email,
		Password: u.Password,
	}
}

type userResponse struct {
	ID       domain.UserID `json:"id"`
	Name     string        `json:"name"`
	Username string        `json:"username"`
	Email    string        `json:"email"`
}

func newUserResponse(u domain.User) userResponse {
	return userResponse{
		ID:       u.ID,
		Name:     u.Name,
		Username: u.Username,
		Email:    u.Email,
	}
}

type createUserResponse struct {
	Message string       `json:"message"`
	User    userResponse `json:"user"`
}

type questionRequest struct {
	Text      string `json:"text"`
	TypeField string `json:"typeField"`
}

type pollRequest struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Username    string            `json:"username"`
	Questions   []questionRequest `json:"questions"`
}

func (p pollRequest) toInput() polls.PollInput {
	questions := make([]polls.QuestionInput, 0, len(p.Questions))
	for _, q := range p.Questions {
		questions = append(questions, polls.QuestionInput{Text: q.Text, TypeCode: q.TypeField})
	}

	return polls.PollInput{
		Title:       p.Title,
		Description: p.Description,
		Username:    p.Username,
		Questions:   questions,
	}
}

// pollResponse acknowledges a creation or an edition with the stored rows.
type pollResponse struct {
	Message   string            `json:"message"`
	Poll      domain.Poll       `json:"poll"`
	Questions []domain.Question `json:"questions"`
}

func newPollResponse(message string, detail *domain.PollDetail) pollResponse {
	questions := make([]domain.Question, 0, len(detail.Questions))
	for _, q := range detail.Questions {
		questions = append(questions, q.Question)
	}

	return pollResponse{
		Message:   message,
		Poll:      detail.Poll,
		Questions: questions,
	}
}

type pollSummary struct {
	ID          domain.PollID `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Link        string        `json:"link"`
}

type questionDetail struct {
	ID        domain.QuestionID   `json:"id"`
	Text      string              `json:"text"`
	TypeField domain.QuestionType `json:"typeField"`
}

type pollDetailResponse struct {
	pollSummary
	Questions []questionDetail `json:"questions"`
}

func newPollDetailResponse(detail *domain.PollDetail) pollDetailResponse {
	questions := make([]questionDetail, 0, len(detail.Questions))
	for _, q := range detail.Questions {
		questions = append(questions, questionDetail{ID: q.ID, Text: q.Text, TypeField: q.Type})
	}

	return pollDetailResponse{
		pollSummary: pollSummary{
			ID:          detail.ID,
			Title:       detail.Title,
			Description: detail.Description,
			Link:        detail.Link,
		},
		Questions: questions,
	}
}

type answerItem struct {
	IDQuestion domain.QuestionID `json:"idQuestion"`
	Content    string            `json:"content"`
}

type answerRequest struct {
	Answers  []answerItem `json:"answers"`
	Username string       `json:"username"`
}

func (a answerRequest) toInput() polls.AnswerInput {
	items := make([]polls.AnswerItem, 0, len(a.Answers))
	for _, item := range a.Answers {
		items = append(items, polls.AnswerItem{QuestionID: item.IDQuestion, Content: item.Content})
	}

	return polls.AnswerInput{Answers: items, Username: a.Username}
}

type answerResponse struct {
	Message           string `json:"message"`
	QuestionsAnswered int    `json:"questionsAnswered"`
}

type deleteRequest struct {
	Username string `json:"username"`
}

type answeredPoll struct {
	ID          domain.PollID `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
}

type answeredQuestion struct {
	ID   domain.QuestionID     `json:"id"`
	Text string                `json:"text"`
	Type domain.QuestionTypeID `json:"type"`
}

type questionAnswers struct {
	Question answeredQuestion `json:"question"`
	Answers  []domain.Answer  `json:"answers"`
}

type tallyResponse struct {
	Answers          int64      `json:"answers"`
	NamedRespondents int64      `json:"namedRespondents"`
	LastAnsweredAt   *time.Time `json:"lastAnsweredAt,omitempty"`
	RefreshedAt      time.Time  `json:"refreshedAt"`
}

type pollAnswersResponse struct {
	Poll    answeredPoll      `json:"poll"`
	Answers []questionAnswers `json:"answers"`
	// Tally is omitted until the first background refresh has run.
	Tally *tallyResponse `json:"tally,omitempty"`
}

func newPollAnswersResponse(pa *domain.PollAnswers) pollAnswersResponse {
	res := pollAnswersResponse{
		Poll: answeredPoll{
			ID:          pa.Poll.ID,
			Title:       pa.Poll.Title,
			Description: pa.Poll.Description,
		},
		Answers: make([]questionAnswers, 0, len(pa.Questions)),
	}
	for _, qa := range pa.Questions {
		answers := qa.Answers
		if answers == nil {
			answers = []domain.Answer{}
		}
		res.Answers = append(res.Answers, questionAnswers{
			Question: answeredQuestion{ID: qa.Question.ID, Text: qa.Question.Text, Type: qa.Question.TypeID},
			Answers:  answers,
		})
	}

	if pa.Tally != nil {
		res.Tally = &tallyResponse{
			Answers:          pa.Tally.Answers,
			NamedRespondents: pa.Tally.NamedRespondents,
			RefreshedAt:      pa.Tally.RefreshedAt,
		}
		if !pa.Tally.LastAnsweredAt.IsZero() {
			last := pa.Tally.LastAnsweredAt
			res.Tally.LastAnsweredAt = &last
		}
	}

	return res
}
