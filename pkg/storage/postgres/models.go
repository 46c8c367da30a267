package postgres

import (
	"database/sql"
	"time"

	"github.com/nailuj1992/polls-api/pkg/domain"
)

const (
	usersTable         = "users"
	questionTypesTable = "question_types"
	pollsTable         = "polls"
	questionsTable     = "questions"
	answersTable       = "answers"
	pollTalliesTable   = "poll_tallies"
)

type PgUser struct {
	ID       int64  `db:"id"       goqu:"skipinsert"`
	Name     string `db:"name"`
	Username string `db:"username"`
	Email    string `db:"email"`
	Password string `db:"password"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgUser) ToDomain() *domain.User {
	return &domain.User{
		ID:           domain.UserID(p.ID),
		Name:         p.Name,
		Username:     p.Username,
		Email:        p.Email,
		PasswordHash: p.Password,
		CreatedAt:    p.CreatedAt,
	}
}

func (p *PgUser) FromDomain(user domain.User) {
	*p = PgUser{
		ID:        int64(user.ID),
		Name:      user.Name,
		Username:  user.Username,
		Email:     user.Email,
		Password:  user.PasswordHash,
		CreatedAt: user.CreatedAt,
	}
}

type PgQuestionType struct {
	ID          int64  `db:"id"          goqu:"skipinsert"`
	Code        string `db:"code"`
	Description string `db:"description"`
}

func (p *PgQuestionType) ToDomain() *domain.QuestionType {
	return &domain.QuestionType{
		ID:          domain.QuestionTypeID(p.ID),
		Code:        p.Code,
		Description: p.Description,
	}
}

type PgPoll struct {
	ID          int64  `db:"id"          goqu:"skipinsert"`
	Title       string `db:"title"`
	Description string `db:"description"`
	Link        string `db:"link"`
	UserID      int64  `db:"id_user"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgPoll) ToDomain() *domain.Poll {
	return &domain.Poll{
		ID:          domain.PollID(p.ID),
		Title:       p.Title,
		Description: p.Description,
		Link:        p.Link,
		OwnerID:     domain.UserID(p.UserID),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt.Time,
	}
}

func (p *PgPoll) FromDomain(poll domain.Poll) {
	*p = PgPoll{
		ID:          int64(poll.ID),
		Title:       poll.Title,
		Description: poll.Description,
		Link:        poll.Link,
		UserID:      int64(poll.OwnerID),
		CreatedAt:   poll.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  poll.UpdatedAt,
			Valid: !poll.UpdatedAt.IsZero(),
		},
	}
}

type PgQuestion struct {
	ID       int64  `db:"id"         goqu:"skipinsert"`
	Text     string `db:"text"`
	TypeID   int64  `db:"type_field"`
	PollID   int64  `db:"id_poll"`
	Position int    `db:"position"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgQuestion) ToDomain() domain.Question {
	return domain.Question{
		ID:        domain.QuestionID(p.ID),
		PollID:    domain.PollID(p.PollID),
		Text:      p.Text,
		TypeID:    domain.QuestionTypeID(p.TypeID),
		Position:  p.Position,
		CreatedAt: p.CreatedAt,
	}
}

func (p *PgQuestion) FromDomain(question domain.Question) {
	*p = PgQuestion{
		ID:        int64(question.ID),
		Text:      question.Text,
		TypeID:    int64(question.TypeID),
		PollID:    int64(question.PollID),
		Position:  question.Position,
		CreatedAt: question.CreatedAt,
	}
}

type PgAnswer struct {
	ID           int64         `db:"id"               goqu:"skipinsert"`
	Content      string        `db:"content"`
	RespondentID sql.NullInt64 `db:"id_user_answered"`
	QuestionID   int64         `db:"id_question"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgAnswer) ToDomain() domain.Answer {
	answer := domain.Answer{
		ID:         domain.AnswerID(p.ID),
		QuestionID: domain.QuestionID(p.QuestionID),
		Content:    p.Content,
		CreatedAt:  p.CreatedAt,
	}
	if p.RespondentID.Valid {
		respondent := domain.UserID(p.RespondentID.Int64)
		answer.RespondentID = &respondent
	}

	return answer
}

func (p *PgAnswer) FromDomain(answer domain.Answer) {
	*p = PgAnswer{
		ID:         int64(answer.ID),
		Content:    answer.Content,
		QuestionID: int64(answer.QuestionID),
		CreatedAt:  answer.CreatedAt,
	}
	if answer.RespondentID != nil {
		p.RespondentID = sql.NullInt64{Int64: int64(*answer.RespondentID), Valid: true}
	}
}

type PgTally struct {
	PollID           int64        `db:"id_poll"`
	Answers          int64        `db:"answers"`
	NamedRespondents int64        `db:"named_respondents"`
	LastAnsweredAt   sql.NullTime `db:"last_answered_at"`
	RefreshedAt      time.Time    `db:"refreshed_at"`
}

func (p *PgTally) ToDomain() *domain.Tally {
	return &domain.Tally{
		PollID:           domain.PollID(p.PollID),
		Answers:          p.Answers,
		NamedRespondents: p.NamedRespondents,
		LastAnsweredAt:   p.LastAnsweredAt.Time,
		RefreshedAt:      p.RefreshedAt,
	}
}

func pgQuestionsToDomain(rows []PgQuestion) []domain.Question {
	out := make([]domain.Question, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out
}

func pgAnswersToDomain(rows []PgAnswer) []domain.Answer {
	out := make([]domain.Answer, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out
}
