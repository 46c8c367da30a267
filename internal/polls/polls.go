// Package polls implements the poll lifecycle: creation, retrieval, answering,
// edition and deletion of polls. Every mutation runs in one storage
// transaction that first locks the poll row, so answer submissions and
// edits or deletions of the same poll are serialized and a poll can never be
// changed once it has been answered.
package polls

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/nailuj1992/polls-api/internal/config"
	"github.com/nailuj1992/polls-api/pkg/domain"
	"github.com/nailuj1992/polls-api/pkg/logger"
	"github.com/nailuj1992/polls-api/pkg/metrics"
	"github.com/nailuj1992/polls-api/pkg/serrors"
	"github.com/nailuj1992/polls-api/pkg/storage"
)

const (
	defaultLinkLength   = 8
	defaultLinkAttempts = 5
)

var tracer = otel.Tracer("github.com/nailuj1992/polls-api/internal/polls") //nolint: gochecknoglobals

// Options configure link generation and tally refresh jobs.
type Options struct {
	// LinkLength is the number of characters of a generated link.
	LinkLength int
	// LinkAttempts bounds how many links are tried when the generated one is
	// already taken.
	LinkAttempts int
	// TallyMaxAttempts is the retry budget of tally refresh jobs.
	TallyMaxAttempts int
	// TallyDelay postpones tally refresh jobs.
	TallyDelay time.Duration
	// NewLink generates links. Defaults to RandomLink.
	NewLink LinkGenerator
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		LinkLength:       cfg.Polls.LinkLength,
		LinkAttempts:     cfg.Polls.LinkAttempts,
		TallyMaxAttempts: cfg.Worker.MaxAttempts,
		TallyDelay:       cfg.Polls.TallyDelay,
		NewLink:          RandomLink,
	}
}

type engine struct {
	options Options
	storage storage.Storage
}

// New creates a Lifecycle backed by the provided storage.
func New(storage storage.Storage, options Options) Lifecycle {
	if options.LinkLength <= 0 {
		options.LinkLength = defaultLinkLength
	}
	if options.LinkAttempts <= 0 {
		options.LinkAttempts = defaultLinkAttempts
	}
	if options.NewLink == nil {
		options.NewLink = RandomLink
	}

	return &engine{
		options: options,
		storage: storage,
	}
}

func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return tracer.Start(ctx, "polls."+name, trace.WithAttributes(attrs...))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, serrors.KindOf(err).Error())
	}
	span.End()
}

// CreatePoll stores a poll owned by input.Username together with its
// questions, in input order, under a freshly generated link.
func (e *engine) CreatePoll(ctx context.Context, input PollInput) (_ *domain.PollDetail, err error) {
	ctx, span := startSpan(ctx, "CreatePoll")
	defer func() { endSpan(span, err) }()

	if err := input.validate(); err != nil {
		return nil, err
	}

	owner, err := e.storage.UserByUsername(ctx, input.Username)
	if err != nil {
		return nil, fmt.Errorf("could not get poll owner: %w", err)
	}
	if owner == nil {
		return nil, serrors.With(serrors.ErrInvalidInput, "username does not exist")
	}

	var detail *domain.PollDetail
	if err := e.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		poll, err := e.storePoll(ctx, tx, domain.Poll{
			Title:       input.Title,
			Description: input.Description,
			OwnerID:     owner.ID,
		})
		if err != nil {
			return err
		}

		questions, err := storeQuestions(ctx, tx, poll.ID, input.Questions)
		if err != nil {
			return err
		}

		detail = &domain.PollDetail{Poll: *poll, Questions: questions}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not create poll: %w", err)
	}

	metrics.PollsCreated.Inc()
	span.SetAttributes(attribute.String("poll.link", detail.Link))
	logger.Info(ctx, "poll created",
		zap.String("link", detail.Link),
		zap.Int64("pollID", int64(detail.ID)),
		zap.Int("questions", len(detail.Questions)))

	return detail, nil
}

// storePoll inserts poll under a new link, generating another one whenever
// the link is already taken.
func (e *engine) storePoll(ctx context.Context, tx storage.AllStorage, poll domain.Poll) (*domain.Poll, error) {
	for attempt := 1; attempt <= e.options.LinkAttempts; attempt++ {
		link, err := e.options.NewLink(e.options.LinkLength)
		if err != nil {
			return nil, fmt.Errorf("could not generate poll link: %w", err)
		}
		poll.Link = link

		stored, err := tx.StorePoll(ctx, poll)
		if errors.Is(err, storage.ErrLinkTaken) {
			metrics.LinkCollisions.Inc()
			logger.Warn(ctx, "generated poll link is taken", zap.String("link", link), zap.Int("attempt", attempt))

			continue
		}
		if err != nil {
			return nil, fmt.Errorf("could not store poll: %w", err)
		}

		return stored, nil
	}

	return nil, serrors.With(serrors.ErrInternal, "could not generate a unique link in %d attempts", e.options.LinkAttempts)
}

// storeQuestions resolves every type code before inserting anything. An
// unknown code fails the whole set.
func storeQuestions(ctx context.Context,
	tx storage.AllStorage,
	pollID domain.PollID,
	inputs []QuestionInput) ([]domain.QuestionDetail, error) {
	types := make(map[string]domain.QuestionType, len(inputs))
	questions := make([]domain.Question, len(inputs))
	for i, in := range inputs {
		qt, ok := types[in.TypeCode]
		if !ok {
			found, err := tx.QuestionTypeByCode(ctx, in.TypeCode)
			if err != nil {
				return nil, fmt.Errorf("could not get question type: %w", err)
			}
			if found == nil {
				return nil, serrors.With(serrors.ErrInvalidInput, "invalid type field")
			}
			qt = *found
			types[in.TypeCode] = qt
		}

		questions[i] = domain.Question{
			PollID:   pollID,
			Text:     in.Text,
			TypeID:   qt.ID,
			Position: i,
		}
	}

	stored, err := tx.StoreQuestions(ctx, questions...)
	if err != nil {
		return nil, fmt.Errorf("could not store questions: %w", err)
	}
	if len(stored) != len(questions) {
		return nil, serrors.With(serrors.ErrInternal, "stored %d questions out of %d", len(stored), len(questions))
	}

	out := make([]domain.QuestionDetail, len(stored))
	for i := range stored {
		out[i] = domain.QuestionDetail{Question: stored[i], Type: types[inputs[i].TypeCode]}
	}

	return out, nil
}

// UserPolls lists the polls owned by username.
func (e *engine) UserPolls(ctx context.Context, username string) (_ []domain.Poll, err error) {
	ctx, span := startSpan(ctx, "UserPolls")
	defer func() { endSpan(span, err) }()

	if username == "" {
		return nil, serrors.With(serrors.ErrInvalidInput, "missing required parameters")
	}

	owner, err := e.storage.UserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("could not get poll owner: %w", err)
	}
	if owner == nil {
		return nil, serrors.With(serrors.ErrInvalidInput, "username does not exist")
	}

	polls, err := e.storage.UserPolls(ctx, owner.ID)
	if err != nil {
		return nil, fmt.Errorf("could not get user polls: %w", err)
	}

	return polls, nil
}

// PollByLink returns a poll with its ordered questions and their types. The
// types of all questions are resolved in one lookup.
func (e *engine) PollByLink(ctx context.Context, link string) (_ *domain.PollDetail, err error) {
	ctx, span := startSpan(ctx, "PollByLink", attribute.String("poll.link", link))
	defer func() { endSpan(span, err) }()

	poll, err := e.storage.PollByLink(ctx, link)
	if err != nil {
		return nil, fmt.Errorf("could not get poll: %w", err)
	}
	if poll == nil {
		return nil, serrors.With(serrors.ErrNotFound, "poll not found")
	}

	questions, err := e.storage.PollQuestions(ctx, poll.ID)
	if err != nil {
		return nil, fmt.Errorf("could not get poll questions: %w", err)
	}

	typeIDs := make([]domain.QuestionTypeID, 0, len(questions))
	seen := make(map[domain.QuestionTypeID]bool, len(questions))
	for _, q := range questions {
		if !seen[q.TypeID] {
			seen[q.TypeID] = true
			typeIDs = append(typeIDs, q.TypeID)
		}
	}

	types := make(map[domain.QuestionTypeID]domain.QuestionType, len(typeIDs))
	if len(typeIDs) > 0 {
		found, err := e.storage.QuestionTypesByIDs(ctx, typeIDs...)
		if err != nil {
			return nil, fmt.Errorf("could not get question types: %w", err)
		}
		for _, qt := range found {
			types[qt.ID] = qt
		}
	}

	detail := &domain.PollDetail{Poll: *poll, Questions: make([]domain.QuestionDetail, len(questions))}
	for i, q := range questions {
		qt, ok := types[q.TypeID]
		if !ok {
			return nil, serrors.With(serrors.ErrInternal, "question %d has an unknown type %d", q.ID, q.TypeID)
		}
		detail.Questions[i] = domain.QuestionDetail{Question: q, Type: qt}
	}

	return detail, nil
}

// AnswerPoll records one answer per question of the poll. The submission
// must carry exactly as many answers as the poll has questions and every
// answer must reference one of them; otherwise nothing is recorded.
func (e *engine) AnswerPoll(ctx context.Context, link string, input AnswerInput) (_ *AnswerResult, err error) {
	ctx, span := startSpan(ctx, "AnswerPoll", attribute.String("poll.link", link))
	defer func() { endSpan(span, err) }()

	if len(input.Answers) == 0 {
		return nil, serrors.With(serrors.ErrInvalidInput, msgMissingFields)
	}

	var recorded int
	if err := e.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		poll, err := tx.LockPollByLink(ctx, link)
		if err != nil {
			return fmt.Errorf("could not lock poll: %w", err)
		}
		if poll == nil {
			return serrors.With(serrors.ErrNotFound, "poll not found")
		}

		var respondent *domain.UserID
		if input.Username != "" {
			user, err := tx.UserByUsername(ctx, input.Username)
			if err != nil {
				return fmt.Errorf("could not get respondent: %w", err)
			}
			if user == nil {
				return serrors.With(serrors.ErrInvalidInput, "username does not exist")
			}
			respondent = &user.ID
		}

		questions, err := tx.PollQuestions(ctx, poll.ID)
		if err != nil {
			return fmt.Errorf("could not get poll questions: %w", err)
		}
		if len(input.Answers) != len(questions) {
			return serrors.With(serrors.ErrInvalidInput, "number of answers does not match number of questions")
		}

		belongs := make(map[domain.QuestionID]bool, len(questions))
		for _, q := range questions {
			belongs[q.ID] = true
		}

		answers := make([]domain.Answer, len(input.Answers))
		for i, a := range input.Answers {
			if !belongs[a.QuestionID] {
				return serrors.With(serrors.ErrInvalidInput, "question %d does not belong to the poll", a.QuestionID)
			}
			answers[i] = domain.Answer{
				QuestionID:   a.QuestionID,
				Content:      a.Content,
				RespondentID: respondent,
			}
		}

		stored, err := tx.StoreAnswers(ctx, answers...)
		if err != nil {
			return fmt.Errorf("could not store answers: %w", err)
		}
		recorded = len(stored)

		if _, err := tx.AddJob(ctx, TallyJobArgs{
			PollID:      poll.ID,
			maxAttempts: e.options.TallyMaxAttempts,
			delay:       e.options.TallyDelay,
		}, nil); err != nil {
			return fmt.Errorf("could not add tally job: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not answer poll: %w", err)
	}

	result := &AnswerResult{Count: recorded, Message: "Poll answered successfully"}
	respondentLabel := metrics.RespondentAnonymous
	if input.Username != "" {
		result.Message = "Poll answered successfully by " + input.Username
		respondentLabel = metrics.RespondentNamed
	}
	metrics.AnswersRecorded.WithLabelValues(respondentLabel).Add(float64(recorded))
	logger.Info(ctx, "poll answered", zap.String("link", link), zap.Int("answers", recorded))

	return result, nil
}

// lockOwnedPoll locks the poll and checks that username owns it and that it
// has not been answered. action names the refused operation in the error.
func lockOwnedPoll(ctx context.Context, tx storage.AllStorage, link, username, action string) (*domain.Poll, error) {
	poll, err := tx.LockPollByLink(ctx, link)
	if err != nil {
		return nil, fmt.Errorf("could not lock poll: %w", err)
	}
	if poll == nil {
		return nil, serrors.With(serrors.ErrNotFound, "poll not found")
	}

	user, err := tx.UserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrInvalidInput, "username does not exist")
	}
	if !poll.IsOwnedBy(user.ID) {
		return nil, serrors.With(serrors.ErrForbidden, "you are not the owner of the poll")
	}

	answered, err := tx.PollHasAnswers(ctx, poll.ID)
	if err != nil {
		return nil, fmt.Errorf("could not check poll answers: %w", err)
	}
	if answered {
		return nil, serrors.With(serrors.ErrInvalidInput,
			"this poll cannot be %s because it has already been answered", action)
	}

	return poll, nil
}

// EditPoll replaces the title, description and the whole question set of an
// unanswered poll owned by input.Username. The link and owner never change.
func (e *engine) EditPoll(ctx context.Context, link string, input PollInput) (_ *domain.PollDetail, err error) {
	ctx, span := startSpan(ctx, "EditPoll", attribute.String("poll.link", link))
	defer func() { endSpan(span, err) }()

	if err := input.validate(); err != nil {
		return nil, err
	}

	var detail *domain.PollDetail
	if err := e.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		poll, err := lockOwnedPoll(ctx, tx, link, input.Username, "edited")
		if err != nil {
			return err
		}

		updated, err := tx.UpdatePoll(ctx, poll.ID, storage.PollUpdates{
			Title:       input.Title,
			Description: input.Description,
		})
		if err != nil {
			return fmt.Errorf("could not update poll: %w", err)
		}
		if updated == nil {
			return serrors.With(serrors.ErrInternal, "locked poll %d vanished", poll.ID)
		}

		if err := tx.DeletePollQuestions(ctx, poll.ID); err != nil {
			return fmt.Errorf("could not delete poll questions: %w", err)
		}

		questions, err := storeQuestions(ctx, tx, poll.ID, input.Questions)
		if err != nil {
			return err
		}

		detail = &domain.PollDetail{Poll: *updated, Questions: questions}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not edit poll: %w", err)
	}

	metrics.PollMutations.WithLabelValues("edit").Inc()
	logger.Info(ctx, "poll edited", zap.String("link", link), zap.Int("questions", len(detail.Questions)))

	return detail, nil
}

// DeletePoll deletes an unanswered poll owned by username, together with its
// questions.
func (e *engine) DeletePoll(ctx context.Context, link string, username string) (err error) {
	ctx, span := startSpan(ctx, "DeletePoll", attribute.String("poll.link", link))
	defer func() { endSpan(span, err) }()

	if username == "" {
		return serrors.With(serrors.ErrInvalidInput, msgMissingFields)
	}

	if err := e.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		poll, err := lockOwnedPoll(ctx, tx, link, username, "deleted")
		if err != nil {
			return err
		}

		if err := tx.DeletePoll(ctx, poll.ID); err != nil {
			return fmt.Errorf("could not delete poll: %w", err)
		}

		return nil
	}); err != nil {
		return fmt.Errorf("could not delete poll: %w", err)
	}

	metrics.PollMutations.WithLabelValues("delete").Inc()
	logger.Info(ctx, "poll deleted", zap.String("link", link))

	return nil
}

// PollAnswers returns every answer of a poll grouped by question, for the
// poll owner only. All answers are fetched in one batched lookup.
func (e *engine) PollAnswers(ctx context.Context, link string, username string) (_ *domain.PollAnswers, err error) {
	ctx, span := startSpan(ctx, "PollAnswers", attribute.String("poll.link", link))
	defer func() { endSpan(span, err) }()

	if link == "" || username == "" {
		return nil, serrors.With(serrors.ErrInvalidInput, "missing required parameters")
	}

	poll, err := e.storage.PollByLink(ctx, link)
	if err != nil {
		return nil, fmt.Errorf("could not get poll: %w", err)
	}
	if poll == nil {
		return nil, serrors.With(serrors.ErrNotFound, "poll not found")
	}

	user, err := e.storage.UserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrInvalidInput, "username does not exist")
	}
	if !poll.IsOwnedBy(user.ID) {
		return nil, serrors.With(serrors.ErrForbidden, "you are not the owner of the poll")
	}

	questions, err := e.storage.PollQuestions(ctx, poll.ID)
	if err != nil {
		return nil, fmt.Errorf("could not get poll questions: %w", err)
	}

	ids := make([]domain.QuestionID, len(questions))
	for i, q := range questions {
		ids[i] = q.ID
	}

	var answers []domain.Answer
	if len(ids) > 0 {
		answers, err = e.storage.AnswersByQuestionIDs(ctx, ids...)
		if err != nil {
			return nil, fmt.Errorf("could not get poll answers: %w", err)
		}
	}

	byQuestion := make(map[domain.QuestionID][]domain.Answer, len(questions))
	for _, a := range answers {
		byQuestion[a.QuestionID] = append(byQuestion[a.QuestionID], a)
	}

	result := &domain.PollAnswers{Poll: *poll, Questions: make([]domain.QuestionAnswers, len(questions))}
	for i, q := range questions {
		grouped := byQuestion[q.ID]
		if grouped == nil {
			grouped = []domain.Answer{}
		}
		result.Questions[i] = domain.QuestionAnswers{Question: q, Answers: grouped}
	}

	tally, err := e.storage.TallyByPoll(ctx, poll.ID)
	if err != nil {
		return nil, fmt.Errorf("could not get poll tally: %w", err)
	}
	result.Tally = tally

	return result, nil
}
