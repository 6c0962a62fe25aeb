// Package engine orchestrates a conversation turn: append the message,
// re-extract the record from the whole transcript, merge, validate,
// screen, score, project the stage, and fire the one-shot qualified-lead
// notification. No step here blocks on network or disk while a session
// lock is held.
package engine

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/listingone/leadgen/internal/conversation"
	"github.com/listingone/leadgen/internal/domain"
	"github.com/listingone/leadgen/internal/extractor"
	"github.com/listingone/leadgen/internal/intelligence"
	"github.com/listingone/leadgen/internal/notify"
	"github.com/listingone/leadgen/internal/responder"
	"github.com/listingone/leadgen/internal/rules"
	"github.com/listingone/leadgen/internal/scoring"
	"github.com/listingone/leadgen/internal/screening"
	"github.com/listingone/leadgen/internal/store"
	"github.com/listingone/leadgen/internal/validate"
)

const maxMessageLen = 1000

var (
	// ErrEmptyMessage rejects blank input; the session is left unchanged.
	ErrEmptyMessage = errors.New("message text is empty")
	// ErrMessageTooLong rejects oversized input; the session is left unchanged.
	ErrMessageTooLong = errors.New("message text exceeds 1000 characters")
)

// TurnResult is everything a caller learns from one processed message.
type TurnResult struct {
	SessionID            string                  `json:"session_id"`
	Reply                string                  `json:"response"`
	Stage                domain.Stage            `json:"stage"`
	NextRequiredField    string                  `json:"next_required_field"`
	CompletionRate       float64                 `json:"completion_rate"`
	Record               domain.UserRecord       `json:"record"`
	Validation           domain.ValidationResult `json:"validation"`
	DuplicateCheck       domain.DuplicateCheck   `json:"duplicate_check"`
	SpamCheck            domain.SpamCheck        `json:"spam_check"`
	Score                domain.LeadScore        `json:"score"`
	Intelligence         domain.Intelligence     `json:"intelligence"`
	ConversationComplete bool                    `json:"conversation_complete"`
}

type Engine struct {
	store     store.Store
	extractor *extractor.Extractor
	validator *validate.Validator
	screening *screening.Detector
	scorer    *scoring.Scorer
	analyzer  *intelligence.Analyzer
	responder responder.Responder
	notifier  notify.Notifier
	logger    *slog.Logger
	now       func() time.Time

	// Turns within one session are serialized; sessions are independent.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func New(st store.Store, r *rules.Rules, resp responder.Responder, n notify.Notifier, logger *slog.Logger) *Engine {
	return &Engine{
		store:     st,
		extractor: extractor.New(r, logger),
		validator: validate.New(r),
		screening: screening.New(r, logger),
		scorer:    scoring.New(r),
		analyzer:  intelligence.New(r),
		responder: resp,
		notifier:  n,
		logger:    logger,
		now:       time.Now,
		locks:     make(map[string]*sync.Mutex),
	}
}

func (e *Engine) lockFor(id string) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()
	l, ok := e.locks[id]
	if !ok {
		l = &sync.Mutex{}
		e.locks[id] = l
	}
	return l
}

// SubmitMessage processes one inbound message. An empty or unknown
// session id creates a fresh session.
func (e *Engine) SubmitMessage(ctx context.Context, sessionID, text string) (*TurnResult, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, ErrEmptyMessage
	}
	if len(trimmed) > maxMessageLen {
		return nil, ErrMessageTooLong
	}

	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	lock := e.lockFor(sessionID)
	lock.Lock()
	defer lock.Unlock()

	sess, err := e.store.Get(ctx, sessionID)
	if errors.Is(err, store.ErrNotFound) {
		now := e.now()
		sess = &domain.Session{
			ID:        sessionID,
			Stage:     domain.StageGreeting,
			CreatedAt: now,
			UpdatedAt: now,
		}
		e.logger.Info("new conversation started", "session_id", sessionID)
	} else if err != nil {
		return nil, err
	}

	sess.Append(trimmed, domain.SpeakerUser, e.now())

	// Re-derive the record from the whole transcript, then merge so that
	// previously collected facts never regress.
	extracted := e.extractor.Extract(sess.Transcript)
	sess.Record = extractor.Merge(sess.Record, extracted)

	validation := e.validator.Validate(sess.Record)
	sess.Validation = &validation

	// Snapshot of all sessions for cross-referencing; the store hands
	// out copies, so concurrent writers can't expose partial records.
	others, err := e.store.List(ctx)
	if err != nil {
		e.logger.Error("session snapshot failed; skipping duplicate check",
			"session_id", sessionID, "error", err)
		others = nil
	}
	dup := e.screening.FindDuplicates(sess.Record, sess.ID, others)
	sess.DuplicateCheck = &dup

	spam := e.screening.DetectSpam(sess.Record)
	sess.SpamCheck = &spam

	score := e.scorer.Score(sess.Record, len(sess.Transcript))
	sess.Score = &score

	intel := e.analyzer.Analyze(sess.Transcript)
	sess.Intelligence = &intel

	progress := conversation.Project(sess.Record, validation.IsValid, true)
	sess.Stage = progress.Stage
	sess.CompletionRate = progress.CompletionRate
	sess.CompletedFields = conversation.MergeCompleted(sess.CompletedFields, sess.Record)
	sess.ConversationComplete = progress.Complete(validation.IsValid)

	e.maybeNotify(sess)

	reply := e.phraseReply(ctx, sess, progress)
	sess.Append(reply, domain.SpeakerAssistant, e.now())

	// Persistence failure degrades to best-effort: the turn still
	// returns, and re-extraction makes the next turn a retry.
	if err := e.store.Put(ctx, sess); err != nil {
		e.logger.Error("failed to persist session", "session_id", sessionID, "error", err)
	}

	return &TurnResult{
		SessionID:            sess.ID,
		Reply:                reply,
		Stage:                sess.Stage,
		NextRequiredField:    progress.NextRequiredField,
		CompletionRate:       sess.CompletionRate,
		Record:               sess.Record,
		Validation:           validation,
		DuplicateCheck:       dup,
		SpamCheck:            spam,
		Score:                score,
		Intelligence:         intel,
		ConversationComplete: sess.ConversationComplete,
	}, nil
}

// maybeNotify fires the notification collaborator the first time the
// conversation completes, and never again for the same session.
func (e *Engine) maybeNotify(sess *domain.Session) {
	if !sess.ConversationComplete || sess.Notified {
		return
	}
	sess.Notified = true

	lead := notify.QualifiedLead{
		SessionID:    sess.ID,
		Record:       sess.Record,
		MessageCount: len(sess.Transcript),
	}
	if sess.Score != nil {
		lead.Category = string(sess.Score.Category)
		lead.TotalScore = sess.Score.TotalScore
	}
	if sess.DuplicateCheck != nil {
		lead.IsDuplicate = sess.DuplicateCheck.IsDuplicate
	}
	if sess.SpamCheck != nil {
		lead.IsSpam = sess.SpamCheck.IsSpam
	}

	// Fired off-turn: notification must not be awaited under the
	// session lock.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := e.notifier.LeadQualified(ctx, lead); err != nil {
			e.logger.Error("lead notification failed", "session_id", lead.SessionID, "error", err)
		}
	}()

	e.logger.Info("conversation complete",
		"session_id", sess.ID,
		"lead_type", sess.Record.BuyingOrSelling,
	)
}

func (e *Engine) phraseReply(ctx context.Context, sess *domain.Session, progress conversation.Progress) string {
	promptCtx := conversation.RenderContext(sess, progress)
	last := sess.Transcript[len(sess.Transcript)-1].Text

	reply, err := e.responder.Reply(ctx, promptCtx, last)
	if err != nil {
		e.logger.Error("responder failed; using fallback reply",
			"session_id", sess.ID, "error", err)
		return responder.FallbackReply
	}
	return reply
}

// Get returns a session by id.
func (e *Engine) Get(ctx context.Context, sessionID string) (*domain.Session, error) {
	return e.store.Get(ctx, sessionID)
}

// Reset discards a session's transcript and derived state. With
// preserveRecord the collected facts carry into the fresh session, along
// with the notified bit so a preserved complete record cannot trigger a
// second notification.
func (e *Engine) Reset(ctx context.Context, sessionID string, preserveRecord bool) error {
	lock := e.lockFor(sessionID)
	lock.Lock()
	defer lock.Unlock()

	sess, err := e.store.Get(ctx, sessionID)
	if err != nil {
		return err
	}

	if !preserveRecord {
		return e.store.Delete(ctx, sessionID)
	}

	now := e.now()
	fresh := &domain.Session{
		ID:        sessionID,
		Record:    sess.Record,
		Stage:     domain.StageGreeting,
		Notified:  sess.Notified,
		CreatedAt: now,
		UpdatedAt: now,
	}
	fresh.CompletedFields = conversation.MergeCompleted(nil, fresh.Record)
	return e.store.Put(ctx, fresh)
}
