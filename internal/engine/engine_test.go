package engine

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/listingone/leadgen/internal/domain"
	"github.com/listingone/leadgen/internal/notify"
	"github.com/listingone/leadgen/internal/rules"
	"github.com/listingone/leadgen/internal/store"
)

type stubResponder struct {
	reply string
	err   error
}

func (s *stubResponder) Reply(context.Context, string, string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

type recordingNotifier struct {
	mu    sync.Mutex
	calls []notify.QualifiedLead
	done  chan struct{}
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{done: make(chan struct{}, 8)}
}

func (n *recordingNotifier) LeadQualified(_ context.Context, lead notify.QualifiedLead) error {
	n.mu.Lock()
	n.calls = append(n.calls, lead)
	n.mu.Unlock()
	n.done <- struct{}{}
	return nil
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.calls)
}

func (n *recordingNotifier) wait(t *testing.T) {
	t.Helper()
	select {
	case <-n.done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for notification")
	}
}

func testEngine(t *testing.T, resp *stubResponder, n notify.Notifier) *Engine {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(store.NewMemory(), rules.Default(), resp, n, logger)
}

func TestSubmitMessageRejectsBadInput(t *testing.T) {
	e := testEngine(t, &stubResponder{reply: "ok"}, notify.Noop{})
	ctx := context.Background()

	long := make([]byte, maxMessageLen+1)
	for i := range long {
		long[i] = 'a'
	}

	tests := []struct {
		name string
		text string
		want error
	}{
		{"empty", "", ErrEmptyMessage},
		{"whitespace only", "   \n\t ", ErrEmptyMessage},
		{"over limit", string(long), ErrMessageTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := e.SubmitMessage(ctx, "s1", tt.text); !errors.Is(err, tt.want) {
				t.Fatalf("SubmitMessage() error = %v, want %v", err, tt.want)
			}
		})
	}

	// Rejected input must not create the session.
	if _, err := e.Get(ctx, "s1"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("Get() after rejected input error = %v, want ErrNotFound", err)
	}
}

func TestSubmitMessageCreatesSession(t *testing.T) {
	e := testEngine(t, &stubResponder{reply: "Great, what's your email?"}, notify.Noop{})
	ctx := context.Background()

	res, err := e.SubmitMessage(ctx, "", "Hi, my name is John Smith.")
	if err != nil {
		t.Fatalf("SubmitMessage() error = %v", err)
	}
	if res.SessionID == "" {
		t.Fatal("expected a generated session id")
	}
	if got := res.Record.Name; got != "John Smith" {
		t.Errorf("Record.Name = %q, want %q", got, "John Smith")
	}
	if res.Stage != domain.StageCollectingEmail {
		t.Errorf("Stage = %q, want %q", res.Stage, domain.StageCollectingEmail)
	}
	if res.NextRequiredField != "user_email" {
		t.Errorf("NextRequiredField = %q, want user_email", res.NextRequiredField)
	}
	if res.CompletionRate != 25 {
		t.Errorf("CompletionRate = %v, want 25", res.CompletionRate)
	}

	sess, err := e.Get(ctx, res.SessionID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if len(sess.Transcript) != 2 {
		t.Fatalf("transcript length = %d, want 2 (user + assistant)", len(sess.Transcript))
	}
	if sess.Transcript[1].Speaker != domain.SpeakerAssistant {
		t.Errorf("second message speaker = %q, want assistant", sess.Transcript[1].Speaker)
	}
}

func TestResponderFailureUsesFallback(t *testing.T) {
	e := testEngine(t, &stubResponder{err: errors.New("upstream down")}, notify.Noop{})

	res, err := e.SubmitMessage(context.Background(), "s1", "Hello there")
	if err != nil {
		t.Fatalf("SubmitMessage() error = %v", err)
	}
	if res.Reply == "" {
		t.Fatal("expected a non-empty fallback reply")
	}
	// The turn's derived state is still computed and persisted.
	if _, err := e.Get(context.Background(), "s1"); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
}

func TestNotifiesOnceOnCompletion(t *testing.T) {
	n := newRecordingNotifier()
	e := testEngine(t, &stubResponder{reply: "ok"}, n)
	ctx := context.Background()

	msgs := []string{
		"Hi, my name is John Smith.",
		"My email is john.smith@gmail.com",
		"You can reach me at 555-123-4567",
		"I'm looking to buy a home.",
	}
	var last *TurnResult
	for _, m := range msgs {
		var err error
		last, err = e.SubmitMessage(ctx, "s1", m)
		if err != nil {
			t.Fatalf("SubmitMessage(%q) error = %v", m, err)
		}
	}

	if !last.ConversationComplete {
		t.Fatalf("ConversationComplete = false, validation = %+v", last.Validation)
	}
	if last.Stage != domain.StageComplete {
		t.Errorf("Stage = %q, want complete", last.Stage)
	}

	n.wait(t)
	if got := n.count(); got != 1 {
		t.Fatalf("notifications after completion = %d, want 1", got)
	}
	lead := n.calls[0]
	if lead.SessionID != "s1" {
		t.Errorf("lead.SessionID = %q, want s1", lead.SessionID)
	}
	if lead.Record.Email != "john.smith@gmail.com" {
		t.Errorf("lead.Record.Email = %q", lead.Record.Email)
	}

	// Further turns on a complete conversation stay silent.
	if _, err := e.SubmitMessage(ctx, "s1", "Thanks, talk soon!"); err != nil {
		t.Fatalf("SubmitMessage() error = %v", err)
	}
	time.Sleep(50 * time.Millisecond)
	if got := n.count(); got != 1 {
		t.Fatalf("notifications after extra turn = %d, want 1", got)
	}
}

func TestResetDeletesSession(t *testing.T) {
	e := testEngine(t, &stubResponder{reply: "ok"}, notify.Noop{})
	ctx := context.Background()

	if _, err := e.SubmitMessage(ctx, "s1", "Hi, my name is John Smith."); err != nil {
		t.Fatalf("SubmitMessage() error = %v", err)
	}
	if err := e.Reset(ctx, "s1", false); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if _, err := e.Get(ctx, "s1"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("Get() after reset error = %v, want ErrNotFound", err)
	}
}

func TestResetPreservesRecord(t *testing.T) {
	e := testEngine(t, &stubResponder{reply: "ok"}, notify.Noop{})
	ctx := context.Background()

	if _, err := e.SubmitMessage(ctx, "s1", "Hi, my name is John Smith."); err != nil {
		t.Fatalf("SubmitMessage() error = %v", err)
	}
	if err := e.Reset(ctx, "s1", true); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}

	sess, err := e.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if len(sess.Transcript) != 0 {
		t.Errorf("transcript length = %d, want 0", len(sess.Transcript))
	}
	if sess.Record.Name != "John Smith" {
		t.Errorf("Record.Name = %q, want preserved name", sess.Record.Name)
	}
	if sess.Stage != domain.StageGreeting {
		t.Errorf("Stage = %q, want greeting", sess.Stage)
	}
}

func TestSweeperRemovesIdleSessions(t *testing.T) {
	e := testEngine(t, &stubResponder{reply: "ok"}, notify.Noop{})
	ctx := context.Background()

	if _, err := e.SubmitMessage(ctx, "stale", "Hi, my name is John Smith."); err != nil {
		t.Fatalf("SubmitMessage() error = %v", err)
	}

	// Move the engine clock past the TTL and sweep directly.
	e.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	e.sweep(ctx, time.Hour)

	if _, err := e.Get(ctx, "stale"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("Get() after sweep error = %v, want ErrNotFound", err)
	}
}
