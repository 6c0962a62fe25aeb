// Package notify delivers the one-shot qualified-lead event. The engine
// guarantees the trigger fires at most once per session; this package
// only has to get the payload out.
package notify

import (
	"context"

	"github.com/listingone/leadgen/internal/domain"
)

// QualifiedLead is the payload published when a conversation completes.
// Duplicate and spam flags ride along for triage; they do not gate the
// event.
type QualifiedLead struct {
	SessionID    string            `json:"session_id"`
	Record       domain.UserRecord `json:"record"`
	Category     string            `json:"category"`
	TotalScore   float64           `json:"total_score"`
	IsDuplicate  bool              `json:"is_duplicate"`
	IsSpam       bool              `json:"is_spam"`
	MessageCount int               `json:"message_count"`
}

// Notifier is the notification collaborator contract.
type Notifier interface {
	LeadQualified(ctx context.Context, lead QualifiedLead) error
}

// Noop satisfies Notifier when no event transport is configured.
type Noop struct{}

func (Noop) LeadQualified(context.Context, QualifiedLead) error { return nil }
