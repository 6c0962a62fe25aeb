package engine

import (
	"context"
	"sort"
	"strings"

	"github.com/listingone/leadgen/internal/domain"
)

// Lead is the reporting view of one session's collected data.
type Lead struct {
	SessionID            string                 `json:"session_id"`
	Record               domain.UserRecord      `json:"record"`
	CompletionRate       float64                `json:"completion_rate"`
	ConversationComplete bool                   `json:"conversation_complete"`
	Score                *domain.LeadScore      `json:"score,omitempty"`
	DuplicateCheck       *domain.DuplicateCheck `json:"duplicate_check,omitempty"`
	SpamCheck            *domain.SpamCheck      `json:"spam_check,omitempty"`
	MessageCount         int                    `json:"message_count"`
}

// Leads returns every session that has produced contact data, highest
// scoring first.
func (e *Engine) Leads(ctx context.Context) ([]Lead, error) {
	sessions, err := e.store.List(ctx)
	if err != nil {
		return nil, err
	}

	leads := make([]Lead, 0, len(sessions))
	for _, s := range sessions {
		if s.Record.IsEmpty() {
			continue
		}
		leads = append(leads, Lead{
			SessionID:            s.ID,
			Record:               s.Record,
			CompletionRate:       s.CompletionRate,
			ConversationComplete: s.ConversationComplete,
			Score:                s.Score,
			DuplicateCheck:       s.DuplicateCheck,
			SpamCheck:            s.SpamCheck,
			MessageCount:         len(s.Transcript),
		})
	}

	sort.SliceStable(leads, func(i, j int) bool {
		var si, sj float64
		if leads[i].Score != nil {
			si = leads[i].Score.TotalScore
		}
		if leads[j].Score != nil {
			sj = leads[j].Score.TotalScore
		}
		return si > sj
	})
	return leads, nil
}

// Analytics summarizes conversation volume and lead mix.
type Analytics struct {
	TotalConversations     int            `json:"total_conversations"`
	CompletedConversations int            `json:"completed_conversations"`
	CompletionRate         float64        `json:"completion_rate"`
	LeadTypes              map[string]int `json:"lead_types"`
	Categories             map[string]int `json:"categories"`
	SpamCount              int            `json:"spam_count"`
	DuplicateCount         int            `json:"duplicate_count"`
}

func (e *Engine) Analytics(ctx context.Context) (*Analytics, error) {
	sessions, err := e.store.List(ctx)
	if err != nil {
		return nil, err
	}

	a := &Analytics{
		LeadTypes:  map[string]int{"buying": 0, "selling": 0, "unknown": 0},
		Categories: make(map[string]int),
	}
	for _, s := range sessions {
		a.TotalConversations++
		if s.ConversationComplete {
			a.CompletedConversations++
		}
		switch strings.ToLower(s.Record.BuyingOrSelling) {
		case "buying":
			a.LeadTypes["buying"]++
		case "selling":
			a.LeadTypes["selling"]++
		default:
			a.LeadTypes["unknown"]++
		}
		if s.Score != nil {
			a.Categories[string(s.Score.Category)]++
		}
		if s.SpamCheck != nil && s.SpamCheck.IsSpam {
			a.SpamCount++
		}
		if s.DuplicateCheck != nil && s.DuplicateCheck.IsDuplicate {
			a.DuplicateCount++
		}
	}
	if a.TotalConversations > 0 {
		a.CompletionRate = float64(a.CompletedConversations) / float64(a.TotalConversations) * 100
	}
	return a, nil
}
