// Package screening cross-references a record against previously seen
// sessions to flag repeat leads, and scans a single record for spam
// signatures. Both checks are advisory: they annotate the turn result and
// never gate the conversation.
package screening

import (
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"github.com/listingone/leadgen/internal/domain"
	"github.com/listingone/leadgen/internal/rules"
)

var nonDigits = regexp.MustCompile(`\D`)

type Detector struct {
	rules  *rules.Rules
	logger *slog.Logger
}

func New(r *rules.Rules, logger *slog.Logger) *Detector {
	return &Detector{rules: r, logger: logger}
}

// pairScore is one candidate session's identity overlap with the record.
type pairScore struct {
	sessionID string
	score     float64
	reasons   []string
}

// FindDuplicates scores the record against every other session with a
// non-empty record. A session is a match at or above the configured
// threshold; up to the top N matches are reported in descending order.
func (d *Detector) FindDuplicates(rec domain.UserRecord, selfID string, others []*domain.Session) domain.DuplicateCheck {
	check := domain.DuplicateCheck{Matches: []domain.DuplicateMatch{}}

	email := normalizeEmail(rec.Email)
	phone := normalizePhone(rec.Phone)
	name := normalizeName(rec.Name)

	var candidates []pairScore
	for _, s := range others {
		if s.ID == selfID || s.Record.IsEmpty() {
			continue
		}
		p := pairScore{sessionID: s.ID}

		if email != "" && email == normalizeEmail(s.Record.Email) {
			p.score += 80
			p.reasons = append(p.reasons, "email_exact_match")
		}
		if phone != "" && len(phone) >= 10 && phone == normalizePhone(s.Record.Phone) {
			p.score += 80
			p.reasons = append(p.reasons, "phone_exact_match")
		}
		otherName := normalizeName(s.Record.Name)
		if name != "" && otherName != "" {
			if name == otherName {
				p.score += 40
				p.reasons = append(p.reasons, "name_exact_match")
			} else if len(name) > 2 && len(otherName) > 2 &&
				(strings.Contains(name, otherName) || strings.Contains(otherName, name)) {
				p.score += 20
				p.reasons = append(p.reasons, "name_partial_match")
			}
		}

		if p.score >= d.rules.Duplicate.MatchThreshold {
			candidates = append(candidates, p)
		}
	}

	if len(candidates) == 0 {
		return check
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	max := d.rules.Duplicate.MaxMatches
	if max <= 0 || max > len(candidates) {
		max = len(candidates)
	}
	for _, c := range candidates[:max] {
		check.Matches = append(check.Matches, domain.DuplicateMatch{
			SessionID:  c.sessionID,
			Confidence: c.score,
			Reasons:    c.reasons,
		})
	}

	check.IsDuplicate = true
	check.Confidence = candidates[0].score
	if check.Confidence > 100 {
		check.Confidence = 100
	}

	d.logger.Debug("duplicate candidates found",
		"session_id", selfID,
		"matches", len(candidates),
		"confidence", check.Confidence,
	)
	return check
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func normalizePhone(s string) string {
	return nonDigits.ReplaceAllString(s, "")
}

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
