// Package extractor derives a structured UserRecord from a conversation
// transcript using ordered pattern rules. Extraction is a pure function of
// the full transcript and is re-run every turn; Merge keeps previously
// collected facts from regressing.
package extractor

import (
	"log/slog"
	"strings"

	"github.com/listingone/leadgen/internal/domain"
	"github.com/listingone/leadgen/internal/rules"
)

type Extractor struct {
	rules  *rules.Rules
	logger *slog.Logger
}

func New(r *rules.Rules, logger *slog.Logger) *Extractor {
	return &Extractor{rules: r, logger: logger}
}

// input is the pre-processed view of a transcript shared by all detectors.
type input struct {
	// joined is all user-authored text concatenated in order, lowercased.
	joined string
	// messages are the raw user-authored texts in order.
	messages []string
}

func newInput(transcript []domain.Message) input {
	var raw []string
	var lowered []string
	for _, m := range transcript {
		if m.Speaker == domain.SpeakerUser {
			raw = append(raw, m.Text)
			lowered = append(lowered, strings.ToLower(m.Text))
		}
	}
	return input{joined: strings.Join(lowered, " "), messages: raw}
}

// detector produces one field's value from the transcript. found=false
// means "no match", which is distinct from a found-but-empty value.
type detector struct {
	field string
	fn    func(in input, r *rules.Rules) (value string, found bool)
}

// detectors are independent and evaluated in order. A failing detector
// yields an empty field and never aborts the remaining fields.
var detectors = []detector{
	{"user_name", detectName},
	{"user_email", detectEmail},
	{"user_phone_number", detectPhone},
	{"user_contact_preference", detectContactPreference},
	{"user_buying_or_selling", detectIntent},
	{"user_timeline", detectTimeline},
	{"user_urgency", detectUrgency},
	{"user_experience_level", detectExperience},
	{"user_property_address", detectAddress},
	{"user_property_type", detectPropertyType},
	{"user_year_built", detectYearBuilt},
	{"user_square_footage", detectSquareFootage},
	{"user_number_of_bedrooms", detectBedrooms},
	{"user_number_of_bathrooms", detectBathrooms},
	{"user_lot_size", detectLotSize},
	{"user_recent_renovations_or_upgrades", detectRenovations},
	{"user_current_condition_assessment", detectCondition},
	{"user_target_areas", detectTargetAreas},
	{"user_budget_range", detectBudget},
	{"user_property_preferences", detectPreferences},
	{"user_financing_status", detectFinancing},
	{"user_motivation", detectMotivation},
	{"user_concerns", detectConcerns},
}

// Extract re-derives the structured record from the whole transcript.
// Only user-authored messages are considered.
func (e *Extractor) Extract(transcript []domain.Message) domain.UserRecord {
	in := newInput(transcript)

	var rec domain.UserRecord
	for _, d := range detectors {
		if v, ok := e.run(d, in); ok {
			rec.Set(d.field, v)
		}
	}
	return rec
}

// run executes one detector with panic isolation.
func (e *Extractor) run(d detector, in input) (value string, found bool) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Warn("field detector panicked", "field", d.field, "panic", r)
			value, found = "", false
		}
	}()
	return d.fn(in, e.rules)
}

// Merge fills every empty field in existing with the corresponding
// non-empty value from latest. Already-known fields are never overwritten,
// so facts accumulate monotonically across turns.
func Merge(existing, latest domain.UserRecord) domain.UserRecord {
	merged := existing
	for _, f := range domain.AllFields {
		if strings.TrimSpace(merged.Field(f)) == "" {
			if v := strings.TrimSpace(latest.Field(f)); v != "" {
				merged.Set(f, latest.Field(f))
			}
		}
	}
	return merged
}
