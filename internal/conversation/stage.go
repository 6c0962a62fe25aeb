// Package conversation projects a session's collection progress onto the
// fixed stage sequence and renders the prompt context handed to the
// reply-phrasing collaborator.
package conversation

import (
	"strings"

	"github.com/listingone/leadgen/internal/domain"
)

// stageFor maps each required field to the stage that collects it.
var stageFor = map[string]domain.Stage{
	"user_name":              domain.StageCollectingName,
	"user_email":             domain.StageCollectingEmail,
	"user_phone_number":      domain.StageCollectingPhone,
	"user_buying_or_selling": domain.StageDeterminingType,
}

// Progress is the projection of a record onto the stage machine.
type Progress struct {
	Stage             domain.Stage
	CompletionRate    float64
	NextRequiredField string
}

// Project derives the stage from which prefix of the ordered required
// fields is filled. The machine holds no state of its own: it is a pure
// function of the record plus the validation outcome. Once all four
// required fields are filled the session sits in collecting_property_info
// until validation passes, at which point it is complete.
func Project(rec domain.UserRecord, valid bool, hasUserMessage bool) Progress {
	p := Progress{
		CompletionRate: float64(rec.RequiredFilled()) / float64(len(domain.RequiredFields)) * 100,
	}

	for _, f := range domain.RequiredFields {
		if !rec.HasField(f) {
			p.NextRequiredField = f
			break
		}
	}

	switch {
	case !hasUserMessage:
		p.Stage = domain.StageGreeting
	case p.NextRequiredField != "":
		p.Stage = stageFor[p.NextRequiredField]
	case valid:
		p.Stage = domain.StageComplete
	default:
		p.Stage = domain.StageCollectingPropertyInfo
	}
	return p
}

// Complete reports the double gate for downstream side effects: all
// required fields filled and the record passes validation. Spam and
// duplicate flags stay advisory.
func (p Progress) Complete(valid bool) bool {
	return p.CompletionRate == 100 && valid
}

// MergeCompleted appends newly filled required fields to the session's
// monotonic completed-fields cache, preserving first-observed order.
func MergeCompleted(existing []string, rec domain.UserRecord) []string {
	seen := make(map[string]bool, len(existing))
	for _, f := range existing {
		seen[f] = true
	}
	out := existing
	for _, f := range domain.RequiredFields {
		if !seen[f] && rec.HasField(f) {
			out = append(out, f)
		}
	}
	return out
}

// RenderContext builds the context string supplied to the reply
// collaborator so it can phrase the next question.
func RenderContext(s *domain.Session, p Progress) string {
	var b strings.Builder
	b.WriteString("stage: ")
	b.WriteString(string(p.Stage))
	b.WriteString("\ncompleted_fields: ")
	if len(s.CompletedFields) == 0 {
		b.WriteString("none")
	} else {
		b.WriteString(strings.Join(s.CompletedFields, ", "))
	}
	b.WriteString("\nnext_required_field: ")
	if p.NextRequiredField == "" {
		b.WriteString("none")
	} else {
		b.WriteString(p.NextRequiredField)
	}
	if s.Record.Name != "" {
		b.WriteString("\nlead_name: ")
		b.WriteString(s.Record.Name)
	}
	if s.Record.BuyingOrSelling != "" {
		b.WriteString("\nlead_type: ")
		b.WriteString(s.Record.BuyingOrSelling)
	}
	return b.String()
}
