// Package validate checks a structured record for completeness and
// plausibility. Validation is deterministic and makes no external calls:
// the same record always produces the same result.
package validate

import (
	"regexp"
	"strings"

	"github.com/listingone/leadgen/internal/domain"
	"github.com/listingone/leadgen/internal/rules"
)

// strictEmail is tighter than the extraction pattern: the whole value
// must be an address, not merely contain one.
var strictEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

var digitsOnly = regexp.MustCompile(`\D`)

type Validator struct {
	rules *rules.Rules
}

func New(r *rules.Rules) *Validator {
	return &Validator{rules: r}
}

// Validate scores the record. Completeness covers the four required
// fields; quality starts at 100 and is decremented per issue, floored
// at zero after all penalties are summed.
func (v *Validator) Validate(rec domain.UserRecord) domain.ValidationResult {
	res := domain.ValidationResult{Issues: []string{}}

	filled := rec.RequiredFilled()
	res.CompletenessScore = float64(filled) / float64(len(domain.RequiredFields)) * 100

	for _, f := range domain.RequiredFields {
		if !rec.HasField(f) {
			res.Issues = append(res.Issues, "missing_"+strings.TrimPrefix(f, "user_"))
		}
	}

	penalty := 0.0

	email := strings.TrimSpace(rec.Email)
	if email != "" && !strictEmail.MatchString(email) {
		penalty -= 20
		res.Issues = append(res.Issues, "invalid_email_format")
	}

	phone := strings.TrimSpace(rec.Phone)
	if phone != "" {
		digits := digitsOnly.ReplaceAllString(phone, "")
		if len(digits) < 10 || len(digits) > 11 {
			penalty -= 20
			res.Issues = append(res.Issues, "invalid_phone_length")
		}
	}

	name := strings.ToLower(strings.TrimSpace(rec.Name))
	if name != "" {
		for _, fake := range v.rules.Validation.FakeNames {
			if strings.Contains(name, fake) {
				penalty -= 30
				res.Issues = append(res.Issues, "fake_name")
				break
			}
		}
	}

	if email != "" {
		lower := strings.ToLower(email)
		for _, marker := range v.rules.Validation.FakeEmailMarkers {
			if strings.Contains(lower, marker) {
				penalty -= 30
				res.Issues = append(res.Issues, "fake_email")
				break
			}
		}
	}

	res.QualityScore = 100 + penalty
	if res.QualityScore < 0 {
		res.QualityScore = 0
	}

	res.IsValid = res.CompletenessScore >= 75 &&
		res.QualityScore >= 60 &&
		len(res.Issues) <= 2

	return res
}
