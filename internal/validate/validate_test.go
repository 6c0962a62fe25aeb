package validate

import (
	"testing"

	"github.com/listingone/leadgen/internal/domain"
	"github.com/listingone/leadgen/internal/rules"
)

func fullRecord() domain.UserRecord {
	return domain.UserRecord{
		Name:            "John Smith",
		Email:           "john.smith@gmail.com",
		Phone:           "555-123-4567",
		BuyingOrSelling: "buying",
	}
}

func TestValidateCompleteRecord(t *testing.T) {
	v := New(rules.Default())

	res := v.Validate(fullRecord())
	if !res.IsValid {
		t.Errorf("IsValid = false, issues = %v", res.Issues)
	}
	if res.CompletenessScore != 100 {
		t.Errorf("CompletenessScore = %v, want 100", res.CompletenessScore)
	}
	if res.QualityScore != 100 {
		t.Errorf("QualityScore = %v, want 100", res.QualityScore)
	}
	if len(res.Issues) != 0 {
		t.Errorf("Issues = %v, want none", res.Issues)
	}
}

func TestValidateMissingFields(t *testing.T) {
	v := New(rules.Default())

	rec := domain.UserRecord{Name: "John Smith"}
	res := v.Validate(rec)

	if res.CompletenessScore != 25 {
		t.Errorf("CompletenessScore = %v, want 25", res.CompletenessScore)
	}
	if res.IsValid {
		t.Error("IsValid = true for a record missing three required fields")
	}
	want := []string{"missing_email", "missing_phone_number", "missing_buying_or_selling"}
	if len(res.Issues) != len(want) {
		t.Fatalf("Issues = %v, want %v", res.Issues, want)
	}
	for i, w := range want {
		if res.Issues[i] != w {
			t.Errorf("Issues[%d] = %q, want %q", i, res.Issues[i], w)
		}
	}
}

func TestValidateQualityPenalties(t *testing.T) {
	v := New(rules.Default())

	tests := []struct {
		name        string
		mutate      func(*domain.UserRecord)
		wantQuality float64
		wantIssue   string
		wantValid   bool
	}{
		{
			name:        "malformed email",
			mutate:      func(r *domain.UserRecord) { r.Email = "john at gmail" },
			wantQuality: 80,
			wantIssue:   "invalid_email_format",
			wantValid:   true,
		},
		{
			name:        "phone too short",
			mutate:      func(r *domain.UserRecord) { r.Phone = "12345" },
			wantQuality: 80,
			wantIssue:   "invalid_phone_length",
			wantValid:   true,
		},
		{
			name:        "phone too long",
			mutate:      func(r *domain.UserRecord) { r.Phone = "123456789012" },
			wantQuality: 80,
			wantIssue:   "invalid_phone_length",
			wantValid:   true,
		},
		{
			name:        "fake name",
			mutate:      func(r *domain.UserRecord) { r.Name = "John Doe" },
			wantQuality: 70,
			wantIssue:   "fake_name",
			wantValid:   true,
		},
		{
			name:        "fake email marker",
			mutate:      func(r *domain.UserRecord) { r.Email = "test@gmail.com" },
			wantQuality: 70,
			wantIssue:   "fake_email",
			wantValid:   true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := fullRecord()
			tt.mutate(&rec)
			res := v.Validate(rec)

			if res.QualityScore != tt.wantQuality {
				t.Errorf("QualityScore = %v, want %v", res.QualityScore, tt.wantQuality)
			}
			if len(res.Issues) != 1 || res.Issues[0] != tt.wantIssue {
				t.Errorf("Issues = %v, want [%s]", res.Issues, tt.wantIssue)
			}
			if res.IsValid != tt.wantValid {
				t.Errorf("IsValid = %v, want %v", res.IsValid, tt.wantValid)
			}
		})
	}
}

func TestValidateStackedPenaltiesInvalidate(t *testing.T) {
	v := New(rules.Default())

	rec := fullRecord()
	rec.Name = "Test User"       // fake name: -30
	rec.Email = "test@gmail.com" // fake marker: -30
	rec.Phone = "123"            // bad length: -20

	res := v.Validate(rec)
	if res.QualityScore != 20 {
		t.Errorf("QualityScore = %v, want 20", res.QualityScore)
	}
	if res.IsValid {
		t.Errorf("IsValid = true with issues %v", res.Issues)
	}
}

func TestValidateEmptyOptionalFieldsNotPenalized(t *testing.T) {
	v := New(rules.Default())

	// Empty email/phone are "missing", not "invalid": no quality penalty.
	rec := domain.UserRecord{Name: "John Smith", BuyingOrSelling: "selling"}
	res := v.Validate(rec)
	if res.QualityScore != 100 {
		t.Errorf("QualityScore = %v, want 100 for absent values", res.QualityScore)
	}
	if res.CompletenessScore != 50 {
		t.Errorf("CompletenessScore = %v, want 50", res.CompletenessScore)
	}
	if res.IsValid {
		t.Error("IsValid = true at 50% completeness")
	}
}
