package scoring

import (
	"strings"
	"testing"

	"github.com/listingone/leadgen/internal/domain"
	"github.com/listingone/leadgen/internal/rules"
)

func TestScoreHotLead(t *testing.T) {
	s := New(rules.Default())

	rec := domain.UserRecord{
		Name:            "John Smith",
		Email:           "john@gmail.com",
		Phone:           "5551234567",
		BuyingOrSelling: "buying",
		Timeline:        "ASAP",
		BudgetRange:     "$450,000",
		FinancingStatus: "pre-approved",
		PropertyAddress: "123 Main Street",
		TargetAreas:     "Downtown",
	}
	// completeness 40 + 7.5 bonus, timeline 25, budget 10+10, engagement 12.
	score := s.Score(rec, 6)

	if score.TotalScore != 104.5 {
		t.Errorf("TotalScore = %v, want 104.5 (breakdown %v)", score.TotalScore, score.Breakdown)
	}
	if score.Category != domain.CategoryHot {
		t.Errorf("Category = %q, want Hot", score.Category)
	}
	if score.Priority != "immediate" {
		t.Errorf("Priority = %q, want immediate", score.Priority)
	}
	if len(score.Recommendations) == 0 || !strings.Contains(score.Recommendations[0], "buyer") {
		t.Errorf("Recommendations = %v, want buyer-side follow-ups", score.Recommendations)
	}
}

func TestScoreEmptyRecordUnqualified(t *testing.T) {
	s := New(rules.Default())

	score := s.Score(domain.UserRecord{}, 0)
	if score.TotalScore != 0 {
		t.Errorf("TotalScore = %v, want 0", score.TotalScore)
	}
	if score.Category != domain.CategoryUnqualified {
		t.Errorf("Category = %q, want Unqualified", score.Category)
	}
	if score.Priority != "no_followup" {
		t.Errorf("Priority = %q, want no_followup", score.Priority)
	}
}

func TestScoreBreakdownComponents(t *testing.T) {
	s := New(rules.Default())

	tests := []struct {
		name      string
		rec       domain.UserRecord
		msgs      int
		component string
		want      float64
	}{
		{
			name:      "required fields only",
			rec:       domain.UserRecord{Name: "a", Email: "b", Phone: "c", BuyingOrSelling: "buying"},
			component: "data_completeness",
			want:      40,
		},
		{
			name:      "bonus fields capped",
			rec:       domain.UserRecord{PropertyAddress: "x", BudgetRange: "y", TargetAreas: "z", Motivation: "m"},
			component: "data_completeness",
			want:      10,
		},
		{
			name:      "urgency field feeds timeline points",
			rec:       domain.UserRecord{Urgency: "this is urgent"},
			component: "timeline_urgency",
			want:      25,
		},
		{
			name:      "first table entry wins",
			rec:       domain.UserRecord{Timeline: "no rush, maybe next year"},
			component: "timeline_urgency",
			want:      8,
		},
		{
			name:      "cash beats pre-approval",
			rec:       domain.UserRecord{BudgetRange: "$300,000 cash", FinancingStatus: "pre-approved"},
			component: "budget_qualification",
			want:      25,
		},
		{
			name:      "needs financing",
			rec:       domain.UserRecord{FinancingStatus: "needs financing"},
			component: "budget_qualification",
			want:      5,
		},
		{
			name:      "engagement capped at 15",
			rec:       domain.UserRecord{},
			msgs:      20,
			component: "engagement_level",
			want:      15,
		},
		{
			name:      "long motivation bonus",
			rec:       domain.UserRecord{Motivation: "relocating for a new job out of state"},
			msgs:      2,
			component: "engagement_level",
			want:      7,
		},
		{
			name:      "first-time bonus",
			rec:       domain.UserRecord{ExperienceLevel: "first-time"},
			component: "experience_bonus",
			want:      5,
		},
		{
			name:      "experienced bonus",
			rec:       domain.UserRecord{ExperienceLevel: "experienced"},
			component: "experience_bonus",
			want:      3,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := s.Score(tt.rec, tt.msgs)
			if got := score.Breakdown[tt.component]; got != tt.want {
				t.Errorf("Breakdown[%s] = %v, want %v", tt.component, got, tt.want)
			}
		})
	}
}

func TestScoreCategoryThresholds(t *testing.T) {
	s := New(rules.Default())

	tests := []struct {
		total    float64
		category domain.LeadCategory
		priority string
	}{
		{85, domain.CategoryHot, "immediate"},
		{80, domain.CategoryHot, "immediate"},
		{60, domain.CategoryWarm, "next_business_day"},
		{40, domain.CategoryQualified, "within_3_days"},
		{20, domain.CategoryCold, "nurture_campaign"},
		{19, domain.CategoryUnqualified, "no_followup"},
	}
	for _, tt := range tests {
		cat, prio := s.categorize(tt.total)
		if cat != tt.category || prio != tt.priority {
			t.Errorf("categorize(%v) = (%q, %q), want (%q, %q)",
				tt.total, cat, prio, tt.category, tt.priority)
		}
	}
}

func TestScoreMoreDataNeverLowersScore(t *testing.T) {
	s := New(rules.Default())

	sparse := domain.UserRecord{Name: "John Smith", Timeline: "ASAP"}
	richer := sparse
	richer.Email = "john@gmail.com"
	richer.BudgetRange = "$450,000"

	a := s.Score(sparse, 4)
	b := s.Score(richer, 4)
	if b.TotalScore < a.TotalScore {
		t.Errorf("score dropped when fields were added: %v -> %v", a.TotalScore, b.TotalScore)
	}
}

func TestScoreHotSellerRecommendations(t *testing.T) {
	recs := recommendations(domain.CategoryHot, "selling")
	if len(recs) == 0 || !strings.Contains(recs[0], "property evaluation") {
		t.Errorf("Recommendations = %v, want seller-side follow-ups", recs)
	}
}
