// Package scoring computes the weighted lead score, category, and
// follow-up recommendations for a structured record.
package scoring

import (
	"regexp"
	"strings"

	"github.com/listingone/leadgen/internal/domain"
	"github.com/listingone/leadgen/internal/rules"
)

// bonusFields add up to 10 extra completeness points at 2.5 each.
var bonusFields = []string{
	"user_property_address",
	"user_budget_range",
	"user_target_areas",
	"user_motivation",
}

var hasDigit = regexp.MustCompile(`\d`)

type Scorer struct {
	rules *rules.Rules
}

func New(r *rules.Rules) *Scorer {
	return &Scorer{rules: r}
}

// Score sums five independent subscores. The total is the raw sum, not
// independently clamped; categories are cut at the configured thresholds.
// messageCount is the session's full transcript length.
func (s *Scorer) Score(rec domain.UserRecord, messageCount int) domain.LeadScore {
	breakdown := map[string]float64{
		"data_completeness":    s.completeness(rec),
		"timeline_urgency":     s.timelineUrgency(rec),
		"budget_qualification": s.budgetQualification(rec),
		"engagement_level":     s.engagement(rec, messageCount),
		"experience_bonus":     s.experienceBonus(rec),
	}

	total := 0.0
	for _, v := range breakdown {
		total += v
	}

	category, priority := s.categorize(total)

	return domain.LeadScore{
		TotalScore:      total,
		Category:        category,
		Priority:        priority,
		Breakdown:       breakdown,
		Recommendations: recommendations(category, rec.BuyingOrSelling),
	}
}

// completeness: required fields are worth 40 points, bonus fields up to
// 10 more at 2.5 each.
func (s *Scorer) completeness(rec domain.UserRecord) float64 {
	score := float64(rec.RequiredFilled()) / float64(len(domain.RequiredFields)) * 40

	bonus := 0.0
	for _, f := range bonusFields {
		if rec.HasField(f) {
			bonus += 2.5
		}
	}
	if bonus > 10 {
		bonus = 10
	}
	return score + bonus
}

// timelineUrgency walks the ordered points table and awards the first
// keyword found in either the timeline or the urgency field.
func (s *Scorer) timelineUrgency(rec domain.UserRecord) float64 {
	timeline := strings.ToLower(rec.Timeline)
	urgency := strings.ToLower(rec.Urgency)
	for _, entry := range s.rules.Scoring.TimelinePoints {
		if strings.Contains(timeline, entry.Keyword) || strings.Contains(urgency, entry.Keyword) {
			return entry.Points
		}
	}
	return 0
}

// budgetQualification: 10 points for a numeric budget figure, plus one
// financing bonus — cash, pre-approved, or needs-financing — evaluated
// in that order with only one applied.
func (s *Scorer) budgetQualification(rec domain.UserRecord) float64 {
	score := 0.0
	budget := strings.ToLower(rec.BudgetRange)
	financing := strings.ToLower(rec.FinancingStatus)

	if hasDigit.MatchString(budget) {
		score += 10
	}

	combined := budget + " " + financing
	switch {
	case strings.Contains(financing, "cash") || strings.Contains(budget, "cash"):
		score += 15
	case strings.Contains(combined, "pre-approved") || strings.Contains(combined, "preapproved") ||
		strings.Contains(combined, "pre-qualified") || strings.Contains(combined, "prequalified"):
		score += 10
	case strings.Contains(financing, "need"):
		score += 5
	}
	return score
}

func (s *Scorer) engagement(rec domain.UserRecord, messageCount int) float64 {
	score := float64(messageCount) * 2
	if score > 15 {
		score = 15
	}
	if len(rec.Motivation) > 20 || len(rec.Concerns) > 20 {
		score += 3
	}
	return score
}

func (s *Scorer) experienceBonus(rec domain.UserRecord) float64 {
	level := strings.ToLower(rec.ExperienceLevel)
	switch {
	case strings.Contains(level, "first"):
		return 5
	case strings.Contains(level, "experienced"):
		return 3
	}
	return 0
}

func (s *Scorer) categorize(total float64) (domain.LeadCategory, string) {
	r := s.rules.Scoring
	switch {
	case total >= r.HotThreshold:
		return domain.CategoryHot, "immediate"
	case total >= r.WarmThreshold:
		return domain.CategoryWarm, "next_business_day"
	case total >= r.QualifiedThreshold:
		return domain.CategoryQualified, "within_3_days"
	case total >= r.ColdThreshold:
		return domain.CategoryCold, "nurture_campaign"
	}
	return domain.CategoryUnqualified, "no_followup"
}

// recommendations is a fixed lookup by category; Hot leads are further
// split by buying vs selling.
func recommendations(cat domain.LeadCategory, buyingOrSelling string) []string {
	switch cat {
	case domain.CategoryHot:
		if strings.Contains(strings.ToLower(buyingOrSelling), "sell") {
			return []string{
				"Call within the hour to schedule a property evaluation",
				"Prepare a comparative market analysis for their address",
				"Book a listing walkthrough this week",
			}
		}
		return []string{
			"Call within the hour to schedule a buyer consultation",
			"Send curated listings within their budget range",
			"Connect them with a mortgage partner if not pre-approved",
		}
	case domain.CategoryWarm:
		return []string{
			"Follow up by phone on the next business day",
			"Send a personalized market snapshot for their area",
		}
	case domain.CategoryQualified:
		return []string{
			"Follow up within three days to fill in missing details",
			"Add to the weekly listings digest",
		}
	case domain.CategoryCold:
		return []string{
			"Enroll in the nurture email campaign",
			"Re-engage when their stated timeline approaches",
		}
	}
	return []string{
		"No immediate follow-up; revisit if the conversation resumes",
	}
}
