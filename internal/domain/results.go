package domain

// ValidationResult reports record completeness and plausibility.
type ValidationResult struct {
	IsValid           bool     `json:"is_valid"`
	CompletenessScore float64  `json:"completeness_score"`
	QualityScore      float64  `json:"quality_score"`
	Issues            []string `json:"issues"`
}

// DuplicateMatch is one prior session whose identifying fields overlap.
type DuplicateMatch struct {
	SessionID  string   `json:"session_id"`
	Confidence float64  `json:"confidence"`
	Reasons    []string `json:"reasons"`
}

// DuplicateCheck is the result of cross-referencing a record against all
// previously seen sessions.
type DuplicateCheck struct {
	IsDuplicate bool             `json:"is_duplicate"`
	Confidence  float64          `json:"confidence"`
	Matches     []DuplicateMatch `json:"matches"`
}

// SpamCheck flags spam signatures local to a single record.
type SpamCheck struct {
	IsSpam     bool     `json:"is_spam"`
	Score      float64  `json:"score"`
	Indicators []string `json:"indicators"`
}

// LeadCategory buckets a lead by total score.
type LeadCategory string

const (
	CategoryHot         LeadCategory = "Hot"
	CategoryWarm        LeadCategory = "Warm"
	CategoryQualified   LeadCategory = "Qualified"
	CategoryCold        LeadCategory = "Cold"
	CategoryUnqualified LeadCategory = "Unqualified"
)

// LeadScore is the weighted qualification score for a record.
type LeadScore struct {
	TotalScore      float64            `json:"total_score"`
	Category        LeadCategory       `json:"category"`
	Priority        string             `json:"priority"`
	Breakdown       map[string]float64 `json:"breakdown"`
	Recommendations []string           `json:"recommendations"`
}

// IntentMatch is one classified intent with its confidence.
type IntentMatch struct {
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"`
}

// Intelligence carries advisory conversation analysis. It annotates the
// session for reporting and never gates state transitions.
type Intelligence struct {
	Sentiment     string        `json:"sentiment"`
	Engagement    string        `json:"engagement"`
	Urgency       string        `json:"urgency"`
	PrimaryIntent string        `json:"primary_intent"`
	SubIntents    []IntentMatch `json:"sub_intents"`
	Topics        []string      `json:"topics"`
	FocusAreas    []string      `json:"focus_areas"`
}
