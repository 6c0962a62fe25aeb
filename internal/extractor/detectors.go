package extractor

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/listingone/leadgen/internal/rules"
)

var (
	namePatterns = []*regexp.Regexp{
		regexp.MustCompile(`my name is ([a-z\s]+)`),
		regexp.MustCompile(`i'm ([a-z\s]+)`),
		regexp.MustCompile(`i am ([a-z\s]+)`),
		regexp.MustCompile(`call me ([a-z\s]+)`),
		regexp.MustCompile(`this is ([a-z\s]+)`),
		regexp.MustCompile(`name's ([a-z\s]+)`),
	}
	bareNamePattern = regexp.MustCompile(`^[a-zA-Z\s]+$`)

	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// Tried in order; first match wins.
	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
		regexp.MustCompile(`\d{10}`),
		regexp.MustCompile(`\+1[-.\s]?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
	}

	budgetPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\$\d{1,3}(?:,\d{3})*(?:\.\d{2})?`),
		regexp.MustCompile(`\d{1,3}(?:,\d{3})*\s*(?:dollars?|k|thousand)`),
		regexp.MustCompile(`budget.*?\d{1,3}(?:,\d{3})*`),
		regexp.MustCompile(`afford.*?\d{1,3}(?:,\d{3})*`),
	}

	addressPattern = regexp.MustCompile(`\d+\s+[a-z]+(?:\s+[a-z]+)*\s+(?:st|street|ave|avenue|rd|road|dr|drive|ln|lane|blvd|boulevard|ct|court|pl|place|way)\b`)

	yearBuiltPattern = regexp.MustCompile(`built (?:in |around )?(\d{4})`)
	sqftPattern      = regexp.MustCompile(`(\d{3,5})\s*(?:sq\.?\s?ft|sqft|square feet|square foot)`)
	bedroomsPattern  = regexp.MustCompile(`(\d+)\s*(?:bed(?:room)?s?|br)\b`)
	bathroomsPattern = regexp.MustCompile(`(\d+(?:\.\d)?)\s*(?:bath(?:room)?s?|ba)\b`)
	lotSizePatterns  = []*regexp.Regexp{
		regexp.MustCompile(`\d+(?:\.\d+)?\s*acres?\b`),
		regexp.MustCompile(`\d[\d,]*\s*(?:sq\.?\s?ft|square f(?:ee|oo)t)\s+lot`),
	}

	targetAreaPattern = regexp.MustCompile(`(?:^|\s)(?:the\s+)?([a-z]+(?:\s[a-z]+){0,2})\s+(?:area|neighborhood)\b`)
	motivationPattern = regexp.MustCompile(`(?:because|since we|the reason is|motivated by)\s+([^.!?]+)`)
	concernsPattern   = regexp.MustCompile(`(?:worried about|concerned about|my concern is|concerns me about)\s+([^.!?]+)`)
)

// titleCase normalizes an extracted lowercase fragment for display.
func titleCase(s string) string {
	return cases.Title(language.English).String(strings.TrimSpace(s))
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

func detectName(in input, r *rules.Rules) (string, bool) {
	for _, p := range namePatterns {
		m := p.FindStringSubmatch(in.joined)
		if m == nil {
			continue
		}
		name := titleCase(m[1])
		if len(name) <= 2 {
			continue
		}
		if stopWord(strings.ToLower(name), r.Extraction.NameStopWords) {
			continue
		}
		return name, true
	}

	// No self-introduction phrase: a short standalone message that is
	// nothing but letters is treated as a bare name reply.
	for _, msg := range in.messages {
		clean := strings.TrimSpace(msg)
		if len(clean) < 2 || len(clean) > 30 {
			continue
		}
		if !bareNamePattern.MatchString(clean) {
			continue
		}
		if stopWord(strings.ToLower(clean), r.Extraction.BareNameStopWords) {
			continue
		}
		return titleCase(clean), true
	}
	return "", false
}

func stopWord(s string, list []string) bool {
	for _, w := range list {
		if s == w {
			return true
		}
	}
	return false
}

func detectEmail(in input, _ *rules.Rules) (string, bool) {
	if m := emailPattern.FindString(in.joined); m != "" {
		return m, true
	}
	return "", false
}

func detectPhone(in input, _ *rules.Rules) (string, bool) {
	for _, p := range phonePatterns {
		if m := p.FindString(in.joined); m != "" {
			return m, true
		}
	}
	return "", false
}

func detectContactPreference(in input, _ *rules.Rules) (string, bool) {
	switch {
	case containsAny(in.joined, []string{"prefer email", "email me", "by email", "via email"}):
		return "email", true
	case containsAny(in.joined, []string{"text me", "prefer text", "by text"}):
		return "text", true
	case containsAny(in.joined, []string{"prefer a call", "prefer phone", "by phone", "phone call"}):
		return "phone", true
	}
	return "", false
}

// detectIntent reports buying vs selling. Selling signals are checked
// first and win on a tie.
func detectIntent(in input, r *rules.Rules) (string, bool) {
	if containsAny(in.joined, r.Extraction.SellingKeywords) {
		return "selling", true
	}
	if containsAny(in.joined, r.Extraction.BuyingKeywords) {
		return "buying", true
	}
	return "", false
}

func detectTimeline(in input, r *rules.Rules) (string, bool) {
	return firstBucket(in.joined, r.Extraction.TimelineBuckets)
}

func detectUrgency(in input, r *rules.Rules) (string, bool) {
	if containsAny(in.joined, r.Extraction.UrgencyKeywords) {
		return "high", true
	}
	return "", false
}

func detectExperience(in input, _ *rules.Rules) (string, bool) {
	if containsAny(in.joined, []string{"first time", "first-time", "never bought", "never sold"}) {
		return "first-time", true
	}
	if containsAny(in.joined, []string{"experienced", "sold before", "bought before", "own several", "done this before"}) {
		return "experienced", true
	}
	return "", false
}

func detectAddress(in input, _ *rules.Rules) (string, bool) {
	if m := addressPattern.FindString(in.joined); m != "" {
		return titleCase(m), true
	}
	return "", false
}

func detectPropertyType(in input, r *rules.Rules) (string, bool) {
	return firstBucket(in.joined, r.Extraction.PropertyTypes)
}

func detectYearBuilt(in input, _ *rules.Rules) (string, bool) {
	if m := yearBuiltPattern.FindStringSubmatch(in.joined); m != nil {
		return m[1], true
	}
	return "", false
}

func detectSquareFootage(in input, _ *rules.Rules) (string, bool) {
	if m := sqftPattern.FindStringSubmatch(in.joined); m != nil {
		return m[1], true
	}
	return "", false
}

func detectBedrooms(in input, _ *rules.Rules) (string, bool) {
	if m := bedroomsPattern.FindStringSubmatch(in.joined); m != nil {
		return m[1], true
	}
	return "", false
}

func detectBathrooms(in input, _ *rules.Rules) (string, bool) {
	if m := bathroomsPattern.FindStringSubmatch(in.joined); m != nil {
		return m[1], true
	}
	return "", false
}

func detectLotSize(in input, _ *rules.Rules) (string, bool) {
	for _, p := range lotSizePatterns {
		if m := p.FindString(in.joined); m != "" {
			return m, true
		}
	}
	return "", false
}

func detectRenovations(in input, _ *rules.Rules) (string, bool) {
	hits := collectHits(in.joined, []string{
		"new roof", "new hvac", "new windows", "new flooring",
		"updated kitchen", "updated bathroom", "renovated", "remodeled",
	})
	if len(hits) == 0 {
		return "", false
	}
	return strings.Join(hits, ", "), true
}

func detectCondition(in input, r *rules.Rules) (string, bool) {
	return firstBucket(in.joined, r.Extraction.ConditionBuckets)
}

func detectTargetAreas(in input, _ *rules.Rules) (string, bool) {
	if m := targetAreaPattern.FindStringSubmatch(in.joined); m != nil {
		return titleCase(m[1]), true
	}
	return "", false
}

func detectBudget(in input, _ *rules.Rules) (string, bool) {
	for _, p := range budgetPatterns {
		if m := p.FindString(in.joined); m != "" {
			return m, true
		}
	}
	return "", false
}

func detectPreferences(in input, r *rules.Rules) (string, bool) {
	hits := collectHits(in.joined, r.Extraction.PreferenceWords)
	if len(hits) == 0 {
		return "", false
	}
	return strings.Join(hits, ", "), true
}

func detectFinancing(in input, _ *rules.Rules) (string, bool) {
	switch {
	case containsAny(in.joined, []string{"pre-approved", "preapproved", "pre-qualified", "prequalified"}):
		return "pre-approved", true
	case containsAny(in.joined, []string{"all cash", "cash buyer", "paying cash", "pay cash", "cash offer"}):
		return "cash", true
	case containsAny(in.joined, []string{"need financing", "need a loan", "need a mortgage", "not approved yet"}):
		return "needs financing", true
	}
	return "", false
}

func detectMotivation(in input, _ *rules.Rules) (string, bool) {
	if m := motivationPattern.FindStringSubmatch(in.joined); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}

func detectConcerns(in input, _ *rules.Rules) (string, bool) {
	if m := concernsPattern.FindStringSubmatch(in.joined); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}

// firstBucket returns the label of the first bucket whose keywords hit.
func firstBucket(text string, buckets []rules.KeywordBucket) (string, bool) {
	for _, b := range buckets {
		if containsAny(text, b.Keywords) {
			return b.Label, true
		}
	}
	return "", false
}

func collectHits(text string, words []string) []string {
	var hits []string
	for _, w := range words {
		if strings.Contains(text, w) {
			hits = append(hits, w)
		}
	}
	return hits
}
