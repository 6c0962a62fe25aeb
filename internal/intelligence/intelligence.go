// Package intelligence annotates a conversation with sentiment, intent,
// and topic classification. The analysis is informational only: it never
// feeds the stage machine or any completion gate.
package intelligence

import (
	"sort"
	"strings"

	"github.com/listingone/leadgen/internal/domain"
	"github.com/listingone/leadgen/internal/rules"
)

type Analyzer struct {
	rules *rules.Rules
}

func New(r *rules.Rules) *Analyzer {
	return &Analyzer{rules: r}
}

// Analyze classifies the user-authored side of the transcript.
func (a *Analyzer) Analyze(transcript []domain.Message) domain.Intelligence {
	var msgs []string
	for _, m := range transcript {
		if m.Speaker == domain.SpeakerUser {
			msgs = append(msgs, strings.ToLower(m.Text))
		}
	}
	text := strings.Join(msgs, " ")

	out := domain.Intelligence{
		Sentiment:  a.sentiment(text),
		Engagement: a.engagementTier(msgs),
		Urgency:    a.urgencyFlag(text),
		SubIntents: []domain.IntentMatch{},
		Topics:     []string{},
		FocusAreas: []string{},
	}
	a.classifyIntent(text, &out)
	a.classifyTopics(text, &out)
	return out
}

func (a *Analyzer) sentiment(text string) string {
	pos := countOccurrences(text, a.rules.Intelligence.PositiveWords)
	neg := countOccurrences(text, a.rules.Intelligence.NegativeWords)
	switch {
	case pos > neg:
		return "positive"
	case neg > pos:
		return "negative"
	}
	return "neutral"
}

func (a *Analyzer) engagementTier(msgs []string) string {
	count := len(msgs)
	mean := 0.0
	if count > 0 {
		total := 0
		for _, m := range msgs {
			total += len(m)
		}
		mean = float64(total) / float64(count)
	}
	switch {
	case count >= 5 && mean > 20:
		return "high"
	case count >= 3 || mean > 15:
		return "medium"
	}
	return "low"
}

func (a *Analyzer) urgencyFlag(text string) string {
	for _, w := range a.rules.Intelligence.UrgencyKeywords {
		if strings.Contains(text, w) {
			return "high"
		}
	}
	return "normal"
}

// classifyIntent counts phrase-pattern matches per category. Confidence
// is min(100, matches x 25); the primary intent is the highest-confidence
// category with ties broken by declaration order.
func (a *Analyzer) classifyIntent(text string, out *domain.Intelligence) {
	type scored struct {
		name       string
		confidence float64
		order      int
	}

	var all []scored
	for i, cat := range a.rules.Intelligence.Intents {
		matches := countOccurrences(text, cat.Phrases)
		if matches == 0 {
			continue
		}
		conf := float64(matches) * 25
		if conf > 100 {
			conf = 100
		}
		all = append(all, scored{name: cat.Name, confidence: conf, order: i})
	}

	if len(all) == 0 {
		out.PrimaryIntent = "general_inquiry"
		return
	}

	sort.SliceStable(all, func(i, j int) bool {
		if all[i].confidence != all[j].confidence {
			return all[i].confidence > all[j].confidence
		}
		return all[i].order < all[j].order
	})

	out.PrimaryIntent = all[0].name
	for _, s := range all[1:] {
		if s.confidence > 25 {
			out.SubIntents = append(out.SubIntents, domain.IntentMatch{
				Intent:     s.name,
				Confidence: s.confidence,
			})
		}
	}
}

// classifyTopics counts individual keyword hits per category: topics are
// the top five categories, focus areas those with at least two hits.
func (a *Analyzer) classifyTopics(text string, out *domain.Intelligence) {
	type scored struct {
		name  string
		hits  int
		order int
	}

	var all []scored
	for i, cat := range a.rules.Intelligence.Topics {
		hits := countOccurrences(text, cat.Keywords)
		if hits == 0 {
			continue
		}
		all = append(all, scored{name: cat.Name, hits: hits, order: i})
	}

	sort.SliceStable(all, func(i, j int) bool {
		if all[i].hits != all[j].hits {
			return all[i].hits > all[j].hits
		}
		return all[i].order < all[j].order
	})

	for i, s := range all {
		if i < 5 {
			out.Topics = append(out.Topics, s.name)
		}
		if s.hits >= 2 {
			out.FocusAreas = append(out.FocusAreas, s.name)
		}
	}
}

func countOccurrences(text string, words []string) int {
	n := 0
	for _, w := range words {
		n += strings.Count(text, w)
	}
	return n
}
