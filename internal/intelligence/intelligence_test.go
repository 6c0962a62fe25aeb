package intelligence

import (
	"testing"

	"github.com/listingone/leadgen/internal/domain"
	"github.com/listingone/leadgen/internal/rules"
)

func userMessages(texts ...string) []domain.Message {
	msgs := make([]domain.Message, 0, len(texts))
	for _, t := range texts {
		msgs = append(msgs, domain.Message{Text: t, Speaker: domain.SpeakerUser})
	}
	return msgs
}

func TestAnalyzeSentiment(t *testing.T) {
	a := New(rules.Default())

	tests := []struct {
		name string
		text string
		want string
	}{
		{"positive", "That sounds great, thanks so much, this is perfect!", "positive"},
		{"negative", "I'm frustrated, this whole process has been terrible.", "negative"},
		{"neutral", "I would like to ask about a house on Main Street.", "neutral"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Analyze(userMessages(tt.text))
			if got.Sentiment != tt.want {
				t.Errorf("Sentiment = %q, want %q", got.Sentiment, tt.want)
			}
		})
	}
}

func TestAnalyzeEngagementTiers(t *testing.T) {
	a := New(rules.Default())

	long := "I would like to understand what my options are here."
	tests := []struct {
		name string
		msgs []string
		want string
	}{
		{"high on many long messages", []string{long, long, long, long, long}, "high"},
		{"medium on count alone", []string{"hi", "ok", "yes"}, "medium"},
		{"medium on length alone", []string{long}, "medium"},
		{"low on brief exchange", []string{"hi", "ok"}, "low"},
		{"low on empty transcript", nil, "low"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Analyze(userMessages(tt.msgs...))
			if got.Engagement != tt.want {
				t.Errorf("Engagement = %q, want %q", got.Engagement, tt.want)
			}
		})
	}
}

func TestAnalyzeIntent(t *testing.T) {
	a := New(rules.Default())

	t.Run("default intent", func(t *testing.T) {
		got := a.Analyze(userMessages("Hello there"))
		if got.PrimaryIntent != "general_inquiry" {
			t.Errorf("PrimaryIntent = %q, want general_inquiry", got.PrimaryIntent)
		}
		if len(got.SubIntents) != 0 {
			t.Errorf("SubIntents = %v, want none", got.SubIntents)
		}
	})

	t.Run("selling primary", func(t *testing.T) {
		got := a.Analyze(userMessages("I want to sell my house, thinking of selling this spring."))
		if got.PrimaryIntent != "sell_property" {
			t.Errorf("PrimaryIntent = %q, want sell_property", got.PrimaryIntent)
		}
	})

	t.Run("strong secondary intent surfaces", func(t *testing.T) {
		got := a.Analyze(userMessages(
			"I want to sell my condo, I'm thinking of selling and want to list my place.",
			"What is my home worth? I'd also like a valuation and maybe an appraisal.",
		))
		if got.PrimaryIntent != "sell_property" && got.PrimaryIntent != "get_valuation" {
			t.Fatalf("PrimaryIntent = %q, want a matched category", got.PrimaryIntent)
		}
		if len(got.SubIntents) == 0 {
			t.Fatal("SubIntents empty, want the secondary intent above 25")
		}
		for _, si := range got.SubIntents {
			if si.Confidence <= 25 {
				t.Errorf("SubIntent %q confidence = %v, want > 25", si.Intent, si.Confidence)
			}
		}
	})

	t.Run("urgency flag", func(t *testing.T) {
		got := a.Analyze(userMessages("We need to move asap."))
		if got.Urgency != "high" {
			t.Errorf("Urgency = %q, want high", got.Urgency)
		}
	})
}

func TestAnalyzeTopics(t *testing.T) {
	a := New(rules.Default())

	got := a.Analyze(userMessages(
		"What do homes cost in that area? The price matters a lot.",
		"Also curious about the school district and which schools are nearby.",
	))

	if len(got.Topics) == 0 {
		t.Fatal("Topics empty, want matched categories")
	}
	if len(got.Topics) > 5 {
		t.Errorf("Topics = %v, want at most five", got.Topics)
	}

	hasFocus := func(name string) bool {
		for _, f := range got.FocusAreas {
			if f == name {
				return true
			}
		}
		return false
	}
	// "price" and "cost" both hit pricing; "school"/"schools"/"district" hit schools.
	if !hasFocus("pricing") {
		t.Errorf("FocusAreas = %v, want pricing", got.FocusAreas)
	}
	if !hasFocus("schools") {
		t.Errorf("FocusAreas = %v, want schools", got.FocusAreas)
	}
}

func TestAnalyzeIgnoresAssistantMessages(t *testing.T) {
	a := New(rules.Default())

	got := a.Analyze([]domain.Message{
		{Text: "Would you like to sell my house? Great, perfect!", Speaker: domain.SpeakerAssistant},
		{Text: "hm", Speaker: domain.SpeakerUser},
	})
	if got.PrimaryIntent != "general_inquiry" {
		t.Errorf("PrimaryIntent = %q: assistant text must not classify", got.PrimaryIntent)
	}
	if got.Sentiment != "neutral" {
		t.Errorf("Sentiment = %q: assistant text must not classify", got.Sentiment)
	}
}
