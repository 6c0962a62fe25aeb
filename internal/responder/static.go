package responder

import (
	"context"
	"strings"
)

// Static phrases replies from fixed per-stage templates. It is the
// default responder and the degradation path when no LLM is configured.
type Static struct{}

func NewStatic() *Static {
	return &Static{}
}

var stageQuestions = map[string]string{
	"greeting":                 "Hi! I'm the ListingOne assistant. I can help you buy or sell a home — what's your name?",
	"collecting_name":          "Great to meet you! Could I get your name?",
	"collecting_email":         "Thanks! What's the best email address to reach you at?",
	"collecting_phone":         "Got it. And a phone number where an agent can call or text you?",
	"determining_type":         "Perfect. Are you looking to buy a home, or sell one?",
	"collecting_property_info": "Thanks! Tell me a bit about the property — type, location, timeline, anything that helps.",
	"complete":                 "You're all set — one of our agents will reach out within 24 hours. Anything else I can note for them?",
}

func (s *Static) Reply(_ context.Context, promptContext, _ string) (string, error) {
	stage := contextValue(promptContext, "stage")
	if q, ok := stageQuestions[stage]; ok {
		name := contextValue(promptContext, "lead_name")
		if name != "" && stage != "collecting_name" && stage != "greeting" {
			return name + " — " + lowerFirst(q), nil
		}
		return q, nil
	}
	return FallbackReply, nil
}

// contextValue pulls one "key: value" line out of the rendered context.
func contextValue(promptContext, key string) string {
	for _, line := range strings.Split(promptContext, "\n") {
		if v, ok := strings.CutPrefix(line, key+": "); ok {
			return v
		}
	}
	return ""
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
