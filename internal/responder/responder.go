// Package responder phrases assistant replies. The engine hands it a
// rendered conversation context (stage, completed fields, next required
// field) and the latest user message; it returns the next thing the
// assistant should say. Replies never carry state — the engine owns that.
package responder

import "context"

// Responder is the reply-phrasing collaborator contract.
type Responder interface {
	Reply(ctx context.Context, promptContext, userMessage string) (string, error)
}

// FallbackReply is used when the configured responder fails; the turn
// itself still succeeds.
const FallbackReply = "Thanks! Could you tell me a bit more so I can point you to the right person?"
