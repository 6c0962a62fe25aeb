package domain

import "time"

// Speaker identifies who authored a transcript message.
type Speaker string

const (
	SpeakerUser      Speaker = "user"
	SpeakerAssistant Speaker = "assistant"
)

// Message is a single conversation turn. Insertion order is significant:
// recency and message counts are derived from transcript position.
type Message struct {
	Text    string    `json:"text"`
	Speaker Speaker   `json:"speaker"`
	At      time.Time `json:"at"`
}

// Stage is the conversation's position in the field-collection sequence.
type Stage string

const (
	StageGreeting               Stage = "greeting"
	StageCollectingName         Stage = "collecting_name"
	StageCollectingEmail        Stage = "collecting_email"
	StageCollectingPhone        Stage = "collecting_phone"
	StageDeterminingType        Stage = "determining_type"
	StageCollectingPropertyInfo Stage = "collecting_property_info"
	StageComplete               Stage = "complete"
)

// Session is one conversation instance. It exclusively owns its transcript
// and record; everything else on it is recomputed per turn.
type Session struct {
	ID         string     `json:"session_id"`
	Transcript []Message  `json:"transcript"`
	Record     UserRecord `json:"record"`

	Stage           Stage    `json:"stage"`
	CompletedFields []string `json:"completed_fields"`
	CompletionRate  float64  `json:"completion_rate"`

	Validation     *ValidationResult `json:"validation,omitempty"`
	DuplicateCheck *DuplicateCheck   `json:"duplicate_check,omitempty"`
	SpamCheck      *SpamCheck        `json:"spam_check,omitempty"`
	Score          *LeadScore        `json:"score,omitempty"`
	Intelligence   *Intelligence     `json:"intelligence,omitempty"`

	ConversationComplete bool `json:"conversation_complete"`
	Notified             bool `json:"notified"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserMessages returns the user-authored transcript texts in order.
func (s *Session) UserMessages() []string {
	var out []string
	for _, m := range s.Transcript {
		if m.Speaker == SpeakerUser {
			out = append(out, m.Text)
		}
	}
	return out
}

// Append adds a message to the transcript and bumps UpdatedAt.
func (s *Session) Append(text string, speaker Speaker, at time.Time) {
	s.Transcript = append(s.Transcript, Message{Text: text, Speaker: speaker, At: at})
	s.UpdatedAt = at
}
