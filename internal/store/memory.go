package store

import (
	"context"
	"sync"

	"github.com/listingone/leadgen/internal/domain"
)

// Memory is a process-local session table guarded by a RWMutex. Reads
// hand out deep copies so concurrent writers never expose partial
// records to the duplicate detector.
type Memory struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
}

func NewMemory() *Memory {
	return &Memory{sessions: make(map[string]*domain.Session)}
}

func (m *Memory) Get(_ context.Context, id string) (*domain.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return clone(s), nil
}

func (m *Memory) Put(_ context.Context, s *domain.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[s.ID] = clone(s)
	return nil
}

func (m *Memory) List(_ context.Context) ([]*domain.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*domain.Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		out = append(out, clone(s))
	}
	return out, nil
}

func (m *Memory) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(m.sessions, id)
	return nil
}

func clone(s *domain.Session) *domain.Session {
	c := *s
	c.Transcript = append([]domain.Message(nil), s.Transcript...)
	c.CompletedFields = append([]string(nil), s.CompletedFields...)
	if s.Validation != nil {
		v := *s.Validation
		v.Issues = append([]string(nil), s.Validation.Issues...)
		c.Validation = &v
	}
	if s.DuplicateCheck != nil {
		d := *s.DuplicateCheck
		d.Matches = append([]domain.DuplicateMatch(nil), s.DuplicateCheck.Matches...)
		c.DuplicateCheck = &d
	}
	if s.SpamCheck != nil {
		sp := *s.SpamCheck
		sp.Indicators = append([]string(nil), s.SpamCheck.Indicators...)
		c.SpamCheck = &sp
	}
	if s.Score != nil {
		sc := *s.Score
		sc.Recommendations = append([]string(nil), s.Score.Recommendations...)
		sc.Breakdown = make(map[string]float64, len(s.Score.Breakdown))
		for k, v := range s.Score.Breakdown {
			sc.Breakdown[k] = v
		}
		c.Score = &sc
	}
	if s.Intelligence != nil {
		in := *s.Intelligence
		in.SubIntents = append([]domain.IntentMatch(nil), s.Intelligence.SubIntents...)
		in.Topics = append([]string(nil), s.Intelligence.Topics...)
		in.FocusAreas = append([]string(nil), s.Intelligence.FocusAreas...)
		c.Intelligence = &in
	}
	return &c
}
