package mocks

import (
	"hotel/infras/otel"
	"sync"
)

// Scope records what was traced on it so tests can inspect spans.
type Scope struct {
	mu         sync.Mutex
	Ended      bool
	Events     []string
	Errors     []error
	Attributes map[string]any
}

func (s *Scope) AddEvent(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Events = append(s.Events, name)
}

func (s *Scope) End() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Ended = true
}

func (s *Scope) SetAttribute(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Attributes == nil {
		s.Attributes = make(map[string]any)
	}

	s.Attributes[key] = value
}

func (s *Scope) SetAttributes(attributes map[string]any) {
	for key, value := range attributes {
		s.SetAttribute(key, value)
	}
}

func (s *Scope) TraceError(err error) {
	if err == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.Errors = append(s.Errors, err)
}

func (s *Scope) TraceIfError(err error) {
	s.TraceError(err)
}

func NewScope() otel.Scope {
	return &Scope{}
}
