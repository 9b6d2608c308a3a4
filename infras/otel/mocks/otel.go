package mocks

import (
	"context"
	"hotel/infras/otel"
	"sync"
)

// Otel hands out recording scopes keyed by span name.
type Otel struct {
	mu     sync.Mutex
	scopes map[string]*Scope
}

func (o *Otel) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	o.mu.Lock()
	defer o.mu.Unlock()

	scope := &Scope{}
	o.scopes[spanName] = scope

	return ctx, scope
}

// Scope returns the latest scope opened under spanName, or nil.
func (o *Otel) Scope(spanName string) *Scope {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.scopes[spanName]
}

func (o *Otel) Shutdown(_ context.Context) error {
	return nil
}

func NewOtel() otel.Otel {
	return NewRecorder()
}

func NewRecorder() *Otel {
	return &Otel{scopes: make(map[string]*Scope)}
}
