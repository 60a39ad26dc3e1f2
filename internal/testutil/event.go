package testutil

import (
	"context"
	"sync"

	"github.com/shopcore/backend/internal/domain/shared"
)

// RecordingPublisher is an EventPublisher that keeps every published event
type RecordingPublisher struct {
	mu     sync.Mutex
	events []shared.DomainEvent
}

// NewRecordingPublisher creates an empty publisher
func NewRecordingPublisher() *RecordingPublisher {
	return &RecordingPublisher{}
}

func (p *RecordingPublisher) Publish(_ context.Context, events ...shared.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, events...)
	return nil
}

// Events returns a copy of the published events
func (p *RecordingPublisher) Events() []shared.DomainEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]shared.DomainEvent, len(p.events))
	copy(out, p.events)
	return out
}

// EventTypes returns the type of every published event, in order
func (p *RecordingPublisher) EventTypes() []string {
	events := p.Events()
	types := make([]string, len(events))
	for i, ev := range events {
		types[i] = ev.EventType()
	}
	return types
}

// Reset forgets every recorded event
func (p *RecordingPublisher) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = nil
}

var _ shared.EventPublisher = (*RecordingPublisher)(nil)
