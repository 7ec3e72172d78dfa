package relay

import (
	"context"
	"sync"
	"time"
)

// Topic names for cross-module completion signaling. One topic per
// signal; payloads follow the Signal schema.
const (
	TopicWelfareCompleted = "welfare.completed"
	TopicLPOApproved      = "inventory.lpo.approved"
	TopicHRDisbursement   = "hr.disbursement"
	TopicEventSettled     = "events.expense.settled"
)

// Signal is the payload published on a cross-module topic so the
// originating module can update its own record state.
type Signal struct {
	Topic         string    `json:"topic"`
	TransactionID int64     `json:"transaction_id"`
	ModuleRef     string    `json:"module_ref,omitempty"`
	Amount        int64     `json:"amount"`
	Status        string    `json:"status"`
	Actor         string    `json:"actor"`
	Timestamp     time.Time `json:"timestamp"`
}

// Broadcaster carries signals between modules. Publish failures are the
// caller's to log; the approval that produced the signal is never rolled
// back.
type Broadcaster interface {
	Publish(ctx context.Context, s Signal) error
	Close() error
}

// InProcessBroadcaster delivers signals synchronously to handlers in the
// same process. It is the default when no Redis URL is configured.
type InProcessBroadcaster struct {
	mu       sync.RWMutex
	handlers map[string][]func(Signal)
}

func NewInProcessBroadcaster() *InProcessBroadcaster {
	return &InProcessBroadcaster{handlers: make(map[string][]func(Signal))}
}

func (b *InProcessBroadcaster) Subscribe(topic string, fn func(Signal)) {
	b.mu.Lock()
	b.handlers[topic] = append(b.handlers[topic], fn)
	b.mu.Unlock()
}

func (b *InProcessBroadcaster) Publish(_ context.Context, s Signal) error {
	b.mu.RLock()
	subs := append(([]func(Signal))(nil), b.handlers[s.Topic]...)
	b.mu.RUnlock()
	for _, fn := range subs {
		fn(s)
	}
	return nil
}

func (b *InProcessBroadcaster) Close() error { return nil }
