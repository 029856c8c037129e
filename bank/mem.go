package bank

import (
	"context"
	"sync"
)

// MemSink is an in-memory Sink used by core's tests and by adjudicatord
// when no bank.endpoint is configured. It never fails, matching the
// happy-path fixtures in spec.md §8.
type MemSink struct {
	mu        sync.Mutex
	transfers []Transfer
}

// NewMemSink returns an empty in-memory sink.
func NewMemSink() *MemSink {
	return &MemSink{}
}

// Send records the transfer and always succeeds.
func (m *MemSink) Send(_ context.Context, t Transfer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transfers = append(m.transfers, t)
	return nil
}

// Transfers returns a snapshot of every transfer sent so far, in order.
func (m *MemSink) Transfers() []Transfer {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Transfer, len(m.transfers))
	copy(out, m.transfers)
	return out
}
