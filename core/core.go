// Package core implements the adjudicator state machine of spec.md §4.5:
// Deposit, Dispute, Conclude, ConcludeDispute and Withdraw, plus the
// read-only Query operations of §4.6. It is the on-chain trust root;
// everything else in this repository (rpc, cmd) is a thin shell around it.
//
// Structurally this package is grounded on contractcourt's one-type-per-
// concern resolver pattern and channeldb's bucket-scoped transactions: each
// operation opens exactly one store transaction, never retains state
// between calls, and never spawns a goroutine (spec.md §5).
package core

import (
	"github.com/perunnetwork/cosmwasm-adjudicator/bank"
	"github.com/perunnetwork/cosmwasm-adjudicator/clockshim"
	"github.com/perunnetwork/cosmwasm-adjudicator/store"
)

// Adjudicator holds the adjudicator's three external collaborators (spec.md
// §1): the persistent store, the block-time oracle, and the bank transfer
// sink, plus an optional EventPublisher. It carries no other state — there
// is nothing to initialize across calls (spec.md §5: "no internal
// concurrency... no timers, no background tasks").
type Adjudicator struct {
	db     *store.DB
	clock  clockshim.TimeSource
	bank   bank.Sink
	events EventPublisher
}

// Option configures an Adjudicator at construction time.
type Option func(*Adjudicator)

// WithEventPublisher attaches an EventPublisher that receives a copy of
// every domain event emitted by a successful operation (SPEC_FULL.md §4.5,
// supplemented from original_source/src/contract.rs's Response events).
// Losing this stream never desyncs DEPOSITS/DISPUTES: it's an
// observability add-on, not part of the core invariants.
func WithEventPublisher(p EventPublisher) Option {
	return func(a *Adjudicator) { a.events = p }
}

// New constructs an Adjudicator over the given store, clock and bank sink.
func New(db *store.DB, clock clockshim.TimeSource, sink bank.Sink, opts ...Option) *Adjudicator {
	a := &Adjudicator{
		db:     db,
		clock:  clock,
		bank:   sink,
		events: NoopPublisher{},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Adjudicator) publish(evt Event) {
	if a.events != nil {
		a.events.Publish(evt)
	}
}
