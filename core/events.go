package core

import "github.com/perunnetwork/cosmwasm-adjudicator/channel"

// Event is the common interface of every domain event a successful
// operation may emit, surfaced over rpc's SubscribeEvents in production and
// collected directly in tests.
type Event interface {
	isEvent()
}

// DepositEvent is published after a successful Deposit.
type DepositEvent struct {
	FundingID channel.ID
	Balance   channel.NativeBalance
}

// DisputeEvent is published after a successful Dispute (new or updated).
type DisputeEvent struct {
	ChannelID channel.ID
	Version   uint64
	Timeout   uint64
}

// ConcludedEvent is published after Conclude or ConcludeDispute.
type ConcludedEvent struct {
	ChannelID channel.ID
	Version   uint64
}

// WithdrawnEvent is published after a successful Withdraw.
type WithdrawnEvent struct {
	ChannelID channel.ID
	Part      channel.PubKey
	Receiver  string
	Balance   channel.NativeBalance
}

func (DepositEvent) isEvent()   {}
func (DisputeEvent) isEvent()   {}
func (ConcludedEvent) isEvent() {}
func (WithdrawnEvent) isEvent() {}

// EventPublisher receives domain events. Implementations must not block
// significantly — they run on the hot path of every operation.
type EventPublisher interface {
	Publish(Event)
}

// NoopPublisher discards every event; the default when no publisher is
// configured.
type NoopPublisher struct{}

// Publish discards evt.
func (NoopPublisher) Publish(Event) {}

// ChanPublisher delivers events over a single buffered channel. When the
// buffer is full, events are dropped rather than blocking the adjudicator.
// (rpc's SubscribeEvents uses its own broadcaster, not this type.)
type ChanPublisher struct {
	ch chan Event
}

// NewChanPublisher returns a ChanPublisher with the given buffer size.
func NewChanPublisher(buffer int) *ChanPublisher {
	return &ChanPublisher{ch: make(chan Event, buffer)}
}

// Publish enqueues evt, dropping it if the buffer is full.
func (p *ChanPublisher) Publish(evt Event) {
	select {
	case p.ch <- evt:
	default:
	}
}

// Events returns the receive side of the event stream.
func (p *ChanPublisher) Events() <-chan Event {
	return p.ch
}
