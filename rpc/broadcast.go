package rpc

import (
	"sync"

	"github.com/perunnetwork/cosmwasm-adjudicator/core"
)

// broadcaster fans out core's domain events to every active
// SubscribeEvents stream, implementing core.EventPublisher. Grounded on
// the teacher's subscribeChannelEvents pattern (rpcserver.go): one
// publisher feeds N independently-buffered, drop-on-full subscriber
// channels so a slow RPC client can never back-pressure the adjudicator.
type broadcaster struct {
	mu   sync.Mutex
	subs map[chan core.Event]struct{}
}

func newBroadcaster() *broadcaster {
	return &broadcaster{subs: make(map[chan core.Event]struct{})}
}

// Publish implements core.EventPublisher.
func (b *broadcaster) Publish(evt core.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subs {
		select {
		case ch <- evt:
		default:
		}
	}
}

func (b *broadcaster) subscribe(buffer int) chan core.Event {
	ch := make(chan core.Event, buffer)
	b.mu.Lock()
	b.subs[ch] = struct{}{}
	b.mu.Unlock()
	return ch
}

func (b *broadcaster) unsubscribe(ch chan core.Event) {
	b.mu.Lock()
	delete(b.subs, ch)
	b.mu.Unlock()
	close(ch)
}
