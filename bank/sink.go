// Package bank provides the adjudicator's one outbound effect: paying out a
// withdrawal. The Cosmos SDK x/bank module that originally performed this
// transfer lives outside this repository (spec.md §1, out of scope); Sink
// is the capability interface the core calls into instead, grounded on the
// teacher's pattern of injecting external chain capabilities as small
// interfaces (lnwallet.BlockChainIO), per spec.md §9's note that the
// trait-based verifier abstraction should become "a simple
// function-pointer-style capability".
package bank

import (
	"context"

	"github.com/perunnetwork/cosmwasm-adjudicator/channel"
)

// Transfer is the instruction the core emits from a successful Withdraw:
// pay balance to receiver. It carries no channel context. It is sent from
// inside the store transaction that removes the corresponding deposit, so
// a failed transfer rolls that removal back.
type Transfer struct {
	Receiver string
	Balance  channel.NativeBalance
}

// Sink is the collaborator that actually moves funds. Implementations must
// be synchronous and must return an error if and only if no funds moved, so
// that the caller can safely roll back the store transaction around it.
type Sink interface {
	Send(ctx context.Context, t Transfer) error
}
