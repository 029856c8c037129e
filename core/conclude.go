package core

import (
	"github.com/lightningnetwork/lnd/kvdb"

	"github.com/perunnetwork/cosmwasm-adjudicator/adjerrors"
	"github.com/perunnetwork/cosmwasm-adjudicator/channel"
	"github.com/perunnetwork/cosmwasm-adjudicator/store"
)

// Conclude settles a channel directly from a finalized, fully-signed state,
// skipping the dispute timeout entirely (spec.md §4.5.3).
//
// Preconditions:
//  1. state.Finalized must be true (StateNotFinal otherwise).
//  2. Signatures verify exactly as in Dispute §4.5.2.
//  3. DISPUTES[state.ChannelID] must be absent: AlreadyConcluded if already
//     concluded, DisputeActive if an active dispute exists.
func (a *Adjudicator) Conclude(params channel.Params, state channel.State, sigs [][]byte) error {
	if !state.Finalized {
		return adjerrors.ErrStateNotFinal
	}
	if err := verifyFullySignedState(params, state, sigs); err != nil {
		return err
	}

	channelID := state.ChannelID

	err := a.db.Update(func(tx kvdb.RwTx) error {
		existing, err := a.db.GetDispute(tx, channelID)
		switch err {
		case nil:
			if existing.Concluded {
				return adjerrors.ErrAlreadyConcluded
			}
			return adjerrors.ErrDisputeActive
		case store.ErrDisputeNotFound:
			// expected path: no prior dispute record.
		default:
			return adjerrors.Internal(err)
		}

		if err := a.pushOutcome(tx, channelID, params.Participants, state.Balances); err != nil {
			return err
		}

		return a.db.PutDispute(tx, channelID, channel.Dispute{
			State:     state,
			Timeout:   0,
			Concluded: true,
		})
	}, func() {})
	if err != nil {
		return err
	}

	a.publish(ConcludedEvent{ChannelID: channelID, Version: state.Version})
	return nil
}
