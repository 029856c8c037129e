package core

import (
	"github.com/lightningnetwork/lnd/kvdb"

	"github.com/perunnetwork/cosmwasm-adjudicator/adjerrors"
	"github.com/perunnetwork/cosmwasm-adjudicator/channel"
	"github.com/perunnetwork/cosmwasm-adjudicator/clockshim"
	"github.com/perunnetwork/cosmwasm-adjudicator/store"
)

// Dispute registers or updates a contested channel state (spec.md §4.5.2).
//
// Preconditions, in order:
//  1. state.Finalized must be false (StateFinal).
//  2. state.ChannelID must equal channel.ChannelID(params) (WrongChannelId).
//  3. len(sigs) > 0 (InvalidSignatureNum) and len(sigs) == len(participants)
//     (WrongSignatureNum).
//  4. Every signature must verify (InvalidSignature / WrongSignature).
//
// Transition on DISPUTES[state.ChannelID]:
//   - absent: store {state, timeout: now+DisputeDuration, concluded: false}.
//   - active: replace state iff state.Version > stored.Version
//     (DisputeVersionTooLow otherwise) and now < stored.Timeout
//     (DisputeTimedOut otherwise). The timeout is sticky: it is never
//     refreshed by a later update (spec.md §9).
//   - concluded: AlreadyConcluded.
func (a *Adjudicator) Dispute(params channel.Params, state channel.State, sigs [][]byte) error {
	if state.Finalized {
		return adjerrors.ErrStateFinal
	}
	if err := verifyFullySignedState(params, state, sigs); err != nil {
		return err
	}

	now := clockshim.UnixSeconds(a.clock.Now())
	channelID := state.ChannelID

	var stored channel.Dispute

	err := a.db.Update(func(tx kvdb.RwTx) error {
		existing, err := a.db.GetDispute(tx, channelID)
		switch err {
		case store.ErrDisputeNotFound:
			stored = channel.Dispute{
				State:     state,
				Timeout:   now + params.DisputeDuration,
				Concluded: false,
			}
		case nil:
			if existing.Concluded {
				return adjerrors.ErrAlreadyConcluded
			}
			if state.Version <= existing.State.Version {
				return adjerrors.ErrDisputeVersionTooLow
			}
			if now >= existing.Timeout {
				return adjerrors.ErrDisputeTimedOut
			}
			stored = channel.Dispute{
				State:     state,
				Timeout:   existing.Timeout, // sticky: never refreshed
				Concluded: false,
			}
		default:
			return adjerrors.Internal(err)
		}

		return a.db.PutDispute(tx, channelID, stored)
	}, func() {})
	if err != nil {
		return err
	}

	a.publish(DisputeEvent{
		ChannelID: channelID,
		Version:   stored.State.Version,
		Timeout:   stored.Timeout,
	})
	return nil
}
