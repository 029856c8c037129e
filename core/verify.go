package core

import (
	"github.com/perunnetwork/cosmwasm-adjudicator/adjerrors"
	"github.com/perunnetwork/cosmwasm-adjudicator/channel"
)

// verifyFullySignedState runs the shared Dispute/Conclude precondition
// checks of spec.md §4.5.2 (2-4), reused verbatim by Conclude (§4.5.3: "All
// signatures verify fully as in Dispute §4.5.2"):
//
//  1. state.ChannelID must equal channel.ChannelID(params).
//  2. len(sigs) must be > 0 and equal len(params.Participants).
//  3. Every sigs[i] must verify against params.Participants[i] over state.
func verifyFullySignedState(params channel.Params, state channel.State, sigs [][]byte) error {
	wantID, err := channel.ChannelID(params)
	if err != nil {
		return adjerrors.Internal(err)
	}
	if state.ChannelID != wantID {
		return adjerrors.ErrWrongChannelId
	}

	if len(sigs) == 0 {
		return adjerrors.ErrInvalidSignatureNum
	}
	if len(sigs) != len(params.Participants) {
		return adjerrors.ErrWrongSignatureNum
	}

	for i, part := range params.Participants {
		if err := channel.Verify(state, part, sigs[i]); err != nil {
			return err
		}
	}
	return nil
}
