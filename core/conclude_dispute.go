package core

import (
	"github.com/lightningnetwork/lnd/kvdb"

	"github.com/perunnetwork/cosmwasm-adjudicator/adjerrors"
	"github.com/perunnetwork/cosmwasm-adjudicator/channel"
	"github.com/perunnetwork/cosmwasm-adjudicator/clockshim"
	"github.com/perunnetwork/cosmwasm-adjudicator/store"
)

// ConcludeDispute settles a channel from its currently-registered dispute,
// once that dispute's state is finalized or its timeout has passed
// (spec.md §4.5.4).
//
//   - UnknownDispute if DISPUTES[channelID] is absent.
//   - AlreadyConcluded if it is already concluded.
//   - ConcludedTooEarly if the stored state is not finalized and
//     now < timeout. The comparison at conclusion is `now >= timeout`
//     (spec.md §9: the strict form would leave an inaccessible instant).
func (a *Adjudicator) ConcludeDispute(params channel.Params) error {
	channelID, err := channel.ChannelID(params)
	if err != nil {
		return adjerrors.Internal(err)
	}

	now := clockshim.UnixSeconds(a.clock.Now())
	var version uint64

	err = a.db.Update(func(tx kvdb.RwTx) error {
		dispute, err := a.db.GetDispute(tx, channelID)
		switch err {
		case store.ErrDisputeNotFound:
			return adjerrors.ErrUnknownDispute
		case nil:
		default:
			return adjerrors.Internal(err)
		}

		if dispute.Concluded {
			return adjerrors.ErrAlreadyConcluded
		}
		if !dispute.State.Finalized && now < dispute.Timeout {
			return adjerrors.ErrConcludedTooEarly
		}

		if err := a.pushOutcome(
			tx, channelID, params.Participants, dispute.State.Balances,
		); err != nil {
			return err
		}

		version = dispute.State.Version
		dispute.Concluded = true
		dispute.Timeout = 0
		return a.db.PutDispute(tx, channelID, dispute)
	}, func() {})
	if err != nil {
		return err
	}

	a.publish(ConcludedEvent{ChannelID: channelID, Version: version})
	return nil
}
