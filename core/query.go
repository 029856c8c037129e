package core

import (
	"github.com/lightningnetwork/lnd/kvdb"

	"github.com/perunnetwork/cosmwasm-adjudicator/adjerrors"
	"github.com/perunnetwork/cosmwasm-adjudicator/channel"
	"github.com/perunnetwork/cosmwasm-adjudicator/store"
)

// QueryDeposit returns the current deposit balance under fundingID.
//
// Read misses surface as UnknownChannel rather than UnknownDeposit: the
// RPC layer has no independent notion of "channel" versus "funding slot"
// at this call, and the host contract this is modeled on reports the
// same way (spec.md §4.6, §9).
func (a *Adjudicator) QueryDeposit(fundingID channel.ID) (channel.NativeBalance, error) {
	var balance channel.NativeBalance

	err := a.db.View(func(tx kvdb.RTx) error {
		b, err := a.db.GetDeposit(tx, fundingID)
		switch err {
		case store.ErrDepositNotFound:
			return adjerrors.ErrUnknownChannel
		case nil:
			balance = b
			return nil
		default:
			return adjerrors.Internal(err)
		}
	}, func() {})
	if err != nil {
		return channel.NativeBalance{}, err
	}
	return balance, nil
}

// QueryDispute returns the currently-registered dispute for channelID.
func (a *Adjudicator) QueryDispute(channelID channel.ID) (channel.Dispute, error) {
	var dispute channel.Dispute

	err := a.db.View(func(tx kvdb.RTx) error {
		d, err := a.db.GetDispute(tx, channelID)
		switch err {
		case store.ErrDisputeNotFound:
			return adjerrors.ErrUnknownDispute
		case nil:
			dispute = d
			return nil
		default:
			return adjerrors.Internal(err)
		}
	}, func() {})
	if err != nil {
		return channel.Dispute{}, err
	}
	return dispute, nil
}
