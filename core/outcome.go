package core

import (
	"github.com/lightningnetwork/lnd/kvdb"

	"github.com/perunnetwork/cosmwasm-adjudicator/adjerrors"
	"github.com/perunnetwork/cosmwasm-adjudicator/channel"
	"github.com/perunnetwork/cosmwasm-adjudicator/store"
)

// pushOutcome is the internal §4.5.6 routine shared by Conclude and
// ConcludeDispute. Given a channel's participants and its final
// per-participant balances, it checks that total deposits cover the
// outcome denom-by-denom and then overwrites each participant's deposit
// slot with their share. Over-funding is never refunded: the excess is
// simply not carried into the new deposit entries (spec.md §4.5.6, §9).
func (a *Adjudicator) pushOutcome(
	tx kvdb.RwTx,
	channelID channel.ID,
	participants []channel.PubKey,
	outcome []channel.NativeBalance,
) error {
	if len(participants) == 0 || len(participants) != len(outcome) {
		return adjerrors.ErrInvalidOutcome
	}

	fundingIDs := make([]channel.ID, len(participants))
	sumOutcome := channel.NativeBalance{}
	sumDeposit := channel.NativeBalance{}

	for i, part := range participants {
		fid, err := channel.FundingID(channelID, part)
		if err != nil {
			return adjerrors.Internal(err)
		}
		fundingIDs[i] = fid

		var err2 error
		sumOutcome, err2 = sumOutcome.Add(outcome[i])
		if err2 != nil {
			return adjerrors.Internal(err2)
		}

		deposit, err := a.db.GetDeposit(tx, fid)
		if err != nil {
			if err != store.ErrDepositNotFound {
				return adjerrors.Internal(err)
			}
			deposit = channel.NativeBalance{}
		}
		sumDeposit, err2 = sumDeposit.Add(deposit)
		if err2 != nil {
			return adjerrors.Internal(err2)
		}
	}

	if !sumDeposit.GreaterOrEqual(sumOutcome) {
		return adjerrors.ErrInsufficientDeposits
	}

	for i, fid := range fundingIDs {
		if err := a.db.PutDeposit(tx, fid, outcome[i]); err != nil {
			return adjerrors.Internal(err)
		}
	}
	return nil
}
