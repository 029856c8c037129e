package core

import (
	"github.com/lightningnetwork/lnd/kvdb"

	"github.com/perunnetwork/cosmwasm-adjudicator/adjerrors"
	"github.com/perunnetwork/cosmwasm-adjudicator/channel"
	"github.com/perunnetwork/cosmwasm-adjudicator/store"
)

// Deposit records that the host has moved `attached` into adjudicator
// custody on behalf of fundingID (spec.md §4.5.1):
//
//	DEPOSITS[fundingID] <- DEPOSITS[fundingID] + attached
//
// No signature is required — any sender may deposit for any funding ID.
// Depositing under the wrong funding ID is a documented, unrecoverable
// hazard (spec.md §4.5.1, §9), not an error this function can detect.
func (a *Adjudicator) Deposit(fundingID channel.ID, attached channel.NativeBalance) error {
	var result channel.NativeBalance

	err := a.db.Update(func(tx kvdb.RwTx) error {
		cur, err := a.db.GetDeposit(tx, fundingID)
		if err != nil {
			if err != store.ErrDepositNotFound {
				return adjerrors.Internal(err)
			}
			cur = channel.NativeBalance{}
		}

		sum, err := cur.Add(attached)
		if err != nil {
			return adjerrors.Internal(err)
		}
		result = sum

		if err := a.db.PutDeposit(tx, fundingID, sum); err != nil {
			return adjerrors.Internal(err)
		}
		return nil
	}, func() {})
	if err != nil {
		return err
	}

	a.publish(DepositEvent{FundingID: fundingID, Balance: result})
	return nil
}
