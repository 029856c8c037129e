package core

import (
	"context"

	"github.com/lightningnetwork/lnd/kvdb"

	"github.com/perunnetwork/cosmwasm-adjudicator/adjerrors"
	"github.com/perunnetwork/cosmwasm-adjudicator/bank"
	"github.com/perunnetwork/cosmwasm-adjudicator/channel"
	"github.com/perunnetwork/cosmwasm-adjudicator/store"
)

// Withdraw pays out a participant's settled deposit (spec.md §4.5.5).
//
// Preconditions:
//  1. sig must verify against withdrawal under withdrawal.Part
//     (InvalidSignature / WrongSignature).
//  2. DISPUTES[withdrawal.ChannelID] must exist and be concluded
//     (UnknownChannel if absent, NotConcluded if active).
//  3. DEPOSITS[fundingID] must exist (UnknownDeposit).
//
// The deposit is deleted and the bank transfer issued inside the same
// store transaction: a failing transfer rolls back the deletion along
// with it, so a participant can always retry a failed withdrawal.
func (a *Adjudicator) Withdraw(ctx context.Context, withdrawal channel.Withdrawal, sig []byte) error {
	if err := channel.Verify(withdrawal, withdrawal.Part, sig); err != nil {
		return err
	}

	fundingID, err := channel.FundingID(withdrawal.ChannelID, withdrawal.Part)
	if err != nil {
		return adjerrors.Internal(err)
	}

	var paid channel.NativeBalance

	err = a.db.Update(func(tx kvdb.RwTx) error {
		dispute, err := a.db.GetDispute(tx, withdrawal.ChannelID)
		switch err {
		case store.ErrDisputeNotFound:
			return adjerrors.ErrUnknownChannel
		case nil:
		default:
			return adjerrors.Internal(err)
		}
		if !dispute.Concluded {
			return adjerrors.ErrNotConcluded
		}

		deposit, err := a.db.GetDeposit(tx, fundingID)
		switch err {
		case store.ErrDepositNotFound:
			return adjerrors.ErrUnknownDeposit
		case nil:
		default:
			return adjerrors.Internal(err)
		}

		if err := a.bank.Send(ctx, bank.Transfer{
			Receiver: withdrawal.Receiver,
			Balance:  deposit,
		}); err != nil {
			return adjerrors.Internal(err)
		}

		paid = deposit
		return a.db.DeleteDeposit(tx, fundingID)
	}, func() {})
	if err != nil {
		return err
	}

	a.publish(WithdrawnEvent{
		ChannelID: withdrawal.ChannelID,
		Part:      withdrawal.Part,
		Receiver:  withdrawal.Receiver,
		Balance:   paid,
	})
	return nil
}
