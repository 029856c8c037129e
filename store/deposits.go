package store

import (
	"github.com/lightningnetwork/lnd/kvdb"

	"github.com/perunnetwork/cosmwasm-adjudicator/channel"
)

// GetDeposit reads DEPOSITS[fundingID]. ErrDepositNotFound is returned for
// an absent entry — callers that want spec.md §4.5's "absent implies zero"
// semantics should check for this explicitly.
func (d *DB) GetDeposit(tx kvdb.RTx, fundingID channel.ID) (channel.NativeBalance, error) {
	bucket := tx.ReadBucket(depositsBucket)
	if bucket == nil {
		return channel.NativeBalance{}, ErrNotInitialized
	}
	raw := bucket.Get(fundingID[:])
	if raw == nil {
		return channel.NativeBalance{}, ErrDepositNotFound
	}
	var nb channel.NativeBalance
	if err := channel.Decode(raw, &nb); err != nil {
		return channel.NativeBalance{}, err
	}
	return nb, nil
}

// PutDeposit overwrites DEPOSITS[fundingID] with balance.
func (d *DB) PutDeposit(tx kvdb.RwTx, fundingID channel.ID, balance channel.NativeBalance) error {
	bucket := tx.ReadWriteBucket(depositsBucket)
	if bucket == nil {
		return ErrNotInitialized
	}
	raw, err := channel.Encode(balance)
	if err != nil {
		return err
	}
	return bucket.Put(fundingID[:], raw)
}

// DeleteDeposit removes DEPOSITS[fundingID], used by Withdraw once the
// balance has been paid out (spec.md §4.5.5).
func (d *DB) DeleteDeposit(tx kvdb.RwTx, fundingID channel.ID) error {
	bucket := tx.ReadWriteBucket(depositsBucket)
	if bucket == nil {
		return ErrNotInitialized
	}
	return bucket.Delete(fundingID[:])
}
