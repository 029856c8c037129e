package store

import (
	"github.com/lightningnetwork/lnd/kvdb"

	"github.com/perunnetwork/cosmwasm-adjudicator/channel"
)

// GetDispute reads DISPUTES[channelID]. ErrDisputeNotFound signals an
// absent record.
func (d *DB) GetDispute(tx kvdb.RTx, channelID channel.ID) (channel.Dispute, error) {
	bucket := tx.ReadBucket(disputesBucket)
	if bucket == nil {
		return channel.Dispute{}, ErrNotInitialized
	}
	raw := bucket.Get(channelID[:])
	if raw == nil {
		return channel.Dispute{}, ErrDisputeNotFound
	}
	var dp channel.Dispute
	if err := channel.Decode(raw, &dp); err != nil {
		return channel.Dispute{}, err
	}
	return dp, nil
}

// PutDispute overwrites DISPUTES[channelID] with dp.
func (d *DB) PutDispute(tx kvdb.RwTx, channelID channel.ID, dp channel.Dispute) error {
	bucket := tx.ReadWriteBucket(disputesBucket)
	if bucket == nil {
		return ErrNotInitialized
	}
	raw, err := channel.Encode(dp)
	if err != nil {
		return err
	}
	return bucket.Put(channelID[:], raw)
}
