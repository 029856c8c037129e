package store

import (
	"path/filepath"
	"testing"

	"github.com/lightningnetwork/lnd/kvdb"
	"github.com/stretchr/testify/require"

	"github.com/perunnetwork/cosmwasm-adjudicator/channel"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), dbFileName))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, db.Close()) })
	return db
}

func TestOpenCreatesBuckets(t *testing.T) {
	db := openTestDB(t)

	err := db.View(func(tx kvdb.RTx) error {
		require.NotNil(t, tx.ReadBucket(depositsBucket))
		require.NotNil(t, tx.ReadBucket(disputesBucket))
		return nil
	}, func() {})
	require.NoError(t, err)
}

func TestDepositRoundTrip(t *testing.T) {
	db := openTestDB(t)

	var fundingID channel.ID
	fundingID[0] = 0x01
	balance, err := channel.NewNativeBalance(
		channel.Coin{Denom: "uperun", Amount: channel.NewUint128FromUint64(500)},
	)
	require.NoError(t, err)

	err = db.Update(func(tx kvdb.RwTx) error {
		return db.PutDeposit(tx, fundingID, balance)
	}, func() {})
	require.NoError(t, err)

	err = db.View(func(tx kvdb.RTx) error {
		got, err := db.GetDeposit(tx, fundingID)
		require.NoError(t, err)
		require.True(t, balance.Equal(got))
		return nil
	}, func() {})
	require.NoError(t, err)
}

func TestGetDepositNotFound(t *testing.T) {
	db := openTestDB(t)

	var fundingID channel.ID
	err := db.View(func(tx kvdb.RTx) error {
		_, err := db.GetDeposit(tx, fundingID)
		return err
	}, func() {})
	require.ErrorIs(t, err, ErrDepositNotFound)
}

func TestDeleteDeposit(t *testing.T) {
	db := openTestDB(t)

	var fundingID channel.ID
	fundingID[0] = 0x02
	balance, err := channel.NewNativeBalance(
		channel.Coin{Denom: "atom", Amount: channel.NewUint128FromUint64(10)},
	)
	require.NoError(t, err)

	err = db.Update(func(tx kvdb.RwTx) error {
		return db.PutDeposit(tx, fundingID, balance)
	}, func() {})
	require.NoError(t, err)

	err = db.Update(func(tx kvdb.RwTx) error {
		return db.DeleteDeposit(tx, fundingID)
	}, func() {})
	require.NoError(t, err)

	err = db.View(func(tx kvdb.RTx) error {
		_, err := db.GetDeposit(tx, fundingID)
		return err
	}, func() {})
	require.ErrorIs(t, err, ErrDepositNotFound)
}

func TestDisputeRoundTrip(t *testing.T) {
	db := openTestDB(t)

	var channelID channel.ID
	channelID[0] = 0x03
	dispute := channel.Dispute{
		State:   channel.State{Version: 1},
		Timeout: 100,
	}

	err := db.Update(func(tx kvdb.RwTx) error {
		return db.PutDispute(tx, channelID, dispute)
	}, func() {})
	require.NoError(t, err)

	err = db.View(func(tx kvdb.RTx) error {
		got, err := db.GetDispute(tx, channelID)
		require.NoError(t, err)
		require.Equal(t, dispute.Timeout, got.Timeout)
		require.Equal(t, dispute.State.Version, got.State.Version)
		require.False(t, got.Concluded)
		return nil
	}, func() {})
	require.NoError(t, err)
}

func TestGetDisputeNotFound(t *testing.T) {
	db := openTestDB(t)

	var channelID channel.ID
	err := db.View(func(tx kvdb.RTx) error {
		_, err := db.GetDispute(tx, channelID)
		return err
	}, func() {})
	require.ErrorIs(t, err, ErrDisputeNotFound)
}

func TestWipe(t *testing.T) {
	db := openTestDB(t)

	var fundingID channel.ID
	fundingID[0] = 0x04
	balance, err := channel.NewNativeBalance(
		channel.Coin{Denom: "uperun", Amount: channel.NewUint128FromUint64(1)},
	)
	require.NoError(t, err)

	err = db.Update(func(tx kvdb.RwTx) error {
		return db.PutDeposit(tx, fundingID, balance)
	}, func() {})
	require.NoError(t, err)

	require.NoError(t, db.Wipe())

	err = db.View(func(tx kvdb.RTx) error {
		_, err := db.GetDeposit(tx, fundingID)
		return err
	}, func() {})
	require.ErrorIs(t, err, ErrDepositNotFound)
}
