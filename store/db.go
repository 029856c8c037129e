// Package store persists the adjudicator's two maps, DEPOSITS and DISPUTES
// (spec.md §3), in an embedded KV backend selected via
// github.com/lightningnetwork/lnd/kvdb. It is the spiritual successor of
// the teacher's channeldb: same bucket-per-collection layout, same
// Update/View transactional boundary, generalised from Lightning channel
// state to the adjudicator's deposit/dispute records.
package store

import (
	"fmt"
	"time"

	"github.com/lightningnetwork/lnd/kvdb"
)

const (
	dbFilePermission = 0600
	dbFileName       = "adjudicator.db"
)

var (
	// depositsBucket holds FundingID -> encoded NativeBalance.
	depositsBucket = []byte("deposits")

	// disputesBucket holds ChannelID -> encoded Dispute.
	disputesBucket = []byte("disputes")
)

// DB is the adjudicator's persistent store. All reads and writes commit
// within a single kvdb transaction per adjudicator operation (spec.md §5):
// an error return leaves the underlying buckets untouched.
type DB struct {
	kvdb.Backend
}

// Open opens (creating if necessary) an embedded-bbolt adjudicator
// database at dbPath, mirroring channeldb.Open's create-on-first-use
// behaviour.
func Open(dbPath string) (*DB, error) {
	backend, err := kvdb.Create(
		kvdb.BoltBackendName, dbPath, true, kvdb.DefaultDBTimeout,
	)
	if err != nil {
		return nil, fmt.Errorf("opening bolt backend: %w", err)
	}
	return openWithBackend(backend)
}

// OpenPostgres opens the adjudicator database against a Postgres instance,
// exercising kvdb's postgres backend (github.com/jackc/pgx/v4) — the
// production deployment target alongside the embedded default.
func OpenPostgres(dsn, prefix string) (*DB, error) {
	backend, err := kvdb.Create(
		kvdb.PostgresBackendName, kvdb.PostgresConfig{
			Dsn:            dsn,
			TimeoutConnect: 10 * time.Second,
		}, prefix,
	)
	if err != nil {
		return nil, fmt.Errorf("opening postgres backend: %w", err)
	}
	return openWithBackend(backend)
}

func openWithBackend(backend kvdb.Backend) (*DB, error) {
	db := &DB{Backend: backend}
	err := db.Update(func(tx kvdb.RwTx) error {
		if _, err := tx.CreateTopLevelBucket(depositsBucket); err != nil {
			return err
		}
		_, err := tx.CreateTopLevelBucket(disputesBucket)
		return err
	}, func() {})
	if err != nil {
		backend.Close()
		return nil, fmt.Errorf("initializing buckets: %w", err)
	}
	return db, nil
}

// Wipe deletes both top-level buckets and recreates them empty, in a
// single atomic transaction (grounded on channeldb.DB.Wipe).
func (d *DB) Wipe() error {
	return d.Update(func(tx kvdb.RwTx) error {
		for _, bucket := range [][]byte{depositsBucket, disputesBucket} {
			if err := tx.DeleteTopLevelBucket(bucket); err != nil && err != kvdb.ErrBucketNotFound {
				return err
			}
			if _, err := tx.CreateTopLevelBucket(bucket); err != nil {
				return err
			}
		}
		return nil
	}, func() {})
}
