// Package healthcheck wires the daemon's liveness probes: periodic checks
// that the store and bank sink are still reachable, adapted from the
// teacher's github.com/lightningnetwork/lnd/healthcheck Observer/Monitor
// pattern (lnd runs the same shape of probe against its chain backend and
// wallet unlocker).
package healthcheck

import (
	"context"
	"errors"
	"time"

	"github.com/lightningnetwork/lnd/healthcheck"
	"github.com/lightningnetwork/lnd/kvdb"

	"github.com/perunnetwork/cosmwasm-adjudicator/bank"
	"github.com/perunnetwork/cosmwasm-adjudicator/store"
)

const (
	defaultInterval = 30 * time.Second
	defaultAttempts = 2
	defaultBackoff  = 5 * time.Second
	defaultTimeout  = 5 * time.Second
)

var errHealthCheckFailed = errors.New("healthcheck: probe exhausted its retries")

// NewMonitor builds a Monitor that probes db and bank on a fixed interval,
// invoking onFailure (e.g. a log.Criticalf call) after a probe exhausts its
// retries.
func NewMonitor(db *store.DB, sink bank.Sink, onFailure func(name string, err error)) *healthcheck.Monitor {
	storeObservation := &healthcheck.Observation{
		Name:     "store",
		Interval: defaultInterval,
		Attempts: defaultAttempts,
		Backoff:  defaultBackoff,
		Timeout:  defaultTimeout,
		Check:    storeHealthCheck(db),
		OnCheckFailed: func() {
			onFailure("store", errHealthCheckFailed)
		},
	}

	bankObservation := &healthcheck.Observation{
		Name:     "bank",
		Interval: defaultInterval,
		Attempts: defaultAttempts,
		Backoff:  defaultBackoff,
		Timeout:  defaultTimeout,
		Check:    bankHealthCheck(sink),
		OnCheckFailed: func() {
			onFailure("bank", errHealthCheckFailed)
		},
	}

	return healthcheck.NewMonitor(&healthcheck.Config{
		Checks: []*healthcheck.Observation{storeObservation, bankObservation},
	})
}

// storeHealthCheck probes the store with a no-op read transaction: any
// error surfaces backend connectivity loss (relevant for the postgres
// backend).
func storeHealthCheck(db *store.DB) func() error {
	return func() error {
		return db.View(func(kvdb.RTx) error { return nil }, func() {})
	}
}

// bankHealthCheck probes the bank sink with a zero-value transfer to a
// reserved probe address. Sinks that can't cheaply no-op this should
// instead wrap a dedicated ping capability; MemSink always succeeds.
func bankHealthCheck(sink bank.Sink) func() error {
	return func() error {
		ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
		defer cancel()
		return sink.Send(ctx, bank.Transfer{Receiver: "healthcheck-probe"})
	}
}
