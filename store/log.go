package store

import "github.com/btcsuite/btclog"

var log = btclog.Disabled

// UseLogger sets the logger used by package store.
func UseLogger(logger btclog.Logger) {
	log = logger
}
