package certs

import "github.com/btcsuite/btclog"

var log = btclog.Disabled

// UseLogger sets the logger used by package certs.
func UseLogger(logger btclog.Logger) {
	log = logger
}
