package auth

import "github.com/btcsuite/btclog"

var log = btclog.Disabled

// UseLogger sets the logger used by package auth.
func UseLogger(logger btclog.Logger) {
	log = logger
}
