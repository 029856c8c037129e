package rpc

import "github.com/btcsuite/btclog"

var log = btclog.Disabled

// UseLogger sets the logger used by package rpc.
func UseLogger(logger btclog.Logger) {
	log = logger
}
