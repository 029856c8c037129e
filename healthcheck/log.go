package healthcheck

import "github.com/btcsuite/btclog"

var log = btclog.Disabled

// UseLogger sets the logger used by package healthcheck.
func UseLogger(logger btclog.Logger) {
	log = logger
}
