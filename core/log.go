package core

import "github.com/btcsuite/btclog"

// log is the subsystem logger for core. It is a no-op until UseLogger
// wires in a real backend, so the package is silent when used as a
// library without daemon's logging setup.
var log = btclog.Disabled

// UseLogger sets the logger used by package core.
func UseLogger(logger btclog.Logger) {
	log = logger
}
