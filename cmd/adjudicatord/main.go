// Command adjudicatord runs the on-chain state-channel adjudicator as a
// standalone gRPC/REST daemon. Grounded on the teacher's cmd/lnd/main.go:
// a thin wrapper that calls into the package implementing the real
// start-up logic so deferred cleanups still run on early return.
package main

import (
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"

	"github.com/perunnetwork/cosmwasm-adjudicator/daemon"
)

func main() {
	if err := daemon.Main(); err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
