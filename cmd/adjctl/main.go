// Command adjctl is the adjudicator's control-plane client, grounded on
// the teacher's cmd/lncli: a thin urfave/cli wrapper around an
// rpc.AdjudicatorClient, dialed with the same TLS-cert-plus-macaroon
// scheme lncli uses against lnd.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/metadata"

	"github.com/urfave/cli"

	"github.com/perunnetwork/cosmwasm-adjudicator/rpc"
)

const (
	defaultTLSCertFilename  = "tls.cert"
	defaultMacaroonFilename = "admin.macaroon"
)

var (
	adjudicatorDir       = defaultAdjudicatorDir()
	defaultTLSCertPath   = filepath.Join(adjudicatorDir, defaultTLSCertFilename)
	defaultMacaroonPath  = filepath.Join(adjudicatorDir, defaultMacaroonFilename)
)

func defaultAdjudicatorDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".adjudicatord"
	}
	return filepath.Join(home, ".adjudicatord")
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "[adjctl] %v\n", err)
	os.Exit(1)
}

// getClient dials the daemon's gRPC listener using the context's global
// --rpcserver/--tlscertpath flags, returning a ready client and a cleanup
// function that closes the connection. The macaroon is attached per call by
// withMacaroon.
func getClient(ctx *cli.Context) (rpc.AdjudicatorClient, func()) {
	creds, err := credentials.NewClientTLSFromFile(ctx.GlobalString("tlscertpath"), "")
	if err != nil {
		fatal(err)
	}
	conn, err := grpc.Dial(ctx.GlobalString("rpcserver"), grpc.WithTransportCredentials(creds))
	if err != nil {
		fatal(err)
	}
	return rpc.NewAdjudicatorClient(conn), func() { conn.Close() }
}

// withMacaroon attaches the configured macaroon to ctx as outgoing gRPC
// metadata, unless --no-macaroons was given.
func withMacaroon(ctx *cli.Context) context.Context {
	base := context.Background()
	if ctx.GlobalBool("no-macaroons") {
		return base
	}
	raw, err := os.ReadFile(ctx.GlobalString("macaroonpath"))
	if err != nil {
		fatal(fmt.Errorf("reading macaroon: %w", err))
	}
	return metadata.AppendToOutgoingContext(base, "macaroon", fmt.Sprintf("%x", raw))
}

func callContext(ctx *cli.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(withMacaroon(ctx), 30*time.Second)
}

func main() {
	app := cli.NewApp()
	app.Name = "adjctl"
	app.Usage = "control plane for adjudicatord"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "rpcserver",
			Value: "localhost:9731",
			Usage: "host:port of adjudicatord",
		},
		cli.StringFlag{
			Name:  "tlscertpath",
			Value: defaultTLSCertPath,
			Usage: "path to adjudicatord's TLS certificate",
		},
		cli.BoolFlag{
			Name:  "no-macaroons",
			Usage: "disable macaroon authentication",
		},
		cli.StringFlag{
			Name:  "macaroonpath",
			Value: defaultMacaroonPath,
			Usage: "path to admin macaroon",
		},
	}
	app.Commands = []cli.Command{
		depositCommand,
		disputeCommand,
		concludeCommand,
		concludeDisputeCommand,
		withdrawCommand,
		queryDepositCommand,
		queryDisputeCommand,
		subscribeEventsCommand,
	}

	if err := app.Run(os.Args); err != nil {
		fatal(err)
	}
}
