package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli"

	"github.com/perunnetwork/cosmwasm-adjudicator/rpc"
)

var disputeCommand = cli.Command{
	Name:      "dispute",
	Usage:     "register or update a contested channel state",
	ArgsUsage: "request.json",
	Description: "request.json holds a DisputeRequest: {\"params\":{...}," +
		"\"state\":{...},\"signatures\":[...]}, one signature per participant " +
		"in params.participants order.",
	Action: dispute,
}

func dispute(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return cli.ShowCommandHelp(ctx, "dispute")
	}
	var req rpc.DisputeRequest
	if err := readJSONArg(ctx.Args().First(), &req); err != nil {
		return err
	}
	client, cleanUp := getClient(ctx)
	defer cleanUp()
	rpcCtx, cancel := callContext(ctx)
	defer cancel()

	if _, err := client.Dispute(rpcCtx, &req); err != nil {
		return err
	}
	fmt.Println("dispute registered")
	return nil
}

var concludeCommand = cli.Command{
	Name:      "conclude",
	Usage:     "settle a channel directly from a finalized state",
	ArgsUsage: "request.json",
	Description: "request.json holds a ConcludeRequest, same shape as dispute's.",
	Action:    conclude,
}

func conclude(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return cli.ShowCommandHelp(ctx, "conclude")
	}
	var req rpc.ConcludeRequest
	if err := readJSONArg(ctx.Args().First(), &req); err != nil {
		return err
	}
	client, cleanUp := getClient(ctx)
	defer cleanUp()
	rpcCtx, cancel := callContext(ctx)
	defer cancel()

	if _, err := client.Conclude(rpcCtx, &req); err != nil {
		return err
	}
	fmt.Println("channel concluded")
	return nil
}

func readJSONArg(path string, v interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewDecoder(f).Decode(v)
}

var depositCommand = cli.Command{
	Name:      "deposit",
	Usage:     "deposit funds into a funding slot",
	ArgsUsage: "funding_id denom amount",
	Action:    deposit,
}

func deposit(ctx *cli.Context) error {
	args := ctx.Args()
	if len(args) != 3 {
		return cli.ShowCommandHelp(ctx, "deposit")
	}
	client, cleanUp := getClient(ctx)
	defer cleanUp()
	rpcCtx, cancel := callContext(ctx)
	defer cancel()

	resp, err := client.Deposit(rpcCtx, &rpc.DepositRequest{
		FundingId: args[0],
		Attached:  &rpc.Balance{Coins: []*rpc.Coin{{Denom: args[1], Amount: args[2]}}},
	})
	if err != nil {
		return err
	}
	return printBalance(os.Stdout, resp.Balance)
}

var queryDepositCommand = cli.Command{
	Name:      "querydeposit",
	Usage:     "show the balance held for a funding id",
	ArgsUsage: "funding_id",
	Action:    queryDeposit,
}

func queryDeposit(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return cli.ShowCommandHelp(ctx, "querydeposit")
	}
	client, cleanUp := getClient(ctx)
	defer cleanUp()
	rpcCtx, cancel := callContext(ctx)
	defer cancel()

	resp, err := client.QueryDeposit(rpcCtx, &rpc.QueryDepositRequest{FundingId: ctx.Args().First()})
	if err != nil {
		return err
	}
	return printBalance(os.Stdout, resp.Balance)
}

var queryDisputeCommand = cli.Command{
	Name:      "querydispute",
	Usage:     "show a channel's registered dispute, if any",
	ArgsUsage: "channel_id",
	Action:    queryDispute,
}

func queryDispute(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return cli.ShowCommandHelp(ctx, "querydispute")
	}
	client, cleanUp := getClient(ctx)
	defer cleanUp()
	rpcCtx, cancel := callContext(ctx)
	defer cancel()

	resp, err := client.QueryDispute(rpcCtx, &rpc.QueryDisputeRequest{ChannelId: ctx.Args().First()})
	if err != nil {
		return err
	}
	return printDispute(os.Stdout, resp.Dispute)
}

var concludeDisputeCommand = cli.Command{
	Name:      "concludedispute",
	Usage:     "settle a channel from its timed-out dispute",
	ArgsUsage: "params.json",
	Description: "params.json holds a Params: {\"nonce\":\"..\",\"participants\":[..]," +
		"\"dispute_duration\":N}.",
	Action: concludeDispute,
}

func concludeDispute(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return cli.ShowCommandHelp(ctx, "concludedispute")
	}
	var params rpc.Params
	if err := readJSONArg(ctx.Args().First(), &params); err != nil {
		return err
	}
	client, cleanUp := getClient(ctx)
	defer cleanUp()
	rpcCtx, cancel := callContext(ctx)
	defer cancel()

	if _, err := client.ConcludeDispute(rpcCtx, &rpc.ConcludeDisputeRequest{Params: &params}); err != nil {
		return err
	}
	fmt.Println("channel concluded")
	return nil
}

var withdrawCommand = cli.Command{
	Name:      "withdraw",
	Usage:     "pay out a concluded channel's deposit",
	ArgsUsage: "channel_id participant_pubkey receiver signature",
	Action:    withdraw,
}

func withdraw(ctx *cli.Context) error {
	args := ctx.Args()
	if len(args) != 4 {
		return cli.ShowCommandHelp(ctx, "withdraw")
	}
	client, cleanUp := getClient(ctx)
	defer cleanUp()
	rpcCtx, cancel := callContext(ctx)
	defer cancel()

	resp, err := client.Withdraw(rpcCtx, &rpc.WithdrawRequest{
		ChannelId: args[0],
		Part:      args[1],
		Receiver:  args[2],
		Signature: args[3],
	})
	if err != nil {
		return err
	}
	return printBalance(os.Stdout, resp.Balance)
}

var subscribeEventsCommand = cli.Command{
	Name:   "subscribeevents",
	Usage:  "stream domain events until interrupted",
	Action: subscribeEvents,
}

func subscribeEvents(ctx *cli.Context) error {
	client, cleanUp := getClient(ctx)
	defer cleanUp()

	stream, err := client.SubscribeEvents(withMacaroon(ctx), &rpc.SubscribeEventsRequest{})
	if err != nil {
		return err
	}
	for {
		evt, err := stream.Recv()
		if err != nil {
			return err
		}
		fmt.Printf("%s channel=%s funding=%s version=%d\n",
			evt.Kind, evt.ChannelId, evt.FundingId, evt.Version)
	}
}

func printBalance(w io.Writer, bal *rpc.Balance) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"denom", "amount"})
	for _, c := range bal.GetCoins() {
		t.AppendRow(table.Row{c.Denom, c.Amount})
	}
	t.Render()
	return nil
}

func printDispute(w io.Writer, d *rpc.Dispute) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"field", "value"})
	t.AppendRow(table.Row{"version", d.GetState().GetVersion()})
	t.AppendRow(table.Row{"finalized", d.GetState().GetFinalized()})
	t.AppendRow(table.Row{"timeout", d.Timeout})
	t.AppendRow(table.Row{"concluded", d.Concluded})
	t.Render()
	return nil
}
