package rpc

import (
	"encoding/hex"
	"fmt"

	"github.com/perunnetwork/cosmwasm-adjudicator/adjerrors"
	"github.com/perunnetwork/cosmwasm-adjudicator/channel"
	"github.com/perunnetwork/cosmwasm-adjudicator/core"
)

func decodeID(s string) (channel.ID, error) {
	var id channel.ID
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != channel.HashSize {
		return id, adjerrors.ErrUnknownChannel.WithMsg(fmt.Sprintf("malformed id %q", s))
	}
	copy(id[:], b)
	return id, nil
}

func decodePubKey(s string) (channel.PubKey, error) {
	var pk channel.PubKey
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != channel.PubKeySize {
		return pk, adjerrors.ErrInvalidSignature.WithMsg(fmt.Sprintf("malformed pubkey %q", s))
	}
	copy(pk[:], b)
	return pk, nil
}

func decodeSig(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, adjerrors.ErrInvalidSignature.WithMsg(fmt.Sprintf("malformed signature %q", s))
	}
	return b, nil
}

func decodeBalance(b *Balance) (channel.NativeBalance, error) {
	if b == nil {
		return channel.NativeBalance{}, nil
	}
	coins := make([]channel.Coin, len(b.Coins))
	for i, c := range b.Coins {
		amt, ok := channel.Uint128FromDecimalString(c.Amount)
		if !ok {
			return channel.NativeBalance{}, adjerrors.ErrInvalidOutcome.WithMsg(
				fmt.Sprintf("malformed amount %q", c.Amount))
		}
		coins[i] = channel.Coin{Denom: c.Denom, Amount: amt}
	}
	return channel.NewNativeBalance(coins...)
}

func encodeBalance(nb channel.NativeBalance) *Balance {
	denoms := nb.Denoms()
	coins := make([]*Coin, len(denoms))
	for i, d := range denoms {
		coins[i] = &Coin{Denom: d, Amount: nb.Amount(d).String()}
	}
	return &Balance{Coins: coins}
}

func decodeParams(p *Params) (channel.Params, error) {
	if p == nil {
		return channel.Params{}, adjerrors.ErrInvalidOutcome.WithMsg("missing params")
	}
	nonce, err := hex.DecodeString(p.Nonce)
	if err != nil || len(nonce) != channel.NonceSize {
		return channel.Params{}, adjerrors.ErrInvalidOutcome.WithMsg("malformed nonce")
	}
	var out channel.Params
	copy(out.Nonce[:], nonce)
	out.DisputeDuration = p.DisputeDuration
	out.Participants = make([]channel.PubKey, len(p.Participants))
	for i, raw := range p.Participants {
		pk, err := decodePubKey(raw)
		if err != nil {
			return channel.Params{}, err
		}
		out.Participants[i] = pk
	}
	return out, nil
}

func decodeState(s *State) (channel.State, error) {
	if s == nil {
		return channel.State{}, adjerrors.ErrInvalidOutcome.WithMsg("missing state")
	}
	id, err := decodeID(s.ChannelId)
	if err != nil {
		return channel.State{}, err
	}
	balances := make([]channel.NativeBalance, len(s.Balances))
	for i, b := range s.Balances {
		nb, err := decodeBalance(b)
		if err != nil {
			return channel.State{}, err
		}
		balances[i] = nb
	}
	return channel.State{
		ChannelID: id,
		Version:   s.Version,
		Balances:  balances,
		Finalized: s.Finalized,
	}, nil
}

func decodeSignatures(sigs []string) ([][]byte, error) {
	out := make([][]byte, len(sigs))
	for i, s := range sigs {
		sig, err := decodeSig(s)
		if err != nil {
			return nil, err
		}
		out[i] = sig
	}
	return out, nil
}

func encodeDispute(d channel.Dispute) *Dispute {
	return &Dispute{
		State: &State{
			ChannelId: d.State.ChannelID.String(),
			Version:   d.State.Version,
			Balances:  encodeBalances(d.State.Balances),
			Finalized: d.State.Finalized,
		},
		Timeout:   d.Timeout,
		Concluded: d.Concluded,
	}
}

func encodeBalances(bs []channel.NativeBalance) []*Balance {
	out := make([]*Balance, len(bs))
	for i, b := range bs {
		out[i] = encodeBalance(b)
	}
	return out
}

func encodeEvent(evt core.Event) *Event {
	switch e := evt.(type) {
	case core.DepositEvent:
		return &Event{Kind: "deposit", FundingId: e.FundingID.String(), Balance: encodeBalance(e.Balance)}
	case core.DisputeEvent:
		return &Event{Kind: "dispute", ChannelId: e.ChannelID.String(), Version: e.Version, Timeout: e.Timeout}
	case core.ConcludedEvent:
		return &Event{Kind: "concluded", ChannelId: e.ChannelID.String(), Version: e.Version}
	case core.WithdrawnEvent:
		return &Event{
			Kind:      "withdrawn",
			ChannelId: e.ChannelID.String(),
			Part:      hex.EncodeToString(e.Part[:]),
			Receiver:  e.Receiver,
			Balance:   encodeBalance(e.Balance),
		}
	default:
		return &Event{Kind: "unknown"}
	}
}
