package rpc

import (
	"context"
	"errors"

	"github.com/perunnetwork/cosmwasm-adjudicator/adjerrors"
	"github.com/perunnetwork/cosmwasm-adjudicator/bank"
	"github.com/perunnetwork/cosmwasm-adjudicator/channel"
	"github.com/perunnetwork/cosmwasm-adjudicator/clockshim"
	"github.com/perunnetwork/cosmwasm-adjudicator/core"
	"github.com/perunnetwork/cosmwasm-adjudicator/metrics"
	"github.com/perunnetwork/cosmwasm-adjudicator/store"
)

const subscriberBuffer = 64

// server implements AdjudicatorServer as a thin translation layer over
// package core: decode wire types, call the operation, encode the result
// or map the error to a gRPC status (the teacher's rpcserver.go plays the
// same role over the payment channel state machine).
type server struct {
	adj         *core.Adjudicator
	broadcaster *broadcaster
	metrics     *metrics.Collectors
}

// NewServer wraps adj as a gRPC-servable AdjudicatorServer. The server's
// broadcaster is created here and is not attached to adj, so
// SubscribeEvents streams on such a server receive no events;
// NewServerWithEvents builds the Adjudicator wired to the broadcaster. m is
// stored but the server methods record nothing to it (per-RPC metrics come
// from metrics.Collectors.UnaryServerInterceptor); it may be nil.
func NewServer(adj *core.Adjudicator, m *metrics.Collectors) AdjudicatorServer {
	return &server{adj: adj, broadcaster: newBroadcaster(), metrics: m}
}

// NewServerWithEvents constructs an Adjudicator wired to feed this
// server's SubscribeEvents stream, returning both.
func NewServerWithEvents(db *store.DB, clock clockshim.TimeSource, sink bank.Sink, m *metrics.Collectors) (*core.Adjudicator, AdjudicatorServer) {
	srv := &server{broadcaster: newBroadcaster(), metrics: m}
	srv.adj = core.New(db, clock, sink, core.WithEventPublisher(srv.broadcaster))
	return srv.adj, srv
}

func (s *server) Deposit(_ context.Context, req *DepositRequest) (*DepositResponse, error) {
	fundingID, err := decodeID(req.FundingId)
	if err != nil {
		return nil, toStatus(err)
	}
	attached, err := decodeBalance(req.Attached)
	if err != nil {
		return nil, toStatus(err)
	}
	if err := s.adj.Deposit(fundingID, attached); err != nil {
		return nil, toStatus(err)
	}
	balance, err := s.adj.QueryDeposit(fundingID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &DepositResponse{Balance: encodeBalance(balance)}, nil
}

func (s *server) Dispute(_ context.Context, req *DisputeRequest) (*DisputeResponse, error) {
	params, err := decodeParams(req.Params)
	if err != nil {
		return nil, toStatus(err)
	}
	state, err := decodeState(req.State)
	if err != nil {
		return nil, toStatus(err)
	}
	sigs, err := decodeSignatures(req.Signatures)
	if err != nil {
		return nil, toStatus(err)
	}
	if err := s.adj.Dispute(params, state, sigs); err != nil {
		return nil, toStatus(err)
	}
	return &DisputeResponse{}, nil
}

func (s *server) Conclude(_ context.Context, req *ConcludeRequest) (*ConcludeResponse, error) {
	params, err := decodeParams(req.Params)
	if err != nil {
		return nil, toStatus(err)
	}
	state, err := decodeState(req.State)
	if err != nil {
		return nil, toStatus(err)
	}
	sigs, err := decodeSignatures(req.Signatures)
	if err != nil {
		return nil, toStatus(err)
	}
	if err := s.adj.Conclude(params, state, sigs); err != nil {
		return nil, toStatus(err)
	}
	return &ConcludeResponse{}, nil
}

func (s *server) ConcludeDispute(_ context.Context, req *ConcludeDisputeRequest) (*ConcludeDisputeResponse, error) {
	params, err := decodeParams(req.Params)
	if err != nil {
		return nil, toStatus(err)
	}
	if err := s.adj.ConcludeDispute(params); err != nil {
		return nil, toStatus(err)
	}
	return &ConcludeDisputeResponse{}, nil
}

func (s *server) Withdraw(ctx context.Context, req *WithdrawRequest) (*WithdrawResponse, error) {
	channelID, err := decodeID(req.ChannelId)
	if err != nil {
		return nil, toStatus(err)
	}
	part, err := decodePubKey(req.Part)
	if err != nil {
		return nil, toStatus(err)
	}
	sig, err := decodeSig(req.Signature)
	if err != nil {
		return nil, toStatus(err)
	}

	fundingID, err := channel.FundingID(channelID, part)
	if err != nil {
		return nil, toStatus(err)
	}
	// An absent deposit is left for core.Withdraw to report, so the RPC
	// returns the same error kind as the core operation.
	paidBalance, err := s.adj.QueryDeposit(fundingID)
	if err != nil && !errors.Is(err, adjerrors.ErrUnknownChannel) {
		return nil, toStatus(err)
	}

	wd := channel.Withdrawal{ChannelID: channelID, Part: part, Receiver: req.Receiver}
	if err := s.adj.Withdraw(ctx, wd, sig); err != nil {
		return nil, toStatus(err)
	}
	return &WithdrawResponse{Balance: encodeBalance(paidBalance)}, nil
}

func (s *server) QueryDeposit(_ context.Context, req *QueryDepositRequest) (*QueryDepositResponse, error) {
	fundingID, err := decodeID(req.FundingId)
	if err != nil {
		return nil, toStatus(err)
	}
	balance, err := s.adj.QueryDeposit(fundingID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &QueryDepositResponse{Balance: encodeBalance(balance)}, nil
}

func (s *server) QueryDispute(_ context.Context, req *QueryDisputeRequest) (*QueryDisputeResponse, error) {
	channelID, err := decodeID(req.ChannelId)
	if err != nil {
		return nil, toStatus(err)
	}
	dispute, err := s.adj.QueryDispute(channelID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &QueryDisputeResponse{Dispute: encodeDispute(dispute)}, nil
}

func (s *server) SubscribeEvents(_ *SubscribeEventsRequest, stream Adjudicator_SubscribeEventsServer) error {
	ch := s.broadcaster.subscribe(subscriberBuffer)
	defer s.broadcaster.unsubscribe(ch)

	for {
		select {
		case evt, ok := <-ch:
			if !ok {
				return nil
			}
			if err := stream.Send(encodeEvent(evt)); err != nil {
				return err
			}
		case <-stream.Context().Done():
			return stream.Context().Err()
		}
	}
}
