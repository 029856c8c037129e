package rpc

import (
	"context"

	"google.golang.org/grpc"
)

// AdjudicatorClient is the client-side stub cmd/adjctl drives, hand written
// in the shape protoc-gen-go-grpc would emit for this service.
type AdjudicatorClient interface {
	Deposit(ctx context.Context, in *DepositRequest, opts ...grpc.CallOption) (*DepositResponse, error)
	Dispute(ctx context.Context, in *DisputeRequest, opts ...grpc.CallOption) (*DisputeResponse, error)
	Conclude(ctx context.Context, in *ConcludeRequest, opts ...grpc.CallOption) (*ConcludeResponse, error)
	ConcludeDispute(ctx context.Context, in *ConcludeDisputeRequest, opts ...grpc.CallOption) (*ConcludeDisputeResponse, error)
	Withdraw(ctx context.Context, in *WithdrawRequest, opts ...grpc.CallOption) (*WithdrawResponse, error)
	QueryDeposit(ctx context.Context, in *QueryDepositRequest, opts ...grpc.CallOption) (*QueryDepositResponse, error)
	QueryDispute(ctx context.Context, in *QueryDisputeRequest, opts ...grpc.CallOption) (*QueryDisputeResponse, error)
	SubscribeEvents(ctx context.Context, in *SubscribeEventsRequest, opts ...grpc.CallOption) (Adjudicator_SubscribeEventsClient, error)
}

// Adjudicator_SubscribeEventsClient is the client-side streaming handle.
type Adjudicator_SubscribeEventsClient interface {
	Recv() (*Event, error)
	grpc.ClientStream
}

type adjudicatorClient struct {
	cc grpc.ClientConnInterface
}

// NewAdjudicatorClient wraps a client connection into an AdjudicatorClient.
func NewAdjudicatorClient(cc grpc.ClientConnInterface) AdjudicatorClient {
	return &adjudicatorClient{cc: cc}
}

func (c *adjudicatorClient) Deposit(ctx context.Context, in *DepositRequest, opts ...grpc.CallOption) (*DepositResponse, error) {
	out := new(DepositResponse)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/Deposit", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adjudicatorClient) Dispute(ctx context.Context, in *DisputeRequest, opts ...grpc.CallOption) (*DisputeResponse, error) {
	out := new(DisputeResponse)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/Dispute", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adjudicatorClient) Conclude(ctx context.Context, in *ConcludeRequest, opts ...grpc.CallOption) (*ConcludeResponse, error) {
	out := new(ConcludeResponse)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/Conclude", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adjudicatorClient) ConcludeDispute(ctx context.Context, in *ConcludeDisputeRequest, opts ...grpc.CallOption) (*ConcludeDisputeResponse, error) {
	out := new(ConcludeDisputeResponse)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/ConcludeDispute", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adjudicatorClient) Withdraw(ctx context.Context, in *WithdrawRequest, opts ...grpc.CallOption) (*WithdrawResponse, error) {
	out := new(WithdrawResponse)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/Withdraw", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adjudicatorClient) QueryDeposit(ctx context.Context, in *QueryDepositRequest, opts ...grpc.CallOption) (*QueryDepositResponse, error) {
	out := new(QueryDepositResponse)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/QueryDeposit", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adjudicatorClient) QueryDispute(ctx context.Context, in *QueryDisputeRequest, opts ...grpc.CallOption) (*QueryDisputeResponse, error) {
	out := new(QueryDisputeResponse)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/QueryDispute", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *adjudicatorClient) SubscribeEvents(ctx context.Context, in *SubscribeEventsRequest, opts ...grpc.CallOption) (Adjudicator_SubscribeEventsClient, error) {
	stream, err := c.cc.NewStream(ctx, &serviceDesc.Streams[0], "/"+serviceName+"/SubscribeEvents", opts...)
	if err != nil {
		return nil, err
	}
	x := &adjudicatorSubscribeEventsClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type adjudicatorSubscribeEventsClient struct {
	grpc.ClientStream
}

func (x *adjudicatorSubscribeEventsClient) Recv() (*Event, error) {
	m := new(Event)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}
