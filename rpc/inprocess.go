package rpc

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
)

// inProcessConn adapts an AdjudicatorServer directly to
// grpc.ClientConnInterface, so NewGatewayMux can drive the REST gateway
// off the same server instance the gRPC listener serves without an extra
// network hop through itself. SubscribeEvents is the one RPC that needs a
// real stream and is not exposed over REST, so NewStream is unimplemented.
type inProcessConn struct {
	srv AdjudicatorServer
}

// NewInProcessConn wraps srv for in-process dispatch.
func NewInProcessConn(srv AdjudicatorServer) grpc.ClientConnInterface {
	return &inProcessConn{srv: srv}
}

func (c *inProcessConn) Invoke(ctx context.Context, method string, args, reply interface{}, _ ...grpc.CallOption) error {
	switch method {
	case "/" + serviceName + "/Deposit":
		resp, err := c.srv.Deposit(ctx, args.(*DepositRequest))
		if err != nil {
			return err
		}
		*reply.(*DepositResponse) = *resp
	case "/" + serviceName + "/Dispute":
		resp, err := c.srv.Dispute(ctx, args.(*DisputeRequest))
		if err != nil {
			return err
		}
		*reply.(*DisputeResponse) = *resp
	case "/" + serviceName + "/Conclude":
		resp, err := c.srv.Conclude(ctx, args.(*ConcludeRequest))
		if err != nil {
			return err
		}
		*reply.(*ConcludeResponse) = *resp
	case "/" + serviceName + "/ConcludeDispute":
		resp, err := c.srv.ConcludeDispute(ctx, args.(*ConcludeDisputeRequest))
		if err != nil {
			return err
		}
		*reply.(*ConcludeDisputeResponse) = *resp
	case "/" + serviceName + "/Withdraw":
		resp, err := c.srv.Withdraw(ctx, args.(*WithdrawRequest))
		if err != nil {
			return err
		}
		*reply.(*WithdrawResponse) = *resp
	case "/" + serviceName + "/QueryDeposit":
		resp, err := c.srv.QueryDeposit(ctx, args.(*QueryDepositRequest))
		if err != nil {
			return err
		}
		*reply.(*QueryDepositResponse) = *resp
	case "/" + serviceName + "/QueryDispute":
		resp, err := c.srv.QueryDispute(ctx, args.(*QueryDisputeRequest))
		if err != nil {
			return err
		}
		*reply.(*QueryDisputeResponse) = *resp
	default:
		return fmt.Errorf("inprocess: unknown method %s", method)
	}
	return nil
}

func (c *inProcessConn) NewStream(context.Context, *grpc.StreamDesc, string, ...grpc.CallOption) (grpc.ClientStream, error) {
	return nil, fmt.Errorf("inprocess: streaming RPCs are not supported over the in-process connection")
}
