package rpc

import (
	"context"

	"google.golang.org/grpc"
)

// serviceName is the fully-qualified gRPC service name, matching the
// "adjudicator.Adjudicator" package/service pair a .proto file would
// declare.
const serviceName = "adjudicator.Adjudicator"

// AdjudicatorServer is the service interface server (server.go) implements.
// Hand written in place of protoc-gen-go-grpc output, in the same shape that
// generator would have produced for these seven unary RPCs plus the event
// stream.
type AdjudicatorServer interface {
	Deposit(context.Context, *DepositRequest) (*DepositResponse, error)
	Dispute(context.Context, *DisputeRequest) (*DisputeResponse, error)
	Conclude(context.Context, *ConcludeRequest) (*ConcludeResponse, error)
	ConcludeDispute(context.Context, *ConcludeDisputeRequest) (*ConcludeDisputeResponse, error)
	Withdraw(context.Context, *WithdrawRequest) (*WithdrawResponse, error)
	QueryDeposit(context.Context, *QueryDepositRequest) (*QueryDepositResponse, error)
	QueryDispute(context.Context, *QueryDisputeRequest) (*QueryDisputeResponse, error)
	SubscribeEvents(*SubscribeEventsRequest, Adjudicator_SubscribeEventsServer) error
}

// Adjudicator_SubscribeEventsServer is the server-side streaming handle for
// SubscribeEvents, matching the shape protoc-gen-go-grpc emits for a
// server-streaming RPC.
type Adjudicator_SubscribeEventsServer interface {
	Send(*Event) error
	grpc.ServerStream
}

type subscribeEventsServer struct {
	grpc.ServerStream
}

func (s *subscribeEventsServer) Send(evt *Event) error {
	return s.ServerStream.SendMsg(evt)
}

// RegisterAdjudicatorServer attaches srv to s under the service descriptor
// below.
func RegisterAdjudicatorServer(s grpc.ServiceRegistrar, srv AdjudicatorServer) {
	s.RegisterService(&serviceDesc, srv)
}

func depositHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DepositRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdjudicatorServer).Deposit(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/Deposit"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdjudicatorServer).Deposit(ctx, req.(*DepositRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func disputeHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DisputeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdjudicatorServer).Dispute(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/Dispute"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdjudicatorServer).Dispute(ctx, req.(*DisputeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func concludeHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ConcludeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdjudicatorServer).Conclude(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/Conclude"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdjudicatorServer).Conclude(ctx, req.(*ConcludeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func concludeDisputeHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ConcludeDisputeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdjudicatorServer).ConcludeDispute(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/ConcludeDispute"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdjudicatorServer).ConcludeDispute(ctx, req.(*ConcludeDisputeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func withdrawHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(WithdrawRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdjudicatorServer).Withdraw(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/Withdraw"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdjudicatorServer).Withdraw(ctx, req.(*WithdrawRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func queryDepositHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryDepositRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdjudicatorServer).QueryDeposit(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/QueryDeposit"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdjudicatorServer).QueryDeposit(ctx, req.(*QueryDepositRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func queryDisputeHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryDisputeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdjudicatorServer).QueryDispute(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/QueryDispute"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdjudicatorServer).QueryDispute(ctx, req.(*QueryDisputeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func subscribeEventsHandler(srv interface{}, stream grpc.ServerStream) error {
	in := new(SubscribeEventsRequest)
	if err := stream.RecvMsg(in); err != nil {
		return err
	}
	return srv.(AdjudicatorServer).SubscribeEvents(in, &subscribeEventsServer{stream})
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*AdjudicatorServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Deposit", Handler: depositHandler},
		{MethodName: "Dispute", Handler: disputeHandler},
		{MethodName: "Conclude", Handler: concludeHandler},
		{MethodName: "ConcludeDispute", Handler: concludeDisputeHandler},
		{MethodName: "Withdraw", Handler: withdrawHandler},
		{MethodName: "QueryDeposit", Handler: queryDepositHandler},
		{MethodName: "QueryDispute", Handler: queryDisputeHandler},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "SubscribeEvents",
			Handler:       subscribeEventsHandler,
			ServerStreams: true,
		},
	},
	Metadata: "adjudicator.proto",
}
