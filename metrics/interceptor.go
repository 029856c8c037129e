package metrics

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// UnaryServerInterceptor times every unary RPC and records it against c,
// using the method's base name (e.g. "Deposit") as the label and the gRPC
// status code as the failure kind. Installed alongside
// github.com/grpc-ecosystem/go-grpc-middleware's chaining so it composes
// with auth's macaroon interceptor and go-grpc-prometheus's generic gRPC
// counters (daemon.go).
func (c *Collectors) UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context, req interface{}, info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		kind := ""
		if err != nil {
			kind = status.Code(err).String()
		}
		c.ObserveResult(methodName(info.FullMethod), time.Since(start).Seconds(), kind)
		return resp, err
	}
}

// methodName strips the "/service/" prefix grpc.UnaryServerInfo.FullMethod
// carries, leaving just the RPC name for metric labels.
func methodName(fullMethod string) string {
	for i := len(fullMethod) - 1; i >= 0; i-- {
		if fullMethod[i] == '/' {
			return fullMethod[i+1:]
		}
	}
	return fullMethod
}
