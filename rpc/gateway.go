package rpc

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"google.golang.org/grpc/status"
)

// NewGatewayMux builds the REST mapping of SPEC_FULL.md §4.7's HTTP
// surface onto client: one JSON endpoint per RPC, forwarding into the same
// gRPC client cmd/adjctl uses. grpc-gateway/v2's generated mux normally
// fills this role, but its ForwardResponseMessage path requires messages
// generated by protoc-gen-go (real protoreflect.Message, not the legacy
// Reset/String/ProtoMessage shape used throughout this package — see
// DESIGN.md). Plain encoding/json against the same wire structs, which
// already carry the matching `json:` tags, gives the identical HTTP
// surface without that dependency.
func NewGatewayMux(client AdjudicatorClient) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/deposits", jsonHandler(func(ctx context.Context, r *http.Request) (interface{}, error) {
		var in DepositRequest
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			return nil, err
		}
		return client.Deposit(ctx, &in)
	}))
	mux.HandleFunc("/v1/disputes", jsonHandler(func(ctx context.Context, r *http.Request) (interface{}, error) {
		if r.Method == http.MethodGet {
			channelID := strings.TrimPrefix(r.URL.Path, "/v1/disputes/")
			return client.QueryDispute(ctx, &QueryDisputeRequest{ChannelId: channelID})
		}
		var in DisputeRequest
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			return nil, err
		}
		return client.Dispute(ctx, &in)
	}))
	mux.HandleFunc("/v1/disputes/", jsonHandler(func(ctx context.Context, r *http.Request) (interface{}, error) {
		channelID := strings.TrimPrefix(r.URL.Path, "/v1/disputes/")
		return client.QueryDispute(ctx, &QueryDisputeRequest{ChannelId: channelID})
	}))
	mux.HandleFunc("/v1/conclude", jsonHandler(func(ctx context.Context, r *http.Request) (interface{}, error) {
		var in ConcludeRequest
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			return nil, err
		}
		return client.Conclude(ctx, &in)
	}))
	mux.HandleFunc("/v1/conclude-dispute", jsonHandler(func(ctx context.Context, r *http.Request) (interface{}, error) {
		var in ConcludeDisputeRequest
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			return nil, err
		}
		return client.ConcludeDispute(ctx, &in)
	}))
	mux.HandleFunc("/v1/withdrawals", jsonHandler(func(ctx context.Context, r *http.Request) (interface{}, error) {
		var in WithdrawRequest
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			return nil, err
		}
		return client.Withdraw(ctx, &in)
	}))
	mux.HandleFunc("/v1/deposits/", jsonHandler(func(ctx context.Context, r *http.Request) (interface{}, error) {
		fundingID := strings.TrimPrefix(r.URL.Path, "/v1/deposits/")
		return client.QueryDeposit(ctx, &QueryDepositRequest{FundingId: fundingID})
	}))
	return mux
}

// jsonHandler wraps a decode-call-forward closure into an http.HandlerFunc,
// mapping a gRPC status error to the matching HTTP status code.
func jsonHandler(call func(ctx context.Context, r *http.Request) (interface{}, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := call(r.Context(), r)
		if err != nil {
			writeJSONError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}

func writeJSONError(w http.ResponseWriter, err error) {
	st, ok := status.FromError(err)
	httpCode := http.StatusInternalServerError
	if ok {
		httpCode = grpcCodeToHTTP[st.Code()]
		if httpCode == 0 {
			httpCode = http.StatusInternalServerError
		}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpCode)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
