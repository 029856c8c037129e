package bank

import (
	"context"
	"fmt"

	"google.golang.org/grpc"

	"github.com/perunnetwork/cosmwasm-adjudicator/channel"
)

// bankServiceName is the fully-qualified name of the external ledger
// service a GRPCSink dials. It is intentionally a different service than
// package rpc's adjudicator.Adjudicator: this is the adjudicator acting as
// a client of the chain's coin-transfer capability, not serving it.
const bankServiceName = "bank.Bank"

// TransferRequest is the wire form of a Transfer.
type TransferRequest struct {
	Receiver string  `protobuf:"bytes,1,opt,name=receiver,proto3" json:"receiver,omitempty"`
	Coins    []*Coin `protobuf:"bytes,2,rep,name=coins,proto3" json:"coins,omitempty"`
}

func (m *TransferRequest) Reset()         { *m = TransferRequest{} }
func (m *TransferRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*TransferRequest) ProtoMessage()    {}

// Coin is a denom/amount pair, matching channel.Coin on the wire.
type Coin struct {
	Denom  string `protobuf:"bytes,1,opt,name=denom,proto3" json:"denom,omitempty"`
	Amount string `protobuf:"bytes,2,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *Coin) Reset()         { *m = Coin{} }
func (m *Coin) String() string { return fmt.Sprintf("%+v", *m) }
func (*Coin) ProtoMessage()    {}

// TransferResponse is empty: success is the absence of an error.
type TransferResponse struct{}

func (m *TransferResponse) Reset()         { *m = TransferResponse{} }
func (m *TransferResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*TransferResponse) ProtoMessage()    {}

// GRPCSink is a Sink backed by a remote bank/ledger service, dialed once at
// daemon startup. Grounded on the teacher's pattern of wrapping a
// grpc.ClientConnInterface with a small hand-rolled stub (see
// rpc.adjudicatorClient) rather than a full protoc-gen-go-grpc client.
type GRPCSink struct {
	cc grpc.ClientConnInterface
}

// NewGRPCSink wraps an established connection as a Sink.
func NewGRPCSink(cc grpc.ClientConnInterface) *GRPCSink {
	return &GRPCSink{cc: cc}
}

// Dial opens a connection to target and wraps it as a Sink. Callers own the
// returned io.Closer via the *grpc.ClientConn they pass to NewGRPCSink if
// they need to close it on shutdown; Dial exists for the common case.
func Dial(target string, opts ...grpc.DialOption) (*GRPCSink, *grpc.ClientConn, error) {
	cc, err := grpc.Dial(target, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("dial bank service %s: %w", target, err)
	}
	return NewGRPCSink(cc), cc, nil
}

// Send implements Sink by invoking the remote Transfer RPC.
func (s *GRPCSink) Send(ctx context.Context, t Transfer) error {
	req := &TransferRequest{Receiver: t.Receiver}
	for _, denom := range t.Balance.Denoms() {
		req.Coins = append(req.Coins, &Coin{Denom: denom, Amount: t.Balance.Amount(denom).String()})
	}
	out := new(TransferResponse)
	return s.cc.Invoke(ctx, "/"+bankServiceName+"/Transfer", req, out)
}
