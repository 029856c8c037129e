// Package rpc is the adjudicator's external interface: a gRPC service
// (messages.go, service.go) backed by server.go's thin translation into
// package core, plus a JSON REST mapping (gateway.go) over the same
// client. The request and response messages below are hand-written in
// the legacy Reset/String/ProtoMessage shape that github.com/golang/protobuf's
// backward-compatibility layer accepts, grounded on the teacher's
// rpcserver.go call surface generalised from Lightning payment channels to
// the on-chain adjudicator's seven unary operations and its event stream.
package rpc

import "fmt"

// Coin mirrors channel.Coin on the wire: a denom and a decimal-string
// amount (uint128 does not fit in a protobuf scalar).
type Coin struct {
	Denom  string `protobuf:"bytes,1,opt,name=denom,proto3" json:"denom,omitempty"`
	Amount string `protobuf:"bytes,2,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *Coin) Reset()         { *m = Coin{} }
func (m *Coin) String() string { return fmt.Sprintf("%+v", *m) }
func (*Coin) ProtoMessage()    {}

// Balance is a NativeBalance on the wire: an unordered list of Coins.
type Balance struct {
	Coins []*Coin `protobuf:"bytes,1,rep,name=coins,proto3" json:"coins,omitempty"`
}

func (m *Balance) Reset()         { *m = Balance{} }
func (m *Balance) String() string { return fmt.Sprintf("%+v", *m) }
func (*Balance) ProtoMessage()    {}

// GetCoins is nil-safe, matching protoc-gen-go's generated accessor shape.
func (m *Balance) GetCoins() []*Coin {
	if m == nil {
		return nil
	}
	return m.Coins
}

// Params mirrors channel.Params: hex-encoded nonce, hex-encoded compressed
// participant pubkeys, and the dispute duration in seconds.
type Params struct {
	Nonce           string   `protobuf:"bytes,1,opt,name=nonce,proto3" json:"nonce,omitempty"`
	Participants    []string `protobuf:"bytes,2,rep,name=participants,proto3" json:"participants,omitempty"`
	DisputeDuration uint64   `protobuf:"varint,3,opt,name=dispute_duration,json=disputeDuration,proto3" json:"dispute_duration,omitempty"`
}

func (m *Params) Reset()         { *m = Params{} }
func (m *Params) String() string { return fmt.Sprintf("%+v", *m) }
func (*Params) ProtoMessage()    {}

// State mirrors channel.State.
type State struct {
	ChannelId string     `protobuf:"bytes,1,opt,name=channel_id,json=channelId,proto3" json:"channel_id,omitempty"`
	Version   uint64     `protobuf:"varint,2,opt,name=version,proto3" json:"version,omitempty"`
	Balances  []*Balance `protobuf:"bytes,3,rep,name=balances,proto3" json:"balances,omitempty"`
	Finalized bool       `protobuf:"varint,4,opt,name=finalized,proto3" json:"finalized,omitempty"`
}

func (m *State) Reset()         { *m = State{} }
func (m *State) String() string { return fmt.Sprintf("%+v", *m) }
func (*State) ProtoMessage()    {}

// GetVersion is nil-safe, matching protoc-gen-go's generated accessor shape.
func (m *State) GetVersion() uint64 {
	if m == nil {
		return 0
	}
	return m.Version
}

// GetFinalized is nil-safe, matching protoc-gen-go's generated accessor shape.
func (m *State) GetFinalized() bool {
	if m == nil {
		return false
	}
	return m.Finalized
}

// Dispute mirrors channel.Dispute.
type Dispute struct {
	State     *State `protobuf:"bytes,1,opt,name=state,proto3" json:"state,omitempty"`
	Timeout   uint64 `protobuf:"varint,2,opt,name=timeout,proto3" json:"timeout,omitempty"`
	Concluded bool   `protobuf:"varint,3,opt,name=concluded,proto3" json:"concluded,omitempty"`
}

func (m *Dispute) Reset()         { *m = Dispute{} }
func (m *Dispute) String() string { return fmt.Sprintf("%+v", *m) }
func (*Dispute) ProtoMessage()    {}

// GetState is nil-safe, matching protoc-gen-go's generated accessor shape.
func (m *Dispute) GetState() *State {
	if m == nil {
		return nil
	}
	return m.State
}

// DepositRequest deposits attached into fundingId's custody slot.
type DepositRequest struct {
	FundingId string   `protobuf:"bytes,1,opt,name=funding_id,json=fundingId,proto3" json:"funding_id,omitempty"`
	Attached  *Balance `protobuf:"bytes,2,opt,name=attached,proto3" json:"attached,omitempty"`
}

func (m *DepositRequest) Reset()         { *m = DepositRequest{} }
func (m *DepositRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*DepositRequest) ProtoMessage()    {}

// DepositResponse carries the post-deposit balance.
type DepositResponse struct {
	Balance *Balance `protobuf:"bytes,1,opt,name=balance,proto3" json:"balance,omitempty"`
}

func (m *DepositResponse) Reset()         { *m = DepositResponse{} }
func (m *DepositResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*DepositResponse) ProtoMessage()    {}

// DisputeRequest registers or updates a contested channel state.
type DisputeRequest struct {
	Params     *Params  `protobuf:"bytes,1,opt,name=params,proto3" json:"params,omitempty"`
	State      *State   `protobuf:"bytes,2,opt,name=state,proto3" json:"state,omitempty"`
	Signatures []string `protobuf:"bytes,3,rep,name=signatures,proto3" json:"signatures,omitempty"`
}

func (m *DisputeRequest) Reset()         { *m = DisputeRequest{} }
func (m *DisputeRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*DisputeRequest) ProtoMessage()    {}

// DisputeResponse is empty: success is the absence of an error.
type DisputeResponse struct{}

func (m *DisputeResponse) Reset()         { *m = DisputeResponse{} }
func (m *DisputeResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*DisputeResponse) ProtoMessage()    {}

// ConcludeRequest settles a channel directly from a finalized state.
type ConcludeRequest struct {
	Params     *Params  `protobuf:"bytes,1,opt,name=params,proto3" json:"params,omitempty"`
	State      *State   `protobuf:"bytes,2,opt,name=state,proto3" json:"state,omitempty"`
	Signatures []string `protobuf:"bytes,3,rep,name=signatures,proto3" json:"signatures,omitempty"`
}

func (m *ConcludeRequest) Reset()         { *m = ConcludeRequest{} }
func (m *ConcludeRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*ConcludeRequest) ProtoMessage()    {}

type ConcludeResponse struct{}

func (m *ConcludeResponse) Reset()         { *m = ConcludeResponse{} }
func (m *ConcludeResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*ConcludeResponse) ProtoMessage()    {}

// ConcludeDisputeRequest settles a channel from its timed-out dispute.
type ConcludeDisputeRequest struct {
	Params *Params `protobuf:"bytes,1,opt,name=params,proto3" json:"params,omitempty"`
}

func (m *ConcludeDisputeRequest) Reset()         { *m = ConcludeDisputeRequest{} }
func (m *ConcludeDisputeRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*ConcludeDisputeRequest) ProtoMessage()    {}

type ConcludeDisputeResponse struct{}

func (m *ConcludeDisputeResponse) Reset()         { *m = ConcludeDisputeResponse{} }
func (m *ConcludeDisputeResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*ConcludeDisputeResponse) ProtoMessage()    {}

// WithdrawRequest pays out a concluded channel's deposit.
type WithdrawRequest struct {
	ChannelId string `protobuf:"bytes,1,opt,name=channel_id,json=channelId,proto3" json:"channel_id,omitempty"`
	Part      string `protobuf:"bytes,2,opt,name=part,proto3" json:"part,omitempty"`
	Receiver  string `protobuf:"bytes,3,opt,name=receiver,proto3" json:"receiver,omitempty"`
	Signature string `protobuf:"bytes,4,opt,name=signature,proto3" json:"signature,omitempty"`
}

func (m *WithdrawRequest) Reset()         { *m = WithdrawRequest{} }
func (m *WithdrawRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*WithdrawRequest) ProtoMessage()    {}

type WithdrawResponse struct {
	Balance *Balance `protobuf:"bytes,1,opt,name=balance,proto3" json:"balance,omitempty"`
}

func (m *WithdrawResponse) Reset()         { *m = WithdrawResponse{} }
func (m *WithdrawResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*WithdrawResponse) ProtoMessage()    {}

// QueryDepositRequest/Response expose the read-only deposit lookup.
type QueryDepositRequest struct {
	FundingId string `protobuf:"bytes,1,opt,name=funding_id,json=fundingId,proto3" json:"funding_id,omitempty"`
}

func (m *QueryDepositRequest) Reset()         { *m = QueryDepositRequest{} }
func (m *QueryDepositRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*QueryDepositRequest) ProtoMessage()    {}

type QueryDepositResponse struct {
	Balance *Balance `protobuf:"bytes,1,opt,name=balance,proto3" json:"balance,omitempty"`
}

func (m *QueryDepositResponse) Reset()         { *m = QueryDepositResponse{} }
func (m *QueryDepositResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*QueryDepositResponse) ProtoMessage()    {}

// QueryDisputeRequest/Response expose the read-only dispute lookup.
type QueryDisputeRequest struct {
	ChannelId string `protobuf:"bytes,1,opt,name=channel_id,json=channelId,proto3" json:"channel_id,omitempty"`
}

func (m *QueryDisputeRequest) Reset()         { *m = QueryDisputeRequest{} }
func (m *QueryDisputeRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*QueryDisputeRequest) ProtoMessage()    {}

type QueryDisputeResponse struct {
	Dispute *Dispute `protobuf:"bytes,1,opt,name=dispute,proto3" json:"dispute,omitempty"`
}

func (m *QueryDisputeResponse) Reset()         { *m = QueryDisputeResponse{} }
func (m *QueryDisputeResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*QueryDisputeResponse) ProtoMessage()    {}

// SubscribeEventsRequest has no filter fields yet: every subscriber
// receives every domain event.
type SubscribeEventsRequest struct{}

func (m *SubscribeEventsRequest) Reset()         { *m = SubscribeEventsRequest{} }
func (m *SubscribeEventsRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*SubscribeEventsRequest) ProtoMessage()    {}

// Event is the wire form of core.Event, tagged by kind ("deposit",
// "dispute", "concluded", "withdrawn"); which of the other fields are set
// depends on the kind.
type Event struct {
	Kind       string   `protobuf:"bytes,1,opt,name=kind,proto3" json:"kind,omitempty"`
	ChannelId  string   `protobuf:"bytes,2,opt,name=channel_id,json=channelId,proto3" json:"channel_id,omitempty"`
	FundingId  string   `protobuf:"bytes,3,opt,name=funding_id,json=fundingId,proto3" json:"funding_id,omitempty"`
	Version    uint64   `protobuf:"varint,4,opt,name=version,proto3" json:"version,omitempty"`
	Timeout    uint64   `protobuf:"varint,5,opt,name=timeout,proto3" json:"timeout,omitempty"`
	Part       string   `protobuf:"bytes,6,opt,name=part,proto3" json:"part,omitempty"`
	Receiver   string   `protobuf:"bytes,7,opt,name=receiver,proto3" json:"receiver,omitempty"`
	Balance    *Balance `protobuf:"bytes,8,opt,name=balance,proto3" json:"balance,omitempty"`
}

func (m *Event) Reset()         { *m = Event{} }
func (m *Event) String() string { return fmt.Sprintf("%+v", *m) }
func (*Event) ProtoMessage()    {}
