// Package auth gates the daemon's mutating RPCs behind macaroon bearer
// tokens, grounded on the teacher's macaroon-based admin/readonly split
// (lnd's lnrpc/auth.go and macaroons package): a root key signs first-party
// caveats such as "operation = write", and every RPC's interceptor checks
// the presented macaroon against the capability its handler requires.
package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"gopkg.in/macaroon.v2"
)

const (
	rootKeyLen = 32

	// macaroonMetadataKey is the gRPC metadata key clients attach their
	// hex-encoded macaroon under, matching lnd's "macaroon" convention.
	macaroonMetadataKey = "macaroon"

	// CaveatRead and CaveatWrite are the two capability levels this
	// adjudicator distinguishes: read-only Query RPCs versus every
	// state-mutating RPC.
	CaveatRead  = "operation = read"
	CaveatWrite = "operation = write"
)

// Service bakes and verifies macaroons against a single root key. Unlike
// the teacher's full macaroon-bakery.v2 integration (third-party caveats,
// discharge macaroons), the adjudicator's authorization model is flat —
// only first-party "operation" caveats — so it is implemented directly
// against gopkg.in/macaroon.v2 rather than pulling in bakery's full
// third-party-caveat machinery.
type Service struct {
	rootKey []byte
}

// NewService generates a fresh random root key.
func NewService() (*Service, error) {
	key := make([]byte, rootKeyLen)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("generating macaroon root key: %w", err)
	}
	return &Service{rootKey: key}, nil
}

// NewServiceFromKey reuses a previously-generated root key, so macaroons
// baked by an earlier daemon run remain valid.
func NewServiceFromKey(rootKey []byte) *Service {
	return &Service{rootKey: rootKey}
}

// RootKey returns the service's root key for persistence between daemon
// restarts.
func (s *Service) RootKey() []byte {
	return s.rootKey
}

// Bake mints a new macaroon scoped to the given first-party caveats (e.g.
// CaveatRead or CaveatWrite), returning its wire encoding.
func (s *Service) Bake(location string, caveats ...string) ([]byte, error) {
	id := make([]byte, 16)
	if _, err := rand.Read(id); err != nil {
		return nil, fmt.Errorf("generating macaroon id: %w", err)
	}

	m, err := macaroon.New(s.rootKey, id, location, macaroon.V2)
	if err != nil {
		return nil, fmt.Errorf("minting macaroon: %w", err)
	}
	for _, c := range caveats {
		if err := m.AddFirstPartyCaveat([]byte(c)); err != nil {
			return nil, fmt.Errorf("adding caveat %q: %w", c, err)
		}
	}
	return m.MarshalBinary()
}

// verify checks that raw is a validly-signed macaroon authorizing
// requiredCaveat.
func (s *Service) verify(raw []byte, requiredCaveat string) error {
	m := &macaroon.Macaroon{}
	if err := m.UnmarshalBinary(raw); err != nil {
		return fmt.Errorf("parsing macaroon: %w", err)
	}

	satisfied := false
	check := func(caveat string) error {
		if caveat == requiredCaveat || caveat == CaveatWrite {
			satisfied = true
			return nil
		}
		if caveat == CaveatRead {
			return nil
		}
		return fmt.Errorf("unrecognized caveat %q", caveat)
	}

	if err := m.Verify(s.rootKey, check, nil); err != nil {
		return fmt.Errorf("macaroon verification failed: %w", err)
	}
	if !satisfied {
		return fmt.Errorf("macaroon does not authorize %q", requiredCaveat)
	}
	return nil
}

// readOnlyMethods lists the fully-qualified gRPC methods that need only
// CaveatRead. Every other method, SubscribeEvents included, needs
// CaveatWrite.
var readOnlyMethods = map[string]bool{
	"/adjudicator.Adjudicator/QueryDeposit": true,
	"/adjudicator.Adjudicator/QueryDispute": true,
}

func requiredCaveatFor(fullMethod string) string {
	if readOnlyMethods[fullMethod] {
		return CaveatRead
	}
	return CaveatWrite
}

// UnaryInterceptor enforces macaroon authorization on every unary RPC.
func (s *Service) UnaryInterceptor() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context, req interface{}, info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		if err := s.authorize(ctx, info.FullMethod); err != nil {
			return nil, err
		}
		return handler(ctx, req)
	}
}

// StreamInterceptor enforces macaroon authorization on every streaming RPC
// (the event subscription stream).
func (s *Service) StreamInterceptor() grpc.StreamServerInterceptor {
	return func(
		srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo,
		handler grpc.StreamHandler,
	) error {
		if err := s.authorize(ss.Context(), info.FullMethod); err != nil {
			return err
		}
		return handler(srv, ss)
	}
}

func (s *Service) authorize(ctx context.Context, fullMethod string) error {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return status.Error(codes.Unauthenticated, "no macaroon provided")
	}
	values := md.Get(macaroonMetadataKey)
	if len(values) != 1 {
		return status.Error(codes.Unauthenticated, "expected exactly one macaroon")
	}

	raw, err := hex.DecodeString(values[0])
	if err != nil {
		return status.Errorf(codes.Unauthenticated, "malformed macaroon: %v", err)
	}

	if err := s.verify(raw, requiredCaveatFor(fullMethod)); err != nil {
		return status.Errorf(codes.PermissionDenied, "%v", err)
	}
	return nil
}
