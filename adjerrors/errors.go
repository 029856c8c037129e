// Package adjerrors defines the adjudicator's closed error taxonomy
// (spec.md §7). Every operation either succeeds or returns exactly one of
// these, never a bare fmt.Errorf — callers (the gRPC layer, the CLI, the
// core state machine itself) switch on these sentinels with errors.Is,
// grounded on the teacher's channeldb/error.go sentinel-error convention.
package adjerrors

import (
	"errors"
	"fmt"

	goerrors "github.com/go-errors/errors"
)

// Kind identifies a taxonomy member independent of its wrapped message,
// letting callers (notably the gRPC status mapping in rpc/errors.go)
// switch on the failure class without string matching.
type Kind string

const (
	KindInsufficientDeposits Kind = "InsufficientDeposits"
	KindUnknownDispute       Kind = "UnknownDispute"
	KindUnknownChannel       Kind = "UnknownChannel"
	KindUnknownDeposit       Kind = "UnknownDeposit"
	KindDisputeActive        Kind = "DisputeActive"
	KindDisputeVersionTooLow Kind = "DisputeVersionTooLow"
	KindDisputeTimedOut      Kind = "DisputeTimedOut"
	KindAlreadyConcluded     Kind = "AlreadyConcluded"
	KindConcludedTooEarly    Kind = "ConcludedTooEarly"
	KindInvalidSignature     Kind = "InvalidSignature"
	KindWrongSignature       Kind = "WrongSignature"
	KindInvalidSignatureNum  Kind = "InvalidSignatureNum"
	KindWrongSignatureNum    Kind = "WrongSignatureNum"
	KindWrongChannelId       Kind = "WrongChannelId"
	KindInvalidOutcome       Kind = "InvalidOutcome"
	KindStateNotFinal        Kind = "StateNotFinal"
	KindStateFinal           Kind = "StateFinal"
	KindNotConcluded         Kind = "NotConcluded"
	KindInternalError        Kind = "InternalError"
)

// Error is a typed adjudicator failure. Two Errors of the same Kind compare
// equal under errors.Is regardless of Msg, matching the spec's "closed set
// of failure kinds" (spec.md §7).
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Is makes errors.Is(err, adjerrors.ErrUnknownDispute) etc. match any Error
// of the same Kind, independent of Msg.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func newErr(k Kind) *Error { return &Error{Kind: k} }

// Sentinel members of the taxonomy (spec.md §7), one per row of the table.
var (
	ErrInsufficientDeposits = newErr(KindInsufficientDeposits)
	ErrUnknownDispute       = newErr(KindUnknownDispute)
	ErrUnknownChannel       = newErr(KindUnknownChannel)
	ErrUnknownDeposit       = newErr(KindUnknownDeposit)
	ErrDisputeActive        = newErr(KindDisputeActive)
	ErrDisputeVersionTooLow = newErr(KindDisputeVersionTooLow)
	ErrDisputeTimedOut      = newErr(KindDisputeTimedOut)
	ErrAlreadyConcluded     = newErr(KindAlreadyConcluded)
	ErrConcludedTooEarly    = newErr(KindConcludedTooEarly)
	ErrInvalidSignature     = newErr(KindInvalidSignature)
	ErrWrongSignature       = newErr(KindWrongSignature)
	ErrInvalidSignatureNum  = newErr(KindInvalidSignatureNum)
	ErrWrongSignatureNum    = newErr(KindWrongSignatureNum)
	ErrWrongChannelId       = newErr(KindWrongChannelId)
	ErrInvalidOutcome       = newErr(KindInvalidOutcome)
	ErrStateNotFinal        = newErr(KindStateNotFinal)
	ErrStateFinal           = newErr(KindStateFinal)
	ErrNotConcluded         = newErr(KindNotConcluded)
)

// Internal wraps an unexpected invariant violation (serialisation failure,
// storage corruption) as KindInternalError, capturing a stack trace via
// go-errors/errors the way the teacher's lnwallet/channeldb packages wrap
// unexpected faults for post-mortem logging.
func Internal(cause error) *Error {
	wrapped := goerrors.Wrap(cause, 1)
	return &Error{Kind: KindInternalError, Msg: wrapped.ErrorStack()}
}

// WithMsg returns a copy of a sentinel Error carrying additional context,
// preserving its Kind for errors.Is comparisons.
func (e *Error) WithMsg(msg string) *Error {
	return &Error{Kind: e.Kind, Msg: msg}
}

// KindOf extracts the taxonomy Kind from err, for metrics labels and gRPC
// status mapping. Returns the empty string for nil or non-taxonomy errors.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
