package rpc

import (
	"errors"
	"net/http"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/perunnetwork/cosmwasm-adjudicator/adjerrors"
)

// grpcCodeToHTTP mirrors grpc-gateway's runtime.HTTPStatusFromCode, used by
// the JSON gateway to translate a gRPC status into the matching HTTP
// status without depending on the gateway runtime package.
var grpcCodeToHTTP = map[codes.Code]int{
	codes.OK:                 http.StatusOK,
	codes.Canceled:           499,
	codes.Unknown:            http.StatusInternalServerError,
	codes.InvalidArgument:    http.StatusBadRequest,
	codes.DeadlineExceeded:   http.StatusGatewayTimeout,
	codes.NotFound:           http.StatusNotFound,
	codes.AlreadyExists:      http.StatusConflict,
	codes.PermissionDenied:   http.StatusForbidden,
	codes.ResourceExhausted:  http.StatusTooManyRequests,
	codes.FailedPrecondition: http.StatusBadRequest,
	codes.Aborted:            http.StatusConflict,
	codes.OutOfRange:         http.StatusBadRequest,
	codes.Unimplemented:      http.StatusNotImplemented,
	codes.Internal:           http.StatusInternalServerError,
	codes.Unavailable:        http.StatusServiceUnavailable,
	codes.DataLoss:           http.StatusInternalServerError,
	codes.Unauthenticated:    http.StatusUnauthorized,
}

// kindToCode maps the closed error taxonomy to gRPC status codes
// (SPEC_FULL.md §7), grounded on the teacher's rpcserver.go convention of
// translating internal sentinel errors to specific codes rather than
// collapsing everything to Unknown/Internal.
var kindToCode = map[adjerrors.Kind]codes.Code{
	adjerrors.KindInsufficientDeposits: codes.FailedPrecondition,
	adjerrors.KindUnknownDispute:       codes.NotFound,
	adjerrors.KindUnknownChannel:       codes.NotFound,
	adjerrors.KindUnknownDeposit:       codes.NotFound,
	adjerrors.KindDisputeActive:        codes.FailedPrecondition,
	adjerrors.KindDisputeVersionTooLow: codes.FailedPrecondition,
	adjerrors.KindDisputeTimedOut:      codes.FailedPrecondition,
	adjerrors.KindAlreadyConcluded:     codes.FailedPrecondition,
	adjerrors.KindConcludedTooEarly:    codes.FailedPrecondition,
	adjerrors.KindInvalidSignature:     codes.InvalidArgument,
	adjerrors.KindWrongSignature:       codes.PermissionDenied,
	adjerrors.KindInvalidSignatureNum:  codes.InvalidArgument,
	adjerrors.KindWrongSignatureNum:    codes.InvalidArgument,
	adjerrors.KindWrongChannelId:       codes.InvalidArgument,
	adjerrors.KindInvalidOutcome:       codes.InvalidArgument,
	adjerrors.KindStateNotFinal:        codes.FailedPrecondition,
	adjerrors.KindStateFinal:           codes.FailedPrecondition,
	adjerrors.KindNotConcluded:         codes.FailedPrecondition,
	adjerrors.KindInternalError:        codes.Internal,
}

// toStatus converts an adjudicator error into a gRPC status error. A nil
// err returns nil; an error outside the taxonomy maps to codes.Unknown.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	var e *adjerrors.Error
	if !errors.As(err, &e) {
		return status.Error(codes.Unknown, err.Error())
	}
	code, ok := kindToCode[e.Kind]
	if !ok {
		code = codes.Unknown
	}
	return status.Error(code, err.Error())
}
