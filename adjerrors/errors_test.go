package adjerrors_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/perunnetwork/cosmwasm-adjudicator/adjerrors"
)

func TestErrorsIsMatchesByKindOnly(t *testing.T) {
	withMsg := adjerrors.ErrUnknownDispute.WithMsg("channel abc123")
	require.ErrorIs(t, withMsg, adjerrors.ErrUnknownDispute)
	require.NotErrorIs(t, withMsg, adjerrors.ErrUnknownChannel)
}

func TestInternalWrapsCause(t *testing.T) {
	cause := errors.New("bucket missing")
	err := adjerrors.Internal(cause)
	require.Equal(t, adjerrors.KindInternalError, err.Kind)
	require.Contains(t, err.Msg, "bucket missing")
}

func TestKindOf(t *testing.T) {
	require.Equal(t, adjerrors.KindUnknownChannel, adjerrors.KindOf(adjerrors.ErrUnknownChannel))
	require.Equal(t, adjerrors.Kind(""), adjerrors.KindOf(errors.New("plain")))
	require.Equal(t, adjerrors.Kind(""), adjerrors.KindOf(nil))
}
