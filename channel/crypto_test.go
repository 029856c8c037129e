package channel

import (
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/require"

	"github.com/perunnetwork/cosmwasm-adjudicator/adjerrors"
)

func genKey(t *testing.T) (*secp256k1.PrivateKey, PubKey) {
	t.Helper()
	priv, err := secp256k1.GeneratePrivateKey()
	require.NoError(t, err)
	var pk PubKey
	copy(pk[:], priv.PubKey().SerializeCompressed())
	return priv, pk
}

func TestSignVerifyRoundTrip(t *testing.T) {
	priv, pk := genKey(t)
	state := State{Version: 1, Finalized: true}

	sig, err := Sign(priv, state)
	require.NoError(t, err)
	require.NoError(t, Verify(state, pk, sig[:]))
}

func TestVerifyRejectsWrongSigner(t *testing.T) {
	priv1, _ := genKey(t)
	_, pk2 := genKey(t)
	state := State{Version: 1}

	sig, err := Sign(priv1, state)
	require.NoError(t, err)

	err = Verify(state, pk2, sig[:])
	require.ErrorIs(t, err, adjerrors.ErrWrongSignature)
}

func TestVerifyRejectsTamperedMessage(t *testing.T) {
	priv, pk := genKey(t)
	state := State{Version: 1}

	sig, err := Sign(priv, state)
	require.NoError(t, err)

	tampered := State{Version: 2}
	err = Verify(tampered, pk, sig[:])
	require.ErrorIs(t, err, adjerrors.ErrWrongSignature)
}

func TestVerifyRejectsMalformedSignatureLength(t *testing.T) {
	_, pk := genKey(t)
	state := State{Version: 1}

	err := Verify(state, pk, []byte{0x01, 0x02})
	require.ErrorIs(t, err, adjerrors.ErrInvalidSignature)
}

func TestVerifyRejectsInvalidPubKey(t *testing.T) {
	var pk PubKey // all-zero is not a valid compressed point
	state := State{Version: 1}
	sig := make([]byte, SigSize)

	err := Verify(state, pk, sig)
	require.ErrorIs(t, err, adjerrors.ErrInvalidSignature)
}
