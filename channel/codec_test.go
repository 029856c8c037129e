package channel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustBalance(t *testing.T, coins ...Coin) NativeBalance {
	t.Helper()
	nb, err := NewNativeBalance(coins...)
	require.NoError(t, err)
	return nb
}

func TestNativeBalanceRoundTrip(t *testing.T) {
	nb := mustBalance(t,
		Coin{Denom: "uperun", Amount: NewUint128FromUint64(1000)},
		Coin{Denom: "atom", Amount: NewUint128FromUint64(42)},
	)

	enc, err := Encode(nb)
	require.NoError(t, err)

	var got NativeBalance
	require.NoError(t, Decode(enc, &got))
	require.True(t, nb.Equal(got))
	require.Equal(t, []string{"atom", "uperun"}, got.Denoms())
}

func TestNativeBalanceEncodingIsDeterministic(t *testing.T) {
	a := mustBalance(t,
		Coin{Denom: "zzz", Amount: NewUint128FromUint64(1)},
		Coin{Denom: "aaa", Amount: NewUint128FromUint64(2)},
	)
	b := mustBalance(t,
		Coin{Denom: "aaa", Amount: NewUint128FromUint64(2)},
		Coin{Denom: "zzz", Amount: NewUint128FromUint64(1)},
	)

	encA, err := Encode(a)
	require.NoError(t, err)
	encB, err := Encode(b)
	require.NoError(t, err)
	require.Equal(t, encA, encB)
}

func TestNativeBalanceZeroAmountSuppressed(t *testing.T) {
	nb := mustBalance(t,
		Coin{Denom: "uperun", Amount: NewUint128FromUint64(5)},
		Coin{Denom: "uperun", Amount: ZeroUint128()},
		Coin{Denom: "atom", Amount: NewUint128FromUint64(0)},
	)
	require.Equal(t, []string{"uperun"}, nb.Denoms())
}

func TestStateRoundTrip(t *testing.T) {
	var id ID
	id[0] = 0xAB

	s := State{
		ChannelID: id,
		Version:   7,
		Balances: []NativeBalance{
			mustBalance(t, Coin{Denom: "uperun", Amount: NewUint128FromUint64(100)}),
			mustBalance(t),
		},
		Finalized: true,
	}

	enc, err := Encode(s)
	require.NoError(t, err)

	var got State
	require.NoError(t, Decode(enc, &got))
	require.Equal(t, s.ChannelID, got.ChannelID)
	require.Equal(t, s.Version, got.Version)
	require.Equal(t, s.Finalized, got.Finalized)
	require.Len(t, got.Balances, 2)
	require.True(t, s.Balances[0].Equal(got.Balances[0]))
}

func TestParamsRoundTrip(t *testing.T) {
	var pk1, pk2 PubKey
	pk1[0] = 0x02
	pk2[0] = 0x03

	p := Params{
		Participants:    []PubKey{pk1, pk2},
		DisputeDuration: 3600,
	}
	p.Nonce[0] = 0x11

	enc, err := Encode(p)
	require.NoError(t, err)

	var got Params
	require.NoError(t, Decode(enc, &got))
	require.Equal(t, p, got)
}

func TestDisputeRoundTripActive(t *testing.T) {
	d := Dispute{
		State:     State{Version: 3},
		Timeout:   1234,
		Concluded: false,
	}

	enc, err := Encode(d)
	require.NoError(t, err)

	var got Dispute
	require.NoError(t, Decode(enc, &got))
	require.Equal(t, d.State.Version, got.State.Version)
	require.Equal(t, d.Timeout, got.Timeout)
	require.False(t, got.Concluded)
}

func TestDisputeRoundTripConcluded(t *testing.T) {
	d := Dispute{
		State:     State{Version: 9},
		Timeout:   0,
		Concluded: true,
	}

	enc, err := Encode(d)
	require.NoError(t, err)

	var got Dispute
	require.NoError(t, Decode(enc, &got))
	require.Equal(t, d.State.Version, got.State.Version)
	require.Zero(t, got.Timeout)
	require.True(t, got.Concluded)
}

func TestDisputeDecodeUnknownVariant(t *testing.T) {
	var got Dispute
	err := Decode([]byte{0xFF}, &got)
	require.ErrorIs(t, err, ErrUnknownVariant)
}

func TestDecodeRejectsTrailingBytes(t *testing.T) {
	var id ID
	enc, err := Encode(id)
	require.NoError(t, err)
	enc = append(enc, 0x00)

	var got ID
	err = Decode(enc, &got)
	require.ErrorIs(t, err, ErrTrailingBytes)
}

func TestWithdrawalRoundTrip(t *testing.T) {
	var id ID
	id[1] = 0x05
	var pk PubKey
	pk[0] = 0x02

	wd := Withdrawal{ChannelID: id, Part: pk, Receiver: "perun1abc..."}

	enc, err := Encode(wd)
	require.NoError(t, err)

	var got Withdrawal
	require.NoError(t, Decode(enc, &got))
	require.Equal(t, wd, got)
}

func TestFundingIDDeterministic(t *testing.T) {
	var id ID
	id[0] = 0x42
	var pk PubKey
	pk[0] = 0x02

	fid1, err := FundingID(id, pk)
	require.NoError(t, err)
	fid2, err := FundingID(id, pk)
	require.NoError(t, err)
	require.Equal(t, fid1, fid2)

	pk[0] = 0x03
	fid3, err := FundingID(id, pk)
	require.NoError(t, err)
	require.NotEqual(t, fid1, fid3)
}
