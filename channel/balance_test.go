package channel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNativeBalanceGreaterOrEqualUniversalQuantifier(t *testing.T) {
	a := mustBalance(t,
		Coin{Denom: "atom", Amount: NewUint128FromUint64(10)},
		Coin{Denom: "uperun", Amount: NewUint128FromUint64(5)},
	)
	b := mustBalance(t,
		Coin{Denom: "atom", Amount: NewUint128FromUint64(10)},
		Coin{Denom: "uperun", Amount: NewUint128FromUint64(5)},
	)
	require.True(t, a.GreaterOrEqual(b))

	short := mustBalance(t, Coin{Denom: "atom", Amount: NewUint128FromUint64(1)})
	require.True(t, a.GreaterOrEqual(short))

	over := mustBalance(t, Coin{Denom: "uperun", Amount: NewUint128FromUint64(6)})
	require.False(t, a.GreaterOrEqual(over))
}

// TestNativeBalanceGreaterOrEqualIsPartialOrder exercises a pair of balances
// where neither dominates the other across every denom: the universal
// quantifier must reject both directions, not accept either on a
// single-denom match (the bug the existential-quantifier variant had).
func TestNativeBalanceGreaterOrEqualIsPartialOrder(t *testing.T) {
	a := mustBalance(t,
		Coin{Denom: "atom", Amount: NewUint128FromUint64(10)},
		Coin{Denom: "uperun", Amount: NewUint128FromUint64(1)},
	)
	b := mustBalance(t,
		Coin{Denom: "atom", Amount: NewUint128FromUint64(1)},
		Coin{Denom: "uperun", Amount: NewUint128FromUint64(10)},
	)
	require.False(t, a.GreaterOrEqual(b))
	require.False(t, b.GreaterOrEqual(a))
}

func TestNativeBalanceAddOverflow(t *testing.T) {
	max := Uint128FromBytes([16]byte{
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	})
	a := mustBalance(t, Coin{Denom: "uperun", Amount: max})
	b := mustBalance(t, Coin{Denom: "uperun", Amount: NewUint128FromUint64(1)})

	_, err := a.Add(b)
	require.ErrorIs(t, err, ErrAmountOverflow)
}

func TestNativeBalanceEqual(t *testing.T) {
	a := mustBalance(t, Coin{Denom: "atom", Amount: NewUint128FromUint64(3)})
	b := mustBalance(t, Coin{Denom: "atom", Amount: NewUint128FromUint64(3)})
	c := mustBalance(t, Coin{Denom: "atom", Amount: NewUint128FromUint64(4)})

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
}

func TestUint128Bytes16RoundTrip(t *testing.T) {
	u := NewUint128FromUint64(123456789)
	got := Uint128FromBytes(u.Bytes16())
	require.Equal(t, 0, u.Cmp(got))
}
