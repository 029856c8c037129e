package channel

import (
	"math/big"
	"sort"
)

// maxUint128 is 2^128 - 1, the ceiling every amount and every per-denom sum
// must stay under.
var maxUint128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))

// Uint128 is an unsigned 128-bit amount, encoded on the wire as 16 bytes
// big-endian (spec.md §4.1). It is backed by math/big for arithmetic but
// never allowed to escape the [0, 2^128) range.
type Uint128 struct {
	v *big.Int
}

// ZeroUint128 is the additive identity.
func ZeroUint128() Uint128 {
	return Uint128{v: new(big.Int)}
}

// NewUint128FromUint64 constructs a Uint128 from a native uint64.
func NewUint128FromUint64(n uint64) Uint128 {
	return Uint128{v: new(big.Int).SetUint64(n)}
}

// Uint128FromBytes parses a 16-byte big-endian amount.
func Uint128FromBytes(b [16]byte) Uint128 {
	return Uint128{v: new(big.Int).SetBytes(b[:])}
}

// Uint128FromDecimalString parses a base-10 amount such as the ones used in
// the RPC layer's JSON/text representation of NativeBalance. ok is false
// for a malformed or negative string, or one exceeding 2^128-1.
func Uint128FromDecimalString(s string) (u Uint128, ok bool) {
	v, parsed := new(big.Int).SetString(s, 10)
	if !parsed || v.Sign() < 0 || v.Cmp(maxUint128) > 0 {
		return Uint128{}, false
	}
	return Uint128{v: v}, true
}

// Bytes16 renders the amount as 16 bytes big-endian, zero-padded on the left.
func (u Uint128) Bytes16() [16]byte {
	var out [16]byte
	if u.v == nil {
		return out
	}
	b := u.v.Bytes()
	copy(out[16-len(b):], b)
	return out
}

// IsZero reports whether the amount is zero.
func (u Uint128) IsZero() bool {
	return u.v == nil || u.v.Sign() == 0
}

// Cmp compares two amounts the way big.Int.Cmp does.
func (u Uint128) Cmp(o Uint128) int {
	return u.big().Cmp(o.big())
}

// Add returns u+o and an error if the sum overflows 2^128. Overflow is a
// fatal condition per spec.md §4.4: the adjudicator never silently wraps.
func (u Uint128) Add(o Uint128) (Uint128, error) {
	sum := new(big.Int).Add(u.big(), o.big())
	if sum.Cmp(maxUint128) > 0 {
		return Uint128{}, ErrAmountOverflow
	}
	return Uint128{v: sum}, nil
}

func (u Uint128) big() *big.Int {
	if u.v == nil {
		return new(big.Int)
	}
	return u.v
}

// String renders the amount in base 10.
func (u Uint128) String() string {
	return u.big().String()
}

// NativeBalance is a normalised multi-denom balance: at most one entry per
// denom, sorted by denom for canonical encoding (spec.md §4.1, §4.4).
type NativeBalance struct {
	coins map[string]Uint128
}

// NewNativeBalance builds a normalised NativeBalance from a sequence of
// coins, aggregating duplicate denoms. Zero-amount denoms are suppressed,
// per the normalisation rule in spec.md §4.4.
func NewNativeBalance(coins ...Coin) (NativeBalance, error) {
	nb := NativeBalance{coins: make(map[string]Uint128)}
	for _, c := range coins {
		cur, ok := nb.coins[c.Denom]
		if !ok {
			cur = ZeroUint128()
		}
		sum, err := cur.Add(c.Amount)
		if err != nil {
			return NativeBalance{}, err
		}
		nb.coins[c.Denom] = sum
	}
	nb.prune()
	return nb, nil
}

func (nb *NativeBalance) prune() {
	for d, amt := range nb.coins {
		if amt.IsZero() {
			delete(nb.coins, d)
		}
	}
}

// Denoms returns the balance's denoms in sorted order.
func (nb NativeBalance) Denoms() []string {
	denoms := make([]string, 0, len(nb.coins))
	for d := range nb.coins {
		denoms = append(denoms, d)
	}
	sort.Strings(denoms)
	return denoms
}

// Amount returns the amount held in denom, or zero if absent.
func (nb NativeBalance) Amount(denom string) Uint128 {
	if nb.coins == nil {
		return ZeroUint128()
	}
	if amt, ok := nb.coins[denom]; ok {
		return amt
	}
	return ZeroUint128()
}

// Add returns the per-denom sum of a and b. An overflow on any single
// denom's sum aborts with ErrAmountOverflow (spec.md §4.4).
func (a NativeBalance) Add(b NativeBalance) (NativeBalance, error) {
	out := NativeBalance{coins: make(map[string]Uint128, len(a.coins)+len(b.coins))}
	for d, amt := range a.coins {
		out.coins[d] = amt
	}
	for d, amt := range b.coins {
		cur := out.coins[d]
		sum, err := cur.Add(amt)
		if err != nil {
			return NativeBalance{}, err
		}
		out.coins[d] = sum
	}
	out.prune()
	return out, nil
}

// GreaterOrEqual reports whether a[d] >= b[d] for every denom d present in
// b. This is a partial order: ¬(a≥b) ∧ ¬(b≥a) is possible. The universal
// quantifier is the correct form (spec.md §4.4, §9 — one source variant
// used an existential quantifier by mistake; that variant is not
// reproduced here).
func (a NativeBalance) GreaterOrEqual(b NativeBalance) bool {
	for d, bAmt := range b.coins {
		if a.Amount(d).Cmp(bAmt) < 0 {
			return false
		}
	}
	return true
}

// Equal reports whether a and b hold the same amount in every denom.
func (a NativeBalance) Equal(b NativeBalance) bool {
	return a.GreaterOrEqual(b) && b.GreaterOrEqual(a)
}
