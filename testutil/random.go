// Package testutil provides randomized fixture generators for the
// channel and core packages' tests. It mirrors original_source's
// tests/common/random.rs helpers, grounded in the teacher's lnwire
// test convention of threading a single seeded *rand.Rand through a
// tree of generator functions (see lnwire/message_test.go's
// newMsgOpenChannel(t, r)).
package testutil

import (
	"fmt"
	"math/rand"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/perunnetwork/cosmwasm-adjudicator/channel"
)

// RandomNonce fills a channel nonce with pseudo-random bytes.
func RandomNonce(r *rand.Rand) [channel.NonceSize]byte {
	var nonce [channel.NonceSize]byte
	r.Read(nonce[:])
	return nonce
}

// RandomAccount generates a fresh secp256k1 keypair. Key generation
// itself always draws from crypto/rand: the decred library has no
// seeded-rand constructor, so only the number of keys drawn, not their
// bytes, is controlled by r.
func RandomAccount(r *rand.Rand) (*secp256k1.PrivateKey, channel.PubKey) {
	priv, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		panic(fmt.Sprintf("testutil: generating account: %v", err))
	}
	var pk channel.PubKey
	copy(pk[:], priv.PubKey().SerializeCompressed())
	return priv, pk
}

// RandomPart generates a single participant public key, discarding its
// private key.
func RandomPart(r *rand.Rand) channel.PubKey {
	_, pk := RandomAccount(r)
	return pk
}

// RandomParts generates n distinct participant public keys.
func RandomParts(r *rand.Rand, n int) []channel.PubKey {
	parts := make([]channel.PubKey, n)
	for i := range parts {
		parts[i] = RandomPart(r)
	}
	return parts
}

// RandomDisputeDuration returns a duration in [1, 600) seconds.
func RandomDisputeDuration(r *rand.Rand) uint64 {
	return uint64(1 + r.Intn(599))
}

// RandomVersion returns a pseudo-random state version.
func RandomVersion(r *rand.Rand) uint64 {
	return uint64(r.Uint32())
}

// RandomFinalized flips a fair coin.
func RandomFinalized(r *rand.Rand) bool {
	return r.Intn(2) == 1
}

// RandomParams builds a Params with numParts participants.
func RandomParams(r *rand.Rand, numParts int) channel.Params {
	return channel.Params{
		Nonce:           RandomNonce(r),
		Participants:    RandomParts(r, numParts),
		DisputeDuration: RandomDisputeDuration(r),
	}
}

// RandomBalance builds a NativeBalance over 0-8 distinct synthetic
// denoms with pseudo-random amounts.
func RandomBalance(r *rand.Rand) channel.NativeBalance {
	numCoins := r.Intn(9)
	coins := make([]channel.Coin, numCoins)
	for i := range coins {
		coins[i] = channel.Coin{
			Denom:  fmt.Sprintf("asset-#%d", i),
			Amount: channel.NewUint128FromUint64(r.Uint64()),
		}
	}
	bal, err := channel.NewNativeBalance(coins...)
	if err != nil {
		panic(fmt.Sprintf("testutil: building balance: %v", err))
	}
	return bal
}

// RandomBalances builds one balance per participant.
func RandomBalances(r *rand.Rand, numParts int) []channel.NativeBalance {
	balances := make([]channel.NativeBalance, numParts)
	for i := range balances {
		balances[i] = RandomBalance(r)
	}
	return balances
}

// RandomState builds a matching (Params, State) pair: the state's
// ChannelID is derived from params, so the two must always travel
// together.
func RandomState(r *rand.Rand) (channel.Params, channel.State) {
	numParts := 1 + r.Intn(9)
	params := RandomParams(r, numParts)
	channelID, err := channel.ChannelID(params)
	if err != nil {
		panic(fmt.Sprintf("testutil: deriving channel id: %v", err))
	}
	state := channel.State{
		ChannelID: channelID,
		Version:   RandomVersion(r),
		Balances:  RandomBalances(r, numParts),
		Finalized: RandomFinalized(r),
	}
	return params, state
}
