package channel_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/perunnetwork/cosmwasm-adjudicator/channel"
	"github.com/perunnetwork/cosmwasm-adjudicator/testutil"
)

func TestRandomStateRoundTripAndSign(t *testing.T) {
	r := rand.New(rand.NewSource(42))

	for i := 0; i < 20; i++ {
		params, state := testutil.RandomState(r)

		encState, err := channel.Encode(state)
		require.NoError(t, err)
		var gotState channel.State
		require.NoError(t, channel.Decode(encState, &gotState))
		require.Equal(t, state, gotState)

		encParams, err := channel.Encode(params)
		require.NoError(t, err)
		var gotParams channel.Params
		require.NoError(t, channel.Decode(encParams, &gotParams))
		require.Equal(t, params, gotParams)

		cid, err := channel.ChannelID(params)
		require.NoError(t, err)
		require.Equal(t, state.ChannelID, cid)

		priv, pub := testutil.RandomAccount(r)
		sig, err := channel.Sign(priv, state)
		require.NoError(t, err)
		require.NoError(t, channel.Verify(state, pub, sig[:]))
	}
}

func TestRandomBalanceConservation(t *testing.T) {
	r := rand.New(rand.NewSource(7))

	for i := 0; i < 20; i++ {
		bal := testutil.RandomBalance(r)
		require.True(t, bal.GreaterOrEqual(bal))
		require.True(t, bal.Equal(bal))
	}
}
