package core_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/require"

	"github.com/perunnetwork/cosmwasm-adjudicator/adjerrors"
	"github.com/perunnetwork/cosmwasm-adjudicator/bank"
	"github.com/perunnetwork/cosmwasm-adjudicator/channel"
	"github.com/perunnetwork/cosmwasm-adjudicator/core"
	"github.com/perunnetwork/cosmwasm-adjudicator/store"
)

type participant struct {
	priv *secp256k1.PrivateKey
	pub  channel.PubKey
}

func newParticipant(t *testing.T) participant {
	t.Helper()
	priv, err := secp256k1.GeneratePrivateKey()
	require.NoError(t, err)
	var pub channel.PubKey
	copy(pub[:], priv.PubKey().SerializeCompressed())
	return participant{priv: priv, pub: pub}
}

func signState(t *testing.T, parts []participant, state channel.State) [][]byte {
	t.Helper()
	sigs := make([][]byte, len(parts))
	for i, p := range parts {
		sig, err := channel.Sign(p.priv, state)
		require.NoError(t, err)
		sigs[i] = sig[:]
	}
	return sigs
}

func balanceOf(t *testing.T, denom string, amount uint64) channel.NativeBalance {
	t.Helper()
	nb, err := channel.NewNativeBalance(channel.Coin{
		Denom: denom, Amount: channel.NewUint128FromUint64(amount),
	})
	require.NoError(t, err)
	return nb
}

type testEnv struct {
	adj   *core.Adjudicator
	bank   *bank.MemSink
	clock  *fakeClock
	parts  []participant
	params channel.Params
}

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestEnv(t *testing.T, numParts int, disputeDuration uint64) *testEnv {
	t.Helper()
	db, err := store.Open(filepath.Join(t.TempDir(), "adjudicator.db"))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, db.Close()) })

	parts := make([]participant, numParts)
	pubkeys := make([]channel.PubKey, numParts)
	for i := range parts {
		parts[i] = newParticipant(t)
		pubkeys[i] = parts[i].pub
	}

	params := channel.Params{
		Participants:    pubkeys,
		DisputeDuration: disputeDuration,
	}
	params.Nonce[0] = 0x01

	sink := bank.NewMemSink()
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}

	return &testEnv{
		adj:    core.New(db, clock, sink),
		bank:   sink,
		clock:  clock,
		parts:  parts,
		params: params,
	}
}

func (e *testEnv) channelID(t *testing.T) channel.ID {
	t.Helper()
	id, err := channel.ChannelID(e.params)
	require.NoError(t, err)
	return id
}

// TestHappyPathTwoPartyTwoDenom exercises spec.md §8's baseline scenario:
// both participants deposit, agree on a finalized state covering both
// denoms, conclude directly, and withdraw in full.
func TestHappyPathTwoPartyTwoDenom(t *testing.T) {
	env := newTestEnv(t, 2, 3600)
	channelID := env.channelID(t)

	fid0, err := channel.FundingID(channelID, env.parts[0].pub)
	require.NoError(t, err)
	fid1, err := channel.FundingID(channelID, env.parts[1].pub)
	require.NoError(t, err)

	deposit0, err := channel.NewNativeBalance(
		channel.Coin{Denom: "uperun", Amount: channel.NewUint128FromUint64(100)},
		channel.Coin{Denom: "atom", Amount: channel.NewUint128FromUint64(10)},
	)
	require.NoError(t, err)
	deposit1, err := channel.NewNativeBalance(
		channel.Coin{Denom: "uperun", Amount: channel.NewUint128FromUint64(50)},
	)
	require.NoError(t, err)

	require.NoError(t, env.adj.Deposit(fid0, deposit0))
	require.NoError(t, env.adj.Deposit(fid1, deposit1))

	part0Final, err := channel.NewNativeBalance(
		channel.Coin{Denom: "uperun", Amount: channel.NewUint128FromUint64(120)},
		channel.Coin{Denom: "atom", Amount: channel.NewUint128FromUint64(10)},
	)
	require.NoError(t, err)

	final := channel.State{
		ChannelID: channelID,
		Version:   1,
		Balances: []channel.NativeBalance{
			part0Final,
			balanceOf(t, "uperun", 30),
		},
		Finalized: true,
	}

	sigs := signState(t, env.parts, final)
	require.NoError(t, env.adj.Conclude(env.params, final, sigs))

	wd0 := channel.Withdrawal{ChannelID: channelID, Part: env.parts[0].pub, Receiver: "addr0"}
	sig0, err := channel.Sign(env.parts[0].priv, wd0)
	require.NoError(t, err)
	require.NoError(t, env.adj.Withdraw(context.Background(), wd0, sig0[:]))

	wd1 := channel.Withdrawal{ChannelID: channelID, Part: env.parts[1].pub, Receiver: "addr1"}
	sig1, err := channel.Sign(env.parts[1].priv, wd1)
	require.NoError(t, err)
	require.NoError(t, env.adj.Withdraw(context.Background(), wd1, sig1[:]))

	transfers := env.bank.Transfers()
	require.Len(t, transfers, 2)
	require.Equal(t, "addr0", transfers[0].Receiver)
	require.Equal(t, "addr1", transfers[1].Receiver)
}

// TestDisputeVersionOverrideAndTimeout follows spec.md §8 scenario 2: a
// dispute is registered, then overridden by a higher version before the
// timeout, then a stale lower-version update is rejected, then time
// advances past the (sticky) timeout and ConcludeDispute settles.
func TestDisputeVersionOverrideAndTimeout(t *testing.T) {
	env := newTestEnv(t, 2, 60)
	channelID := env.channelID(t)

	fid0, _ := channel.FundingID(channelID, env.parts[0].pub)
	fid1, _ := channel.FundingID(channelID, env.parts[1].pub)
	require.NoError(t, env.adj.Deposit(fid0, balanceOf(t, "uperun", 100)))
	require.NoError(t, env.adj.Deposit(fid1, balanceOf(t, "uperun", 100)))

	v1 := channel.State{
		ChannelID: channelID,
		Version:   1,
		Balances:  []channel.NativeBalance{balanceOf(t, "uperun", 100), balanceOf(t, "uperun", 100)},
	}
	require.NoError(t, env.adj.Dispute(env.params, v1, signState(t, env.parts, v1)))

	v2 := v1
	v2.Version = 2
	v2.Balances = []channel.NativeBalance{balanceOf(t, "uperun", 150), balanceOf(t, "uperun", 50)}
	require.NoError(t, env.adj.Dispute(env.params, v2, signState(t, env.parts, v2)))

	// Stale version rejected.
	err := env.adj.Dispute(env.params, v1, signState(t, env.parts, v1))
	require.ErrorIs(t, err, adjerrors.ErrDisputeVersionTooLow)

	dispute, err := env.adj.QueryDispute(channelID)
	require.NoError(t, err)
	require.Equal(t, uint64(2), dispute.State.Version)

	env.clock.Advance(61 * time.Second)
	require.NoError(t, env.adj.ConcludeDispute(env.params))

	dispute, err = env.adj.QueryDispute(channelID)
	require.NoError(t, err)
	require.True(t, dispute.Concluded)
}

// TestDisputeRejectsWrongSigner exercises §8's tamper scenarios.
func TestDisputeRejectsWrongSigner(t *testing.T) {
	env := newTestEnv(t, 2, 3600)
	channelID := env.channelID(t)

	state := channel.State{
		ChannelID: channelID,
		Version:   1,
		Balances:  []channel.NativeBalance{balanceOf(t, "uperun", 1), balanceOf(t, "uperun", 1)},
	}
	intruder := newParticipant(t)
	sigs := signState(t, env.parts, state)
	sig, err := channel.Sign(intruder.priv, state)
	require.NoError(t, err)
	sigs[0] = sig[:]

	err = env.adj.Dispute(env.params, state, sigs)
	require.Error(t, err)
}

func TestDisputeRejectsMalformedSignature(t *testing.T) {
	env := newTestEnv(t, 2, 3600)
	channelID := env.channelID(t)

	state := channel.State{
		ChannelID: channelID,
		Version:   1,
		Balances:  []channel.NativeBalance{balanceOf(t, "uperun", 1), balanceOf(t, "uperun", 1)},
	}
	sigs := signState(t, env.parts, state)
	sigs[0] = []byte{0x01}

	err := env.adj.Dispute(env.params, state, sigs)
	require.Error(t, err)
}

func TestDisputeRejectsWrongChannelID(t *testing.T) {
	env := newTestEnv(t, 2, 3600)

	var bogus channel.ID
	bogus[0] = 0xFF
	state := channel.State{
		ChannelID: bogus,
		Version:   1,
		Balances:  []channel.NativeBalance{balanceOf(t, "uperun", 1), balanceOf(t, "uperun", 1)},
	}
	sigs := signState(t, env.parts, state)

	err := env.adj.Dispute(env.params, state, sigs)
	require.Error(t, err)
}

// TestConcludePreventsOverWithdrawal exercises the insufficient-deposits
// guard: an outcome exceeding total deposits must never be pushed.
func TestConcludePreventsOverWithdrawal(t *testing.T) {
	env := newTestEnv(t, 2, 3600)
	channelID := env.channelID(t)

	fid0, _ := channel.FundingID(channelID, env.parts[0].pub)
	require.NoError(t, env.adj.Deposit(fid0, balanceOf(t, "uperun", 50)))

	final := channel.State{
		ChannelID: channelID,
		Version:   1,
		Balances:  []channel.NativeBalance{balanceOf(t, "uperun", 100), balanceOf(t, "uperun", 0)},
		Finalized: true,
	}
	sigs := signState(t, env.parts, final)

	err := env.adj.Conclude(env.params, final, sigs)
	require.Error(t, err)
}

// TestWithdrawRejectsSecondAttempt: a second withdrawal against an
// already-emptied deposit must fail rather than double-pay.
func TestWithdrawRejectsSecondAttempt(t *testing.T) {
	env := newTestEnv(t, 1, 3600)
	channelID := env.channelID(t)
	fid0, _ := channel.FundingID(channelID, env.parts[0].pub)
	require.NoError(t, env.adj.Deposit(fid0, balanceOf(t, "uperun", 10)))

	final := channel.State{
		ChannelID: channelID,
		Version:   1,
		Balances:  []channel.NativeBalance{balanceOf(t, "uperun", 10)},
		Finalized: true,
	}
	sigs := signState(t, env.parts, final)
	require.NoError(t, env.adj.Conclude(env.params, final, sigs))

	wd := channel.Withdrawal{ChannelID: channelID, Part: env.parts[0].pub, Receiver: "addr"}
	sig, err := channel.Sign(env.parts[0].priv, wd)
	require.NoError(t, err)

	require.NoError(t, env.adj.Withdraw(context.Background(), wd, sig[:]))
	err = env.adj.Withdraw(context.Background(), wd, sig[:])
	require.Error(t, err)
}

// TestWithdrawRetriesAfterBankFailure: a failing bank sink must leave the
// deposit intact for a later retry, the whole-transaction-reverts guarantee
// of spec.md §5.
type failingSink struct{ fail bool }

func (f *failingSink) Send(context.Context, bank.Transfer) error {
	if f.fail {
		return context.DeadlineExceeded
	}
	return nil
}

func TestWithdrawRetriesAfterBankFailure(t *testing.T) {
	db, err := store.Open(filepath.Join(t.TempDir(), "adjudicator.db"))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, db.Close()) })

	sink := &failingSink{fail: true}
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	adj := core.New(db, clock, sink)

	p := newParticipant(t)
	params := channel.Params{Participants: []channel.PubKey{p.pub}, DisputeDuration: 3600}
	channelID, err := channel.ChannelID(params)
	require.NoError(t, err)
	fid, err := channel.FundingID(channelID, p.pub)
	require.NoError(t, err)
	require.NoError(t, adj.Deposit(fid, balanceOf(t, "uperun", 10)))

	final := channel.State{
		ChannelID: channelID,
		Version:   1,
		Balances:  []channel.NativeBalance{balanceOf(t, "uperun", 10)},
		Finalized: true,
	}
	sig, err := channel.Sign(p.priv, final)
	require.NoError(t, err)
	require.NoError(t, adj.Conclude(params, final, [][]byte{sig[:]}))

	wd := channel.Withdrawal{ChannelID: channelID, Part: p.pub, Receiver: "addr"}
	wdSig, err := channel.Sign(p.priv, wd)
	require.NoError(t, err)

	err = adj.Withdraw(context.Background(), wd, wdSig[:])
	require.Error(t, err)

	deposit, err := adj.QueryDeposit(fid)
	require.NoError(t, err)
	require.True(t, deposit.Equal(balanceOf(t, "uperun", 10)))

	sink.fail = false
	require.NoError(t, adj.Withdraw(context.Background(), wd, wdSig[:]))
}
