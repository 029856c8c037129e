// Package channel defines the wire types of the state-channel adjudicator:
// Params, State, Dispute, Withdrawal, Funding and NativeBalance, along with
// their canonical (BCS-style) binary encoding. The encoding is the pre-image
// of every hash and every signature the adjudicator verifies, so it must
// stay byte-for-byte stable across Go and the off-chain Perun client.
package channel

import "fmt"

// NonceSize is the fixed width of a channel's nonce, matching the original
// contract's Nonce newtype.
const NonceSize = 32

// HashSize is the width of every content hash (channel IDs, funding IDs).
const HashSize = 32

// PubKeySize is the SEC1-compressed secp256k1 public key length.
const PubKeySize = 33

// SigSize is the compact secp256k1 signature length.
const SigSize = 64

// ID is an opaque 32-byte content hash: a ChannelID or FundingID.
type ID [HashSize]byte

// String renders the ID as a hex string for logs and CLI output.
func (id ID) String() string {
	return fmt.Sprintf("%x", id[:])
}

// IsZero reports whether id is the zero value, used to detect an
// uninitialized ID before it has been derived.
func (id ID) IsZero() bool {
	return id == ID{}
}

// PubKey is a SEC1-compressed secp256k1 public key identifying a
// participant's off-chain signing key.
type PubKey [PubKeySize]byte

// Params are a channel's immutable parameters. The channel's ID is the hash
// of its canonical encoding, so any change to a field changes the ID.
type Params struct {
	// Nonce disambiguates channels whose other fields are identical.
	Nonce [NonceSize]byte
	// Participants is the ordered sequence of off-chain public keys.
	// Order is significant: it indexes State.Balances and signature lists.
	Participants []PubKey
	// DisputeDuration is the non-negative length, in seconds, of the
	// dispute timeout window.
	DisputeDuration uint64
}

// State is a versioned snapshot of a channel's balances.
type State struct {
	ChannelID ID
	Version   uint64
	Balances  []NativeBalance
	Finalized bool
}

// disputeVariant tags the two encoded forms of Dispute (§4.1, §9: the
// sum-type Dispute is the pinned representation).
type disputeVariant byte

const (
	disputeActive    disputeVariant = 0
	disputeConcluded disputeVariant = 1
)

// Dispute is the on-chain record of a (possibly contested) channel state.
// It is modelled as a sum type: either Active (with a live timeout) or
// Concluded (terminal). This mirrors original_source's DisputeState enum,
// the pinned Open Question decision recorded in DESIGN.md.
type Dispute struct {
	State     State
	Timeout   uint64 // unix seconds; meaningless once Concluded
	Concluded bool
}

// Withdrawal authorises moving a concluded outcome to an arbitrary on-chain
// receiver. It is transient: it exists only for the duration of a Withdraw
// call and is never itself persisted.
type Withdrawal struct {
	ChannelID ID
	Part      PubKey
	Receiver  string // host-defined on-chain address encoding
}

// Funding binds a channel to one participant's deposit slot. Its canonical
// encoding is hashed to derive a FundingID; Funding values are never stored
// directly.
type Funding struct {
	ChannelID ID
	Part      PubKey
}

// Coin is a single (denom, amount) pair, the unit NativeBalance aggregates.
type Coin struct {
	Denom  string
	Amount Uint128
}
