package channel

import (
	"crypto/sha256"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/perunnetwork/cosmwasm-adjudicator/adjerrors"
)

// SigDomainPrefix is prepended to the canonical encoding of every signed
// object, binding signatures to this protocol (spec.md §4.2, §9). Identifier
// hashes (ChannelID, FundingID) use the empty prefix instead — do not unify
// the two.
const SigDomainPrefix = "GO-PERUN/COSMWASM"

// Hash returns SHA-256(prefix || encode(obj)).
func Hash(obj Encodable, prefix string) (ID, error) {
	enc, err := Encode(obj)
	if err != nil {
		return ID{}, err
	}
	h := sha256.New()
	h.Write([]byte(prefix))
	h.Write(enc)
	var out ID
	copy(out[:], h.Sum(nil))
	return out, nil
}

// signDigest returns the digest that Sign and Verify operate on: the
// domain-separated hash of obj's canonical encoding.
func signDigest(obj Encodable) ([]byte, error) {
	id, err := Hash(obj, SigDomainPrefix)
	if err != nil {
		return nil, err
	}
	return id[:], nil
}

// Sign produces a 64-byte compact (R||S) secp256k1 signature over obj's
// domain-separated digest. Only tests call this — the adjudicator itself
// only ever verifies.
func Sign(key *secp256k1.PrivateKey, obj Encodable) ([SigSize]byte, error) {
	var out [SigSize]byte
	digest, err := signDigest(obj)
	if err != nil {
		return out, err
	}
	sig := ecdsa.Sign(key, digest)
	r := sig.R().Bytes()
	s := sig.S().Bytes()
	copy(out[0:32], r[:])
	copy(out[32:64], s[:])
	return out, nil
}

// Verify checks sig against pubKey over obj's domain-separated digest.
// Returns ErrInvalidSignature for structurally malformed key/signature
// bytes, ErrWrongSignature for a well-formed but incorrect signature, and
// nil on success (spec.md §4.2).
func Verify(obj Encodable, pubKey PubKey, sig []byte) error {
	if len(sig) != SigSize {
		return adjerrors.ErrInvalidSignature
	}

	pk, err := secp256k1.ParsePubKey(pubKey[:])
	if err != nil {
		return adjerrors.ErrInvalidSignature
	}

	var r, s secp256k1.ModNScalar
	if overflow := r.SetByteSlice(sig[0:32]); overflow {
		return adjerrors.ErrInvalidSignature
	}
	if overflow := s.SetByteSlice(sig[32:64]); overflow {
		return adjerrors.ErrInvalidSignature
	}
	ecSig := ecdsa.NewSignature(&r, &s)

	digest, err := signDigest(obj)
	if err != nil {
		return adjerrors.ErrInvalidSignature
	}

	if !ecSig.Verify(digest, pk) {
		return adjerrors.ErrWrongSignature
	}
	return nil
}
