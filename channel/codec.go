package channel

import (
	"bytes"
	"encoding/binary"
	"io"
)

// Encodable is any wire object that knows how to write its own canonical
// encoding. Every signed or hashed object in this package implements it.
//
// code derived from the element-at-a-time encode/decode style used
// throughout lnwire (writeElements/readElements): each object composes its
// own Encode/Decode out of the primitive helpers below, in declaration
// order, with no map iteration and no floating point (spec.md §4.1).
type Encodable interface {
	Encode(w io.Writer) error
}

// Decodable is the inverse of Encodable.
type Decodable interface {
	Decode(r io.Reader) error
}

// Encode returns the canonical encoding of obj.
func Encode(obj Encodable) ([]byte, error) {
	var buf bytes.Buffer
	if err := obj.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode parses the canonical encoding of obj from data, requiring that the
// entire input is consumed.
func Decode(data []byte, obj Decodable) error {
	r := bytes.NewReader(data)
	if err := obj.Decode(r); err != nil {
		return err
	}
	if r.Len() != 0 {
		return ErrTrailingBytes
	}
	return nil
}

// --- primitive helpers -----------------------------------------------------

func writeUint64(w io.Writer, v uint64) error {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	_, err := w.Write(b[:])
	return err
}

func readUint64(r io.Reader) (uint64, error) {
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b[:]), nil
}

func writeBool(w io.Writer, v bool) error {
	var b [1]byte
	if v {
		b[0] = 1
	}
	_, err := w.Write(b[:])
	return err
}

func readBool(r io.Reader) (bool, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return false, err
	}
	switch b[0] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, ErrMalformedBool
	}
}

func writeFixed(w io.Writer, b []byte) error {
	_, err := w.Write(b)
	return err
}

func readFixed(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	return err
}

// writeVarBytes writes a varint-length-prefixed byte string.
func writeVarBytes(w io.Writer, b []byte) error {
	var lenBuf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(lenBuf[:], uint64(len(b)))
	if _, err := w.Write(lenBuf[:n]); err != nil {
		return err
	}
	_, err := w.Write(b)
	return err
}

// readVarBytes reads a varint-length-prefixed byte string, bounded by max to
// guard against malicious/garbage length prefixes.
func readVarBytes(r io.Reader, max uint64) ([]byte, error) {
	length, err := readUvarint(r)
	if err != nil {
		return nil, err
	}
	if length > max {
		return nil, ErrLengthTooLarge
	}
	out := make([]byte, length)
	if _, err := io.ReadFull(r, out); err != nil {
		return nil, err
	}
	return out, nil
}

func readUvarint(r io.Reader) (uint64, error) {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = &byteReaderAdapter{r}
	}
	return binary.ReadUvarint(br)
}

type byteReaderAdapter struct{ io.Reader }

func (b *byteReaderAdapter) ReadByte() (byte, error) {
	var buf [1]byte
	if _, err := io.ReadFull(b.Reader, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// maxSeqLen bounds every varint-prefixed sequence length we decode, so a
// corrupt length prefix cannot trigger an unbounded allocation.
const maxSeqLen = 1 << 20

// --- ID / PubKey ------------------------------------------------------------

func (id ID) Encode(w io.Writer) error { return writeFixed(w, id[:]) }

func (id *ID) Decode(r io.Reader) error { return readFixed(r, id[:]) }

func (k PubKey) Encode(w io.Writer) error { return writeFixed(w, k[:]) }

func (k *PubKey) Decode(r io.Reader) error { return readFixed(r, k[:]) }

// --- Coin / NativeBalance ----------------------------------------------------

// Encode writes NativeBalance as a denom-sorted sequence of (string, 16-byte
// big-endian amount) pairs, zero-amount denoms suppressed (spec.md §4.1,
// §4.4). This is the canonical, signed, hashed form.
func (nb NativeBalance) Encode(w io.Writer) error {
	denoms := nb.Denoms()
	var lenBuf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(lenBuf[:], uint64(len(denoms)))
	if _, err := w.Write(lenBuf[:n]); err != nil {
		return err
	}
	for _, d := range denoms {
		if err := writeVarBytes(w, []byte(d)); err != nil {
			return err
		}
		amt := nb.Amount(d).Bytes16()
		if err := writeFixed(w, amt[:]); err != nil {
			return err
		}
	}
	return nil
}

// Decode parses a NativeBalance. Input must already be denom-sorted and
// zero-free (the encoder's invariant); a malformed reordering would still
// decode, since decode is a pure structural inverse, but would then fail to
// re-encode to the same bytes.
func (nb *NativeBalance) Decode(r io.Reader) error {
	count, err := readUvarint(r)
	if err != nil {
		return err
	}
	if count > maxSeqLen {
		return ErrLengthTooLarge
	}
	coins := make([]Coin, 0, count)
	for i := uint64(0); i < count; i++ {
		denomBytes, err := readVarBytes(r, maxSeqLen)
		if err != nil {
			return err
		}
		var amtBuf [16]byte
		if err := readFixed(r, amtBuf[:]); err != nil {
			return err
		}
		coins = append(coins, Coin{
			Denom:  string(denomBytes),
			Amount: Uint128FromBytes(amtBuf),
		})
	}
	built, err := NewNativeBalance(coins...)
	if err != nil {
		return err
	}
	*nb = built
	return nil
}

// --- Params -------------------------------------------------------------

func (p Params) Encode(w io.Writer) error {
	if err := writeFixed(w, p.Nonce[:]); err != nil {
		return err
	}
	var lenBuf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(lenBuf[:], uint64(len(p.Participants)))
	if _, err := w.Write(lenBuf[:n]); err != nil {
		return err
	}
	for _, pk := range p.Participants {
		if err := pk.Encode(w); err != nil {
			return err
		}
	}
	return writeUint64(w, p.DisputeDuration)
}

func (p *Params) Decode(r io.Reader) error {
	if err := readFixed(r, p.Nonce[:]); err != nil {
		return err
	}
	count, err := readUvarint(r)
	if err != nil {
		return err
	}
	if count > maxSeqLen {
		return ErrLengthTooLarge
	}
	participants := make([]PubKey, count)
	for i := range participants {
		if err := participants[i].Decode(r); err != nil {
			return err
		}
	}
	p.Participants = participants
	dur, err := readUint64(r)
	if err != nil {
		return err
	}
	p.DisputeDuration = dur
	return nil
}

// --- State -------------------------------------------------------------

func (s State) Encode(w io.Writer) error {
	if err := s.ChannelID.Encode(w); err != nil {
		return err
	}
	if err := writeUint64(w, s.Version); err != nil {
		return err
	}
	var lenBuf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(lenBuf[:], uint64(len(s.Balances)))
	if _, err := w.Write(lenBuf[:n]); err != nil {
		return err
	}
	for _, b := range s.Balances {
		if err := b.Encode(w); err != nil {
			return err
		}
	}
	return writeBool(w, s.Finalized)
}

func (s *State) Decode(r io.Reader) error {
	if err := s.ChannelID.Decode(r); err != nil {
		return err
	}
	v, err := readUint64(r)
	if err != nil {
		return err
	}
	s.Version = v
	count, err := readUvarint(r)
	if err != nil {
		return err
	}
	if count > maxSeqLen {
		return ErrLengthTooLarge
	}
	balances := make([]NativeBalance, count)
	for i := range balances {
		if err := balances[i].Decode(r); err != nil {
			return err
		}
	}
	s.Balances = balances
	fin, err := readBool(r)
	if err != nil {
		return err
	}
	s.Finalized = fin
	return nil
}

// --- Dispute -------------------------------------------------------------

// Encode writes the sum-type tag followed by the active variant's payload.
func (d Dispute) Encode(w io.Writer) error {
	if d.Concluded {
		if _, err := w.Write([]byte{byte(disputeConcluded)}); err != nil {
			return err
		}
		return d.State.Encode(w)
	}
	if _, err := w.Write([]byte{byte(disputeActive)}); err != nil {
		return err
	}
	if err := d.State.Encode(w); err != nil {
		return err
	}
	return writeUint64(w, d.Timeout)
}

func (d *Dispute) Decode(r io.Reader) error {
	var tag [1]byte
	if _, err := io.ReadFull(r, tag[:]); err != nil {
		return err
	}
	switch disputeVariant(tag[0]) {
	case disputeActive:
		if err := d.State.Decode(r); err != nil {
			return err
		}
		timeout, err := readUint64(r)
		if err != nil {
			return err
		}
		d.Timeout = timeout
		d.Concluded = false
		return nil
	case disputeConcluded:
		if err := d.State.Decode(r); err != nil {
			return err
		}
		d.Timeout = 0
		d.Concluded = true
		return nil
	default:
		return ErrUnknownVariant
	}
}

// --- Withdrawal -------------------------------------------------------------

func (wd Withdrawal) Encode(w io.Writer) error {
	if err := wd.ChannelID.Encode(w); err != nil {
		return err
	}
	if err := wd.Part.Encode(w); err != nil {
		return err
	}
	return writeVarBytes(w, []byte(wd.Receiver))
}

func (wd *Withdrawal) Decode(r io.Reader) error {
	if err := wd.ChannelID.Decode(r); err != nil {
		return err
	}
	if err := wd.Part.Decode(r); err != nil {
		return err
	}
	receiver, err := readVarBytes(r, maxSeqLen)
	if err != nil {
		return err
	}
	wd.Receiver = string(receiver)
	return nil
}

// --- Funding -------------------------------------------------------------

func (f Funding) Encode(w io.Writer) error {
	if err := f.ChannelID.Encode(w); err != nil {
		return err
	}
	return f.Part.Encode(w)
}

func (f *Funding) Decode(r io.Reader) error {
	if err := f.ChannelID.Decode(r); err != nil {
		return err
	}
	return f.Part.Decode(r)
}
