package channel

import "errors"

// Codec-level structural errors. These are distinct from the adjudicator's
// closed error taxonomy (package adjerrors) — they signal a malformed wire
// object, not a state-machine rule violation.
var (
	ErrTrailingBytes  = errors.New("channel: trailing bytes after decode")
	ErrMalformedBool  = errors.New("channel: malformed boolean byte")
	ErrLengthTooLarge = errors.New("channel: encoded sequence length exceeds bound")
	ErrUnknownVariant = errors.New("channel: unknown dispute variant tag")
	ErrAmountOverflow = errors.New("channel: amount overflows uint128")
)
