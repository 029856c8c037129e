package channel

// ChannelID derives a channel's identifier from its Params: the SHA-256 of
// the canonical encoding, with the empty domain-separation prefix. Identical
// Params always produce identical IDs; the Nonce field exists precisely so
// that two otherwise-identical Params don't collide (spec.md §4.3).
func ChannelID(p Params) (ID, error) {
	return Hash(p, "")
}

// FundingID derives the identifier binding a channel to one participant's
// deposit slot: the hash of the (channelID, part) pair, empty prefix.
func FundingID(channelID ID, part PubKey) (ID, error) {
	f := Funding{ChannelID: channelID, Part: part}
	return Hash(f, "")
}
