package store

import "fmt"

// Sentinel lookup-miss errors, matching the teacher's channeldb/error.go
// convention of package-level fmt.Errorf values for "not found" conditions.
// These are translated to the adjudicator's closed taxonomy (adjerrors) by
// the core package — store itself knows nothing about adjudicator semantics.
var (
	ErrDepositNotFound = fmt.Errorf("store: no deposit recorded for funding id")
	ErrDisputeNotFound = fmt.Errorf("store: no dispute recorded for channel id")
	ErrNotInitialized  = fmt.Errorf("store: database has not been opened")
)
