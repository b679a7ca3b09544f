// Package offchainstore implements platform.OffchainIndex directly against
// the node's underlying key/value database rather than the consensus
// CommitMultiStore, mirroring the Cosmos SDK's own offchain_index: blobs
// written here (receipts, dispute arguments, reviews, resolver
// applications) never enter the app hash, so divergent local copies across
// nodes are by design, not a bug.
package offchainstore

import dbm "github.com/cosmos/cosmos-db"

const keyPrefix = "offchain/"

// Store adapts a raw dbm.DB into platform.OffchainIndex.
type Store struct {
	db dbm.DB
}

// New wraps db as an offchain blob index.
func New(db dbm.DB) *Store {
	return &Store{db: db}
}

// Set implements platform.OffchainIndex. Write failures are logged nowhere
// by design — the interface has no error return because callers never
// block on this succeeding (see platform.OffchainIndex's doc comment).
func (s *Store) Set(key, value []byte) {
	_ = s.db.Set(append([]byte(keyPrefix), key...), value)
}
