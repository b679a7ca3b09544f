package types

import "encoding/binary"

const (
	// ModuleName is the name of the resolvers module.
	ModuleName = "lrp_resolvers"
	// StoreKey is the store key for the resolvers module.
	StoreKey = ModuleName
	// RouterKey is the message route for the resolvers module.
	RouterKey = ModuleName
)

var (
	// ResolverPrefix prefixes resolver records, keyed by owner.
	ResolverPrefix = []byte{0x01}
	// ActiveResolverIndexPrefix indexes owners currently in ActiveResolvers.
	ActiveResolverIndexPrefix = []byte{0x02}
	// PendingFundQueuePrefix prefixes the release-time-ordered pending fund queue.
	PendingFundQueuePrefix = []byte{0x03}
	// ParamsKey stores the module parameters.
	ParamsKey = []byte{0x10}
	// PendingFundSequenceKey stores the monotonic pending-fund sequence counter,
	// used to break ties between funds releasing at the same timestamp.
	PendingFundSequenceKey = []byte{0x20}
)

// BuildResolverKey returns the store key for a resolver owned by owner.
func BuildResolverKey(owner string) []byte {
	return append(append([]byte{}, ResolverPrefix...), []byte(owner)...)
}

// BuildActiveResolverKey returns the store key for owner's membership marker
// in the ActiveResolvers index.
func BuildActiveResolverKey(owner string) []byte {
	return append(append([]byte{}, ActiveResolverIndexPrefix...), []byte(owner)...)
}

// BuildPendingFundQueueKey returns the ordered queue key for a pending fund
// releasing at releaseAt, disambiguated by a monotonic sequence number, the
// same release-time-ordered-queue idiom as the teacher's
// GetUnbondingQueueKey(completionTime).
func BuildPendingFundQueueKey(releaseAt int64, seq uint64) []byte {
	key := make([]byte, 0, len(PendingFundQueuePrefix)+8+8)
	key = append(key, PendingFundQueuePrefix...)
	var tbuf [8]byte
	binary.BigEndian.PutUint64(tbuf[:], uint64(releaseAt))
	key = append(key, tbuf[:]...)
	var sbuf [8]byte
	binary.BigEndian.PutUint64(sbuf[:], seq)
	return append(key, sbuf[:]...)
}
