// Package types contains types for the dispute engine module.
package types

import "encoding/binary"

const (
	// ModuleName is the name of the dispute module.
	ModuleName = "lrp_dispute"

	// StoreKey is the store key for the dispute module.
	StoreKey = ModuleName

	// RouterKey is the router key for the dispute module.
	RouterKey = ModuleName
)

// Key prefixes for the dispute store.
var (
	// DisputePrefix is the prefix for a dispute record, keyed by payment hash
	// (at most one live dispute per payment).
	DisputePrefix = []byte{0x01}

	// FinalizingQueuePrefix is the prefix for FinalizingDisputeQueue, an
	// insertion-ordered range of payment hashes awaiting finalization.
	FinalizingQueuePrefix = []byte{0x02}

	// ParamsKey is the key for module parameters.
	ParamsKey = []byte{0x10}

	// FinalizingQueueSequenceKey holds the FinalizingDisputeQueue insertion
	// counter.
	FinalizingQueueSequenceKey = []byte{0x20}
)

// BuildDisputeKey builds the key for a dispute record.
func BuildDisputeKey(paymentHash [32]byte) []byte {
	key := make([]byte, 0, len(DisputePrefix)+32)
	key = append(key, DisputePrefix...)
	return append(key, paymentHash[:]...)
}

// BuildFinalizingQueueKey builds an insertion-ordered key into
// FinalizingDisputeQueue, the same (sequence, content hash) range idiom used
// by the payment engine's own queues.
func BuildFinalizingQueueKey(seq uint64, paymentHash [32]byte) []byte {
	key := make([]byte, 0, len(FinalizingQueuePrefix)+8+32)
	key = append(key, FinalizingQueuePrefix...)
	var seqBuf [8]byte
	binary.BigEndian.PutUint64(seqBuf[:], seq)
	key = append(key, seqBuf[:]...)
	return append(key, paymentHash[:]...)
}
