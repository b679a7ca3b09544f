// Package types contains types for the payment engine module.
package types

import "encoding/binary"

const (
	// ModuleName is the name of the payment module.
	ModuleName = "lrp_payment"

	// StoreKey is the store key for the payment module.
	StoreKey = ModuleName

	// RouterKey is the router key for the payment module.
	RouterKey = ModuleName
)

// Key prefixes for the payment store.
var (
	// PaymentPrefix is the prefix for a payment record, keyed by payment hash.
	PaymentPrefix = []byte{0x01}

	// PendingQueuePrefix is the prefix for PendingPaymentQueue, an
	// insertion-ordered range of Pending payment hashes.
	PendingQueuePrefix = []byte{0x02}

	// FulfilledQueuePrefix is the prefix for FulfilledPaymentQueue, an
	// insertion-ordered range of Fulfilled payment hashes.
	FulfilledQueuePrefix = []byte{0x03}

	// ParamsKey is the key for module parameters.
	ParamsKey = []byte{0x10}

	// LatestPaymentIDKey holds the monotonic payment ID counter.
	LatestPaymentIDKey = []byte{0x20}

	// PendingQueueSequenceKey holds the PendingPaymentQueue insertion counter.
	PendingQueueSequenceKey = []byte{0x21}

	// FulfilledQueueSequenceKey holds the FulfilledPaymentQueue insertion counter.
	FulfilledQueueSequenceKey = []byte{0x22}
)

// BuildPaymentKey builds the key for a payment record.
func BuildPaymentKey(hash [32]byte) []byte {
	key := make([]byte, 0, len(PaymentPrefix)+32)
	key = append(key, PaymentPrefix...)
	return append(key, hash[:]...)
}

// BuildPendingQueueKey builds an insertion-ordered key into
// PendingPaymentQueue, the same (sequence, content hash) range idiom the
// dispute engine uses for its finalizing queue.
func BuildPendingQueueKey(seq uint64, hash [32]byte) []byte {
	return buildQueueKey(PendingQueuePrefix, seq, hash)
}

// BuildFulfilledQueueKey builds an insertion-ordered key into
// FulfilledPaymentQueue.
func BuildFulfilledQueueKey(seq uint64, hash [32]byte) []byte {
	return buildQueueKey(FulfilledQueuePrefix, seq, hash)
}

func buildQueueKey(prefix []byte, seq uint64, hash [32]byte) []byte {
	key := make([]byte, 0, len(prefix)+8+32)
	key = append(key, prefix...)
	var seqBuf [8]byte
	binary.BigEndian.PutUint64(seqBuf[:], seq)
	key = append(key, seqBuf[:]...)
	return append(key, hash[:]...)
}
