package types

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"time"

	sdkmath "cosmossdk.io/math"

	"github.com/lrpchain/lrp/ledger"
)

// Status is the payment state machine's status of spec.md §4.4.
type Status uint8

const (
	StatusPending Status = iota
	StatusAccepted
	StatusRejected
	StatusFulfilled
	StatusDisputed
	StatusCancelled
	StatusExpired
	StatusCompleted
)

var statusNames = map[Status]string{
	StatusPending:   "pending",
	StatusAccepted:  "accepted",
	StatusRejected:  "rejected",
	StatusFulfilled: "fulfilled",
	StatusDisputed:  "disputed",
	StatusCancelled: "cancelled",
	StatusExpired:   "expired",
	StatusCompleted: "completed",
}

// String returns the status's human-readable name.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", s)
}

// IsTerminal reports whether s carries no outstanding reservation — every
// status except Pending, Accepted, Fulfilled, and Disputed (spec.md §3).
func (s Status) IsTerminal() bool {
	switch s {
	case StatusRejected, StatusExpired, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// CanDispute reports whether a payment in status s may be disputed.
func (s Status) CanDispute() bool {
	return s == StatusAccepted || s == StatusFulfilled
}

// Payment is the on-chain escrow record of spec.md §3, keyed by the content
// hash of its immutable-at-creation fields.
type Payment struct {
	ID          uint64            `json:"id"`
	Payer       string            `json:"payer"`
	Payee       string            `json:"payee"`
	Amount      sdkmath.Int       `json:"amount"`
	Currency    ledger.CurrencyID `json:"currency"`
	Description string            `json:"description"`
	Status      Status            `json:"status"`
	ReceiptHash [32]byte          `json:"receipt_hash"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
	UpdatedBy   string            `json:"updated_by"`
}

// HashPayment computes the canonical content hash of a Payment's
// immutable-at-creation fields: id, payer, payee, amount, currency,
// description, and created_at — the same length-prefixed-field encoding the
// currencies registry uses for HashCurrency, so that independent
// implementations of this spec hash identically (spec.md §9).
func HashPayment(p Payment) [32]byte {
	h := sha256.New()
	var idBuf [8]byte
	binary.BigEndian.PutUint64(idBuf[:], p.ID)
	h.Write(idBuf[:])
	writeField(h, []byte(p.Payer))
	writeField(h, []byte(p.Payee))
	writeField(h, []byte(p.Amount.String()))
	writeField(h, p.Currency.Hash[:])
	if p.Currency.Native {
		h.Write([]byte{1})
	} else {
		h.Write([]byte{0})
	}
	writeField(h, []byte(p.Description))
	var tsBuf [8]byte
	binary.BigEndian.PutUint64(tsBuf[:], uint64(p.CreatedAt.UnixNano()))
	h.Write(tsBuf[:])

	var sum [32]byte
	copy(sum[:], h.Sum(nil))
	return sum
}

func writeField(h interface{ Write([]byte) (int, error) }, b []byte) {
	var length [8]byte
	binary.BigEndian.PutUint64(length[:], uint64(len(b)))
	h.Write(length[:])
	h.Write(b)
}
