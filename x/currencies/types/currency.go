package types

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/lrpchain/lrp/ledger"
)

// CurrencyID is the tagged currency identifier of spec.md §3: either the
// chain's Native currency, or a Registered one addressed by a content hash
// over its metadata. Two registered currencies with identical metadata
// collide by design — that collision is the CurrencyExisted check. It is a
// type alias to ledger.CurrencyID so the registry and the ledger adapter
// share one wire representation instead of converting between lookalikes.
type CurrencyID = ledger.CurrencyID

// NativeCurrencyID is the implicitly-accepted native currency.
var NativeCurrencyID = ledger.NativeCurrency

// CurrencyMetadata is the immutable-at-creation description of a registered
// currency.
type CurrencyMetadata struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals uint8  `json:"decimals"`
	Issuer   string `json:"issuer"`
}

// HashCurrency computes the canonical content hash of a CurrencyMetadata.
// The byte encoding is fixed (length-prefixed fields in declaration order) so
// that independent implementations of this spec hash identically.
func HashCurrency(m CurrencyMetadata) CurrencyID {
	h := sha256.New()
	writeField(h, []byte(m.Name))
	writeField(h, []byte(m.Symbol))
	h.Write([]byte{m.Decimals})
	writeField(h, []byte(m.Issuer))

	var sum [32]byte
	copy(sum[:], h.Sum(nil))
	return CurrencyID{Hash: sum}
}

func writeField(h interface{ Write([]byte) (int, error) }, b []byte) {
	var length [8]byte
	binary.BigEndian.PutUint64(length[:], uint64(len(b)))
	h.Write(length[:])
	h.Write(b)
}
