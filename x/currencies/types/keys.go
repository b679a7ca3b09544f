// Package types contains types for the currencies module.
package types

const (
	// ModuleName is the name of the currencies module.
	ModuleName = "lrp_currencies"

	// StoreKey is the store key for the currencies module.
	StoreKey = ModuleName

	// RouterKey is the router key for the currencies module.
	RouterKey = ModuleName
)

// Key prefixes for the currencies store.
var (
	// CurrencyPrefix is the prefix for registered currency metadata.
	CurrencyPrefix = []byte{0x01}

	// AcceptancePrefix is the prefix for a merchant's accepted-currency list.
	AcceptancePrefix = []byte{0x02}

	// ParamsKey is the key for module parameters.
	ParamsKey = []byte{0x10}
)

// BuildCurrencyKey builds the key for a registered currency's metadata.
func BuildCurrencyKey(id CurrencyID) []byte {
	key := make([]byte, 0, len(CurrencyPrefix)+32)
	key = append(key, CurrencyPrefix...)
	return append(key, id.Hash[:]...)
}

// BuildAcceptanceKey builds the key for a merchant's accepted-currency list.
func BuildAcceptanceKey(merchant string) []byte {
	key := make([]byte, 0, len(AcceptancePrefix)+len(merchant))
	key = append(key, AcceptancePrefix...)
	return append(key, []byte(merchant)...)
}
