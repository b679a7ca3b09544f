// Package types contains types for the currencies module.
package types

// Currencies module event types.
const (
	EventTypeCurrencyCreated = "currency_created"
	EventTypeCurrencyRemoved = "currency_removed"
	EventTypeCurrencyAccepted = "currency_accepted"
)

// Currencies module event attribute keys.
const (
	AttributeKeyCurrencyHash = "currency_hash"
	AttributeKeyIssuer       = "issuer"
	AttributeKeyMerchant     = "merchant"
	AttributeKeyName         = "name"
	AttributeKeySymbol       = "symbol"
)
