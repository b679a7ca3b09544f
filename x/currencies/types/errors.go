// Package types contains types for the currencies module.
package types

import sdkerrors "cosmossdk.io/errors"

// Currencies module sentinel errors (spec.md §7).
var (
	// ErrCurrencyExisted is returned when a currency with identical metadata
	// is already registered.
	ErrCurrencyExisted = sdkerrors.Register(ModuleName, 2, "currency already exists")

	// ErrCurrencyNotFound is returned when a currency id has no registered
	// metadata.
	ErrCurrencyNotFound = sdkerrors.Register(ModuleName, 3, "currency not found")

	// ErrNotCurrencyIssuer is returned when a caller other than the issuer
	// attempts to remove a currency.
	ErrNotCurrencyIssuer = sdkerrors.Register(ModuleName, 4, "caller is not the currency issuer")

	// ErrInsufficientBalance is returned when the issuer lacks the bonding
	// amount required to create a currency.
	ErrInsufficientBalance = sdkerrors.Register(ModuleName, 5, "insufficient balance")
)
