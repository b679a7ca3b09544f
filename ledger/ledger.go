// Package ledger defines the expected interface to the host multi-asset
// ledger: the out-of-scope collaborator that actually owns account balances.
// Every LRP module reserves, unreserves, and transfers funds exclusively
// through this interface; none of them touch bank state directly. Modeled on
// the teacher's expected-keeper pattern for BankKeeper
// (x/delegation/keeper/keeper.go).
package ledger

import sdk "github.com/cosmos/cosmos-sdk/types"

// CurrencyID identifies either the chain's native currency or a registered
// one. It is passed through to the ledger verbatim; the ledger is expected to
// resolve non-native IDs to their underlying denom via their content Hash.
type CurrencyID struct {
	Native bool
	Hash   [32]byte
}

// NativeCurrency is the always-accepted native currency identifier.
var NativeCurrency = CurrencyID{Native: true}

// Keeper is the subset of ledger behavior the LRP modules consume:
// reserve/unreserve/transfer/free-balance keyed by (currency, account). All
// four are synchronous and deterministic (§6).
type Keeper interface {
	// FreeBalance returns the spendable (non-reserved) balance of account in
	// currency.
	FreeBalance(ctx sdk.Context, currency CurrencyID, account sdk.AccAddress) sdk.Int

	// Reserve moves amount from free to reserved balance. It fails if free
	// balance is insufficient; on failure no state changes.
	Reserve(ctx sdk.Context, currency CurrencyID, account sdk.AccAddress, amount sdk.Int) error

	// Unreserve moves amount from reserved back to free balance. It is
	// infallible: if the reserved balance is smaller than amount, the
	// unreserve clamps to whatever is actually reserved rather than erroring
	// (the ledger is the sole arbiter of balance consistency; callers must
	// not assume exact bookkeeping survives a programming error elsewhere).
	Unreserve(ctx sdk.Context, currency CurrencyID, account sdk.AccAddress, amount sdk.Int)

	// Transfer moves amount of currency from the free balance of from to the
	// free balance of to. It fails if from's free balance is insufficient.
	Transfer(ctx sdk.Context, currency CurrencyID, from, to sdk.AccAddress, amount sdk.Int) error
}
