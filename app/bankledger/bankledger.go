// Package bankledger adapts the Cosmos SDK bank module into the LRP
// ledger.Keeper interface, the same way x/delegation/keeper/keeper.go wraps
// bank's SendCoins/SpendableCoins behind its own narrow BankKeeper interface.
// Reserved balances are modeled as coins held by a module escrow account
// rather than a bank-native reserve/unreserve primitive, since the bank
// module in this stack has no such primitive of its own.
package bankledger

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/lrpchain/lrp/ledger"
)

// BankKeeper is the slice of x/bank's keeper this adapter needs.
type BankKeeper interface {
	SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
	SpendableCoins(ctx context.Context, addr sdk.AccAddress) sdk.Coins
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
}

// DenomResolver resolves a registered CurrencyID to its underlying bank
// denom. x/currencies implements this.
type DenomResolver interface {
	ResolveDenom(ctx sdk.Context, currency ledger.CurrencyID) (denom string, found bool)
}

// ModuleName is the module account that custodies all reserved balances
// across every LRP module. A single shared escrow account is sufficient
// because every reservation is already tracked per-payment/per-dispute in
// the owning module's own state; the bank module only needs to know the
// aggregate is backed.
const ModuleName = "lrp_escrow"

// Adapter implements ledger.Keeper against the bank module.
type Adapter struct {
	bank    BankKeeper
	resolve DenomResolver
}

// New constructs a bank-backed ledger adapter.
func New(bank BankKeeper, resolve DenomResolver) *Adapter {
	return &Adapter{bank: bank, resolve: resolve}
}

var _ ledger.Keeper = (*Adapter)(nil)

func (a *Adapter) denom(ctx sdk.Context, currency ledger.CurrencyID) string {
	if currency.Native {
		return sdk.DefaultBondDenom
	}
	denom, found := a.resolve.ResolveDenom(ctx, currency)
	if !found {
		// A currency that has no registered denom can hold no balance;
		// returning an unresolvable denom makes every op against it a no-op
		// failure rather than a panic.
		return "lrp/unresolved"
	}
	return denom
}

// FreeBalance returns account's spendable balance in currency.
func (a *Adapter) FreeBalance(ctx sdk.Context, currency ledger.CurrencyID, account sdk.AccAddress) sdk.Int {
	return a.bank.GetBalance(ctx, account, a.denom(ctx, currency)).Amount
}

// Reserve moves amount from account's free balance into the shared escrow
// module account.
func (a *Adapter) Reserve(ctx sdk.Context, currency ledger.CurrencyID, account sdk.AccAddress, amount sdk.Int) error {
	coins := sdk.NewCoins(sdk.NewCoin(a.denom(ctx, currency), amount))
	return a.bank.SendCoinsFromAccountToModule(ctx, account, ModuleName, coins)
}

// Unreserve returns amount from the shared escrow module account to account.
// It clamps to whatever is actually escrowed rather than erroring, matching
// the ledger.Keeper contract.
func (a *Adapter) Unreserve(ctx sdk.Context, currency ledger.CurrencyID, account sdk.AccAddress, amount sdk.Int) {
	denom := a.denom(ctx, currency)
	escrowed := a.bank.GetBalance(ctx, a.escrowAddress(), denom).Amount
	if amount.GT(escrowed) {
		amount = escrowed
	}
	if !amount.IsPositive() {
		return
	}
	coins := sdk.NewCoins(sdk.NewCoin(denom, amount))
	_ = a.bank.SendCoinsFromModuleToAccount(ctx, ModuleName, account, coins)
}

// Transfer moves amount of currency directly between two free balances.
func (a *Adapter) Transfer(ctx sdk.Context, currency ledger.CurrencyID, from, to sdk.AccAddress, amount sdk.Int) error {
	coins := sdk.NewCoins(sdk.NewCoin(a.denom(ctx, currency), amount))
	return a.bank.SendCoins(ctx, from, to, coins)
}

// escrowAddress returns the module account's derived address, matching how
// the account keeper creates and the bank keeper credits it — not the raw
// module name bytes, which is a different (and always-empty) address.
func (a *Adapter) escrowAddress() sdk.AccAddress {
	return authtypes.NewModuleAddress(ModuleName)
}
