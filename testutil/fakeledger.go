package testutil

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "cosmossdk.io/errors"

	"github.com/lrpchain/lrp/ledger"
)

// FakeLedger is an in-memory ledger.Keeper for keeper test suites that need
// balance bookkeeping but not a full bank module. Balances are seeded
// directly via Fund; Reserve/Unreserve track a reserved side-ledger per
// (currency, account) independent of the free balance map.
type FakeLedger struct {
	free     map[string]sdk.Int
	reserved map[string]sdk.Int
}

// NewFakeLedger returns an empty FakeLedger.
func NewFakeLedger() *FakeLedger {
	return &FakeLedger{
		free:     make(map[string]sdk.Int),
		reserved: make(map[string]sdk.Int),
	}
}

func ledgerKey(currency ledger.CurrencyID, account sdk.AccAddress) string {
	tag := "native"
	if !currency.Native {
		tag = string(currency.Hash[:])
	}
	return tag + "|" + account.String()
}

// Fund credits account's free balance in currency. Test-only setup helper.
func (l *FakeLedger) Fund(currency ledger.CurrencyID, account sdk.AccAddress, amount sdk.Int) {
	key := ledgerKey(currency, account)
	cur, ok := l.free[key]
	if !ok {
		cur = sdk.ZeroInt()
	}
	l.free[key] = cur.Add(amount)
}

func (l *FakeLedger) FreeBalance(_ sdk.Context, currency ledger.CurrencyID, account sdk.AccAddress) sdk.Int {
	if v, ok := l.free[ledgerKey(currency, account)]; ok {
		return v
	}
	return sdk.ZeroInt()
}

func (l *FakeLedger) Reserve(ctx sdk.Context, currency ledger.CurrencyID, account sdk.AccAddress, amount sdk.Int) error {
	key := ledgerKey(currency, account)
	bal := l.FreeBalance(ctx, currency, account)
	if bal.LT(amount) {
		return sdkerrors.Wrap(sdkerrors.ErrInsufficientFunds, "insufficient free balance")
	}
	l.free[key] = bal.Sub(amount)
	res, ok := l.reserved[key]
	if !ok {
		res = sdk.ZeroInt()
	}
	l.reserved[key] = res.Add(amount)
	return nil
}

func (l *FakeLedger) Unreserve(_ sdk.Context, currency ledger.CurrencyID, account sdk.AccAddress, amount sdk.Int) {
	key := ledgerKey(currency, account)
	res, ok := l.reserved[key]
	if !ok {
		res = sdk.ZeroInt()
	}
	if amount.GT(res) {
		amount = res
	}
	l.reserved[key] = res.Sub(amount)
	free, ok := l.free[key]
	if !ok {
		free = sdk.ZeroInt()
	}
	l.free[key] = free.Add(amount)
}

func (l *FakeLedger) Transfer(ctx sdk.Context, currency ledger.CurrencyID, from, to sdk.AccAddress, amount sdk.Int) error {
	bal := l.FreeBalance(ctx, currency, from)
	if bal.LT(amount) {
		return sdkerrors.Wrap(sdkerrors.ErrInsufficientFunds, "insufficient free balance")
	}
	l.free[ledgerKey(currency, from)] = bal.Sub(amount)
	toBal := l.FreeBalance(ctx, currency, to)
	l.free[ledgerKey(currency, to)] = toBal.Add(amount)
	return nil
}

var _ ledger.Keeper = (*FakeLedger)(nil)
