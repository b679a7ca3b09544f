package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/lrpchain/lrp/ledger"
)

// CurrencyID aliases the ledger's tagged currency identifier so the payment
// engine shares one wire representation with the currencies registry and the
// ledger adapter instead of converting between lookalikes.
type CurrencyID = ledger.CurrencyID

// CurrencyKeeper is the narrow slice of the currencies registry the payment
// engine depends on: checking a merchant's acceptance set at create_payment
// time (spec.md §4.4). Modeled as a small consumer-defined interface rather
// than importing x/currencies/keeper directly, mirroring the teacher's
// BankKeeper pattern.
type CurrencyKeeper interface {
	IsCurrencyAccepted(ctx sdk.Context, merchant sdk.AccAddress, id CurrencyID) bool
}
