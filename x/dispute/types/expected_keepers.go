package types

import (
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/lrpchain/lrp/ledger"
)

// PaymentKeeper is the narrow slice of the payment engine the dispute engine
// depends on: the can_dispute gate, the payer/payee/amount/currency read
// interface, and the cross-module status transition into Disputed (spec.md
// §4.4's external read interface, §4.5's create_dispute).
type PaymentKeeper interface {
	CanDispute(ctx sdk.Context, paymentHash [32]byte) bool
	GetPayment(ctx sdk.Context, paymentHash [32]byte) (payer, payee string, amount sdkmath.Int, currency ledger.CurrencyID, found bool)
	DisputePayment(ctx sdk.Context, paymentHash [32]byte) error
}

// ResolverKeeper is the narrow slice of the resolver network the dispute
// engine depends on: drawing a fresh panel and feeding back credibility.
type ResolverKeeper interface {
	GetResolver(ctx sdk.Context, seed [32]byte, excluded []string) (string, error)
	IncreaseCredibility(ctx sdk.Context, owner string, delta uint32) error
	DecreaseCredibility(ctx sdk.Context, owner string, delta uint32) error
}
