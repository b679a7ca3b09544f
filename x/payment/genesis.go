// Package payment implements the locked-reserve escrow payment engine
// (spec.md §4.4).
package payment

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/lrpchain/lrp/x/payment/keeper"
	"github.com/lrpchain/lrp/x/payment/types"
)

// InitGenesis initializes the payment module's state from a genesis state.
func InitGenesis(ctx sdk.Context, k keeper.Keeper, data *types.GenesisState) {
	if err := k.SetParams(ctx, data.Params); err != nil {
		panic(err)
	}
	for _, p := range data.Payments {
		k.SetPaymentGenesis(ctx, p)
	}
	k.SetLatestPaymentIDGenesis(ctx, data.LatestPaymentID)
}

// ExportGenesis exports the payment module's state to a genesis state.
func ExportGenesis(ctx sdk.Context, k keeper.Keeper) *types.GenesisState {
	var payments []types.Payment
	k.WithPayments(ctx, func(p types.Payment) bool {
		payments = append(payments, p)
		return false
	})
	return &types.GenesisState{
		Params:          k.GetParams(ctx),
		Payments:        payments,
		LatestPaymentID: k.LatestPaymentID(ctx),
	}
}
