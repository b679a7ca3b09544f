// Package dispute implements the dispute resolution engine (spec.md §4.5).
package dispute

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/lrpchain/lrp/x/dispute/keeper"
	"github.com/lrpchain/lrp/x/dispute/types"
)

// InitGenesis initializes the dispute module's state from a genesis state.
func InitGenesis(ctx sdk.Context, k keeper.Keeper, data *types.GenesisState) {
	if err := k.SetParams(ctx, data.Params); err != nil {
		panic(err)
	}
	for _, d := range data.Disputes {
		k.SetDisputeGenesis(ctx, d)
	}
}

// ExportGenesis exports the dispute module's state to a genesis state.
func ExportGenesis(ctx sdk.Context, k keeper.Keeper) *types.GenesisState {
	var disputes []types.Dispute
	k.WithDisputes(ctx, func(d types.Dispute) bool {
		disputes = append(disputes, d)
		return false
	})
	return &types.GenesisState{
		Params:   k.GetParams(ctx),
		Disputes: disputes,
	}
}
