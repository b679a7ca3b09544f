// Package resolvers implements the stake-weighted resolver network module
// (spec.md §4.3).
package resolvers

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/lrpchain/lrp/x/resolvers/keeper"
	"github.com/lrpchain/lrp/x/resolvers/types"
)

// InitGenesis initializes the resolvers module's state from a genesis state.
func InitGenesis(ctx sdk.Context, k keeper.Keeper, data *types.GenesisState) {
	if err := k.SetParams(ctx, data.Params); err != nil {
		panic(err)
	}
	for _, r := range data.Resolvers {
		k.SetResolverGenesis(ctx, r)
	}
	for _, f := range data.PendingFunds {
		k.SetPendingFundGenesis(ctx, f)
	}
}

// ExportGenesis exports the resolvers module's state to a genesis state.
func ExportGenesis(ctx sdk.Context, k keeper.Keeper) *types.GenesisState {
	var resolvers []types.Resolver
	k.WithResolvers(ctx, func(r types.Resolver) bool {
		resolvers = append(resolvers, r)
		return false
	})
	var funds []types.PendingFund
	k.WithPendingFunds(ctx, func(f types.PendingFund) bool {
		funds = append(funds, f)
		return false
	})
	return &types.GenesisState{
		Params:       k.GetParams(ctx),
		Resolvers:    resolvers,
		PendingFunds: funds,
	}
}
