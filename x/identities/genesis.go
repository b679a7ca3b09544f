// Package identities implements the self-sovereign identity and evaluator
// module (spec.md §4.2).
package identities

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/lrpchain/lrp/x/identities/keeper"
	"github.com/lrpchain/lrp/x/identities/types"
)

// InitGenesis initializes the identities module's state from a genesis state.
func InitGenesis(ctx sdk.Context, k keeper.Keeper, data *types.GenesisState) {
	if err := k.SetParams(ctx, data.Params); err != nil {
		panic(err)
	}
	for _, id := range data.Identities {
		if err := k.CreateIdentity(ctx, id.Owner, id.Name, id.Kind); err != nil {
			panic(err)
		}
		for _, field := range id.Data {
			if err := k.AddField(ctx, id.Owner, field); err != nil {
				panic(err)
			}
		}
	}
	for _, ev := range data.Evaluators {
		k.SetEvaluatorGenesis(ctx, ev)
	}
}

// ExportGenesis exports the identities module's state to a genesis state.
func ExportGenesis(ctx sdk.Context, k keeper.Keeper) *types.GenesisState {
	var ids []types.Identity
	k.WithIdentities(ctx, func(id types.Identity) bool {
		ids = append(ids, id)
		return false
	})
	var evals []types.Evaluator
	k.WithEvaluators(ctx, func(ev types.Evaluator) bool {
		evals = append(evals, ev)
		return false
	})
	return &types.GenesisState{
		Params:     k.GetParams(ctx),
		Identities: ids,
		Evaluators: evals,
	}
}
