package keeper

import (
	"encoding/json"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/lrpchain/lrp/x/identities/types"
)

// WithIdentities iterates every identity in store order.
func (k Keeper) WithIdentities(ctx sdk.Context, fn func(types.Identity) bool) {
	store := ctx.KVStore(k.skey)
	it := storetypes.KVStorePrefixIterator(store, types.IdentityPrefix)
	defer it.Close()
	for ; it.Valid(); it.Next() {
		var id types.Identity
		if err := json.Unmarshal(it.Value(), &id); err != nil {
			continue
		}
		if fn(id) {
			break
		}
	}
}

// WithEvaluators iterates every evaluator in store order.
func (k Keeper) WithEvaluators(ctx sdk.Context, fn func(types.Evaluator) bool) {
	store := ctx.KVStore(k.skey)
	it := storetypes.KVStorePrefixIterator(store, types.EvaluatorPrefix)
	defer it.Close()
	for ; it.Valid(); it.Next() {
		var ev types.Evaluator
		if err := json.Unmarshal(it.Value(), &ev); err != nil {
			continue
		}
		if fn(ev) {
			break
		}
	}
}
