package keeper

import (
	"encoding/json"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/lrpchain/lrp/x/resolvers/types"
)

// WithResolvers iterates every resolver in store order.
func (k Keeper) WithResolvers(ctx sdk.Context, fn func(types.Resolver) bool) {
	store := ctx.KVStore(k.skey)
	it := storetypes.KVStorePrefixIterator(store, types.ResolverPrefix)
	defer it.Close()
	for ; it.Valid(); it.Next() {
		var r types.Resolver
		if err := json.Unmarshal(it.Value(), &r); err != nil {
			continue
		}
		if fn(r) {
			break
		}
	}
}

// WithPendingFunds iterates every pending fund in release-time order.
func (k Keeper) WithPendingFunds(ctx sdk.Context, fn func(types.PendingFund) bool) {
	store := ctx.KVStore(k.skey)
	it := storetypes.KVStorePrefixIterator(store, types.PendingFundQueuePrefix)
	defer it.Close()
	for ; it.Valid(); it.Next() {
		var f types.PendingFund
		if err := json.Unmarshal(it.Value(), &f); err != nil {
			continue
		}
		if fn(f) {
			break
		}
	}
}
