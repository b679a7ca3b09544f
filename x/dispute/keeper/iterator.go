package keeper

import (
	"encoding/json"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/lrpchain/lrp/x/dispute/types"
)

// WithDisputes iterates over every stored dispute in key order.
func (k Keeper) WithDisputes(ctx sdk.Context, fn func(types.Dispute) bool) {
	store := ctx.KVStore(k.skey)
	it := storetypes.KVStorePrefixIterator(store, types.DisputePrefix)
	defer it.Close()
	for ; it.Valid(); it.Next() {
		var d types.Dispute
		if err := json.Unmarshal(it.Value(), &d); err != nil {
			continue
		}
		if fn(d) {
			return
		}
	}
}
