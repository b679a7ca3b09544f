package keeper

import (
	"encoding/json"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/lrpchain/lrp/x/currencies/types"
)

// WithCurrencies iterates every registered currency in store order, calling
// fn for each. Iteration stops early if fn returns true.
func (k Keeper) WithCurrencies(ctx sdk.Context, fn func(types.CurrencyMetadata) bool) {
	store := ctx.KVStore(k.skey)
	it := storetypes.KVStorePrefixIterator(store, types.CurrencyPrefix)
	defer it.Close()

	for ; it.Valid(); it.Next() {
		var meta types.CurrencyMetadata
		if err := json.Unmarshal(it.Value(), &meta); err != nil {
			continue
		}
		if fn(meta) {
			break
		}
	}
}
