package keeper

import (
	"encoding/json"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/lrpchain/lrp/x/payment/types"
)

// WithPayments iterates every payment record, calling fn until it returns
// true or the iteration is exhausted.
func (k Keeper) WithPayments(ctx sdk.Context, fn func(types.Payment) bool) {
	store := ctx.KVStore(k.skey)
	it := storetypes.KVStorePrefixIterator(store, types.PaymentPrefix)
	defer it.Close()
	for ; it.Valid(); it.Next() {
		var p types.Payment
		if err := json.Unmarshal(it.Value(), &p); err != nil {
			continue
		}
		if fn(p) {
			return
		}
	}
}
