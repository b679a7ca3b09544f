package keeper

import sdk "github.com/cosmos/cosmos-sdk/types"

// EndBlocker runs the resolvers module's once-per-block deferred work.
func (k Keeper) EndBlocker(ctx sdk.Context) error {
	k.ReleasePendingFunds(ctx)
	return nil
}
