package keeper

import sdk "github.com/cosmos/cosmos-sdk/types"

// EndBlocker sweeps disputes whose finalizing window has elapsed.
func (k Keeper) EndBlocker(ctx sdk.Context) error {
	k.SweepFinalizingDisputes(ctx)
	return nil
}
