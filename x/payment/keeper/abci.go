package keeper

import sdk "github.com/cosmos/cosmos-sdk/types"

// EndBlocker runs the payment engine's once-per-block deferred sweeps:
// auto-expiry of stale Pending payments, then auto-completion of matured
// Fulfilled payments (spec.md §4.4).
func (k Keeper) EndBlocker(ctx sdk.Context) error {
	k.SweepExpiredPending(ctx)
	k.SweepFulfilledCompletion(ctx)
	return nil
}
