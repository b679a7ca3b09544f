package keeper

import (
	"encoding/json"
	"time"

	sdkmath "cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/lrpchain/lrp/ledger"
	"github.com/lrpchain/lrp/x/resolvers/types"
)

// enqueuePendingFund schedules a time-locked withdrawal for owner, queued by
// release deadline the same way the teacher orders its unbonding queue by
// completion time (x/delegation/types/keys.go GetUnbondingQueueKey).
func (k Keeper) enqueuePendingFund(ctx sdk.Context, owner string, amount sdkmath.Int, releaseAt time.Time) {
	seq := k.nextPendingFundSeq(ctx)
	fund := types.PendingFund{Owner: owner, Amount: amount, ReleaseAt: releaseAt, Seq: seq}
	bz, err := json.Marshal(fund)
	if err != nil {
		panic(err)
	}
	store := ctx.KVStore(k.skey)
	store.Set(types.BuildPendingFundQueueKey(releaseAt.Unix(), seq), bz)
}

// SetPendingFundGenesis writes a pending fund entry directly — used only
// during InitGenesis.
func (k Keeper) SetPendingFundGenesis(ctx sdk.Context, f types.PendingFund) {
	bz, err := json.Marshal(f)
	if err != nil {
		panic(err)
	}
	store := ctx.KVStore(k.skey)
	store.Set(types.BuildPendingFundQueueKey(f.ReleaseAt.Unix(), f.Seq), bz)
}

// ReleasePendingFunds is the once-per-block deferred sweep of spec.md §4.3:
// scan PendingFunds and unreserve every entry whose release deadline has
// passed.
func (k Keeper) ReleasePendingFunds(ctx sdk.Context) {
	store := ctx.KVStore(k.skey)
	it := storetypes.KVStorePrefixIterator(store, types.PendingFundQueuePrefix)
	defer it.Close()

	now := ctx.BlockTime()
	var toRelease []types.PendingFund
	var toDelete [][]byte
	seen := 0
	for ; it.Valid(); it.Next() {
		seen++
		var fund types.PendingFund
		if err := json.Unmarshal(it.Value(), &fund); err != nil {
			continue
		}
		if fund.ReleaseAt.After(now) {
			continue
		}
		toRelease = append(toRelease, fund)
		toDelete = append(toDelete, append([]byte{}, it.Key()...))
	}

	if k.metrics.QueueDepth != nil {
		k.metrics.QueueDepth.Set(float64(seen))
	}

	for i, fund := range toRelease {
		owner, err := sdk.AccAddressFromBech32(fund.Owner)
		if err != nil {
			k.Logger(ctx).Error("pending fund release: invalid owner address", "owner", fund.Owner, "err", err)
			continue
		}
		k.ledger.Unreserve(ctx, ledger.NativeCurrency, owner, fund.Amount)
		store.Delete(toDelete[i])
		if k.metrics.SettledTotal != nil {
			k.metrics.SettledTotal.Inc()
		}
		ctx.EventManager().EmitEvent(sdk.NewEvent(
			types.EventTypePendingFundReleased,
			sdk.NewAttribute(types.AttributeKeyOwner, fund.Owner),
			sdk.NewAttribute(types.AttributeKeyAmount, fund.Amount.String()),
		))
	}
}
