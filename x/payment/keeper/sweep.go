package keeper

import (
	"bytes"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/lrpchain/lrp/x/payment/types"
)

func (k Keeper) removeFromPendingQueue(ctx sdk.Context, hash [32]byte) {
	k.removeFromQueue(ctx, types.PendingQueuePrefix, hash)
}

func (k Keeper) removeFromFulfilledQueue(ctx sdk.Context, hash [32]byte) {
	k.removeFromQueue(ctx, types.FulfilledQueuePrefix, hash)
}

func (k Keeper) removeFromQueue(ctx sdk.Context, prefix []byte, hash [32]byte) {
	store := ctx.KVStore(k.skey)
	it := storetypes.KVStorePrefixIterator(store, prefix)
	defer it.Close()
	for ; it.Valid(); it.Next() {
		if bytes.Equal(it.Value(), hash[:]) {
			store.Delete(it.Key())
			return
		}
	}
}

// SweepExpiredPending implements spec.md §4.4's auto-expiry deferred work:
// walk PendingPaymentQueue and expire every entry whose waiting time has
// elapsed. Per spec.md §5, this loop does not short-circuit on a
// non-expired entry — it scans the whole queue every block.
func (k Keeper) SweepExpiredPending(ctx sdk.Context) {
	params := k.GetParams(ctx)
	now := ctx.BlockTime()

	store := ctx.KVStore(k.skey)
	it := storetypes.KVStorePrefixIterator(store, types.PendingQueuePrefix)
	var keys, hashes [][]byte
	for ; it.Valid(); it.Next() {
		keys = append(keys, append([]byte{}, it.Key()...))
		hashes = append(hashes, append([]byte{}, it.Value()...))
	}
	it.Close()

	for i, hb := range hashes {
		var hash [32]byte
		copy(hash[:], hb)
		p, found := k.getPaymentRaw(ctx, hash)
		if !found || p.Status != types.StatusPending {
			store.Delete(keys[i])
			continue
		}
		deadline := p.UpdatedAt.Add(params.PendingPaymentWaitingTime)
		if !now.After(deadline) {
			continue
		}
		k.unreservePayer(ctx, p)
		p.Status = types.StatusExpired
		p.UpdatedAt = now
		k.setPayment(ctx, p)
		store.Delete(keys[i])

		ctx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypePaymentExpired, sdk.NewAttribute(types.AttributeKeyPaymentHash, hashHex(hash))))
	}
}

// SweepFulfilledCompletion implements spec.md §4.4's auto-completion deferred
// work: walk FulfilledPaymentQueue and complete every entry whose waiting
// time has elapsed. Like SweepExpiredPending, this does not short-circuit on
// a non-matured entry.
func (k Keeper) SweepFulfilledCompletion(ctx sdk.Context) {
	params := k.GetParams(ctx)
	now := ctx.BlockTime()

	store := ctx.KVStore(k.skey)
	it := storetypes.KVStorePrefixIterator(store, types.FulfilledQueuePrefix)
	var keys, hashes [][]byte
	for ; it.Valid(); it.Next() {
		keys = append(keys, append([]byte{}, it.Key()...))
		hashes = append(hashes, append([]byte{}, it.Value()...))
	}
	it.Close()

	for i, hb := range hashes {
		var hash [32]byte
		copy(hash[:], hb)
		p, found := k.getPaymentRaw(ctx, hash)
		if !found || p.Status != types.StatusFulfilled {
			store.Delete(keys[i])
			continue
		}
		deadline := p.UpdatedAt.Add(params.FulfilledPaymentWaitingTime)
		if !now.After(deadline) {
			continue
		}
		if err := k.settle(ctx, p); err != nil {
			k.Logger(ctx).Error("auto-completion settlement failed", "hash", hashHex(hash), "err", err)
			continue
		}
		p.Status = types.StatusCompleted
		p.UpdatedAt = now
		k.setPayment(ctx, p)
		store.Delete(keys[i])

		ctx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypePaymentCompleted, sdk.NewAttribute(types.AttributeKeyPaymentHash, hashHex(hash))))
	}
}
