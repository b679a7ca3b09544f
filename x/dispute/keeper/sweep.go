package keeper

import (
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/lrpchain/lrp/ledger"
	"github.com/lrpchain/lrp/x/dispute/types"
)

// SweepFinalizingDisputes settles every dispute in the finalizing queue
// whose expiry has elapsed. Deliberately a full, non-early-breaking scan of
// the entire queue every block: a dispute re-enqueued by ProposeOutcome
// lands at a new tail position while keeping its original ExpiresAt, so the
// queue is not release-time-ordered end to end. An early-break sweep (stop
// at the first not-yet-expired entry, as the key ordering alone would
// suggest is safe) would silently starve later entries whose expiry has
// already passed. Decided Open Question #1: preserve the full scan.
func (k Keeper) SweepFinalizingDisputes(ctx sdk.Context) {
	store := ctx.KVStore(k.skey)
	it := storetypes.KVStorePrefixIterator(store, types.FinalizingQueuePrefix)
	var ready [][32]byte
	for ; it.Valid(); it.Next() {
		var h [32]byte
		copy(h[:], it.Value())
		ready = append(ready, h)
	}
	it.Close()

	if k.metrics.QueueDepth != nil {
		k.metrics.QueueDepth.Set(float64(len(ready)))
	}

	now := ctx.BlockTime()
	for _, paymentHash := range ready {
		d, found := k.getDisputeRaw(ctx, paymentHash)
		if !found {
			k.removeFromFinalizingQueue(ctx, paymentHash)
			continue
		}
		if d.Status != types.StatusFinalizing || now.Before(d.ExpiresAt) {
			continue
		}
		k.finalize(ctx, d)
		if k.metrics.SettledTotal != nil {
			k.metrics.SettledTotal.Inc()
		}
	}
}

func (k Keeper) finalize(ctx sdk.Context, d types.Dispute) {
	params := k.GetParams(ctx)
	payer, payee, amount, currency, found := k.payment.GetPayment(ctx, d.PaymentHash)
	if !found {
		k.removeFromFinalizingQueue(ctx, d.PaymentHash)
		return
	}
	payerAddr, err1 := sdk.AccAddressFromBech32(payer)
	payeeAddr, err2 := sdk.AccAddressFromBech32(payee)
	if err1 != nil || err2 != nil {
		k.Logger(ctx).Error("dispute finalization skipped: bad address", "payment_hash", hashHex(d.PaymentHash))
		return
	}

	losingSide := payee
	if d.Outcome == types.JudgmentReleaseFundToPayee {
		k.ledger.Unreserve(ctx, currency, payerAddr, amount)
		if err := k.ledger.Transfer(ctx, currency, payerAddr, payeeAddr, amount); err != nil {
			k.Logger(ctx).Error("dispute settlement transfer failed", "payment_hash", hashHex(d.PaymentHash), "err", err)
		}
		k.ledger.Unreserve(ctx, ledger.NativeCurrency, payeeAddr, d.Fee)
		for _, resolver := range d.Resolvers {
			k.payOutResolver(ctx, payerAddr, resolver, params.DisputeFee)
		}
		losingSide = payer
	} else {
		k.ledger.Unreserve(ctx, currency, payerAddr, amount)
		k.ledger.Unreserve(ctx, ledger.NativeCurrency, payerAddr, d.Fee)
		for _, resolver := range d.Resolvers {
			k.payOutResolver(ctx, payeeAddr, resolver, params.DisputeFee)
		}
	}

	d.Status = types.StatusResolved
	k.setDispute(ctx, d)
	k.removeFromFinalizingQueue(ctx, d.PaymentHash)

	k.rewardResolvers(ctx, d, params)
	k.applyPartyCredibility(ctx, payer, payee, losingSide, params)

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeDisputeResolved,
		sdk.NewAttribute(types.AttributeKeyPaymentHash, hashHex(d.PaymentHash)),
		sdk.NewAttribute(types.AttributeKeyOutcome, d.Outcome.String()),
	))
}

func (k Keeper) payOutResolver(ctx sdk.Context, from sdk.AccAddress, resolver string, fee sdk.Int) {
	resolverAddr, err := sdk.AccAddressFromBech32(resolver)
	if err != nil {
		return
	}
	k.ledger.Unreserve(ctx, ledger.NativeCurrency, from, fee)
	if err := k.ledger.Transfer(ctx, ledger.NativeCurrency, from, resolverAddr, fee); err != nil {
		k.Logger(ctx).Error("resolver fee payout failed", "resolver", resolver, "err", err)
	}
}

func (k Keeper) rewardResolvers(ctx sdk.Context, d types.Dispute, params types.Params) {
	for _, j := range d.Judgments {
		if j.Judgment == d.Outcome {
			_ = k.resolvers.IncreaseCredibility(ctx, j.Resolver, params.CredibilityGain)
		} else {
			_ = k.resolvers.DecreaseCredibility(ctx, j.Resolver, params.CredibilityLoss)
		}
	}
}

func (k Keeper) applyPartyCredibility(ctx sdk.Context, payer, payee, losingSide string, params types.Params) {
	winningSide := payer
	if losingSide == payer {
		winningSide = payee
	}
	_ = k.resolvers.IncreaseCredibility(ctx, winningSide, params.CredibilityGain)
	_ = k.resolvers.DecreaseCredibility(ctx, losingSide, params.CredibilityLoss)
}
