package keeper

import (
	"crypto/sha256"
	"encoding/json"

	sdkmath "cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/lrpchain/lrp/ledger"
	"github.com/lrpchain/lrp/x/resolvers/types"
)

func (k Keeper) getResolverRaw(ctx sdk.Context, owner string) (types.Resolver, bool) {
	store := ctx.KVStore(k.skey)
	bz := store.Get(types.BuildResolverKey(owner))
	if bz == nil {
		return types.Resolver{}, false
	}
	var r types.Resolver
	if err := json.Unmarshal(bz, &r); err != nil {
		return types.Resolver{}, false
	}
	return r, true
}

// GetResolverRecord looks up owner's resolver record.
func (k Keeper) GetResolverRecord(ctx sdk.Context, owner string) (types.Resolver, bool) {
	return k.getResolverRaw(ctx, owner)
}

// SetResolverGenesis writes a resolver record directly and syncs the
// ActiveResolvers index, bypassing stake reservation — used only during
// InitGenesis, where bonding amounts are assumed already reflected in the
// imported balances.
func (k Keeper) SetResolverGenesis(ctx sdk.Context, r types.Resolver) {
	k.setActiveMembership(ctx, r.Owner, r.Status == types.StatusActive)
	k.setResolver(ctx, r)
}

func (k Keeper) setResolver(ctx sdk.Context, r types.Resolver) {
	store := ctx.KVStore(k.skey)
	bz, err := json.Marshal(r)
	if err != nil {
		panic(err)
	}
	store.Set(types.BuildResolverKey(r.Owner), bz)
}

func (k Keeper) setActiveMembership(ctx sdk.Context, owner string, active bool) {
	store := ctx.KVStore(k.skey)
	key := types.BuildActiveResolverKey(owner)
	if active {
		store.Set(key, []byte{1})
	} else {
		store.Delete(key)
	}
}

func (k Keeper) isActiveMember(ctx sdk.Context, owner string) bool {
	store := ctx.KVStore(k.skey)
	return store.Has(types.BuildActiveResolverKey(owner))
}

// applyActivation sets r.Status based on its total stake against
// ActivationStakeAmount and syncs the ActiveResolvers index, per spec.md
// §4.3's Candidacy<->Active transition rule. It never overrides Terminated.
func (k Keeper) applyActivation(ctx sdk.Context, r *types.Resolver, params types.Params) {
	if r.Status == types.StatusTerminated {
		k.setActiveMembership(ctx, r.Owner, false)
		return
	}
	wasActive := r.Status == types.StatusActive
	if r.TotalStake.GTE(params.ActivationStakeAmount) {
		r.Status = types.StatusActive
	} else {
		r.Status = types.StatusCandidacy
	}
	nowActive := r.Status == types.StatusActive
	k.setActiveMembership(ctx, r.Owner, nowActive)
	if nowActive && !wasActive {
		ctx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypeResolverActivated, sdk.NewAttribute(types.AttributeKeyResolver, r.Owner)))
	} else if !nowActive && wasActive {
		ctx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypeResolverDeactivated, sdk.NewAttribute(types.AttributeKeyResolver, r.Owner)))
	}
}

// Join registers applicant as a resolver, reserving selfStake native.
func (k Keeper) Join(ctx sdk.Context, applicant sdk.AccAddress, applicationBlob []byte, selfStake sdkmath.Int) error {
	if !k.identities.HasIdentity(ctx, applicant.String()) {
		return types.ErrIdentityRequired
	}
	credibility, found := k.identities.GetCredibility(ctx, applicant.String())
	params := k.GetParams(ctx)
	if !found || credibility <= params.RequiredCredibility {
		return types.ErrCredibilityTooLow
	}
	if selfStake.LT(params.MinimumSelfStake) {
		return types.ErrNotMeetMinimumSelfStake
	}

	if err := k.ledger.Reserve(ctx, ledger.NativeCurrency, applicant, selfStake); err != nil {
		return types.ErrInsufficientBalance.Wrap(err.Error())
	}

	digest := sha256.Sum256(applicationBlob)
	if k.offchain != nil {
		k.offchain.Set(digest[:], applicationBlob)
	}

	r := types.Resolver{
		Owner:             applicant.String(),
		ApplicationDigest: digest,
		Status:            types.StatusCandidacy,
		SelfStake:         selfStake,
		UpdatedAt:         ctx.BlockTime(),
	}
	r.Recompute()
	k.applyActivation(ctx, &r, params)
	k.setResolver(ctx, r)

	ctx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypeResolverJoined, sdk.NewAttribute(types.AttributeKeyResolver, applicant.String())))
	k.Logger(ctx).Info("resolver joined", "owner", applicant.String(), "status", r.Status)
	return nil
}

// Delegate adds amount of stake from delegator behind resolver.
func (k Keeper) Delegate(ctx sdk.Context, delegator, resolver sdk.AccAddress, amount sdkmath.Int) error {
	r, found := k.getResolverRaw(ctx, resolver.String())
	if !found {
		return types.ErrResolverNotFound
	}
	if err := k.ledger.Reserve(ctx, ledger.NativeCurrency, delegator, amount); err != nil {
		return types.ErrInsufficientBalance.Wrap(err.Error())
	}

	merged := false
	for i, d := range r.Delegations {
		if d.Delegator == delegator.String() {
			r.Delegations[i].Amount = d.Amount.Add(amount)
			merged = true
			break
		}
	}
	if !merged {
		r.Delegations = append(r.Delegations, types.Delegation{Delegator: delegator.String(), Amount: amount})
	}
	r.Recompute()
	r.UpdatedAt = ctx.BlockTime()
	k.applyActivation(ctx, &r, k.GetParams(ctx))
	k.setResolver(ctx, r)

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeDelegated,
		sdk.NewAttribute(types.AttributeKeyDelegator, delegator.String()),
		sdk.NewAttribute(types.AttributeKeyResolver, resolver.String()),
		sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
	))
	return nil
}

// Undelegate withdraws amount of delegator's stake behind resolver, enqueuing
// a PendingFund released after UndelegateTime.
func (k Keeper) Undelegate(ctx sdk.Context, delegator, resolver sdk.AccAddress, amount sdkmath.Int) error {
	r, found := k.getResolverRaw(ctx, resolver.String())
	if !found {
		return types.ErrResolverNotFound
	}

	idx := -1
	for i, d := range r.Delegations {
		if d.Delegator == delegator.String() {
			idx = i
			break
		}
	}
	if idx < 0 || r.Delegations[idx].Amount.LT(amount) {
		return types.ErrDelegationNotFound
	}

	r.Delegations[idx].Amount = r.Delegations[idx].Amount.Sub(amount)
	if r.Delegations[idx].Amount.IsZero() {
		r.Delegations = append(r.Delegations[:idx], r.Delegations[idx+1:]...)
	}
	r.Recompute()
	r.UpdatedAt = ctx.BlockTime()
	params := k.GetParams(ctx)
	k.applyActivation(ctx, &r, params)
	k.setResolver(ctx, r)

	k.enqueuePendingFund(ctx, delegator.String(), amount, ctx.BlockTime().Add(params.UndelegateTime))

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeUndelegated,
		sdk.NewAttribute(types.AttributeKeyDelegator, delegator.String()),
		sdk.NewAttribute(types.AttributeKeyResolver, resolver.String()),
		sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
	))
	return nil
}

// Resign irreversibly terminates caller's resolver membership, scheduling a
// PendingFund for self stake and every delegation.
func (k Keeper) Resign(ctx sdk.Context, caller sdk.AccAddress) error {
	r, found := k.getResolverRaw(ctx, caller.String())
	if !found {
		return types.ErrResolverNotFound
	}
	params := k.GetParams(ctx)
	releaseAt := ctx.BlockTime().Add(params.UndelegateTime)

	if r.SelfStake.IsPositive() {
		k.enqueuePendingFund(ctx, r.Owner, r.SelfStake, releaseAt)
	}
	for _, d := range r.Delegations {
		k.enqueuePendingFund(ctx, d.Delegator, d.Amount, releaseAt)
	}

	r.SelfStake = sdkmath.ZeroInt()
	r.Delegations = nil
	r.TotalStake = sdkmath.ZeroInt()
	r.Status = types.StatusTerminated
	r.UpdatedAt = ctx.BlockTime()
	k.setActiveMembership(ctx, r.Owner, false)
	k.setResolver(ctx, r)

	ctx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypeResigned, sdk.NewAttribute(types.AttributeKeyResolver, caller.String())))
	return nil
}

// GetResolver randomly selects an active resolver not present in excluded,
// seeded deterministically with paymentHash.
func (k Keeper) GetResolver(ctx sdk.Context, paymentHash [32]byte, excluded []string) (string, error) {
	excludeSet := make(map[string]bool, len(excluded))
	for _, e := range excluded {
		excludeSet[e] = true
	}

	var candidates []string
	store := ctx.KVStore(k.skey)
	it := storetypes.KVStorePrefixIterator(store, types.ActiveResolverIndexPrefix)
	defer it.Close()
	for ; it.Valid(); it.Next() {
		owner := string(it.Key()[len(types.ActiveResolverIndexPrefix):])
		if !excludeSet[owner] {
			candidates = append(candidates, owner)
		}
	}

	if len(candidates) == 0 {
		return "", types.ErrNoAnyActiveResolver
	}

	output, _ := k.random.Random(paymentHash[:])
	var sum int
	for _, b := range output {
		sum += int(b)
	}
	return candidates[sum%len(candidates)], nil
}

// IncreaseCredibility forwards to the identities module.
func (k Keeper) IncreaseCredibility(ctx sdk.Context, owner string, delta uint32) error {
	return k.identities.IncreaseCredibility(ctx, owner, delta)
}

// DecreaseCredibility forwards to the identities module and, if the result
// falls below RequiredCredibility, immediately terminates the resolver
// (fund-unreserve scheduling identical to Resign).
func (k Keeper) DecreaseCredibility(ctx sdk.Context, owner string, delta uint32) error {
	if err := k.identities.DecreaseCredibility(ctx, owner, delta); err != nil {
		return err
	}
	credibility, found := k.identities.GetCredibility(ctx, owner)
	if !found || credibility >= k.GetParams(ctx).RequiredCredibility {
		return nil
	}

	r, found := k.getResolverRaw(ctx, owner)
	if !found || r.Status == types.StatusTerminated {
		return nil
	}
	if err := k.terminate(ctx, r); err != nil {
		return err
	}
	ctx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypeTerminated, sdk.NewAttribute(types.AttributeKeyResolver, owner)))
	return nil
}

func (k Keeper) terminate(ctx sdk.Context, r types.Resolver) error {
	params := k.GetParams(ctx)
	releaseAt := ctx.BlockTime().Add(params.UndelegateTime)

	if r.SelfStake.IsPositive() {
		k.enqueuePendingFund(ctx, r.Owner, r.SelfStake, releaseAt)
	}
	for _, d := range r.Delegations {
		k.enqueuePendingFund(ctx, d.Delegator, d.Amount, releaseAt)
	}

	r.SelfStake = sdkmath.ZeroInt()
	r.Delegations = nil
	r.TotalStake = sdkmath.ZeroInt()
	r.Status = types.StatusTerminated
	r.UpdatedAt = ctx.BlockTime()
	k.setActiveMembership(ctx, r.Owner, false)
	k.setResolver(ctx, r)
	return nil
}
