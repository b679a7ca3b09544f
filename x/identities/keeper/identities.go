package keeper

import (
	"crypto/sha256"
	"encoding/json"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/lrpchain/lrp/x/identities/types"
)

func (k Keeper) getIdentityRaw(ctx sdk.Context, owner string) (types.Identity, bool) {
	store := ctx.KVStore(k.skey)
	bz := store.Get(types.BuildIdentityKey(owner))
	if bz == nil {
		return types.Identity{}, false
	}
	var id types.Identity
	if err := json.Unmarshal(bz, &id); err != nil {
		return types.Identity{}, false
	}
	return id, true
}

// GetIdentity looks up owner's identity record.
func (k Keeper) GetIdentity(ctx sdk.Context, owner string) (types.Identity, bool) {
	return k.getIdentityRaw(ctx, owner)
}

func (k Keeper) setIdentity(ctx sdk.Context, id types.Identity) {
	store := ctx.KVStore(k.skey)
	bz, err := json.Marshal(id)
	if err != nil {
		panic(err)
	}
	store.Set(types.BuildIdentityKey(id.Owner), bz)
}

// CreateIdentity creates a new identity for owner.
func (k Keeper) CreateIdentity(ctx sdk.Context, owner string, name string, kind types.IdentityKind) error {
	if k.HasIdentity(ctx, owner) {
		return types.ErrIdentityExisted
	}
	params := k.GetParams(ctx)
	id := types.Identity{
		Owner:       owner,
		Name:        name,
		Kind:        kind,
		Credibility: params.InitialCredibility,
	}
	k.setIdentity(ctx, id)
	ctx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypeIdentityCreated, sdk.NewAttribute(types.AttributeKeyOwner, owner)))
	k.Logger(ctx).Info("identity created", "owner", owner)
	return nil
}

// UpdateIdentity overwrites name and kind on an existing identity.
func (k Keeper) UpdateIdentity(ctx sdk.Context, owner string, name string, kind types.IdentityKind) error {
	id, found := k.getIdentityRaw(ctx, owner)
	if !found {
		return types.ErrIdentityNotFound
	}
	id.Name = name
	id.Kind = kind
	k.setIdentity(ctx, id)
	ctx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypeIdentityUpdated, sdk.NewAttribute(types.AttributeKeyOwner, owner)))
	return nil
}

// RemoveIdentity clears name and fields but preserves reviews, per spec.md
// §4.2 ("remove_identity clears name and fields but preserves reviews").
func (k Keeper) RemoveIdentity(ctx sdk.Context, owner string) error {
	id, found := k.getIdentityRaw(ctx, owner)
	if !found {
		return types.ErrIdentityNotFound
	}
	id.Name = ""
	id.Data = nil
	k.setIdentity(ctx, id)
	ctx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypeIdentityRemoved, sdk.NewAttribute(types.AttributeKeyOwner, owner)))
	return nil
}

// AddField appends a new field to owner's identity, validating Domain/Email
// values syntactically on insert.
func (k Keeper) AddField(ctx sdk.Context, owner string, field types.IdentityField) error {
	id, found := k.getIdentityRaw(ctx, owner)
	if !found {
		return types.ErrIdentityNotFound
	}
	if err := types.ValidateField(field.VerifyMethod, field.Value); err != nil {
		return err
	}
	id.Data = append(id.Data, field)
	k.setIdentity(ctx, id)
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeFieldAdded,
		sdk.NewAttribute(types.AttributeKeyOwner, owner),
		sdk.NewAttribute(types.AttributeKeyFieldName, field.Name),
	))
	return nil
}

// UpdateField overwrites an existing field by name, re-validating on insert.
func (k Keeper) UpdateField(ctx sdk.Context, owner string, field types.IdentityField) error {
	id, found := k.getIdentityRaw(ctx, owner)
	if !found {
		return types.ErrIdentityNotFound
	}
	if err := types.ValidateField(field.VerifyMethod, field.Value); err != nil {
		return err
	}
	idx := -1
	for i, f := range id.Data {
		if f.Name == field.Name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return types.ErrFieldNotFound
	}
	id.Data[idx] = field
	k.setIdentity(ctx, id)
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeFieldUpdated,
		sdk.NewAttribute(types.AttributeKeyOwner, owner),
		sdk.NewAttribute(types.AttributeKeyFieldName, field.Name),
	))
	return nil
}

// ReviewIdentity records one review per (reviewer, subject) pair, persisting
// the review content via the offchain index and storing only its digest.
func (k Keeper) ReviewIdentity(ctx sdk.Context, reviewer, subject string, content []byte) error {
	id, found := k.getIdentityRaw(ctx, subject)
	if !found {
		return types.ErrIdentityNotFound
	}
	for _, r := range id.Reviews {
		if r.Reviewer == reviewer {
			return types.ErrCanOnlyReviewOnce
		}
	}

	hash := sha256.Sum256(content)
	if k.offchain != nil {
		k.offchain.Set(hash[:], content)
	}
	id.Reviews = append(id.Reviews, types.IdentityReview{Reviewer: reviewer, ContentHash: hash})
	k.setIdentity(ctx, id)

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeReviewAdded,
		sdk.NewAttribute(types.AttributeKeyReviewer, reviewer),
		sdk.NewAttribute(types.AttributeKeySubject, subject),
	))
	return nil
}

// IncreaseCredibility raises owner's credibility, saturating at MaxCredibility.
func (k Keeper) IncreaseCredibility(ctx sdk.Context, owner string, delta uint32) error {
	id, found := k.getIdentityRaw(ctx, owner)
	if !found {
		return types.ErrIdentityNotFound
	}
	params := k.GetParams(ctx)
	id.IncreaseCredibility(delta, params.MaxCredibility)
	k.setIdentity(ctx, id)
	return nil
}

// DecreaseCredibility lowers owner's credibility, clamping at zero.
func (k Keeper) DecreaseCredibility(ctx sdk.Context, owner string, delta uint32) error {
	id, found := k.getIdentityRaw(ctx, owner)
	if !found {
		return types.ErrIdentityNotFound
	}
	id.DecreaseCredibility(delta)
	k.setIdentity(ctx, id)
	return nil
}
