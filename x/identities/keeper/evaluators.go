package keeper

import (
	"encoding/json"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/lrpchain/lrp/ledger"
	"github.com/lrpchain/lrp/x/identities/types"
)

func (k Keeper) getEvaluatorRaw(ctx sdk.Context, owner string) (types.Evaluator, bool) {
	store := ctx.KVStore(k.skey)
	bz := store.Get(types.BuildEvaluatorKey(owner))
	if bz == nil {
		return types.Evaluator{}, false
	}
	var ev types.Evaluator
	if err := json.Unmarshal(bz, &ev); err != nil {
		return types.Evaluator{}, false
	}
	return ev, true
}

// GetEvaluator looks up owner's evaluator record.
func (k Keeper) GetEvaluator(ctx sdk.Context, owner string) (types.Evaluator, bool) {
	return k.getEvaluatorRaw(ctx, owner)
}

// SetEvaluatorGenesis writes an evaluator record directly, bypassing the
// bonding reservation step — used only during InitGenesis, where bonding
// amounts are assumed already reflected in the imported balances.
func (k Keeper) SetEvaluatorGenesis(ctx sdk.Context, ev types.Evaluator) {
	k.setEvaluator(ctx, ev)
}

func (k Keeper) setEvaluator(ctx sdk.Context, ev types.Evaluator) {
	store := ctx.KVStore(k.skey)
	bz, err := json.Marshal(ev)
	if err != nil {
		panic(err)
	}
	store.Set(types.BuildEvaluatorKey(ev.Owner), bz)
}

// CreateEvaluator reserves EvaluatorBonding native from owner and registers
// owner as an evaluator.
func (k Keeper) CreateEvaluator(ctx sdk.Context, owner sdk.AccAddress, name, about string, rate sdkmath.Int) error {
	if _, found := k.getEvaluatorRaw(ctx, owner.String()); found {
		return types.ErrEvaluatorExisted
	}

	params := k.GetParams(ctx)
	if err := k.ledger.Reserve(ctx, ledger.NativeCurrency, owner, params.EvaluatorBonding); err != nil {
		return types.ErrInsufficientBalance.Wrap(err.Error())
	}

	k.setEvaluator(ctx, types.Evaluator{
		Owner: owner.String(),
		Name:  name,
		About: about,
		Rate:  rate.String(),
	})

	ctx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypeEvaluatorCreated, sdk.NewAttribute(types.AttributeKeyOwner, owner.String())))
	k.Logger(ctx).Info("evaluator created", "owner", owner.String())
	return nil
}

// RequestToVerify transfers rate*|positions| native from requestor to
// evaluator immediately (non-reserving) and appends a pending request.
func (k Keeper) RequestToVerify(ctx sdk.Context, requestor sdk.AccAddress, positions []uint32, evaluator sdk.AccAddress) error {
	ev, found := k.getEvaluatorRaw(ctx, evaluator.String())
	if !found {
		return types.ErrEvaluatorNotFound
	}

	rate, ok := sdkmath.NewIntFromString(ev.Rate)
	if !ok {
		rate = sdkmath.ZeroInt()
	}
	cost := rate.MulRaw(int64(len(positions)))
	if err := k.ledger.Transfer(ctx, ledger.NativeCurrency, requestor, evaluator, cost); err != nil {
		return types.ErrInsufficientBalance.Wrap(err.Error())
	}

	ev.PendingRequests = append(ev.PendingRequests, types.VerifyRequest{
		Requestor: requestor.String(),
		Positions: positions,
	})
	k.setEvaluator(ctx, ev)

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeVerifyRequested,
		sdk.NewAttribute(types.AttributeKeyRequestor, requestor.String()),
		sdk.NewAttribute(types.AttributeKeyEvaluator, evaluator.String()),
	))
	return nil
}

// VerifyData applies an evaluator's transcript to subject's identity fields.
// The transcript's positions must exactly match, order-sensitively, a
// pending request's positions (spec.md §4.2: "InvalidTranscript otherwise").
func (k Keeper) VerifyData(ctx sdk.Context, evaluator sdk.AccAddress, subject string, transcript []types.TranscriptEntry) error {
	ev, found := k.getEvaluatorRaw(ctx, evaluator.String())
	if !found {
		return types.ErrEvaluatorNotFound
	}

	reqIdx := -1
	for i, req := range ev.PendingRequests {
		if req.Requestor == subject && transcriptMatchesRequest(req, transcript) {
			reqIdx = i
			break
		}
	}
	if reqIdx < 0 {
		return types.ErrInvalidTranscript
	}

	id, found := k.getIdentityRaw(ctx, subject)
	if !found {
		return types.ErrIdentityNotFound
	}

	for _, entry := range transcript {
		if !entry.IsValid {
			continue
		}
		if int(entry.Position) >= len(id.Data) {
			continue
		}
		id.Data[entry.Position].IsVerified = true
		id.Data[entry.Position].VerifiedBy = evaluator.String()
	}
	k.setIdentity(ctx, id)

	ev.PendingRequests = append(ev.PendingRequests[:reqIdx], ev.PendingRequests[reqIdx+1:]...)
	k.setEvaluator(ctx, ev)

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeDataVerified,
		sdk.NewAttribute(types.AttributeKeyEvaluator, evaluator.String()),
		sdk.NewAttribute(types.AttributeKeySubject, subject),
	))
	return nil
}

func transcriptMatchesRequest(req types.VerifyRequest, transcript []types.TranscriptEntry) bool {
	if len(req.Positions) != len(transcript) {
		return false
	}
	for i, p := range req.Positions {
		if transcript[i].Position != p {
			return false
		}
	}
	return true
}
