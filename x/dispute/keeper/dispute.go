package keeper

import (
	"crypto/sha256"
	"encoding/json"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/lrpchain/lrp/ledger"
	"github.com/lrpchain/lrp/platform"
	"github.com/lrpchain/lrp/x/dispute/types"
)

func (k Keeper) getDisputeRaw(ctx sdk.Context, paymentHash [32]byte) (types.Dispute, bool) {
	store := ctx.KVStore(k.skey)
	bz := store.Get(types.BuildDisputeKey(paymentHash))
	if bz == nil {
		return types.Dispute{}, false
	}
	var d types.Dispute
	if err := json.Unmarshal(bz, &d); err != nil {
		return types.Dispute{}, false
	}
	return d, true
}

func (k Keeper) setDispute(ctx sdk.Context, d types.Dispute) {
	store := ctx.KVStore(k.skey)
	bz, err := json.Marshal(d)
	if err != nil {
		panic(err)
	}
	store.Set(types.BuildDisputeKey(d.PaymentHash), bz)
}

// GetDisputeRecord looks up a dispute by its payment hash.
func (k Keeper) GetDisputeRecord(ctx sdk.Context, paymentHash [32]byte) (types.Dispute, bool) {
	return k.getDisputeRaw(ctx, paymentHash)
}

// SetDisputeGenesis writes a dispute record directly and restores its queue
// membership — used only during InitGenesis.
func (k Keeper) SetDisputeGenesis(ctx sdk.Context, d types.Dispute) {
	k.setDispute(ctx, d)
	if d.Status != types.StatusResolved {
		k.enqueueFinalizing(ctx, d.PaymentHash)
	}
}

func persistArgument(k Keeper, blob []byte, provider string) types.Argument {
	var digest [32]byte
	if len(blob) > 0 {
		digest = sha256.Sum256(blob)
		if k.offchain != nil {
			k.offchain.Set(digest[:], blob)
		}
	}
	return types.Argument{Provider: provider, ContentHash: digest}
}

// CreateDispute opens a dispute over a disputable payment (spec.md §4.5
// create_dispute). The issuer must be the payment's payer.
func (k Keeper) CreateDispute(ctx sdk.Context, issuer sdk.AccAddress, paymentHash [32]byte, argumentBlob []byte) error {
	if !k.payment.CanDispute(ctx, paymentHash) {
		return types.ErrDisputeNotAccepted
	}
	payer, _, _, _, found := k.payment.GetPayment(ctx, paymentHash)
	if !found {
		return types.ErrDisputeNotAccepted
	}
	if payer != issuer.String() {
		return types.ErrAccessDenied
	}
	if _, exists := k.getDisputeRaw(ctx, paymentHash); exists {
		return types.ErrDisputeExisted
	}

	params := k.GetParams(ctx)
	fee := params.DisputeFee
	if err := k.ledger.Reserve(ctx, ledger.NativeCurrency, issuer, fee); err != nil {
		return types.ErrInsufficientBalance.Wrap(err.Error())
	}
	if err := k.payment.DisputePayment(ctx, paymentHash); err != nil {
		return err
	}

	d := types.Dispute{
		PaymentHash: paymentHash,
		Status:      types.StatusFinalizing,
		ExpiresAt:   ctx.BlockTime().Add(params.DisputeFinalizingTime),
		Arguments:   []types.Argument{persistArgument(k, argumentBlob, issuer.String())},
		Resolvers:   nil,
		Fee:         fee,
		Judgments:   nil,
		Outcome:     types.JudgmentReleaseFundToPayer,
	}
	k.setDispute(ctx, d)
	k.enqueueFinalizing(ctx, paymentHash)

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeDisputeCreated,
		sdk.NewAttribute(types.AttributeKeyPaymentHash, hashHex(paymentHash)),
		sdk.NewAttribute(types.AttributeKeyCaller, issuer.String()),
		sdk.NewAttribute(types.AttributeKeyEvidenceID, platform.NewEvidenceID()),
	))
	k.Logger(ctx).Info("dispute created", "payment_hash", hashHex(paymentHash), "issuer", issuer.String())
	return nil
}

// FightDispute implements spec.md §4.5's aggrieved-party rebuttal: the
// caller is accepted only if the current outcome favors the other party.
func (k Keeper) FightDispute(ctx sdk.Context, caller sdk.AccAddress, paymentHash [32]byte, argumentBlob []byte) error {
	d, found := k.getDisputeRaw(ctx, paymentHash)
	if !found {
		return types.ErrDisputeNotFound
	}
	if d.Status != types.StatusFinalizing {
		return types.ErrActionForOnlyFinalizingDispute
	}
	payer, payee, _, _, found := k.payment.GetPayment(ctx, paymentHash)
	if !found {
		return types.ErrDisputeNotFound
	}

	callerStr := caller.String()
	aggrieved := (d.Outcome == types.JudgmentReleaseFundToPayee && callerStr == payer) ||
		(d.Outcome == types.JudgmentReleaseFundToPayer && callerStr == payee)
	if !aggrieved {
		return types.ErrAccessDenied
	}

	// Reserve dispute.fee verbatim — the cumulative fee of prior rounds, not
	// DisputeFee × new-round-size. See Decided Open Question #2: this is the
	// observed source behavior, preserved rather than corrected.
	if err := k.ledger.Reserve(ctx, ledger.NativeCurrency, caller, d.Fee); err != nil {
		return types.ErrInsufficientBalance.Wrap(err.Error())
	}

	panelSize := len(d.Resolvers) + 1
	excluded := append([]string{}, d.Resolvers...)
	for i := 0; i < panelSize; i++ {
		drawn, err := k.drawResolver(ctx, paymentHash, excluded)
		if err != nil {
			return err
		}
		d.Resolvers = append(d.Resolvers, drawn)
		excluded = append(excluded, drawn)
	}

	d.Arguments = append(d.Arguments, persistArgument(k, argumentBlob, callerStr))
	d.Status = types.StatusEvaluating
	k.removeFromFinalizingQueue(ctx, paymentHash)
	k.setDispute(ctx, d)

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeDisputeFought,
		sdk.NewAttribute(types.AttributeKeyPaymentHash, hashHex(paymentHash)),
		sdk.NewAttribute(types.AttributeKeyCaller, callerStr),
		sdk.NewAttribute(types.AttributeKeyEvidenceID, platform.NewEvidenceID()),
	))
	return nil
}

func (k Keeper) drawResolver(ctx sdk.Context, paymentHash [32]byte, excluded []string) (string, error) {
	return k.resolvers.GetResolver(ctx, paymentHash, excluded)
}

// EscalateDispute lets either party raise the stakes while the dispute is
// still awaiting a rebuttal, shifting the default outcome toward themselves
// and growing the cumulative fee by one more round (spec.md §4.5
// escalate_dispute). The dispute keeps its queue position and expiry.
func (k Keeper) EscalateDispute(ctx sdk.Context, caller sdk.AccAddress, paymentHash [32]byte) error {
	d, found := k.getDisputeRaw(ctx, paymentHash)
	if !found {
		return types.ErrDisputeNotFound
	}
	if d.Status != types.StatusFinalizing {
		return types.ErrActionForOnlyFinalizingDispute
	}
	payer, payee, _, _, found := k.payment.GetPayment(ctx, paymentHash)
	if !found {
		return types.ErrDisputeNotFound
	}
	callerStr := caller.String()
	if callerStr != payer && callerStr != payee {
		return types.ErrAccessDenied
	}

	params := k.GetParams(ctx)
	extraFee := params.DisputeFee.MulRaw(int64(len(d.Resolvers) + 1))
	if err := k.ledger.Reserve(ctx, ledger.NativeCurrency, caller, extraFee); err != nil {
		return types.ErrInsufficientBalance.Wrap(err.Error())
	}
	d.Fee = d.Fee.Add(extraFee)
	if callerStr == payer {
		d.Outcome = types.JudgmentReleaseFundToPayer
	} else {
		d.Outcome = types.JudgmentReleaseFundToPayee
	}
	k.setDispute(ctx, d)

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeDisputeEscalated,
		sdk.NewAttribute(types.AttributeKeyPaymentHash, hashHex(paymentHash)),
		sdk.NewAttribute(types.AttributeKeyCaller, callerStr),
	))
	return nil
}

// ProposeOutcome records a drawn resolver's judgment. Once every drawn
// resolver has judged, the dispute's outcome is tallied and it is returned
// to the finalizing queue under a fresh position, its original expiry kept
// unchanged (spec.md §4.5 propose_outcome).
func (k Keeper) ProposeOutcome(ctx sdk.Context, resolver sdk.AccAddress, paymentHash [32]byte, judgment types.Judgment) error {
	d, found := k.getDisputeRaw(ctx, paymentHash)
	if !found {
		return types.ErrDisputeNotFound
	}
	resolverStr := resolver.String()
	if !d.IsSelectedResolver(resolverStr) {
		return types.ErrNotASelectedResolver
	}
	if d.HasJudgmentFrom(resolverStr) {
		return types.ErrAlreadyJudged
	}
	if d.Status != types.StatusEvaluating {
		return types.ErrActionForOnlyFinalizingDispute
	}

	d.Judgments = append(d.Judgments, types.JudgmentEntry{Resolver: resolverStr, Judgment: judgment})
	if len(d.Judgments) == len(d.Resolvers) {
		d.Outcome = types.TallyOutcome(d.Judgments)
		d.Status = types.StatusFinalizing
		k.enqueueFinalizing(ctx, paymentHash)
	}
	k.setDispute(ctx, d)

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeOutcomeProposed,
		sdk.NewAttribute(types.AttributeKeyPaymentHash, hashHex(paymentHash)),
		sdk.NewAttribute(types.AttributeKeyResolver, resolverStr),
	))
	return nil
}
