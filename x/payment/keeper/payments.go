package keeper

import (
	"encoding/json"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/lrpchain/lrp/ledger"
	"github.com/lrpchain/lrp/x/payment/types"
)

func (k Keeper) getPaymentRaw(ctx sdk.Context, hash [32]byte) (types.Payment, bool) {
	store := ctx.KVStore(k.skey)
	bz := store.Get(types.BuildPaymentKey(hash))
	if bz == nil {
		return types.Payment{}, false
	}
	var p types.Payment
	if err := json.Unmarshal(bz, &p); err != nil {
		return types.Payment{}, false
	}
	return p, true
}

func (k Keeper) setPayment(ctx sdk.Context, p types.Payment) {
	store := ctx.KVStore(k.skey)
	bz, err := json.Marshal(p)
	if err != nil {
		panic(err)
	}
	hash := types.HashPayment(p)
	store.Set(types.BuildPaymentKey(hash), bz)
}

// GetPaymentRecord looks up a payment by its content hash.
func (k Keeper) GetPaymentRecord(ctx sdk.Context, hash [32]byte) (types.Payment, bool) {
	return k.getPaymentRaw(ctx, hash)
}

// GetPayment implements the external read interface of spec.md §4.4:
// get_payment(hash) → (payer, payee, amount, currency_id).
func (k Keeper) GetPayment(ctx sdk.Context, hash [32]byte) (payer, payee string, amount sdkmath.Int, currency ledger.CurrencyID, found bool) {
	p, ok := k.getPaymentRaw(ctx, hash)
	if !ok {
		return "", "", sdkmath.Int{}, ledger.CurrencyID{}, false
	}
	return p.Payer, p.Payee, p.Amount, p.Currency, true
}

// CanDispute implements spec.md §4.4's can_dispute(hash) → bool.
func (k Keeper) CanDispute(ctx sdk.Context, hash [32]byte) bool {
	p, ok := k.getPaymentRaw(ctx, hash)
	return ok && p.Status.CanDispute()
}

// SetPaymentGenesis writes a payment record directly and restores its queue
// membership from its status — used only during InitGenesis.
func (k Keeper) SetPaymentGenesis(ctx sdk.Context, p types.Payment) {
	k.setPayment(ctx, p)
	hash := types.HashPayment(p)
	switch p.Status {
	case types.StatusPending:
		k.enqueuePending(ctx, hash)
	case types.StatusFulfilled:
		k.enqueueFulfilled(ctx, hash)
	}
}

func (k Keeper) enqueuePending(ctx sdk.Context, hash [32]byte) {
	store := ctx.KVStore(k.skey)
	seq := k.nextSeq(ctx, types.PendingQueueSequenceKey)
	store.Set(types.BuildPendingQueueKey(seq, hash), hash[:])
}

func (k Keeper) enqueueFulfilled(ctx sdk.Context, hash [32]byte) {
	store := ctx.KVStore(k.skey)
	seq := k.nextSeq(ctx, types.FulfilledQueueSequenceKey)
	store.Set(types.BuildFulfilledQueueKey(seq, hash), hash[:])
}

// CreatePayment reserves amount from payer and opens a new escrowed payment
// (spec.md §4.4 create_payment).
func (k Keeper) CreatePayment(
	ctx sdk.Context,
	payer, payee sdk.AccAddress,
	amount sdkmath.Int,
	currency ledger.CurrencyID,
	description string,
	receiptBlob []byte,
) ([32]byte, error) {
	if !amount.IsPositive() {
		return [32]byte{}, types.ErrInvalidAmount
	}
	if !k.currency.IsCurrencyAccepted(ctx, payee, currency) {
		return [32]byte{}, types.ErrUnacceptedCurrency
	}
	if err := k.ledger.Reserve(ctx, currency, payer, amount); err != nil {
		return [32]byte{}, types.ErrInsufficientBalance.Wrap(err.Error())
	}

	now := ctx.BlockTime()
	var receiptHash [32]byte
	if len(receiptBlob) > 0 {
		receiptHash = sha256Sum(receiptBlob)
		if k.offchain != nil {
			k.offchain.Set(receiptHash[:], receiptBlob)
		}
	}

	p := types.Payment{
		ID:          k.nextPaymentID(ctx),
		Payer:       payer.String(),
		Payee:       payee.String(),
		Amount:      amount,
		Currency:    currency,
		Description: description,
		Status:      types.StatusPending,
		ReceiptHash: receiptHash,
		CreatedAt:   now,
		UpdatedAt:   now,
		UpdatedBy:   payer.String(),
	}
	hash := types.HashPayment(p)
	k.setPayment(ctx, p)
	k.enqueuePending(ctx, hash)

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypePaymentCreated,
		sdk.NewAttribute(types.AttributeKeyPaymentHash, hashHex(hash)),
		sdk.NewAttribute(types.AttributeKeyPayer, p.Payer),
		sdk.NewAttribute(types.AttributeKeyPayee, p.Payee),
		sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
	))
	k.Logger(ctx).Info("payment created", "hash", hashHex(hash), "payer", p.Payer, "payee", p.Payee)
	return hash, nil
}

// AcceptPayment transitions a Pending payment to Accepted (payee-only).
func (k Keeper) AcceptPayment(ctx sdk.Context, caller sdk.AccAddress, hash [32]byte) error {
	p, found := k.getPaymentRaw(ctx, hash)
	if !found {
		return types.ErrPaymentNotFound
	}
	if p.Payee != caller.String() {
		return types.ErrAccessDenied
	}
	if p.Status != types.StatusPending {
		return types.ErrInvalidStatusChange
	}
	k.removeFromPendingQueue(ctx, hash)
	p.Status = types.StatusAccepted
	p.UpdatedAt = ctx.BlockTime()
	p.UpdatedBy = caller.String()
	k.setPayment(ctx, p)

	ctx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypePaymentAccepted, sdk.NewAttribute(types.AttributeKeyPaymentHash, hashHex(hash))))
	return nil
}

// RejectPayment transitions a Pending payment to Rejected (payee-only),
// unreserving the payer's escrow.
func (k Keeper) RejectPayment(ctx sdk.Context, caller sdk.AccAddress, hash [32]byte) error {
	p, found := k.getPaymentRaw(ctx, hash)
	if !found {
		return types.ErrPaymentNotFound
	}
	if p.Payee != caller.String() {
		return types.ErrAccessDenied
	}
	if p.Status != types.StatusPending {
		return types.ErrInvalidStatusChange
	}
	k.removeFromPendingQueue(ctx, hash)
	k.unreservePayer(ctx, p)
	p.Status = types.StatusRejected
	p.UpdatedAt = ctx.BlockTime()
	p.UpdatedBy = caller.String()
	k.setPayment(ctx, p)

	ctx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypePaymentRejected, sdk.NewAttribute(types.AttributeKeyPaymentHash, hashHex(hash))))
	return nil
}

// CancelPayment cancels a Pending payment (payer) or an Accepted payment
// (payee), unreserving the payer's escrow.
func (k Keeper) CancelPayment(ctx sdk.Context, caller sdk.AccAddress, hash [32]byte) error {
	p, found := k.getPaymentRaw(ctx, hash)
	if !found {
		return types.ErrPaymentNotFound
	}
	switch {
	case p.Status == types.StatusPending && p.Payer == caller.String():
		k.removeFromPendingQueue(ctx, hash)
	case p.Status == types.StatusAccepted && p.Payee == caller.String():
		// no queue membership to remove
	default:
		return types.ErrInvalidStatusChange
	}
	k.unreservePayer(ctx, p)
	p.Status = types.StatusCancelled
	p.UpdatedAt = ctx.BlockTime()
	p.UpdatedBy = caller.String()
	k.setPayment(ctx, p)

	ctx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypePaymentCancelled, sdk.NewAttribute(types.AttributeKeyPaymentHash, hashHex(hash))))
	return nil
}

// FulfillPayment transitions an Accepted payment to Fulfilled (payee-only).
func (k Keeper) FulfillPayment(ctx sdk.Context, caller sdk.AccAddress, hash [32]byte) error {
	p, found := k.getPaymentRaw(ctx, hash)
	if !found {
		return types.ErrPaymentNotFound
	}
	if p.Payee != caller.String() {
		return types.ErrAccessDenied
	}
	if p.Status != types.StatusAccepted {
		return types.ErrInvalidStatusChange
	}
	p.Status = types.StatusFulfilled
	p.UpdatedAt = ctx.BlockTime()
	p.UpdatedBy = caller.String()
	k.setPayment(ctx, p)
	k.enqueueFulfilled(ctx, hash)

	ctx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypePaymentFulfilled, sdk.NewAttribute(types.AttributeKeyPaymentHash, hashHex(hash))))
	return nil
}

// CompletePayment transitions a Fulfilled payment to Completed (payer-only),
// transferring the escrow from payer to payee.
func (k Keeper) CompletePayment(ctx sdk.Context, caller sdk.AccAddress, hash [32]byte) error {
	p, found := k.getPaymentRaw(ctx, hash)
	if !found {
		return types.ErrPaymentNotFound
	}
	if p.Payer != caller.String() {
		return types.ErrAccessDenied
	}
	if p.Status != types.StatusFulfilled {
		return types.ErrInvalidStatusChange
	}
	k.removeFromFulfilledQueue(ctx, hash)
	if err := k.settle(ctx, p); err != nil {
		return err
	}
	p.Status = types.StatusCompleted
	p.UpdatedAt = ctx.BlockTime()
	p.UpdatedBy = caller.String()
	k.setPayment(ctx, p)

	ctx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypePaymentCompleted, sdk.NewAttribute(types.AttributeKeyPaymentHash, hashHex(hash))))
	return nil
}

// DisputePayment transitions an Accepted or Fulfilled payment to Disputed.
// Called by the dispute engine's create_dispute, not exposed as a direct
// user message (spec.md §4.4/§4.5: disputed payments are owned by the
// dispute engine from this point on).
func (k Keeper) DisputePayment(ctx sdk.Context, hash [32]byte) error {
	p, found := k.getPaymentRaw(ctx, hash)
	if !found {
		return types.ErrPaymentNotFound
	}
	if !p.Status.CanDispute() {
		return types.ErrDisputeNotAccepted
	}
	if p.Status == types.StatusFulfilled {
		k.removeFromFulfilledQueue(ctx, hash)
	}
	p.Status = types.StatusDisputed
	p.UpdatedAt = ctx.BlockTime()
	k.setPayment(ctx, p)

	ctx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypePaymentDisputed, sdk.NewAttribute(types.AttributeKeyPaymentHash, hashHex(hash))))
	return nil
}

func (k Keeper) unreservePayer(ctx sdk.Context, p types.Payment) {
	payer, err := sdk.AccAddressFromBech32(p.Payer)
	if err != nil {
		k.Logger(ctx).Error("invalid payer address in stored payment", "payer", p.Payer, "err", err)
		return
	}
	k.ledger.Unreserve(ctx, p.Currency, payer, p.Amount)
}

func (k Keeper) settle(ctx sdk.Context, p types.Payment) error {
	payer, err := sdk.AccAddressFromBech32(p.Payer)
	if err != nil {
		return types.ErrAccessDenied.Wrap(err.Error())
	}
	payee, err := sdk.AccAddressFromBech32(p.Payee)
	if err != nil {
		return types.ErrAccessDenied.Wrap(err.Error())
	}
	k.ledger.Unreserve(ctx, p.Currency, payer, p.Amount)
	if err := k.ledger.Transfer(ctx, p.Currency, payer, payee, p.Amount); err != nil {
		return types.ErrInsufficientBalance.Wrap(err.Error())
	}
	return nil
}
