package keeper

import (
	"context"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/lrpchain/lrp/ledger"
	"github.com/lrpchain/lrp/x/payment/types"
)

type msgServer struct {
	keeper Keeper
}

// NewMsgServerImpl returns an implementation of types.MsgServer.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{keeper: keeper}
}

func decodePaymentCurrency(native bool, hash []byte) (ledger.CurrencyID, error) {
	if native {
		return ledger.NativeCurrency, nil
	}
	if len(hash) != 32 {
		return ledger.CurrencyID{}, types.ErrInvalidAmount.Wrap("currency hash must be 32 bytes")
	}
	var id ledger.CurrencyID
	copy(id.Hash[:], hash)
	return id, nil
}

func (s *msgServer) CreatePayment(goCtx context.Context, msg *types.MsgCreatePayment) (*types.MsgCreatePaymentResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	payer, err := sdk.AccAddressFromBech32(msg.Payer)
	if err != nil {
		return nil, err
	}
	payee, err := sdk.AccAddressFromBech32(msg.Payee)
	if err != nil {
		return nil, err
	}
	amount, ok := sdkmath.NewIntFromString(msg.Amount)
	if !ok {
		return nil, types.ErrInvalidAmount
	}
	currency, err := decodePaymentCurrency(msg.Native, msg.CurrencyHash)
	if err != nil {
		return nil, err
	}

	hash, err := s.keeper.CreatePayment(ctx, payer, payee, amount, currency, msg.Description, msg.ReceiptBlob)
	if err != nil {
		return nil, err
	}
	return &types.MsgCreatePaymentResponse{PaymentHash: hash[:]}, nil
}

func decodePaymentHash(raw []byte) ([32]byte, error) {
	var hash [32]byte
	if len(raw) != 32 {
		return hash, types.ErrPaymentNotFound.Wrap("payment hash must be 32 bytes")
	}
	copy(hash[:], raw)
	return hash, nil
}

func (s *msgServer) AcceptPayment(goCtx context.Context, msg *types.MsgAcceptPayment) (*types.MsgAcceptPaymentResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	caller, err := sdk.AccAddressFromBech32(msg.Caller)
	if err != nil {
		return nil, err
	}
	hash, err := decodePaymentHash(msg.PaymentHash)
	if err != nil {
		return nil, err
	}
	if err := s.keeper.AcceptPayment(ctx, caller, hash); err != nil {
		return nil, err
	}
	return &types.MsgAcceptPaymentResponse{}, nil
}

func (s *msgServer) RejectPayment(goCtx context.Context, msg *types.MsgRejectPayment) (*types.MsgRejectPaymentResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	caller, err := sdk.AccAddressFromBech32(msg.Caller)
	if err != nil {
		return nil, err
	}
	hash, err := decodePaymentHash(msg.PaymentHash)
	if err != nil {
		return nil, err
	}
	if err := s.keeper.RejectPayment(ctx, caller, hash); err != nil {
		return nil, err
	}
	return &types.MsgRejectPaymentResponse{}, nil
}

func (s *msgServer) CancelPayment(goCtx context.Context, msg *types.MsgCancelPayment) (*types.MsgCancelPaymentResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	caller, err := sdk.AccAddressFromBech32(msg.Caller)
	if err != nil {
		return nil, err
	}
	hash, err := decodePaymentHash(msg.PaymentHash)
	if err != nil {
		return nil, err
	}
	if err := s.keeper.CancelPayment(ctx, caller, hash); err != nil {
		return nil, err
	}
	return &types.MsgCancelPaymentResponse{}, nil
}

func (s *msgServer) FulfillPayment(goCtx context.Context, msg *types.MsgFulfillPayment) (*types.MsgFulfillPaymentResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	caller, err := sdk.AccAddressFromBech32(msg.Caller)
	if err != nil {
		return nil, err
	}
	hash, err := decodePaymentHash(msg.PaymentHash)
	if err != nil {
		return nil, err
	}
	if err := s.keeper.FulfillPayment(ctx, caller, hash); err != nil {
		return nil, err
	}
	return &types.MsgFulfillPaymentResponse{}, nil
}

func (s *msgServer) CompletePayment(goCtx context.Context, msg *types.MsgCompletePayment) (*types.MsgCompletePaymentResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	caller, err := sdk.AccAddressFromBech32(msg.Caller)
	if err != nil {
		return nil, err
	}
	hash, err := decodePaymentHash(msg.PaymentHash)
	if err != nil {
		return nil, err
	}
	if err := s.keeper.CompletePayment(ctx, caller, hash); err != nil {
		return nil, err
	}
	return &types.MsgCompletePaymentResponse{}, nil
}

var _ types.MsgServer = (*msgServer)(nil)
