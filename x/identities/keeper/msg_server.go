package keeper

import (
	"context"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/lrpchain/lrp/x/identities/types"
)

type msgServer struct {
	keeper Keeper
}

// NewMsgServerImpl returns an implementation of the identities MsgServer.
func NewMsgServerImpl(k Keeper) types.MsgServer {
	return &msgServer{keeper: k}
}

var _ types.MsgServer = msgServer{}

func (ms msgServer) CreateIdentity(goCtx context.Context, msg *types.MsgCreateIdentity) (*types.MsgCreateIdentityResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := ms.keeper.CreateIdentity(ctx, msg.Owner, msg.Name, types.IdentityKind(msg.Kind)); err != nil {
		return nil, err
	}
	return &types.MsgCreateIdentityResponse{}, nil
}

func (ms msgServer) UpdateIdentity(goCtx context.Context, msg *types.MsgUpdateIdentity) (*types.MsgUpdateIdentityResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := ms.keeper.UpdateIdentity(ctx, msg.Owner, msg.Name, types.IdentityKind(msg.Kind)); err != nil {
		return nil, err
	}
	return &types.MsgUpdateIdentityResponse{}, nil
}

func (ms msgServer) UpdateField(goCtx context.Context, msg *types.MsgUpdateField) (*types.MsgUpdateFieldResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	field := types.IdentityField{Name: msg.FieldName, Value: msg.Value, VerifyMethod: types.VerifyMethod(msg.VerifyMethod)}
	if err := ms.keeper.UpdateField(ctx, msg.Owner, field); err != nil {
		return nil, err
	}
	return &types.MsgUpdateFieldResponse{}, nil
}

func (ms msgServer) AddField(goCtx context.Context, msg *types.MsgAddField) (*types.MsgAddFieldResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	field := types.IdentityField{Name: msg.FieldName, Value: msg.Value, VerifyMethod: types.VerifyMethod(msg.VerifyMethod)}
	if err := ms.keeper.AddField(ctx, msg.Owner, field); err != nil {
		return nil, err
	}
	return &types.MsgAddFieldResponse{}, nil
}

func (ms msgServer) RemoveIdentity(goCtx context.Context, msg *types.MsgRemoveIdentity) (*types.MsgRemoveIdentityResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := ms.keeper.RemoveIdentity(ctx, msg.Owner); err != nil {
		return nil, err
	}
	return &types.MsgRemoveIdentityResponse{}, nil
}

func (ms msgServer) ReviewIdentity(goCtx context.Context, msg *types.MsgReviewIdentity) (*types.MsgReviewIdentityResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := ms.keeper.ReviewIdentity(ctx, msg.Reviewer, msg.Subject, msg.Content); err != nil {
		return nil, err
	}
	return &types.MsgReviewIdentityResponse{}, nil
}

func (ms msgServer) CreateEvaluator(goCtx context.Context, msg *types.MsgCreateEvaluator) (*types.MsgCreateEvaluatorResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	owner, err := sdk.AccAddressFromBech32(msg.Owner)
	if err != nil {
		return nil, types.ErrAccessDenied.Wrap("invalid owner address")
	}
	rate, ok := sdkmath.NewIntFromString(msg.Rate)
	if !ok {
		rate = sdkmath.ZeroInt()
	}
	if err := ms.keeper.CreateEvaluator(ctx, owner, msg.Name, msg.About, rate); err != nil {
		return nil, err
	}
	return &types.MsgCreateEvaluatorResponse{}, nil
}

func (ms msgServer) RequestToVerify(goCtx context.Context, msg *types.MsgRequestToVerify) (*types.MsgRequestToVerifyResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	requestor, err := sdk.AccAddressFromBech32(msg.Requestor)
	if err != nil {
		return nil, types.ErrAccessDenied.Wrap("invalid requestor address")
	}
	evaluator, err := sdk.AccAddressFromBech32(msg.Evaluator)
	if err != nil {
		return nil, types.ErrEvaluatorNotFound.Wrap("invalid evaluator address")
	}
	if err := ms.keeper.RequestToVerify(ctx, requestor, msg.Positions, evaluator); err != nil {
		return nil, err
	}
	return &types.MsgRequestToVerifyResponse{}, nil
}

func (ms msgServer) VerifyData(goCtx context.Context, msg *types.MsgVerifyData) (*types.MsgVerifyDataResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	evaluator, err := sdk.AccAddressFromBech32(msg.Evaluator)
	if err != nil {
		return nil, types.ErrEvaluatorNotFound.Wrap("invalid evaluator address")
	}
	if err := ms.keeper.VerifyData(ctx, evaluator, msg.Subject, msg.Transcript); err != nil {
		return nil, err
	}
	return &types.MsgVerifyDataResponse{}, nil
}
