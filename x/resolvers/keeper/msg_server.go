package keeper

import (
	"context"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/lrpchain/lrp/x/resolvers/types"
)

type msgServer struct {
	keeper Keeper
}

// NewMsgServerImpl returns an implementation of the resolvers MsgServer.
func NewMsgServerImpl(k Keeper) types.MsgServer {
	return &msgServer{keeper: k}
}

var _ types.MsgServer = msgServer{}

func parseAmount(raw string) sdkmath.Int {
	amount, ok := sdkmath.NewIntFromString(raw)
	if !ok {
		return sdkmath.ZeroInt()
	}
	return amount
}

func (ms msgServer) Join(goCtx context.Context, msg *types.MsgJoin) (*types.MsgJoinResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	applicant, err := sdk.AccAddressFromBech32(msg.Applicant)
	if err != nil {
		return nil, types.ErrAccessDenied.Wrap("invalid applicant address")
	}
	if err := ms.keeper.Join(ctx, applicant, msg.ApplicationBlob, parseAmount(msg.SelfStake)); err != nil {
		return nil, err
	}
	return &types.MsgJoinResponse{}, nil
}

func (ms msgServer) Delegate(goCtx context.Context, msg *types.MsgDelegate) (*types.MsgDelegateResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	delegator, err := sdk.AccAddressFromBech32(msg.Delegator)
	if err != nil {
		return nil, types.ErrAccessDenied.Wrap("invalid delegator address")
	}
	resolver, err := sdk.AccAddressFromBech32(msg.Resolver)
	if err != nil {
		return nil, types.ErrResolverNotFound.Wrap("invalid resolver address")
	}
	if err := ms.keeper.Delegate(ctx, delegator, resolver, parseAmount(msg.Amount)); err != nil {
		return nil, err
	}
	return &types.MsgDelegateResponse{}, nil
}

func (ms msgServer) Undelegate(goCtx context.Context, msg *types.MsgUndelegate) (*types.MsgUndelegateResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	delegator, err := sdk.AccAddressFromBech32(msg.Delegator)
	if err != nil {
		return nil, types.ErrAccessDenied.Wrap("invalid delegator address")
	}
	resolver, err := sdk.AccAddressFromBech32(msg.Resolver)
	if err != nil {
		return nil, types.ErrResolverNotFound.Wrap("invalid resolver address")
	}
	if err := ms.keeper.Undelegate(ctx, delegator, resolver, parseAmount(msg.Amount)); err != nil {
		return nil, err
	}
	return &types.MsgUndelegateResponse{}, nil
}

func (ms msgServer) Resign(goCtx context.Context, msg *types.MsgResign) (*types.MsgResignResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	caller, err := sdk.AccAddressFromBech32(msg.Caller)
	if err != nil {
		return nil, types.ErrAccessDenied.Wrap("invalid caller address")
	}
	if err := ms.keeper.Resign(ctx, caller); err != nil {
		return nil, err
	}
	return &types.MsgResignResponse{}, nil
}
