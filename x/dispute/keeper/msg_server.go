package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/lrpchain/lrp/x/dispute/types"
)

type msgServer struct {
	keeper Keeper
}

// NewMsgServerImpl returns an implementation of types.MsgServer.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{keeper: keeper}
}

func decodeDisputeHash(raw []byte) ([32]byte, error) {
	var hash [32]byte
	if len(raw) != 32 {
		return hash, types.ErrDisputeNotFound.Wrap("payment hash must be 32 bytes")
	}
	copy(hash[:], raw)
	return hash, nil
}

func (s *msgServer) CreateDispute(goCtx context.Context, msg *types.MsgCreateDispute) (*types.MsgCreateDisputeResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	issuer, err := sdk.AccAddressFromBech32(msg.Issuer)
	if err != nil {
		return nil, err
	}
	hash, err := decodeDisputeHash(msg.PaymentHash)
	if err != nil {
		return nil, err
	}
	if err := s.keeper.CreateDispute(ctx, issuer, hash, msg.ArgumentBlob); err != nil {
		return nil, err
	}
	return &types.MsgCreateDisputeResponse{}, nil
}

func (s *msgServer) FightDispute(goCtx context.Context, msg *types.MsgFightDispute) (*types.MsgFightDisputeResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	caller, err := sdk.AccAddressFromBech32(msg.Caller)
	if err != nil {
		return nil, err
	}
	hash, err := decodeDisputeHash(msg.PaymentHash)
	if err != nil {
		return nil, err
	}
	if err := s.keeper.FightDispute(ctx, caller, hash, msg.ArgumentBlob); err != nil {
		return nil, err
	}
	return &types.MsgFightDisputeResponse{}, nil
}

func (s *msgServer) EscalateDispute(goCtx context.Context, msg *types.MsgEscalateDispute) (*types.MsgEscalateDisputeResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	caller, err := sdk.AccAddressFromBech32(msg.Caller)
	if err != nil {
		return nil, err
	}
	hash, err := decodeDisputeHash(msg.PaymentHash)
	if err != nil {
		return nil, err
	}
	if err := s.keeper.EscalateDispute(ctx, caller, hash); err != nil {
		return nil, err
	}
	return &types.MsgEscalateDisputeResponse{}, nil
}

func (s *msgServer) ProposeOutcome(goCtx context.Context, msg *types.MsgProposeOutcome) (*types.MsgProposeOutcomeResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	resolver, err := sdk.AccAddressFromBech32(msg.Resolver)
	if err != nil {
		return nil, err
	}
	hash, err := decodeDisputeHash(msg.PaymentHash)
	if err != nil {
		return nil, err
	}
	judgment := types.JudgmentReleaseFundToPayer
	if msg.Judgment == uint8(types.JudgmentReleaseFundToPayee) {
		judgment = types.JudgmentReleaseFundToPayee
	}
	if err := s.keeper.ProposeOutcome(ctx, resolver, hash, judgment); err != nil {
		return nil, err
	}
	return &types.MsgProposeOutcomeResponse{}, nil
}

var _ types.MsgServer = (*msgServer)(nil)
