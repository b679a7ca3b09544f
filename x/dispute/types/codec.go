package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	"github.com/cosmos/cosmos-sdk/codec/legacy"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/gogoproto/proto"
)

var (
	amino = codec.NewLegacyAmino()

	// ModuleCdc is the codec for the dispute module.
	ModuleCdc = codec.NewProtoCodec(cdctypes.NewInterfaceRegistry())
)

func init() {
	RegisterLegacyAminoCodec(amino)

	proto.RegisterType((*MsgCreateDispute)(nil), "lrp.dispute.v1.MsgCreateDispute")
	proto.RegisterType((*MsgCreateDisputeResponse)(nil), "lrp.dispute.v1.MsgCreateDisputeResponse")
	proto.RegisterType((*MsgFightDispute)(nil), "lrp.dispute.v1.MsgFightDispute")
	proto.RegisterType((*MsgFightDisputeResponse)(nil), "lrp.dispute.v1.MsgFightDisputeResponse")
	proto.RegisterType((*MsgEscalateDispute)(nil), "lrp.dispute.v1.MsgEscalateDispute")
	proto.RegisterType((*MsgEscalateDisputeResponse)(nil), "lrp.dispute.v1.MsgEscalateDisputeResponse")
	proto.RegisterType((*MsgProposeOutcome)(nil), "lrp.dispute.v1.MsgProposeOutcome")
	proto.RegisterType((*MsgProposeOutcomeResponse)(nil), "lrp.dispute.v1.MsgProposeOutcomeResponse")
}

// RegisterLegacyAminoCodec registers the dispute module's messages on cdc.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	legacy.RegisterAminoMsg(cdc, &MsgCreateDispute{}, "lrp/dispute/MsgCreateDispute")
	legacy.RegisterAminoMsg(cdc, &MsgFightDispute{}, "lrp/dispute/MsgFightDispute")
	legacy.RegisterAminoMsg(cdc, &MsgEscalateDispute{}, "lrp/dispute/MsgEscalateDispute")
	legacy.RegisterAminoMsg(cdc, &MsgProposeOutcome{}, "lrp/dispute/MsgProposeOutcome")
}

// RegisterInterfaces registers the module's sdk.Msg implementations.
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgCreateDispute{},
		&MsgFightDispute{},
		&MsgEscalateDispute{},
		&MsgProposeOutcome{},
	)
}
