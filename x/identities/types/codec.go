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

	// ModuleCdc is the codec for the identities module.
	ModuleCdc = codec.NewProtoCodec(cdctypes.NewInterfaceRegistry())
)

func init() {
	RegisterLegacyAminoCodec(amino)

	proto.RegisterType((*MsgCreateIdentity)(nil), "lrp.identities.v1.MsgCreateIdentity")
	proto.RegisterType((*MsgCreateIdentityResponse)(nil), "lrp.identities.v1.MsgCreateIdentityResponse")
	proto.RegisterType((*MsgUpdateIdentity)(nil), "lrp.identities.v1.MsgUpdateIdentity")
	proto.RegisterType((*MsgUpdateIdentityResponse)(nil), "lrp.identities.v1.MsgUpdateIdentityResponse")
	proto.RegisterType((*MsgUpdateField)(nil), "lrp.identities.v1.MsgUpdateField")
	proto.RegisterType((*MsgUpdateFieldResponse)(nil), "lrp.identities.v1.MsgUpdateFieldResponse")
	proto.RegisterType((*MsgAddField)(nil), "lrp.identities.v1.MsgAddField")
	proto.RegisterType((*MsgAddFieldResponse)(nil), "lrp.identities.v1.MsgAddFieldResponse")
	proto.RegisterType((*MsgRemoveIdentity)(nil), "lrp.identities.v1.MsgRemoveIdentity")
	proto.RegisterType((*MsgRemoveIdentityResponse)(nil), "lrp.identities.v1.MsgRemoveIdentityResponse")
	proto.RegisterType((*MsgReviewIdentity)(nil), "lrp.identities.v1.MsgReviewIdentity")
	proto.RegisterType((*MsgReviewIdentityResponse)(nil), "lrp.identities.v1.MsgReviewIdentityResponse")
	proto.RegisterType((*MsgCreateEvaluator)(nil), "lrp.identities.v1.MsgCreateEvaluator")
	proto.RegisterType((*MsgCreateEvaluatorResponse)(nil), "lrp.identities.v1.MsgCreateEvaluatorResponse")
	proto.RegisterType((*MsgRequestToVerify)(nil), "lrp.identities.v1.MsgRequestToVerify")
	proto.RegisterType((*MsgRequestToVerifyResponse)(nil), "lrp.identities.v1.MsgRequestToVerifyResponse")
	proto.RegisterType((*MsgVerifyData)(nil), "lrp.identities.v1.MsgVerifyData")
	proto.RegisterType((*MsgVerifyDataResponse)(nil), "lrp.identities.v1.MsgVerifyDataResponse")
}

// RegisterLegacyAminoCodec registers the identities module's messages on cdc.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	legacy.RegisterAminoMsg(cdc, &MsgCreateIdentity{}, "lrp/identities/MsgCreateIdentity")
	legacy.RegisterAminoMsg(cdc, &MsgUpdateIdentity{}, "lrp/identities/MsgUpdateIdentity")
	legacy.RegisterAminoMsg(cdc, &MsgUpdateField{}, "lrp/identities/MsgUpdateField")
	legacy.RegisterAminoMsg(cdc, &MsgAddField{}, "lrp/identities/MsgAddField")
	legacy.RegisterAminoMsg(cdc, &MsgRemoveIdentity{}, "lrp/identities/MsgRemoveIdentity")
	legacy.RegisterAminoMsg(cdc, &MsgReviewIdentity{}, "lrp/identities/MsgReviewIdentity")
	legacy.RegisterAminoMsg(cdc, &MsgCreateEvaluator{}, "lrp/identities/MsgCreateEvaluator")
	legacy.RegisterAminoMsg(cdc, &MsgRequestToVerify{}, "lrp/identities/MsgRequestToVerify")
	legacy.RegisterAminoMsg(cdc, &MsgVerifyData{}, "lrp/identities/MsgVerifyData")
}

// RegisterInterfaces registers the module's sdk.Msg implementations.
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgCreateIdentity{},
		&MsgUpdateIdentity{},
		&MsgUpdateField{},
		&MsgAddField{},
		&MsgRemoveIdentity{},
		&MsgReviewIdentity{},
		&MsgCreateEvaluator{},
		&MsgRequestToVerify{},
		&MsgVerifyData{},
	)
}
