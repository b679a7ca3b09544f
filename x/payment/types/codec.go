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

	// ModuleCdc is the codec for the payment module.
	ModuleCdc = codec.NewProtoCodec(cdctypes.NewInterfaceRegistry())
)

func init() {
	RegisterLegacyAminoCodec(amino)

	proto.RegisterType((*MsgCreatePayment)(nil), "lrp.payment.v1.MsgCreatePayment")
	proto.RegisterType((*MsgCreatePaymentResponse)(nil), "lrp.payment.v1.MsgCreatePaymentResponse")
	proto.RegisterType((*MsgAcceptPayment)(nil), "lrp.payment.v1.MsgAcceptPayment")
	proto.RegisterType((*MsgAcceptPaymentResponse)(nil), "lrp.payment.v1.MsgAcceptPaymentResponse")
	proto.RegisterType((*MsgRejectPayment)(nil), "lrp.payment.v1.MsgRejectPayment")
	proto.RegisterType((*MsgRejectPaymentResponse)(nil), "lrp.payment.v1.MsgRejectPaymentResponse")
	proto.RegisterType((*MsgCancelPayment)(nil), "lrp.payment.v1.MsgCancelPayment")
	proto.RegisterType((*MsgCancelPaymentResponse)(nil), "lrp.payment.v1.MsgCancelPaymentResponse")
	proto.RegisterType((*MsgFulfillPayment)(nil), "lrp.payment.v1.MsgFulfillPayment")
	proto.RegisterType((*MsgFulfillPaymentResponse)(nil), "lrp.payment.v1.MsgFulfillPaymentResponse")
	proto.RegisterType((*MsgCompletePayment)(nil), "lrp.payment.v1.MsgCompletePayment")
	proto.RegisterType((*MsgCompletePaymentResponse)(nil), "lrp.payment.v1.MsgCompletePaymentResponse")
}

// RegisterLegacyAminoCodec registers the payment module's messages on cdc.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	legacy.RegisterAminoMsg(cdc, &MsgCreatePayment{}, "lrp/payment/MsgCreatePayment")
	legacy.RegisterAminoMsg(cdc, &MsgAcceptPayment{}, "lrp/payment/MsgAcceptPayment")
	legacy.RegisterAminoMsg(cdc, &MsgRejectPayment{}, "lrp/payment/MsgRejectPayment")
	legacy.RegisterAminoMsg(cdc, &MsgCancelPayment{}, "lrp/payment/MsgCancelPayment")
	legacy.RegisterAminoMsg(cdc, &MsgFulfillPayment{}, "lrp/payment/MsgFulfillPayment")
	legacy.RegisterAminoMsg(cdc, &MsgCompletePayment{}, "lrp/payment/MsgCompletePayment")
}

// RegisterInterfaces registers the module's sdk.Msg implementations.
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgCreatePayment{},
		&MsgAcceptPayment{},
		&MsgRejectPayment{},
		&MsgCancelPayment{},
		&MsgFulfillPayment{},
		&MsgCompletePayment{},
	)
}
