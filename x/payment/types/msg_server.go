package types

import (
	"context"

	"google.golang.org/grpc"
)

// MsgServer is the server API for the payment module's Msg service.
type MsgServer interface {
	CreatePayment(context.Context, *MsgCreatePayment) (*MsgCreatePaymentResponse, error)
	AcceptPayment(context.Context, *MsgAcceptPayment) (*MsgAcceptPaymentResponse, error)
	RejectPayment(context.Context, *MsgRejectPayment) (*MsgRejectPaymentResponse, error)
	CancelPayment(context.Context, *MsgCancelPayment) (*MsgCancelPaymentResponse, error)
	FulfillPayment(context.Context, *MsgFulfillPayment) (*MsgFulfillPaymentResponse, error)
	CompletePayment(context.Context, *MsgCompletePayment) (*MsgCompletePaymentResponse, error)
}

// _Msg_serviceDesc_local is an intentionally empty ServiceDesc: this module
// has no generated protobuf service descriptor, so RegisterMsgServer only
// needs the registrar to accept the interface binding. Same fallback as
// x/delegation/types/msg_server.go.
var _Msg_serviceDesc_local = grpc.ServiceDesc{
	ServiceName: "lrp.payment.Msg",
	HandlerType: (*MsgServer)(nil),
}

// RegisterMsgServer registers srv with s.
func RegisterMsgServer(s grpc.ServiceRegistrar, srv MsgServer) {
	s.RegisterService(&_Msg_serviceDesc_local, srv)
}
