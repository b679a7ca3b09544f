package types

import (
	"context"

	"google.golang.org/grpc"
)

// MsgServer is the server API for the identities module's Msg service.
type MsgServer interface {
	CreateIdentity(context.Context, *MsgCreateIdentity) (*MsgCreateIdentityResponse, error)
	UpdateIdentity(context.Context, *MsgUpdateIdentity) (*MsgUpdateIdentityResponse, error)
	UpdateField(context.Context, *MsgUpdateField) (*MsgUpdateFieldResponse, error)
	AddField(context.Context, *MsgAddField) (*MsgAddFieldResponse, error)
	RemoveIdentity(context.Context, *MsgRemoveIdentity) (*MsgRemoveIdentityResponse, error)
	ReviewIdentity(context.Context, *MsgReviewIdentity) (*MsgReviewIdentityResponse, error)
	CreateEvaluator(context.Context, *MsgCreateEvaluator) (*MsgCreateEvaluatorResponse, error)
	RequestToVerify(context.Context, *MsgRequestToVerify) (*MsgRequestToVerifyResponse, error)
	VerifyData(context.Context, *MsgVerifyData) (*MsgVerifyDataResponse, error)
}

var _Msg_serviceDesc_local = grpc.ServiceDesc{
	ServiceName: "lrp.identities.v1.Msg",
	HandlerType: (*MsgServer)(nil),
	Methods:     []grpc.MethodDesc{},
	Streams:     []grpc.StreamDesc{},
	Metadata:    "lrp/identities/v1/tx.proto",
}

// RegisterMsgServer registers srv on s under the identities Msg service.
func RegisterMsgServer(s grpc.ServiceRegistrar, srv MsgServer) {
	s.RegisterService(&_Msg_serviceDesc_local, srv)
}
