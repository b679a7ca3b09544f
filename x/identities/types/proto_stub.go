package types

import "fmt"

// Temporary stub implementations until proper protobuf generation is set up
// for this module, mirroring x/delegation/types/proto_stub.go.

func (m *MsgCreateIdentity) ProtoMessage()  {}
func (m *MsgCreateIdentity) Reset()         { *m = MsgCreateIdentity{} }
func (m *MsgCreateIdentity) String() string { return fmt.Sprintf("%+v", *m) }

func (m *MsgCreateIdentityResponse) ProtoMessage()  {}
func (m *MsgCreateIdentityResponse) Reset()         { *m = MsgCreateIdentityResponse{} }
func (m *MsgCreateIdentityResponse) String() string { return fmt.Sprintf("%+v", *m) }

func (m *MsgUpdateIdentity) ProtoMessage()  {}
func (m *MsgUpdateIdentity) Reset()         { *m = MsgUpdateIdentity{} }
func (m *MsgUpdateIdentity) String() string { return fmt.Sprintf("%+v", *m) }

func (m *MsgUpdateIdentityResponse) ProtoMessage()  {}
func (m *MsgUpdateIdentityResponse) Reset()         { *m = MsgUpdateIdentityResponse{} }
func (m *MsgUpdateIdentityResponse) String() string { return fmt.Sprintf("%+v", *m) }

func (m *MsgUpdateField) ProtoMessage()  {}
func (m *MsgUpdateField) Reset()         { *m = MsgUpdateField{} }
func (m *MsgUpdateField) String() string { return fmt.Sprintf("%+v", *m) }

func (m *MsgUpdateFieldResponse) ProtoMessage()  {}
func (m *MsgUpdateFieldResponse) Reset()         { *m = MsgUpdateFieldResponse{} }
func (m *MsgUpdateFieldResponse) String() string { return fmt.Sprintf("%+v", *m) }

func (m *MsgAddField) ProtoMessage()  {}
func (m *MsgAddField) Reset()         { *m = MsgAddField{} }
func (m *MsgAddField) String() string { return fmt.Sprintf("%+v", *m) }

func (m *MsgAddFieldResponse) ProtoMessage()  {}
func (m *MsgAddFieldResponse) Reset()         { *m = MsgAddFieldResponse{} }
func (m *MsgAddFieldResponse) String() string { return fmt.Sprintf("%+v", *m) }

func (m *MsgRemoveIdentity) ProtoMessage()  {}
func (m *MsgRemoveIdentity) Reset()         { *m = MsgRemoveIdentity{} }
func (m *MsgRemoveIdentity) String() string { return fmt.Sprintf("%+v", *m) }

func (m *MsgRemoveIdentityResponse) ProtoMessage()  {}
func (m *MsgRemoveIdentityResponse) Reset()         { *m = MsgRemoveIdentityResponse{} }
func (m *MsgRemoveIdentityResponse) String() string { return fmt.Sprintf("%+v", *m) }

func (m *MsgReviewIdentity) ProtoMessage()  {}
func (m *MsgReviewIdentity) Reset()         { *m = MsgReviewIdentity{} }
func (m *MsgReviewIdentity) String() string { return fmt.Sprintf("%+v", *m) }

func (m *MsgReviewIdentityResponse) ProtoMessage()  {}
func (m *MsgReviewIdentityResponse) Reset()         { *m = MsgReviewIdentityResponse{} }
func (m *MsgReviewIdentityResponse) String() string { return fmt.Sprintf("%+v", *m) }

func (m *MsgCreateEvaluator) ProtoMessage()  {}
func (m *MsgCreateEvaluator) Reset()         { *m = MsgCreateEvaluator{} }
func (m *MsgCreateEvaluator) String() string { return fmt.Sprintf("%+v", *m) }

func (m *MsgCreateEvaluatorResponse) ProtoMessage()  {}
func (m *MsgCreateEvaluatorResponse) Reset()         { *m = MsgCreateEvaluatorResponse{} }
func (m *MsgCreateEvaluatorResponse) String() string { return fmt.Sprintf("%+v", *m) }

func (m *MsgRequestToVerify) ProtoMessage()  {}
func (m *MsgRequestToVerify) Reset()         { *m = MsgRequestToVerify{} }
func (m *MsgRequestToVerify) String() string { return fmt.Sprintf("%+v", *m) }

func (m *MsgRequestToVerifyResponse) ProtoMessage()  {}
func (m *MsgRequestToVerifyResponse) Reset()         { *m = MsgRequestToVerifyResponse{} }
func (m *MsgRequestToVerifyResponse) String() string { return fmt.Sprintf("%+v", *m) }

func (m *MsgVerifyData) ProtoMessage()  {}
func (m *MsgVerifyData) Reset()         { *m = MsgVerifyData{} }
func (m *MsgVerifyData) String() string { return fmt.Sprintf("%+v", *m) }

func (m *MsgVerifyDataResponse) ProtoMessage()  {}
func (m *MsgVerifyDataResponse) Reset()         { *m = MsgVerifyDataResponse{} }
func (m *MsgVerifyDataResponse) String() string { return fmt.Sprintf("%+v", *m) }
