package types

import sdk "github.com/cosmos/cosmos-sdk/types"

const (
	TypeMsgCreateIdentity = "create_identity"
	TypeMsgUpdateIdentity = "update_identity"
	TypeMsgUpdateField    = "update_field"
	TypeMsgAddField       = "add_field"
	TypeMsgRemoveIdentity = "remove_identity"
	TypeMsgReviewIdentity = "review_identity"
	TypeMsgCreateEvaluator = "create_evaluator"
	TypeMsgRequestToVerify = "request_to_verify"
	TypeMsgVerifyData      = "verify_data"
)

type MsgCreateIdentity struct {
	Owner string `json:"owner"`
	Name  string `json:"name"`
	Kind  string `json:"kind"`
}
type MsgCreateIdentityResponse struct{}

type MsgUpdateIdentity struct {
	Owner string `json:"owner"`
	Name  string `json:"name"`
	Kind  string `json:"kind"`
}
type MsgUpdateIdentityResponse struct{}

type MsgUpdateField struct {
	Owner        string `json:"owner"`
	FieldName    string `json:"field_name"`
	Value        string `json:"value"`
	VerifyMethod string `json:"verify_method"`
}
type MsgUpdateFieldResponse struct{}

type MsgAddField struct {
	Owner        string `json:"owner"`
	FieldName    string `json:"field_name"`
	Value        string `json:"value"`
	VerifyMethod string `json:"verify_method"`
}
type MsgAddFieldResponse struct{}

type MsgRemoveIdentity struct {
	Owner string `json:"owner"`
}
type MsgRemoveIdentityResponse struct{}

type MsgReviewIdentity struct {
	Reviewer string `json:"reviewer"`
	Subject  string `json:"subject"`
	Content  []byte `json:"content"`
}
type MsgReviewIdentityResponse struct{}

type MsgCreateEvaluator struct {
	Owner string `json:"owner"`
	Name  string `json:"name"`
	About string `json:"about"`
	Rate  string `json:"rate"`
}
type MsgCreateEvaluatorResponse struct{}

type MsgRequestToVerify struct {
	Requestor string   `json:"requestor"`
	Positions []uint32 `json:"positions"`
	Evaluator string   `json:"evaluator"`
}
type MsgRequestToVerifyResponse struct{}

type MsgVerifyData struct {
	Evaluator  string            `json:"evaluator"`
	Subject    string            `json:"subject"`
	Transcript []TranscriptEntry `json:"transcript"`
}
type MsgVerifyDataResponse struct{}

var (
	_ sdk.Msg = &MsgCreateIdentity{}
	_ sdk.Msg = &MsgUpdateIdentity{}
	_ sdk.Msg = &MsgUpdateField{}
	_ sdk.Msg = &MsgAddField{}
	_ sdk.Msg = &MsgRemoveIdentity{}
	_ sdk.Msg = &MsgReviewIdentity{}
	_ sdk.Msg = &MsgCreateEvaluator{}
	_ sdk.Msg = &MsgRequestToVerify{}
	_ sdk.Msg = &MsgVerifyData{}
)
