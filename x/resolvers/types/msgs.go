package types

import sdk "github.com/cosmos/cosmos-sdk/types"

const (
	TypeMsgJoin       = "join"
	TypeMsgDelegate   = "delegate"
	TypeMsgUndelegate = "undelegate"
	TypeMsgResign     = "resign"
)

type MsgJoin struct {
	Applicant       string `json:"applicant"`
	ApplicationBlob []byte `json:"application_blob"`
	SelfStake       string `json:"self_stake"`
}
type MsgJoinResponse struct{}

type MsgDelegate struct {
	Delegator string `json:"delegator"`
	Resolver  string `json:"resolver"`
	Amount    string `json:"amount"`
}
type MsgDelegateResponse struct{}

type MsgUndelegate struct {
	Delegator string `json:"delegator"`
	Resolver  string `json:"resolver"`
	Amount    string `json:"amount"`
}
type MsgUndelegateResponse struct{}

type MsgResign struct {
	Caller string `json:"caller"`
}
type MsgResignResponse struct{}

var (
	_ sdk.Msg = &MsgJoin{}
	_ sdk.Msg = &MsgDelegate{}
	_ sdk.Msg = &MsgUndelegate{}
	_ sdk.Msg = &MsgResign{}
)
