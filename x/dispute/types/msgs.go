package types

import sdk "github.com/cosmos/cosmos-sdk/types"

// MsgCreateDispute opens a dispute over a disputable payment.
type MsgCreateDispute struct {
	Issuer       string `json:"issuer"`
	PaymentHash  []byte `json:"payment_hash"`
	ArgumentBlob []byte `json:"argument_blob,omitempty"`
}

// MsgCreateDisputeResponse is empty.
type MsgCreateDisputeResponse struct{}

// MsgFightDispute is the aggrieved party's rebuttal, drawing a fresh panel of
// resolvers.
type MsgFightDispute struct {
	Caller       string `json:"caller"`
	PaymentHash  []byte `json:"payment_hash"`
	ArgumentBlob []byte `json:"argument_blob,omitempty"`
}

// MsgFightDisputeResponse is empty.
type MsgFightDisputeResponse struct{}

// MsgEscalateDispute re-asserts an outcome without drawing new resolvers.
type MsgEscalateDispute struct {
	Caller      string `json:"caller"`
	PaymentHash []byte `json:"payment_hash"`
}

// MsgEscalateDisputeResponse is empty.
type MsgEscalateDisputeResponse struct{}

// MsgProposeOutcome is a selected resolver's judgment.
type MsgProposeOutcome struct {
	Resolver    string `json:"resolver"`
	PaymentHash []byte `json:"payment_hash"`
	Judgment    uint8  `json:"judgment"`
}

// MsgProposeOutcomeResponse is empty.
type MsgProposeOutcomeResponse struct{}

var (
	_ sdk.Msg = &MsgCreateDispute{}
	_ sdk.Msg = &MsgFightDispute{}
	_ sdk.Msg = &MsgEscalateDispute{}
	_ sdk.Msg = &MsgProposeOutcome{}
)
