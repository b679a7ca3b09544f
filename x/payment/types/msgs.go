package types

import sdk "github.com/cosmos/cosmos-sdk/types"

// MsgCreatePayment creates a new escrowed payment.
type MsgCreatePayment struct {
	Payer        string `json:"payer"`
	Payee        string `json:"payee"`
	Amount       string `json:"amount"`
	CurrencyHash []byte `json:"currency_hash,omitempty"`
	Native       bool   `json:"native"`
	Description  string `json:"description"`
	ReceiptBlob  []byte `json:"receipt_blob,omitempty"`
}

// MsgCreatePaymentResponse returns the created payment's content hash.
type MsgCreatePaymentResponse struct {
	PaymentHash []byte `json:"payment_hash"`
}

// MsgAcceptPayment accepts a Pending payment (payee-only).
type MsgAcceptPayment struct {
	Caller      string `json:"caller"`
	PaymentHash []byte `json:"payment_hash"`
}

// MsgAcceptPaymentResponse is empty.
type MsgAcceptPaymentResponse struct{}

// MsgRejectPayment rejects a Pending payment (payee-only).
type MsgRejectPayment struct {
	Caller      string `json:"caller"`
	PaymentHash []byte `json:"payment_hash"`
}

// MsgRejectPaymentResponse is empty.
type MsgRejectPaymentResponse struct{}

// MsgCancelPayment cancels a Pending (payer) or Accepted (payee) payment.
type MsgCancelPayment struct {
	Caller      string `json:"caller"`
	PaymentHash []byte `json:"payment_hash"`
}

// MsgCancelPaymentResponse is empty.
type MsgCancelPaymentResponse struct{}

// MsgFulfillPayment marks an Accepted payment Fulfilled (payee-only).
type MsgFulfillPayment struct {
	Caller      string `json:"caller"`
	PaymentHash []byte `json:"payment_hash"`
}

// MsgFulfillPaymentResponse is empty.
type MsgFulfillPaymentResponse struct{}

// MsgCompletePayment completes a Fulfilled payment (payer-only), transferring
// funds to the payee.
type MsgCompletePayment struct {
	Caller      string `json:"caller"`
	PaymentHash []byte `json:"payment_hash"`
}

// MsgCompletePaymentResponse is empty.
type MsgCompletePaymentResponse struct{}

var (
	_ sdk.Msg = &MsgCreatePayment{}
	_ sdk.Msg = &MsgAcceptPayment{}
	_ sdk.Msg = &MsgRejectPayment{}
	_ sdk.Msg = &MsgCancelPayment{}
	_ sdk.Msg = &MsgFulfillPayment{}
	_ sdk.Msg = &MsgCompletePayment{}
)
