package types

import sdk "github.com/cosmos/cosmos-sdk/types"

// Message type name constants.
const (
	TypeMsgCreateCurrency = "create_currency"
	TypeMsgRemoveCurrency = "remove_currency"
	TypeMsgAcceptCurrency = "accept_currency"
)

// MsgCreateCurrency registers a new currency (spec.md §4.1 create_currency).
type MsgCreateCurrency struct {
	Issuer   string `json:"issuer"`
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals uint32 `json:"decimals"`
}

// MsgCreateCurrencyResponse is the response for MsgCreateCurrency.
type MsgCreateCurrencyResponse struct {
	CurrencyHash []byte `json:"currency_hash"`
}

// MsgRemoveCurrency removes a currency the caller issued.
type MsgRemoveCurrency struct {
	Caller       string `json:"caller"`
	CurrencyHash []byte `json:"currency_hash"`
}

// MsgRemoveCurrencyResponse is the response for MsgRemoveCurrency.
type MsgRemoveCurrencyResponse struct{}

// MsgAcceptCurrency appends a currency to a merchant's acceptance list.
type MsgAcceptCurrency struct {
	Merchant     string `json:"merchant"`
	CurrencyHash []byte `json:"currency_hash"`
}

// MsgAcceptCurrencyResponse is the response for MsgAcceptCurrency.
type MsgAcceptCurrencyResponse struct{}

var (
	_ sdk.Msg = &MsgCreateCurrency{}
	_ sdk.Msg = &MsgRemoveCurrency{}
	_ sdk.Msg = &MsgAcceptCurrency{}
)

// NewMsgCreateCurrency builds a MsgCreateCurrency.
func NewMsgCreateCurrency(issuer, name, symbol string, decimals uint32) *MsgCreateCurrency {
	return &MsgCreateCurrency{Issuer: issuer, Name: name, Symbol: symbol, Decimals: decimals}
}

// NewMsgRemoveCurrency builds a MsgRemoveCurrency.
func NewMsgRemoveCurrency(caller string, currencyHash []byte) *MsgRemoveCurrency {
	return &MsgRemoveCurrency{Caller: caller, CurrencyHash: currencyHash}
}

// NewMsgAcceptCurrency builds a MsgAcceptCurrency.
func NewMsgAcceptCurrency(merchant string, currencyHash []byte) *MsgAcceptCurrency {
	return &MsgAcceptCurrency{Merchant: merchant, CurrencyHash: currencyHash}
}
