package types

import sdkerrors "cosmossdk.io/errors"

// Sentinel errors for the payment module, registered under ModuleName.
var (
	ErrPaymentNotFound     = sdkerrors.Register(ModuleName, 2, "payment not found")
	ErrAccessDenied        = sdkerrors.Register(ModuleName, 3, "access denied")
	ErrInvalidStatusChange = sdkerrors.Register(ModuleName, 4, "invalid status change")
	ErrUnacceptedCurrency  = sdkerrors.Register(ModuleName, 5, "currency not accepted by payee")
	ErrInsufficientBalance = sdkerrors.Register(ModuleName, 6, "insufficient balance")
	ErrInvalidAmount       = sdkerrors.Register(ModuleName, 7, "invalid amount")
	ErrDisputeNotAccepted  = sdkerrors.Register(ModuleName, 8, "payment is not in a disputable status")
)
