package types

import sdkerrors "cosmossdk.io/errors"

// Sentinel errors for the dispute module, registered under ModuleName.
var (
	ErrDisputeNotFound              = sdkerrors.Register(ModuleName, 2, "dispute not found")
	ErrDisputeExisted               = sdkerrors.Register(ModuleName, 3, "a live dispute already exists for this payment")
	ErrAccessDenied                 = sdkerrors.Register(ModuleName, 4, "access denied")
	ErrDisputeNotAccepted           = sdkerrors.Register(ModuleName, 5, "payment is not in a disputable status")
	ErrActionForOnlyFinalizingDispute = sdkerrors.Register(ModuleName, 6, "action only valid for a finalizing dispute")
	ErrAlreadyJudged                = sdkerrors.Register(ModuleName, 7, "resolver has already proposed a judgment")
	ErrNotASelectedResolver         = sdkerrors.Register(ModuleName, 8, "caller is not one of the dispute's selected resolvers")
	ErrInsufficientBalance          = sdkerrors.Register(ModuleName, 9, "insufficient balance")
)
