package types

import "cosmossdk.io/errors"

var (
	ErrIdentityNotFound    = errors.Register(ModuleName, 2, "identity not found")
	ErrIdentityExisted     = errors.Register(ModuleName, 3, "identity already exists")
	ErrAccessDenied        = errors.Register(ModuleName, 4, "access denied")
	ErrEvaluatorNotFound   = errors.Register(ModuleName, 5, "evaluator not found")
	ErrEvaluatorExisted    = errors.Register(ModuleName, 6, "evaluator already exists")
	ErrCanOnlyReviewOnce   = errors.Register(ModuleName, 7, "reviewer has already reviewed this subject")
	ErrInvalidDomain       = errors.Register(ModuleName, 8, "invalid domain value")
	ErrInvalidEmail        = errors.Register(ModuleName, 9, "invalid email value")
	ErrInvalidTranscript   = errors.Register(ModuleName, 10, "transcript does not match the pending verify request")
	ErrInsufficientBalance = errors.Register(ModuleName, 11, "insufficient free balance")
	ErrFieldNotFound       = errors.Register(ModuleName, 12, "identity field not found")
	ErrVerifyRequestNotFound = errors.Register(ModuleName, 13, "no matching verify request")
)
