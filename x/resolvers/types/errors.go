package types

import "cosmossdk.io/errors"

var (
	ErrResolverNotFound       = errors.Register(ModuleName, 2, "resolver not found")
	ErrIdentityRequired       = errors.Register(ModuleName, 3, "applicant must hold an identity")
	ErrCredibilityTooLow      = errors.Register(ModuleName, 4, "credibility below required threshold")
	ErrNotMeetMinimumSelfStake = errors.Register(ModuleName, 5, "self stake below minimum")
	ErrInsufficientBalance    = errors.Register(ModuleName, 6, "insufficient free balance")
	ErrNoAnyActiveResolver    = errors.Register(ModuleName, 7, "no active resolver available")
	ErrDelegationNotFound     = errors.Register(ModuleName, 8, "delegation not found")
	ErrAccessDenied           = errors.Register(ModuleName, 9, "access denied")
	ErrResolverTerminated     = errors.Register(ModuleName, 10, "resolver is terminated")
)
