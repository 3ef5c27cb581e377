package domain

import "errors"

var (
	// ErrContractorRequired signals a service-order action on a claim with no
	// assigned contractor.
	ErrContractorRequired = errors.New("no contractor assigned")

	// ErrExplanationRequired signals a non-warranty classification without a
	// written explanation.
	ErrExplanationRequired = errors.New("non-warranty explanation required")

	// ErrClaimCompleted signals a lifecycle mutation on a terminal claim.
	ErrClaimCompleted = errors.New("claim is completed")

	// ErrInvalidTransition signals a lifecycle request the current state
	// cannot honor.
	ErrInvalidTransition = errors.New("invalid transition")
)
