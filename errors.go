package folds

import "errors"

var (
	// ErrIllegalArguments signals invalid constructor or operation parameters.
	ErrIllegalArguments = errors.New("folds: illegal arguments")
	// ErrFragmentSize signals a negative or overflowing fragment length total.
	ErrFragmentSize = errors.New("folds: fragment size out of range")
	// ErrFragmentsChanged signals that a sequence changed between the measuring
	// pass and the copying pass of a concatenation.
	ErrFragmentsChanged = errors.New("folds: fragments changed during concatenation")
	// ErrBuildCompleted signals that a builder has already completed a sequence
	// and it's illegal to further add fragments.
	ErrBuildCompleted = errors.New("folds: forbidden to add fragments; build has been completed")
)
