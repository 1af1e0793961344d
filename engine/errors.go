package engine

import "errors"

var (
	// ErrAlreadyClaimed means a claim was already recorded for today.
	ErrAlreadyClaimed = errors.New("already claimed today")
	// ErrVerseNotRead means the daily verse precondition is not satisfied.
	ErrVerseNotRead = errors.New("daily verse not read yet")
	// ErrInvalidTarget rejects non-positive daily targets.
	ErrInvalidTarget = errors.New("target must be a positive integer")
	// ErrInvalidWindow rejects windows whose end precedes their start.
	ErrInvalidWindow = errors.New("end date precedes start date")
)
