package entity

import "errors"

// Domain errors for vocabulary items and their statistics.
var (
	ErrItemNotFound     = errors.New("vocabulary item not found")
	ErrInvalidItem      = errors.New("invalid vocabulary item")
	ErrDuplicateItem    = errors.New("duplicate vocabulary item id")
	ErrInvalidOutcome   = errors.New("invalid outcome")
	ErrInvalidDailyGoal = errors.New("daily goal must be positive")
	ErrStaleStatistics  = errors.New("item statistics modified concurrently")
)
