package usecase

import "errors"

// ErrInvalidQuery wraps filter and order_by parse failures.
var ErrInvalidQuery = errors.New("invalid list query")
