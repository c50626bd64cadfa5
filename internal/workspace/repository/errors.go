package repository

import "errors"

// Errors returned by repository implementations. Callers get coarse
// sentinels; the underlying cause is logged at the implementation.
var (
	ErrDatabase = errors.New("database error")
)
