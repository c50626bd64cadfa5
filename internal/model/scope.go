package model

// Scope carries the identity of the caller through use-case boundaries.
type Scope struct {
	UserID   string
	Username string
}
