package workspace

import "errors"

// Domain-specific errors for the workspace package.
var (
	ErrWorkspaceNotFound = errors.New("workspace not found")
	ErrRoomNotFound      = errors.New("room not found")
	ErrTaskNotFound      = errors.New("task not found")
	ErrEmptyTitle        = errors.New("title is empty")
	ErrEmptyContent      = errors.New("message content is empty")
	ErrEmptyAmount       = errors.New("spending amount is empty")
)
