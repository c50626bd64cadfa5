package assistant

import "context"

// Responder generates the assistant's reply to a user message.
// Implementations are safe for concurrent use.
type Responder interface {
	// Reply produces the assistant reply for one incoming message.
	Reply(ctx context.Context, req *Request) (*Response, error)

	// Name returns the assistant persona name.
	Name() string
}

// New creates the canned responder used in place of a real model
// provider. It keeps the same seam, so a remote provider can be
// slotted in without touching callers.
func New() Responder {
	return &cannedResponder{}
}
