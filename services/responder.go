package services

import (
	"context"
	"errors"
)

// User-facing fallback messages for the chat relay. These are part of
// the API contract: the frontend renders them verbatim in the chat
// widget.
const (
	UnavailableMessage = "Sorry, I'm not available right now due to a configuration issue."
	FailureMessage     = "Sorry, I'm having trouble thinking right now. Please try again in a moment!"
)

var (
	// ErrNotConfigured reports that the responder has no usable credential.
	ErrNotConfigured = errors.New("chat responder is not configured with an API key")
	// ErrUpstream marks failures from the external model service.
	ErrUpstream = errors.New("upstream model service failed")
)

// Responder produces a PawBuddy reply for one user message. Each call
// is stateless: no conversation history survives between requests.
// Implementations: GeminiResponder (external model) and
// StaticResponder (local keyword rules).
type Responder interface {
	Reply(ctx context.Context, message string) (string, error)
}
