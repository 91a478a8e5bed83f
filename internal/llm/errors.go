package llm

import (
	"encoding/json"
	"fmt"
	"time"
)

// The provider error taxonomy. The retry decorator branches on these
// types, and the coach maps any of them to a fallback reply.

// ErrProviderUnavailable marks a provider that cannot be reached at all:
// network failure, 5xx, or an exhausted mock queue.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err == nil {
		return "llm provider unavailable"
	}
	return fmt.Sprintf("llm provider unavailable: %v", e.Err)
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrRateLimit marks a 429. RetryAfter carries the provider's hint when
// one was sent, zero otherwise.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("llm rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse marks output that failed schema validation or could
// not be parsed. Content keeps the offending payload for diagnostics.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid llm response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded marks a response cut off at the MaxTokens limit.
// Retrying cannot help; the caller must raise the limit or shorten the
// prompt.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "llm response truncated at max tokens"
}
