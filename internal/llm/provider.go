package llm

import (
	"context"
	"encoding/json"
)

// Provider is the single abstraction every backend implements. Callers
// build a Request, call Generate, and get back JSON (or plain text when
// no schema was asked for).
type Provider interface {
	// Generate runs one completion. If req.Schema is set the provider uses
	// its native structured-output mechanism and the returned Content is
	// JSON validated against that schema.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the model alias this provider was configured with.
	ModelID() string
}

// Request describes one completion call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation so far. Single-turn callers pass one
	// user message; the coach passes the whole exchange.
	Messages []Message

	// Schema, when non-nil, forces structured JSON output conforming to
	// the given definition. When nil the response is raw text.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0, 1]. Zero means deterministic.
	Temperature float64
}

// Message is one turn of a conversation.
type Message struct {
	Role    Role
	Content string
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names a JSON Schema the model must produce. Name doubles as the
// tool name for Anthropic and the schema name for OpenAI, so keep it
// kebab-case ("study-plan").
type Schema struct {
	Name        string
	Description string

	// Definition is the JSON Schema body as a map.
	Definition map[string]any
}

// Response is the normalized output of a Generate call.
type Response struct {
	// Content is validated JSON when the request carried a Schema, and
	// the raw text of the response otherwise.
	Content json.RawMessage

	// Usage is the token count the backend reported for this call.
	Usage Usage

	// Model is the concrete model that served the request, which may be
	// more specific than the configured alias.
	Model string

	// StopReason is normalized to "end", "max_tokens" or "error".
	StopReason string
}

// Usage tracks tokens for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
