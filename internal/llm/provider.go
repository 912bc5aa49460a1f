package llm

import (
	"context"
	"encoding/json"
)

// Provider is the abstraction quiz remediation talks to. Lingua only ever
// asks for short structured rewrites, so the surface is a single Generate
// call plus the model identity for event logging.
type Provider interface {
	// Generate sends one prompt and returns the reply. When the request
	// carries a Schema, the reply Content is JSON already validated
	// against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports which model this provider targets.
	ModelID() string
}

// Request describes one generation call.
type Request struct {
	// System sets the tutor persona and constraints.
	System string

	// Messages is the conversation. Rewrites are single-turn, so this is
	// almost always one user message.
	Messages []Message

	// Schema, when set, forces the reply into the given JSON shape via
	// the provider's structured output mechanism.
	Schema *Schema

	// MaxTokens caps the reply length.
	MaxTokens int

	// Temperature in [0, 1]. Zero means deterministic.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role identifies who said a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names and defines the JSON shape a reply must take.
type Schema struct {
	// Name is a kebab-case identifier, e.g. "remediation-question".
	// Providers surface it as the tool or response-format name.
	Name string

	// Description tells the model what the shape represents.
	Description string

	// Definition is the JSON Schema as a plain map.
	Definition map[string]any
}

// Response is the provider's reply.
type Response struct {
	// Content is validated JSON when the request carried a Schema,
	// otherwise the raw text.
	Content json.RawMessage

	// Usage is the token count the provider billed for this call.
	Usage Usage

	// Model is the model that actually served the request, which can
	// differ from the configured alias.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage tracks token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
