// Package llm is the client layer for the generative content service.
// Every request declares the exact JSON shape the response must take;
// responses are validated against that shape before they reach callers.
package llm

import (
	"context"
	"encoding/json"
)

// Provider is the abstraction over a generative content service.
type Provider interface {
	// Generate sends a schema-constrained request and returns the
	// validated JSON payload. When Request.Schema is nil the raw text
	// is returned untouched.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider targets.
	ModelID() string
}

// Request describes one generation call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Pathwise only ever sends a single
	// user message per request.
	Messages []Message

	// Schema, when set, is declared to the service so the response is
	// emitted as a single JSON payload matching it.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0,1]; zero means deterministic.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role identifies the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is the JSON shape a response must conform to.
type Schema struct {
	// Name identifies the schema (kebab-case, e.g. "teacher-picks").
	Name string

	// Description tells the model what the shape represents.
	Description string

	// Definition is the JSON Schema document as a map.
	Definition map[string]any
}

// Response is the service's output for one request.
type Response struct {
	// Content is the generated payload. Validated JSON when a Schema
	// was requested, raw text otherwise.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens", or "error".
	StopReason string
}

// Usage tracks token counts for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
