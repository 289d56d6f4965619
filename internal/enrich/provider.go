// Package enrich looks up pronunciation and meaning for characters the
// built-in catalogs don't know, via a generative AI provider. The whole
// package fails open: any provider trouble degrades to an empty result.
package enrich

import (
	"context"
	"encoding/json"
)

// Provider is a single-turn structured-output text generator.
type Provider interface {
	// Generate sends the prompt and returns the model's output. When
	// req.Schema is set the provider requests JSON conforming to it and
	// the returned Content is the validated JSON.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request is one generation request.
type Request struct {
	// Prompt is the user prompt. Lookups are single-turn.
	Prompt string

	// Schema, when set, constrains the response to its JSON shape via
	// the provider's native structured-output mechanism.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int
}

// Response is the model output.
type Response struct {
	// Content is the generated output; validated JSON when the request
	// carried a schema.
	Content json.RawMessage

	// Model is the model that actually served the request.
	Model string
}
