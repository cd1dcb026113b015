// Package vision defines the pluggable backends that describe an uploaded
// image with a vision-language model.
package vision

import (
	"context"
	"errors"
)

// Engine is a vision-language model backend. Describe sends the image
// together with the fixed analysis prompt and returns the model's raw text
// reply; extracting the JSON analysis out of it is the caller's job.
type Engine interface {
	Name() string
	GetModel() string
	Describe(ctx context.Context, image []byte, mime string) (string, error)
}

// ErrNotConfigured is returned by an engine whose API key is missing. The
// server still boots in that state; the error surfaces per request.
var ErrNotConfigured = errors.New("missing API key")

type Engines struct {
	Gemini Engine
	OpenAI Engine
}

// GetEngine selects a backend by the request's llm_name. Empty selects the
// Gemini default.
func (e *Engines) GetEngine(llmName string) (Engine, error) {
	switch llmName {
	case "", "gemini":
		return e.Gemini, nil
	case "gpt", "openai":
		return e.OpenAI, nil
	default:
		return nil, errors.New("unknown llm_name; use 'gemini' or 'gpt'")
	}
}
