// Package estimate turns a raw vision-model reply into a device analysis,
// a condition bucket and a price range. Everything in this package is pure:
// no I/O, no shared mutable state.
package estimate

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Analysis is the structured description the model is asked to produce for
// every uploaded image.
type Analysis struct {
	DeviceType           string `json:"device_type"`
	ConditionDescription string `json:"condition_description"`
	ExtractedText        string `json:"extracted_text"`
}

// ErrNoJSON is returned when the model reply contains no {...} span at all.
var ErrNoJSON = errors.New("no JSON structure found in model response")

// ParseAnalysis extracts the JSON object from a raw model reply. Models wrap
// their output in markdown fences or surround it with prose, so the reply is
// trimmed, a leading ```json fence is stripped, and the span between the
// first '{' and the last '}' is decoded. Fields missing from the object stay
// empty strings; substituting "unknown" for an empty device type is the
// caller's job.
func ParseAnalysis(raw string) (Analysis, error) {
	cleaned := stripCodeFences(raw)

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end == -1 || start >= end {
		return Analysis{}, ErrNoJSON
	}

	var a Analysis
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &a); err != nil {
		return Analysis{}, fmt.Errorf("failed to parse model response JSON: %w", err)
	}
	return a, nil
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
