package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ewaste-estimator/api/internal/vision"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	const reply = `{"device_type":"laptop","condition_description":"minor scratch","extracted_text":"Dell"}`

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var body map[string]any
		if assert.NoError(t, json.NewDecoder(r.Body).Decode(&body)) {
			assert.Equal(t, "gpt-4o-mini", body["model"])
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": reply}},
			},
		})
	}))
	defer ts.Close()

	e := New("test-key", "gpt-4o-mini")
	e.SetBaseURL(ts.URL)

	got, err := e.Describe(context.Background(), []byte{0xFF, 0xD8, 0xFF}, "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, reply, got)
}

func TestDescribeUpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
	}))
	defer ts.Close()

	e := New("test-key", "gpt-4o-mini")
	e.SetBaseURL(ts.URL)

	_, err := e.Describe(context.Background(), []byte{0xFF, 0xD8, 0xFF}, "image/jpeg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestDescribeMissingKey(t *testing.T) {
	e := New("", "gpt-4o-mini")
	_, err := e.Describe(context.Background(), []byte{0xFF, 0xD8, 0xFF}, "image/jpeg")
	assert.ErrorIs(t, err, vision.ErrNotConfigured)
}
