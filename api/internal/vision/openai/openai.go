package openai

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"time"

	"ewaste-estimator/api/internal/vision"

	"github.com/go-resty/resty/v2"
)

const defaultBaseURL = "https://api.openai.com"

type Engine struct {
	APIKey string
	Model  string
	client *resty.Client
}

func New(key, model string) *Engine {
	return &Engine{
		APIKey: strings.TrimSpace(key),
		Model:  strings.TrimSpace(model),
		client: resty.New().SetBaseURL(defaultBaseURL).SetTimeout(120 * time.Second),
	}
}

// SetBaseURL points the engine at an alternative OpenAI-compatible server.
func (e *Engine) SetBaseURL(u string) { e.client.SetBaseURL(u) }

func (e *Engine) Name() string     { return "gpt" }
func (e *Engine) GetModel() string { return e.Model }

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Describe sends the image as an image_url data URL through the chat
// completions API and returns the model's raw text reply.
func (e *Engine) Describe(ctx context.Context, image []byte, mime string) (string, error) {
	if e.APIKey == "" {
		return "", fmt.Errorf("openai: %w", vision.ErrNotConfigured)
	}
	dataURL := "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(image)

	body := map[string]any{
		"model": e.Model,
		"messages": []any{
			map[string]any{
				"role": "user",
				"content": []any{
					map[string]any{"type": "text", "text": vision.AnalysisPrompt},
					map[string]any{"type": "image_url", "image_url": map[string]any{"url": dataURL, "detail": "high"}},
				},
			},
		},
		"temperature":     0,
		"response_format": map[string]any{"type": "json_object"},
	}

	var out chatResponse
	resp, err := e.client.R().
		SetContext(ctx).
		SetAuthToken(e.APIKey).
		SetBody(body).
		SetResult(&out).
		Post("/v1/chat/completions")
	if err != nil {
		return "", err
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("openai describe %d: %s", resp.StatusCode(), strings.TrimSpace(resp.String()))
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("openai describe: empty response")
	}
	return out.Choices[0].Message.Content, nil
}
