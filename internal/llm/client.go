// Package llm is the Ollama chat client: request construction, per-language
// model selection, and tolerant JSON extraction from model output.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	app_errors "sentsei/internal/errors"
	"sentsei/internal/httpclient"
	"sentsei/internal/models"
	"sentsei/internal/types"
)

// Client talks to one Ollama instance. Safe for concurrent use.
type Client struct {
	config     types.LLMConfig
	httpClient *http.Client
}

// NewClient builds a Client using a pooled HTTP client sized for long model
// generations.
func NewClient(configManager types.ConfigManager, clientManager *httpclient.HTTPClientManager) *Client {
	cfg := configManager.GetLLMConfig()
	timeout := time.Duration(cfg.RequestTimeout) * time.Second
	httpClient := clientManager.GetClient(&httpclient.Config{
		ConnectTimeout:        10 * time.Second,
		RequestTimeout:        timeout,
		IdleConnTimeout:       90 * time.Second,
		MaxIdleConns:          10,
		MaxIdleConnsPerHost:   10,
		ResponseHeaderTimeout: timeout,
	})
	return &Client{config: cfg, httpClient: httpClient}
}

// ModelFor returns the chat model for a target language, honoring per-language
// overrides.
func (c *Client) ModelFor(lang models.LanguageCode) string {
	if model, ok := c.config.ModelOverrides[string(lang)]; ok {
		return model
	}
	return c.config.Model
}

// ChatRequest describes one chat completion. Zero Temperature and MaxTokens
// fall back to the configured defaults; an empty Model falls back to the
// default model.
type ChatRequest struct {
	Model       string
	System      string
	User        string
	Temperature float64
	MaxTokens   int
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatPayload struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
	Options  chatOptions   `json:"options"`
}

type chatOptions struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict"`
}

// Chat performs a non-streaming chat completion and returns the raw message
// content.
func (c *Client) Chat(ctx context.Context, req ChatRequest) (string, error) {
	model := req.Model
	if model == "" {
		model = c.config.Model
	}
	temperature := req.Temperature
	if temperature == 0 {
		temperature = c.config.Temperature
	}
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = c.config.MaxTokens
	}

	messages := make([]chatMessage, 0, 2)
	if req.System != "" {
		messages = append(messages, chatMessage{Role: "system", Content: req.System})
	}
	messages = append(messages, chatMessage{Role: "user", Content: req.User})

	body, err := json.Marshal(chatPayload{
		Model:    model,
		Messages: messages,
		Stream:   false,
		Options:  chatOptions{Temperature: temperature, NumPredict: maxTokens},
	})
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.URL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build chat request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("ollama request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read ollama response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if msg := app_errors.ParseUpstreamError(respBody); msg != "" {
			return "", fmt.Errorf("ollama returned status %d: %s", resp.StatusCode, msg)
		}
		return "", fmt.Errorf("ollama returned status %d", resp.StatusCode)
	}

	content := gjson.GetBytes(respBody, "message.content").String()
	logrus.WithFields(logrus.Fields{
		"model":    model,
		"duration": time.Since(start).Round(time.Millisecond).String(),
		"chars":    len(content),
	}).Debug("Ollama chat completed")
	return content, nil
}
