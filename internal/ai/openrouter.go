// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// openRouterProvider implements Provider against an OpenRouter-compatible
// chat completions API (POST /chat/completions).
type openRouterProvider struct {
	config Config
	client *http.Client
}

// NewOpenRouter creates the OpenRouter provider. The HTTP client carries an
// explicit timeout so a hanging endpoint cannot stall a request forever;
// callers additionally bound each call with their own context.
func NewOpenRouter(cfg Config) Provider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://openrouter.ai/api/v1"
	}
	return &openRouterProvider{
		config: cfg,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

func (p *openRouterProvider) Name() string { return "openrouter" }

// Generate sends one chat completion request and returns the first choice's
// message content. Exactly one attempt, no retries.
func (p *openRouterProvider) Generate(ctx context.Context, prompt, _ string) (string, error) {
	messages := []chatMessage{
		{Role: "system", Content: buildSystemPrompt(prompt)},
		{Role: "user", Content: prompt},
	}

	respBody, err := p.doChat(ctx, messages)
	if err != nil {
		return "", err
	}

	var result chatResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("%w: invalid JSON: %v", ErrMalformedResponse, err)
	}

	if len(result.Choices) == 0 || result.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("%w: no completion message in envelope", ErrMalformedResponse)
	}

	content := result.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("%w: completion text is blank", ErrEmptyResult)
	}

	return content, nil
}

// TestConnection sends a minimal user-only message and reports whether the
// endpoint is reachable and answering with a parseable envelope.
func (p *openRouterProvider) TestConnection(ctx context.Context) Status {
	messages := []chatMessage{
		{Role: "user", Content: "Hi, this is a test message. Please respond with 'API is working'."},
	}

	respBody, err := p.doChat(ctx, messages)
	if err != nil {
		return Status{Success: false, Message: err.Error()}
	}

	var result chatResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return Status{Success: false, Message: "API responded but returned invalid JSON"}
	}

	return Status{Success: true, Message: "API connection successful"}
}

// doChat performs the HTTP call and returns the raw response body.
// Transport and status failures are wrapped in their sentinel errors.
func (p *openRouterProvider) doChat(ctx context.Context, messages []chatMessage) ([]byte, error) {
	payload, err := json.Marshal(chatRequest{Model: p.config.Model, Messages: messages})
	if err != nil {
		return nil, fmt.Errorf("openrouter marshal: %w", err)
	}

	url := p.config.BaseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("openrouter request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.config.APIKey)
	req.Header.Set("HTTP-Referer", p.config.SiteURL)
	req.Header.Set("X-Title", p.config.SiteName)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d: %s", ErrHTTPStatus, resp.StatusCode, string(respBody))
	}

	return respBody, nil
}

// --- Chat completions request/response envelope ---

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []chatChoice `json:"choices"`
}

type chatChoice struct {
	Message chatMessage `json:"message"`
}
