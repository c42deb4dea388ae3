// Package genclient talks to an HTTP text-generation backend: one JSON request carrying the
// persona and the user's message, one JSON response carrying the generated text.
package genclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"campusHub/internal/services/assistant"
)

type Client struct {
	endpoint string
	apiKey   string
	model    string
	http     *http.Client
}

func New(endpoint, apiKey, model string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		model:    model,
		http:     httpClient,
	}
}

type request struct {
	Model  string `json:"model,omitempty"`
	System string `json:"system"`
	Prompt string `json:"prompt"`
}

type response struct {
	Output string `json:"output"`
	Error  string `json:"error,omitempty"`
}

// Generate returns assistant.ErrOverloaded when the backend answers 503 or 429.
func (c *Client) Generate(ctx context.Context, persona, utterance string) (string, error) {
	const op = "genclient.Generate"

	body, err := json.Marshal(request{
		Model:  c.model,
		System: persona,
		Prompt: "User's message: " + utterance,
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusServiceUnavailable, resp.StatusCode == http.StatusTooManyRequests:
		_, _ = io.Copy(io.Discard, resp.Body)
		return "", fmt.Errorf("%s: %w", op, assistant.ErrOverloaded)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("%s: unexpected status %d: %s", op, resp.StatusCode, bytes.TrimSpace(msg))
	}

	var out response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%s: decode response: %w", op, err)
	}
	if out.Error != "" {
		return "", fmt.Errorf("%s: %s", op, out.Error)
	}

	return out.Output, nil
}
