package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// httpTextClient talks to an OpenAI-compatible chat-completions endpoint.
type httpTextClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func newHTTPTextClient(baseURL, apiKey string, connectTimeout, readTimeout time.Duration) *httpTextClient {
	return &httpTextClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  newHTTPClient(connectTimeout, readTimeout),
	}
}

// newHTTPClient builds a client whose dial phase is bounded by the connect
// timeout and whose full request is bounded by the read timeout.
func newHTTPClient(connectTimeout, readTimeout time.Duration) *http.Client {
	dialer := &net.Dialer{Timeout: connectTimeout}
	return &http.Client{
		Timeout: readTimeout,
		Transport: &http.Transport{
			DialContext:           dialer.DialContext,
			TLSHandshakeTimeout:   connectTimeout,
			ResponseHeaderTimeout: readTimeout,
			MaxIdleConnsPerHost:   8,
		},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *httpTextClient) complete(ctx context.Context, _ Role, model, systemPrompt, userPrompt string) (string, error) {
	payload := chatRequest{
		Model:       model,
		Temperature: 0.2,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", &TransportError{Capability: "complete-text", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return "", &TransportError{Capability: "complete-text", Err: fmt.Errorf("read response body: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &TransportError{
			Capability: "complete-text",
			Status:     resp.StatusCode,
			Err:        fmt.Errorf("%s", truncateBody(raw)),
		}
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", &TransportError{Capability: "complete-text", Err: fmt.Errorf("decode response: %w", err)}
	}
	if len(parsed.Choices) == 0 {
		return "", &TransportError{Capability: "complete-text", Err: fmt.Errorf("response contained no choices")}
	}
	return parsed.Choices[0].Message.Content, nil
}

func truncateBody(b []byte) string {
	const max = 512
	if len(b) > max {
		return string(b[:max]) + "..."
	}
	return string(b)
}

// retryableStatus reports whether an HTTP status warrants a retry:
// server errors and rate limiting, but no other client errors.
func retryableStatus(status int) bool {
	return status >= 500 || status == http.StatusTooManyRequests
}
