package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// httpSearchClient talks to a Tavily-compatible search endpoint.
type httpSearchClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func newHTTPSearchClient(baseURL, apiKey string, connectTimeout, readTimeout time.Duration) *httpSearchClient {
	return &httpSearchClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  newHTTPClient(connectTimeout, readTimeout),
	}
}

type searchRequest struct {
	APIKey     string `json:"api_key"`
	Query      string `json:"query"`
	MaxResults int    `json:"max_results"`
}

type searchResponse struct {
	Results []struct {
		URL           string `json:"url"`
		Title         string `json:"title"`
		Content       string `json:"content"`
		PublishedDate string `json:"published_date"`
	} `json:"results"`
}

func (c *httpSearchClient) search(ctx context.Context, query string, maxResults int) ([]SearchResult, error) {
	body, err := json.Marshal(searchRequest{APIKey: c.apiKey, Query: query, MaxResults: maxResults})
	if err != nil {
		return nil, fmt.Errorf("marshal search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/search", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &TransportError{Capability: "search-web", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, &TransportError{Capability: "search-web", Err: fmt.Errorf("read response body: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &TransportError{
			Capability: "search-web",
			Status:     resp.StatusCode,
			Err:        fmt.Errorf("%s", truncateBody(raw)),
		}
	}

	var parsed searchResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &TransportError{Capability: "search-web", Err: fmt.Errorf("decode response: %w", err)}
	}

	results := make([]SearchResult, 0, len(parsed.Results))
	for _, r := range parsed.Results {
		sr := SearchResult{URL: r.URL, Title: r.Title, Excerpt: r.Content}
		if r.PublishedDate != "" {
			if ts, err := time.Parse("2006-01-02", r.PublishedDate); err == nil {
				sr.Published = &ts
			} else if ts, err := time.Parse(time.RFC3339, r.PublishedDate); err == nil {
				sr.Published = &ts
			}
		}
		results = append(results, sr)
	}
	return results, nil
}
