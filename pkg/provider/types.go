// Package provider gives every upstream component uniform access to the two
// external capabilities this service depends on: complete-text and
// search-web. The gateway owns timeouts, retries, rate limiting, circuit
// breaking, and structured-output parsing, so callers can treat provider
// calls as total functions returning typed errors.
//
// When a capability's credential is absent the gateway runs that capability
// in mock mode: deterministic synthetic responses with production shape,
// selected at construction time rather than as a failure fallback.
package provider

import (
	"context"
	"errors"
	"time"
)

// Role selects the model a complete-text call is routed to.
type Role string

const (
	RolePlanner    Role = "planner"
	RoleResearcher Role = "researcher"
	RoleEvaluator  Role = "evaluator"
	RoleWriter     Role = "writer"
)

func validRole(r Role) bool {
	switch r {
	case RolePlanner, RoleResearcher, RoleEvaluator, RoleWriter:
		return true
	}
	return false
}

// CompletionRequest describes one complete-text call. When Schema is non-nil
// the gateway unmarshals the model output into it, re-prompting with a repair
// instruction on parse failure.
type CompletionRequest struct {
	Role   Role
	Prompt string
	Schema any
}

// SearchResult is one search-web hit.
type SearchResult struct {
	URL       string     `json:"url"`
	Title     string     `json:"title"`
	Excerpt   string     `json:"excerpt"`
	Published *time.Time `json:"published,omitempty"`
}

// TextCompleter is the complete-text capability.
type TextCompleter interface {
	CompleteText(ctx context.Context, req CompletionRequest) (string, error)
}

// WebSearcher is the search-web capability.
type WebSearcher interface {
	SearchWeb(ctx context.Context, query string, maxResults int) ([]SearchResult, error)
}

// ErrInvalidInput flags gateway misuse: empty prompt or query, unknown role,
// max-results outside [1,50]. Reported locally, never wrapped in a transport
// or shape error.
var ErrInvalidInput = errors.New("invalid provider input")

const (
	minSearchResults = 1
	maxSearchResults = 50
)
