package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"github.com/delver-project/delver/pkg/config"
)

// textBackend executes one complete-text attempt. HTTP backends ignore the
// role (the model is already resolved); the mock backend dispatches on it.
type textBackend interface {
	complete(ctx context.Context, role Role, model, systemPrompt, userPrompt string) (string, error)
}

// searchBackend executes one search-web attempt.
type searchBackend interface {
	search(ctx context.Context, query string, maxResults int) ([]SearchResult, error)
}

const (
	capabilityText   = "complete-text"
	capabilitySearch = "search-web"

	breakerFailureThreshold = 5
	breakerOpenTimeout      = 30 * time.Second

	retryInitialInterval = 500 * time.Millisecond
	retryMaxInterval     = 10 * time.Second
)

// Gateway implements TextCompleter and WebSearcher. Each capability is bound
// at construction to either the HTTP backend or, when its credential is
// absent, the deterministic mock backend. The rate limiter and the
// per-capability circuit breakers apply to HTTP calls only.
type Gateway struct {
	cfg config.ProviderConfig

	text   textBackend
	search searchBackend

	textMock   bool
	searchMock bool

	limiter       *rate.Limiter
	textBreaker   *gobreaker.CircuitBreaker
	searchBreaker *gobreaker.CircuitBreaker
}

var (
	_ TextCompleter = (*Gateway)(nil)
	_ WebSearcher   = (*Gateway)(nil)
)

// NewGateway builds the gateway from configuration. Mode selection happens
// here, once: a capability never falls back to mock at call time.
func NewGateway(cfg config.ProviderConfig, rl config.RateLimitConfig) *Gateway {
	g := &Gateway{
		cfg:           cfg,
		textMock:      cfg.TextMockMode(),
		searchMock:    cfg.SearchMockMode(),
		limiter:       newRateLimiter(rl),
		textBreaker:   newCapabilityBreaker(capabilityText),
		searchBreaker: newCapabilityBreaker(capabilitySearch),
	}

	if g.textMock {
		g.text = newMockTextClient()
	} else {
		g.text = newHTTPTextClient(cfg.TextBaseURL, cfg.TextAPIKey, cfg.ConnectTimeout, cfg.ReadTimeout)
	}
	if g.searchMock {
		g.search = newMockSearchClient()
	} else {
		g.search = newHTTPSearchClient(cfg.SearchBaseURL, cfg.SearchAPIKey, cfg.ConnectTimeout, cfg.ReadTimeout)
	}

	slog.Info("Provider gateway initialized",
		"text_mode", modeName(g.textMock),
		"search_mode", modeName(g.searchMock),
		"rate_per_minute", rl.PerMinute,
		"rate_burst", rl.Burst)
	return g
}

func newRateLimiter(rl config.RateLimitConfig) *rate.Limiter {
	if rl.PerMinute <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	burst := rl.Burst
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(rl.PerMinute)), burst)
}

func newCapabilityBreaker(capability string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    capability,
		Timeout: breakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerFailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("Provider circuit breaker state change",
				"capability", name, "from", from.String(), "to", to.String())
		},
	})
}

func modeName(mock bool) string {
	if mock {
		return "mock"
	}
	return "http"
}

// Modes reports the active text and search modes, "http" or "mock".
func (g *Gateway) Modes() (text, search string) {
	return modeName(g.textMock), modeName(g.searchMock)
}

// SearchProviderTag names the active search backend for evidence tagging.
func (g *Gateway) SearchProviderTag() string {
	if g.searchMock {
		return "provider:mock"
	}
	return "provider:tavily"
}

// CompleteText routes a completion to the model configured for the request
// role. With a non-nil Schema the parsed output lands in it and the returned
// string is the raw JSON payload.
func (g *Gateway) CompleteText(ctx context.Context, req CompletionRequest) (string, error) {
	if !validRole(req.Role) {
		return "", fmt.Errorf("%w: unknown role %q", ErrInvalidInput, req.Role)
	}
	if strings.TrimSpace(req.Prompt) == "" {
		return "", fmt.Errorf("%w: empty prompt", ErrInvalidInput)
	}

	if req.Schema == nil {
		return g.completeOnce(ctx, req.Role, req.Prompt)
	}
	return g.completeStructured(ctx, req)
}

// SearchWeb runs one search query, returning at most maxResults hits.
func (g *Gateway) SearchWeb(ctx context.Context, query string, maxResults int) ([]SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: empty query", ErrInvalidInput)
	}
	if maxResults < minSearchResults || maxResults > maxSearchResults {
		return nil, fmt.Errorf("%w: max results %d outside [%d,%d]",
			ErrInvalidInput, maxResults, minSearchResults, maxSearchResults)
	}

	if g.searchMock {
		return g.search.search(ctx, query, maxResults)
	}

	var out []SearchResult
	op := func() error {
		if err := g.waitLimiter(ctx, capabilitySearch); err != nil {
			return err
		}
		res, err := g.searchBreaker.Execute(func() (any, error) {
			return g.search.search(ctx, query, maxResults)
		})
		if err != nil {
			return classifyAttempt(capabilitySearch, err)
		}
		out = res.([]SearchResult)
		return nil
	}
	if err := backoff.Retry(op, g.retryPolicy(ctx)); err != nil {
		return nil, err
	}
	return out, nil
}

// completeOnce runs one logical completion, transport retries included,
// without structured-output handling.
func (g *Gateway) completeOnce(ctx context.Context, role Role, prompt string) (string, error) {
	model := g.modelFor(role)
	system := systemPromptFor(role)

	if g.textMock {
		return g.text.complete(ctx, role, model, system, prompt)
	}

	var out string
	op := func() error {
		if err := g.waitLimiter(ctx, capabilityText); err != nil {
			return err
		}
		res, err := g.textBreaker.Execute(func() (any, error) {
			return g.text.complete(ctx, role, model, system, prompt)
		})
		if err != nil {
			return classifyAttempt(capabilityText, err)
		}
		out = res.(string)
		return nil
	}
	if err := backoff.Retry(op, g.retryPolicy(ctx)); err != nil {
		return "", err
	}
	return out, nil
}

// completeStructured parses the model output into req.Schema, re-prompting
// with a repair instruction on parse failure. Transport retries happen inside
// each attempt; repair attempts are counted separately.
func (g *Gateway) completeStructured(ctx context.Context, req CompletionRequest) (string, error) {
	attempts := g.cfg.MaxRetries + 1
	if attempts < 1 {
		attempts = 1
	}

	prompt := req.Prompt
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		raw, err := g.completeOnce(ctx, req.Role, prompt)
		if err != nil {
			return "", err
		}

		cleaned := stripCodeFence(raw)
		if err := json.Unmarshal([]byte(cleaned), req.Schema); err == nil {
			return cleaned, nil
		} else {
			lastErr = err
			slog.Warn("Structured output parse failed, requesting repair",
				"role", string(req.Role), "attempt", attempt, "error", err)
			prompt = repairPrompt(req.Prompt, cleaned, err)
		}
	}
	return "", &ShapeError{Role: req.Role, Attempts: attempts, Err: lastErr}
}

// waitLimiter blocks until the shared token bucket admits the call. A failed
// wait never retries: either the context is done or the reservation cannot
// fit the deadline at all.
func (g *Gateway) waitLimiter(ctx context.Context, capability string) error {
	if err := g.limiter.Wait(ctx); err != nil {
		if cerr := ctx.Err(); cerr != nil {
			return backoff.Permanent(cerr)
		}
		return backoff.Permanent(&TransportError{Capability: capability, Err: err})
	}
	return nil
}

// classifyAttempt decides whether a failed attempt may be retried. Open
// breakers, context errors, and non-retryable HTTP statuses are permanent
// for the current call.
func classifyAttempt(capability string, err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return backoff.Permanent(&TransportError{Capability: capability, Err: err})
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return backoff.Permanent(err)
	}

	var te *TransportError
	if errors.As(err, &te) {
		if te.Status != 0 && !retryableStatus(te.Status) {
			return backoff.Permanent(err)
		}
		return err
	}
	return backoff.Permanent(&TransportError{Capability: capability, Err: err})
}

func (g *Gateway) retryPolicy(ctx context.Context) backoff.BackOffContext {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = retryInitialInterval
	b.MaxInterval = retryMaxInterval
	b.MaxElapsedTime = 0
	return backoff.WithContext(backoff.WithMaxRetries(b, uint64(g.cfg.MaxRetries)), ctx)
}

func (g *Gateway) modelFor(role Role) string {
	switch role {
	case RoleResearcher:
		return g.cfg.ResearcherModel
	case RoleEvaluator:
		return g.cfg.EvaluatorModel
	case RoleWriter:
		return g.cfg.WriterModel
	default:
		return g.cfg.PlannerModel
	}
}

func systemPromptFor(role Role) string {
	switch role {
	case RolePlanner:
		return "You are a research planner. Decompose the question into focused, independent sub-tasks. Respond with JSON only."
	case RoleEvaluator:
		return "You are a research evaluator. Score evidence coverage, name concrete gaps, and propose refined queries. Respond with JSON only."
	case RoleWriter:
		return "You are a research writer. Produce a well-structured markdown report that cites evidence by citation key."
	default:
		return "You are a research assistant. Summarize evidence faithfully and concisely."
	}
}

// stripCodeFence removes a surrounding markdown code fence, which chat models
// add around JSON output even when told not to.
func stripCodeFence(s string) string {
	t := strings.TrimSpace(s)
	if !strings.HasPrefix(t, "```") {
		return t
	}
	t = strings.TrimPrefix(t, "```")
	if idx := strings.IndexByte(t, '\n'); idx >= 0 {
		t = t[idx+1:] // drop the language tag line
	}
	t = strings.TrimSpace(t)
	t = strings.TrimSuffix(t, "```")
	return strings.TrimSpace(t)
}

func repairPrompt(original, lastOutput string, parseErr error) string {
	var b strings.Builder
	b.WriteString(original)
	b.WriteString("\n\nYour previous response was not valid JSON for the required schema (")
	b.WriteString(parseErr.Error())
	b.WriteString("). Respond again with ONLY the JSON object, no prose and no code fences.\nPrevious response:\n")
	b.WriteString(truncateBody([]byte(lastOutput)))
	return b.String()
}
