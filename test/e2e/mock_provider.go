package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/delver-project/delver/pkg/provider"
)

// ProviderScriptEntry defines a single scripted provider response.
type ProviderScriptEntry struct {
	// Response content (at most one is used)
	Text string                  // completion output
	Hits []provider.SearchResult // search-web hits
	Err  error                   // returned from the call

	// Test control
	BlockUntilCancelled bool            // block the call until ctx is cancelled, then return ctx.Err()
	WaitCh              <-chan struct{} // block the call until closed, then respond normally
	OnBlock             chan<- struct{} // notified when the call enters its blocking path
}

// ScriptedProvider implements research.ProviderClient with per-role
// completion scripts and a search script. Calls beyond the scripted entries
// fall back to deterministic defaults, so scenarios only script the calls
// they care about.
type ScriptedProvider struct {
	mu          sync.Mutex
	completions map[provider.Role][]ProviderScriptEntry
	complIndex  map[provider.Role]int
	searches    []ProviderScriptEntry
	searchIndex int

	completeCalls []provider.CompletionRequest
	searchCalls   []string
}

// NewScriptedProvider creates a ScriptedProvider with empty scripts.
func NewScriptedProvider() *ScriptedProvider {
	return &ScriptedProvider{
		completions: make(map[provider.Role][]ProviderScriptEntry),
		complIndex:  make(map[provider.Role]int),
	}
}

// AddCompletion appends an entry consumed in order by completions for role.
func (s *ScriptedProvider) AddCompletion(role provider.Role, entry ProviderScriptEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.completions[role] = append(s.completions[role], entry)
}

// AddSearch appends an entry consumed in order by search calls.
func (s *ScriptedProvider) AddSearch(entry ProviderScriptEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searches = append(s.searches, entry)
}

// CompleteText implements provider.TextCompleter.
func (s *ScriptedProvider) CompleteText(ctx context.Context, req provider.CompletionRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.Lock()
	s.completeCalls = append(s.completeCalls, req)
	entry := s.nextCompletion(req.Role)
	s.mu.Unlock()

	out := ""
	if entry != nil {
		if err := entry.block(ctx); err != nil {
			return "", err
		}
		if entry.Err != nil {
			return "", entry.Err
		}
		out = entry.Text
	} else {
		out = defaultCompletion(req)
	}

	// Mirror the gateway's structured-output contract.
	if req.Schema != nil {
		if err := json.Unmarshal([]byte(out), req.Schema); err != nil {
			return "", &provider.ShapeError{Role: req.Role, Attempts: 1, Err: err}
		}
	}
	return out, nil
}

// SearchWeb implements provider.WebSearcher.
func (s *ScriptedProvider) SearchWeb(ctx context.Context, query string, maxResults int) ([]provider.SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.searchCalls = append(s.searchCalls, query)
	var entry *ProviderScriptEntry
	if s.searchIndex < len(s.searches) {
		entry = &s.searches[s.searchIndex]
		s.searchIndex++
	}
	s.mu.Unlock()

	if entry == nil {
		return defaultHits(query, maxResults), nil
	}
	if err := entry.block(ctx); err != nil {
		return nil, err
	}
	if entry.Err != nil {
		return nil, entry.Err
	}
	return entry.Hits, nil
}

// SearchProviderTag implements research.ProviderClient.
func (s *ScriptedProvider) SearchProviderTag() string { return "provider:scripted" }

// CompleteCalls returns the total number of completion calls made.
func (s *ScriptedProvider) CompleteCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.completeCalls)
}

// SearchQueries returns the queries passed to SearchWeb, in call order.
func (s *ScriptedProvider) SearchQueries() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.searchCalls))
	copy(out, s.searchCalls)
	return out
}

// nextCompletion selects the next scripted entry for the role, or nil when
// the role's script is exhausted. Must be called with s.mu held.
func (s *ScriptedProvider) nextCompletion(role provider.Role) *ProviderScriptEntry {
	entries := s.completions[role]
	idx := s.complIndex[role]
	if idx >= len(entries) {
		return nil
	}
	s.complIndex[role] = idx + 1
	return &entries[idx]
}

// block handles the entry's blocking controls; a nil error means the call
// should proceed to its response.
func (e *ProviderScriptEntry) block(ctx context.Context) error {
	if e.BlockUntilCancelled {
		if e.OnBlock != nil {
			e.OnBlock <- struct{}{}
		}
		<-ctx.Done()
		return ctx.Err()
	}
	if e.WaitCh != nil {
		if e.OnBlock != nil {
			e.OnBlock <- struct{}{}
		}
		select {
		case <-e.WaitCh:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// ────────────────────────────────────────────────────────────
// Deterministic defaults
// ────────────────────────────────────────────────────────────

var scriptCitationRe = regexp.MustCompile(`\[([A-Za-z0-9_-]+)\]`)

// defaultCompletion produces a contract-valid response for any role.
func defaultCompletion(req provider.CompletionRequest) string {
	switch req.Role {
	case provider.RolePlanner:
		return defaultPlanJSON
	case provider.RoleResearcher:
		body := req.Prompt
		if i := strings.Index(body, "EXCERPT:"); i >= 0 {
			body = body[i+len("EXCERPT:"):]
		}
		return "Condensed: " + strings.TrimSpace(body)
	case provider.RoleEvaluator:
		return EvalJSON(0.9, nil, nil)
	case provider.RoleWriter:
		return defaultReportBody(req.Prompt)
	}
	return "ok"
}

const defaultPlanJSON = `{"sub_tasks":[
	{"id":"T01","priority":1.0,"description":"core facts and definitions"},
	{"id":"T02","priority":0.9,"description":"recent independent analysis"},
	{"id":"T03","priority":0.8,"description":"limitations and open problems"}]}`

// EvalJSON renders a contract-valid evaluation with every dimension set to
// the overall score.
func EvalJSON(score float64, gaps, refinements []string) string {
	payload := map[string]any{
		"score": score,
		"dimensions": map[string]float64{
			"factual_coverage":    score,
			"source_diversity":    score,
			"temporal_coverage":   score,
			"perspective_balance": score,
			"depth":               score,
		},
		"gaps":        gaps,
		"refinements": refinements,
	}
	out, _ := json.Marshal(payload)
	return string(out)
}

// defaultReportBody emits the expected report sections citing every key
// found in the prompt exactly once.
func defaultReportBody(prompt string) string {
	var cites strings.Builder
	seen := make(map[string]struct{})
	for _, m := range scriptCitationRe.FindAllStringSubmatch(prompt, -1) {
		if _, dup := seen[m[1]]; dup {
			continue
		}
		seen[m[1]] = struct{}{}
		fmt.Fprintf(&cites, "- Evidence point [%s].\n", m[1])
	}
	return "# Research Report\n\n## Executive Summary\n\nWhat was found.\n\n## Key Findings\n\n" +
		cites.String() + "\n## Detailed Analysis\n\nAnalysis prose.\n\n## Conclusions\n\nClosing.\n"
}

// defaultHits generates three distinct hits per query; URL and excerpt vary
// with the query so evidence across sub-queries never collides.
func defaultHits(query string, maxResults int) []provider.SearchResult {
	n := maxResults
	if n > 3 {
		n = 3
	}
	slug := strings.ReplaceAll(strings.ToLower(query), " ", "-")
	hits := make([]provider.SearchResult, 0, n)
	for i := 1; i <= n; i++ {
		hits = append(hits, provider.SearchResult{
			URL:     fmt.Sprintf("https://research.example.org/%s/%d", slug, i),
			Title:   fmt.Sprintf("%s source %d", query, i),
			Excerpt: fmt.Sprintf("Fact %d about %s with measurable outcome %d.", i, query, i*7),
		})
	}
	return hits
}
