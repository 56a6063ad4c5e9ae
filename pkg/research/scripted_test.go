package research

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/delver-project/delver/pkg/config"
	"github.com/delver-project/delver/pkg/models"
	"github.com/delver-project/delver/pkg/provider"
)

// scriptedProvider satisfies ProviderClient with behaviors the tests swap
// per scenario. Both hooks default to deterministic canned output.
type scriptedProvider struct {
	mu            sync.Mutex
	complete      func(req provider.CompletionRequest) (string, error)
	search        func(query string, maxResults int) ([]provider.SearchResult, error)
	completeCalls []provider.CompletionRequest
	searchCalls   []searchCall
}

type searchCall struct {
	query      string
	maxResults int
}

func newScriptedProvider() *scriptedProvider {
	sp := &scriptedProvider{}
	sp.complete = defaultCompletion
	sp.search = func(query string, maxResults int) ([]provider.SearchResult, error) {
		return defaultHits(query, maxResults), nil
	}
	return sp
}

func (s *scriptedProvider) CompleteText(ctx context.Context, req provider.CompletionRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.Lock()
	s.completeCalls = append(s.completeCalls, req)
	fn := s.complete
	s.mu.Unlock()

	out, err := fn(req)
	if err != nil {
		return "", err
	}
	if req.Schema != nil {
		if uerr := json.Unmarshal([]byte(out), req.Schema); uerr != nil {
			return "", &provider.ShapeError{Role: req.Role, Attempts: 1, Err: uerr}
		}
	}
	return out, nil
}

func (s *scriptedProvider) SearchWeb(ctx context.Context, query string, maxResults int) ([]provider.SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.searchCalls = append(s.searchCalls, searchCall{query: query, maxResults: maxResults})
	fn := s.search
	s.mu.Unlock()
	return fn(query, maxResults)
}

func (s *scriptedProvider) SearchProviderTag() string { return "provider:test" }

func (s *scriptedProvider) completionsByRole(role provider.Role) []provider.CompletionRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []provider.CompletionRequest
	for _, req := range s.completeCalls {
		if req.Role == role {
			out = append(out, req)
		}
	}
	return out
}

const defaultPlanJSON = `{"sub_tasks":[
	{"id":"T01","priority":1.0,"description":"alpha core facts"},
	{"id":"T02","priority":0.9,"description":"beta recent analysis"},
	{"id":"T03","priority":0.8,"description":"gamma future outlook"}]}`

func defaultCompletion(req provider.CompletionRequest) (string, error) {
	switch req.Role {
	case provider.RolePlanner:
		return defaultPlanJSON, nil
	case provider.RoleResearcher:
		body := req.Prompt
		if i := strings.Index(body, "EXCERPT:"); i >= 0 {
			body = body[i+len("EXCERPT:"):]
		}
		return "Condensed: " + strings.TrimSpace(body), nil
	case provider.RoleEvaluator:
		return evalJSON(0.9, nil, nil), nil
	case provider.RoleWriter:
		return writerBody(req.Prompt), nil
	}
	return "", fmt.Errorf("unexpected role %q", req.Role)
}

// evalJSON renders a contract-valid evaluation with every dimension set to
// the overall score.
func evalJSON(score float64, gaps, refinements []string) string {
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

// writerBody emits the expected report sections citing every key found in
// the prompt exactly once.
func writerBody(prompt string) string {
	var cites strings.Builder
	seen := make(map[string]struct{})
	for _, m := range citationRe.FindAllStringSubmatch(prompt, -1) {
		if _, dup := seen[m[1]]; dup {
			continue
		}
		seen[m[1]] = struct{}{}
		fmt.Fprintf(&cites, "- Evidence point [%s].\n", m[1])
	}
	return "# Research Report\n\n## Executive Summary\n\nWhat was found.\n\n## Key Findings\n\n" +
		cites.String() + "\n## Detailed Analysis\n\nAnalysis prose.\n\n## Conclusions\n\nClosing.\n"
}

func defaultHits(query string, maxResults int) []provider.SearchResult {
	n := maxResults
	if n > 3 {
		n = 3
	}
	hits := make([]provider.SearchResult, 0, n)
	for i := 1; i <= n; i++ {
		hits = append(hits, provider.SearchResult{
			URL:     fmt.Sprintf("https://research.example.org/%s/%d", strings.ReplaceAll(strings.ToLower(query), " ", "-"), i),
			Title:   fmt.Sprintf("%s source %d", query, i),
			Excerpt: fmt.Sprintf("Fact %d about %s with measurable outcome %d.", i, query, i*7),
		})
	}
	return hits
}

// logCapture collects task log records written through a logFunc.
type logCapture struct {
	mu   sync.Mutex
	recs []capturedLog
}

type capturedLog struct {
	level   models.LogLevel
	message string
}

func (l *logCapture) fn() logFunc {
	return func(level models.LogLevel, message string) {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.recs = append(l.recs, capturedLog{level: level, message: message})
	}
}

func (l *logCapture) messages(level models.LogLevel) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []string
	for _, rec := range l.recs {
		if rec.level == level {
			out = append(out, rec.message)
		}
	}
	return out
}

func testResearchConfig() config.ResearchConfig {
	return config.ResearchConfig{
		MaxConcurrentTasks:  2,
		QualityThreshold:    0.75,
		MaxEvidencePerQuery: 5,
		SubQueryConcurrency: 4,
		DefaultDeepBudget:   150,
		SimpleBudget:        50,
	}
}
