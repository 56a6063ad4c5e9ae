package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Mock backends produce deterministic synthetic output with production
// shape. Determinism comes from a stable FNV hash of the input, never from
// wall-clock or process state, so repeated runs over the same query yield
// identical plans, search hits, evaluations, and reports.

type mockTextClient struct{}

type mockSearchClient struct {
	now func() time.Time
}

func newMockTextClient() *mockTextClient { return &mockTextClient{} }

func newMockSearchClient() *mockSearchClient {
	return &mockSearchClient{now: time.Now}
}

func stableHash(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}

// complete dispatches on role to produce a shape-correct synthetic response.
// Model and system prompt are HTTP concerns and are ignored here.
func (m *mockTextClient) complete(_ context.Context, role Role, _, _, prompt string) (string, error) {
	switch role {
	case RolePlanner:
		return m.planResponse(prompt), nil
	case RoleEvaluator:
		return m.evalResponse(prompt), nil
	case RoleWriter:
		return m.writerResponse(prompt), nil
	default:
		return m.summaryResponse(prompt), nil
	}
}

var mockAngles = []string{
	"fundamentals and definitions",
	"current state of the art",
	"practical applications and case studies",
	"limitations, risks, and open problems",
	"comparative approaches",
	"recent developments",
}

func (m *mockTextClient) planResponse(prompt string) string {
	subject := lastPromptLine(prompt)
	h := stableHash(subject)
	n := 3 + int(h%3) // 3..5 sub-tasks

	type subTask struct {
		ID          string  `json:"id"`
		Priority    float64 `json:"priority"`
		Description string  `json:"description"`
	}
	tasks := make([]subTask, 0, n)
	for i := 0; i < n; i++ {
		angle := mockAngles[(int(h)+i*7)%len(mockAngles)]
		tasks = append(tasks, subTask{
			ID:          fmt.Sprintf("T%02d", i+1),
			Priority:    1.0 - 0.1*float64(i),
			Description: fmt.Sprintf("%s: %s", subject, angle),
		})
	}
	out, _ := json.Marshal(map[string]any{"sub_tasks": tasks})
	return string(out)
}

var evidenceCountRe = regexp.MustCompile(`EVIDENCE COUNT:\s*(\d+)`)

func (m *mockTextClient) evalResponse(prompt string) string {
	count := 0
	if match := evidenceCountRe.FindStringSubmatch(prompt); match != nil {
		count, _ = strconv.Atoi(match[1])
	}

	score := 0.5 + 0.08*float64(count)
	if count == 0 {
		score = 0.3
	}
	if score > 0.93 {
		score = 0.93
	}

	dims := map[string]float64{
		"factual_coverage":    bounded(score + 0.03),
		"source_diversity":    bounded(score - 0.05),
		"temporal_coverage":   bounded(score - 0.02),
		"perspective_balance": bounded(score),
		"depth":               bounded(score + 0.01),
	}

	var gaps []string
	var refinements []string
	if score < 0.95 {
		subject := lastPromptLine(prompt)
		gaps = []string{"temporal coverage of recent developments", "independent source corroboration"}
		refinements = []string{
			fmt.Sprintf("%s latest developments", subject),
			fmt.Sprintf("%s criticism and counterpoints", subject),
		}
	}

	out, _ := json.Marshal(map[string]any{
		"score":       round2(score),
		"dimensions":  dims,
		"gaps":        gaps,
		"refinements": refinements,
	})
	return string(out)
}

func (m *mockTextClient) summaryResponse(prompt string) string {
	body := prompt
	if idx := strings.Index(prompt, "EXCERPT:"); idx >= 0 {
		body = prompt[idx+len("EXCERPT:"):]
	}
	body = strings.TrimSpace(body)
	words := strings.Fields(body)
	if len(words) > 60 {
		words = words[:60]
	}
	return strings.Join(words, " ")
}

var citationKeyRe = regexp.MustCompile(`\[([A-Za-z0-9_-]+)\]`)

func (m *mockTextClient) writerResponse(prompt string) string {
	subject := firstMatchAfter(prompt, "QUESTION:")
	if subject == "" {
		subject = "the research question"
	}

	keys := uniqueMatches(citationKeyRe, prompt)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", subject)
	b.WriteString("## Executive Summary\n\n")
	fmt.Fprintf(&b, "This report synthesizes the collected evidence on %s. ", subject)
	b.WriteString("It summarizes the strongest findings, weighs source agreement and disagreement, and identifies where the evidence base remains thin. The sections below walk from headline findings through detailed analysis to conclusions, citing retained evidence throughout.\n\n")

	b.WriteString("## Key Findings\n\n")
	if len(keys) == 0 {
		b.WriteString("No evidence items were retained for this question; the findings below are limited to framing the question itself and describing what a productive follow-up investigation would target.\n\n")
	}
	for i, key := range keys {
		fmt.Fprintf(&b, "- Finding %d: the retained evidence supports a substantive conclusion on this aspect of the question [%s].\n", i+1, key)
	}
	b.WriteString("\n## Detailed Analysis\n\n")
	for i, key := range keys {
		fmt.Fprintf(&b, "Aspect %d. The source behind [%s] addresses the question directly, and its excerpt carries specific, verifiable detail rather than general commentary. Read together with the adjacent findings it narrows the range of defensible interpretations and anchors the conclusions that follow.\n\n", i+1, key)
	}
	b.WriteString("## Conclusions\n\n")
	fmt.Fprintf(&b, "Across %d cited evidence items, the collected material gives a coherent answer to %s, while the gaps identified during evaluation mark the natural starting points for deeper work.\n", len(keys), subject)
	return b.String()
}

func (m *mockSearchClient) search(_ context.Context, query string, maxResults int) ([]SearchResult, error) {
	h := stableHash(query)
	slug := slugify(query)
	fetched := m.now()

	hosts := []string{"research.example.org", "journal.example.com", "archive.example.net", "news.example.io"}

	results := make([]SearchResult, 0, maxResults)
	for i := 0; i < maxResults; i++ {
		host := hosts[(int(h)+i)%len(hosts)]
		published := fetched.AddDate(0, 0, -30*(i+1)-int(h%90))
		results = append(results, SearchResult{
			URL:   fmt.Sprintf("https://%s/articles/%s-%d", host, slug, i+1),
			Title: fmt.Sprintf("%s: perspective %d", titleCase(query), i+1),
			Excerpt: fmt.Sprintf(
				"Analysis %d of %s. The article examines %s in depth, reporting concrete observations, methodology notes, and figures relevant to the question, and situates them against prior published work from %s.",
				i+1, query, mockAngles[(int(h)+i)%len(mockAngles)], host),
			Published: &published,
		})
	}
	return results, nil
}

func bounded(f float64) float64 {
	if f < 0.05 {
		return 0.05
	}
	if f > 0.95 {
		return 0.95
	}
	return round2(f)
}

func round2(f float64) float64 {
	return float64(int(f*100+0.5)) / 100
}

func lastPromptLine(prompt string) string {
	lines := strings.Split(strings.TrimSpace(prompt), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if s := strings.TrimSpace(lines[i]); s != "" {
			return s
		}
	}
	return "the topic"
}

func firstMatchAfter(prompt, marker string) string {
	idx := strings.Index(prompt, marker)
	if idx < 0 {
		return ""
	}
	rest := prompt[idx+len(marker):]
	if end := strings.IndexByte(rest, '\n'); end >= 0 {
		rest = rest[:end]
	}
	return strings.TrimSpace(rest)
}

func uniqueMatches(re *regexp.Regexp, s string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, m := range re.FindAllStringSubmatch(s, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			out = append(out, m[1])
		}
	}
	return out
}

func slugify(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('-')
		}
	}
	slug := strings.Trim(b.String(), "-")
	if len(slug) > 48 {
		slug = slug[:48]
	}
	if slug == "" {
		slug = "query"
	}
	return slug
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if len(w) > 0 {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
