package research

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/delver-project/delver/pkg/config"
	"github.com/delver-project/delver/pkg/models"
	"github.com/delver-project/delver/pkg/provider"
)

// Evaluation prompt bounds.
const (
	evalMaxItems   = 20
	evalSnippetLen = 200
)

// evalResponse is the evaluator's structured output schema. Score is a
// pointer so a missing overall score can fall back to the dimension mean.
type evalResponse struct {
	Score       *float64           `json:"score"`
	Dimensions  map[string]float64 `json:"dimensions"`
	Gaps        []string           `json:"gaps"`
	Refinements []string           `json:"refinements"`
}

var evalDimensionKeys = []string{
	"factual_coverage",
	"source_diversity",
	"temporal_coverage",
	"perspective_balance",
	"depth",
}

// Evaluator judges whether accumulated evidence answers the query.
type Evaluator struct {
	client provider.TextCompleter

	// target is the evidence volume a minimal plan is expected to yield;
	// the conservative fallback normalizes the actual count against it.
	target int
}

func NewEvaluator(client provider.TextCompleter, cfg config.ResearchConfig) *Evaluator {
	return &Evaluator{client: client, target: cfg.MaxEvidencePerQuery * minPlanSubTasks}
}

// Evaluate scores the snapshot against the query. Output that violates the
// evaluation contract is re-prompted once; a second violation yields the
// conservative fallback result. Provider errors abort the call.
func (e *Evaluator) Evaluate(ctx context.Context, query string, snapshot []models.Evidence) (*models.EvaluationResult, error) {
	result, violation, err := e.evaluateOnce(ctx, evalPrompt(query, snapshot))
	if err != nil {
		return nil, err
	}
	if violation == "" {
		return result, nil
	}

	result, violation, err = e.evaluateOnce(ctx, reevalPrompt(query, snapshot, violation))
	if err != nil {
		return nil, err
	}
	if violation == "" {
		return result, nil
	}

	slog.Warn("Evaluator output invalid twice, using conservative fallback", "violation", violation)
	return e.fallback(len(snapshot)), nil
}

func (e *Evaluator) evaluateOnce(ctx context.Context, prompt string) (*models.EvaluationResult, string, error) {
	var parsed evalResponse
	if _, err := e.client.CompleteText(ctx, provider.CompletionRequest{
		Role:   provider.RoleEvaluator,
		Prompt: prompt,
		Schema: &parsed,
	}); err != nil {
		return nil, "", fmt.Errorf("evaluator completion: %w", err)
	}
	return validateEval(parsed)
}

// validateEval checks the evaluation contract and converts to the domain
// result. A non-empty violation string describes the first contract breach.
func validateEval(parsed evalResponse) (*models.EvaluationResult, string, error) {
	if parsed.Score != nil && (*parsed.Score < 0 || *parsed.Score > 1) {
		return nil, fmt.Sprintf("score %.3f outside [0,1]", *parsed.Score), nil
	}
	for _, key := range evalDimensionKeys {
		v, ok := parsed.Dimensions[key]
		if !ok {
			return nil, fmt.Sprintf("missing dimension %q", key), nil
		}
		if v < 0 || v > 1 {
			return nil, fmt.Sprintf("dimension %q value %.3f outside [0,1]", key, v), nil
		}
	}

	dims := models.DimensionScores{
		FactualCoverage:    parsed.Dimensions["factual_coverage"],
		SourceDiversity:    parsed.Dimensions["source_diversity"],
		TemporalCoverage:   parsed.Dimensions["temporal_coverage"],
		PerspectiveBalance: parsed.Dimensions["perspective_balance"],
		Depth:              parsed.Dimensions["depth"],
	}
	score := dims.Mean()
	if parsed.Score != nil {
		score = *parsed.Score
	}

	return &models.EvaluationResult{
		Score:       score,
		Level:       models.LevelForScore(score),
		Dimensions:  dims,
		Gaps:        cleanStrings(parsed.Gaps),
		Refinements: cleanStrings(parsed.Refinements),
	}, "", nil
}

// fallback is the conservative result used when the model cannot produce
// a valid evaluation: bounded credit for volume, nothing to refine.
func (e *Evaluator) fallback(count int) *models.EvaluationResult {
	score := float64(count) / float64(e.target)
	if score > 0.5 {
		score = 0.5
	}
	return &models.EvaluationResult{
		Score: score,
		Level: models.LevelPartial,
	}
}

func cleanStrings(in []string) []string {
	var out []string
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
