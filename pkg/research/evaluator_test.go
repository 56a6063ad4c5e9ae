package research

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delver-project/delver/pkg/models"
	"github.com/delver-project/delver/pkg/provider"
)

func evidenceSnapshot(n int) []models.Evidence {
	out := make([]models.Evidence, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, models.Evidence{
			CitationKey: fmt.Sprintf("S1-%d", i),
			Excerpt:     fmt.Sprintf("finding %d", i),
			Source:      models.EvidenceSource{Title: fmt.Sprintf("Source %d", i), URL: fmt.Sprintf("https://a.org/%d", i)},
		})
	}
	return out
}

func TestEvaluator_ValidResult(t *testing.T) {
	sp := newScriptedProvider()
	sp.complete = func(req provider.CompletionRequest) (string, error) {
		return evalJSON(0.82, []string{" recent data ", ""}, []string{"follow-up one"}), nil
	}
	e := NewEvaluator(sp, testResearchConfig())

	result, err := e.Evaluate(context.Background(), "q", evidenceSnapshot(4))
	require.NoError(t, err)
	assert.Equal(t, 0.82, result.Score)
	assert.Equal(t, models.LevelSubstantial, result.Level)
	assert.Equal(t, 0.82, result.Dimensions.FactualCoverage)
	assert.Equal(t, []string{"recent data"}, result.Gaps, "gaps are trimmed and blanks dropped")
	assert.Equal(t, []string{"follow-up one"}, result.Refinements)
	assert.Len(t, sp.completeCalls, 1)
}

func TestEvaluator_MissingScoreUsesDimensionMean(t *testing.T) {
	sp := newScriptedProvider()
	sp.complete = func(req provider.CompletionRequest) (string, error) {
		out, _ := json.Marshal(map[string]any{
			"dimensions": map[string]float64{
				"factual_coverage":    0.8,
				"source_diversity":    0.6,
				"temporal_coverage":   0.7,
				"perspective_balance": 0.5,
				"depth":               0.9,
			},
		})
		return string(out), nil
	}
	e := NewEvaluator(sp, testResearchConfig())

	result, err := e.Evaluate(context.Background(), "q", evidenceSnapshot(3))
	require.NoError(t, err)
	assert.InDelta(t, 0.7, result.Score, 1e-9)
	assert.Equal(t, models.LevelPartial, result.Level)
}

func TestEvaluator_RepromptOnceThenAccept(t *testing.T) {
	sp := newScriptedProvider()
	call := 0
	sp.complete = func(req provider.CompletionRequest) (string, error) {
		call++
		if call == 1 {
			return evalJSON(1.7, nil, nil), nil
		}
		return evalJSON(0.8, nil, nil), nil
	}
	e := NewEvaluator(sp, testResearchConfig())

	result, err := e.Evaluate(context.Background(), "q", evidenceSnapshot(3))
	require.NoError(t, err)
	assert.Equal(t, 0.8, result.Score)

	require.Len(t, sp.completeCalls, 2)
	assert.Contains(t, sp.completeCalls[1].Prompt, "rejected")
	assert.Contains(t, sp.completeCalls[1].Prompt, "outside [0,1]")
}

func TestEvaluator_ConservativeFallback(t *testing.T) {
	missingDim := func(req provider.CompletionRequest) (string, error) {
		out, _ := json.Marshal(map[string]any{
			"score": 0.9,
			"dimensions": map[string]float64{
				"factual_coverage": 0.9,
				"source_diversity": 0.9,
			},
		})
		return string(out), nil
	}

	sp := newScriptedProvider()
	sp.complete = missingDim
	// target = MaxEvidencePerQuery(5) * 3 = 15; 6 items give 0.4.
	e := NewEvaluator(sp, testResearchConfig())

	result, err := e.Evaluate(context.Background(), "q", evidenceSnapshot(6))
	require.NoError(t, err)
	assert.InDelta(t, 0.4, result.Score, 1e-9)
	assert.Equal(t, models.LevelPartial, result.Level)
	assert.Empty(t, result.Gaps)
	assert.Empty(t, result.Refinements)
	assert.Len(t, sp.completeCalls, 2)

	// The fallback score never exceeds 0.5 regardless of volume.
	sp2 := newScriptedProvider()
	sp2.complete = missingDim
	result, err = NewEvaluator(sp2, testResearchConfig()).Evaluate(context.Background(), "q", evidenceSnapshot(40))
	require.NoError(t, err)
	assert.Equal(t, 0.5, result.Score)
}

func TestEvaluator_ProviderErrorAborts(t *testing.T) {
	sp := newScriptedProvider()
	sp.complete = func(req provider.CompletionRequest) (string, error) {
		return "", &provider.ShapeError{Role: provider.RoleEvaluator, Attempts: 3, Err: fmt.Errorf("not json")}
	}

	_, err := NewEvaluator(sp, testResearchConfig()).Evaluate(context.Background(), "q", evidenceSnapshot(3))
	require.Error(t, err)
	assert.Len(t, sp.completeCalls, 1)
}
