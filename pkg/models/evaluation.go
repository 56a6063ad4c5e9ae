package models

// CompletionLevel buckets an overall completion score.
type CompletionLevel string

const (
	LevelInsufficient  CompletionLevel = "insufficient"  // [0, 0.5)
	LevelPartial       CompletionLevel = "partial"       // [0.5, 0.75)
	LevelSubstantial   CompletionLevel = "substantial"   // [0.75, 0.9)
	LevelComprehensive CompletionLevel = "comprehensive" // [0.9, 1.0]
)

// LevelForScore maps a completion score to its level bucket.
func LevelForScore(score float64) CompletionLevel {
	switch {
	case score >= 0.9:
		return LevelComprehensive
	case score >= 0.75:
		return LevelSubstantial
	case score >= 0.5:
		return LevelPartial
	default:
		return LevelInsufficient
	}
}

// DimensionScores are the evaluator's per-dimension sub-scores, each in [0,1].
type DimensionScores struct {
	FactualCoverage    float64 `json:"factual_coverage"`
	SourceDiversity    float64 `json:"source_diversity"`
	TemporalCoverage   float64 `json:"temporal_coverage"`
	PerspectiveBalance float64 `json:"perspective_balance"`
	Depth              float64 `json:"depth"`
}

// Mean averages the five dimension scores with equal weights.
func (d DimensionScores) Mean() float64 {
	return (d.FactualCoverage + d.SourceDiversity + d.TemporalCoverage +
		d.PerspectiveBalance + d.Depth) / 5
}

// EvaluationResult is the evaluator's judgement of accumulated evidence
// against the original query.
type EvaluationResult struct {
	Score       float64         `json:"score"`
	Level       CompletionLevel `json:"level"`
	Dimensions  DimensionScores `json:"dimensions"`
	Gaps        []string        `json:"gaps,omitempty"`
	Refinements []string        `json:"refinements,omitempty"`
}
