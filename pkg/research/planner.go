package research

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/delver-project/delver/pkg/models"
	"github.com/delver-project/delver/pkg/provider"
)

const (
	minPlanSubTasks = 3
	maxPlanSubTasks = 8
)

// planResponse is the planner's structured output schema.
type planResponse struct {
	SubTasks []planSubTask `json:"sub_tasks"`
}

type planSubTask struct {
	ID          string  `json:"id"`
	Priority    float64 `json:"priority"`
	Description string  `json:"description"`
}

// Planner decomposes a research query into prioritized sub-tasks.
type Planner struct {
	client provider.TextCompleter
}

func NewPlanner(client provider.TextCompleter) *Planner {
	return &Planner{client: client}
}

// Plan produces 3 to 8 sub-tasks for the query. Output that violates the
// plan contract is re-prompted once with the violation named; a second
// violation yields the single-subtask fallback plan. Provider errors abort
// the call.
func (p *Planner) Plan(ctx context.Context, query string) ([]models.SubTask, error) {
	plan, violation, err := p.planOnce(ctx, planPrompt(query))
	if err != nil {
		return nil, err
	}
	if violation == "" {
		return plan, nil
	}

	plan, violation, err = p.planOnce(ctx, replanPrompt(query, violation))
	if err != nil {
		return nil, err
	}
	if violation == "" {
		return plan, nil
	}

	slog.Warn("Planner output invalid twice, using fallback plan", "violation", violation)
	return fallbackPlan(query), nil
}

func (p *Planner) planOnce(ctx context.Context, prompt string) ([]models.SubTask, string, error) {
	var parsed planResponse
	if _, err := p.client.CompleteText(ctx, provider.CompletionRequest{
		Role:   provider.RolePlanner,
		Prompt: prompt,
		Schema: &parsed,
	}); err != nil {
		return nil, "", fmt.Errorf("planner completion: %w", err)
	}
	return validatePlan(parsed)
}

// validatePlan checks the plan contract and converts to domain sub-tasks.
// A non-empty violation string describes the first contract breach.
func validatePlan(parsed planResponse) ([]models.SubTask, string, error) {
	n := len(parsed.SubTasks)
	if n < minPlanSubTasks || n > maxPlanSubTasks {
		return nil, fmt.Sprintf("expected %d to %d sub-tasks, got %d", minPlanSubTasks, maxPlanSubTasks, n), nil
	}

	seen := make(map[string]struct{}, n)
	subTasks := make([]models.SubTask, 0, n)
	for i, st := range parsed.SubTasks {
		desc := strings.TrimSpace(st.Description)
		if desc == "" {
			return nil, fmt.Sprintf("sub-task %d has an empty description", i+1), nil
		}
		if st.Priority < 0 || st.Priority > 1 {
			return nil, fmt.Sprintf("sub-task %d priority %.2f outside [0,1]", i+1, st.Priority), nil
		}
		key := strings.ToLower(desc)
		if _, dup := seen[key]; dup {
			return nil, fmt.Sprintf("duplicate sub-task description %q", desc), nil
		}
		seen[key] = struct{}{}

		id := strings.TrimSpace(st.ID)
		if id == "" {
			id = fmt.Sprintf("T%02d", i+1)
		}
		subTasks = append(subTasks, models.SubTask{
			ID:          id,
			Priority:    st.Priority,
			Description: desc,
			Iteration:   1,
		})
	}
	return subTasks, "", nil
}

// fallbackPlan is the deterministic plan used when the model cannot produce
// a valid decomposition: the original query as the only sub-task.
func fallbackPlan(query string) []models.SubTask {
	return []models.SubTask{{
		ID:          "T01",
		Priority:    1.0,
		Description: strings.TrimSpace(query),
		Iteration:   1,
	}}
}
