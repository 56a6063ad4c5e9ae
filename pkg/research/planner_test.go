package research

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delver-project/delver/pkg/provider"
)

func TestPlanner_ValidPlanPassesThrough(t *testing.T) {
	sp := newScriptedProvider()
	plan, err := NewPlanner(sp).Plan(context.Background(), "solid state batteries")

	require.NoError(t, err)
	require.Len(t, plan, 3)
	assert.Equal(t, "T01", plan[0].ID)
	assert.Equal(t, 1.0, plan[0].Priority)
	assert.Equal(t, "alpha core facts", plan[0].Description)
	for _, st := range plan {
		assert.Equal(t, 1, st.Iteration)
	}
	require.Len(t, sp.completeCalls, 1)
}

func TestPlanner_BlankIDsAreFilled(t *testing.T) {
	sp := newScriptedProvider()
	sp.complete = func(req provider.CompletionRequest) (string, error) {
		return `{"sub_tasks":[
			{"priority":1.0,"description":"one"},
			{"priority":0.8,"description":"two"},
			{"priority":0.6,"description":"three"}]}`, nil
	}

	plan, err := NewPlanner(sp).Plan(context.Background(), "q")
	require.NoError(t, err)
	require.Len(t, plan, 3)
	assert.Equal(t, "T01", plan[0].ID)
	assert.Equal(t, "T02", plan[1].ID)
	assert.Equal(t, "T03", plan[2].ID)
}

func TestPlanner_RepromptCitesViolation(t *testing.T) {
	sp := newScriptedProvider()
	call := 0
	sp.complete = func(req provider.CompletionRequest) (string, error) {
		call++
		if call == 1 {
			return `{"sub_tasks":[{"id":"T01","priority":1.0,"description":"only one"}]}`, nil
		}
		return defaultPlanJSON, nil
	}

	plan, err := NewPlanner(sp).Plan(context.Background(), "q")
	require.NoError(t, err)
	assert.Len(t, plan, 3)

	require.Len(t, sp.completeCalls, 2)
	assert.Contains(t, sp.completeCalls[1].Prompt, "rejected")
	assert.Contains(t, sp.completeCalls[1].Prompt, "got 1")
}

func TestPlanner_FallbackAfterTwoViolations(t *testing.T) {
	violations := map[string]string{
		"too few sub-tasks": `{"sub_tasks":[{"id":"T01","priority":1.0,"description":"a"},{"id":"T02","priority":0.9,"description":"b"}]}`,
		"empty description": `{"sub_tasks":[{"id":"T01","priority":1.0,"description":"a"},{"id":"T02","priority":0.9,"description":"  "},{"id":"T03","priority":0.8,"description":"c"}]}`,
		"priority out of range": `{"sub_tasks":[{"id":"T01","priority":1.4,"description":"a"},{"id":"T02","priority":0.9,"description":"b"},{"id":"T03","priority":0.8,"description":"c"}]}`,
		"case-insensitive duplicate": `{"sub_tasks":[{"id":"T01","priority":1.0,"description":"Same Thing"},{"id":"T02","priority":0.9,"description":"same thing"},{"id":"T03","priority":0.8,"description":"c"}]}`,
	}

	for name, payload := range violations {
		t.Run(name, func(t *testing.T) {
			sp := newScriptedProvider()
			sp.complete = func(req provider.CompletionRequest) (string, error) {
				return payload, nil
			}

			plan, err := NewPlanner(sp).Plan(context.Background(), "  original query  ")
			require.NoError(t, err)
			require.Len(t, plan, 1)
			assert.Equal(t, "T01", plan[0].ID)
			assert.Equal(t, 1.0, plan[0].Priority)
			assert.Equal(t, "original query", plan[0].Description)
			assert.Len(t, sp.completeCalls, 2)
		})
	}
}

func TestPlanner_ProviderErrorAborts(t *testing.T) {
	sp := newScriptedProvider()
	sp.complete = func(req provider.CompletionRequest) (string, error) {
		return "", &provider.TransportError{Capability: "complete-text", Status: 503, Err: fmt.Errorf("upstream down")}
	}

	_, err := NewPlanner(sp).Plan(context.Background(), "q")
	require.Error(t, err)
	var te *provider.TransportError
	assert.True(t, errors.As(err, &te))
	assert.Len(t, sp.completeCalls, 1)
}

func TestPlanner_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewPlanner(newScriptedProvider()).Plan(ctx, "q")
	require.ErrorIs(t, err, context.Canceled)
}
