package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delver-project/delver/pkg/config"
)

// newHTTPGateway builds a gateway whose both capabilities point at the given
// test server. RateLimitConfig zero value disables throttling.
func newHTTPGateway(t *testing.T, serverURL string, maxRetries int) *Gateway {
	t.Helper()
	cfg := config.ProviderConfig{
		TextAPIKey:      "test-key",
		SearchAPIKey:    "test-key",
		TextBaseURL:     serverURL,
		SearchBaseURL:   serverURL,
		ConnectTimeout:  2 * time.Second,
		ReadTimeout:     5 * time.Second,
		MaxRetries:      maxRetries,
		PlannerModel:    "plan-model",
		ResearcherModel: "research-model",
		EvaluatorModel:  "eval-model",
		WriterModel:     "write-model",
	}
	return NewGateway(cfg, config.RateLimitConfig{})
}

func newMockGateway(t *testing.T) *Gateway {
	t.Helper()
	return NewGateway(config.ProviderConfig{MaxRetries: 3}, config.RateLimitConfig{})
}

func chatCompletion(content string) string {
	out, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": content}},
		},
	})
	return string(out)
}

func TestGateway_InputValidation(t *testing.T) {
	g := newMockGateway(t)
	ctx := context.Background()

	t.Run("empty prompt", func(t *testing.T) {
		_, err := g.CompleteText(ctx, CompletionRequest{Role: RolePlanner, Prompt: "   "})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := g.CompleteText(ctx, CompletionRequest{Role: Role("archivist"), Prompt: "question"})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("empty query", func(t *testing.T) {
		_, err := g.SearchWeb(ctx, "", 5)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("max results out of range", func(t *testing.T) {
		for _, n := range []int{0, -1, 51} {
			_, err := g.SearchWeb(ctx, "quantum error correction", n)
			require.Error(t, err, "maxResults=%d", n)
			assert.ErrorIs(t, err, ErrInvalidInput)
		}
	})

	t.Run("bounds are inclusive", func(t *testing.T) {
		for _, n := range []int{1, 50} {
			results, err := g.SearchWeb(ctx, "quantum error correction", n)
			require.NoError(t, err)
			assert.Len(t, results, n)
		}
	})
}

func TestGateway_HTTPTextRetry(t *testing.T) {
	t.Run("retries 429 then succeeds", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			if calls.Add(1) == 1 {
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			_, _ = w.Write([]byte(chatCompletion("recovered answer")))
		}))
		defer server.Close()

		g := newHTTPGateway(t, server.URL, 2)
		out, err := g.CompleteText(context.Background(), CompletionRequest{Role: RoleWriter, Prompt: "write"})
		require.NoError(t, err)
		assert.Equal(t, "recovered answer", out)
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("does not retry 400", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"bad request"}`))
		}))
		defer server.Close()

		g := newHTTPGateway(t, server.URL, 3)
		_, err := g.CompleteText(context.Background(), CompletionRequest{Role: RolePlanner, Prompt: "plan"})
		require.Error(t, err)

		var te *TransportError
		require.ErrorAs(t, err, &te)
		assert.Equal(t, http.StatusBadRequest, te.Status)
		assert.Equal(t, "complete-text", te.Capability)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("exhausts retry budget on 500", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		g := newHTTPGateway(t, server.URL, 1)
		_, err := g.CompleteText(context.Background(), CompletionRequest{Role: RolePlanner, Prompt: "plan"})
		require.Error(t, err)

		var te *TransportError
		require.ErrorAs(t, err, &te)
		assert.Equal(t, http.StatusInternalServerError, te.Status)
		assert.Equal(t, int32(2), calls.Load(), "one initial attempt plus one retry")
	})

	t.Run("request carries model and auth", func(t *testing.T) {
		var gotAuth string
		var gotModel string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			var req chatRequest
			_ = json.NewDecoder(r.Body).Decode(&req)
			gotModel = req.Model
			_, _ = w.Write([]byte(chatCompletion("ok")))
		}))
		defer server.Close()

		g := newHTTPGateway(t, server.URL, 0)
		_, err := g.CompleteText(context.Background(), CompletionRequest{Role: RoleEvaluator, Prompt: "evaluate"})
		require.NoError(t, err)
		assert.Equal(t, "Bearer test-key", gotAuth)
		assert.Equal(t, "eval-model", gotModel)
	})
}

func TestGateway_CircuitBreaker(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	g := newHTTPGateway(t, server.URL, 0)
	ctx := context.Background()

	for i := 0; i < breakerFailureThreshold; i++ {
		_, err := g.CompleteText(ctx, CompletionRequest{Role: RolePlanner, Prompt: "plan"})
		require.Error(t, err)
	}
	require.Equal(t, int32(breakerFailureThreshold), calls.Load())

	// Breaker is open now: the next call fails without a network attempt.
	_, err := g.CompleteText(ctx, CompletionRequest{Role: RolePlanner, Prompt: "plan"})
	require.Error(t, err)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)

	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "complete-text", te.Capability)
	assert.Equal(t, int32(breakerFailureThreshold), calls.Load())
}

func TestGateway_StructuredOutput(t *testing.T) {
	type plan struct {
		SubTasks []struct {
			ID          string  `json:"id"`
			Priority    float64 `json:"priority"`
			Description string  `json:"description"`
		} `json:"sub_tasks"`
	}

	t.Run("parses fenced JSON without repair", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			fenced := "```json\n{\"sub_tasks\":[{\"id\":\"T01\",\"priority\":1,\"description\":\"dig in\"}]}\n```"
			_, _ = w.Write([]byte(chatCompletion(fenced)))
		}))
		defer server.Close()

		g := newHTTPGateway(t, server.URL, 2)
		var p plan
		raw, err := g.CompleteText(context.Background(), CompletionRequest{Role: RolePlanner, Prompt: "plan", Schema: &p})
		require.NoError(t, err)
		require.Len(t, p.SubTasks, 1)
		assert.Equal(t, "T01", p.SubTasks[0].ID)
		assert.JSONEq(t, `{"sub_tasks":[{"id":"T01","priority":1,"description":"dig in"}]}`, raw)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("repairs after one malformed response", func(t *testing.T) {
		var calls atomic.Int32
		var sawRepair atomic.Bool
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req chatRequest
			_ = json.NewDecoder(r.Body).Decode(&req)
			if len(req.Messages) == 2 && strings.Contains(req.Messages[1].Content, "Previous response") {
				sawRepair.Store(true)
			}
			if calls.Add(1) == 1 {
				_, _ = w.Write([]byte(chatCompletion("Here is the plan you asked for.")))
				return
			}
			_, _ = w.Write([]byte(chatCompletion(`{"sub_tasks":[{"id":"T01","priority":0.9,"description":"retry"}]}`)))
		}))
		defer server.Close()

		g := newHTTPGateway(t, server.URL, 2)
		var p plan
		_, err := g.CompleteText(context.Background(), CompletionRequest{Role: RolePlanner, Prompt: "plan", Schema: &p})
		require.NoError(t, err)
		require.Len(t, p.SubTasks, 1)
		assert.Equal(t, int32(2), calls.Load())
		assert.True(t, sawRepair.Load())
	})

	t.Run("shape error after repair budget", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			calls.Add(1)
			_, _ = w.Write([]byte(chatCompletion("still not json")))
		}))
		defer server.Close()

		g := newHTTPGateway(t, server.URL, 2)
		var p plan
		_, err := g.CompleteText(context.Background(), CompletionRequest{Role: RolePlanner, Prompt: "plan", Schema: &p})
		require.Error(t, err)

		var se *ShapeError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, RolePlanner, se.Role)
		assert.Equal(t, 3, se.Attempts)
		assert.Equal(t, int32(3), calls.Load())
	})
}

func TestGateway_SearchHTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req searchRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-key", req.APIKey)
		assert.Equal(t, 3, req.MaxResults)

		_, _ = w.Write([]byte(`{"results":[
			{"url":"https://a.example.org/1","title":"First","content":"excerpt one","published_date":"2024-06-01"},
			{"url":"https://b.example.org/2","title":"Second","content":"excerpt two","published_date":""}
		]}`))
	}))
	defer server.Close()

	g := newHTTPGateway(t, server.URL, 0)
	results, err := g.SearchWeb(context.Background(), "site reliability", 3)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "https://a.example.org/1", results[0].URL)
	require.NotNil(t, results[0].Published)
	assert.Equal(t, 2024, results[0].Published.Year())
	assert.Nil(t, results[1].Published)
}

func TestGateway_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	g := newHTTPGateway(t, server.URL, 3)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := g.CompleteText(ctx, CompletionRequest{Role: RoleWriter, Prompt: "write"})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 2*time.Second, "deadline must stop the retry loop")
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain json untouched", in: `{"a":1}`, want: `{"a":1}`},
		{name: "json fence", in: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "bare fence", in: "```\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "surrounding whitespace", in: "  \n```json\n{\"a\":1}\n```\n ", want: `{"a":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripCodeFence(tt.in))
		})
	}
}
