package research

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/delver-project/delver/pkg/config"
	"github.com/delver-project/delver/pkg/evidence"
	"github.com/delver-project/delver/pkg/models"
	"github.com/delver-project/delver/pkg/provider"
)

// maxExcerptLen bounds stored evidence excerpts.
const maxExcerptLen = 1000

// logFunc appends one record to the owning task's log stream.
type logFunc func(level models.LogLevel, message string)

// ProviderClient bundles the provider capabilities the pipeline consumes.
// *provider.Gateway satisfies it.
type ProviderClient interface {
	provider.TextCompleter
	provider.WebSearcher
	SearchProviderTag() string
}

// Researcher runs sub-queries against web search and turns hits into
// evidence records. One instance serves one task; sub-query ordinals, and
// with them citation keys, stay unique across the task's iterations.
type Researcher struct {
	client ProviderClient
	cfg    config.ResearchConfig
	log    logFunc

	queriesIssued int
}

func NewResearcher(client ProviderClient, cfg config.ResearchConfig, log logFunc) *Researcher {
	return &Researcher{client: client, cfg: cfg, log: log}
}

// Research fans the sub-queries out with bounded concurrency and adds the
// resulting evidence to the store. It returns how many items the store
// retained and how many sub-queries produced at least one hit. A sub-query
// failure is logged and skipped; only context cancellation aborts the pass.
func (r *Researcher) Research(ctx context.Context, queries []models.SubTask, store *evidence.Store, budget *Budget) (added, succeeded int, err error) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.SubQueryConcurrency)

	var mu sync.Mutex
	for i, q := range queries {
		ordinal := r.queriesIssued + i + 1
		g.Go(func() error {
			got, hits, err := r.runSubQuery(gctx, q, ordinal, store, budget)
			if err != nil {
				if isContextErr(err) {
					return err
				}
				r.log(models.LogWarning, fmt.Sprintf("sub-query %s failed: %v", q.ID, err))
				return nil
			}
			mu.Lock()
			added += got
			if hits {
				succeeded++
			}
			mu.Unlock()
			return nil
		})
	}
	r.queriesIssued += len(queries)

	if err := g.Wait(); err != nil {
		return added, succeeded, err
	}
	return added, succeeded, nil
}

// runSubQuery searches one sub-query and stores its hits. The second return
// reports whether the search produced any hits at all; items dropped by
// dedup still count as hits.
func (r *Researcher) runSubQuery(ctx context.Context, q models.SubTask, ordinal int, store *evidence.Store, budget *Budget) (int, bool, error) {
	if !budget.TrySpend(searchCost) {
		r.log(models.LogDebug, fmt.Sprintf("sub-query %s skipped, budget exhausted", q.ID))
		return 0, false, nil
	}

	hits, err := r.client.SearchWeb(ctx, q.Description, r.maxResults(budget))
	if err != nil {
		return 0, false, fmt.Errorf("search: %w", err)
	}
	if len(hits) == 0 {
		return 0, false, nil
	}

	callID := uuid.NewString()
	tags := []string{"web", r.client.SearchProviderTag()}
	added := 0
	for n, hit := range hits {
		excerpt, err := r.excerptFor(ctx, q.Description, hit, budget)
		if err != nil {
			return added, true, err
		}
		if excerpt == "" {
			continue
		}
		item := models.Evidence{
			Source: models.EvidenceSource{
				URL:       hit.URL,
				Title:     hit.Title,
				FetchedAt: time.Now().UTC(),
				Published: hit.Published,
			},
			Excerpt:     clip(excerpt, maxExcerptLen),
			ToolCallID:  callID,
			Tags:        tags,
			CitationKey: fmt.Sprintf("S%d-%d", ordinal, n+1),
		}
		if store.Add(item) {
			added++
		}
	}
	return added, true, nil
}

// excerptFor returns the excerpt to store for a hit. The full profile
// condenses it with a researcher completion when the budget allows;
// the cheap profile and a drained budget keep the provider's own excerpt.
// A failed summarization falls back to the raw excerpt with a warning.
func (r *Researcher) excerptFor(ctx context.Context, subQuery string, hit provider.SearchResult, budget *Budget) (string, error) {
	raw := strings.TrimSpace(hit.Excerpt)
	if r.cfg.CheapProfile || !budget.TrySpend(completionCost) {
		return raw, nil
	}

	out, err := r.client.CompleteText(ctx, provider.CompletionRequest{
		Role:   provider.RoleResearcher,
		Prompt: summarizePrompt(subQuery, hit),
	})
	if err != nil {
		if isContextErr(err) {
			return "", err
		}
		r.log(models.LogWarning, fmt.Sprintf("summarization failed for %s, keeping raw excerpt: %v", hit.URL, err))
		return raw, nil
	}
	if out = strings.TrimSpace(out); out == "" {
		return raw, nil
	}
	return out, nil
}

// maxResults scales per-search result caps to what the remaining budget can
// still pay to process, bounded by the configured per-subtask limit.
func (r *Researcher) maxResults(budget *Budget) int {
	affordable := budget.Remaining()
	if !r.cfg.CheapProfile {
		affordable /= completionCost
	}
	if affordable < 1 {
		affordable = 1
	}
	if affordable > r.cfg.MaxEvidencePerQuery {
		affordable = r.cfg.MaxEvidencePerQuery
	}
	return affordable
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
