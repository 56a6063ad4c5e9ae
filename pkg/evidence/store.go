// Package evidence holds the per-task evidence store and its quality
// scoring. One Store backs one research task; researcher goroutines add to
// it concurrently while the orchestrator reads snapshots between phases.
package evidence

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/delver-project/delver/pkg/models"
)

// Store is an append-only, hash-deduplicated evidence collection.
type Store struct {
	mu     sync.Mutex
	query  string
	scorer *Scorer

	items []models.Evidence
	seen  map[string]struct{}
	hosts map[string]int
}

func NewStore(query string, scorer *Scorer) *Store {
	return &Store{
		query:  query,
		scorer: scorer,
		seen:   make(map[string]struct{}),
		hosts:  make(map[string]int),
	}
}

// Add hashes, deduplicates, scores, and appends one item. The content hash
// is always recomputed; a citation key is assigned only when the caller left
// it empty. Reports whether the item was retained.
func (s *Store) Add(item models.Evidence) bool {
	hash := ContentHash(item.Excerpt)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, dup := s.seen[hash]; dup {
		return false
	}
	s.seen[hash] = struct{}{}

	item.ContentHash = hash
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.CitationKey == "" {
		item.CitationKey = fmt.Sprintf("src-%d", len(s.items)+1)
	}
	if s.scorer != nil {
		item.Quality = s.scorer.Score(item, s.query)
	}
	if host := hostOf(item.Source.URL); host != "" {
		s.hosts[host]++
	}

	s.items = append(s.items, item)
	return true
}

// Snapshot returns the retained items in insertion order.
func (s *Store) Snapshot() []models.Evidence {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Evidence, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// HostCounts reports how many retained items each source host contributed.
func (s *Store) HostCounts() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]int, len(s.hosts))
	for h, n := range s.hosts {
		out[h] = n
	}
	return out
}

// SourcesSummary formats the host distribution for status reporting,
// largest contributors first, ties broken alphabetically.
func (s *Store) SourcesSummary() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.items) == 0 {
		return "no sources"
	}

	type hostCount struct {
		host  string
		count int
	}
	counts := make([]hostCount, 0, len(s.hosts))
	for h, n := range s.hosts {
		counts = append(counts, hostCount{host: h, count: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count > counts[j].count
		}
		return counts[i].host < counts[j].host
	})

	parts := make([]string, 0, len(counts))
	for _, hc := range counts {
		parts = append(parts, fmt.Sprintf("%s (%d)", hc.host, hc.count))
	}
	return fmt.Sprintf("%d items from %d hosts: %s", len(s.items), len(counts), strings.Join(parts, ", "))
}

func hostOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Hostname())
}
