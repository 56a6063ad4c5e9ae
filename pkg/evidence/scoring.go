package evidence

import (
	"math"
	"net/url"
	"strings"
	"time"
	"unicode"

	"github.com/delver-project/delver/pkg/config"
	"github.com/delver-project/delver/pkg/models"
)

const (
	weightAuthority = 0.6
	weightRelevance = 0.3
	weightRecency   = 0.1

	// neutralScore stands in for any sub-score that cannot be computed.
	neutralScore = 0.5

	recencyHalfLifeDays = 365.0
)

// Scorer computes the quality score assigned to evidence at insertion.
type Scorer struct {
	authority *config.AuthorityTable
	now       func() time.Time
}

func NewScorer(table *config.AuthorityTable) *Scorer {
	return &Scorer{authority: table, now: time.Now}
}

// Score weighs source authority, lexical relevance to the task query, and
// publication recency. The result lies in [0,1].
func (s *Scorer) Score(item models.Evidence, query string) float64 {
	a := s.authorityScore(item.Source.URL)
	r := relevanceScore(item.Excerpt, query)
	c := s.recencyScore(item.Source.Published)
	return clamp01(weightAuthority*a + weightRelevance*r + weightRecency*c)
}

func (s *Scorer) authorityScore(raw string) float64 {
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" || s.authority == nil {
		return neutralScore
	}
	return s.authority.Score(strings.ToLower(u.Hostname()))
}

// relevanceScore is the cosine similarity of term-frequency vectors over the
// excerpt and the query. No embedding service sits in the core path.
func relevanceScore(excerpt, query string) float64 {
	et := termFreq(excerpt)
	qt := termFreq(query)
	if len(et) == 0 || len(qt) == 0 {
		return neutralScore
	}

	var dot, qnorm float64
	for term, qc := range qt {
		qnorm += qc * qc
		if ec, ok := et[term]; ok {
			dot += qc * ec
		}
	}
	var enorm float64
	for _, ec := range et {
		enorm += ec * ec
	}
	return clamp01(dot / (math.Sqrt(enorm) * math.Sqrt(qnorm)))
}

// recencyScore decays exponentially over days since publication with a
// one-year half-life. Unknown publication dates score neutral.
func (s *Scorer) recencyScore(published *time.Time) float64 {
	if published == nil || published.IsZero() {
		return neutralScore
	}
	days := s.now().Sub(*published).Hours() / 24
	if days < 0 {
		days = 0
	}
	return math.Exp2(-days / recencyHalfLifeDays)
}

func termFreq(text string) map[string]float64 {
	freq := make(map[string]float64)
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, w := range words {
		if len(w) < 3 {
			continue
		}
		freq[w]++
	}
	return freq
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
