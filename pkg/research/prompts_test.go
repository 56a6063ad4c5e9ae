package research

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delver-project/delver/pkg/models"
	"github.com/delver-project/delver/pkg/provider"
)

func lastLine(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	return lines[len(lines)-1]
}

// The structured prompts end with the research question on its own line and
// the free-text prompts carry their markers; the mock provider dispatches on
// exactly these shapes.
func TestPromptContracts(t *testing.T) {
	snapshot := []models.Evidence{
		{CitationKey: "S1-1", Excerpt: "first excerpt", Source: models.EvidenceSource{Title: "One", URL: "https://a.org/1"}},
		{CitationKey: "S1-2", Excerpt: "second excerpt", Source: models.EvidenceSource{Title: "Two", URL: "https://a.org/2"}},
	}

	t.Run("plan prompt ends with the query", func(t *testing.T) {
		assert.Equal(t, "solid oxide fuel cells", lastLine(planPrompt("solid oxide fuel cells\n")))
	})

	t.Run("replan prompt names the violation and ends with the query", func(t *testing.T) {
		p := replanPrompt("q", "got 2 sub-tasks")
		assert.Contains(t, p, "rejected: got 2 sub-tasks")
		assert.Equal(t, "q", lastLine(p))
	})

	t.Run("summarize prompt carries the excerpt marker", func(t *testing.T) {
		p := summarizePrompt("sub query", provider.SearchResult{Title: "T", URL: "https://a.org", Excerpt: "raw text"})
		assert.Contains(t, p, "EXCERPT: raw text")
	})

	t.Run("eval prompt carries the count and ends with the query", func(t *testing.T) {
		p := evalPrompt("the question", snapshot)
		assert.Contains(t, p, "EVIDENCE COUNT: 2")
		assert.Contains(t, p, "[S1-1] One:")
		assert.Equal(t, "the question", lastLine(p))
	})

	t.Run("eval prompt caps listed items", func(t *testing.T) {
		big := make([]models.Evidence, evalMaxItems+10)
		for i := range big {
			big[i] = models.Evidence{CitationKey: "K", Excerpt: "x", Source: models.EvidenceSource{Title: "T"}}
		}
		p := evalPrompt("q", big)
		assert.Contains(t, p, "EVIDENCE COUNT: 30")
		assert.Equal(t, evalMaxItems, strings.Count(p, "- [K]"))
	})

	t.Run("writer prompt carries the question and every key", func(t *testing.T) {
		p := writerPrompt("the question", snapshot)
		assert.Contains(t, p, "QUESTION: the question")
		assert.Contains(t, p, "[S1-1] One (https://a.org/1)")
		assert.Contains(t, p, "[S1-2] Two (https://a.org/2)")
	})
}

func TestClip(t *testing.T) {
	assert.Equal(t, "short", clip("  short  ", 20))
	assert.Equal(t, "exact", clip("exact", 5))

	long := strings.Repeat("a", 30)
	got := clip(long, 10)
	assert.Equal(t, strings.Repeat("a", 10)+"...", got)

	// Truncation never splits a multi-byte rune.
	got = clip("ααααα", 5)
	require.True(t, utf8.ValidString(got))
	assert.Equal(t, "αα...", got)
}
