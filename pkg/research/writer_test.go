package research

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/delver-project/delver/pkg/models"
	"github.com/delver-project/delver/pkg/provider"
)

func TestWriter_ReportAndBibliography(t *testing.T) {
	sp := newScriptedProvider()
	logs := &logCapture{}
	w := NewWriter(sp, logs.fn())
	snapshot := evidenceSnapshot(3)

	body, bib, err := w.Write(context.Background(), "the question", snapshot)
	require.NoError(t, err)

	for _, section := range []string{"# ", "## Executive Summary", "## Key Findings", "## Detailed Analysis", "## Conclusions", "## Sources"} {
		assert.Contains(t, body, section)
	}
	assert.Contains(t, body, "[S1-1]")
	assert.Contains(t, body, "[S1-3]")

	lines := strings.Split(bib, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "[S1-1] Source 1 — https://a.org/1", lines[0])
	assert.Equal(t, "[S1-3] Source 3 — https://a.org/3", lines[2])
	assert.Contains(t, body, bib, "bibliography is embedded under Sources")
	assert.Empty(t, logs.messages(models.LogWarning))
}

func TestWriter_StripsUnresolvedCitations(t *testing.T) {
	sp := newScriptedProvider()
	sp.complete = func(req provider.CompletionRequest) (string, error) {
		return "# R\n\n## Executive Summary\n\nReal [S1-1] and invented [Z9-1] plus [made_up].\n\n## Key Findings\n\n- x [S1-2]\n\n## Detailed Analysis\n\ny\n\n## Conclusions\n\nz\n", nil
	}
	logs := &logCapture{}
	w := NewWriter(sp, logs.fn())

	body, _, err := w.Write(context.Background(), "q", evidenceSnapshot(2))
	require.NoError(t, err)

	assert.Contains(t, body, "[S1-1]")
	assert.Contains(t, body, "[S1-2]")
	assert.NotContains(t, body, "Z9-1")
	assert.NotContains(t, body, "made_up")

	warnings := logs.messages(models.LogWarning)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "stripped 2 unresolved citations")
	assert.Contains(t, warnings[0], "Z9-1")
	assert.Contains(t, warnings[0], "made_up")
}

func TestWriter_EmptySnapshot(t *testing.T) {
	sp := newScriptedProvider()
	logs := &logCapture{}
	w := NewWriter(sp, logs.fn())

	body, bib, err := w.Write(context.Background(), "q", nil)
	require.NoError(t, err)
	assert.Empty(t, bib)
	assert.NotContains(t, body, "## Sources")
	assert.Contains(t, body, "## Conclusions")
}

func TestWriter_ProviderErrorAborts(t *testing.T) {
	sp := newScriptedProvider()
	sp.complete = func(req provider.CompletionRequest) (string, error) {
		return "", &provider.TransportError{Capability: "complete-text", Status: 500, Err: fmt.Errorf("boom")}
	}
	w := NewWriter(sp, (&logCapture{}).fn())

	_, _, err := w.Write(context.Background(), "q", evidenceSnapshot(1))
	require.Error(t, err)
}
