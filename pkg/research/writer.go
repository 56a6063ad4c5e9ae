package research

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/delver-project/delver/pkg/models"
	"github.com/delver-project/delver/pkg/provider"
)

var citationRe = regexp.MustCompile(`\[([A-Za-z0-9_-]+)\]`)

// Writer synthesizes the final markdown report from the evidence snapshot.
type Writer struct {
	client provider.TextCompleter
	log    logFunc
}

func NewWriter(client provider.TextCompleter, log logFunc) *Writer {
	return &Writer{client: client, log: log}
}

// Write produces the report body and its bibliography. The prompt's citation
// keys form a closed vocabulary; any [key] the model invents is stripped
// from the body and logged as a warning. The bibliography lists every
// retained evidence item in insertion order.
func (w *Writer) Write(ctx context.Context, query string, snapshot []models.Evidence) (body, bibliography string, err error) {
	out, err := w.client.CompleteText(ctx, provider.CompletionRequest{
		Role:   provider.RoleWriter,
		Prompt: writerPrompt(query, snapshot),
	})
	if err != nil {
		return "", "", fmt.Errorf("writer completion: %w", err)
	}

	vocab := make(map[string]struct{}, len(snapshot))
	for _, item := range snapshot {
		vocab[item.CitationKey] = struct{}{}
	}

	stripped := make(map[string]struct{})
	body = citationRe.ReplaceAllStringFunc(out, func(m string) string {
		key := m[1 : len(m)-1]
		if _, ok := vocab[key]; ok {
			return m
		}
		stripped[key] = struct{}{}
		return ""
	})
	if len(stripped) > 0 {
		keys := make([]string, 0, len(stripped))
		for key := range stripped {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		w.log(models.LogWarning, fmt.Sprintf("stripped %d unresolved citations: %s", len(keys), strings.Join(keys, ", ")))
	}

	bibliography = bibliographyFor(snapshot)
	if bibliography != "" {
		body = strings.TrimRight(body, "\n") + "\n\n## Sources\n\n" + bibliography + "\n"
	}
	return body, bibliography, nil
}

// bibliographyFor renders one line per citation key: [key] Title — URL.
func bibliographyFor(snapshot []models.Evidence) string {
	lines := make([]string, 0, len(snapshot))
	for _, item := range snapshot {
		lines = append(lines, fmt.Sprintf("[%s] %s — %s", item.CitationKey, item.Source.Title, item.Source.URL))
	}
	return strings.Join(lines, "\n")
}
