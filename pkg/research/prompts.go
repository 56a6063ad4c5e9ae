package research

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/delver-project/delver/pkg/models"
	"github.com/delver-project/delver/pkg/provider"
)

// Prompt construction for the four pipeline roles. Structured roles state
// their JSON contract inline and end with the research question on its own
// line; the free-text roles carry explicit TITLE/EXCERPT and QUESTION
// markers so the model sees exactly what to condense or answer.

const planInstructions = `Decompose the research question below into 3 to 8 focused sub-tasks.
Each description must stand alone as a web search query; order sub-tasks by descending priority in [0,1].
Respond with JSON only: {"sub_tasks":[{"id":"T01","priority":1.0,"description":"..."}]}`

func planPrompt(query string) string {
	return planInstructions + "\n\n" + strings.TrimSpace(query)
}

func replanPrompt(query, violation string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Your previous plan was rejected: %s.\n", violation)
	b.WriteString(planInstructions)
	b.WriteString("\n\n")
	b.WriteString(strings.TrimSpace(query))
	return b.String()
}

func summarizePrompt(subQuery string, hit provider.SearchResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Condense the search result below into a dense factual excerpt answering: %s\n", subQuery)
	b.WriteString("Keep concrete figures, names, and dates. Respond with the excerpt text only.\n\n")
	fmt.Fprintf(&b, "TITLE: %s\n", hit.Title)
	fmt.Fprintf(&b, "URL: %s\n", hit.URL)
	fmt.Fprintf(&b, "EXCERPT: %s\n", hit.Excerpt)
	return b.String()
}

const evalInstructions = `Assess whether the evidence below suffices to answer the research question.
Score overall completion and each dimension in [0,1]; list gaps and refinement queries only while coverage is incomplete.
Respond with JSON only: {"score":0.0,"dimensions":{"factual_coverage":0.0,"source_diversity":0.0,"temporal_coverage":0.0,"perspective_balance":0.0,"depth":0.0},"gaps":[],"refinements":[]}`

func evalPrompt(query string, snapshot []models.Evidence) string {
	var b strings.Builder
	b.WriteString(evalInstructions)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "EVIDENCE COUNT: %d\n", len(snapshot))
	for i, item := range snapshot {
		if i == evalMaxItems {
			break
		}
		fmt.Fprintf(&b, "- [%s] %s: %s\n", item.CitationKey, item.Source.Title, clip(item.Excerpt, evalSnippetLen))
	}
	b.WriteString("\n")
	b.WriteString(strings.TrimSpace(query))
	return b.String()
}

func reevalPrompt(query string, snapshot []models.Evidence, violation string) string {
	return fmt.Sprintf("Your previous assessment was rejected: %s.\n%s", violation, evalPrompt(query, snapshot))
}

func writerPrompt(query string, snapshot []models.Evidence) string {
	var b strings.Builder
	b.WriteString("Write a structured markdown research report answering the question below.\n")
	b.WriteString("Sections: a # title, ## Executive Summary, ## Key Findings, ## Detailed Analysis, ## Conclusions.\n")
	b.WriteString("Cite evidence inline as [key], using only the citation keys listed under EVIDENCE. Never invent a citation.\n\n")
	fmt.Fprintf(&b, "QUESTION: %s\n\n", strings.TrimSpace(query))
	b.WriteString("EVIDENCE:\n")
	for _, item := range snapshot {
		fmt.Fprintf(&b, "[%s] %s (%s)\n%s\n\n", item.CitationKey, item.Source.Title, item.Source.URL, item.Excerpt)
	}
	return b.String()
}

// clip truncates text to at most limit bytes without splitting a rune.
func clip(text string, limit int) string {
	text = strings.TrimSpace(text)
	if len(text) <= limit {
		return text
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut] + "..."
}
