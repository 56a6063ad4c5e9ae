package models

import "time"

// EvidenceSource identifies where an excerpt came from.
type EvidenceSource struct {
	URL       string     `json:"url"`
	Title     string     `json:"title"`
	FetchedAt time.Time  `json:"fetched_at"`
	Published *time.Time `json:"published,omitempty"`
}

// Evidence is a single retained research finding. Records are immutable
// after creation; the content hash over the normalized excerpt is the
// deduplication key within a task.
type Evidence struct {
	ID          string         `json:"id"`
	Source      EvidenceSource `json:"source"`
	Excerpt     string         `json:"excerpt"`
	ContentHash string         `json:"content_hash"`
	ToolCallID  string         `json:"tool_call_id,omitempty"`
	Quality     float64        `json:"quality"`
	Tags        []string       `json:"tags,omitempty"`
	CitationKey string         `json:"citation_key"`
}
