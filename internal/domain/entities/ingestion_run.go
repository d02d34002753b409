package entities

import "time"

// IngestionRunStatus summarizes how an ingestion ended.

type IngestionRunStatus string

const (
	IngestionRunStatusSuccess IngestionRunStatus = "success"
	IngestionRunStatusPartial IngestionRunStatus = "partial"
	IngestionRunStatusEmpty   IngestionRunStatus = "empty"
)

type IngestionKind string

const (
	IngestionKindSingle IngestionKind = "single"
	IngestionKindPages  IngestionKind = "pages"
)

// IngestionRun is the audit record of one ingestion.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Errors holds the per-quote field diagnostics, Log the aggregator's own
// entries (dropped records, excluded lines, empty batch). Together they
// explain any gap between Received and Lines.

type IngestionRun struct {
	ID         string             `json:"id"`
	Kind       IngestionKind      `json:"kind"`
	ReceivedAt time.Time          `json:"received_at"`
	Status     IngestionRunStatus `json:"status"`

	Pages    int `json:"pages"`
	Received int `json:"received"`
	Parsed   int `json:"parsed"`
	Failed   int `json:"failed"`
	Lines    int `json:"lines"`

	Errors []string `json:"errors,omitempty"`
	Log    []string `json:"log,omitempty"`
}
