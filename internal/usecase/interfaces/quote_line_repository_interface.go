package interfaces

import (
	"context"
	"enviroflow/internal/domain/entities"
)

// IQuoteLineRepository is the load stage: it persists flattened quote lines
// into the warehouse.
//
// The warehouse must be able to:
//   - append every line of an ingestion run, duplicates included
//   - list the stored lines of one quote number, in load order

type IQuoteLineRepository interface {
	SaveLines(ctx context.Context, runID string, lines []entities.LineItem) error
	ListByQuoteNumber(ctx context.Context, quoteNumber string) ([]entities.LineItem, error)
}
