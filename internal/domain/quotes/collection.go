package quotes

import (
	"fmt"
	"strings"

	"enviroflow/internal/domain/entities"
)

// QuoteCollection is the flattened result of one batch of raw quotes.
//
// It is built once by NewQuoteCollection and never updated; a changed batch
// means a new collection. Slices returned by its accessors must not be
// modified.
type QuoteCollection struct {
	quotes   []entities.Quote
	lines    []entities.LineItem
	errors   []string
	log      []string
	received int
	failed   int
}

// NewQuoteCollection parses every raw quote, drops records missing a
// mandatory field and lines of deleted quotes, and flattens the rest in
// input order. It never fails: an empty or fully broken batch yields empty
// tables and a log entry saying so.
func NewQuoteCollection(raws []RawQuote) *QuoteCollection {
	c := &QuoteCollection{
		quotes:   []entities.Quote{},
		errors:   []string{},
		log:      []string{},
		received: len(raws),
	}

	all := []entities.LineItem{}
	for i, raw := range raws {
		q, err := ParseQuote(raw)
		if err != nil {
			c.failed++
			c.log = append(c.log, "failed to read: "+recordLabel(raw, i))
			continue
		}
		c.quotes = append(c.quotes, q)
		c.errors = append(c.errors, q.Errors...)
		all = append(all, q.LineItems...)
	}

	c.lines = ExcludeDeleted(all)
	if dropped := len(all) - len(c.lines); dropped > 0 {
		c.log = append(c.log, fmt.Sprintf("excluded %d line items with status %s", dropped, entities.QuoteStatusDeleted))
	}

	switch {
	case c.received == 0:
		c.log = append(c.log, "batch empty: no quote records received")
	case len(c.quotes) == 0:
		c.log = append(c.log, fmt.Sprintf("batch empty: all %d quote records failed", c.received))
	}
	return c
}

// ExcludeDeleted returns the lines whose quote is not deleted. Applying it
// to its own output is a no-op.
func ExcludeDeleted(lines []entities.LineItem) []entities.LineItem {
	out := make([]entities.LineItem, 0, len(lines))
	for _, li := range lines {
		if li.QuoteStatus == entities.QuoteStatusDeleted {
			continue
		}
		out = append(out, li)
	}
	return out
}

func (c *QuoteCollection) Quotes() []entities.Quote   { return c.quotes }
func (c *QuoteCollection) Lines() []entities.LineItem { return c.lines }

// Errors is the merged field diagnostics of every parsed quote.
func (c *QuoteCollection) Errors() []string { return c.errors }

// Log holds the collection's own entries: dropped records, excluded lines,
// and the empty-batch notice.
func (c *QuoteCollection) Log() []string { return c.log }

func (c *QuoteCollection) Received() int { return c.received }
func (c *QuoteCollection) Failed() int   { return c.failed }

func (c *QuoteCollection) Empty() bool { return len(c.lines) == 0 }

func (c *QuoteCollection) FullTable() entities.Table {
	return buildTable(FullTableName, FullColumns, c.lines)
}

func (c *QuoteCollection) HumanTable() entities.Table {
	return buildTable(HumanTableName, HumanColumns, c.lines)
}

// recordLabel names a raw record as best it can for the failure log.
func recordLabel(raw RawQuote, index int) string {
	for _, key := range []string{"QuoteNumber", "QuoteID"} {
		if s, err := lookupString(raw, key); err == nil && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return fmt.Sprintf("record %d", index+1)
}
