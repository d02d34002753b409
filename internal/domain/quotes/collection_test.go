package quotes

import (
	"strings"
	"testing"

	"enviroflow/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func line(id, description string) map[string]any {
	return map[string]any{
		"LineItemID":  id,
		"ItemCode":    "CODE",
		"Description": description,
		"Quantity":    1.0,
		"UnitAmount":  10.0,
		"LineAmount":  10.0,
	}
}

func countFailed(log []string) int {
	n := 0
	for _, entry := range log {
		if strings.HasPrefix(entry, "failed to read: ") {
			n++
		}
	}
	return n
}

func TestNewQuoteCollection(t *testing.T) {
	t.Run("end to end fence quote", func(t *testing.T) {
		c := NewQuoteCollection([]RawQuote{mustDecodeQuote(t, fenceQuoteJSON)})
		lines := c.Lines()
		if len(lines) != 2 {
			t.Fatalf("expected 2 rows, got %d", len(lines))
		}
		if !lines[0].LineFraction.Equal(decimal.RequireFromString("0.25")) || !lines[1].LineFraction.Equal(decimal.RequireFromString("1.00")) {
			t.Fatalf("unexpected fractions: %s %s", lines[0].LineFraction, lines[1].LineFraction)
		}
		if lines[0].QuoteNumber != "QU-0042" || lines[1].QuoteNumber != "QU-0042" {
			t.Fatalf("expected shared quote number")
		}
		if len(c.Log()) != 0 || len(c.Errors()) != 0 {
			t.Fatalf("expected clean logs, got %v %v", c.Log(), c.Errors())
		}
	})

	t.Run("bad records are dropped and counted", func(t *testing.T) {
		broken := minimalQuote("QU-BAD", "DRAFT", line("x", "a"))
		delete(broken, "SubTotal")
		noNumber := minimalQuote("", "DRAFT")
		noNumber["QuoteID"] = "only-id"
		raws := []RawQuote{
			minimalQuote("QU-1", "DRAFT", line("a", "one"), line("b", "two")),
			broken,
			nil,
			noNumber,
			minimalQuote("QU-2", "SENT", line("c", "three 50%")),
		}
		c := NewQuoteCollection(raws)

		if got := len(c.Quotes()) + countFailed(c.Log()); got != len(raws) {
			t.Fatalf("parsed + failed = %d, want %d (log %v)", got, len(raws), c.Log())
		}
		if c.Failed() != 3 || c.Received() != 5 {
			t.Fatalf("unexpected counters failed=%d received=%d", c.Failed(), c.Received())
		}
		for _, want := range []string{"failed to read: QU-BAD", "failed to read: record 3", "failed to read: only-id"} {
			if !containsString(c.Log(), want) {
				t.Fatalf("missing %q in %v", want, c.Log())
			}
		}
		var ids []string
		for _, li := range c.Lines() {
			ids = append(ids, *li.LineID)
		}
		if strings.Join(ids, ",") != "a,b,c" {
			t.Fatalf("unexpected row order %v", ids)
		}
	})

	t.Run("deleted quotes are excluded from both views", func(t *testing.T) {
		c := NewQuoteCollection([]RawQuote{
			minimalQuote("QU-1", "DRAFT", line("a", "one")),
			minimalQuote("QU-2", string(entities.QuoteStatusDeleted), line("b", "two"), line("c", "three")),
			minimalQuote("QU-3", "ACCEPTED", line("d", "four")),
		})
		if len(c.Quotes()) != 3 {
			t.Fatalf("deleted quotes still parse, got %d", len(c.Quotes()))
		}
		if c.FullTable().Len() != 2 || c.HumanTable().Len() != 2 {
			t.Fatalf("expected 2 rows in both views, got %d/%d", c.FullTable().Len(), c.HumanTable().Len())
		}
		for _, li := range c.Lines() {
			if li.QuoteStatus == entities.QuoteStatusDeleted {
				t.Fatalf("deleted line leaked: %+v", li)
			}
		}
		if !containsString(c.Log(), "excluded 2 line items with status DELETED") {
			t.Fatalf("expected exclusion log entry, got %v", c.Log())
		}
		again := ExcludeDeleted(c.Lines())
		if len(again) != len(c.Lines()) {
			t.Fatalf("exclusion not idempotent: %d vs %d", len(again), len(c.Lines()))
		}
	})

	t.Run("empty batch", func(t *testing.T) {
		c := NewQuoteCollection(nil)
		if !c.Empty() || c.FullTable().Len() != 0 || c.HumanTable().Len() != 0 {
			t.Fatalf("expected empty tables")
		}
		if !containsString(c.Log(), "batch empty: no quote records received") {
			t.Fatalf("expected empty batch log, got %v", c.Log())
		}
	})

	t.Run("every record fails", func(t *testing.T) {
		c := NewQuoteCollection([]RawQuote{{}, {"QuoteNumber": "QU-9"}})
		if !c.Empty() || len(c.Quotes()) != 0 {
			t.Fatalf("expected empty collection")
		}
		if !containsString(c.Log(), "batch empty: all 2 quote records failed") {
			t.Fatalf("expected failure summary, got %v", c.Log())
		}
		if len(c.Errors()) != 0 {
			t.Fatalf("batch state belongs in the log, got errors %v", c.Errors())
		}
	})

	t.Run("duplicate records across the batch are kept", func(t *testing.T) {
		q := minimalQuote("QU-1", "DRAFT", line("a", "one"))
		c := NewQuoteCollection([]RawQuote{q, q})
		if len(c.Lines()) != 2 {
			t.Fatalf("expected both copies, got %d", len(c.Lines()))
		}
	})
}

func TestTables(t *testing.T) {
	c := NewQuoteCollection([]RawQuote{mustDecodeQuote(t, fenceQuoteJSON)})
	full, human := c.FullTable(), c.HumanTable()

	if len(full.Columns) != 15 || len(full.Columns)-len(human.Columns) != 3 {
		t.Fatalf("unexpected column counts %d/%d", len(full.Columns), len(human.Columns))
	}
	for _, col := range human.Columns {
		for _, redacted := range RedactedColumns {
			if col == redacted {
				t.Fatalf("human view leaks %s", col)
			}
		}
	}
	if full.Len() != human.Len() {
		t.Fatalf("row counts differ %d/%d", full.Len(), human.Len())
	}
	for _, row := range full.Rows {
		if len(row) != len(full.Columns) {
			t.Fatalf("ragged row %v", row)
		}
	}
	if full.Rows[0][0] != "QU-0042" || full.Rows[0][len(full.Columns)-1] != 0.25 {
		t.Fatalf("unexpected first row %v", full.Rows[0])
	}
	if human.Rows[1][len(human.Columns)-1] != 1.0 {
		t.Fatalf("unexpected human fraction %v", human.Rows[1][len(human.Columns)-1])
	}
}
