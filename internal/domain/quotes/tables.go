package quotes

import (
	"time"

	"enviroflow/internal/domain/entities"

	"github.com/shopspring/decimal"
)

const (
	FullTableName  = "quote_lines"
	HumanTableName = "quote_lines_human"
)

var FullColumns = []string{
	"quote_number",
	"quote_ref",
	"customer_name",
	"quote_id",
	"contact_id",
	"quote_status",
	"created_date",
	"updated_date",
	"item_code",
	"item_description",
	"line_id",
	"quantity",
	"unit_price",
	"line_total",
	"line_fraction",
}

// RedactedColumns are internal identifiers left out of the human view.
var RedactedColumns = []string{"quote_id", "contact_id", "line_id"}

var HumanColumns = withoutColumns(FullColumns, RedactedColumns)

func withoutColumns(cols, drop []string) []string {
	skip := make(map[string]bool, len(drop))
	for _, c := range drop {
		skip[c] = true
	}
	out := make([]string, 0, len(cols))
	for _, c := range cols {
		if !skip[c] {
			out = append(out, c)
		}
	}
	return out
}

func buildTable(name string, columns []string, lines []entities.LineItem) entities.Table {
	rows := make([][]any, 0, len(lines))
	for _, li := range lines {
		cells := lineCells(li)
		row := make([]any, len(columns))
		for i, col := range columns {
			row[i] = cells[col]
		}
		rows = append(rows, row)
	}
	return entities.Table{Name: name, Columns: columns, Rows: rows}
}

func lineCells(li entities.LineItem) map[string]any {
	return map[string]any{
		"quote_number":     li.QuoteNumber,
		"quote_ref":        stringCell(li.QuoteRef),
		"customer_name":    li.CustomerName,
		"quote_id":         li.QuoteID,
		"contact_id":       li.ContactID,
		"quote_status":     string(li.QuoteStatus),
		"created_date":     li.CreatedDate,
		"updated_date":     timeCell(li.UpdatedDate),
		"item_code":        stringCell(li.ItemCode),
		"item_description": stringCell(li.ItemDescription),
		"line_id":          stringCell(li.LineID),
		"quantity":         decimalCell(li.Quantity),
		"unit_price":       decimalCell(li.UnitPrice),
		"line_total":       decimalCell(li.LineTotal),
		"line_fraction":    li.LineFraction.InexactFloat64(),
	}
}

func stringCell(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func timeCell(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}

func decimalCell(d *decimal.Decimal) any {
	if d == nil {
		return nil
	}
	return d.InexactFloat64()
}
