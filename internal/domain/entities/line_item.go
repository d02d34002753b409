package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItem is one row of a quote's line array, carrying the header values of
// its parent quote so it can be loaded as a flat warehouse row.
type LineItem struct {
	QuoteNumber  string      `json:"quote_number"`
	QuoteRef     *string     `json:"quote_ref,omitempty"`
	CustomerName string      `json:"customer_name"`
	QuoteID      string      `json:"quote_id"`
	ContactID    string      `json:"contact_id"`
	QuoteStatus  QuoteStatus `json:"quote_status"`
	CreatedDate  time.Time   `json:"created_date"`
	UpdatedDate  *time.Time  `json:"updated_date,omitempty"`

	ItemCode        *string          `json:"item_code,omitempty"`
	ItemDescription *string          `json:"item_description,omitempty"`
	LineID          *string          `json:"line_id,omitempty"`
	Quantity        *decimal.Decimal `json:"quantity,omitempty"`
	UnitPrice       *decimal.Decimal `json:"unit_price,omitempty"`
	LineTotal       *decimal.Decimal `json:"line_total,omitempty"`

	// LineFraction is the share of the line, in [0,1]. It defaults to 1 when
	// the description has no percentage marker.
	LineFraction decimal.Decimal `json:"line_fraction"`
}
