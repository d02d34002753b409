package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteStatus is the lifecycle status reported by the quoting service.
//
// Domain notes:
//   - Only QuoteStatusDeleted carries meaning for ingestion: its lines never
//     reach the warehouse tables.
//   - Unknown values are kept as-is; the source system owns this enum.

type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "DRAFT"
	QuoteStatusSent     QuoteStatus = "SENT"
	QuoteStatusAccepted QuoteStatus = "ACCEPTED"
	QuoteStatusDeclined QuoteStatus = "DECLINED"
	QuoteStatusInvoiced QuoteStatus = "INVOICED"
	QuoteStatusDeleted  QuoteStatus = "DELETED"
)

// Quote is a normalized quote header plus its decoded lines.
//
// Optional header fields are pointers: nil means the source record did not
// carry a usable value, and Errors explains why.
type Quote struct {
	ID             string          `json:"quote_id"`
	Number         string          `json:"quote_number"`
	Reference      *string         `json:"reference,omitempty"`
	ContactID      string          `json:"contact_id"`
	ContactName    string          `json:"contact_name"`
	ContactEmail   *string         `json:"contact_email,omitempty"`
	Status         QuoteStatus     `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      *time.Time      `json:"updated_at,omitempty"`
	SubtotalAmount decimal.Decimal `json:"subtotal_amount"`

	LineItems []LineItem `json:"line_items"`
	Errors    []string   `json:"errors,omitempty"`
}
