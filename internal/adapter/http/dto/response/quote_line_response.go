package response

import (
	"enviroflow/internal/domain/entities"
	"time"

	"github.com/shopspring/decimal"
)

// QuoteLineResponse mirrors one row of the flattened line table. The human
// view leaves the identifier columns empty so they are omitted.
type QuoteLineResponse struct {
	QuoteNumber  string     `json:"quote_number"`
	QuoteRef     *string    `json:"quote_ref"`
	CustomerName string     `json:"customer_name"`
	QuoteID      string     `json:"quote_id,omitempty"`
	ContactID    string     `json:"contact_id,omitempty"`
	QuoteStatus  string     `json:"quote_status"`
	CreatedDate  time.Time  `json:"created_date"`
	UpdatedDate  *time.Time `json:"updated_date"`

	ItemCode        *string          `json:"item_code"`
	ItemDescription *string          `json:"item_description"`
	LineID          *string          `json:"line_id,omitempty"`
	Quantity        *decimal.Decimal `json:"quantity"`
	UnitPrice       *decimal.Decimal `json:"unit_price"`
	LineTotal       *decimal.Decimal `json:"line_total"`
	LineFraction    decimal.Decimal  `json:"line_fraction"`
}

type QuoteLinesResponse struct {
	QuoteNumber string              `json:"quote_number"`
	View        string              `json:"view"`
	Lines       []QuoteLineResponse `json:"lines"`
}

func FromLineItem(li entities.LineItem, human bool) QuoteLineResponse {
	res := QuoteLineResponse{
		QuoteNumber:     li.QuoteNumber,
		QuoteRef:        li.QuoteRef,
		CustomerName:    li.CustomerName,
		QuoteStatus:     string(li.QuoteStatus),
		CreatedDate:     li.CreatedDate,
		UpdatedDate:     li.UpdatedDate,
		ItemCode:        li.ItemCode,
		ItemDescription: li.ItemDescription,
		Quantity:        li.Quantity,
		UnitPrice:       li.UnitPrice,
		LineTotal:       li.LineTotal,
		LineFraction:    li.LineFraction,
	}
	if !human {
		res.QuoteID = li.QuoteID
		res.ContactID = li.ContactID
		res.LineID = li.LineID
	}
	return res
}

func FromLineItems(quoteNumber string, lines []entities.LineItem, human bool) QuoteLinesResponse {
	view := "full"
	if human {
		view = "human"
	}
	out := QuoteLinesResponse{
		QuoteNumber: quoteNumber,
		View:        view,
		Lines:       make([]QuoteLineResponse, 0, len(lines)),
	}
	for _, li := range lines {
		out.Lines = append(out.Lines, FromLineItem(li, human))
	}
	return out
}
