package quotes

import (
	"fmt"

	"enviroflow/internal/domain/entities"
)

// decodeLineItems builds one row per element of the LineItems array, in
// input order. Field failures are recorded through quoteLog's error list and
// never drop a row.
func decodeLineItems(q entities.Quote, raw RawQuote, quoteLog fieldLog) []entities.LineItem {
	v, err := lookup(raw, "LineItems")
	if err != nil {
		quoteLog.note("line_items", err)
		return []entities.LineItem{}
	}
	arr, ok := v.([]any)
	if !ok {
		quoteLog.note("line_items", ErrFieldMalformed)
		return []entities.LineItem{}
	}

	items := make([]entities.LineItem, 0, len(arr))
	for i, el := range arr {
		line, _ := el.(map[string]any)
		items = append(items, decodeLineItem(q, i, line, quoteLog.errs))
	}
	return items
}

func decodeLineItem(q entities.Quote, index int, line map[string]any, errs *[]string) entities.LineItem {
	label := fmt.Sprintf("#%d", index+1)
	if id, err := lookupRequiredString(line, "LineItemID"); err == nil {
		label = id
	}
	fl := fieldLog{subject: fmt.Sprintf("line item: %s in quote: %s", label, q.Number), errs: errs}

	li := entities.LineItem{
		QuoteNumber:  q.Number,
		QuoteRef:     q.Reference,
		CustomerName: q.ContactName,
		QuoteID:      q.ID,
		ContactID:    q.ContactID,
		QuoteStatus:  q.Status,
		CreatedDate:  q.CreatedAt,
		UpdatedDate:  q.UpdatedAt,
	}
	li.ItemCode = fl.optionalString("item_code", line, "ItemCode")
	li.ItemDescription = fl.optionalString("item_description", line, "Description")
	li.LineID = fl.optionalString("line_id", line, "LineItemID")
	li.Quantity = fl.optionalDecimal("quantity", line, "Quantity")
	li.UnitPrice = fl.optionalDecimal("unit_price", line, "UnitAmount")
	li.LineTotal = fl.optionalDecimal("line_total", line, "LineAmount")

	li.LineFraction = wholeLine
	if li.ItemDescription != nil {
		li.LineFraction = LineFraction(*li.ItemDescription)
	}
	return li
}
