// Package quotes normalizes quote payloads from the quoting service into
// flat, warehouse-ready line tables.
package quotes

import (
	"fmt"
	"time"

	"enviroflow/internal/domain/entities"
)

// CreatedLayout is the textual timestamp used by the DateString field.
const CreatedLayout = "2006-01-02T15:04:05"

// ParseQuote normalizes one raw quote.
//
// Mandatory fields (quote id, number, contact id and name, status, subtotal,
// created date) fail the whole record with ErrRecordIncomplete. Every other
// field is extracted on its own: a failure leaves it nil and appends a
// diagnostic to Quote.Errors.
func ParseQuote(raw RawQuote) (entities.Quote, error) {
	id, err := lookupRequiredString(raw, "QuoteID")
	if err != nil {
		return entities.Quote{}, incomplete("quote_id", err)
	}
	number, err := lookupRequiredString(raw, "QuoteNumber")
	if err != nil {
		return entities.Quote{}, incomplete("quote_number", err)
	}
	contactID, err := lookupRequiredString(raw, "Contact", "ContactID")
	if err != nil {
		return entities.Quote{}, incomplete("contact_id", err)
	}
	contactName, err := lookupRequiredString(raw, "Contact", "Name")
	if err != nil {
		return entities.Quote{}, incomplete("contact_name", err)
	}
	status, err := lookupRequiredString(raw, "Status")
	if err != nil {
		return entities.Quote{}, incomplete("status", err)
	}
	subtotal, err := lookupDecimal(raw, "SubTotal")
	if err != nil {
		return entities.Quote{}, incomplete("subtotal_amount", err)
	}
	createdRaw, err := lookupRequiredString(raw, "DateString")
	if err != nil {
		return entities.Quote{}, incomplete("created_at", err)
	}
	createdAt, err := time.ParseInLocation(CreatedLayout, createdRaw, time.UTC)
	if err != nil {
		return entities.Quote{}, incomplete("created_at", ErrFieldMalformed)
	}

	q := entities.Quote{
		ID:             id,
		Number:         number,
		ContactID:      contactID,
		ContactName:    contactName,
		Status:         entities.QuoteStatus(status),
		CreatedAt:      createdAt,
		SubtotalAmount: subtotal,
		Errors:         []string{},
	}
	fl := fieldLog{subject: "quote: " + number, errs: &q.Errors}

	q.Reference = fl.optionalString("reference", raw, "Reference")
	q.ContactEmail = fl.optionalString("contact_email", raw, "Contact", "EmailAddress")
	q.UpdatedAt = fl.optionalTimestamp("updated_at", raw, "UpdatedDateUTC")
	q.LineItems = decodeLineItems(q, raw, fl)

	return q, nil
}

func (l fieldLog) optionalTimestamp(field string, m map[string]any, path ...string) *time.Time {
	s, err := lookupString(m, path...)
	if err != nil {
		l.note(field, err)
		return nil
	}
	t, err := DecodeEmbeddedTimestamp(s)
	if err != nil {
		l.note(field, ErrFieldMalformed)
		return nil
	}
	if n := TimestampRuns(s); n > 1 {
		*l.errs = append(*l.errs, fmt.Sprintf("ambiguous %s for %s: %d timestamps, using the first", field, l.subject, n))
	}
	return &t
}

func incomplete(field string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrRecordIncomplete, field, err)
}
