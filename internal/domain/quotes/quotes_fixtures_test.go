package quotes

import "testing"

const fenceQuoteJSON = `{
	"QuoteID": "q-0001",
	"QuoteNumber": "QU-0042",
	"Reference": "Smith backyard",
	"Contact": {"ContactID": "c-77", "Name": "Jane Smith", "EmailAddress": "jane@example.com"},
	"Status": "ACCEPTED",
	"DateString": "2023-11-14T00:00:00",
	"UpdatedDateUTC": "/Date(1700000000000+0000)/",
	"SubTotal": 1250.50,
	"LineItems": [
		{"LineItemID": "l-1", "ItemCode": "FNC", "Description": "Fence repair 25%", "Quantity": 1, "UnitAmount": 1000, "LineAmount": 1000},
		{"LineItemID": "l-2", "ItemCode": "MISC", "Description": "Site clean-up", "Quantity": 2, "UnitAmount": "125.25", "LineAmount": 250.50}
	]
}`

func mustDecodeQuote(t *testing.T, s string) RawQuote {
	t.Helper()
	raw, err := DecodeQuote([]byte(s))
	if err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return raw
}

// minimalQuote returns a raw quote holding only the mandatory fields.
func minimalQuote(number, status string, lines ...any) RawQuote {
	return RawQuote{
		"QuoteID":     "id-" + number,
		"QuoteNumber": number,
		"Contact":     map[string]any{"ContactID": "c-1", "Name": "Acme Ltd"},
		"Status":      status,
		"DateString":  "2024-01-02T03:04:05",
		"SubTotal":    100.0,
		"LineItems":   lines,
	}
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
