package quotes

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// RawQuote is one quote as received from the quoting service, decoded with
// json.Number preserved. Nested objects are map[string]any, arrays []any.
type RawQuote = map[string]any

var (
	ErrRecordIncomplete = errors.New("quote record incomplete")
	ErrFieldMissing     = errors.New("field missing")
	ErrFieldMalformed   = errors.New("field malformed")
)

// lookup walks path through nested objects.
func lookup(m map[string]any, path ...string) (any, error) {
	var cur any = m
	for _, key := range path {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, ErrFieldMalformed
		}
		v, ok := obj[key]
		if !ok || v == nil {
			return nil, ErrFieldMissing
		}
		cur = v
	}
	return cur, nil
}

func lookupString(m map[string]any, path ...string) (string, error) {
	v, err := lookup(m, path...)
	if err != nil {
		return "", err
	}
	switch s := v.(type) {
	case string:
		return s, nil
	case fmt.Stringer:
		// json.Number
		return s.String(), nil
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), nil
	default:
		return "", ErrFieldMalformed
	}
}

// lookupRequiredString treats blank values as missing.
func lookupRequiredString(m map[string]any, path ...string) (string, error) {
	s, err := lookupString(m, path...)
	if err != nil {
		return "", err
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrFieldMissing
	}
	return s, nil
}

func lookupDecimal(m map[string]any, path ...string) (decimal.Decimal, error) {
	v, err := lookup(m, path...)
	if err != nil {
		return decimal.Zero, err
	}
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n), nil
	case fmt.Stringer:
		d, err := decimal.NewFromString(n.String())
		if err != nil {
			return decimal.Zero, ErrFieldMalformed
		}
		return d, nil
	case string:
		// Accept "1,250.00" style amounts.
		s := strings.ReplaceAll(strings.TrimSpace(n), ",", "")
		d, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Zero, ErrFieldMalformed
		}
		return d, nil
	default:
		return decimal.Zero, ErrFieldMalformed
	}
}

// fieldLog turns field failures into operator diagnostics appended to a
// shared list. subject names the record, e.g. "quote: QU-0042".
type fieldLog struct {
	subject string
	errs    *[]string
}

func (l fieldLog) note(field string, err error) {
	if errors.Is(err, ErrFieldMissing) {
		*l.errs = append(*l.errs, fmt.Sprintf("no %s for %s", field, l.subject))
		return
	}
	*l.errs = append(*l.errs, fmt.Sprintf("failed to parse %s for %s", field, l.subject))
}

func (l fieldLog) optionalString(field string, m map[string]any, path ...string) *string {
	s, err := lookupString(m, path...)
	if err != nil {
		l.note(field, err)
		return nil
	}
	return &s
}

func (l fieldLog) optionalDecimal(field string, m map[string]any, path ...string) *decimal.Decimal {
	d, err := lookupDecimal(m, path...)
	if err != nil {
		l.note(field, err)
		return nil
	}
	return &d
}
