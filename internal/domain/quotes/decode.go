package quotes

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var ErrInvalidPayload = errors.New("invalid quote payload")

// DecodeQuote reads a single quote object.
func DecodeQuote(data []byte) (RawQuote, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: quote is not an object", ErrInvalidPayload)
	}
	return obj, nil
}

// DecodePages reads a {"<page key>": {"quotes": [...]}, ...} payload,
// keeping the pages in the order their keys appear.
//
// A page without a quotes array is an empty page. Quote elements that are
// not objects are kept as nil records so they are counted, and rejected, by
// the collection.
func DecodePages(data []byte) ([]Page, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("%w: pages must be an object", ErrInvalidPayload)
	}

	pages := make([]Page, 0)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
		key, _ := keyTok.(string)

		var body any
		if err := dec.Decode(&body); err != nil {
			return nil, fmt.Errorf("%w: page %q: %v", ErrInvalidPayload, key, err)
		}
		quotes, err := pageQuotes(body)
		if err != nil {
			return nil, fmt.Errorf("page %q: %w", key, err)
		}
		pages = append(pages, Page{Key: key, Quotes: quotes})
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return pages, nil
}

func pageQuotes(body any) ([]RawQuote, error) {
	obj, ok := body.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: page is not an object", ErrInvalidPayload)
	}
	v := obj["quotes"]
	if v == nil {
		v = obj["Quotes"]
	}
	if v == nil {
		return nil, nil
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: quotes is not an array", ErrInvalidPayload)
	}
	out := make([]RawQuote, len(arr))
	for i, el := range arr {
		q, _ := el.(map[string]any)
		out[i] = q
	}
	return out, nil
}
