package quotes

// Page is one page of a paginated quotes response, keyed as the source
// keyed it.
type Page struct {
	Key    string
	Quotes []RawQuote
}

// ReassemblePages concatenates the quotes of every page in page order and
// reports how many pages contributed at least one record. Records are not
// deduplicated across pages.
func ReassemblePages(pages []Page) ([]RawQuote, int) {
	out := make([]RawQuote, 0)
	contributing := 0
	for _, p := range pages {
		if len(p.Quotes) == 0 {
			continue
		}
		out = append(out, p.Quotes...)
		contributing++
	}
	return out, contributing
}
