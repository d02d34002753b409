package entities

// Table is a column-ordered view of line items handed to loaders and exporters.
//
// Cell values are nil (null), string, float64 or time.Time.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]any
}

func (t Table) Len() int {
	return len(t.Rows)
}
