package main

import (
	"os"
	"path/filepath"
	"testing"

	"enviroflow/internal/domain/quotes"
	"enviroflow/internal/usecase"

	"github.com/xuri/excelize/v2"
)

func TestNeedsLocalCollection(t *testing.T) {
	cases := []struct {
		name    string
		load    bool
		xlsxOut string
		want    bool
	}{
		{name: "report only", want: true},
		{name: "workbook only", xlsxOut: "out.xlsx", want: true},
		{name: "load only", load: true, want: false},
		{name: "load and workbook", load: true, xlsxOut: "out.xlsx", want: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := needsLocalCollection(tc.load, tc.xlsxOut); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	t.Run("single", func(t *testing.T) {
		raws, err := decode([]byte(`{"QuoteNumber":"QU-1"}`), false)
		if err != nil || len(raws) != 1 {
			t.Fatalf("unexpected result: %v %v", raws, err)
		}
	})

	t.Run("pages", func(t *testing.T) {
		raws, err := decode([]byte(`{"p1":{"quotes":[{"QuoteNumber":"A"}]},"p2":{"quotes":[{"QuoteNumber":"B"}]}}`), true)
		if err != nil || len(raws) != 2 {
			t.Fatalf("unexpected result: %v %v", raws, err)
		}
	})

	t.Run("single given pages", func(t *testing.T) {
		if _, err := decode([]byte(`[]`), true); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestWriteWorkbook(t *testing.T) {
	c := quotes.NewQuoteCollection([]quotes.RawQuote{{
		"QuoteID":     "q-1",
		"QuoteNumber": "QU-1",
		"Contact":     map[string]any{"ContactID": "c-1", "Name": "Acme"},
		"Status":      "SENT",
		"DateString":  "2024-01-02T03:04:05",
		"SubTotal":    10.0,
		"LineItems":   []any{map[string]any{"LineItemID": "l-1", "Description": "Gate 50%"}},
	}})

	path := filepath.Join(t.TempDir(), "lines.xlsx")
	if err := writeWorkbook(path, c, usecase.TableViewHuman); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	if sheets := f.GetSheetList(); len(sheets) != 1 || sheets[0] != quotes.HumanTableName {
		t.Fatalf("unexpected sheets: %v", sheets)
	}
}
