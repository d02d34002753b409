package export

import (
	"bytes"
	"errors"
	"fmt"

	"enviroflow/internal/domain/entities"
	"enviroflow/internal/usecase/interfaces"

	"github.com/xuri/excelize/v2"
)

const defaultSheet = "Sheet1"

// Excel worksheet names are limited to 31 characters.
const maxSheetName = 31

var ErrNoTables = errors.New("no tables to export")

// ExcelExporter writes tables as an .xlsx workbook, one sheet per table with
// a header row of column names.
type ExcelExporter struct{}

var _ interfaces.ITableExporter = (*ExcelExporter)(nil)

func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

func (e *ExcelExporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (e *ExcelExporter) Export(tables ...entities.Table) ([]byte, error) {
	if len(tables) == 0 {
		return nil, ErrNoTables
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, t := range tables {
		name := sheetName(t, i)
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, name); err != nil {
				return nil, err
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return nil, err
		}
		if err := writeTable(f, name, t); err != nil {
			return nil, fmt.Errorf("write sheet %s: %w", name, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeTable(f *excelize.File, sheet string, t entities.Table) error {
	for col, h := range t.Columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	for r, row := range t.Rows {
		for col, v := range row {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func sheetName(t entities.Table, index int) string {
	name := t.Name
	if name == "" {
		name = fmt.Sprintf("Sheet%d", index+1)
	}
	if len(name) > maxSheetName {
		name = name[:maxSheetName]
	}
	return name
}
