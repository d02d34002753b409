package interfaces

import "enviroflow/internal/domain/entities"

// ITableExporter renders flattened tables into a downloadable document
// (e.g. an Excel workbook).
type ITableExporter interface {
	Export(tables ...entities.Table) ([]byte, error)
	ContentType() string
}
