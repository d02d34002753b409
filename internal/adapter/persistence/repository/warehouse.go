package repository

import (
	"context"
	"fmt"

	"enviroflow/internal/infrastructure/config"
	"enviroflow/internal/infrastructure/database"
	"enviroflow/internal/usecase/interfaces"
)

// NewWarehouse opens the repositories of the configured warehouse driver.
// Postgres tables are migrated on open; DynamoDB tables must already exist.
func NewWarehouse(ctx context.Context, cfg config.Config) (interfaces.IQuoteLineRepository, interfaces.IIngestionRunRepository, error) {
	switch cfg.WarehouseDriver {
	case config.WarehouseDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return NewQuoteLineDynamoRepository(ddb, cfg.QuoteLinesTable),
			NewIngestionRunDynamoRepository(ddb, cfg.IngestionRunsTable), nil

	case config.WarehousePostgres:
		db, err := database.ConnectPostgres(cfg)
		if err != nil {
			return nil, nil, err
		}
		lines := NewQuoteLinePostgresRepository(db, cfg.QuoteLinesTable)
		runs := NewIngestionRunPostgresRepository(db, cfg.IngestionRunsTable)
		if err := lines.Migrate(); err != nil {
			return nil, nil, fmt.Errorf("migrate %s: %w", cfg.QuoteLinesTable, err)
		}
		if err := runs.Migrate(); err != nil {
			return nil, nil, fmt.Errorf("migrate %s: %w", cfg.IngestionRunsTable, err)
		}
		return lines, runs, nil

	default:
		return nil, nil, fmt.Errorf("unknown warehouse driver %q", cfg.WarehouseDriver)
	}
}
