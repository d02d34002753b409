package interfaces

import (
	"context"
	"enviroflow/internal/domain/entities"
)

// IIngestionRunRepository abstracts persistence of ingestion audit records.

type IIngestionRunRepository interface {
	Create(ctx context.Context, run entities.IngestionRun) (entities.IngestionRun, error)
	GetByID(ctx context.Context, id string) (entities.IngestionRun, error)
}
