package usecase

import (
	"context"
	"errors"
	"strings"

	"enviroflow/internal/domain/entities"
	"enviroflow/internal/usecase/interfaces"
)

var (
	ErrIngestionRunNotFound  = errors.New("ingestion run not found")
	ErrInvalidIngestionRunID = errors.New("invalid ingestion run id")
)

// IIngestionRunUseCase reads back ingestion audit records.

type IIngestionRunUseCase interface {
	GetByID(ctx context.Context, id string) (entities.IngestionRun, error)
}

type IngestionRunUseCase struct {
	repo interfaces.IIngestionRunRepository
}

var _ IIngestionRunUseCase = (*IngestionRunUseCase)(nil)

func NewIngestionRunUseCase(repo interfaces.IIngestionRunRepository) *IngestionRunUseCase {
	return &IngestionRunUseCase{repo: repo}
}

func (u *IngestionRunUseCase) GetByID(ctx context.Context, id string) (entities.IngestionRun, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.IngestionRun{}, ErrInvalidIngestionRunID
	}

	run, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.IngestionRun{}, err
	}
	if run.ID == "" {
		return entities.IngestionRun{}, ErrIngestionRunNotFound
	}
	return run, nil
}
