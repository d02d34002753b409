package repository

import (
	"context"
	"errors"
	"time"

	"enviroflow/internal/domain/entities"
	"enviroflow/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type IngestionRunRecord struct {
	ID         string    `gorm:"column:id;primaryKey;type:varchar(36)"`
	Kind       string    `gorm:"column:kind;type:varchar(10);not null"`
	ReceivedAt time.Time `gorm:"column:received_at;not null"`
	Status     string    `gorm:"column:status;type:varchar(10);not null"`
	Pages      int       `gorm:"column:pages"`
	Received   int       `gorm:"column:received"`
	Parsed     int       `gorm:"column:parsed"`
	Failed     int       `gorm:"column:failed"`
	Lines      int       `gorm:"column:lines"`
	Errors     []string  `gorm:"column:errors;type:jsonb;serializer:json"`
	Log        []string  `gorm:"column:log;type:jsonb;serializer:json"`
}

type IngestionRunPostgresRepository struct {
	db        *gorm.DB
	tableName string
}

var _ interfaces.IIngestionRunRepository = (*IngestionRunPostgresRepository)(nil)

func NewIngestionRunPostgresRepository(db *gorm.DB, tableName string) *IngestionRunPostgresRepository {
	return &IngestionRunPostgresRepository{db: db, tableName: tableName}
}

func (r *IngestionRunPostgresRepository) Migrate() error {
	return r.db.Table(r.tableName).AutoMigrate(&IngestionRunRecord{})
}

func (r *IngestionRunPostgresRepository) Create(ctx context.Context, run entities.IngestionRun) (entities.IngestionRun, error) {
	rec := toIngestionRunRecord(run)
	if err := r.db.WithContext(ctx).Table(r.tableName).Create(&rec).Error; err != nil {
		return entities.IngestionRun{}, err
	}
	return run, nil
}

func (r *IngestionRunPostgresRepository) GetByID(ctx context.Context, id string) (entities.IngestionRun, error) {
	var rec IngestionRunRecord
	err := r.db.WithContext(ctx).Table(r.tableName).Where("id = ?", id).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.IngestionRun{}, nil
	}
	if err != nil {
		return entities.IngestionRun{}, err
	}
	return fromIngestionRunRecord(rec), nil
}

func toIngestionRunRecord(run entities.IngestionRun) IngestionRunRecord {
	return IngestionRunRecord{
		ID:         run.ID,
		Kind:       string(run.Kind),
		ReceivedAt: run.ReceivedAt.UTC(),
		Status:     string(run.Status),
		Pages:      run.Pages,
		Received:   run.Received,
		Parsed:     run.Parsed,
		Failed:     run.Failed,
		Lines:      run.Lines,
		Errors:     run.Errors,
		Log:        run.Log,
	}
}

func fromIngestionRunRecord(rec IngestionRunRecord) entities.IngestionRun {
	return entities.IngestionRun{
		ID:         rec.ID,
		Kind:       entities.IngestionKind(rec.Kind),
		ReceivedAt: rec.ReceivedAt.UTC(),
		Status:     entities.IngestionRunStatus(rec.Status),
		Pages:      rec.Pages,
		Received:   rec.Received,
		Parsed:     rec.Parsed,
		Failed:     rec.Failed,
		Lines:      rec.Lines,
		Errors:     rec.Errors,
		Log:        rec.Log,
	}
}
