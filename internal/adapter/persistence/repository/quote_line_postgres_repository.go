package repository

import (
	"context"
	"time"

	"enviroflow/internal/domain/entities"
	"enviroflow/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const postgresInsertBatch = 200

// QuoteLineRecord is the SQL row of a loaded quote line.
type QuoteLineRecord struct {
	Seq   uint64 `gorm:"column:seq;primaryKey;autoIncrement"`
	ID    string `gorm:"column:id;type:varchar(36);uniqueIndex"`
	RunID string `gorm:"column:run_id;type:varchar(36);index"`

	QuoteNumber  string     `gorm:"column:quote_number;type:varchar(64);index;not null"`
	QuoteRef     *string    `gorm:"column:quote_ref;type:text"`
	CustomerName string     `gorm:"column:customer_name;type:text;not null"`
	QuoteID      string     `gorm:"column:quote_id;type:varchar(64);not null"`
	ContactID    string     `gorm:"column:contact_id;type:varchar(64);not null"`
	QuoteStatus  string     `gorm:"column:quote_status;type:varchar(20);not null"`
	CreatedDate  time.Time  `gorm:"column:created_date;not null"`
	UpdatedDate  *time.Time `gorm:"column:updated_date"`

	ItemCode        *string          `gorm:"column:item_code;type:varchar(64)"`
	ItemDescription *string          `gorm:"column:item_description;type:text"`
	LineID          *string          `gorm:"column:line_id;type:varchar(64)"`
	Quantity        *decimal.Decimal `gorm:"column:quantity;type:numeric"`
	UnitPrice       *decimal.Decimal `gorm:"column:unit_price;type:numeric"`
	LineTotal       *decimal.Decimal `gorm:"column:line_total;type:numeric"`
	LineFraction    decimal.Decimal  `gorm:"column:line_fraction;type:numeric(5,2);not null"`

	LoadedAt time.Time `gorm:"column:loaded_at;autoCreateTime"`
}

// QuoteLinePostgresRepository loads flattened quote lines into a Postgres
// table. Rows are append-only; seq keeps load order.

type QuoteLinePostgresRepository struct {
	db        *gorm.DB
	tableName string
}

var _ interfaces.IQuoteLineRepository = (*QuoteLinePostgresRepository)(nil)

func NewQuoteLinePostgresRepository(db *gorm.DB, tableName string) *QuoteLinePostgresRepository {
	return &QuoteLinePostgresRepository{db: db, tableName: tableName}
}

func (r *QuoteLinePostgresRepository) Migrate() error {
	return r.db.Table(r.tableName).AutoMigrate(&QuoteLineRecord{})
}

func (r *QuoteLinePostgresRepository) SaveLines(ctx context.Context, runID string, lines []entities.LineItem) error {
	if len(lines) == 0 {
		return nil
	}
	records := make([]QuoteLineRecord, 0, len(lines))
	for _, li := range lines {
		records = append(records, toQuoteLineRecord(li, runID))
	}
	return r.db.WithContext(ctx).Table(r.tableName).CreateInBatches(records, postgresInsertBatch).Error
}

func (r *QuoteLinePostgresRepository) ListByQuoteNumber(ctx context.Context, quoteNumber string) ([]entities.LineItem, error) {
	var records []QuoteLineRecord
	err := r.db.WithContext(ctx).
		Table(r.tableName).
		Where("quote_number = ?", quoteNumber).
		Order("seq ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	items := make([]entities.LineItem, 0, len(records))
	for _, rec := range records {
		items = append(items, fromQuoteLineRecord(rec))
	}
	return items, nil
}

func toQuoteLineRecord(li entities.LineItem, runID string) QuoteLineRecord {
	return QuoteLineRecord{
		ID:              uuid.NewString(),
		RunID:           runID,
		QuoteNumber:     li.QuoteNumber,
		QuoteRef:        li.QuoteRef,
		CustomerName:    li.CustomerName,
		QuoteID:         li.QuoteID,
		ContactID:       li.ContactID,
		QuoteStatus:     string(li.QuoteStatus),
		CreatedDate:     li.CreatedDate.UTC(),
		UpdatedDate:     li.UpdatedDate,
		ItemCode:        li.ItemCode,
		ItemDescription: li.ItemDescription,
		LineID:          li.LineID,
		Quantity:        li.Quantity,
		UnitPrice:       li.UnitPrice,
		LineTotal:       li.LineTotal,
		LineFraction:    li.LineFraction,
	}
}

func fromQuoteLineRecord(rec QuoteLineRecord) entities.LineItem {
	return entities.LineItem{
		QuoteNumber:     rec.QuoteNumber,
		QuoteRef:        rec.QuoteRef,
		CustomerName:    rec.CustomerName,
		QuoteID:         rec.QuoteID,
		ContactID:       rec.ContactID,
		QuoteStatus:     entities.QuoteStatus(rec.QuoteStatus),
		CreatedDate:     rec.CreatedDate.UTC(),
		UpdatedDate:     rec.UpdatedDate,
		ItemCode:        rec.ItemCode,
		ItemDescription: rec.ItemDescription,
		LineID:          rec.LineID,
		Quantity:        rec.Quantity,
		UnitPrice:       rec.UnitPrice,
		LineTotal:       rec.LineTotal,
		LineFraction:    rec.LineFraction,
	}
}
