package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"enviroflow/internal/domain/entities"
	"enviroflow/internal/domain/quotes"
	"enviroflow/internal/infrastructure/logging"
	"enviroflow/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidPayload     = errors.New("invalid quote payload")
	ErrInvalidQuoteNumber = errors.New("invalid quote number")
	ErrQuoteLinesNotFound = errors.New("quote lines not found")
	ErrInvalidView        = errors.New("invalid table view")
)

// TableView selects which flattened table an export carries.
type TableView string

const (
	TableViewBoth  TableView = ""
	TableViewFull  TableView = "full"
	TableViewHuman TableView = "human"
)

func ParseTableView(s string) (TableView, error) {
	switch v := TableView(strings.ToLower(strings.TrimSpace(s))); v {
	case TableViewBoth, TableViewFull, TableViewHuman:
		return v, nil
	default:
		return "", ErrInvalidView
	}
}

// Export is a rendered document ready to be downloaded.
type Export struct {
	Filename    string
	ContentType string
	Data        []byte
	Run         entities.IngestionRun
}

// IQuoteIngestUseCase exposes quote ingestion operations.
//
//   - IngestQuote / IngestPages => normalize, load into the warehouse, record the run
//   - ExportPages => normalize and render the tables without loading
//   - ListLinesByQuoteNumber => read back loaded lines

type IQuoteIngestUseCase interface {
	IngestQuote(ctx context.Context, payload []byte) (entities.IngestionRun, error)
	IngestPages(ctx context.Context, payload []byte) (entities.IngestionRun, error)
	ExportPages(ctx context.Context, payload []byte, view TableView) (Export, error)
	ListLinesByQuoteNumber(ctx context.Context, quoteNumber string) ([]entities.LineItem, error)
}

type QuoteIngestUseCase struct {
	lines    interfaces.IQuoteLineRepository
	runs     interfaces.IIngestionRunRepository
	exporter interfaces.ITableExporter
	logger   *logrus.Logger

	now   func() time.Time
	newID func() string
}

var _ IQuoteIngestUseCase = (*QuoteIngestUseCase)(nil)

func NewQuoteIngestUseCase(lines interfaces.IQuoteLineRepository, runs interfaces.IIngestionRunRepository, exporter interfaces.ITableExporter) *QuoteIngestUseCase {
	return &QuoteIngestUseCase{
		lines:    lines,
		runs:     runs,
		exporter: exporter,
		logger:   logging.GetLogger(),
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
	}
}

func (u *QuoteIngestUseCase) IngestQuote(ctx context.Context, payload []byte) (entities.IngestionRun, error) {
	raw, err := quotes.DecodeQuote(payload)
	if err != nil {
		return entities.IngestionRun{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return u.ingest(ctx, entities.IngestionKindSingle, []quotes.RawQuote{raw}, 1)
}

func (u *QuoteIngestUseCase) IngestPages(ctx context.Context, payload []byte) (entities.IngestionRun, error) {
	raws, pages, err := decodePages(payload)
	if err != nil {
		return entities.IngestionRun{}, err
	}
	return u.ingest(ctx, entities.IngestionKindPages, raws, pages)
}

func (u *QuoteIngestUseCase) ExportPages(ctx context.Context, payload []byte, view TableView) (Export, error) {
	if u.exporter == nil {
		return Export{}, errors.New("table exporter not configured")
	}
	raws, pages, err := decodePages(payload)
	if err != nil {
		return Export{}, err
	}

	runID := u.newID()
	c := quotes.NewQuoteCollection(raws)
	u.logDiagnostics(runID, c)
	run := NewIngestionRun(runID, entities.IngestionKindPages, u.now(), pages, c)

	var tables []entities.Table
	switch view {
	case TableViewFull:
		tables = []entities.Table{c.FullTable()}
	case TableViewHuman:
		tables = []entities.Table{c.HumanTable()}
	case TableViewBoth:
		tables = []entities.Table{c.FullTable(), c.HumanTable()}
	default:
		return Export{}, ErrInvalidView
	}

	data, err := u.exporter.Export(tables...)
	if err != nil {
		logging.LogError(u.logger, "usecase", "ExportPages", "render tables", run.ID, err)
		return Export{}, err
	}
	u.logger.WithFields(logrus.Fields{"run_id": runID, "lines": run.Lines, "view": string(view)}).Info("export finish")

	name := "quote_lines"
	if view != TableViewBoth {
		name += "_" + string(view)
	}
	return Export{
		Filename:    name + ".xlsx",
		ContentType: u.exporter.ContentType(),
		Data:        data,
		Run:         run,
	}, nil
}

func (u *QuoteIngestUseCase) ListLinesByQuoteNumber(ctx context.Context, quoteNumber string) ([]entities.LineItem, error) {
	quoteNumber = strings.TrimSpace(quoteNumber)
	if quoteNumber == "" {
		return nil, ErrInvalidQuoteNumber
	}
	if u.lines == nil {
		return nil, errors.New("quote line repository not configured")
	}

	lines, err := u.lines.ListByQuoteNumber(ctx, quoteNumber)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrQuoteLinesNotFound
	}
	return lines, nil
}

func (u *QuoteIngestUseCase) ingest(ctx context.Context, kind entities.IngestionKind, raws []quotes.RawQuote, pages int) (entities.IngestionRun, error) {
	if u.lines == nil {
		return entities.IngestionRun{}, errors.New("quote line repository not configured")
	}
	if u.runs == nil {
		return entities.IngestionRun{}, errors.New("ingestion run repository not configured")
	}

	runID := u.newID()
	log := u.logger.WithFields(logrus.Fields{"run_id": runID, "kind": string(kind)})
	log.WithField("received", len(raws)).Info("ingest start")

	c := quotes.NewQuoteCollection(raws)
	u.logDiagnostics(runID, c)
	run := NewIngestionRun(runID, kind, u.now(), pages, c)

	if !c.Empty() {
		if err := u.lines.SaveLines(ctx, runID, c.Lines()); err != nil {
			logging.LogError(u.logger, "usecase", "ingest", "load quote lines", runID, err)
			return entities.IngestionRun{}, fmt.Errorf("load quote lines: %w", err)
		}
	}

	created, err := u.runs.Create(ctx, run)
	if err != nil {
		// Lines are already loaded under runID; keep the id findable.
		logging.LogError(u.logger, "usecase", "ingest", "record ingestion run", logrus.Fields{
			"run_id":         runID,
			"orphaned_lines": run.Lines,
		}, err)
		return entities.IngestionRun{}, fmt.Errorf("record ingestion run %s (%d lines loaded): %w", runID, run.Lines, err)
	}

	log.WithFields(logrus.Fields{
		"parsed": created.Parsed,
		"failed": created.Failed,
		"lines":  created.Lines,
		"status": string(created.Status),
	}).Info("ingest finish")
	return created, nil
}

func (u *QuoteIngestUseCase) logDiagnostics(runID string, c *quotes.QuoteCollection) {
	logging.LogDiagnostics(u.logger, runID, "quote", c.Errors())
	logging.LogDiagnostics(u.logger, runID, "collection", c.Log())
}

func decodePages(payload []byte) ([]quotes.RawQuote, int, error) {
	pages, err := quotes.DecodePages(payload)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	raws, contributing := quotes.ReassemblePages(pages)
	return raws, contributing, nil
}

// NewIngestionRun summarizes a collection as an audit record.
func NewIngestionRun(id string, kind entities.IngestionKind, at time.Time, pages int, c *quotes.QuoteCollection) entities.IngestionRun {
	status := entities.IngestionRunStatusSuccess
	switch {
	case len(c.Quotes()) == 0:
		status = entities.IngestionRunStatusEmpty
	case c.Failed() > 0 || len(c.Errors()) > 0:
		status = entities.IngestionRunStatusPartial
	}
	return entities.IngestionRun{
		ID:         id,
		Kind:       kind,
		ReceivedAt: at,
		Status:     status,
		Pages:      pages,
		Received:   c.Received(),
		Parsed:     len(c.Quotes()),
		Failed:     c.Failed(),
		Lines:      len(c.Lines()),
		Errors:     c.Errors(),
		Log:        c.Log(),
	}
}
