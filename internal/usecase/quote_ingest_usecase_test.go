package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"enviroflow/internal/domain/entities"
	"enviroflow/internal/usecase/interfaces"
	mock_interfaces "enviroflow/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

const singleQuotePayload = `{
	"QuoteID": "q-1",
	"QuoteNumber": "QU-0001",
	"Reference": "Back fence",
	"Contact": {"ContactID": "c-1", "Name": "Acme Ltd", "EmailAddress": "ops@acme.test"},
	"Status": "SENT",
	"DateString": "2024-03-01T00:00:00",
	"UpdatedDateUTC": "/Date(1709251200000+0000)/",
	"SubTotal": 100,
	"LineItems": [
		{"LineItemID": "l-1", "ItemCode": "FNC", "Description": "Fence repair 25%", "Quantity": 1, "UnitAmount": 100, "LineAmount": 100}
	]
}`

const pagesPayload = `{
	"p1": {"quotes": [
		{"QuoteID": "q-1", "QuoteNumber": "QU-0001", "Contact": {"ContactID": "c-1", "Name": "Acme"}, "Status": "SENT",
		 "DateString": "2024-03-01T00:00:00", "UpdatedDateUTC": "/Date(1709251200000+0000)/", "SubTotal": 10,
		 "LineItems": [{"LineItemID": "l-1", "Description": "Gate", "Quantity": 1, "UnitAmount": 10, "LineAmount": 10}]}
	]},
	"p2": {"quotes": [
		{"QuoteNumber": "QU-0002"}
	]},
	"p3": {"quotes": []}
}`

func newTestIngestUseCase(lines interfaces.IQuoteLineRepository, runs interfaces.IIngestionRunRepository, exporter interfaces.ITableExporter) *QuoteIngestUseCase {
	uc := NewQuoteIngestUseCase(lines, runs, exporter)
	uc.now = func() time.Time { return time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC) }
	uc.newID = func() string { return "run-1" }
	return uc
}

func TestQuoteIngestUseCase_IngestQuote(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := newTestIngestUseCase(mock_interfaces.NewMockIQuoteLineRepository(ctrl), mock_interfaces.NewMockIIngestionRunRepository(ctrl), nil)

		_, err := uc.IngestQuote(context.Background(), []byte(`[1,2]`))
		if !errors.Is(err, ErrInvalidPayload) {
			t.Fatalf("expected ErrInvalidPayload, got %v", err)
		}
	})

	t.Run("repositories not configured", func(t *testing.T) {
		uc := newTestIngestUseCase(nil, nil, nil)
		if _, err := uc.IngestQuote(context.Background(), []byte(singleQuotePayload)); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lines := mock_interfaces.NewMockIQuoteLineRepository(ctrl)
		runs := mock_interfaces.NewMockIIngestionRunRepository(ctrl)
		uc := newTestIngestUseCase(lines, runs, nil)

		lines.EXPECT().SaveLines(gomock.Any(), "run-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, items []entities.LineItem) error {
				if len(items) != 1 {
					t.Fatalf("expected 1 line, got %d", len(items))
				}
				if items[0].QuoteNumber != "QU-0001" || items[0].LineFraction.String() != "0.25" {
					t.Fatalf("unexpected line: %+v", items[0])
				}
				return nil
			},
		)
		runs.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.IngestionRun{})).DoAndReturn(
			func(_ context.Context, r entities.IngestionRun) (entities.IngestionRun, error) { return r, nil },
		)

		run, err := uc.IngestQuote(context.Background(), []byte(singleQuotePayload))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if run.ID != "run-1" || run.Kind != entities.IngestionKindSingle || run.Status != entities.IngestionRunStatusSuccess {
			t.Fatalf("unexpected run: %+v", run)
		}
		if run.Received != 1 || run.Parsed != 1 || run.Failed != 0 || run.Lines != 1 || run.Pages != 1 {
			t.Fatalf("unexpected counts: %+v", run)
		}
		if !run.ReceivedAt.Equal(time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)) {
			t.Fatalf("unexpected received_at: %v", run.ReceivedAt)
		}
	})

	t.Run("incomplete quote skips load", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lines := mock_interfaces.NewMockIQuoteLineRepository(ctrl)
		runs := mock_interfaces.NewMockIIngestionRunRepository(ctrl)
		uc := newTestIngestUseCase(lines, runs, nil)

		runs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.IngestionRun) (entities.IngestionRun, error) { return r, nil },
		)

		run, err := uc.IngestQuote(context.Background(), []byte(`{"QuoteNumber": "QU-9"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if run.Status != entities.IngestionRunStatusEmpty || run.Failed != 1 || run.Lines != 0 {
			t.Fatalf("unexpected run: %+v", run)
		}
		if len(run.Log) == 0 {
			t.Fatalf("expected log entries")
		}
	})

	t.Run("save lines error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lines := mock_interfaces.NewMockIQuoteLineRepository(ctrl)
		runs := mock_interfaces.NewMockIIngestionRunRepository(ctrl)
		uc := newTestIngestUseCase(lines, runs, nil)

		dbErr := errors.New("db")
		lines.EXPECT().SaveLines(gomock.Any(), "run-1", gomock.Any()).Return(dbErr)

		_, err := uc.IngestQuote(context.Background(), []byte(singleQuotePayload))
		if !errors.Is(err, dbErr) {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("create run error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lines := mock_interfaces.NewMockIQuoteLineRepository(ctrl)
		runs := mock_interfaces.NewMockIIngestionRunRepository(ctrl)
		uc := newTestIngestUseCase(lines, runs, nil)

		dbErr := errors.New("db")
		lines.EXPECT().SaveLines(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		runs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.IngestionRun{}, dbErr)

		_, err := uc.IngestQuote(context.Background(), []byte(singleQuotePayload))
		if !errors.Is(err, dbErr) {
			t.Fatalf("expected db error, got %v", err)
		}
		if !strings.Contains(err.Error(), "run-1 (1 lines loaded)") {
			t.Fatalf("expected the loaded run id in the error, got %v", err)
		}
	})
}

func TestQuoteIngestUseCase_IngestPages(t *testing.T) {
	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := newTestIngestUseCase(mock_interfaces.NewMockIQuoteLineRepository(ctrl), mock_interfaces.NewMockIIngestionRunRepository(ctrl), nil)

		_, err := uc.IngestPages(context.Background(), []byte(`"nope"`))
		if !errors.Is(err, ErrInvalidPayload) {
			t.Fatalf("expected ErrInvalidPayload, got %v", err)
		}
	})

	t.Run("partial", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lines := mock_interfaces.NewMockIQuoteLineRepository(ctrl)
		runs := mock_interfaces.NewMockIIngestionRunRepository(ctrl)
		uc := newTestIngestUseCase(lines, runs, nil)

		lines.EXPECT().SaveLines(gomock.Any(), "run-1", gomock.Len(1)).Return(nil)
		runs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.IngestionRun) (entities.IngestionRun, error) { return r, nil },
		)

		run, err := uc.IngestPages(context.Background(), []byte(pagesPayload))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if run.Kind != entities.IngestionKindPages || run.Status != entities.IngestionRunStatusPartial {
			t.Fatalf("unexpected run: %+v", run)
		}
		if run.Pages != 2 || run.Received != 2 || run.Parsed != 1 || run.Failed != 1 {
			t.Fatalf("unexpected counts: %+v", run)
		}
	})
}

func TestQuoteIngestUseCase_ExportPages(t *testing.T) {
	t.Run("exporter not configured", func(t *testing.T) {
		uc := newTestIngestUseCase(nil, nil, nil)
		if _, err := uc.ExportPages(context.Background(), []byte(pagesPayload), TableViewFull); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("invalid view", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := newTestIngestUseCase(nil, nil, mock_interfaces.NewMockITableExporter(ctrl))

		_, err := uc.ExportPages(context.Background(), []byte(pagesPayload), TableView("wide"))
		if !errors.Is(err, ErrInvalidView) {
			t.Fatalf("expected ErrInvalidView, got %v", err)
		}
	})

	t.Run("human view", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		exporter := mock_interfaces.NewMockITableExporter(ctrl)
		uc := newTestIngestUseCase(nil, nil, exporter)

		exporter.EXPECT().Export(gomock.Any()).DoAndReturn(
			func(tables ...entities.Table) ([]byte, error) {
				if len(tables) != 1 || tables[0].Name != "quote_lines_human" || tables[0].Len() != 1 {
					t.Fatalf("unexpected tables: %+v", tables)
				}
				return []byte("xlsx"), nil
			},
		)
		exporter.EXPECT().ContentType().Return("application/xlsx")

		out, err := uc.ExportPages(context.Background(), []byte(pagesPayload), TableViewHuman)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Filename != "quote_lines_human.xlsx" || string(out.Data) != "xlsx" || out.ContentType != "application/xlsx" {
			t.Fatalf("unexpected export: %+v", out)
		}
		if out.Run.Lines != 1 || out.Run.Failed != 1 {
			t.Fatalf("unexpected run: %+v", out.Run)
		}
	})

	t.Run("both views", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		exporter := mock_interfaces.NewMockITableExporter(ctrl)
		uc := newTestIngestUseCase(nil, nil, exporter)

		exporter.EXPECT().Export(gomock.Any(), gomock.Any()).Return([]byte("xlsx"), nil)
		exporter.EXPECT().ContentType().Return("application/xlsx")

		out, err := uc.ExportPages(context.Background(), []byte(pagesPayload), TableViewBoth)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Filename != "quote_lines.xlsx" {
			t.Fatalf("unexpected filename: %s", out.Filename)
		}
	})

	t.Run("exporter error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		exporter := mock_interfaces.NewMockITableExporter(ctrl)
		uc := newTestIngestUseCase(nil, nil, exporter)

		exporter.EXPECT().Export(gomock.Any()).Return(nil, errors.New("boom"))

		if _, err := uc.ExportPages(context.Background(), []byte(pagesPayload), TableViewFull); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestQuoteIngestUseCase_ListLinesByQuoteNumber(t *testing.T) {
	t.Run("invalid quote number", func(t *testing.T) {
		uc := newTestIngestUseCase(nil, nil, nil)
		_, err := uc.ListLinesByQuoteNumber(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidQuoteNumber) {
			t.Fatalf("expected ErrInvalidQuoteNumber, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lines := mock_interfaces.NewMockIQuoteLineRepository(ctrl)
		uc := newTestIngestUseCase(lines, nil, nil)

		lines.EXPECT().ListByQuoteNumber(gomock.Any(), "QU-1").Return(nil, nil)

		_, err := uc.ListLinesByQuoteNumber(context.Background(), " QU-1 ")
		if !errors.Is(err, ErrQuoteLinesNotFound) {
			t.Fatalf("expected ErrQuoteLinesNotFound, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lines := mock_interfaces.NewMockIQuoteLineRepository(ctrl)
		uc := newTestIngestUseCase(lines, nil, nil)

		lines.EXPECT().ListByQuoteNumber(gomock.Any(), "QU-1").Return(nil, errors.New("db"))

		_, err := uc.ListLinesByQuoteNumber(context.Background(), "QU-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lines := mock_interfaces.NewMockIQuoteLineRepository(ctrl)
		uc := newTestIngestUseCase(lines, nil, nil)

		lines.EXPECT().ListByQuoteNumber(gomock.Any(), "QU-1").Return([]entities.LineItem{{QuoteNumber: "QU-1"}}, nil)

		got, err := uc.ListLinesByQuoteNumber(context.Background(), "QU-1")
		if err != nil || len(got) != 1 {
			t.Fatalf("unexpected result: %v %v", got, err)
		}
	})
}

func TestParseTableView(t *testing.T) {
	cases := map[string]TableView{"": TableViewBoth, "FULL": TableViewFull, " human ": TableViewHuman}
	for in, want := range cases {
		got, err := ParseTableView(in)
		if err != nil || got != want {
			t.Fatalf("ParseTableView(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseTableView("wide"); !errors.Is(err, ErrInvalidView) {
		t.Fatalf("expected ErrInvalidView, got %v", err)
	}
}
