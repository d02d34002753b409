package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"enviroflow/internal/adapter/persistence/repository"
	"enviroflow/internal/domain/entities"
	"enviroflow/internal/domain/quotes"
	"enviroflow/internal/infrastructure/config"
	"enviroflow/internal/infrastructure/export"
	"enviroflow/internal/infrastructure/logging"
	"enviroflow/internal/usecase"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
)

func main() {
	file := flag.String("file", "", "Required: path to a quote JSON file")
	pages := flag.Bool("pages", false, "Treat the file as a multi-page response keyed by page")
	xlsxOut := flag.String("xlsx", "", "Optional: write the line tables to this .xlsx path")
	view := flag.String("view", "", "Optional: table for -xlsx (full/human); both when empty")
	load := flag.Bool("load", false, "Load the lines into the configured warehouse and record the run")
	flag.Parse()

	if strings.TrimSpace(*file) == "" {
		fmt.Fprintln(os.Stderr, "--file is required")
		os.Exit(1)
	}
	tableView, err := usecase.ParseTableView(*view)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid view %q: must be full or human\n", *view)
		os.Exit(1)
	}

	logger := logging.GetLogger()
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		logging.SetLevel(lvl)
	}

	payload, err := os.ReadFile(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read %s: %v\n", *file, err)
		os.Exit(1)
	}

	if *load {
		run, err := ingest(context.Background(), payload, *pages)
		if err != nil {
			logging.LogError(logger, "quote-ingest", "main", "load", *file, err)
			os.Exit(1)
		}
		printJSON(run)
	}
	if !needsLocalCollection(*load, *xlsxOut) {
		return
	}

	raws, err := decode(payload, *pages)
	if err != nil {
		fmt.Fprintf(os.Stderr, "decode %s: %v\n", *file, err)
		os.Exit(1)
	}
	c := quotes.NewQuoteCollection(raws)

	// Loading already logged the diagnostics through the use case.
	if !*load {
		logging.LogDiagnostics(logger, "local", "quote", c.Errors())
		logging.LogDiagnostics(logger, "local", "collection", c.Log())
		logger.WithFields(logrus.Fields{
			"received": c.Received(),
			"parsed":   len(c.Quotes()),
			"failed":   c.Failed(),
			"lines":    len(c.Lines()),
		}).Info("normalized quotes")
	}

	if *xlsxOut != "" {
		if err := writeWorkbook(*xlsxOut, c, tableView); err != nil {
			logging.LogError(logger, "quote-ingest", "main", "write xlsx", *xlsxOut, err)
			os.Exit(1)
		}
		logger.WithField("path", *xlsxOut).Info("wrote workbook")
	}
}

// needsLocalCollection reports whether main must normalize the payload
// itself: to report on it without loading, or to write a workbook.
func needsLocalCollection(load bool, xlsxOut string) bool {
	return !load || xlsxOut != ""
}

func decode(payload []byte, paged bool) ([]quotes.RawQuote, error) {
	if !paged {
		raw, err := quotes.DecodeQuote(payload)
		if err != nil {
			return nil, err
		}
		return []quotes.RawQuote{raw}, nil
	}
	ps, err := quotes.DecodePages(payload)
	if err != nil {
		return nil, err
	}
	raws, _ := quotes.ReassemblePages(ps)
	return raws, nil
}

func ingest(ctx context.Context, payload []byte, paged bool) (entities.IngestionRun, error) {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		return entities.IngestionRun{}, err
	}
	logging.SetLevel(cfg.LogLevel)

	lines, runs, err := repository.NewWarehouse(ctx, cfg)
	if err != nil {
		return entities.IngestionRun{}, err
	}
	uc := usecase.NewQuoteIngestUseCase(lines, runs, export.NewExcelExporter())
	if paged {
		return uc.IngestPages(ctx, payload)
	}
	return uc.IngestQuote(ctx, payload)
}

func writeWorkbook(path string, c *quotes.QuoteCollection, view usecase.TableView) error {
	var tables []entities.Table
	switch view {
	case usecase.TableViewFull:
		tables = append(tables, c.FullTable())
	case usecase.TableViewHuman:
		tables = append(tables, c.HumanTable())
	default:
		tables = append(tables, c.FullTable(), c.HumanTable())
	}

	data, err := export.NewExcelExporter().Export(tables...)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
