package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kingpin"
	_ "github.com/lib/pq"
	"kastelo.dev/authreq"
	"kastelo.dev/authreq/excel"
	"kastelo.dev/authreq/pdf"
)

func main() {
	app := kingpin.New("authreq", "Generate authorization request documents from attendance records.")

	var flags Config
	app.Flag("input", "Attendance workbook (.xlsx)").Short('i').StringVar(&flags.Input)
	app.Flag("dsn", "PostgreSQL connection string, read attendances from the database instead").StringVar(&flags.DSN)
	app.Flag("query", "Query returning the attendance columns").StringVar(&flags.Query)
	app.Flag("out", "Output folder").Short('o').StringVar(&flags.Out)
	app.Flag("logo", "Logo image printed on the documents").StringVar(&flags.Logo)
	app.Flag("city", "City printed before the document date").StringVar(&flags.City)
	app.Flag("rule", "Classification rule").EnumVar(&flags.Rule, authreq.RuleNames...)
	app.Flag("threshold", "Minimum sessions for the threshold rule").IntVar(&flags.Threshold)
	app.Flag("specialties", "File with additional session type to specialty mappings").StringVar(&flags.Specialties)
	app.Flag("skip-status", "Ignore rows with this status (repeatable)").StringsVar(&flags.SkipStatus)
	app.Flag("date", "Document date (dd/mm/yyyy), defaults to today").StringVar(&flags.Date)
	app.Flag("log-level", "Log level (debug, info, warn, error)").StringVar(&flags.LogLevel)

	cmdGenerate := app.Command("generate", "Render one document per patient").Default()
	summary := cmdGenerate.Flag("summary", "Also write a summary workbook to this file").String()
	cmdList := app.Command("list", "Show the classification without writing documents")
	cmdPreview := app.Command("preview", "Print the text of a patient's documents")
	previewPatient := cmdPreview.Arg("patient", "Patient name").Required().String()
	cmdCSV := app.Command("csv", "Write the request list as CSV to stdout")

	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))

	cfg, err := Load(flags)
	if err != nil {
		slog.Error("Error loading configuration", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(newLogger(cfg.LogLevel))

	date, err := cfg.DocumentDate()
	if err != nil {
		slog.Error("Invalid document date", "error", err)
		os.Exit(1)
	}
	if cfg.Logo != "" {
		if _, err := os.Stat(cfg.Logo); err != nil {
			slog.Warn("Logo not found, documents will have no logo", "logo", cfg.Logo)
		}
	}

	batch, err := loadBatch(context.Background(), cfg)
	if err != nil {
		slog.Error("Error loading attendances", "error", err)
		os.Exit(1)
	}

	renderer := pdf.New(cfg.Logo, cfg.City, date)

	switch cmd {
	case cmdGenerate.FullCommand():
		g := &generator{renderer: renderer, out: cfg.Out, w: os.Stdout, log: slog.Default()}
		_, failed := g.run(batch)
		if *summary != "" {
			if err := writeSummary(*summary, batch); err != nil {
				slog.Error("Error writing summary workbook", "file", *summary, "error", err)
				os.Exit(1)
			}
		}
		if failed > 0 {
			os.Exit(1)
		}

	case cmdList.FullCommand():
		listReport(os.Stdout, batch)

	case cmdPreview.FullCommand():
		if err := preview(os.Stdout, renderer, batch, *previewPatient); err != nil {
			slog.Error("Preview failed", "error", err)
			os.Exit(1)
		}

	case cmdCSV.FullCommand():
		if err := writeCSV(os.Stdout, batch, cfg.Out); err != nil {
			slog.Error("Error writing CSV", "error", err)
			os.Exit(1)
		}
	}
}

func loadBatch(ctx context.Context, cfg Config) (*authreq.Batch, error) {
	specialties := authreq.DefaultSpecialties()
	if cfg.Specialties != "" {
		fd, err := os.Open(cfg.Specialties)
		if err != nil {
			return nil, err
		}
		specialties, err = authreq.LoadSpecialties(fd)
		fd.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", cfg.Specialties, err)
		}
	}

	rule, err := authreq.RuleByName(cfg.Rule, cfg.Threshold)
	if err != nil {
		return nil, err
	}

	opts := authreq.Options{Columns: cfg.Columns.columns(), SkipStatus: cfg.SkipStatus}

	var res *authreq.Result
	switch {
	case cfg.DSN != "":
		db, err := sql.Open("postgres", cfg.DSN)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		res, err = authreq.ReadSQL(ctx, db, cfg.Query, opts)
		if err != nil {
			return nil, err
		}

	case cfg.Input != "":
		fd, err := os.Open(cfg.Input)
		if err != nil {
			return nil, err
		}
		defer fd.Close()
		res, err = authreq.ReadXLSX(fd, opts)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", cfg.Input, err)
		}

	default:
		return nil, errors.New("no attendance source, use --input or --dsn")
	}

	for _, row := range res.Skipped {
		slog.Debug("Skipping row", "row", row)
	}
	return authreq.Build(res, rule, specialties), nil
}

func writeSummary(path string, batch *authreq.Batch) error {
	bs, err := excel.SummaryXLSX(batch)
	if err != nil {
		return err
	}
	return os.WriteFile(path, bs, 0o644)
}
