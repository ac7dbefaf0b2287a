package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"

	"github.com/cloud-ru/mortgage-calculator-go/internal/calculations"
	"github.com/cloud-ru/mortgage-calculator-go/internal/config"
	"github.com/cloud-ru/mortgage-calculator-go/internal/export"
	"github.com/cloud-ru/mortgage-calculator-go/internal/tools"
)

// runCalc считает ипотеку из командной строки, печатает сводку и таблицу
func runCalc(cfg *config.Config, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("calc", flag.ContinueOnError)
	principal := fs.Float64("principal", 300000, "loan principal amount ($)")
	rate := fs.Float64("rate", 6.5, "annual interest rate (%)")
	years := fs.Int("years", 30, "loan term (years)")
	view := fs.String("view", calculations.ViewFirst12, "table view: "+strings.Join(calculations.Views, ", "))
	outDir := fs.String("out", "", "directory for schedule and summary CSV files")
	if err := fs.Parse(args); err != nil {
		return err
	}

	registry := tools.NewRegistry(cfg, otel.Tracer("mortgage-cli"))
	raw, err := registry.Call(context.Background(), tools.AmortizationScheduleTool, map[string]interface{}{
		"principal":           *principal,
		"annual_rate_percent": *rate,
		"term_years":          *years,
	})
	if err != nil {
		return err
	}
	result := raw.(*calculations.Result)

	if err := printResult(out, result, *view); err != nil {
		return err
	}

	if *outDir != "" {
		return writeFiles(*outDir, result)
	}
	return nil
}

func printResult(out io.Writer, result *calculations.Result, view string) error {
	rows, err := result.Schedule.View(view)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	for _, m := range export.SummaryMetrics(result.Summary) {
		fmt.Fprintf(tw, "%s\t%s\t\n", m.Name, m.Value)
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, strings.Join(export.DisplayHeader, "\t")+"\t")
	for _, row := range export.DisplayRows(rows) {
		fmt.Fprintln(tw, strings.Join(row, "\t")+"\t")
	}
	return tw.Flush()
}

func writeFiles(dir string, result *calculations.Result) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}

	files := []struct {
		name  string
		write func(io.Writer) error
	}{
		{export.ScheduleFilename(result.Terms, "csv"), func(w io.Writer) error { return export.WriteScheduleCSV(w, result.Schedule) }},
		{export.SummaryFilename(result.Terms), func(w io.Writer) error { return export.WriteSummaryCSV(w, result.Summary) }},
	}

	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := writeFile(path, f.write); err != nil {
			return err
		}
		log.WithField("path", path).Info("Export written")
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := write(file); err != nil {
		file.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return file.Close()
}
