package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/rezonia/invoice-builder/internal/capture"
	"github.com/rezonia/invoice-builder/internal/export"
	"github.com/rezonia/invoice-builder/internal/model"
	"github.com/rezonia/invoice-builder/internal/store"
)

var (
	exportFormat  string
	exportOutDir  string
	exportTimeout time.Duration
)

var exportCmd = &cobra.Command{
	Use:   "export [invoice.json]",
	Short: "Export an invoice to PDF or PNG",
	Long: `Render an invoice and export it as a paginated A4 PDF or a PNG.

Without an input file the built-in sample invoice is exported. The input
file may override the invoice content, the presentation settings, or both:

  {
    "invoice":  { ...InvoiceData fields... },
    "settings": { "template": "classic", "primaryColor": "#0f766e" }
  }

The output file name is derived from the invoice number and the current
date, e.g. INV-001_2026-08-31.pdf.

Examples:
  invoice-builder export --format pdf
  invoice-builder export invoice.json --format png -o out/
  invoice-builder export invoice.json --chrome-path /usr/bin/chromium`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "pdf", "Output format (pdf, png)")
	exportCmd.Flags().StringVarP(&exportOutDir, "output", "o", ".", "Output directory")
	exportCmd.Flags().DurationVar(&exportTimeout, "timeout", 2*time.Minute, "Export timeout")
}

// exportInput is the optional input file shape
type exportInput struct {
	Invoice  *model.InvoiceData     `json:"invoice"`
	Settings *model.InvoiceSettings `json:"settings"`
}

func loadInput(path string) (*exportInput, error) {
	if path == "" {
		return &exportInput{}, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input file: %w", err)
	}
	var in exportInput
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, fmt.Errorf("parse input file: %w", err)
	}
	if in.Settings != nil && !in.Settings.Template.Valid() {
		return nil, fmt.Errorf("unknown template variant %q", in.Settings.Template)
	}
	return &in, nil
}

func buildStore(in *exportInput) *store.Store {
	var opts []store.Option
	if in.Invoice != nil {
		opts = append(opts, store.WithData(*in.Invoice))
	}
	if in.Settings != nil {
		opts = append(opts, store.WithSettings(*in.Settings))
	}
	return store.New(opts...)
}

func runExport(cmd *cobra.Command, args []string) error {
	format := export.Format(exportFormat)
	if !format.Valid() {
		return fmt.Errorf("unsupported format %q (want pdf or png)", exportFormat)
	}

	inputPath := ""
	if len(args) == 1 {
		inputPath = args[0]
	}
	in, err := loadInput(inputPath)
	if err != nil {
		return err
	}

	logger := newLogger()
	defer logger.Sync()

	st := buildStore(in)
	capturer := capture.NewChrome(
		capture.WithExecPath(chromePath),
		capture.WithTimeout(exportTimeout),
		capture.WithLogger(logger),
	)
	pipeline := export.NewPipeline(st, capturer, export.WithLogger(logger))

	ctx, cancel := context.WithTimeout(context.Background(), exportTimeout)
	defer cancel()

	result, err := pipeline.Export(ctx, format)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	if err := os.MkdirAll(exportOutDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	outPath := filepath.Join(exportOutDir, result.Filename)
	if err := os.WriteFile(outPath, result.Data, 0o644); err != nil {
		return fmt.Errorf("write output file: %w", err)
	}

	printVerbose("Format: %s, pages: %d, size: %d bytes\n", result.Format, result.Pages, len(result.Data))
	fmt.Printf("Exported %s\n", outPath)
	return nil
}
