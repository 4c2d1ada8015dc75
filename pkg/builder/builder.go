// Package builder provides a public API for building and exporting
// invoices.
//
// This package exposes the core types for editing invoice content and
// presentation settings and for exporting the rendered document as a
// paginated A4 PDF or a lossless PNG.
//
// Example usage:
//
//	b := builder.New()
//	item := b.Store().AddItem()
//	b.Store().UpdateItem(item.ID, builder.ItemPatch{...})
//	result, err := b.Export(ctx, builder.FormatPDF)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile(result.Filename, result.Data, 0o644)
package builder

import (
	"context"

	"go.uber.org/zap"

	"github.com/rezonia/invoice-builder/internal/capture"
	"github.com/rezonia/invoice-builder/internal/export"
	"github.com/rezonia/invoice-builder/internal/model"
	"github.com/rezonia/invoice-builder/internal/store"
)

// Re-export core types for public API
type (
	InvoiceData     = model.InvoiceData
	InvoiceItem     = model.InvoiceItem
	InvoiceSettings = model.InvoiceSettings
	Party           = model.Party
	DataPatch       = model.DataPatch
	ItemPatch       = model.ItemPatch
	SettingsPatch   = model.SettingsPatch
	TemplateVariant = model.TemplateVariant
	Result          = export.Result
	Format          = export.Format
)

// Re-export template variants
const (
	TemplateModern    = model.TemplateModern
	TemplateClassic   = model.TemplateClassic
	TemplateMinimal   = model.TemplateMinimal
	TemplateCorporate = model.TemplateCorporate
	TemplateCreative  = model.TemplateCreative
)

// Re-export export formats
const (
	FormatPDF = export.FormatPDF
	FormatPNG = export.FormatPNG
)

// Re-export error types
type (
	CaptureError        = model.CaptureError
	ExportError         = model.ExportError
	TargetNotFoundError = model.TargetNotFoundError
)

// ErrExportBusy is returned when an export overlaps a running one
var ErrExportBusy = model.ErrExportBusy

// Builder bundles a session store with an export pipeline
type Builder struct {
	store    *store.Store
	pipeline *export.Pipeline
}

// Options configures a Builder
type Options struct {
	// ChromePath is an explicit headless browser binary; empty means
	// whatever chromedp finds on PATH.
	ChromePath string
	// Logger defaults to a no-op logger
	Logger *zap.Logger
}

// New creates a builder with the default invoice and settings
func New() *Builder {
	return NewWithOptions(Options{})
}

// NewWithOptions creates a builder with explicit options
func NewWithOptions(opts Options) *Builder {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	st := store.New()
	capturer := capture.NewChrome(
		capture.WithExecPath(opts.ChromePath),
		capture.WithLogger(logger),
	)
	return &Builder{
		store:    st,
		pipeline: export.NewPipeline(st, capturer, export.WithLogger(logger)),
	}
}

// Store returns the session's invoice store
func (b *Builder) Store() *store.Store {
	return b.store
}

// Export renders, captures and packages the current invoice
func (b *Builder) Export(ctx context.Context, format Format) (*Result, error) {
	return b.pipeline.Export(ctx, format)
}
