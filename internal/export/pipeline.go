// Package export packages a captured raster into a downloadable invoice
// artifact: a paginated A4 PDF or a lossless PNG. Failures never escape
// the pipeline as panics; every export returns either a Result or a typed
// error that has already been logged at this boundary.
package export

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/disintegration/imaging"
	"github.com/jung-kurt/gofpdf"
	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
	"go.uber.org/zap"

	"github.com/rezonia/invoice-builder/internal/capture"
	"github.com/rezonia/invoice-builder/internal/model"
	"github.com/rezonia/invoice-builder/internal/render"
	"github.com/rezonia/invoice-builder/internal/store"
)

// Format is the output artifact kind
type Format string

const (
	// FormatPDF is the paginated A4 document export
	FormatPDF Format = "pdf"
	// FormatPNG is the lossless image export
	FormatPNG Format = "png"
)

// Valid reports whether f is a known format
func (f Format) Valid() bool {
	return f == FormatPDF || f == FormatPNG
}

// A4 page geometry in millimeters
const (
	pageWidth  = 210.0
	pageHeight = 297.0
)

// Result is a completed export
type Result struct {
	Filename string
	Format   Format
	Data     []byte
	// Pages is the page count of the produced document (always 1 for PNG)
	Pages int
}

// ContentType returns the MIME type for the artifact
func (r *Result) ContentType() string {
	if r.Format == FormatPDF {
		return "application/pdf"
	}
	return "image/png"
}

// Pipeline renders the current store state, captures it and encodes the
// snapshot. A pipeline admits one export at a time; a second request
// while one is running fails fast with model.ErrExportBusy instead of
// interleaving style overrides on the capture target.
type Pipeline struct {
	store    *store.Store
	capturer capture.Capturer
	logger   *zap.Logger
	now      func() time.Time
	busy     atomic.Bool
}

// Option configures the pipeline
type Option func(*Pipeline)

// WithLogger sets the logger
func WithLogger(l *zap.Logger) Option {
	return func(p *Pipeline) {
		p.logger = l
	}
}

// WithClock overrides time lookup (tests)
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) {
		p.now = now
	}
}

// NewPipeline creates an export pipeline over a store and a capturer
func NewPipeline(st *store.Store, capturer capture.Capturer, opts ...Option) *Pipeline {
	p := &Pipeline{
		store:    st,
		capturer: capturer,
		logger:   zap.NewNop(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Export runs the full render, capture, encode cycle for the requested
// format. Every failure path is logged here and returned as a typed
// error; callers decide how loudly to surface it.
func (p *Pipeline) Export(ctx context.Context, format Format) (*Result, error) {
	if !p.busy.CompareAndSwap(false, true) {
		p.logger.Warn("export rejected, another export in progress", zap.String("format", string(format)))
		return nil, model.ErrExportBusy
	}
	defer p.busy.Store(false)

	data := p.store.Data()
	settings := p.store.Settings()

	html, err := render.RenderHTML(data, settings)
	if err != nil {
		exportErr := model.NewExportError(string(format), "render", "render invoice document", err)
		p.logger.Error("export failed", zap.Error(exportErr))
		return nil, exportErr
	}

	profile := capture.ProfilePDF
	if format == FormatPNG {
		profile = capture.ProfileImage
	}
	snap, err := p.capturer.Capture(ctx, html, profile)
	if err != nil {
		exportErr := model.NewExportError(string(format), "capture", "capture invoice document", err)
		p.logger.Error("export failed", zap.Error(exportErr))
		return nil, exportErr
	}

	var result *Result
	switch format {
	case FormatPDF:
		result, err = p.buildPDF(snap)
	case FormatPNG:
		result, err = p.buildPNG(snap)
	default:
		err = model.NewExportError(string(format), "encode", "unsupported format", nil)
	}
	if err != nil {
		p.logger.Error("export failed", zap.Error(err))
		return nil, err
	}

	result.Filename = Filename(data.InvoiceNumber, format, p.now())
	p.logger.Info("export complete",
		zap.String("format", string(format)),
		zap.String("filename", result.Filename),
		zap.Int("pages", result.Pages),
		zap.Int("bytes", len(result.Data)),
	)
	return result, nil
}

// buildPDF places the snapshot on A4 pages. The image is scaled to the
// full page width; when it is taller than one page, the same full bitmap
// is redrawn on every page at a cumulative negative vertical offset and
// the viewer clips each page to its own bounds. No per-page tile slicing.
func (p *Pipeline) buildPDF(snap *capture.Snapshot) (*Result, error) {
	if snap.Width <= 0 || snap.Height <= 0 {
		return nil, model.NewExportError(string(FormatPDF), "encode", "empty snapshot", nil)
	}

	imgWidth := pageWidth
	imgHeight := float64(snap.Height) * imgWidth / float64(snap.Width)

	// Orientation is chosen once, from the derived image height against
	// the page width.
	orientation := "L"
	if imgHeight > pageWidth {
		orientation = "P"
	}

	pdf := gofpdf.New(orientation, "mm", "A4", "")
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("invoice", opts, bytes.NewReader(snap.PNG))
	if pdf.Err() {
		return nil, model.NewExportError(string(FormatPDF), "encode", "register snapshot image", pdf.Error())
	}

	for _, y := range pageOffsets(imgHeight, pageHeight) {
		pdf.AddPage()
		pdf.ImageOptions("invoice", 0, y, imgWidth, imgHeight, false, opts, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, model.NewExportError(string(FormatPDF), "encode", "write pdf", err)
	}

	// Sanity-check the produced document before handing it out.
	if err := pdfapi.Validate(bytes.NewReader(buf.Bytes()), nil); err != nil {
		return nil, model.NewExportError(string(FormatPDF), "validate", "produced pdf is invalid", err)
	}
	pages, err := pdfapi.PageCount(bytes.NewReader(buf.Bytes()), nil)
	if err != nil {
		return nil, model.NewExportError(string(FormatPDF), "validate", "count pdf pages", err)
	}

	return &Result{Format: FormatPDF, Data: buf.Bytes(), Pages: pages}, nil
}

// buildPNG re-encodes the snapshot as lossless PNG regardless of what the
// capturer produced.
func (p *Pipeline) buildPNG(snap *capture.Snapshot) (*Result, error) {
	img, err := imaging.Decode(bytes.NewReader(snap.PNG))
	if err != nil {
		return nil, model.NewExportError(string(FormatPNG), "encode", "decode snapshot", err)
	}
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, model.NewExportError(string(FormatPNG), "encode", "encode png", err)
	}
	return &Result{Format: FormatPNG, Data: buf.Bytes(), Pages: 1}, nil
}

// pageOffsets returns the vertical image offset for each page. Page 1
// draws the image at 0; each following page draws the same image shifted
// up by one more page height, while the unplaced remainder is still >= 0.
func pageOffsets(imgHeight, pageH float64) []float64 {
	offsets := []float64{0}
	if imgHeight <= pageH {
		return offsets
	}
	heightLeft := imgHeight - pageH
	for heightLeft >= 0 {
		offsets = append(offsets, heightLeft-imgHeight)
		heightLeft -= pageH
	}
	return offsets
}

// Filename derives the artifact name: the invoice number (or the literal
// "invoice" when blank) joined with the ISO calendar date.
func Filename(invoiceNumber string, format Format, now time.Time) string {
	name := strings.TrimSpace(invoiceNumber)
	if name == "" {
		name = "invoice"
	}
	return fmt.Sprintf("%s_%s.%s", name, now.Format("2006-01-02"), format)
}
