package export_test

import (
	"bytes"
	"context"
	"errors"
	"image/color"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/invoice-builder/internal/capture"
	"github.com/rezonia/invoice-builder/internal/export"
	"github.com/rezonia/invoice-builder/internal/model"
	"github.com/rezonia/invoice-builder/internal/store"
)

// stubCapturer returns a fixed snapshot without a browser
type stubCapturer struct {
	snap     *capture.Snapshot
	err      error
	profiles []capture.Profile
	// entered/release turn the first capture into a barrier for overlap
	// tests; later captures pass straight through
	entered chan struct{}
	release chan struct{}
}

func (s *stubCapturer) Capture(ctx context.Context, html string, profile capture.Profile) (*capture.Snapshot, error) {
	s.profiles = append(s.profiles, profile)
	if s.entered != nil {
		close(s.entered)
		s.entered = nil
		<-s.release
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.snap, nil
}

// testSnapshot builds a white PNG with the given pixel dimensions
func testSnapshot(t *testing.T, width, height int) *capture.Snapshot {
	t.Helper()
	img := imaging.New(width, height, color.White)
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, img, imaging.PNG))
	return &capture.Snapshot{PNG: buf.Bytes(), Width: width, Height: height}
}

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	}
}

func TestExportPDFMultiPage(t *testing.T) {
	// 840x2600 px scales to a 650mm image on 210mm wide pages: 3 pages
	stub := &stubCapturer{snap: testSnapshot(t, 840, 2600)}
	p := export.NewPipeline(store.New(), stub, export.WithClock(fixedClock()))

	result, err := p.Export(context.Background(), export.FormatPDF)
	require.NoError(t, err)

	assert.Equal(t, export.FormatPDF, result.Format)
	assert.Equal(t, 3, result.Pages)
	assert.Equal(t, "INV-001_2024-03-15.pdf", result.Filename)
	assert.Equal(t, "application/pdf", result.ContentType())

	require.NoError(t, pdfapi.Validate(bytes.NewReader(result.Data), nil))
	pages, err := pdfapi.PageCount(bytes.NewReader(result.Data), nil)
	require.NoError(t, err)
	assert.Equal(t, 3, pages)

	require.Len(t, stub.profiles, 1)
	assert.Equal(t, capture.ProfilePDF, stub.profiles[0])
}

func TestExportPDFSinglePage(t *testing.T) {
	// 840x800 px scales to 200mm: fits one portrait page
	stub := &stubCapturer{snap: testSnapshot(t, 840, 800)}
	p := export.NewPipeline(store.New(), stub, export.WithClock(fixedClock()))

	result, err := p.Export(context.Background(), export.FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Pages)
}

func TestExportPNG(t *testing.T) {
	stub := &stubCapturer{snap: testSnapshot(t, 840, 1200)}
	p := export.NewPipeline(store.New(), stub, export.WithClock(fixedClock()))

	result, err := p.Export(context.Background(), export.FormatPNG)
	require.NoError(t, err)

	assert.Equal(t, export.FormatPNG, result.Format)
	assert.Equal(t, 1, result.Pages)
	assert.Equal(t, "INV-001_2024-03-15.png", result.Filename)
	assert.Equal(t, "image/png", result.ContentType())

	img, err := imaging.Decode(bytes.NewReader(result.Data))
	require.NoError(t, err)
	assert.Equal(t, 840, img.Bounds().Dx())
	assert.Equal(t, 1200, img.Bounds().Dy())

	require.Len(t, stub.profiles, 1)
	assert.Equal(t, capture.ProfileImage, stub.profiles[0])
}

func TestExportBusy(t *testing.T) {
	stub := &stubCapturer{
		snap:    testSnapshot(t, 840, 800),
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	p := export.NewPipeline(store.New(), stub, export.WithClock(fixedClock()))

	done := make(chan error, 1)
	go func() {
		_, err := p.Export(context.Background(), export.FormatPDF)
		done <- err
	}()
	<-stub.entered

	_, err := p.Export(context.Background(), export.FormatPNG)
	assert.ErrorIs(t, err, model.ErrExportBusy)

	close(stub.release)
	require.NoError(t, <-done)

	// The guard resets once the first export finishes
	_, err = p.Export(context.Background(), export.FormatPNG)
	require.NoError(t, err)
}

func TestExportCaptureFailure(t *testing.T) {
	target := model.NewTargetNotFoundError(".invoice-canvas")
	stub := &stubCapturer{err: target}
	p := export.NewPipeline(store.New(), stub)

	_, err := p.Export(context.Background(), export.FormatPDF)
	require.Error(t, err)

	var exportErr *model.ExportError
	require.ErrorAs(t, err, &exportErr)
	assert.Equal(t, "capture", exportErr.Stage)

	var notFound *model.TargetNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, ".invoice-canvas", notFound.Selector)
}

func TestExportUnsupportedFormat(t *testing.T) {
	stub := &stubCapturer{snap: testSnapshot(t, 840, 800)}
	p := export.NewPipeline(store.New(), stub)

	_, err := p.Export(context.Background(), export.Format("docx"))
	require.Error(t, err)

	var exportErr *model.ExportError
	require.ErrorAs(t, err, &exportErr)
	assert.Equal(t, "encode", exportErr.Stage)
}

func TestExportEmptySnapshot(t *testing.T) {
	stub := &stubCapturer{snap: &capture.Snapshot{}}
	p := export.NewPipeline(store.New(), stub)

	_, err := p.Export(context.Background(), export.FormatPDF)
	require.Error(t, err)
	assert.False(t, errors.Is(err, model.ErrExportBusy))
}

func TestFormatValid(t *testing.T) {
	assert.True(t, export.FormatPDF.Valid())
	assert.True(t, export.FormatPNG.Valid())
	assert.False(t, export.Format("docx").Valid())
	assert.False(t, export.Format("").Valid())
}

func TestFilename(t *testing.T) {
	now := time.Date(2024, 3, 15, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, "INV-042_2024-03-15.pdf", export.Filename("INV-042", export.FormatPDF, now))
	assert.Equal(t, "invoice_2024-03-15.png", export.Filename("", export.FormatPNG, now))
	assert.Equal(t, "invoice_2024-03-15.pdf", export.Filename("   ", export.FormatPDF, now))
}
