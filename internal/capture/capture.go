// Package capture rasterizes a rendered invoice document with a headless
// Chrome instance driven over the DevTools protocol. The adapter locates
// the invoice region by its marker selector, neutralizes layout-affecting
// inline styles for the duration of the screenshot, and restores them
// afterwards.
package capture

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"

	"github.com/rezonia/invoice-builder/internal/model"
	"github.com/rezonia/invoice-builder/internal/render"
)

// Profile selects the pixel density of a capture
type Profile struct {
	Name string
	// Scale is the device pixel multiplier. PDF captures stay at 2x to
	// bound memory; image captures go to 4x since no pagination follows.
	Scale float64
	// Settle is the delay between the style overrides and the screenshot
	// so the layout engine finishes its reflow first.
	Settle time.Duration
}

var (
	// ProfilePDF is the print-oriented capture profile
	ProfilePDF = Profile{Name: "pdf", Scale: 2, Settle: 100 * time.Millisecond}

	// ProfileImage is the screen-oriented capture profile
	ProfileImage = Profile{Name: "image", Scale: 4, Settle: 100 * time.Millisecond}
)

// Snapshot is a raster surface plus its pixel dimensions
type Snapshot struct {
	PNG    []byte
	Width  int
	Height int
}

// Capturer produces a snapshot of a rendered HTML document
type Capturer interface {
	Capture(ctx context.Context, html string, profile Profile) (*Snapshot, error)
}

// Chrome is the headless-browser Capturer
type Chrome struct {
	selector string
	execPath string
	timeout  time.Duration
	logger   *zap.Logger
}

// Option configures the Chrome capturer
type Option func(*Chrome)

// WithSelector overrides the capture target selector
func WithSelector(sel string) Option {
	return func(c *Chrome) {
		c.selector = sel
	}
}

// WithExecPath sets an explicit browser binary path
func WithExecPath(path string) Option {
	return func(c *Chrome) {
		c.execPath = path
	}
}

// WithTimeout bounds a single capture cycle
func WithTimeout(d time.Duration) Option {
	return func(c *Chrome) {
		c.timeout = d
	}
}

// WithLogger sets the logger
func WithLogger(l *zap.Logger) Option {
	return func(c *Chrome) {
		c.logger = l
	}
}

// NewChrome creates a capturer targeting the render marker
func NewChrome(opts ...Option) *Chrome {
	c := &Chrome{
		selector: render.Selector,
		timeout:  60 * time.Second,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type dimensions struct {
	Width  int64 `json:"width"`
	Height int64 `json:"height"`
}

// Capture loads the document in a fresh headless tab, screenshots the
// marker region at the profile's pixel density and returns the raster.
// The target's overridden styles are restored before returning, on the
// failure paths as well.
func (c *Chrome) Capture(ctx context.Context, html string, profile Profile) (*Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	dir, err := os.MkdirTemp("", "invoice-capture-")
	if err != nil {
		return nil, model.NewCaptureError("navigate", "create temp dir", err)
	}
	defer os.RemoveAll(dir)

	docPath := filepath.Join(dir, "invoice.html")
	if err := os.WriteFile(docPath, []byte(html), 0o600); err != nil {
		return nil, model.NewCaptureError("navigate", "write document", err)
	}

	allocOpts := append(
		chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("force-color-profile", "srgb"),
		chromedp.Flag("hide-scrollbars", true),
	)
	if c.execPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(c.execPath))
	}
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancelAlloc()
	tabCtx, cancelTab := chromedp.NewContext(allocCtx)
	defer cancelTab()

	var present bool
	if err := chromedp.Run(tabCtx,
		chromedp.Navigate("file://"+docPath),
		chromedp.Evaluate(presenceScript(c.selector), &present),
	); err != nil {
		return nil, model.NewCaptureError("navigate", "load document", err)
	}
	if !present {
		return nil, model.NewTargetNotFoundError(c.selector)
	}

	var saved map[string]*string
	if err := chromedp.Run(tabCtx, chromedp.Evaluate(stabilizeScript(c.selector), &saved)); err != nil {
		return nil, model.NewCaptureError("stabilize", "override target styles", err)
	}
	defer func() {
		// Best-effort restore; the tab is throwaway but the contract is
		// that a located target always gets its styles back.
		var restored bool
		if err := chromedp.Run(tabCtx, chromedp.Evaluate(restoreScript(c.selector), &restored)); err != nil || !restored {
			c.logger.Warn("style restore failed", zap.Bool("restored", restored), zap.Error(err))
		}
	}()

	var dims dimensions
	if err := chromedp.Run(tabCtx,
		chromedp.Sleep(profile.Settle),
		chromedp.Evaluate(measureScript(c.selector), &dims),
	); err != nil {
		return nil, model.NewCaptureError("measure", "read scroll dimensions", err)
	}
	if dims.Width == 0 || dims.Height == 0 {
		return nil, model.NewCaptureError("measure", "target has zero scroll area", nil)
	}

	var shot []byte
	err = chromedp.Run(tabCtx, chromedp.ActionFunc(func(ctx context.Context) error {
		if err := emulation.SetDefaultBackgroundColorOverride().
			WithColor(&cdp.RGBA{R: 255, G: 255, B: 255, A: 1}).
			Do(ctx); err != nil {
			return err
		}
		if err := emulation.SetDeviceMetricsOverride(dims.Width, dims.Height, 1, false).Do(ctx); err != nil {
			return err
		}
		buf, err := page.CaptureScreenshot().
			WithFormat(page.CaptureScreenshotFormatPng).
			WithFromSurface(true).
			WithCaptureBeyondViewport(true).
			WithClip(&page.Viewport{
				X:      0,
				Y:      0,
				Width:  float64(dims.Width),
				Height: float64(dims.Height),
				Scale:  profile.Scale,
			}).
			Do(ctx)
		if err != nil {
			return err
		}
		shot = buf
		return nil
	}))
	if err != nil {
		return nil, model.NewCaptureError("screenshot", "capture raster", err)
	}

	snap := &Snapshot{
		PNG:    shot,
		Width:  int(float64(dims.Width) * profile.Scale),
		Height: int(float64(dims.Height) * profile.Scale),
	}
	c.logger.Debug("captured document",
		zap.String("profile", profile.Name),
		zap.Int("width", snap.Width),
		zap.Int("height", snap.Height),
	)
	return snap, nil
}
