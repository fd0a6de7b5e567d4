package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
)

// PDFEngine rasterizes final HTML into PDF bytes.
type PDFEngine interface {
	RenderPDF(ctx context.Context, html string) ([]byte, error)
}

// ChromeEngine renders through a headless Chrome instance whose lifetime is
// scoped to a single call: started, used, and shut down on every exit path.
// Browser startup is the expensive part; callers wanting to amortize it pool
// renders above this layer.
type ChromeEngine struct {
	execPath string
	timeout  time.Duration
}

const defaultRenderTimeout = 30 * time.Second

// NewChromeEngine builds an engine. execPath may be empty to use the Chrome
// found on PATH; timeout bounds one full render including browser startup.
func NewChromeEngine(execPath string, timeout time.Duration) *ChromeEngine {
	if timeout <= 0 {
		timeout = defaultRenderTimeout
	}
	return &ChromeEngine{execPath: execPath, timeout: timeout}
}

// A4 paper in inches, 0.5cm margins.
const (
	paperWidthIn  = 8.27
	paperHeightIn = 11.69
	marginIn      = 0.197
)

// waitImagesJS resolves once every embedded image has finished loading (or
// failed), so rasterization never captures half-loaded photos or QR codes.
const waitImagesJS = `Promise.all(
	Array.from(document.images)
		.filter(img => !img.complete)
		.map(img => new Promise(resolve => { img.onload = img.onerror = resolve; }))
).then(() => true)`

// RenderPDF writes the HTML to a scratch file, points Chrome at it and prints
// to PDF. Every failure, timeouts included, surfaces as ErrRenderFailed with
// the engine's message attached; the engine never retries on its own.
func (e *ChromeEngine) RenderPDF(ctx context.Context, html string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if e.execPath != "" {
		opts = append(opts, chromedp.ExecPath(e.execPath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	tmpDir, err := os.MkdirTemp("", "cv-render-")
	if err != nil {
		return nil, fmt.Errorf("%w: scratch dir: %v", ErrRenderFailed, err)
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return nil, fmt.Errorf("%w: write scratch html: %v", ErrRenderFailed, err)
	}

	var pdf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Evaluate(waitImagesJS, nil, func(p *runtime.EvaluateParams) *runtime.EvaluateParams {
			return p.WithAwaitPromise(true)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var printErr error
			pdf, _, printErr = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidthIn).
				WithPaperHeight(paperHeightIn).
				WithMarginTop(marginIn).
				WithMarginBottom(marginIn).
				WithMarginLeft(marginIn).
				WithMarginRight(marginIn).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return printErr
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	if len(pdf) == 0 {
		return nil, fmt.Errorf("%w: engine returned empty buffer", ErrRenderFailed)
	}
	return pdf, nil
}
