package service

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"os"
	"time"

	"fulfillment-portal/models"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	log "github.com/sirupsen/logrus"
)

//go:embed templates/inventory_report.html
var templateFS embed.FS

var reportTemplate = template.Must(template.ParseFS(templateFS, "templates/inventory_report.html"))

const renderTimeout = 60 * time.Second

// RenderInventoryHTML renders the inventory report template
func RenderInventoryHTML(data models.InventoryReportData) (string, error) {
	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

// ReportRendererInterface turns report HTML into images and documents
type ReportRendererInterface interface {
	RenderPNG(ctx context.Context, html string) ([]byte, error)
	RenderPDF(ctx context.Context, html string) ([]byte, error)
}

// ReportRenderer renders HTML with a headless Chrome
type ReportRenderer struct {
	chromePath string
}

// NewReportRenderer creates a renderer. An empty chromePath lets chromedp find the browser itself.
func NewReportRenderer(chromePath string) *ReportRenderer {
	return &ReportRenderer{chromePath: chromePath}
}

var _ ReportRendererInterface = (*ReportRenderer)(nil)

// chromeCandidates are the common installation paths tried after the configured one
var chromeCandidates = []string{
	"/usr/bin/chromium",
	"/usr/bin/chromium-browser",
	"/usr/bin/google-chrome",
	"/usr/bin/google-chrome-stable",
	"/snap/bin/chromium",
}

// DetectChromePath detects the path to Chrome/Chromium executable
// Checks the configured path first, then common installation paths
func DetectChromePath(configured string) string {
	if configured != "" {
		if _, err := os.Stat(configured); err == nil {
			return configured
		}
	}

	for _, path := range chromeCandidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// LocateReportRenderer returns a renderer bound to the detected Chrome binary,
// or nil when no Chrome is installed so report rendering reports itself unavailable.
func LocateReportRenderer(configured string) ReportRendererInterface {
	chromePath := DetectChromePath(configured)
	if chromePath == "" {
		log.Printf("⚠️  Chrome not found, PNG/PDF reports disabled")
		return nil
	}
	log.Printf("🌐 Using Chrome at: %s", chromePath)
	return NewReportRenderer(chromePath)
}

// browser starts a headless browser context; callers must invoke the returned cancel
func (r *ReportRenderer) browser(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, timeoutCancel := context.WithTimeout(ctx, renderTimeout)

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
	)
	if r.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(r.chromePath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	return browserCtx, func() {
		browserCancel()
		allocCancel()
		timeoutCancel()
	}
}

// loadHTML replaces the blank page content with html
func loadHTML(html string) chromedp.Tasks {
	return chromedp.Tasks{
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body"),
	}
}

// RenderPNG captures the full rendered page as PNG
func (r *ReportRenderer) RenderPNG(ctx context.Context, html string) ([]byte, error) {
	browserCtx, cancel := r.browser(ctx)
	defer cancel()

	var buf []byte
	err := chromedp.Run(browserCtx,
		chromedp.EmulateViewport(808, 600),
		loadHTML(html),
		chromedp.FullScreenshot(&buf, 100), // Quality 100 encodes PNG
	)
	if err != nil {
		return nil, fmt.Errorf("failed to capture screenshot: %w", err)
	}

	log.Printf("✓ RenderPNG: %d bytes", len(buf))
	return buf, nil
}

// RenderPDF prints the rendered page to an A4 PDF
func (r *ReportRenderer) RenderPDF(ctx context.Context, html string) ([]byte, error) {
	browserCtx, cancel := r.browser(ctx)
	defer cancel()

	var pdfBuf []byte
	err := chromedp.Run(browserCtx,
		loadHTML(html),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).   // 210mm in inches
				WithPaperHeight(11.69). // 297mm in inches
				WithMarginTop(0.4).
				WithMarginBottom(0.4).
				WithMarginLeft(0.4).
				WithMarginRight(0.4).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	log.Printf("✓ RenderPDF: %d bytes", len(pdfBuf))
	return pdfBuf, nil
}
