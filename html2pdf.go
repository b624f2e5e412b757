package cv2pdf

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-cv2pdf/internal/process"
)

// PDF backends.
const (
	BackendRod      = "rod"
	BackendChromedp = "chromedp"
)

// PDFRenderer prints a self-contained HTML file to PDF bytes. It is the
// only blocking collaborator of a run, and tests substitute it to run
// without a browser.
type PDFRenderer interface {
	RenderFile(ctx context.Context, htmlPath string) ([]byte, error)
	Close() error
}

var (
	_ PDFRenderer = (*rodRenderer)(nil)
	_ PDFRenderer = (*chromedpRenderer)(nil)
)

// NewPDFRenderer returns the named headless-browser backend.
func NewPDFRenderer(backend string, page *PageSettings, timeout time.Duration) (PDFRenderer, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	switch backend {
	case "", BackendRod:
		return newRodRenderer(page, timeout), nil
	case BackendChromedp:
		return newChromedpRenderer(page, timeout), nil
	default:
		return nil, fmt.Errorf("%w: %q (must be %s or %s)", ErrUnknownBackend, backend, BackendRod, BackendChromedp)
	}
}

// fileURL turns a local path into a file:// URL.
func fileURL(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPageLoad, err)
	}
	return "file://" + filepath.ToSlash(abs), nil
}

// rodRenderer implements PDFRenderer using go-rod. The browser is launched
// on first use and reused until Close; rod downloads Chromium if none is found.
type rodRenderer struct {
	launcher *launcher.Launcher
	browser  *rod.Browser
	page     *PageSettings
	timeout  time.Duration
}

func newRodRenderer(page *PageSettings, timeout time.Duration) *rodRenderer {
	return &rodRenderer{page: page, timeout: timeout}
}

// ensureBrowser lazily connects to the browser.
func (r *rodRenderer) ensureBrowser() error {
	if r.browser != nil {
		return nil
	}

	l := launcher.New()

	// Use pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" || os.Getenv("ROD_NO_SANDBOX") == "1" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	r.launcher = l
	r.browser = rod.New().ControlURL(u)
	if err := r.browser.Connect(); err != nil {
		r.browser = nil
		r.killLauncher()
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	return nil
}

// RenderFile opens htmlPath in headless Chrome and prints it.
func (r *rodRenderer) RenderFile(ctx context.Context, htmlPath string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	url, err := fileURL(htmlPath)
	if err != nil {
		return nil, err
	}

	if err := r.ensureBrowser(); err != nil {
		return nil, err
	}

	page, err := r.browser.Page(proto.TargetCreateTarget{URL: url})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}
	defer page.Close()

	page = page.Context(ctx).Timeout(r.timeout)
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	reader, err := page.PDF(r.printOptions())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	pdfBuf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}
	return pdfBuf, nil
}

// printOptions builds the print call from page settings.
func (r *rodRenderer) printOptions() *proto.PagePrintToPDF {
	width, height := r.page.dimensions()
	margin := r.page.margin()

	return &proto.PagePrintToPDF{
		PaperWidth:        floatPtr(width),
		PaperHeight:       floatPtr(height),
		MarginTop:         floatPtr(margin),
		MarginBottom:      floatPtr(margin),
		MarginLeft:        floatPtr(margin),
		MarginRight:       floatPtr(margin),
		PrintBackground:   true,
		PreferCSSPageSize: true,
	}
}

// Close releases browser resources. The launched process tree is killed
// even when the browser does not answer the close command.
func (r *rodRenderer) Close() error {
	var err error
	if r.browser != nil {
		err = r.browser.Close()
		r.browser = nil
	}
	r.killLauncher()
	return err
}

func (r *rodRenderer) killLauncher() {
	if r.launcher == nil {
		return
	}
	pid := r.launcher.PID()
	r.launcher.Kill()
	_ = process.KillTree(pid) // already gone after a clean close
	r.launcher = nil
}

func floatPtr(v float64) *float64 {
	return &v
}
