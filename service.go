package cv2pdf

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	"github.com/alnah/go-cv2pdf/internal/fileutil"
	"github.com/alnah/go-cv2pdf/internal/pdfinfo"
)

// Service renders a résumé into one HTML and one PDF file per language.
type Service struct {
	renderer *Renderer
	pdf      PDFRenderer
	page     *PageSettings
	timeout  time.Duration
	logger   *log.Logger
}

// GenerateOptions describes one run.
type GenerateOptions struct {
	// Languages to render, in order. Empty means SupportedLanguages().
	Languages []string

	// OutputDir receives cv_{lang}.html and cv_{lang}.pdf. It is created
	// if missing.
	OutputDir string

	// Document holds the stylesheet, photo and section toggles.
	Document DocumentOptions

	// HTMLOnly skips the browser entirely.
	HTMLOnly bool

	// MaxPages logs a warning when a PDF is longer. Zero disables the check.
	MaxPages int
}

// Artifact records the files written for one language.
type Artifact struct {
	Lang     string
	HTMLPath string
	PDFPath  string // empty in HTML-only runs
	Pages    int    // zero when not counted
}

// New creates a Service. Without WithRenderer, PDFs are printed with go-rod.
func New(opts ...Option) *Service {
	s := &Service{
		timeout: defaultTimeout,
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.pdf == nil {
		s.pdf = newRodRenderer(s.page, s.timeout)
	}
	return s
}

// Generate writes every language variant. Languages are processed one after
// another; the first failure aborts the run and files already written are
// left in place.
func (s *Service) Generate(ctx context.Context, r *Resume, opts GenerateOptions) ([]Artifact, error) {
	if r == nil {
		return nil, ErrNilResume
	}

	langs := opts.Languages
	if len(langs) == 0 {
		langs = SupportedLanguages()
	}
	for _, lang := range langs {
		if _, err := LabelsFor(lang); err != nil {
			return nil, err
		}
	}

	renderer := s.renderer
	if renderer == nil {
		var err error
		if renderer, err = DefaultRenderer(); err != nil {
			return nil, err
		}
	}

	if err := fileutil.EnsureDir(opts.OutputDir); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	artifacts := make([]Artifact, 0, len(langs))
	for _, lang := range langs {
		a, err := s.generateOne(ctx, renderer, r, lang, opts)
		if err != nil {
			return artifacts, fmt.Errorf("%s: %w", lang, err)
		}
		artifacts = append(artifacts, a)
	}
	return artifacts, nil
}

func (s *Service) generateOne(ctx context.Context, renderer *Renderer, r *Resume, lang string, opts GenerateOptions) (Artifact, error) {
	start := time.Now()
	a := Artifact{
		Lang:     lang,
		HTMLPath: filepath.Join(opts.OutputDir, "cv_"+lang+".html"),
	}

	doc, err := renderer.BuildDocument(r, lang, opts.Document)
	if err != nil {
		return a, err
	}
	if err := fileutil.WriteFile(a.HTMLPath, []byte(doc)); err != nil {
		return a, fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	s.logger.Debug("wrote HTML", "lang", lang, "path", a.HTMLPath, "bytes", len(doc))

	if opts.HTMLOnly {
		s.logger.Info("generated", "lang", lang, "html", a.HTMLPath, "elapsed", time.Since(start).Round(time.Millisecond))
		return a, nil
	}

	renderCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	pdfBytes, err := s.pdf.RenderFile(renderCtx, a.HTMLPath)
	if err != nil {
		return a, err
	}

	a.PDFPath = filepath.Join(opts.OutputDir, "cv_"+lang+".pdf")
	if err := fileutil.WriteFile(a.PDFPath, pdfBytes); err != nil {
		return a, fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	if opts.MaxPages > 0 {
		s.checkPages(&a, pdfBytes, opts.MaxPages)
	}

	s.logger.Info("generated", "lang", lang, "pdf", a.PDFPath, "elapsed", time.Since(start).Round(time.Millisecond))
	return a, nil
}

// checkPages counts pages and warns past the limit. An unreadable PDF only
// produces a warning: the file was printed and written already.
func (s *Service) checkPages(a *Artifact, pdfBytes []byte, limit int) {
	pages, err := pdfinfo.PageCount(pdfBytes)
	if err != nil {
		s.logger.Warn("could not count PDF pages", "lang", a.Lang, "err", err)
		return
	}
	a.Pages = pages
	if pages > limit {
		s.logger.Warn("PDF exceeds page limit", "lang", a.Lang, "pages", pages, "max", limit)
	}
}

// Close releases the PDF backend.
func (s *Service) Close() error {
	if s.pdf != nil {
		return s.pdf.Close()
	}
	return nil
}
