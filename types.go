package cv2pdf

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Page size constants.
const (
	PageSizeLetter = "letter"
	PageSizeA4     = "a4"
	PageSizeLegal  = "legal"
)

// Margin bounds in inches.
const (
	MinMargin     = 0.0
	MaxMargin     = 2.0
	DefaultMargin = 0.5
)

// paperSizes maps page sizes to width and height in inches.
var paperSizes = map[string][2]float64{
	PageSizeLetter: {8.5, 11},
	PageSizeA4:     {8.27, 11.69},
	PageSizeLegal:  {8.5, 14},
}

// PageSettings configures PDF paper.
type PageSettings struct {
	Size   string  // "letter", "a4", "legal"
	Margin float64 // inches, applied to all sides
}

// DefaultPageSettings returns A4 with half-inch margins.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{Size: PageSizeA4, Margin: DefaultMargin}
}

// Validate checks that page settings are valid. A nil receiver means
// defaults and is valid.
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}
	if _, ok := paperSizes[strings.ToLower(p.Size)]; !ok {
		return fmt.Errorf("%w: %q", ErrInvalidPageSize, p.Size)
	}
	if p.Margin < MinMargin || p.Margin > MaxMargin {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidMargin, p.Margin, MinMargin, MaxMargin)
	}
	return nil
}

// dimensions returns paper width and height in inches.
func (p *PageSettings) dimensions() (width, height float64) {
	if p == nil {
		p = DefaultPageSettings()
	}
	size, ok := paperSizes[strings.ToLower(p.Size)]
	if !ok {
		size = paperSizes[PageSizeA4]
	}
	return size[0], size[1]
}

func (p *PageSettings) margin() float64 {
	if p == nil {
		return DefaultMargin
	}
	return p.Margin
}

// Option configures a Service.
type Option func(*Service)

// defaultTimeout bounds a single PDF render.
const defaultTimeout = 60 * time.Second

// WithTimeout sets the per-document PDF timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("cv2pdf: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.timeout = d
	}
}

// WithRenderer replaces the PDF backend. The service closes it on Close.
func WithRenderer(r PDFRenderer) Option {
	return func(s *Service) {
		s.pdf = r
	}
}

// WithLogger sets the logger for progress messages.
func WithLogger(l *log.Logger) Option {
	return func(s *Service) {
		s.logger = l
	}
}

// WithPageSettings sets paper size and margins for the built-in backends.
func WithPageSettings(p *PageSettings) Option {
	return func(s *Service) {
		s.page = p
	}
}

// WithTemplates renders with a custom template set instead of the built-in one.
func WithTemplates(rd *Renderer) Option {
	return func(s *Service) {
		s.renderer = rd
	}
}
