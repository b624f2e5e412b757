package cv2pdf

import "errors"

// Sentinel errors for library operations.
var (
	// Input errors. Missing required files are fatal to a run.
	ErrReadData          = errors.New("failed to read data file")
	ErrReadStylesheet    = errors.New("failed to read stylesheet")
	ErrUnsupportedFormat = errors.New("unsupported data file format")
	ErrInvalidResume     = errors.New("invalid resume data")
	ErrNotScalar         = errors.New("expected a scalar value")
	ErrNilResume         = errors.New("resume cannot be nil")

	// Configuration errors.
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrInvalidPageSize     = errors.New("invalid page size")
	ErrInvalidMargin       = errors.New("invalid margin")
	ErrTemplateParse       = errors.New("failed to parse template")
	ErrUnknownBackend      = errors.New("unknown PDF backend")

	// Rendering errors.
	ErrTemplateRender = errors.New("template rendering failed")
	ErrWriteOutput    = errors.New("failed to write output")

	// Browser errors.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPDFGeneration  = errors.New("PDF generation failed")
)
