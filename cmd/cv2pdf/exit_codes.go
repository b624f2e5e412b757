package main

import (
	"context"
	"errors"
	"os"

	cv2pdf "github.com/alnah/go-cv2pdf"
	"github.com/alnah/go-cv2pdf/internal/config"
)

// Exit codes for the cv2pdf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // All artifacts written
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or data
	ExitIO      = 3 // Missing data file or stylesheet, unwritable output
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, cv2pdf.ErrBrowserConnect) ||
		errors.Is(err, cv2pdf.ErrPageLoad) ||
		errors.Is(err, cv2pdf.ErrPDFGeneration) ||
		errors.Is(err, context.DeadlineExceeded) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, cv2pdf.ErrReadData) ||
		errors.Is(err, cv2pdf.ErrReadStylesheet) ||
		errors.Is(err, cv2pdf.ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidConfig) ||
		errors.Is(err, cv2pdf.ErrUnsupportedFormat) ||
		errors.Is(err, cv2pdf.ErrInvalidResume) ||
		errors.Is(err, cv2pdf.ErrUnsupportedLanguage) ||
		errors.Is(err, cv2pdf.ErrInvalidPageSize) ||
		errors.Is(err, cv2pdf.ErrInvalidMargin) ||
		errors.Is(err, cv2pdf.ErrUnknownBackend) ||
		errors.Is(err, cv2pdf.ErrTemplateParse) {
		return ExitUsage
	}

	return ExitGeneral
}
