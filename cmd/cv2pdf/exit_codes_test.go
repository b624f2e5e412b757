package main

// Notes:
// - exitCodeFor: every sentinel the CLI can surface, plus wrapped errors to
//   verify the errors.Is() chain.

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	cv2pdf "github.com/alnah/go-cv2pdf"
	"github.com/alnah/go-cv2pdf/internal/config"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		// Success
		{"nil error", nil, ExitSuccess},

		// Browser errors (exit 4)
		{"browser connect", cv2pdf.ErrBrowserConnect, ExitBrowser},
		{"page load", cv2pdf.ErrPageLoad, ExitBrowser},
		{"pdf generation", cv2pdf.ErrPDFGeneration, ExitBrowser},
		{"timeout", context.DeadlineExceeded, ExitBrowser},
		{"wrapped per language", fmt.Errorf("en: %w", cv2pdf.ErrPDFGeneration), ExitBrowser},

		// I/O errors (exit 3)
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"read data", cv2pdf.ErrReadData, ExitIO},
		{"read stylesheet", cv2pdf.ErrReadStylesheet, ExitIO},
		{"write output", cv2pdf.ErrWriteOutput, ExitIO},
		{"wrapped read data", fmt.Errorf("%w: cv.yaml: file not found", cv2pdf.ErrReadData), ExitIO},

		// Usage/config/validation errors (exit 2)
		{"usage", ErrUsage, ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"empty config name", config.ErrEmptyConfigName, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"invalid config", config.ErrInvalidConfig, ExitUsage},
		{"unsupported format", cv2pdf.ErrUnsupportedFormat, ExitUsage},
		{"invalid resume", cv2pdf.ErrInvalidResume, ExitUsage},
		{"unsupported language", cv2pdf.ErrUnsupportedLanguage, ExitUsage},
		{"invalid page size", cv2pdf.ErrInvalidPageSize, ExitUsage},
		{"invalid margin", cv2pdf.ErrInvalidMargin, ExitUsage},
		{"unknown backend", cv2pdf.ErrUnknownBackend, ExitUsage},
		{"template parse", cv2pdf.ErrTemplateParse, ExitUsage},
		{"wrapped config parse", fmt.Errorf("loading: %w", config.ErrConfigParse), ExitUsage},

		// General errors (exit 1)
		{"template render", cv2pdf.ErrTemplateRender, ExitGeneral},
		{"unknown error", errors.New("something unexpected"), ExitGeneral},
		{"canceled", context.Canceled, ExitGeneral},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestExitCodeConstants - Unix conventions
// ---------------------------------------------------------------------------

func TestExitCodeConstants(t *testing.T) {
	t.Parallel()

	if ExitSuccess != 0 || ExitGeneral != 1 || ExitUsage != 2 {
		t.Error("exit codes 0, 1, 2 must keep their Unix meanings")
	}
	for _, code := range []int{ExitIO, ExitBrowser} {
		if code <= ExitUsage || code >= 126 {
			t.Errorf("custom exit code %d out of range", code)
		}
	}
}
