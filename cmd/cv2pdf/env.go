package main

import (
	"io"
	"os"
	"time"

	"github.com/go-rod/rod/lib/launcher"

	cv2pdf "github.com/alnah/go-cv2pdf"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdout  io.Writer
	Stderr  io.Writer
	Getenv  func(string) string
	Environ func() []string

	// NewPDFRenderer builds the browser backend; tests substitute a fake.
	NewPDFRenderer func(backend string, page *cv2pdf.PageSettings, timeout time.Duration) (cv2pdf.PDFRenderer, error)

	// LookBrowser finds an installed Chrome or Chromium.
	LookBrowser func() (string, bool)
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout:         os.Stdout,
		Stderr:         os.Stderr,
		Getenv:         os.Getenv,
		Environ:        os.Environ,
		NewPDFRenderer: cv2pdf.NewPDFRenderer,
		LookBrowser:    launcher.LookPath,
	}
}
