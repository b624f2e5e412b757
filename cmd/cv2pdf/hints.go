package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	cv2pdf "github.com/alnah/go-cv2pdf"
	"github.com/alnah/go-cv2pdf/internal/assets"
	"github.com/alnah/go-cv2pdf/internal/config"
	"github.com/alnah/go-cv2pdf/internal/hints"
)

// hintFor returns an actionable hint for err, or "".
func hintFor(err error, env *Environment) string {
	switch {
	case errors.Is(err, cv2pdf.ErrBrowserConnect):
		return hints.ForBrowserConnect(env.Getenv)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, cv2pdf.ErrPageLoad):
		return hints.ForTimeout()
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(userConfigPath())
	case errors.Is(err, cv2pdf.ErrReadData), errors.Is(err, cv2pdf.ErrUnsupportedFormat):
		return hints.ForDataFile()
	case errors.Is(err, cv2pdf.ErrReadStylesheet):
		return hints.ForStylesheet(assets.StyleNames())
	case errors.Is(err, cv2pdf.ErrUnsupportedLanguage):
		return hints.ForLanguage(cv2pdf.SupportedLanguages())
	case errors.Is(err, cv2pdf.ErrWriteOutput):
		return hints.ForOutputDirectory()
	}
	return ""
}

// userConfigPath is where a personal cv2pdf.yaml would be found.
func userConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "go-cv2pdf", config.DefaultConfigName+".yaml")
}
