package main

import (
	"strings"

	"github.com/charmbracelet/log"

	"github.com/alnah/go-cv2pdf/internal/config"
)

const envPrefix = "CV2PDF_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string   // CV2PDF_CONFIG: config file name or path
	Data       string   // CV2PDF_DATA: résumé data file
	Style      string   // CV2PDF_STYLE: stylesheet path or name
	Photo      string   // CV2PDF_PHOTO: photo path
	OutputDir  string   // CV2PDF_OUTPUT_DIR: output directory
	Languages  []string // CV2PDF_LANGUAGES: comma-separated codes
	Backend    string   // CV2PDF_BACKEND: rod or chromedp
	Timeout    string   // CV2PDF_TIMEOUT: PDF timeout
}

// knownEnvVars lists valid CV2PDF_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"CV2PDF_CONFIG":     true,
	"CV2PDF_DATA":       true,
	"CV2PDF_STYLE":      true,
	"CV2PDF_PHOTO":      true,
	"CV2PDF_OUTPUT_DIR": true,
	"CV2PDF_LANGUAGES":  true,
	"CV2PDF_BACKEND":    true,
	"CV2PDF_TIMEOUT":    true,
	"CV2PDF_CONTAINER":  true, // read by doctor and browser hints
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("CV2PDF_CONFIG"),
		Data:       getenv("CV2PDF_DATA"),
		Style:      getenv("CV2PDF_STYLE"),
		Photo:      getenv("CV2PDF_PHOTO"),
		OutputDir:  getenv("CV2PDF_OUTPUT_DIR"),
		Backend:    getenv("CV2PDF_BACKEND"),
		Timeout:    getenv("CV2PDF_TIMEOUT"),
	}
	if v := getenv("CV2PDF_LANGUAGES"); v != "" {
		for _, lang := range strings.Split(v, ",") {
			if lang = strings.TrimSpace(lang); lang != "" {
				cfg.Languages = append(cfg.Languages, lang)
			}
		}
	}
	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized CV2PDF_* variables.
func warnUnknownEnvVars(logger *log.Logger, environ []string) {
	for _, kv := range environ {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name := strings.SplitN(kv, "=", 2)[0]
		if !knownEnvVars[name] {
			logger.Warn("unknown environment variable (typo?)", "name", name)
		}
	}
}

// applyEnvConfig applies set environment values over the config file.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Data != "" {
		cfg.Input.Data = env.Data
	}
	if env.Photo != "" {
		cfg.Input.Photo = env.Photo
	}
	if env.Style != "" {
		cfg.Style.Stylesheet = env.Style
	}
	if env.OutputDir != "" {
		cfg.Output.Dir = env.OutputDir
	}
	if len(env.Languages) > 0 {
		cfg.Languages = env.Languages
	}
	if env.Backend != "" {
		cfg.PDF.Backend = env.Backend
	}
	if env.Timeout != "" {
		cfg.PDF.Timeout = env.Timeout
	}
}
