// Package config loads the run configuration: where the résumé data,
// stylesheet and photo live, which languages to render, and how PDFs are
// printed.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/alnah/go-cv2pdf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidConfig   = errors.New("invalid config")
)

// PDF backends.
const (
	BackendRod      = "rod"
	BackendChromedp = "chromedp"
)

// Defaults for a run without a config file.
const (
	DefaultDataPath   = "cv.yaml"
	DefaultStylesheet = "style.css"
	DefaultPhotoPath  = "photo.jpg"
	DefaultOutputDir  = "output"
	DefaultTimeout    = "60s"
	DefaultPageSize   = "a4"
	DefaultMargin     = 0.5
	DefaultConfigName = "cv2pdf"
)

var langCode = regexp.MustCompile(`^[a-z]{2}$`)

// Config holds everything a run needs.
type Config struct {
	Input     InputConfig    `yaml:"input"`
	Style     StyleConfig    `yaml:"style"`
	Output    OutputConfig   `yaml:"output"`
	Languages []string       `yaml:"languages"`
	Document  DocumentConfig `yaml:"document"`
	PDF       PDFConfig      `yaml:"pdf"`
	Assets    AssetsConfig   `yaml:"assets"`
}

// InputConfig locates the source files.
type InputConfig struct {
	Data  string `yaml:"data"`  // .yaml, .yml or .toml
	Photo string `yaml:"photo"` // optional; a missing file is not an error
}

// StyleConfig selects the stylesheet.
type StyleConfig struct {
	Stylesheet string `yaml:"stylesheet"` // file path, or name of an embedded style
}

// OutputConfig defines where artifacts go.
type OutputConfig struct {
	Dir      string `yaml:"dir"`
	HTMLOnly bool   `yaml:"htmlOnly"` // skip PDF rendering
}

// DocumentConfig toggles optional document content.
type DocumentConfig struct {
	IncludeCertifications bool `yaml:"includeCertifications"`
}

// PDFConfig controls the headless browser.
type PDFConfig struct {
	Backend  string     `yaml:"backend"`  // "rod" or "chromedp"
	Timeout  string     `yaml:"timeout"`  // Go duration, e.g. "45s"
	MaxPages int        `yaml:"maxPages"` // warn when exceeded, 0 = no check
	Page     PageConfig `yaml:"page"`
}

// PageConfig defines paper settings.
type PageConfig struct {
	Size   string  `yaml:"size"`   // "letter", "a4", "legal"
	Margin float64 `yaml:"margin"` // inches
}

// AssetsConfig points at a directory overriding embedded templates and styles.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Input:     InputConfig{Data: DefaultDataPath, Photo: DefaultPhotoPath},
		Style:     StyleConfig{Stylesheet: DefaultStylesheet},
		Output:    OutputConfig{Dir: DefaultOutputDir},
		Languages: []string{"fr", "en"},
		PDF: PDFConfig{
			Backend: BackendRod,
			Timeout: DefaultTimeout,
			Page:    PageConfig{Size: DefaultPageSize, Margin: DefaultMargin},
		},
	}
}

// TimeoutDuration parses PDF.Timeout. Call Validate first.
func (c *Config) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.PDF.Timeout)
	if err != nil || d <= 0 {
		d, _ = time.ParseDuration(DefaultTimeout)
	}
	return d
}

// Validate checks the values LoadConfig cannot check by type alone.
// Language support and page settings are validated by the renderer.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Input.Data) == "" {
		return fmt.Errorf("%w: input.data is required", ErrInvalidConfig)
	}
	if strings.TrimSpace(c.Output.Dir) == "" {
		return fmt.Errorf("%w: output.dir is required", ErrInvalidConfig)
	}

	if len(c.Languages) == 0 {
		return fmt.Errorf("%w: languages: at least one language is required", ErrInvalidConfig)
	}
	seen := make(map[string]bool, len(c.Languages))
	for _, lang := range c.Languages {
		if !langCode.MatchString(lang) {
			return fmt.Errorf("%w: languages: %q is not a two-letter code", ErrInvalidConfig, lang)
		}
		if seen[lang] {
			return fmt.Errorf("%w: languages: %q listed twice", ErrInvalidConfig, lang)
		}
		seen[lang] = true
	}

	switch c.PDF.Backend {
	case BackendRod, BackendChromedp:
	default:
		return fmt.Errorf("%w: pdf.backend: %q (must be %s or %s)", ErrInvalidConfig, c.PDF.Backend, BackendRod, BackendChromedp)
	}

	if c.PDF.Timeout != "" {
		d, err := time.ParseDuration(c.PDF.Timeout)
		if err != nil {
			return fmt.Errorf("%w: pdf.timeout: %v", ErrInvalidConfig, err)
		}
		if d <= 0 {
			return fmt.Errorf("%w: pdf.timeout: must be positive, got %s", ErrInvalidConfig, d)
		}
	}

	if c.PDF.MaxPages < 0 {
		return fmt.Errorf("%w: pdf.maxPages: must not be negative, got %d", ErrInvalidConfig, c.PDF.MaxPages)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name. Values
// absent from the file keep their defaults.
// If nameOrPath contains a path separator or a YAML extension, it's treated
// as a file path. Otherwise it's searched in the current directory and
// ~/.config/go-cv2pdf/.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !isFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func isFilePath(s string) bool {
	if strings.ContainsAny(s, "/\\") {
		return true
	}
	ext := strings.ToLower(filepath.Ext(s))
	return ext == ".yaml" || ext == ".yml"
}

// resolveConfigPath tries .yaml then .yml, in the current directory first,
// then in the user config directory.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	candidates := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		candidates = append(candidates, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			candidates = append(candidates, filepath.Join(userConfigDir, "go-cv2pdf", name+ext))
		}
	}

	for _, p := range candidates {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(candidates, ", "))
}
