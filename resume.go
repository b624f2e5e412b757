package cv2pdf

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/alnah/go-cv2pdf/internal/schema"
	"github.com/alnah/go-cv2pdf/internal/yamlutil"
)

// Resume is the root data record. It is loaded once and never mutated;
// rendering only reads it.
type Resume struct {
	Meta           Meta            `yaml:"meta" toml:"meta"`
	Skills         []SkillGroup    `yaml:"skills" toml:"skills"`
	Experience     []Experience    `yaml:"experience" toml:"experience"`
	Education      []Education     `yaml:"education" toml:"education"`
	Projects       []Project       `yaml:"projects" toml:"projects"`
	Certifications []Certification `yaml:"certifications" toml:"certifications"`
}

// Meta holds identity and contact details. LinkedIn and GitHub are stored
// without scheme ("linkedin.com/in/ada").
type Meta struct {
	Name     string    `yaml:"name" toml:"name"`
	Title    Localized `yaml:"title" toml:"title"`
	Summary  Localized `yaml:"summary" toml:"summary"`
	Email    string    `yaml:"email" toml:"email"`
	Phone    string    `yaml:"phone" toml:"phone"`
	Location string    `yaml:"location" toml:"location"`
	LinkedIn string    `yaml:"linkedin" toml:"linkedin"`
	GitHub   string    `yaml:"github" toml:"github"`
}

// SkillGroup is a labelled list of skills.
type SkillGroup struct {
	Category Localized `yaml:"category" toml:"category"`
	Items    []string  `yaml:"items" toml:"items"`
}

// Experience is one position held. An empty End means ongoing.
type Experience struct {
	Title       Localized `yaml:"title" toml:"title"`
	Company     string    `yaml:"company" toml:"company"`
	Location    string    `yaml:"location" toml:"location"`
	Start       Scalar    `yaml:"start" toml:"start"`
	End         Scalar    `yaml:"end" toml:"end"`
	Description Localized `yaml:"description" toml:"description"`
}

// Education is one degree or course of study.
type Education struct {
	Degree      Localized `yaml:"degree" toml:"degree"`
	Institution string    `yaml:"institution" toml:"institution"`
	Location    string    `yaml:"location" toml:"location"`
	Start       Scalar    `yaml:"start" toml:"start"`
	End         Scalar    `yaml:"end" toml:"end"`
	Description Localized `yaml:"description" toml:"description"`
	Note        Localized `yaml:"note" toml:"note"`
}

// Project is a side or portfolio project. Its title is not localized.
type Project struct {
	Title       string    `yaml:"title" toml:"title"`
	URL         string    `yaml:"url" toml:"url"`
	Tags        []string  `yaml:"tags" toml:"tags"`
	Start       Scalar    `yaml:"start" toml:"start"`
	End         Scalar    `yaml:"end" toml:"end"`
	Description Localized `yaml:"description" toml:"description"`
}

// Certification is rendered as-is in every language.
type Certification struct {
	Name   string `yaml:"name" toml:"name"`
	Issuer string `yaml:"issuer" toml:"issuer"`
	Date   Scalar `yaml:"date" toml:"date"`
}

// LoadResume reads and validates a data file. The format follows the
// extension: .yaml/.yml or .toml.
func LoadResume(path string) (*Resume, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- data path is user-provided
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: file not found", ErrReadData, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrReadData, path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".toml":
		return ParseTOML(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// ParseYAML validates and decodes a YAML data document.
func ParseYAML(data []byte) (*Resume, error) {
	raw, err := yamlutil.Generic(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResume, err)
	}
	if err := schema.Validate(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResume, err)
	}

	var r Resume
	if err := yamlutil.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResume, err)
	}
	return &r, nil
}

// ParseTOML validates and decodes a TOML data document.
func ParseTOML(data []byte) (*Resume, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResume, err)
	}
	if err := schema.Validate(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResume, err)
	}

	var r Resume
	if err := toml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResume, err)
	}
	return &r, nil
}
