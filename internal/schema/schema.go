// Package schema validates raw résumé documents against the bundled JSON
// schema before they are decoded into typed records.
package schema

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed resume.schema.json
var resumeSchema []byte

// ErrInvalidDocument is returned when a document does not match the schema.
var ErrInvalidDocument = errors.New("document does not match schema")

var (
	compileOnce sync.Once
	compiled    *gojsonschema.Schema
	compileErr  error
)

func load() (*gojsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiled, compileErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(resumeSchema))
	})
	return compiled, compileErr
}

// Validate checks a decoded document. All violations are reported in one
// error, each prefixed with its field path.
func Validate(doc map[string]any) error {
	s, err := load()
	if err != nil {
		return fmt.Errorf("compiling schema: %w", err)
	}

	res, err := s.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if res.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidDocument, strings.Join(msgs, "; "))
}
