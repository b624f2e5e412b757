package schema

import (
	"errors"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		doc         map[string]any
		wantErr     bool
		wantMessage string
	}{
		{
			name: "minimal document",
			doc:  map[string]any{"meta": map[string]any{"name": "Ada Lovelace"}},
		},
		{
			name: "localized and plain fields",
			doc: map[string]any{
				"meta": map[string]any{
					"name":  "Ada Lovelace",
					"title": map[string]any{"en": "Engineer", "fr": "Ingénieure"},
				},
				"skills": []any{
					map[string]any{"category": "Languages", "items": []any{"Go", "SQL"}},
				},
				"experience": []any{
					map[string]any{"title": "Engineer", "start": 2019, "end": nil},
				},
			},
		},
		{
			name:        "missing meta",
			doc:         map[string]any{"skills": []any{}},
			wantErr:     true,
			wantMessage: "meta",
		},
		{
			name:        "missing name",
			doc:         map[string]any{"meta": map[string]any{"email": "a@b.c"}},
			wantErr:     true,
			wantMessage: "name",
		},
		{
			name: "skills is not a list",
			doc: map[string]any{
				"meta":   map[string]any{"name": "Ada"},
				"skills": "Go",
			},
			wantErr:     true,
			wantMessage: "skills",
		},
		{
			name: "year given as a mapping",
			doc: map[string]any{
				"meta":      map[string]any{"name": "Ada"},
				"education": []any{map[string]any{"start": map[string]any{"y": 1}}},
			},
			wantErr:     true,
			wantMessage: "start",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := Validate(tt.doc)
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, ErrInvalidDocument) {
				t.Fatalf("Validate() error = %v, want ErrInvalidDocument", err)
			}
			if !strings.Contains(err.Error(), tt.wantMessage) {
				t.Errorf("Validate() error %q should mention %q", err, tt.wantMessage)
			}
		})
	}
}
