package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-cv2pdf/internal/yamlutil"
)

type runSettings struct {
	Output string   `yaml:"output"`
	Langs  []string `yaml:"langs"`
}

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
	}{
		{
			name: "valid YAML",
			data: []byte("output: out\nlangs: [fr, en]"),
			dest: &runSettings{},
		},
		{
			name:    "nil data",
			data:    nil,
			dest:    &runSettings{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "nil destination",
			data:    []byte("output: out"),
			dest:    nil,
			wantErr: yamlutil.ErrNilDestination,
		},
		{
			name: "unknown keys are ignored",
			data: []byte("output: out\nextra: 1"),
			dest: &runSettings{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.Unmarshal(tt.data, tt.dest)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Unmarshal() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal() unexpected error: %v", err)
			}
		})
	}
}

func TestUnmarshal_Decodes(t *testing.T) {
	t.Parallel()

	var got runSettings
	if err := yamlutil.Unmarshal([]byte("output: build\nlangs:\n  - fr\n  - en\n"), &got); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if got.Output != "build" {
		t.Errorf("Output = %q, want %q", got.Output, "build")
	}
	if strings.Join(got.Langs, ",") != "fr,en" {
		t.Errorf("Langs = %v, want [fr en]", got.Langs)
	}
}

func TestUnmarshal_TooLarge(t *testing.T) {
	big := make([]byte, yamlutil.MaxInputSize+1)
	for i := range big {
		big[i] = 'a'
	}

	err := yamlutil.Unmarshal(big, &runSettings{})
	if !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Fatalf("Unmarshal() error = %v, want ErrInputTooLarge", err)
	}
}

func TestUnmarshalStrict_RejectsUnknownField(t *testing.T) {
	t.Parallel()

	err := yamlutil.UnmarshalStrict([]byte("output: out\nbogus: true"), &runSettings{})
	if err == nil {
		t.Fatal("UnmarshalStrict() expected error for unknown field")
	}
	if !strings.HasPrefix(err.Error(), "yamlutil:") {
		t.Errorf("error %q should carry the yamlutil prefix", err)
	}
}

func TestGeneric(t *testing.T) {
	t.Parallel()

	m, err := yamlutil.Generic([]byte("meta:\n  name: Ada\nskills: []\n"))
	if err != nil {
		t.Fatalf("Generic() error: %v", err)
	}
	meta, ok := m["meta"].(map[string]any)
	if !ok {
		t.Fatalf("meta has type %T, want map[string]any", m["meta"])
	}
	if meta["name"] != "Ada" {
		t.Errorf("meta.name = %v, want Ada", meta["name"])
	}
}

func TestGeneric_NotAMapping(t *testing.T) {
	t.Parallel()

	if _, err := yamlutil.Generic([]byte("- a\n- b\n")); err == nil {
		t.Fatal("Generic() expected error for a sequence document")
	}
}
