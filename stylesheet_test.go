package cv2pdf

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

type stubLoader struct {
	styles map[string]string
}

func (s stubLoader) LoadStyle(name string) (string, error) {
	css, ok := s.styles[name]
	if !ok {
		return "", errors.New("style not found")
	}
	return css, nil
}

func (s stubLoader) LoadTemplate(string) (string, error) {
	return "", errors.New("no templates")
}

func TestLoadStylesheet(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cssPath := writeFile(t, dir, "style.css", "h1 { color: navy; }")
	loader := stubLoader{styles: map[string]string{"classic": "body{}"}}

	tests := []struct {
		name    string
		value   string
		loader  AssetLoader
		want    string
		wantErr error
	}{
		{"file path", cssPath, loader, "h1 { color: navy; }", nil},
		{"named style", "classic", loader, "body{}", nil},
		{"empty value", "", loader, "", ErrReadStylesheet},
		{"missing file", filepath.Join(dir, "missing.css"), loader, "", ErrReadStylesheet},
		{"unknown name", "fancy", loader, "", ErrReadStylesheet},
		{"name without loader", "classic", nil, "", ErrReadStylesheet},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := LoadStylesheet(tt.value, tt.loader)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("LoadStylesheet() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadStylesheet() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("LoadStylesheet() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoadStylesheet_BuiltIn(t *testing.T) {
	t.Parallel()

	loader, err := NewAssetLoader("")
	if err != nil {
		t.Fatal(err)
	}
	css, err := LoadStylesheet("classic", loader)
	if err != nil {
		t.Fatalf("LoadStylesheet() error = %v", err)
	}
	if !strings.Contains(css, ".sub-item") {
		t.Error("built-in stylesheet does not style sub-items")
	}
}
