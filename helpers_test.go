package cv2pdf

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

const testCSS = "body { font-family: serif; }"

// loadFixture decodes testdata/cv.yaml.
func loadFixture(t *testing.T) *Resume {
	t.Helper()
	r, err := LoadResume(filepath.Join("testdata", "cv.yaml"))
	if err != nil {
		t.Fatalf("LoadResume() error = %v", err)
	}
	return r
}

// writeFile writes content under dir, creating parents.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// fakePDFRenderer records rendered paths and returns fixed bytes.
type fakePDFRenderer struct {
	mu     sync.Mutex
	paths  []string
	output []byte
	err    error
	closed bool
}

var _ PDFRenderer = (*fakePDFRenderer)(nil)

func (f *fakePDFRenderer) RenderFile(ctx context.Context, htmlPath string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.paths = append(f.paths, htmlPath)
	if f.err != nil {
		return nil, f.err
	}
	if f.output == nil {
		return []byte("%PDF-1.4 fake"), nil
	}
	return f.output, nil
}

func (f *fakePDFRenderer) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakePDFRenderer) calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.paths...)
}
