package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	cv2pdf "github.com/alnah/go-cv2pdf"
)

// fakePDF is a PDFRenderer that never starts a browser.
type fakePDF struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (f *fakePDF) RenderFile(_ context.Context, _ string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-1.4 mock"), nil
}

func (f *fakePDF) Close() error { return nil }

func (f *fakePDF) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// testEnv returns an environment with captured output, the given variables,
// and pdf as backend.
func testEnv(vars map[string]string, pdf *fakePDF) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	env := &Environment{
		Stdout: &stdout,
		Stderr: &stderr,
		Getenv: func(k string) string { return vars[k] },
		Environ: func() []string {
			out := make([]string, 0, len(vars))
			for k, v := range vars {
				out = append(out, k+"="+v)
			}
			return out
		},
		NewPDFRenderer: func(backend string, page *cv2pdf.PageSettings, timeout time.Duration) (cv2pdf.PDFRenderer, error) {
			// Validate the same settings the real constructor would.
			if _, err := cv2pdf.NewPDFRenderer(backend, page, timeout); err != nil {
				return nil, err
			}
			return pdf, nil
		},
		LookBrowser: func() (string, bool) { return "", false },
	}
	return env, &stdout, &stderr
}

// workspace holds a data file, stylesheet and config in a temp directory.
type workspace struct {
	dir    string
	data   string
	style  string
	config string
	out    string
}

func newWorkspace(t *testing.T) workspace {
	t.Helper()
	dir := t.TempDir()

	fixture, err := os.ReadFile(filepath.Join("..", "..", "testdata", "cv.yaml"))
	if err != nil {
		t.Fatal(err)
	}

	ws := workspace{
		dir:    dir,
		data:   filepath.Join(dir, "cv.yaml"),
		style:  filepath.Join(dir, "style.css"),
		config: filepath.Join(dir, "cv2pdf.yaml"),
		out:    filepath.Join(dir, "output"),
	}
	mustWrite(t, ws.data, string(fixture))
	mustWrite(t, ws.style, "body { margin: 0; }")
	mustWrite(t, ws.config, "input:\n  data: "+ws.data+"\n  photo: "+filepath.Join(dir, "photo.jpg")+
		"\nstyle:\n  stylesheet: "+ws.style+"\noutput:\n  dir: "+ws.out+"\n")
	return ws
}

func mustWrite(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
