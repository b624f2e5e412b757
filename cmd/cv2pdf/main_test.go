package main

// Notes:
// - runMain: exit codes and output for every command. PDFs come from a fake
//   backend; browser-backed runs are out of scope here.

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	cv2pdf "github.com/alnah/go-cv2pdf"
)

// ---------------------------------------------------------------------------
// TestRunMain - Main entry point exit codes
// ---------------------------------------------------------------------------

func TestRunMain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		args         []string
		wantCode     int
		wantInStdout []string
		wantInStderr []string
	}{
		{
			name:         "version command exits 0",
			args:         []string{"cv2pdf", "version"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"cv2pdf dev"},
		},
		{
			name:         "help command exits 0",
			args:         []string{"cv2pdf", "help"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: cv2pdf", "Commands:"},
		},
		{
			name:         "help build shows build help",
			args:         []string{"cv2pdf", "help", "build"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: cv2pdf build", "--with-certifications"},
		},
		{
			name:         "help unknown exits with ExitUsage",
			args:         []string{"cv2pdf", "help", "deploy"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"Unknown command: deploy"},
		},
		{
			name:         "--help flag shows build help",
			args:         []string{"cv2pdf", "--help"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: cv2pdf build"},
		},
		{
			name:         "unknown command exits with ExitUsage",
			args:         []string{"cv2pdf", "deploy"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"unknown command: deploy"},
		},
		{
			name:         "unknown flag exits with ExitUsage",
			args:         []string{"cv2pdf", "build", "--colour"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"unknown flag", "Usage: cv2pdf build"},
		},
		{
			name:         "positional argument exits with ExitUsage",
			args:         []string{"cv2pdf", "build", "-d", "cv.yaml", "extra"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"unexpected arguments: extra"},
		},
		{
			name:         "missing data file exits with ExitIO",
			args:         []string{"cv2pdf", "build", "-d", filepath.Join(os.TempDir(), "no-such-cv-file.yaml")},
			wantCode:     ExitIO,
			wantInStderr: []string{"failed to read data file"},
		},
		{
			name:     "missing named config exits with ExitUsage",
			args:     []string{"cv2pdf", "build", "-c", "no-such-config-name-xyz"},
			wantCode: ExitUsage,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := testEnv(nil, &fakePDF{})
			code := runMain(tt.args, env)

			if code != tt.wantCode {
				t.Errorf("runMain() = %d, want %d\nstderr: %s", code, tt.wantCode, stderr.String())
			}
			for _, want := range tt.wantInStdout {
				if !strings.Contains(stdout.String(), want) {
					t.Errorf("stdout should contain %q, got %q", want, stdout.String())
				}
			}
			for _, want := range tt.wantInStderr {
				if !strings.Contains(stderr.String(), want) {
					t.Errorf("stderr should contain %q, got %q", want, stderr.String())
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRunMain_Build - End-to-end build with a fake backend
// ---------------------------------------------------------------------------

func TestRunMain_Build(t *testing.T) {
	t.Parallel()

	ws := newWorkspace(t)
	pdf := &fakePDF{}
	env, stdout, stderr := testEnv(nil, pdf)

	code := runMain([]string{"cv2pdf", "-c", ws.config}, env)
	if code != ExitSuccess {
		t.Fatalf("runMain() = %d, stderr: %s", code, stderr.String())
	}

	for _, name := range []string{"cv_fr.html", "cv_fr.pdf", "cv_en.html", "cv_en.pdf"} {
		path := filepath.Join(ws.out, name)
		if _, err := os.Stat(path); err != nil {
			t.Errorf("%s not written: %v", name, err)
		}
		if !strings.Contains(stdout.String(), path) {
			t.Errorf("stdout does not list %s", path)
		}
	}
	if pdf.count() != 2 {
		t.Errorf("backend called %d times, want 2", pdf.count())
	}

	en, err := os.ReadFile(filepath.Join(ws.out, "cv_en.html"))
	if err != nil {
		t.Fatal(err)
	}
	for _, title := range []string{"Skills", "Work Experience", "Education", "Projects"} {
		if !strings.Contains(string(en), title) {
			t.Errorf("cv_en.html missing %q", title)
		}
	}
	for _, title := range []string{"Compétences", "Expérience professionnelle", "Formation", "Projets"} {
		if strings.Contains(string(en), title) {
			t.Errorf("cv_en.html contains %q", title)
		}
	}
	if !strings.Contains(string(en), "body { margin: 0; }") {
		t.Error("stylesheet not inlined")
	}
	if strings.Contains(string(en), "Royal Society") {
		t.Error("certifications included by default")
	}

	// A second run over the existing output directory succeeds.
	env2, _, stderr2 := testEnv(nil, &fakePDF{})
	if code := runMain([]string{"cv2pdf", "build", "-c", ws.config}, env2); code != ExitSuccess {
		t.Fatalf("second run = %d, stderr: %s", code, stderr2.String())
	}
}

func TestRunMain_BuildFlags(t *testing.T) {
	t.Parallel()

	ws := newWorkspace(t)
	pdf := &fakePDF{}
	env, stdout, stderr := testEnv(nil, pdf)
	out := filepath.Join(ws.dir, "flags-out")

	code := runMain([]string{
		"cv2pdf", "build",
		"-c", ws.config,
		"-o", out,
		"-l", "en",
		"--html-only",
		"--with-certifications",
	}, env)
	if code != ExitSuccess {
		t.Fatalf("runMain() = %d, stderr: %s", code, stderr.String())
	}

	if pdf.count() != 0 {
		t.Error("backend called in HTML-only mode")
	}
	if _, err := os.Stat(filepath.Join(out, "cv_fr.html")); !os.IsNotExist(err) {
		t.Error("fr rendered although only en was requested")
	}
	en, err := os.ReadFile(filepath.Join(out, "cv_en.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(en), "Royal Society") {
		t.Error("--with-certifications did not include the section")
	}
	if strings.Contains(stdout.String(), ".pdf") {
		t.Errorf("stdout lists a PDF in HTML-only mode: %q", stdout.String())
	}
}

func TestRunMain_BuildErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     func(ws workspace) []string
		pdfErr   error
		wantCode int
	}{
		{
			name:     "unsupported language",
			args:     func(ws workspace) []string { return []string{"cv2pdf", "-c", ws.config, "-l", "de"} },
			wantCode: ExitUsage,
		},
		{
			name:     "malformed language",
			args:     func(ws workspace) []string { return []string{"cv2pdf", "-c", ws.config, "-l", "english"} },
			wantCode: ExitUsage,
		},
		{
			name:     "unknown backend",
			args:     func(ws workspace) []string { return []string{"cv2pdf", "-c", ws.config, "--backend", "prince"} },
			wantCode: ExitUsage,
		},
		{
			name:     "invalid page size",
			args:     func(ws workspace) []string { return []string{"cv2pdf", "-c", ws.config, "-p", "a3"} },
			wantCode: ExitUsage,
		},
		{
			name: "missing stylesheet",
			args: func(ws workspace) []string {
				return []string{"cv2pdf", "-c", ws.config, "--style", filepath.Join(ws.dir, "none.css")}
			},
			wantCode: ExitIO,
		},
		{
			name:     "unknown built-in style",
			args:     func(ws workspace) []string { return []string{"cv2pdf", "-c", ws.config, "--style", "fancy"} },
			wantCode: ExitIO,
		},
		{
			name:     "browser failure",
			args:     func(ws workspace) []string { return []string{"cv2pdf", "-c", ws.config} },
			pdfErr:   fmt.Errorf("%w: chrome not found", cv2pdf.ErrBrowserConnect),
			wantCode: ExitBrowser,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ws := newWorkspace(t)
			env, _, stderr := testEnv(nil, &fakePDF{err: tt.pdfErr})

			if code := runMain(tt.args(ws), env); code != tt.wantCode {
				t.Errorf("runMain() = %d, want %d\nstderr: %s", code, tt.wantCode, stderr.String())
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRunMain_Validate - validate command
// ---------------------------------------------------------------------------

func TestRunMain_Validate(t *testing.T) {
	t.Parallel()

	ws := newWorkspace(t)
	invalid := filepath.Join(ws.dir, "invalid.yaml")
	mustWrite(t, invalid, "meta:\n  email: x@example.com\n")

	tests := []struct {
		name         string
		args         []string
		wantCode     int
		wantInStdout string
	}{
		{"valid data", []string{"cv2pdf", "validate", "-c", ws.config}, ExitSuccess, "valid (Ada Lovelace)"},
		{"toml data", []string{"cv2pdf", "validate", "-c", ws.config, "-d", filepath.Join("..", "..", "testdata", "cv.toml")}, ExitSuccess, "valid"},
		{"schema error", []string{"cv2pdf", "validate", "-c", ws.config, "-d", invalid}, ExitUsage, ""},
		{"unsupported language", []string{"cv2pdf", "validate", "-c", ws.config, "-l", "es"}, ExitUsage, ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := testEnv(nil, &fakePDF{})
			if code := runMain(tt.args, env); code != tt.wantCode {
				t.Fatalf("runMain() = %d, want %d\nstderr: %s", code, tt.wantCode, stderr.String())
			}
			if !strings.Contains(stdout.String(), tt.wantInStdout) {
				t.Errorf("stdout = %q, want %q", stdout.String(), tt.wantInStdout)
			}
		})
	}
	if _, err := os.Stat(ws.out); !os.IsNotExist(err) {
		t.Error("validate created the output directory")
	}
}
