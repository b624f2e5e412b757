package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/charmbracelet/log"
	flag "github.com/spf13/pflag"

	cv2pdf "github.com/alnah/go-cv2pdf"
	"github.com/alnah/go-cv2pdf/internal/fileutil"
	"github.com/alnah/go-cv2pdf/internal/hints"
)

// Doctor statuses.
const (
	statusReady    = "ready"
	statusWarnings = "warnings"
	statusErrors   = "errors"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string      `json:"status"`
	Chrome   chromeInfo  `json:"chrome"`
	Env      envInfo     `json:"environment"`
	Project  projectInfo `json:"project"`
	Warnings []string    `json:"warnings,omitempty"`
	Errors   []string    `json:"errors,omitempty"`
}

// chromeInfo holds Chrome/Chromium detection results.
type chromeInfo struct {
	Found   bool   `json:"found"`
	Path    string `json:"path,omitempty"`
	Source  string `json:"source,omitempty"` // env variable or "lookup"
	Version string `json:"version,omitempty"`
	Sandbox bool   `json:"sandbox"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS            string `json:"os"`
	Arch          string `json:"arch"`
	Container     bool   `json:"container"`
	ContainerHint string `json:"container_hint,omitempty"`
	CI            bool   `json:"ci"`
}

// projectInfo describes the files a build would read and write.
type projectInfo struct {
	Config     string `json:"config,omitempty"`
	Data       string `json:"data"`
	DataValid  bool   `json:"data_valid"`
	Stylesheet string `json:"stylesheet"`
	OutputDir  string `json:"output_dir"`
	Writable   bool   `json:"output_writable"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runDoctorCmd(args []string, env *Environment) int {
	f := &doctorFlags{}
	fs := newDoctorFlagSet(f)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printDoctorUsage(env.Stdout)
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, "error:", err)
		return ExitUsage
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(env.Stderr, "error: unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		return ExitUsage
	}

	result := runDoctor(env, f.config)

	if f.json {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == statusErrors {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor(env *Environment, cfgName string) *doctorResult {
	result := &doctorResult{
		Status: statusReady,
		Env:    envInfo{OS: runtime.GOOS, Arch: runtime.GOARCH},
	}

	checkChrome(result, env)
	checkEnvironment(result, env)
	checkProject(result, env, cfgName)

	if len(result.Errors) > 0 {
		result.Status = statusErrors
	} else if len(result.Warnings) > 0 {
		result.Status = statusWarnings
	}
	return result
}

// checkChrome detects the browser each backend would start.
func checkChrome(result *doctorResult, env *Environment) {
	for _, v := range []string{"ROD_BROWSER_BIN", "CHROME_PATH"} {
		if p := env.Getenv(v); p != "" {
			result.Chrome.Path, result.Chrome.Source = p, v
			break
		}
	}
	if result.Chrome.Path == "" {
		p, found := env.LookBrowser()
		if !found {
			result.Errors = append(result.Errors,
				"Chrome/Chromium not found. Install Chrome or set ROD_BROWSER_BIN / CHROME_PATH (rod can also download Chromium on first use)")
			return
		}
		result.Chrome.Path, result.Chrome.Source = p, "lookup"
	}

	if !fileutil.FileExists(result.Chrome.Path) {
		result.Errors = append(result.Errors, fmt.Sprintf("Chrome not found at %s (%s)", result.Chrome.Path, result.Chrome.Source))
		return
	}
	result.Chrome.Found = true
	result.Chrome.Sandbox = env.Getenv("ROD_NO_SANDBOX") != "1"

	out, err := exec.Command(result.Chrome.Path, "--version").Output()
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Could not get Chrome version: %v", err))
		return
	}
	result.Chrome.Version = strings.TrimSpace(string(out))
}

// checkEnvironment detects container and CI environments.
func checkEnvironment(result *doctorResult, env *Environment) {
	result.Env.Container, result.Env.ContainerHint = hints.ContainerSignal(env.Getenv)
	result.Env.CI = hints.InCI(env.Getenv)

	if (result.Env.Container || result.Env.CI) && env.Getenv("ROD_NO_SANDBOX") != "1" {
		result.Warnings = append(result.Warnings,
			"Container/CI detected but ROD_NO_SANDBOX not set. Set ROD_NO_SANDBOX=1")
	}
}

// checkProject resolves the configuration a build would use and checks
// its inputs and output directory.
func checkProject(result *doctorResult, env *Environment, cfgName string) {
	f := &cliFlags{common: commonFlags{config: cfgName}, pdf: pdfFlags{margin: marginUnset, maxPages: maxPagesUnset}}
	cfg, err := resolveConfig(f, env, newLogger(io.Discard, log.ErrorLevel))
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Config: %v", err))
		return
	}

	result.Project.Config = cfgName
	result.Project.Data = cfg.Input.Data
	result.Project.Stylesheet = cfg.Style.Stylesheet
	result.Project.OutputDir = cfg.Output.Dir

	if _, err := cv2pdf.LoadResume(cfg.Input.Data); err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Data: %v", err))
	} else {
		result.Project.DataValid = true
	}

	if fileutil.IsFilePath(cfg.Style.Stylesheet) && !fileutil.FileExists(cfg.Style.Stylesheet) {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Stylesheet not found: %s", cfg.Style.Stylesheet))
	}

	result.Project.Writable = dirWritable(cfg.Output.Dir)
	if !result.Project.Writable {
		result.Errors = append(result.Errors, fmt.Sprintf("Output directory not writable: %s", cfg.Output.Dir))
	}
}

// dirWritable reports whether dir, or the nearest existing parent, accepts
// new files. Nothing is left behind.
func dirWritable(dir string) bool {
	for {
		info, err := os.Stat(dir)
		if err == nil {
			if !info.IsDir() {
				return false
			}
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return false
		}
		dir = parent
	}

	f, err := os.CreateTemp(dir, ".cv2pdf-doctor-*")
	if err != nil {
		return false
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	return true
}

// printDoctorResult outputs human-readable diagnostic results.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "cv2pdf doctor")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Chrome/Chromium")
	if r.Chrome.Found {
		fmt.Fprintf(w, "  [OK] Found at %s (%s)\n", r.Chrome.Path, r.Chrome.Source)
		if r.Chrome.Version != "" {
			fmt.Fprintf(w, "  [OK] Version: %s\n", r.Chrome.Version)
		}
		if r.Chrome.Sandbox {
			fmt.Fprintln(w, "  [OK] Sandbox: enabled")
		} else {
			fmt.Fprintln(w, "  [OK] Sandbox: disabled (ROD_NO_SANDBOX=1)")
		}
	} else {
		fmt.Fprintln(w, "  [ERROR] Not found")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.Env.OS, r.Env.Arch)
	if r.Env.Container {
		fmt.Fprintf(w, "  [OK] Container: detected (%s)\n", r.Env.ContainerHint)
	}
	if r.Env.CI {
		fmt.Fprintln(w, "  [OK] CI: detected")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Project")
	if r.Project.Data != "" {
		mark := "OK"
		if !r.Project.DataValid {
			mark = "WARN"
		}
		fmt.Fprintf(w, "  [%s] Data: %s\n", mark, r.Project.Data)
		fmt.Fprintf(w, "  [OK] Stylesheet: %s\n", r.Project.Stylesheet)
		if r.Project.Writable {
			fmt.Fprintf(w, "  [OK] Output: %s (writable)\n", r.Project.OutputDir)
		} else {
			fmt.Fprintf(w, "  [ERROR] Output: %s (not writable)\n", r.Project.OutputDir)
		}
	}
	fmt.Fprintln(w)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  [WARN] %s\n", warn)
		}
		fmt.Fprintln(w)
	}

	if len(r.Errors) > 0 {
		fmt.Fprintln(w, "Errors:")
		for _, err := range r.Errors {
			fmt.Fprintf(w, "  [ERROR] %s\n", err)
		}
		fmt.Fprintln(w)
	}

	switch r.Status {
	case statusReady:
		fmt.Fprintln(w, "Status: Ready to build")
	case statusWarnings:
		fmt.Fprintln(w, "Status: Ready with warnings")
	case statusErrors:
		fmt.Fprintln(w, "Status: Not ready (see errors above)")
	}
}
