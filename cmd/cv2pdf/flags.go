package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"
)

// ErrUsage marks command-line mistakes.
var ErrUsage = errors.New("invalid usage")

// Sentinels for numeric flags where zero is a valid value.
const (
	maxPagesUnset = -1
	marginUnset   = -1.0
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// inputFlags locate the source files.
type inputFlags struct {
	data  string
	style string
	photo string
}

// pdfFlags control the browser backend.
type pdfFlags struct {
	backend  string
	timeout  string
	pageSize string
	margin   float64
	maxPages int
}

// cliFlags holds all flags of the build and validate commands.
type cliFlags struct {
	common             commonFlags
	input              inputFlags
	pdf                pdfFlags
	output             string
	langs              []string
	assetPath          string
	htmlOnly           bool
	withCertifications bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug output")
}

// addInputFlags adds source file flags to a FlagSet.
func addInputFlags(fs *flag.FlagSet, f *inputFlags) {
	fs.StringVarP(&f.data, "data", "d", "", "résumé data file (.yaml, .yml, .toml)")
	fs.StringVar(&f.style, "style", "", "stylesheet path or built-in style name")
	fs.StringVar(&f.photo, "photo", "", "photo path (optional)")
}

// addPDFFlags adds browser flags to a FlagSet.
func addPDFFlags(fs *flag.FlagSet, f *pdfFlags) {
	fs.StringVar(&f.backend, "backend", "", "PDF backend: rod, chromedp")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "per-document PDF timeout (e.g., 30s, 2m)")
	fs.StringVarP(&f.pageSize, "page-size", "p", "", "page size: letter, a4, legal")
	fs.Float64Var(&f.margin, "margin", marginUnset, "margin in inches (0-2)")
	fs.IntVar(&f.maxPages, "max-pages", maxPagesUnset, "warn when a PDF has more pages (0 = no check)")
}

// newFlagSet registers the build and validate flags into f. Completion
// scripts are generated from the same set.
func newFlagSet(name string, f *cliFlags) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	addCommonFlags(fs, &f.common)
	addInputFlags(fs, &f.input)
	addPDFFlags(fs, &f.pdf)
	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.StringSliceVarP(&f.langs, "lang", "l", nil, "languages to render (repeatable or comma-separated)")
	fs.StringVar(&f.assetPath, "asset-path", "", "directory overriding built-in templates and styles")
	fs.BoolVar(&f.htmlOnly, "html-only", false, "write HTML only, skip PDF")
	fs.BoolVar(&f.withCertifications, "with-certifications", false, "include the certifications section")
	return fs
}

// parseFlags parses command flags. Positional arguments are rejected.
func parseFlags(name string, args []string) (*cliFlags, error) {
	f := &cliFlags{}
	fs := newFlagSet(name, f)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected arguments: %s", ErrUsage, strings.Join(fs.Args(), " "))
	}
	if f.common.quiet && f.common.verbose {
		return nil, fmt.Errorf("%w: --quiet and --verbose are mutually exclusive", ErrUsage)
	}
	return f, nil
}

// doctorFlags holds the doctor command flags.
type doctorFlags struct {
	config string
	json   bool
}

func newDoctorFlagSet(f *doctorFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("doctor", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVar(&f.json, "json", false, "machine-readable output")
	return fs
}
