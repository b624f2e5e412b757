package main

import (
	"fmt"
	"io"
)

type usageFunc func(io.Writer)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cv2pdf [command] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Render the résumé to HTML and PDF (default)")
	fmt.Fprintln(w, "  validate   Check the config and data file without rendering")
	fmt.Fprintln(w, "  doctor     Check the browser and project setup")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w, "  completion Generate shell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'cv2pdf help <command>' for details on a specific command.")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cv2pdf build [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render one cv_{lang}.html and cv_{lang}.pdf per language.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -d, --data <path>         Data file: .yaml, .yml or .toml (default cv.yaml)")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default output)")
	fmt.Fprintln(w, "  -l, --lang <codes>        Languages: fr, en (repeatable or comma-separated)")
	fmt.Fprintln(w, "      --html-only           Write HTML only, skip PDF")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Content:")
	fmt.Fprintln(w, "      --style <s>           Stylesheet path or built-in name (default style.css)")
	fmt.Fprintln(w, "      --photo <path>        Photo path; a missing file is skipped (default photo.jpg)")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory overriding built-in templates and styles")
	fmt.Fprintln(w, "      --with-certifications Include the certifications section")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "PDF:")
	fmt.Fprintln(w, "      --backend <s>         Backend: rod, chromedp (default rod)")
	fmt.Fprintln(w, "  -t, --timeout <d>         Per-document timeout (default 60s)")
	fmt.Fprintln(w, "  -p, --page-size <s>       Page size: letter, a4, legal (default a4)")
	fmt.Fprintln(w, "      --margin <f>          Margin in inches (0-2)")
	fmt.Fprintln(w, "      --max-pages <n>       Warn when a PDF is longer (0 = no check)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug output")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  CV2PDF_CONFIG, CV2PDF_DATA, CV2PDF_STYLE, CV2PDF_PHOTO, CV2PDF_OUTPUT_DIR,")
	fmt.Fprintln(w, "  CV2PDF_LANGUAGES, CV2PDF_BACKEND, CV2PDF_TIMEOUT override the config file.")
}

// printValidateUsage prints usage for the validate command.
func printValidateUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cv2pdf validate [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Load the config and data file and report schema errors.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -d, --data <path>         Data file: .yaml, .yml or .toml")
	fmt.Fprintln(w, "  -l, --lang <codes>        Languages to check")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cv2pdf doctor [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check Chrome, the runtime environment and the project files.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --json                Machine-readable output")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "validate":
		printValidateUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: cv2pdf version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "completion":
		printCompletionUsage(env.Stdout)
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: cv2pdf help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
