// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"

	"github.com/alnah/go-cv2pdf/internal/fileutil"
)

// Getenv reads an environment variable. Callers pass os.Getenv.
type Getenv func(string) string

// dockerEnvFile is created by Docker in every container.
var dockerEnvFile = "/.dockerenv"

// ciVars are set by common CI providers.
var ciVars = []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI"}

// ContainerSignal reports whether the process runs in a container and which
// signal gave it away.
func ContainerSignal(getenv Getenv) (bool, string) {
	if getenv("CV2PDF_CONTAINER") == "1" {
		return true, "CV2PDF_CONTAINER=1"
	}
	if fileutil.FileExists(dockerEnvFile) {
		return true, dockerEnvFile
	}
	if v := getenv("container"); v != "" {
		return true, "container=" + v
	}
	if getenv("KUBERNETES_SERVICE_HOST") != "" {
		return true, "KUBERNETES_SERVICE_HOST"
	}
	return false, ""
}

// InCI reports whether a CI provider variable is set.
func InCI(getenv Getenv) bool {
	for _, v := range ciVars {
		if getenv(v) != "" {
			return true
		}
	}
	return false
}

// ForBrowserConnect returns hints for browser launch errors.
// Detects CI/container environments and suggests relevant variables.
func ForBrowserConnect(getenv Getenv) string {
	var hints []string

	inContainer, _ := ContainerSignal(getenv)
	if (InCI(getenv) || inContainer) && getenv("ROD_NO_SANDBOX") != "1" {
		hints = append(hints, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}
	if getenv("ROD_BROWSER_BIN") == "" && getenv("CHROME_PATH") == "" {
		hints = append(hints, "set ROD_BROWSER_BIN (rod) or CHROME_PATH (chromedp) to use a local Chrome")
	}
	hints = append(hints, "run 'cv2pdf doctor' to check the setup")

	return formatHints(hints)
}

// ForTimeout returns a hint about increasing the PDF timeout.
func ForTimeout() string {
	return format("raise --timeout or pdf.timeout in the config file")
}

// ForConfigNotFound suggests --config and the user config location.
func ForConfigNotFound(userConfigPath string) string {
	hint := "use --config /path/to/file.yaml"
	if userConfigPath != "" {
		hint += " or create " + userConfigPath
	}
	return format(hint)
}

// ForDataFile lists the accepted data file formats.
func ForDataFile() string {
	return format("pass the résumé with --data; supported formats: .yaml, .yml, .toml")
}

// ForStylesheet explains how a stylesheet is located.
func ForStylesheet(builtIn []string) string {
	hint := "pass a .css path with --style"
	if len(builtIn) > 0 {
		hint += " or a built-in style: " + strings.Join(builtIn, ", ")
	}
	return format(hint)
}

// ForLanguage lists the supported output languages.
func ForLanguage(supported []string) string {
	if len(supported) == 0 {
		return ""
	}
	return format("supported languages: " + strings.Join(supported, ", "))
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check that --output is a directory and its parent is writable")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
