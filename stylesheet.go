package cv2pdf

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/alnah/go-cv2pdf/internal/fileutil"
)

// LoadStylesheet returns stylesheet text. A value that looks like a path
// ("style.css", "./themes/cv.css") is read from disk and must exist; any
// other value names a style provided by loader.
func LoadStylesheet(nameOrPath string, loader AssetLoader) (string, error) {
	if nameOrPath == "" {
		return "", fmt.Errorf("%w: no stylesheet configured", ErrReadStylesheet)
	}

	if fileutil.IsFilePath(nameOrPath) {
		data, err := os.ReadFile(nameOrPath) // #nosec G304 -- stylesheet path is user-provided
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return "", fmt.Errorf("%w: %s: file not found", ErrReadStylesheet, nameOrPath)
			}
			return "", fmt.Errorf("%w: %s: %v", ErrReadStylesheet, nameOrPath, err)
		}
		return string(data), nil
	}

	if loader == nil {
		return "", fmt.Errorf("%w: no asset loader for style %q", ErrReadStylesheet, nameOrPath)
	}
	css, err := loader.LoadStyle(nameOrPath)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadStylesheet, err)
	}
	return css, nil
}
