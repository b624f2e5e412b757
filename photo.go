package cv2pdf

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-cv2pdf/internal/fileutil"
)

const defaultPhotoMIME = "image/jpeg"

var photoMIMETypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

// EmbedPhoto returns the image at path as a base64 data URI. The photo is
// optional: an empty path, a missing file or an unreadable file all report
// ok == false.
func EmbedPhoto(path string) (uri string, ok bool) {
	if !fileutil.FileExists(path) {
		return "", false
	}

	data, err := os.ReadFile(path) // #nosec G304 -- photo path is user-provided
	if err != nil {
		return "", false
	}

	mime, known := photoMIMETypes[strings.ToLower(filepath.Ext(path))]
	if !known {
		mime = defaultPhotoMIME
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), true
}
