// Package pdfinfo inspects PDF documents produced by the renderer.
package pdfinfo

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// ErrUnreadablePDF is returned when the bytes cannot be parsed as a PDF.
var ErrUnreadablePDF = errors.New("unreadable PDF")

// PageCount returns the number of pages in data.
func PageCount(data []byte) (n int, err error) {
	if len(data) == 0 {
		return 0, fmt.Errorf("%w: empty input", ErrUnreadablePDF)
	}

	// The reader panics on some malformed trailers instead of returning an error.
	defer func() {
		if r := recover(); r != nil {
			n, err = 0, fmt.Errorf("%w: %v", ErrUnreadablePDF, r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnreadablePDF, err)
	}
	return r.NumPage(), nil
}
