// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdftext extracts the linear text stream of a PDF as cleaned lines.
// Layout and columns are not modeled; parsers downstream only see the
// per-page text in page order.
package pdftext

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/chombe87/vrtic/internal/textutil"
)

// Extractor turns raw PDF bytes into cleaned, non-empty text lines.
// The production implementation parses real PDFs; tests supply fakes.
type Extractor interface {
	Lines(data []byte) ([]string, error)
}

// Reader is the production Extractor backed by the pure-Go pdf package.
type Reader struct{}

// NewReader returns the production PDF line extractor.
func NewReader() *Reader {
	return &Reader{}
}

// Lines extracts each page's plain text in page order, splits it into lines,
// collapses whitespace, and drops blanks.
func (r *Reader) Lines(data []byte) (lines []string, err error) {
	// The pdf package panics on some malformed cross-reference tables;
	// surface that as an error instead of killing the run.
	defer func() {
		if rec := recover(); rec != nil {
			lines, err = nil, fmt.Errorf("reading PDF: %v", rec)
		}
	}()

	doc, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}

	for i := 1; i <= doc.NumPage(); i++ {
		page := doc.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("extracting text from page %d: %w", i, err)
		}
		for _, raw := range strings.Split(text, "\n") {
			if line := textutil.CollapseWhitespace(raw); line != "" {
				lines = append(lines, line)
			}
		}
	}
	return lines, nil
}
