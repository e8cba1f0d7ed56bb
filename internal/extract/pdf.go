// Package extract holds the I/O-side collaborators of the analysis core:
// PDF text extraction and invoice line-item table parsing. The core never
// depends on this package; results flow into it as plain strings and out of
// it as rows to persist.
package extract

import (
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"

	"invoiceflow/internal/util"
)

// TextExtractor supplies the raw text of one document.
type TextExtractor interface {
	ExtractText(path string) (string, error)
}

// PDFTextExtractor reads plain text from a PDF on disk.
type PDFTextExtractor struct{}

func (PDFTextExtractor) ExtractText(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	reader, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}
	buf := new(strings.Builder)
	if _, err := io.Copy(buf, reader); err != nil {
		return "", fmt.Errorf("read extracted text: %w", err)
	}
	text := util.SanitizeText(buf.String())
	if text == "" {
		return "", util.ErrNoExtractableText
	}
	return text, nil
}
