package extract

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
	"go.uber.org/zap"
)

const (
	MimePDF  = "application/pdf"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// ErrUnsupportedType is returned for mime types other than PDF and DOCX.
var ErrUnsupportedType = errors.New("unsupported file type")

// Extractor converts uploaded document bytes into plain text.
// Libraries used: github.com/ledongthuc/pdf (PDF) and github.com/nguyenthenguyen/docx (DOCX).
type Extractor struct {
	Log *zap.Logger
}

// Parse extracts plain text from the payload based on its declared mime type.
func (e Extractor) Parse(data []byte, mimeType string) (string, error) {
	switch normalizeMimeType(mimeType) {
	case MimePDF:
		return e.parsePDF(data)
	case MimeDOCX:
		return parseDOCX(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, mimeType)
	}
}

// parsePDF extracts text page by page. Pages that fail to parse are
// skipped so that one damaged page does not lose the rest of the
// document; only a completely unreadable document is an error.
func (e Extractor) parsePDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		text, err := pageText(reader, i)
		if err != nil {
			e.logger().Warn("pdf page skipped", zap.Int("page", i), zap.Error(err))
			continue
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String()), nil
}

// pageText isolates a single page extraction. ledongthuc/pdf can panic
// on damaged xref tables, so the recover keeps the skip policy intact.
func pageText(reader *pdf.Reader, n int) (text string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("page %d: %v", n, rec)
		}
	}()

	page := reader.Page(n)
	if page.V.IsNull() {
		return "", fmt.Errorf("page %d: missing content", n)
	}
	return page.GetPlainText(nil)
}

func parseDOCX(data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty docx data")
	}
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}
	defer doc.Close()

	return strings.TrimSpace(stripDocxXML(doc.Editable().GetContent())), nil
}

func normalizeMimeType(mimeType string) string {
	return strings.ToLower(strings.TrimSpace(strings.Split(mimeType, ";")[0]))
}

func (e Extractor) logger() *zap.Logger {
	if e.Log != nil {
		return e.Log
	}
	return zap.NewNop()
}
