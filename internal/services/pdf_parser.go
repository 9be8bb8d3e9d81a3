package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
	"go.uber.org/zap"

	"alfredoptarigan/ats-screener/internal/logger"
)

// UnreadableText stands in for a document that could not be decoded, so
// scoring always has a string to work on.
const UnreadableText ResumeText = "error reading pdf"

var ErrMalformedDocument = errors.New("malformed document")

// ResumeText is lowercase plain text extracted from an uploaded résumé.
type ResumeText string

// Extraction is the outcome of Extract. Text is always usable; Err records
// why the sentinel was substituted.
type Extraction struct {
	Text ResumeText
	Err  error
}

func (e Extraction) Unreadable() bool {
	return e.Err != nil
}

type TextExtractor interface {
	Extract(ctx context.Context, filename string, data []byte) Extraction
}

type textExtractor struct{}

func NewTextExtractor() TextExtractor {
	return &textExtractor{}
}

// Extract never fails: undecodable input yields UnreadableText.
func (p *textExtractor) Extract(ctx context.Context, filename string, data []byte) Extraction {
	text, err := p.extract(filename, data)
	if err != nil {
		logger.Warn(ctx, "⚠️  Could not read résumé, scoring placeholder text",
			zap.String("filename", filename),
			zap.Int("bytes", len(data)),
			zap.Error(err),
		)
		return Extraction{Text: UnreadableText, Err: err}
	}

	return Extraction{Text: ResumeText(strings.ToLower(text))}
}

func (p *textExtractor) extract(filename string, data []byte) (text string, err error) {
	// ledongthuc/pdf panics on some malformed streams.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%w: %v", ErrMalformedDocument, r)
		}
	}()

	if strings.EqualFold(filepath.Ext(filename), ".docx") {
		return extractDOCXText(data)
	}
	return extractPDFText(data)
}

func extractPDFText(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to read page %d: %w", pageIndex, err)
		}

		textBuilder.WriteString(text)
	}

	return textBuilder.String(), nil
}

var (
	docxParagraphEnd = regexp.MustCompile(`</w:p>`)
	docxTag          = regexp.MustCompile(`<[^>]*>`)
)

func extractDOCXText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	content = docxParagraphEnd.ReplaceAllString(content, "\n")
	content = docxTag.ReplaceAllString(content, "")

	return html.UnescapeString(content), nil
}
