package ingestion

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// UnsupportedTypeError signals an upload in a format the boundary
// does not accept. Nothing is mutated when one is returned.
type UnsupportedTypeError struct {
	Filename string
	MIMEType string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported file type: %s (%s)", e.Filename, e.MIMEType)
}

// ExtractionError signals a file in an accepted format that could not
// be read.
type ExtractionError struct {
	Filename string
	Cause    error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract text from %s: %v", e.Filename, e.Cause)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// Upload is the boundary's output: either extracted plain text, or
// the original bytes passed through for the backend to read directly.
type Upload struct {
	Filename string
	// Text is set for formats extracted locally.
	Text string
	// Data/MIMEType are set for binary pass-through formats.
	Data     []byte
	MIMEType string
}

// PassThrough reports whether the content goes to the backend as
// binary instead of text.
func (u Upload) PassThrough() bool {
	return u.MIMEType != ""
}

// Accept routes an uploaded file by extension: word-processor, HTML
// and text formats are extracted locally; PDF and image formats pass
// through as binary. Anything else is an UnsupportedTypeError.
func Accept(filename string, content []byte) (Upload, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".docx":
		text, err := extractDocxText(content)
		if err != nil {
			return Upload{}, &ExtractionError{Filename: filename, Cause: err}
		}
		return Upload{Filename: filename, Text: CleanText(text)}, nil

	case ".pdf":
		// Extraction is best-effort: scanned PDFs yield no text, so
		// fall back to sending the bytes for the backend to read.
		text, err := extractPDFText(content)
		if err == nil && strings.TrimSpace(text) != "" {
			return Upload{Filename: filename, Text: CleanText(text)}, nil
		}
		return Upload{Filename: filename, Data: content, MIMEType: "application/pdf"}, nil

	case ".txt", ".md":
		return Upload{Filename: filename, Text: CleanText(string(content))}, nil

	case ".html", ".htm":
		text, err := extractHTMLText(content)
		if err != nil {
			return Upload{}, &ExtractionError{Filename: filename, Cause: err}
		}
		return Upload{Filename: filename, Text: CleanText(text)}, nil

	case ".png":
		return Upload{Filename: filename, Data: content, MIMEType: "image/png"}, nil

	case ".jpg", ".jpeg":
		return Upload{Filename: filename, Data: content, MIMEType: "image/jpeg"}, nil

	default:
		return Upload{}, &UnsupportedTypeError{
			Filename: filename,
			MIMEType: strings.TrimPrefix(filepath.Ext(filename), "."),
		}
	}
}

func extractPDFText(content []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var textBuilder strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, _ := page.GetPlainText(nil)
		textBuilder.WriteString(text)
		textBuilder.WriteString("\n")
	}
	return textBuilder.String(), nil
}

func extractDocxText(content []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return flattenDocxXML(doc.Editable().GetContent()), nil
}

// flattenDocxXML reduces raw document markup to plain text, turning
// paragraph boundaries into newlines.
func flattenDocxXML(content string) string {
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	var sb strings.Builder
	inTag := false
	for _, r := range content {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func extractHTMLText(content []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("failed to parse html: %w", err)
	}
	doc.Find("script, style").Remove()

	var sb strings.Builder
	doc.Find("body").Each(func(_ int, sel *goquery.Selection) {
		sb.WriteString(sel.Text())
	})
	if sb.Len() == 0 {
		return doc.Text(), nil
	}
	return sb.String(), nil
}
