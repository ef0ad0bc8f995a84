// Package textextract turns raw document bytes into a page-delimited plain
// text representation. Each page's text is prefixed with a 1-based page
// marker so downstream consumers can reason about page boundaries.
package textextract

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"
)

type ExtractedText struct {
	Content     string
	Pages       int
	ExtractedAt time.Time
}

// PageMarker returns the marker line prefixed to the given 1-based page.
func PageMarker(page int) string {
	return fmt.Sprintf("--- Page %d ---", page)
}

func Extract(data io.ReaderAt, size int64, fileType string) (*ExtractedText, error) {
	switch strings.ToLower(fileType) {
	case ".pdf", "pdf", "application/pdf":
		return extractPDF(data, size)
	case ".docx", "docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document":
		return extractDOCX(data, size)
	case ".txt", "txt", "text/plain":
		return extractTXT(data, size)
	default:
		return nil, fmt.Errorf("unsupported file type: %s", fileType)
	}
}

func SupportedTypes() []string {
	return []string{".pdf", ".docx", ".txt"}
}

func extractPDF(data io.ReaderAt, size int64) (*ExtractedText, error) {
	reader, err := pdf.NewReader(data, size)
	if err != nil {
		return nil, fmt.Errorf("open PDF: %w", err)
	}

	numPages := reader.NumPage()
	if numPages == 0 {
		return nil, fmt.Errorf("PDF has no pages")
	}

	var buf strings.Builder
	for i := 1; i <= numPages; i++ {
		buf.WriteString(PageMarker(i))
		buf.WriteString("\n")

		// A page that cannot be decoded contributes an empty string but
		// never aborts extraction of the pages after it.
		page := reader.Page(i)
		if page.V.IsNull() {
			buf.WriteString("\n")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			buf.WriteString("\n")
			continue
		}
		buf.WriteString(normalizeSpaces(text))
		buf.WriteString("\n")
	}

	return &ExtractedText{
		Content:     buf.String(),
		Pages:       numPages,
		ExtractedAt: time.Now().UTC(),
	}, nil
}

func extractDOCX(data io.ReaderAt, size int64) (*ExtractedText, error) {
	reader, err := zip.NewReader(data, size)
	if err != nil {
		return nil, fmt.Errorf("open DOCX: %w", err)
	}

	var buf strings.Builder
	buf.WriteString(PageMarker(1))
	buf.WriteString("\n")

	found := false
	for _, f := range reader.File {
		if filepath.Base(f.Name) != "document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open document.xml: %w", err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("read document.xml: %w", err)
		}
		buf.WriteString(stripXMLTags(string(content)))
		buf.WriteString("\n")
		found = true
		break
	}
	if !found {
		return nil, fmt.Errorf("DOCX missing document.xml")
	}

	return &ExtractedText{
		Content:     buf.String(),
		Pages:       1,
		ExtractedAt: time.Now().UTC(),
	}, nil
}

func extractTXT(data io.ReaderAt, size int64) (*ExtractedText, error) {
	buf := make([]byte, size)
	if _, err := data.ReadAt(buf, 0); err != nil && err != io.EOF {
		return nil, fmt.Errorf("read TXT: %w", err)
	}

	return &ExtractedText{
		Content:     PageMarker(1) + "\n" + string(bytes.TrimSpace(buf)) + "\n",
		Pages:       1,
		ExtractedAt: time.Now().UTC(),
	}, nil
}

// normalizeSpaces joins the page's textual tokens with single spaces.
func normalizeSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func stripXMLTags(s string) string {
	var result strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
			result.WriteRune(' ')
		case !inTag:
			result.WriteRune(r)
		}
	}
	return normalizeSpaces(result.String())
}
