package services

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"baliance.com/gooxml/document"
	"github.com/ledongthuc/pdf"
)

// TextExtractor turns uploaded document bytes into plain text.
type TextExtractor interface {
	Extract(data []byte, ext string) (string, error)
}

type textExtractor struct{}

func NewTextExtractor() TextExtractor {
	return &textExtractor{}
}

// Extract writes the bytes to a uniquely named temporary file so the
// decoders can work on a path, dispatches on the extension, and removes
// the file whether or not extraction succeeded.
func (e *textExtractor) Extract(data []byte, ext string) (string, error) {
	ext = strings.ToLower(ext)
	if ext != ".pdf" && ext != ".docx" {
		return "", fmt.Errorf("%w (got %q)", ErrUnsupportedType, ext)
	}

	tmp, err := os.CreateTemp("", "upload-*"+ext)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	var text string
	switch ext {
	case ".pdf":
		text, err = extractPDF(tmp.Name())
	case ".docx":
		text, err = extractDOCX(tmp.Name())
	}
	if err != nil {
		return "", fmt.Errorf("failed to extract %s text: %w", ext, err)
	}

	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyExtraction
	}
	return text, nil
}

func extractPDF(filePath string) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip unreadable pages, keep the rest
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n")
	}

	return textBuilder.String(), nil
}

// extractDOCX joins all paragraph texts with newlines, preserving order.
// The gooxml reader handles well-formed documents; anything it rejects is
// retried with a direct scan of word/document.xml inside the archive.
func extractDOCX(filePath string) (string, error) {
	doc, err := document.Open(filePath)
	if err != nil {
		return extractDOCXFallback(filePath)
	}

	var lines []string
	for _, para := range doc.Paragraphs() {
		var b strings.Builder
		for _, run := range para.Runs() {
			b.WriteString(run.Text())
		}
		lines = append(lines, b.String())
	}

	return strings.Join(lines, "\n"), nil
}

// extractDOCXFallback reads the file as a zip archive, finds
// word/document.xml and collects the text of <w:t> elements, inserting a
// newline at each paragraph boundary.
func extractDOCXFallback(filePath string) (string, error) {
	zr, err := zip.OpenReader(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX archive: %w", err)
	}
	defer zr.Close()

	var docXML io.ReadCloser
	for _, file := range zr.File {
		if file.Name == "word/document.xml" {
			docXML, err = file.Open()
			if err != nil {
				return "", fmt.Errorf("failed to open document.xml: %w", err)
			}
			break
		}
	}
	if docXML == nil {
		return "", fmt.Errorf("word/document.xml not found in docx")
	}
	defer docXML.Close()

	decoder := xml.NewDecoder(docXML)
	var b strings.Builder
	inText := false

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to parse document.xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			if t.Name.Local == "t" {
				inText = false
			}
			if t.Name.Local == "p" {
				b.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}

	return strings.TrimSuffix(b.String(), "\n"), nil
}
