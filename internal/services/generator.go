package services

import (
	"fmt"
	"os"
	"strings"

	"baliance.com/gooxml/document"
	"github.com/jung-kurt/gofpdf"
)

// DocumentGenerator renders plain text into downloadable files. Both
// renderers return the path of a uniquely named temporary file; the caller
// owns its deletion.
type DocumentGenerator interface {
	RenderPDF(text string) (string, error)
	RenderDOCX(text string) (string, error)
}

type documentGenerator struct{}

func NewDocumentGenerator() DocumentGenerator {
	return &documentGenerator{}
}

// RenderPDF draws the text line by line on a single Letter page in 10pt
// Helvetica. Lines are capped at 100 characters and content beyond the
// first page is silently lost.
func (g *documentGenerator) RenderPDF(text string) (string, error) {
	tmp, err := os.CreateTemp("", "resume-*.pdf")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	doc := gofpdf.New("P", "pt", "Letter", "")
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()
	doc.SetFont("Helvetica", "", 10)

	y := 42.0 // first baseline, 750pt above the bottom of a Letter page
	for _, line := range strings.Split(text, "\n") {
		if len(line) > 100 {
			line = line[:100]
		}
		doc.Text(40, y, line)
		y += 12
	}

	if err := doc.OutputFileAndClose(tmp.Name()); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to render PDF: %w", err)
	}
	return tmp.Name(), nil
}

// RenderDOCX writes the whole text as a single paragraph.
func (g *documentGenerator) RenderDOCX(text string) (string, error) {
	tmp, err := os.CreateTemp("", "resume-*.docx")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	doc := document.New()
	doc.AddParagraph().AddRun().AddText(text)

	if err := doc.SaveToFile(tmp.Name()); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to render DOCX: %w", err)
	}
	return tmp.Name(), nil
}
