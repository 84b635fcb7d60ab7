package services

import (
	"os"
	"strings"
	"testing"

	"baliance.com/gooxml/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPDF_ProducesSinglePageFile(t *testing.T) {
	generator := NewDocumentGenerator()

	path, err := generator.RenderPDF("line one\nline two\n" + strings.Repeat("w", 180))
	require.NoError(t, err)
	defer os.Remove(path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF-"), "missing PDF header")
	assert.NotEmpty(t, data)
}

func TestRenderDOCX_SingleParagraph(t *testing.T) {
	generator := NewDocumentGenerator()

	path, err := generator.RenderDOCX("whole resume as one paragraph\nwith embedded newline")
	require.NoError(t, err)
	defer os.Remove(path)

	doc, err := document.Open(path)
	require.NoError(t, err)

	var text strings.Builder
	for _, para := range doc.Paragraphs() {
		for _, run := range para.Runs() {
			text.WriteString(run.Text())
		}
	}
	assert.Contains(t, text.String(), "whole resume as one paragraph")
}

func TestRenderers_UseUniqueTempFiles(t *testing.T) {
	generator := NewDocumentGenerator()

	first, err := generator.RenderPDF("a")
	require.NoError(t, err)
	defer os.Remove(first)

	second, err := generator.RenderPDF("b")
	require.NoError(t, err)
	defer os.Remove(second)

	assert.NotEqual(t, first, second)
}
