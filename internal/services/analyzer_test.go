package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cvalchemist/resume-analyzer/internal/cache"
)

type fakeLLM struct {
	reply      string
	err        error
	calls      int
	lastPrompt string
}

func (f *fakeLLM) Complete(_ context.Context, prompt string) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

type stubExtractor struct {
	text string
	err  error
}

func (s *stubExtractor) Extract(_ []byte, _ string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.text, nil
}

const scoredReply = `{"score": 85, "feedback": ["Great use of action verbs.", "Add a summary section."]}`

func TestAnalyze_UnsupportedTypeSkipsModel(t *testing.T) {
	llm := &fakeLLM{reply: scoredReply}
	svc := NewAnalyzerService(NewTextExtractor(), llm, cache.NewMemoryStore())

	_, err := svc.Analyze(context.Background(), []byte("plain text"), "resume.txt", "")
	assert.ErrorIs(t, err, ErrUnsupportedType)
	assert.Zero(t, llm.calls)
}

func TestAnalyze_EmptyExtractionSkipsModel(t *testing.T) {
	llm := &fakeLLM{reply: scoredReply}
	svc := NewAnalyzerService(&stubExtractor{err: ErrEmptyExtraction}, llm, cache.NewMemoryStore())

	_, err := svc.Analyze(context.Background(), []byte{}, "resume.pdf", "")
	assert.ErrorIs(t, err, ErrEmptyExtraction)
	assert.Zero(t, llm.calls)
}

func TestAnalyze_CachesResultUnderFreshID(t *testing.T) {
	store := cache.NewMemoryStore()
	llm := &fakeLLM{reply: scoredReply}
	svc := NewAnalyzerService(&stubExtractor{text: "extracted resume text"}, llm, store)

	first, err := svc.Analyze(context.Background(), []byte{}, "resume.pdf", "Backend Engineer")
	require.NoError(t, err)
	second, err := svc.Analyze(context.Background(), []byte{}, "resume.pdf", "Backend Engineer")
	require.NoError(t, err)

	firstID := first["result_id"].(string)
	secondID := second["result_id"].(string)
	assert.NotEqual(t, firstID, secondID)

	cached, err := store.Get(firstID)
	require.NoError(t, err)
	assert.Equal(t, first, cached)
	assert.Equal(t, float64(85), cached["score"])
	assert.Equal(t, "extracted resume text", cached["raw_text_preview"])
}

func TestAnalyze_PromptTruncationIndependentOfPreview(t *testing.T) {
	text := strings.Repeat("a", maxPromptChars) + "ZZTAILMARKER"
	llm := &fakeLLM{reply: scoredReply}
	svc := NewAnalyzerService(&stubExtractor{text: text}, llm, cache.NewMemoryStore())

	result, err := svc.Analyze(context.Background(), []byte{}, "resume.pdf", "")
	require.NoError(t, err)

	assert.NotContains(t, llm.lastPrompt, "ZZTAILMARKER")
	assert.Contains(t, llm.lastPrompt, strings.Repeat("a", maxPromptChars))
	assert.Equal(t, strings.Repeat("a", previewChars), result["raw_text_preview"])
}

func TestAnalyze_ModelFailure(t *testing.T) {
	llm := &fakeLLM{err: errors.New("quota exceeded")}
	svc := NewAnalyzerService(&stubExtractor{text: "resume"}, llm, cache.NewMemoryStore())

	_, err := svc.Analyze(context.Background(), []byte{}, "resume.pdf", "")
	assert.ErrorIs(t, err, ErrLLM)
}

func TestAnalyze_NonJSONReply(t *testing.T) {
	llm := &fakeLLM{reply: "I cannot score this resume."}
	svc := NewAnalyzerService(&stubExtractor{text: "resume"}, llm, cache.NewMemoryStore())

	_, err := svc.Analyze(context.Background(), []byte{}, "resume.pdf", "")
	assert.ErrorIs(t, err, ErrNoJSONFound)
}

func TestRewriteText_StripsFences(t *testing.T) {
	llm := &fakeLLM{reply: "```\noptimized resume\n```"}
	svc := NewAnalyzerService(&stubExtractor{}, llm, cache.NewMemoryStore())

	out := svc.RewriteText(context.Background(), "original", "Backend Engineer")
	assert.Contains(t, out, "optimized resume")
	assert.NotContains(t, out, "```")
	assert.Contains(t, llm.lastPrompt, "Backend Engineer")
}

func TestRewriteText_FailureDegradesToErrorString(t *testing.T) {
	llm := &fakeLLM{err: errors.New("model unavailable")}
	svc := NewAnalyzerService(&stubExtractor{}, llm, cache.NewMemoryStore())

	out := svc.RewriteText(context.Background(), "original", "")
	assert.True(t, strings.HasPrefix(out, "Error:"), "got %q", out)
	assert.Contains(t, out, "model unavailable")
}
