package services

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"cvalchemist/resume-analyzer/internal/cache"
	"cvalchemist/resume-analyzer/internal/models"
)

// previewChars is how much of the extracted text is attached to the result
// as raw_text_preview. Independent of the prompt truncation budget.
const previewChars = 2000

// AnalyzerService runs the analysis pipeline and the rewrite flow.
type AnalyzerService interface {
	Analyze(ctx context.Context, data []byte, filename, jobTitle string) (models.AnalysisResult, error)
	RewriteText(ctx context.Context, text, jobTitle string) string
}

type analyzerService struct {
	extractor TextExtractor
	llm       LLMClient
	prompts   *PromptBuilder
	store     cache.ResultStore
}

func NewAnalyzerService(extractor TextExtractor, llm LLMClient, store cache.ResultStore) AnalyzerService {
	return &analyzerService{
		extractor: extractor,
		llm:       llm,
		prompts:   NewPromptBuilder(),
		store:     store,
	}
}

// Analyze extracts text from the uploaded document, asks the model for a
// score and feedback, parses the reply tolerantly, and caches the result
// under a fresh id. The parsed object is passed through without field
// validation; only raw_text_preview and result_id are added server-side.
func (s *analyzerService) Analyze(ctx context.Context, data []byte, filename, jobTitle string) (models.AnalysisResult, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	text, err := s.extractor.Extract(data, ext)
	if err != nil {
		return nil, err
	}

	prompt := s.prompts.Analysis(text, jobTitle)

	raw, err := s.llm.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLLM, err)
	}

	result, err := ExtractObject(raw)
	if err != nil {
		return nil, err
	}

	resultID := uuid.New().String()
	result["raw_text_preview"] = truncate(text, previewChars)
	result["result_id"] = resultID

	if err := s.store.Put(resultID, result); err != nil {
		return nil, fmt.Errorf("failed to cache result: %w", err)
	}

	log.Printf("analysis %s completed (%d chars extracted)", resultID, len(text))
	return result, nil
}

// RewriteText returns the optimized resume text. Failures degrade to an
// error-flavored string in the response body instead of an error status;
// clients detect them by content. Kept for compatibility with existing
// consumers of the rewrite endpoint.
func (s *analyzerService) RewriteText(ctx context.Context, text, jobTitle string) string {
	raw, err := s.llm.Complete(ctx, s.prompts.Rewrite(text, jobTitle))
	if err != nil {
		log.Printf("rewrite failed: %v", err)
		return fmt.Sprintf("Error: %v", err)
	}
	return strings.ReplaceAll(raw, "```", "")
}
