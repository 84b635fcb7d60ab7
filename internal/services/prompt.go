package services

import (
	"fmt"
	"strings"
)

// maxPromptChars caps how much resume text is embedded in a prompt. Longer
// resumes are silently truncated; analysis quality degrades rather than
// the request failing.
const maxPromptChars = 8000

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// Analysis builds the scoring prompt. With a job title the model is asked
// to score suitability for that role, otherwise to assess general quality.
func (pb *PromptBuilder) Analysis(resumeText, jobTitle string) string {
	resumeText = truncate(resumeText, maxPromptChars)

	const format = `Return your response as a JSON object with two keys: "score" (an integer between 0 and 100) and "feedback" (a list of short, actionable feedback strings).
Example: {"score": 85, "feedback": ["Great use of action verbs.", "Consider adding a summary section."]}`

	if strings.TrimSpace(jobTitle) == "" {
		return fmt.Sprintf(`Analyze the following resume and provide a score and feedback based on its overall quality.
Resume Text:
%s

%s`, resumeText, format)
	}

	return fmt.Sprintf(`Analyze the following resume for the position of '%s'.
Provide a score and feedback based on its suitability for that specific role.
Resume Text:
%s

%s`, jobTitle, resumeText, format)
}

// Rewrite builds the optimization prompt, asking for plain text back.
func (pb *PromptBuilder) Rewrite(resumeText, jobTitle string) string {
	if strings.TrimSpace(jobTitle) == "" {
		jobTitle = "the user-specified position"
	}

	return fmt.Sprintf("Rewrite this resume to be highly optimized for the position of '%s'. Return text only:\n%s",
		jobTitle, truncate(resumeText, maxPromptChars))
}

func truncate(text string, limit int) string {
	if len(text) > limit {
		return text[:limit]
	}
	return text
}
