package services

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractObject pulls the first JSON object out of free-form model output.
// The model is not guaranteed to emit pure JSON; replies often arrive
// wrapped in code fences or prose. Fences are stripped, then the span from
// the first '{' to the last '}' is parsed. The greedy span is deliberately
// not a balanced-brace scan: a reply containing multiple independent
// objects will fail to parse rather than pick one of them.
func ExtractObject(raw string) (map[string]any, error) {
	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end == -1 || end < start {
		return nil, ErrNoJSONFound
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &obj); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}
	return obj, nil
}
