package utils

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// StripModelCodeFence removes a leading ```json (or bare ```) fence and
// everything from the first remaining fence onward. Vision and chat models
// routinely wrap JSON in markdown despite instructions not to.
func StripModelCodeFence(raw string) string {
	cleaned := strings.TrimSpace(raw)
	if strings.HasPrefix(cleaned, "```json") {
		cleaned = cleaned[len("```json"):]
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = cleaned[len("```"):]
	}
	if idx := strings.Index(cleaned, "```"); idx >= 0 {
		cleaned = cleaned[:idx]
	}
	return strings.TrimSpace(cleaned)
}

// ExtractJSONObject parses the first JSON object found in the model output.
// It strips any code fence, then falls back to the substring between the
// first '{' and the last '}' when the full text does not parse.
func ExtractJSONObject(raw string) (map[string]interface{}, error) {
	cleaned := StripModelCodeFence(raw)

	result := make(map[string]interface{})
	if err := json.Unmarshal([]byte(cleaned), &result); err == nil {
		return result, nil
	}

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object found in model output")
	}

	result = make(map[string]interface{})
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &result); err != nil {
		return nil, fmt.Errorf("model output is not valid JSON: %w", err)
	}
	return result, nil
}

// ExtractJSONArray is the array counterpart used for derived questionnaire
// questions; out must be a pointer to a slice.
func ExtractJSONArray(raw string, out interface{}) error {
	cleaned := StripModelCodeFence(raw)

	if err := json.Unmarshal([]byte(cleaned), out); err == nil {
		return nil
	}

	start := strings.Index(cleaned, "[")
	end := strings.LastIndex(cleaned, "]")
	if start < 0 || end <= start {
		return fmt.Errorf("no JSON array found in model output")
	}
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), out); err != nil {
		return fmt.Errorf("model output is not a valid JSON array: %w", err)
	}
	return nil
}
