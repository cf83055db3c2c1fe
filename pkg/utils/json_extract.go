package utils

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractJSONObject locates the itinerary object inside free-form model output.
// It returns the first of JSONObjectCandidates.
func ExtractJSONObject(text string) (string, error) {
	spans, err := JSONObjectCandidates(text)
	if err != nil {
		return "", err
	}
	return spans[0], nil
}

// JSONObjectCandidates lists every balanced, valid JSON object span in text,
// in order of its opening brace. Truncated output with no balanced span falls
// back to the greedy first-'{'-to-last-'}' slice.
func JSONObjectCandidates(text string) ([]string, error) {
	first := strings.IndexByte(text, '{')
	if first == -1 {
		return nil, fmt.Errorf("%w: no JSON object in response", ErrParse)
	}

	var spans []string
	for start := first; start != -1; {
		if end := findMatchingBrace(text, start); end != -1 {
			span := text[start : end+1]
			if json.Valid([]byte(span)) {
				spans = append(spans, span)
			}
		}
		next := strings.IndexByte(text[start+1:], '{')
		if next == -1 {
			break
		}
		start += next + 1
	}
	if len(spans) > 0 {
		return spans, nil
	}

	if last := strings.LastIndexByte(text, '}'); last > first {
		greedy := text[first : last+1]
		if json.Valid([]byte(greedy)) {
			return []string{greedy}, nil
		}
	}

	return nil, fmt.Errorf("%w: response does not contain a valid JSON object", ErrParse)
}

// findMatchingBrace finds the closing brace for the opening brace at start,
// ignoring braces inside JSON strings.
func findMatchingBrace(s string, start int) int {
	if start >= len(s) || s[start] != '{' {
		return -1
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(s); i++ {
		char := s[i]

		if escaped {
			escaped = false
			continue
		}
		if char == '\\' && inString {
			escaped = true
			continue
		}
		if char == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch char {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}
