package questiongen

import (
	"encoding/json"
	"errors"
	"fmt"
)

// questionOutput is the raw LLM response before validation.
type questionOutput struct {
	Question      string   `json:"question"`
	QuestionType  string   `json:"question_type"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Solution      string   `json:"solution"`
	Hint          string   `json:"hint"`
	Concepts      []string `json:"concepts"`
}

var errNoJSONObject = errors.New("no JSON object found in response")

// ExtractJSON locates the first balanced {...} span in free text.
// Models sometimes wrap their JSON in prose or markdown fences; this
// recovers the object without assuming any surrounding format.
func ExtractJSON(text string) (string, error) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(text); i++ {
		c := text[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			if start >= 0 {
				inString = true
			}
		case '{':
			if start < 0 {
				start = i
			}
			depth++
		case '}':
			if start >= 0 {
				depth--
				if depth == 0 {
					return text[start : i+1], nil
				}
			}
		}
	}

	return "", errNoJSONObject
}

// parseQuestion decodes an LLM response into a questionOutput. Content is
// tried as a JSON object first; failing that it is treated as free text
// (possibly a JSON-encoded string) and the first balanced object is
// extracted and decoded.
func parseQuestion(content json.RawMessage) (*questionOutput, error) {
	var raw questionOutput
	if err := json.Unmarshal(content, &raw); err == nil {
		return &raw, nil
	}

	text := string(content)

	// Unstructured responses arrive as a JSON string.
	var s string
	if err := json.Unmarshal(content, &s); err == nil {
		text = s
	}

	obj, err := ExtractJSON(text)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(obj), &raw); err != nil {
		return nil, fmt.Errorf("decoding question object: %w", err)
	}

	return &raw, nil
}
