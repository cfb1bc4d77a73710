package questiongen

import (
	"encoding/json"
	"testing"
)

func TestExtractJSON_PlainObject(t *testing.T) {
	got, err := ExtractJSON(`{"question": "What is 2+2?"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `{"question": "What is 2+2?"}` {
		t.Errorf("unexpected extraction: %q", got)
	}
}

func TestExtractJSON_SurroundingProse(t *testing.T) {
	text := "Sure! Here is your question:\n```json\n{\"question\": \"What is 2+2?\"}\n```\nLet me know if you need another."
	got, err := ExtractJSON(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `{"question": "What is 2+2?"}` {
		t.Errorf("unexpected extraction: %q", got)
	}
}

func TestExtractJSON_NestedObjects(t *testing.T) {
	text := `prefix {"a": {"b": 1}, "c": "x"} suffix {"second": true}`
	got, err := ExtractJSON(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `{"a": {"b": 1}, "c": "x"}` {
		t.Errorf("expected first balanced object, got %q", got)
	}
}

func TestExtractJSON_BracesInsideStrings(t *testing.T) {
	text := `{"question": "Evaluate f(x) = {x} for x = 2", "answer": "2"}`
	got, err := ExtractJSON(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != text {
		t.Errorf("braces inside string broke balancing: %q", got)
	}
}

func TestExtractJSON_EscapedQuotes(t *testing.T) {
	text := `{"question": "He said \"sum {a, b}\"", "answer": "A"}`
	got, err := ExtractJSON(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != text {
		t.Errorf("escaped quote broke balancing: %q", got)
	}
}

func TestExtractJSON_NoObject(t *testing.T) {
	if _, err := ExtractJSON("I could not generate a question this time."); err == nil {
		t.Fatal("expected error for text without an object")
	}
}

func TestExtractJSON_Unbalanced(t *testing.T) {
	if _, err := ExtractJSON(`{"question": "truncated`); err == nil {
		t.Fatal("expected error for unterminated object")
	}
}

func TestParseQuestion_StructuredContent(t *testing.T) {
	content := json.RawMessage(`{"question":"What is 2+2?","question_type":"numerical","options":[],"correct_answer":"4","solution":"2+2=4","hint":"","concepts":["addition"]}`)
	raw, err := parseQuestion(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raw.Question != "What is 2+2?" {
		t.Errorf("unexpected question: %q", raw.Question)
	}
	if raw.CorrectAnswer != "4" {
		t.Errorf("unexpected answer: %q", raw.CorrectAnswer)
	}
}

func TestParseQuestion_FreeTextContent(t *testing.T) {
	// Unstructured responses arrive as a JSON-encoded string with prose
	// around the object.
	text := "Here you go:\n{\"question\":\"What is 3*3?\",\"question_type\":\"numerical\",\"options\":[],\"correct_answer\":\"9\",\"solution\":\"3*3=9\",\"hint\":\"\",\"concepts\":[\"multiplication\"]}"
	content, err := json.Marshal(text)
	if err != nil {
		t.Fatal(err)
	}

	raw, err := parseQuestion(content)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if raw.CorrectAnswer != "9" {
		t.Errorf("unexpected answer: %q", raw.CorrectAnswer)
	}
}

func TestParseQuestion_Garbage(t *testing.T) {
	if _, err := parseQuestion(json.RawMessage(`"no object here at all"`)); err == nil {
		t.Fatal("expected error for response without an object")
	}
}
