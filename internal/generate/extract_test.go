package generate

import (
	"errors"
	"testing"
)

func TestExtractJSONPlain(t *testing.T) {
	in := `{"type":"blog","ideas":[]}`
	got, err := extractJSON(in)
	if err != nil {
		t.Fatalf("extractJSON error: %v", err)
	}
	if got != in {
		t.Errorf("got %q, want %q", got, in)
	}
}

func TestExtractJSONMarkdownFence(t *testing.T) {
	in := "Here is the result:\n```json\n{\"type\": \"short-form\", \"ideas\": [{\"title\": \"x\"}]}\n```\nHope that helps!"
	got, err := extractJSON(in)
	if err != nil {
		t.Fatalf("extractJSON error: %v", err)
	}
	want := `{"type": "short-form", "ideas": [{"title": "x"}]}`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestExtractJSONBracesInStrings(t *testing.T) {
	in := `{"title": "use {placeholders} like {this}", "n": 1}`
	got, err := extractJSON(in)
	if err != nil {
		t.Fatalf("extractJSON error: %v", err)
	}
	if got != in {
		t.Errorf("got %q, want %q", got, in)
	}
}

func TestExtractJSONEscapedQuote(t *testing.T) {
	in := `prose {"title": "she said \"hi\" {once}"} trailing`
	got, err := extractJSON(in)
	if err != nil {
		t.Fatalf("extractJSON error: %v", err)
	}
	want := `{"title": "she said \"hi\" {once}"}`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestExtractJSONTrailingProse(t *testing.T) {
	in := `{"a": 1} and note that {b: 2} is not part of it`
	got, err := extractJSON(in)
	if err != nil {
		t.Fatalf("extractJSON error: %v", err)
	}
	if want := `{"a": 1}`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestExtractJSONNoObject(t *testing.T) {
	if _, err := extractJSON("sorry, I could not produce any output"); !errors.Is(err, ErrNoJSON) {
		t.Fatalf("want ErrNoJSON, got %v", err)
	}
}
