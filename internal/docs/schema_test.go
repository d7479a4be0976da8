package docs

import (
	"strings"
	"testing"
)

func TestValidate_Valid(t *testing.T) {
	data := `
sections:
  - id: api-methods
    title: API Methods
    subtopics:
      - id: rest-api
        title: REST API
        items:
          - subtitle: What is REST?
            bullets: [Stateless, Cacheable]
legacy:
  - id: crm-systems
    title: CRM Systems
    content:
      - subtitle: Salesforce - Overview
        code: "sf login"
        language: bash
`
	issues, err := Validate([]byte(data))
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(issues) != 0 {
		t.Fatalf("expected no issues, got %v", issues)
	}
}

func TestValidate_MissingSubtitleAndUnknownKey(t *testing.T) {
	data := `{
  "legacy": [
    {"id": "s1", "title": "S", "content": [{"text": "no subtitle"}]}
  ],
  "extra": true
}`
	issues, err := Validate([]byte(data))
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(issues) < 2 {
		t.Fatalf("expected at least 2 issues, got %v", issues)
	}
	var sawItem bool
	for _, is := range issues {
		if strings.HasPrefix(is.Path, "$.legacy.0.content.0") {
			sawItem = true
		}
	}
	if !sawItem {
		t.Errorf("expected an issue located at the item, got %v", issues)
	}
}

func TestValidate_Unparseable(t *testing.T) {
	if _, err := Validate([]byte("sections: [")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestDecode_RoundTrip(t *testing.T) {
	f, err := Decode([]byte("legacy:\n  - id: a\n    title: A\n    content:\n      - subtitle: One\n        image_caption: cap\n"))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(f.Legacy) != 1 || f.Legacy[0].Content[0].ImageCaption != "cap" {
		t.Fatalf("unexpected decode: %+v", f)
	}
	out, err := Encode(f)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !strings.Contains(string(out), "image_caption: cap") {
		t.Errorf("encoded output missing field: %s", out)
	}
}
