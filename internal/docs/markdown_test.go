package docs

import (
	"strings"
	"testing"
)

func TestParseMarkdown_ItemsFromHeadings(t *testing.T) {
	input := "# REST API\n\n" +
		"Intro paragraph.\n\n" +
		"## What is REST\n\n" +
		"REST is an architectural style.\n\n" +
		"Second paragraph.\n\n" +
		"- Stateless\n" +
		"- Resource oriented\n\n" +
		"## Example\n\n" +
		"```go\n" +
		"fmt.Println(\"hi\")\n" +
		"```\n\n" +
		"## Diagram\n\n" +
		"![REST flow](https://example.com/rest.png \"Request flow\")\n"

	sec, err := ParseMarkdown(strings.NewReader(input), "docs/Rest-API.md")
	if err != nil {
		t.Fatalf("ParseMarkdown: %v", err)
	}
	if sec.ID != "rest-api" {
		t.Errorf("id = %q, want %q", sec.ID, "rest-api")
	}
	if sec.Title != "REST API" {
		t.Errorf("title = %q, want %q", sec.Title, "REST API")
	}
	if len(sec.Content) != 4 {
		t.Fatalf("expected 4 items, got %d: %+v", len(sec.Content), sec.Content)
	}

	overview := sec.Content[0]
	if overview.Subtitle != OverviewSubtitle || overview.Text != "Intro paragraph." {
		t.Errorf("unexpected overview item: %+v", overview)
	}

	what := sec.Content[1]
	if what.Subtitle != "What is REST" {
		t.Errorf("subtitle = %q", what.Subtitle)
	}
	if what.Text != "REST is an architectural style.\n\nSecond paragraph." {
		t.Errorf("text = %q", what.Text)
	}
	if len(what.Bullets) != 2 || what.Bullets[0] != "Stateless" || what.Bullets[1] != "Resource oriented" {
		t.Errorf("bullets = %q", what.Bullets)
	}

	ex := sec.Content[2]
	if ex.Code != "fmt.Println(\"hi\")" {
		t.Errorf("code = %q", ex.Code)
	}
	if ex.CodeLanguage() != "go" {
		t.Errorf("language = %q", ex.CodeLanguage())
	}

	img := sec.Content[3]
	if img.Image != "https://example.com/rest.png" {
		t.Errorf("image = %q", img.Image)
	}
	if img.ImageCaption != "Request flow" {
		t.Errorf("caption = %q", img.ImageCaption)
	}
	if img.Text != "" {
		t.Errorf("expected image-only paragraph to have no text, got %q", img.Text)
	}
}

func TestParseMarkdown_NoHeadings(t *testing.T) {
	sec, err := ParseMarkdown(strings.NewReader("Just text.\n"), "notes.md")
	if err != nil {
		t.Fatalf("ParseMarkdown: %v", err)
	}
	if sec.Title != "notes" {
		t.Errorf("title = %q, want file stem", sec.Title)
	}
	if len(sec.Content) != 1 || sec.Content[0].Text != "Just text." {
		t.Fatalf("unexpected content: %+v", sec.Content)
	}
}

func TestParseMarkdown_Empty(t *testing.T) {
	sec, err := ParseMarkdown(strings.NewReader(""), "empty.md")
	if err != nil {
		t.Fatalf("ParseMarkdown: %v", err)
	}
	if len(sec.Content) != 0 {
		t.Fatalf("expected no items, got %d", len(sec.Content))
	}
}

func TestCodeLanguage_Default(t *testing.T) {
	if got := (ContentItem{Code: "x := 1"}).CodeLanguage(); got != DefaultCodeLanguage {
		t.Errorf("CodeLanguage() = %q, want %q", got, DefaultCodeLanguage)
	}
	if got := (ContentItem{}).CodeLanguage(); got != "" {
		t.Errorf("CodeLanguage() without code = %q, want empty", got)
	}
}

func TestParseMarkdown_FrontmatterOverrides(t *testing.T) {
	input := "---\nid: http-methods\ntitle: HTTP Methods\n---\n# Ignored Title\n\n## GET\n\nReads a resource.\n"
	sec, err := ParseMarkdown(strings.NewReader(input), "http.md")
	if err != nil {
		t.Fatalf("ParseMarkdown: %v", err)
	}
	if sec.ID != "http-methods" || sec.Title != "HTTP Methods" {
		t.Fatalf("frontmatter not applied: id=%q title=%q", sec.ID, sec.Title)
	}
	if len(sec.Content) != 1 || sec.Content[0].Subtitle != "GET" {
		t.Fatalf("unexpected content: %+v", sec.Content)
	}
}
