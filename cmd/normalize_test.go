package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kamusis/docnav/internal/docs"
	"github.com/kamusis/docnav/internal/normalize"
)

const guideMarkdown = "# Guide\n\n" +
	"## Install - quick\n\nRun the installer.\n\n" +
	"```go\ngo install example.com/guide@latest\n```\n\n" +
	"## Usage\n\n- one\n- two\n"

func writeTemp(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestNormalizeFile_Markdown(t *testing.T) {
	p := writeTemp(t, "Guide.md", guideMarkdown)

	out, err := normalizeFile(p, normalize.DefaultOptions())
	if err != nil {
		t.Fatalf("normalizeFile: %v", err)
	}
	f, err := docs.Decode(out)
	if err != nil {
		t.Fatalf("output does not decode: %v\n%s", err, out)
	}
	if len(f.Sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(f.Sections))
	}
	sec := f.Sections[0]
	if sec.ID != "guide" || sec.Title != "Guide" {
		t.Errorf("unexpected section %q / %q", sec.ID, sec.Title)
	}
	if len(sec.Subtopics) != 1 {
		t.Fatalf("expected 1 subtopic, got %d", len(sec.Subtopics))
	}
	st := sec.Subtopics[0]
	if st.ID != "guide-subtopic-1" || st.Title != "Install 1" {
		t.Errorf("unexpected subtopic %q / %q", st.ID, st.Title)
	}
	if len(st.Items) != 2 || st.Items[0].Language != "go" || len(st.Items[1].Bullets) != 2 {
		t.Errorf("unexpected items: %+v", st.Items)
	}
}

func TestNormalizeFile_LegacyYAMLPreserveStructure(t *testing.T) {
	body := `legacy:
  - id: crm
    title: CRM
    content:
      - subtitle: Salesforce - setup
        text: Connect the org.
      - subtitle: HubSpot - setup
        text: Create a private app.
`
	p := writeTemp(t, "legacy.yaml", body)

	opts := normalize.DefaultOptions()
	opts.PreserveStructure = true
	opts.GenerateIcons = false
	out, err := normalizeFile(p, opts)
	if err != nil {
		t.Fatalf("normalizeFile: %v", err)
	}
	if strings.Contains(string(out), "legacy:") {
		t.Errorf("legacy content should be converted:\n%s", out)
	}
	f, err := docs.Decode(out)
	if err != nil {
		t.Fatal(err)
	}
	if len(f.Sections) != 1 || f.Sections[0].Icon != "" {
		t.Fatalf("unexpected sections: %+v", f.Sections)
	}
	if n := f.Sections[0].ItemCount(); n != 2 {
		t.Errorf("expected 2 items, got %d", n)
	}
	issues, err := docs.Validate(out)
	if err != nil || len(issues) != 0 {
		t.Errorf("normalized output should validate, got %v %v", issues, err)
	}
}

func TestNormalizeFile_Unsupported(t *testing.T) {
	p := writeTemp(t, "notes.txt", "hello")
	if _, err := normalizeFile(p, normalize.DefaultOptions()); err == nil {
		t.Fatal("expected error for unsupported file type")
	}
}
