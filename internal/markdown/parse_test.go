package markdown

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseWithFrontmatter(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "brand-identity.md")
	content := "" +
		"---\n" +
		"title: \"Brand Identity\"\n" +
		"updated: 2026-08-01\n" +
		"---\n\n" +
		"# OPEN SESSION\n\nWe design with AI-powered workflows.\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	doc, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile error: %v", err)
	}
	if len(doc.Frontmatter) == 0 {
		t.Fatalf("expected frontmatter, got empty")
	}
	if _, ok := doc.Frontmatter["title"]; !ok {
		t.Errorf("missing title in frontmatter")
	}
	if _, ok := doc.Frontmatter["updated"]; !ok {
		t.Errorf("missing updated in frontmatter")
	}
	if !strings.Contains(doc.Body, "# OPEN SESSION") {
		t.Errorf("body missing heading; got: %q", doc.Body)
	}
	if strings.Contains(doc.Body, "title:") {
		t.Errorf("frontmatter leaked into body")
	}
}

func TestParseWithoutFrontmatter(t *testing.T) {
	doc, err := Parse(strings.NewReader("# Hello\n\nNo frontmatter here.\n"))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(doc.Frontmatter) != 0 {
		t.Errorf("expected empty frontmatter, got %v", doc.Frontmatter)
	}
	if !strings.Contains(doc.Body, "No frontmatter here.") {
		t.Errorf("unexpected body: %q", doc.Body)
	}
}

func TestParseEmpty(t *testing.T) {
	doc, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if doc.Body != "" || len(doc.Frontmatter) != 0 {
		t.Errorf("expected empty document, got %+v", doc)
	}
}

func TestParseBadFrontmatter(t *testing.T) {
	if _, err := Parse(strings.NewReader("---\n\t:bad yaml\n---\nbody\n")); err == nil {
		t.Fatalf("expected error for invalid frontmatter")
	}
}
