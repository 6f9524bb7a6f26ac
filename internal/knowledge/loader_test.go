package knowledge

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"opensession-curator/internal/model"
)

func writeFile(t *testing.T, dir, rel, content string) {
	t.Helper()
	path := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestLoadFullBase(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "core/brand-identity.md", "---\ntitle: Identity\n---\nWe are OPEN SESSION.\n")
	writeFile(t, dir, "core/brand-messaging.md", "Messaging body.\n")
	writeFile(t, dir, "core/art-direction.md", "Art body.\n")
	writeFile(t, dir, "news-sources.md", "- The Verge\n- Wired\n")
	writeFile(t, dir, "writing-styles/short-form.md", "Short and punchy.\n")
	writeFile(t, dir, "writing-styles/long-form.md", "Structured tutorials.\n")
	writeFile(t, dir, "writing-styles/blog.md", "Editorial voice.\n")

	b := Load(dir)
	if b.BrandIdentity != "We are OPEN SESSION." {
		t.Errorf("frontmatter must be stripped from the body, got %q", b.BrandIdentity)
	}
	if !strings.Contains(b.NewsSources, "The Verge") {
		t.Errorf("news sources not loaded")
	}
	if b.Style(model.Blog) != "Editorial voice." {
		t.Errorf("style not loaded: %q", b.Style(model.Blog))
	}
}

// Missing files degrade to explicit notes; loading never fails.
func TestLoadMissingFiles(t *testing.T) {
	b := Load(t.TempDir())
	if !strings.Contains(b.BrandIdentity, "no brand identity context") {
		t.Errorf("missing identity must produce a note, got %q", b.BrandIdentity)
	}
	if !strings.Contains(b.Style(model.ShortForm), "no short-form writing style context") {
		t.Errorf("missing style must produce a note, got %q", b.Style(model.ShortForm))
	}
}

func TestLoadHotness(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "hotness-scoring.json", `{
		"thresholds": {"revolutionary": 90, "highValue": 70, "moderate": 40, "low": 0},
		"scoringCriteria": {"recency": 0.4, "impact": 0.3, "relevance": 0.2, "uniqueness": 0.1}
	}`)

	cfg := LoadHotness(dir)
	if cfg == nil {
		t.Fatal("expected config")
	}
	if cfg.Thresholds.Revolutionary != 90 || cfg.ScoringCriteria.Recency != 0.4 {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoadHotnessMissing(t *testing.T) {
	if cfg := LoadHotness(t.TempDir()); cfg != nil {
		t.Errorf("missing config must return nil, got %+v", cfg)
	}
}
