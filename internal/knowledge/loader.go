package knowledge

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"opensession-curator/internal/markdown"
	"opensession-curator/internal/model"
)

// Base is the brand knowledge context composed into prompts. Missing
// files degrade to an explicit empty-context note; loading never fails
// the run.
type Base struct {
	BrandIdentity  string
	BrandMessaging string
	ArtDirection   string
	NewsSources    string
	// WritingStyles is keyed by idea category (short-form, long-form, blog).
	WritingStyles map[model.Category]string
}

// missingNote marks a knowledge file that could not be loaded so the
// prompt still carries an explicit placeholder instead of silence.
func missingNote(name string) string {
	return fmt.Sprintf("(no %s context available)", name)
}

// Load reads the knowledge base from dir. Files follow the layout of
// the editorial repo:
//
//	core/brand-identity.md
//	core/brand-messaging.md
//	core/art-direction.md
//	writing-styles/{short-form,long-form,blog}.md
//	news-sources.md
func Load(dir string) Base {
	b := Base{
		BrandIdentity:  loadBody(dir, "core/brand-identity.md", "brand identity"),
		BrandMessaging: loadBody(dir, "core/brand-messaging.md", "brand messaging"),
		ArtDirection:   loadBody(dir, "core/art-direction.md", "art direction"),
		NewsSources:    loadBody(dir, "news-sources.md", "news sources"),
		WritingStyles:  map[model.Category]string{},
	}
	for _, cat := range model.IdeaCategories {
		rel := filepath.Join("writing-styles", string(cat)+".md")
		b.WritingStyles[cat] = loadBody(dir, rel, string(cat)+" writing style")
	}
	return b
}

// Style returns the writing style text for an idea category.
func (b Base) Style(cat model.Category) string {
	if s, ok := b.WritingStyles[cat]; ok {
		return s
	}
	return missingNote(string(cat) + " writing style")
}

func loadBody(dir, rel, name string) string {
	doc, err := markdown.ParseFile(filepath.Join(dir, rel))
	if err != nil {
		slog.Warn("knowledge: could not load file", "file", rel, "err", err)
		return missingNote(name)
	}
	body := strings.TrimSpace(doc.Body)
	if body == "" {
		return missingNote(name)
	}
	return body
}

// HotnessConfig is the scoring configuration observed in the editorial
// repo. It is loaded for forward compatibility but does not gate
// content inclusion anywhere yet.
type HotnessConfig struct {
	Thresholds struct {
		Revolutionary int `json:"revolutionary"`
		HighValue     int `json:"highValue"`
		Moderate      int `json:"moderate"`
		Low           int `json:"low"`
	} `json:"thresholds"`
	ScoringCriteria struct {
		Recency    float64 `json:"recency"`
		Impact     float64 `json:"impact"`
		Relevance  float64 `json:"relevance"`
		Uniqueness float64 `json:"uniqueness"`
	} `json:"scoringCriteria"`
}

// LoadHotness reads the hotness scoring config from configDir. A
// missing or malformed file returns nil.
func LoadHotness(configDir string) *HotnessConfig {
	b, err := os.ReadFile(filepath.Join(configDir, "hotness-scoring.json"))
	if err != nil {
		slog.Warn("knowledge: could not load hotness config", "err", err)
		return nil
	}
	var cfg HotnessConfig
	if err := json.Unmarshal(b, &cfg); err != nil {
		slog.Warn("knowledge: invalid hotness config", "err", err)
		return nil
	}
	return &cfg
}
