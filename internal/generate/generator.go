// Package generate turns a composed prompt into a validated content
// collection.
package generate

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"opensession-curator/internal/ai"
	"opensession-curator/internal/model"
)

// GenerationError marks a category's run as failed. Other categories in
// the same run are unaffected.
type GenerationError struct {
	Category model.Category
	Stage    string // "completion", "extract", "parse", "validate"
	Err      error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generate %s: %s: %v", e.Category, e.Stage, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// Generator drives one prompt through the completion service and
// validates the result.
type Generator struct {
	Completer ai.Completer
}

func New(c ai.Completer) *Generator {
	return &Generator{Completer: c}
}

// Generate sends the prompt and returns the parsed collection for cat.
// allowedURLs is the URL set presented in the prompt; any source
// citing a URL outside it is pruned, so every surviving citation is an
// exact member of the input article list.
func (g *Generator) Generate(ctx context.Context, cat model.Category, prompt string, allowedURLs map[string]struct{}) (model.Collection, error) {
	text, err := g.Completer.Complete(ctx, prompt)
	if err != nil {
		return nil, &GenerationError{Category: cat, Stage: "completion", Err: err}
	}
	raw, err := extractJSON(text)
	if err != nil {
		return nil, &GenerationError{Category: cat, Stage: "extract", Err: err}
	}

	var col model.Collection
	switch cat.Kind() {
	case model.KindNews:
		c := &model.NewsCollection{}
		if err := json.Unmarshal([]byte(raw), c); err != nil {
			return nil, &GenerationError{Category: cat, Stage: "parse", Err: err}
		}
		c.Type = cat
		col = c
	default:
		c := &model.IdeaCollection{}
		if err := json.Unmarshal([]byte(raw), c); err != nil {
			return nil, &GenerationError{Category: cat, Stage: "parse", Err: err}
		}
		c.Type = cat
		col = c
	}

	if col.Len() == 0 {
		return nil, &GenerationError{Category: cat, Stage: "validate", Err: fmt.Errorf("empty item list")}
	}
	if dropped := col.PruneSources(allowedURLs); dropped > 0 {
		slog.Warn("generate: pruned sources not present in article list", "category", cat, "dropped", dropped)
	}
	return col, nil
}
