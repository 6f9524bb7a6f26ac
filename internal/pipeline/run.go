// Package pipeline chains one generation run: collect feeds, compose a
// prompt per category, generate, persist.
package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"opensession-curator/internal/artifact"
	"opensession-curator/internal/config"
	"opensession-curator/internal/feeds"
	"opensession-curator/internal/generate"
	"opensession-curator/internal/knowledge"
	"opensession-curator/internal/model"
	"opensession-curator/internal/prompt"
)

// ErrNoArticles aborts a run before any generation call: with an empty
// article list there is no closed URL set to cite from.
var ErrNoArticles = errors.New("no articles fetched from any feed")

// Run is one generation run over a fixed set of categories. Categories
// share the collected article list but are otherwise independent; a
// category's failure leaves the others' artifacts intact.
type Run struct {
	Feeds      []config.FeedConfig
	PerFeed    int
	Categories []model.Category
	Knowledge  knowledge.Base
	Collector  *feeds.Collector
	Generator  *generate.Generator
	Store      *artifact.Store
	Now        func() time.Time
}

// Execute performs the run. The returned error joins every failed
// category; nil means every category produced and persisted a
// collection.
func (r *Run) Execute(ctx context.Context) error {
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}

	res := r.Collector.Collect(ctx, r.Feeds, r.PerFeed)
	if len(res.Articles) == 0 {
		return ErrNoArticles
	}
	slog.Info("pipeline: collected articles", "articles", len(res.Articles), "failed_feeds", len(res.Errors))
	allowed := feeds.URLSet(res.Articles)

	var errs []error
	for _, cat := range r.Categories {
		p := prompt.ForCategory(cat, r.Knowledge, res.Articles, now())
		col, err := r.Generator.Generate(ctx, cat, p, allowed)
		if err != nil {
			slog.Error("pipeline: generation failed", "category", cat, "err", err)
			errs = append(errs, err)
			continue
		}
		path, err := r.Store.Save(col, now())
		if err != nil {
			slog.Error("pipeline: save failed", "category", cat, "err", err)
			errs = append(errs, err)
			continue
		}
		slog.Info("pipeline: saved collection", "category", cat, "items", col.Len(), "path", path)
	}
	return errors.Join(errs...)
}
