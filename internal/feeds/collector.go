package feeds

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"opensession-curator/internal/config"
	"opensession-curator/internal/model"

	"github.com/mmcdole/gofeed"
)

const fetchTimeout = 30 * time.Second

// Result aggregates one collection pass across all configured feeds.
// Per-feed failures are recorded, never raised: a broken feed must not
// abort the run.
type Result struct {
	Articles []model.Article
	Errors   []error
}

// Collector fetches and normalizes RSS feeds.
type Collector struct {
	parser *gofeed.Parser
}

func New() *Collector {
	return &Collector{parser: gofeed.NewParser()}
}

// Collect fetches every feed concurrently and returns the flattened
// article list, capped at perFeed items per feed. Feed order is
// preserved in the output regardless of completion order.
func (c *Collector) Collect(ctx context.Context, feeds []config.FeedConfig, perFeed int) Result {
	perSource := make([][]model.Article, len(feeds))
	var (
		mu   sync.Mutex
		errs []error
		wg   sync.WaitGroup
	)
	for i, f := range feeds {
		wg.Add(1)
		go func(i int, f config.FeedConfig) {
			defer wg.Done()
			articles, err := c.fetch(ctx, f, perFeed)
			if err != nil {
				slog.Warn("feeds: fetch failed", "feed", f.Name, "err", err)
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
				return
			}
			slog.Info("feeds: fetched", "feed", f.Name, "articles", len(articles))
			perSource[i] = articles
		}(i, f)
	}
	wg.Wait()

	var out Result
	out.Errors = errs
	for _, a := range perSource {
		out.Articles = append(out.Articles, a...)
	}
	return out
}

func (c *Collector) fetch(ctx context.Context, f config.FeedConfig, perFeed int) ([]model.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	feed, err := c.parser.ParseURLWithContext(f.URL, ctx)
	if err != nil {
		return nil, err
	}
	items := feed.Items
	if perFeed > 0 && len(items) > perFeed {
		items = items[:perFeed]
	}
	articles := make([]model.Article, 0, len(items))
	for _, item := range items {
		summary := item.Description
		if summary == "" {
			summary = item.Content
		}
		articles = append(articles, model.Article{
			Title:       item.Title,
			URL:         item.Link,
			Source:      f.Name,
			PublishedAt: item.Published,
			Summary:     summary,
		})
	}
	return articles, nil
}

// URLSet returns the set of article URLs, used to pin generated source
// citations to the input list.
func URLSet(articles []model.Article) map[string]struct{} {
	set := make(map[string]struct{}, len(articles))
	for _, a := range articles {
		set[a.URL] = struct{}{}
	}
	return set
}
