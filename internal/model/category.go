package model

import "fmt"

// Category identifies one content category. The set is fixed: two news
// categories and three idea categories.
type Category string

const (
	WeeklyUpdate   Category = "weekly-update"
	MonthlyOutlook Category = "monthly-outlook"
	ShortForm      Category = "short-form"
	LongForm       Category = "long-form"
	Blog           Category = "blog"
)

// Kind distinguishes the two collection shapes.
type Kind int

const (
	KindNews Kind = iota
	KindIdeas
)

// NewsCategories are generated by the news run, in order.
var NewsCategories = []Category{WeeklyUpdate, MonthlyOutlook}

// IdeaCategories are generated by the ideas run, in order.
var IdeaCategories = []Category{ShortForm, LongForm, Blog}

func (c Category) Kind() Kind {
	switch c {
	case WeeklyUpdate, MonthlyOutlook:
		return KindNews
	default:
		return KindIdeas
	}
}

// Dir returns the artifact directory for the category relative to the
// data root, e.g. "news/weekly-update" or "weekly-ideas/blog".
func (c Category) Dir() string {
	if c.Kind() == KindNews {
		return "news/" + string(c)
	}
	return "weekly-ideas/" + string(c)
}

// ParseCategory validates a category name from config or CLI input.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case WeeklyUpdate, MonthlyOutlook, ShortForm, LongForm, Blog:
		return Category(s), nil
	}
	return "", fmt.Errorf("unknown category: %q", s)
}
