package model

import "time"

// Article is one normalized RSS entry, kept in memory for the duration
// of a single generation run.
type Article struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Source      string `json:"source"`
	PublishedAt string `json:"publishedAt"`
	Summary     string `json:"summary,omitempty"`
}

// Source is a citation attached to a generated item. Its URL must be
// one of the article URLs presented in the prompt.
type Source struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Idea is a single content idea for one of the idea categories.
type Idea struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Starred     bool     `json:"starred,omitempty"`
	Sources     []Source `json:"sources"`
}

// NewsUpdate is a single dated news item.
type NewsUpdate struct {
	Title     string   `json:"title"`
	Timestamp string   `json:"timestamp"` // "MM/DD/YYYY, H:MM AM/PM"
	Sources   []Source `json:"sources"`
}

// IdeaCollection is the persisted unit for the idea categories.
type IdeaCollection struct {
	Type  Category `json:"type"`
	Date  string   `json:"date"` // ISO-8601
	Ideas []Idea   `json:"ideas"`
}

// NewsCollection is the persisted unit for the news categories.
type NewsCollection struct {
	Type    Category     `json:"type"`
	Date    string       `json:"date"` // ISO-8601
	Updates []NewsUpdate `json:"updates"`
}

// Collection is what a generation run produces for one category and the
// artifact store persists.
type Collection interface {
	Category() Category
	// Len reports the number of generated items; a collection with zero
	// items must not be persisted.
	Len() int
	// PruneSources drops sources whose URL is not in the allowed set and
	// returns how many were dropped.
	PruneSources(allowed map[string]struct{}) int
}

func (c *IdeaCollection) Category() Category { return c.Type }
func (c *IdeaCollection) Len() int           { return len(c.Ideas) }

func (c *IdeaCollection) PruneSources(allowed map[string]struct{}) int {
	dropped := 0
	for i := range c.Ideas {
		c.Ideas[i].Sources, dropped = pruneSources(c.Ideas[i].Sources, allowed, dropped)
	}
	return dropped
}

func (c *NewsCollection) Category() Category { return c.Type }
func (c *NewsCollection) Len() int           { return len(c.Updates) }

func (c *NewsCollection) PruneSources(allowed map[string]struct{}) int {
	dropped := 0
	for i := range c.Updates {
		c.Updates[i].Sources, dropped = pruneSources(c.Updates[i].Sources, allowed, dropped)
	}
	return dropped
}

func pruneSources(in []Source, allowed map[string]struct{}, dropped int) ([]Source, int) {
	out := in[:0]
	for _, s := range in {
		if _, ok := allowed[s.URL]; ok {
			out = append(out, s)
		} else {
			dropped++
		}
	}
	return out, dropped
}

// FormatTimestamp renders t in the item timestamp format used by news
// updates, e.g. "10/21/2025, 9:15 AM".
func FormatTimestamp(t time.Time) string {
	return t.Format("01/02/2006, 3:04 PM")
}
