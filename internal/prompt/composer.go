// Package prompt assembles generation requests. Composition is pure:
// the same category, knowledge, article list, and clock always produce
// the same prompt.
//
// Source URLs are embedded verbatim and the instructions require the
// model to copy them exactly from the presented list. That closed list
// is the only mechanism keeping citations real; the composer must never
// let the model invent URLs.
package prompt

import (
	"fmt"
	"strings"
	"time"

	"opensession-curator/internal/knowledge"
	"opensession-curator/internal/model"
)

// ForCategory builds the full prompt for one category.
func ForCategory(cat model.Category, kn knowledge.Base, articles []model.Article, now time.Time) string {
	if cat.Kind() == model.KindNews {
		return newsPrompt(cat, kn, articles, now)
	}
	return ideasPrompt(cat, kn, articles, now)
}

func newsPrompt(cat model.Category, kn knowledge.Base, articles []model.Article, now time.Time) string {
	var instructions string
	switch cat {
	case model.WeeklyUpdate:
		instructions = "Focus on THIS WEEK's announcements, releases, and important developments. These are things happening NOW that designers and creators need to know about immediately."
	case model.MonthlyOutlook:
		instructions = "Focus on UPCOMING events, predictions, analyst forecasts, and things to watch for in the coming month. These are forward-looking insights and trends to keep in mind."
	}

	var b strings.Builder
	fmt.Fprintf(&b, `You are an AI news curator for OPEN SESSION, a design agency specializing in AI-powered creative workflows.

Today's date: %s

**Your Task:**
Generate 3-5 news updates for "%s" based on the latest AI/design news articles below.

**Category: %s**
%s

**Available News Sources:**
%s

**LATEST ARTICLES FROM RSS FEEDS:**
%s

**Instructions:**
1. Review the articles above and identify 3-5 %s news items
2. For EACH news update, you MUST provide:
   - A title (1-2 sentences that summarize the trend/announcement - be specific and informative)
   - A timestamp in the format "MM/DD/YYYY, H:MM AM/PM" (use the article's publication date)
   - 2-4 SOURCE URLs from the articles above that are directly relevant to this update

**CRITICAL RULES:**
- Title should be 1-2 sentences that FULLY explain the news (no need for separate description)
- Use ONLY URLs from the articles list above
- Each update should have 2-4 URLs that directly relate to that specific topic
- Copy URLs exactly as they appear - DO NOT modify them
- Timestamp must use format: "MM/DD/YYYY, H:MM AM/PM" (e.g., %q)
- Focus on AI, design tools, creative AI, and industry developments relevant to designers

**Response Format (JSON only, no markdown):**
{
  "type": %q,
  "date": %q,
  "updates": [
    {
      "title": "Figma announces AI-powered design tools that automatically generate design systems from existing components",
      "timestamp": %q,
      "sources": [
        { "name": "Figma Blog", "url": "https://www.figma.com/..." },
        { "name": "The Verge", "url": "https://www.theverge.com/..." }
      ]
    }
  ]
}

Generate news updates now. Return ONLY valid JSON, no other text.`,
		now.Format("2006-01-02"),
		cat, cat, instructions,
		kn.NewsSources,
		newsArticleList(articles),
		cat,
		model.FormatTimestamp(now),
		cat, now.Format(time.RFC3339),
		model.FormatTimestamp(now),
	)
	return b.String()
}

func ideasPrompt(cat model.Category, kn knowledge.Base, articles []model.Article, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, `You are an AI content strategist for OPEN SESSION, a design agency specializing in AI-powered creative workflows.

Today's date: %s

**Context - Brand Identity:**
%s

**Context - Brand Messaging:**
%s

**Context - Writing Style for %s:**
%s

**LATEST ARTICLES FROM RSS FEEDS (Use these URLs as inspiration):**
%s
`,
		now.Format("2006-01-02"),
		kn.BrandIdentity,
		kn.BrandMessaging,
		cat, kn.Style(cat),
		ideaArticleList(articles),
	)

	switch cat {
	case model.ShortForm:
		b.WriteString(`
**Your Task:**
Generate 4-5 SPECIFIC POST IDEAS for Instagram/TikTok based on the latest AI/design news.

**CRITICAL: These should be ACTIONABLE POST IDEAS, NOT news summaries!**

**Format Examples (this is what we want):**
OK: "Create a carousel showing how design systems are evolving with AI"
OK: "Film an Instagram reel demonstrating Cursor + Figma workflow"
NOT OK: "AI tools are changing design" (too vague, not actionable)
NOT OK: "New model update released" (news summary, not a post idea)

**Content Mix Requirements:**
- 40% Tools & Workflows (practical demonstrations)
- 30% Frameworks & Concepts (design philosophies)
- 30% Future & Abstract (provocative questions)
`)
	case model.LongForm:
		b.WriteString(`
**Your Task:**
Generate 4-5 INSTRUCTIONAL VIDEO IDEAS for YouTube (5-10 minute tutorials) based on the latest AI/design news.

**CRITICAL: These should be TUTORIAL TOPICS, NOT news summaries!**

**Format Examples (this is what we want):**
OK: "Tutorial: Using Figma with a browser-automation agent for automated design"
OK: "Step-by-step: Building a component library with an AI coding assistant"
NOT OK: "AI is changing design" (too vague, not a tutorial)
NOT OK: "New tool released" (news announcement, not instructional)

**Video Types Requirements:**
- 40% Tool Integration Tutorials (how to connect tools)
- 30% Deep Dives on New Features (hands-on exploration)
- 20% Framework & Philosophy Explainers (concepts with examples)
- 10% Our Business Use Cases (how we use tools)

**Target Outcome:** Viewers should be able to DO, UNDERSTAND, or REPLICATE something after watching
`)
	case model.Blog:
		b.WriteString(`
**Your Task:**
Generate 3-5 THOUGHT LEADERSHIP ARTICLE IDEAS based on the latest AI/design news.

**CRITICAL: These should be PERSPECTIVE PIECES with editorial depth, NOT tutorials or news summaries!**

**Format Examples (this is what we want):**
OK: "Our perspective: Why 'spec is the new code' will reshape design education"
OK: "The realistic AI toolkit for designers: What actually works vs. hype"
NOT OK: "How to use Figma" (tutorial, belongs in long-form)
NOT OK: "New AI tool released" (news, not perspective)

**Article Types Requirements:**
- 30% Future Perspectives (where design is heading)
- 30% Tool & Framework Analysis (what's realistic to adopt)
- 25% Philosophy & Frameworks (why approaches matter)
- 15% Case Studies & Our Approach (how we solved challenges)
`)
	}

	fmt.Fprintf(&b, `
**For EACH idea provide:**
- Title: the specific angle or format
- Description: what it shows, teaches, or argues (max 120 chars)
- Starred: mark 1-2 most timely ideas as true
- Sources: 3-5 source OBJECTS (not just URLs!) from the articles above

**CRITICAL: Sources must be objects with "name" and "url" properties, and URLs must be copied exactly from the articles list.**

**Response Format (JSON only):**
{
  "type": %q,
  "date": %q,
  "ideas": [
    {
      "title": "Reel: Cursor + Figma live demo",
      "description": "30-second tutorial showing how to integrate Cursor with Figma for faster design",
      "starred": true,
      "sources": [
        { "name": "TechCrunch AI", "url": "https://techcrunch.com/..." },
        { "name": "The Verge", "url": "https://www.theverge.com/..." }
      ]
    }
  ]
}

Generate the ideas now. Return ONLY valid JSON.`,
		cat, now.Format(time.RFC3339),
	)
	return b.String()
}

// newsArticleList renders articles with publication dates and a summary
// snippet, matching what the news curator prompt expects.
func newsArticleList(articles []model.Article) string {
	var b strings.Builder
	for i, a := range articles {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "- %q - %s (%s)\n  URL: %s", a.Title, a.Source, a.PublishedAt, a.URL)
		if s := truncate(a.Summary, 200); s != "" {
			fmt.Fprintf(&b, "\n  %s", s)
		}
	}
	return b.String()
}

// ideaArticleList renders a compact article list for idea generation.
func ideaArticleList(articles []model.Article) string {
	var b strings.Builder
	for i, a := range articles {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "- %q - %s\n  URL: %s", a.Title, a.Source, a.URL)
	}
	return b.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
