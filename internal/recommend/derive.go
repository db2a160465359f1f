// Package recommend derives the dashboard's filtered, sorted and bookmarked
// view of the tool catalog.
package recommend

import (
	"math"
	"sort"
	"strings"

	"github.com/abhisek/aimarketcap/internal/catalog"
)

// AllCategories is the category filter that matches every tool.
const AllCategories = "all"

// ToolView is a catalog record paired with its bookmark status.
type ToolView struct {
	catalog.Tool
	Bookmarked bool
}

// DeriveView filters tools by search text and category, sorts the result by
// descending match score and attaches bookmark status. Search is a
// case-insensitive substring match against name or description; an empty
// search matches everything. Ties keep their catalog order.
func DeriveView(tools []catalog.Tool, bookmarks Bookmarks, search, category string) []ToolView {
	term := strings.ToLower(search)

	out := make([]ToolView, 0, len(tools))
	for _, t := range tools {
		if !matchesSearch(t, term) || !matchesCategory(t, category) {
			continue
		}
		out = append(out, ToolView{Tool: t, Bookmarked: bookmarks.Has(t.Name)})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchScore > out[j].MatchScore
	})
	return out
}

func matchesSearch(t catalog.Tool, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Name), term) ||
		strings.Contains(strings.ToLower(t.Description), term)
}

func matchesCategory(t catalog.Tool, category string) bool {
	return category == AllCategories || t.Category == category
}

// DistinctCategories returns the categories present in tools, in first-seen order.
func DistinctCategories(tools []catalog.Tool) []string {
	seen := make(map[string]bool, len(tools))
	var out []string
	for _, t := range tools {
		if !seen[t.Category] {
			seen[t.Category] = true
			out = append(out, t.Category)
		}
	}
	return out
}

// Summary holds the dashboard's headline numbers. Counts and the average
// cover the full catalog regardless of active filters.
type Summary struct {
	MatchedCount    int
	BookmarkedCount int
	AverageMatch    int
	CategoryCount   int
}

// Summarize computes the dashboard summary. An empty catalog averages to 0.
func Summarize(tools []catalog.Tool, bookmarks Bookmarks) Summary {
	s := Summary{
		MatchedCount:    len(tools),
		BookmarkedCount: bookmarks.Len(),
		CategoryCount:   len(DistinctCategories(tools)),
	}
	if len(tools) > 0 {
		total := 0
		for _, t := range tools {
			total += t.MatchScore
		}
		s.AverageMatch = int(math.Round(float64(total) / float64(len(tools))))
	}
	return s
}
