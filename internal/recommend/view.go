package recommend

import (
	"fmt"

	"github.com/abhisek/aimarketcap/internal/catalog"
	"github.com/abhisek/aimarketcap/internal/profile"
)

// View is the dashboard state for one session: the user's profile, the
// catalog, active filters and bookmarks. Visible tools are derived on demand.
type View struct {
	profile   profile.UserProfile
	tools     []catalog.Tool
	bookmarks Bookmarks
	search    string
	category  string
}

// NewView creates a view over tools with no filters and no bookmarks.
func NewView(p profile.UserProfile, tools []catalog.Tool) *View {
	return &View{
		profile:   p,
		tools:     tools,
		bookmarks: NewBookmarks(),
		category:  AllCategories,
	}
}

// Profile returns the profile the view was built for.
func (v *View) Profile() profile.UserProfile { return v.profile }

// AdoptProfileID sets the profile ID when the view's profile has none yet.
func (v *View) AdoptProfileID(id string) {
	if v.profile.ID == "" {
		v.profile.ID = id
	}
}

// SetSearchText replaces the active search filter.
func (v *View) SetSearchText(s string) { v.search = s }

// SearchText returns the active search filter.
func (v *View) SearchText() string { return v.search }

// SetCategoryFilter selects AllCategories or an exact category. Values not in
// DistinctCategories match nothing.
func (v *View) SetCategoryFilter(c string) { v.category = c }

// Category returns the active category filter.
func (v *View) Category() string { return v.category }

// CategoryChoices returns AllCategories followed by the catalog's categories.
func (v *View) CategoryChoices() []string {
	return append([]string{AllCategories}, DistinctCategories(v.tools)...)
}

// CycleCategory moves the category filter by delta through CategoryChoices,
// wrapping at either end, and returns the new filter.
func (v *View) CycleCategory(delta int) string {
	choices := v.CategoryChoices()
	idx := 0
	for i, c := range choices {
		if c == v.category {
			idx = i
			break
		}
	}
	n := len(choices)
	idx = ((idx+delta)%n + n) % n
	v.category = choices[idx]
	return v.category
}

// DistinctCategories returns the categories present in the catalog.
func (v *View) DistinctCategories() []string {
	return DistinctCategories(v.tools)
}

// ToggleBookmark flips name's bookmark and reports whether it is now set.
func (v *View) ToggleBookmark(name string) bool {
	return v.bookmarks.Toggle(name)
}

// Bookmarks returns the bookmarked names in sorted order.
func (v *View) Bookmarks() []string {
	return v.bookmarks.Names()
}

// VisibleTools returns the filtered, sorted catalog with bookmark status.
func (v *View) VisibleTools() []ToolView {
	return DeriveView(v.tools, v.bookmarks, v.search, v.category)
}

// Summary returns the headline numbers over the full catalog.
func (v *View) Summary() Summary {
	return Summarize(v.tools, v.bookmarks)
}

// Subtitle describes who the recommendations are for, e.g.
// "problem-solving • developer • expert level".
func (v *View) Subtitle() string {
	s := v.profile.Insight()
	if v.profile.Role != "" {
		s += " • " + string(v.profile.Role)
	}
	if v.profile.Experience != "" {
		s += fmt.Sprintf(" • %s level", v.profile.Experience)
	}
	return s
}
