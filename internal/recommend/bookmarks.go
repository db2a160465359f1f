package recommend

import "sort"

// Bookmarks is a set of bookmarked tool names. The zero value is an empty set
// that can be read but not written; use NewBookmarks for a writable set.
type Bookmarks map[string]struct{}

// NewBookmarks returns a set holding names.
func NewBookmarks(names ...string) Bookmarks {
	b := make(Bookmarks, len(names))
	for _, n := range names {
		b[n] = struct{}{}
	}
	return b
}

// Has reports whether name is bookmarked.
func (b Bookmarks) Has(name string) bool {
	_, ok := b[name]
	return ok
}

// Toggle flips name's membership and reports whether it is now bookmarked.
func (b Bookmarks) Toggle(name string) bool {
	if b.Has(name) {
		delete(b, name)
		return false
	}
	b[name] = struct{}{}
	return true
}

// Len returns the number of bookmarked names.
func (b Bookmarks) Len() int { return len(b) }

// Names returns the bookmarked names in sorted order.
func (b Bookmarks) Names() []string {
	out := make([]string, 0, len(b))
	for n := range b {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
