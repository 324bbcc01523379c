// Package recency tracks the people shown most recently so they are not
// asked about again too soon.
package recency

import "slices"

// DefaultSize is the number of recent identifiers held by default.
const DefaultSize = 5

// Filter is a bounded, most-recent-first set of identifiers.
// The zero value holds nothing.
type Filter struct {
	size  int
	items []string // most recent first
}

// New creates a Filter that remembers the last size identifiers.
// A size of zero or less yields a filter that never contains anything.
func New(size int) *Filter {
	if size < 0 {
		size = 0
	}
	return &Filter{
		size:  size,
		items: make([]string, 0, size+1),
	}
}

// Push records id as the most recently shown identifier. An id already
// held moves to the front instead of being added twice. The oldest entry
// is evicted once the filter grows past its size.
func (f *Filter) Push(id string) {
	if f.size == 0 {
		return
	}
	if i := slices.Index(f.items, id); i >= 0 {
		f.items = slices.Delete(f.items, i, i+1)
	}
	f.items = slices.Insert(f.items, 0, id)
	if len(f.items) > f.size {
		f.items = f.items[:f.size]
	}
}

// Contains reports whether id is one of the held identifiers.
func (f *Filter) Contains(id string) bool {
	return slices.Contains(f.items, id)
}

// Len returns the number of held identifiers.
func (f *Filter) Len() int {
	return len(f.items)
}

// Size returns the capacity the filter was built with.
func (f *Filter) Size() int {
	return f.size
}

// Items returns a copy of the held identifiers, most recent first.
func (f *Filter) Items() []string {
	return slices.Clone(f.items)
}
