package people

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
)

// Roster is the set of people available in a session, keyed by identifier.
type Roster struct {
	byID map[string]Person
	ids  []string // sorted
}

// NewRoster builds a roster from people. When two people share an
// identifier, the one with the lexically first path wins.
func NewRoster(ps []Person) *Roster {
	sorted := slices.Clone(ps)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Path < sorted[j].Path })

	r := &Roster{byID: make(map[string]Person, len(sorted))}
	for _, p := range sorted {
		if _, dup := r.byID[p.ID]; dup {
			continue
		}
		r.byID[p.ID] = p
		r.ids = append(r.ids, p.ID)
	}
	slices.Sort(r.ids)
	return r
}

// Discover expands the glob pattern and builds a roster from every file
// that parses as a portrait. Directories are skipped.
func Discover(pattern string) (*Roster, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("expand %q: %w", pattern, err)
	}

	var ps []Person
	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		id, name, ok := ParseFilename(path)
		if !ok {
			continue
		}
		ps = append(ps, Person{ID: id, Name: name, Path: path})
	}
	return NewRoster(ps), nil
}

// IDs returns the sorted identifiers.
func (r *Roster) IDs() []string {
	return slices.Clone(r.ids)
}

// Get returns the person with the given identifier.
func (r *Roster) Get(id string) (Person, bool) {
	p, ok := r.byID[id]
	return p, ok
}

// People returns everyone, ordered by identifier.
func (r *Roster) People() []Person {
	out := make([]Person, 0, len(r.ids))
	for _, id := range r.ids {
		out = append(out, r.byID[id])
	}
	return out
}

// Len returns the number of people.
func (r *Roster) Len() int {
	return len(r.ids)
}
