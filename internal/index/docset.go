package index

import "sort"

// DocSet is a set of document ids. The evaluator combines these with plain
// set algebra; no scores attach to membership.
type DocSet map[string]struct{}

// NewDocSet builds a DocSet from the given ids.
func NewDocSet(ids ...string) DocSet {
	s := make(DocSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Contains reports whether id is a member of the set.
func (s DocSet) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

// Union returns a new set holding every member of s and other.
func (s DocSet) Union(other DocSet) DocSet {
	out := make(DocSet, len(s)+len(other))
	for id := range s {
		out[id] = struct{}{}
	}
	for id := range other {
		out[id] = struct{}{}
	}
	return out
}

// Intersect returns a new set holding the members common to s and other.
func (s DocSet) Intersect(other DocSet) DocSet {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	out := make(DocSet)
	for id := range small {
		if _, ok := large[id]; ok {
			out[id] = struct{}{}
		}
	}
	return out
}

// Difference returns a new set holding members of s absent from other.
func (s DocSet) Difference(other DocSet) DocSet {
	out := make(DocSet)
	for id := range s {
		if _, ok := other[id]; !ok {
			out[id] = struct{}{}
		}
	}
	return out
}

// SortedIDs returns the members in ascending lexicographic order.
func (s DocSet) SortedIDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
