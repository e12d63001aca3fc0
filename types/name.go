package types

import (
	"slices"
	"strings"
)

// Name identifies a chord, sequence, mode or option.
type Name string

// ModeName identifies a mode.
type ModeName = Name

// KmapPath is the path of a kmap file, relative to the settings file.
type KmapPath = Name

func (n Name) String() string {
	return string(n)
}

// Upper returns the name in upper case, as used for C enum variants.
func (n Name) Upper() string {
	return strings.ToUpper(string(n))
}

// SortNames returns a sorted copy of names.
func SortNames(names []Name) []Name {
	out := slices.Clone(names)
	slices.Sort(out)
	return out
}

// NameSet is a set of names with a deterministic iteration order.
type NameSet map[Name]struct{}

// NewNameSet builds a set from the given names.
func NewNameSet(names ...Name) NameSet {
	s := make(NameSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

func (s NameSet) Add(n Name) {
	s[n] = struct{}{}
}

func (s NameSet) Contains(n Name) bool {
	_, ok := s[n]
	return ok
}

// Difference returns the sorted names in s that are not in other.
func (s NameSet) Difference(other NameSet) []Name {
	var out []Name
	for n := range s {
		if !other.Contains(n) {
			out = append(out, n)
		}
	}
	slices.Sort(out)
	return out
}

// Sorted returns the members of s in sorted order.
func (s NameSet) Sorted() []Name {
	out := make([]Name, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}
