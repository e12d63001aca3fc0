// Package checker warns about sub-optimal layouts: chords nothing types,
// sequences nothing chords, names sharing a chord, skipped anagram numbers
// and chord names a kmap defines twice. Problems that would break the
// firmware are caught while loading instead.
//
// A word or anagram modifier may share its chord with one other name, so
// that pressing it alone does something different. The checker does not
// notice a modifier that shares only some switches with a multi-switch
// letter, even though that confuses the word lookup.
package checker

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/pterm/pterm"

	"github.com/pipit-keyboard/chordc/registry"
	"github.com/pipit-keyboard/chordc/types"
)

// MissingSymbol stands in for an anagram number no name uses.
const MissingSymbol = "???"

// AnagramSet holds the names sharing one base chord, by anagram number.
type AnagramSet map[types.AnagramNum][]types.Name

// KmapConflicts are the invalid anagram sets of one kmap.
type KmapConflicts struct {
	Kmap types.KmapPath
	Sets []AnagramSet
}

// KmapDuplicates are the names one kmap defines more than once.
type KmapDuplicates struct {
	Kmap  types.KmapPath
	Names []types.Name
}

// Report is the result of checking a model.
type Report struct {
	UnusedChords    []types.Name
	UnusedSequences []types.Name
	Conflicts       []KmapConflicts
	Duplicates      []KmapDuplicates
}

// Section is one headed list of report items.
type Section struct {
	Heading string
	Items   []string
}

// Check inspects the model.
func Check(d *registry.AllData) *Report {
	mods := d.WordOrAnagramModifiers()

	chordNames := types.NewNameSet()
	for _, path := range d.KmapPaths() {
		for _, n := range d.ChordNames(path) {
			chordNames.Add(n)
		}
	}
	seqsAndMods := types.NewNameSet(mods.Sorted()...)
	for _, t := range types.AllSeqTypes {
		for _, n := range d.SequenceNames(t) {
			seqsAndMods.Add(n)
		}
	}

	r := &Report{
		UnusedChords:    chordNames.Difference(seqsAndMods),
		UnusedSequences: seqsAndMods.Difference(chordNames),
	}

	for _, path := range d.KmapPaths() {
		if sets := conflicts(d.ChordsIn(path), mods); len(sets) > 0 {
			r.Conflicts = append(r.Conflicts, KmapConflicts{Kmap: path, Sets: sets})
		}
		if dups := d.Duplicates(path); len(dups) > 0 {
			r.Duplicates = append(r.Duplicates, KmapDuplicates{Kmap: path, Names: dups})
		}
	}
	return r
}

// conflicts groups a kmap's chords by base chord and returns the invalid
// groups, ordered by their rendering.
func conflicts(chords map[types.Name]types.Chord, mods types.NameSet) []AnagramSet {
	byBase := make(map[string]AnagramSet)
	names := make([]types.Name, 0, len(chords))
	for n := range chords {
		names = append(names, n)
	}
	for _, n := range types.SortNames(names) {
		c := chords[n]
		set, ok := byBase[c.BaseKey()]
		if !ok {
			set = make(AnagramSet)
			byBase[c.BaseKey()] = set
		}
		set[c.Anagram] = append(set[c.Anagram], n)
	}

	var out []AnagramSet
	for _, set := range byBase {
		if !set.Valid(mods) {
			out = append(out, set)
		}
	}
	slices.SortFunc(out, func(a, b AnagramSet) int {
		return strings.Compare(a.String(), b.String())
	})
	return out
}

// Valid reports whether every anagram number up to the largest is used,
// and used by one name, or by a pair of which exactly one is a word or
// anagram modifier.
func (s AnagramSet) Valid(mods types.NameSet) bool {
	for _, names := range s {
		switch len(names) {
		case 1:
		case 2:
			if !pairLegal(names[0], names[1], mods) {
				return false
			}
		default:
			return false
		}
	}
	for _, n := range s.MaxAnagram().UpTo() {
		if _, ok := s[n]; !ok {
			return false
		}
	}
	return true
}

func pairLegal(a, b types.Name, mods types.NameSet) bool {
	return mods.Contains(a) != mods.Contains(b)
}

// MaxAnagram is the largest anagram number in the set.
func (s AnagramSet) MaxAnagram() types.AnagramNum {
	var m types.AnagramNum
	for n := range s {
		m = max(m, n)
	}
	return m
}

func (s AnagramSet) String() string {
	var parts []string
	for _, n := range s.MaxAnagram().UpTo() {
		names, ok := s[n]
		switch {
		case !ok:
			parts = append(parts, MissingSymbol)
		case len(names) == 1:
			parts = append(parts, names[0].String())
		default:
			strs := make([]string, len(names))
			for i, name := range names {
				strs[i] = name.String()
			}
			parts = append(parts, "("+strings.Join(strs, ", ")+")")
		}
	}
	return "anagrams: [" + strings.Join(parts, ", ") + "]"
}

// Sections lists the report's findings under their headings. Empty
// sections are left out.
func (r *Report) Sections() []Section {
	var out []Section
	add := func(heading string, items []string) {
		if len(items) > 0 {
			out = append(out, Section{Heading: heading, Items: items})
		}
	}

	add("Unused chords:", nameStrings(r.UnusedChords))
	add("Unused sequences:", nameStrings(r.UnusedSequences))
	for _, c := range r.Conflicts {
		items := make([]string, len(c.Sets))
		for i, s := range c.Sets {
			items[i] = s.String()
		}
		add(fmt.Sprintf("Conflicting chords (in parens) or skipped anagrams (%q) in '%s':", MissingSymbol, c.Kmap), items)
	}
	for _, d := range r.Duplicates {
		add(fmt.Sprintf("Chords defined more than once in '%s':", d.Kmap), nameStrings(d.Names))
	}
	return out
}

// Empty reports whether the check found nothing.
func (r *Report) Empty() bool {
	return len(r.Sections()) == 0
}

// Print writes every section to w, one indented item per line and a blank
// line after each section.
func (r *Report) Print(w io.Writer) {
	for _, s := range r.Sections() {
		pterm.Fprintln(w, pterm.Yellow(s.Heading))
		for _, item := range s.Items {
			pterm.Fprintln(w, "  "+item)
		}
		pterm.Fprintln(w)
	}
}

func nameStrings(names []types.Name) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = n.String()
	}
	return out
}
