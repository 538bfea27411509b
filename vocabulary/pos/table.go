package pos

import (
	"fmt"
	"sort"
	"sync"
)

// Table maps canonical strings back to tags. A Table is immutable once
// built and safe for concurrent use.
type Table struct {
	byString map[string]Tag
}

type tableEntry struct {
	key string
	tag Tag
}

// BuildReverseTable builds a new reverse table holding every tag the tagger
// can emit: all declared tags except NotSet. Every call returns an
// equivalent table.
func BuildReverseTable() *Table {
	entries := make([]tableEntry, 0, tagCount)
	for _, t := range All() {
		if !t.parseable() {
			continue
		}
		entries = append(entries, tableEntry{key: t.String(), tag: t})
	}
	return newTable(entries)
}

// newTable panics on a duplicate key. A duplicate means two rows of
// tagTable share a canonical string, which no caller can recover from.
func newTable(entries []tableEntry) *Table {
	byString := make(map[string]Tag, len(entries))
	for _, e := range entries {
		if prev, ok := byString[e.key]; ok {
			panic(fmt.Sprintf("pos: canonical string %q shared by %s and %s", e.key, prev.Name(), e.tag.Name()))
		}
		byString[e.key] = e.tag
	}
	return &Table{byString: byString}
}

// Lookup returns the tag whose canonical string is exactly s.
func (tb *Table) Lookup(s string) (Tag, bool) {
	t, ok := tb.byString[s]
	return t, ok
}

// Parse returns the tag whose canonical string is exactly s, or an
// *UnrecognizedTagError. Matching is case-sensitive and s is not trimmed.
func (tb *Table) Parse(s string) (Tag, error) {
	if t, ok := tb.byString[s]; ok {
		return t, nil
	}
	return NotSet, &UnrecognizedTagError{Value: s}
}

// Len returns the number of entries.
func (tb *Table) Len() int {
	return len(tb.byString)
}

// Keys returns the canonical strings in the table, sorted.
func (tb *Table) Keys() []string {
	keys := make([]string, 0, len(tb.byString))
	for k := range tb.byString {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Equal reports whether both tables hold the same entries.
func (tb *Table) Equal(other *Table) bool {
	if other == nil || len(tb.byString) != len(other.byString) {
		return false
	}
	for k, t := range tb.byString {
		if ot, ok := other.byString[k]; !ok || ot != t {
			return false
		}
	}
	return true
}

// Shared reverse table and initialization guard.
var (
	defaultTable *Table
	defaultOnce  sync.Once
)

// Default returns the shared reverse table, building it on first call.
func Default() *Table {
	defaultOnce.Do(func() {
		defaultTable = BuildReverseTable()
	})
	return defaultTable
}

// Lookup looks s up in the shared reverse table.
func Lookup(s string) (Tag, bool) {
	return Default().Lookup(s)
}

// Parse parses s using the shared reverse table.
func Parse(s string) (Tag, error) {
	return Default().Parse(s)
}
