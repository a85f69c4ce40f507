// Package icondb implements the icon index store: loading the icon_db.json
// document and answering type, category, and id queries over it.
//
// The index is a JSON object mapping type names to either a flat
// {id: relative path} object, or (for nested types such as "Item") a
// {category: {id: relative path}} object. A type counts as nested when at
// least one of its immediate values is itself an object; this is re-derived
// on every query rather than cached. The index is read-only after load.
package icondb

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"iconview/internal/errors"
)

// Index is the parsed icon index document, keyed by type name.
type Index map[string]interface{}

// Entries maps icon ids to relative image paths under a type (and
// category, for nested types).
type Entries map[string]string

// Load reads and parses an icon index document from disk. The top-level
// JSON value must be an object; anything else is rejected with an
// IndexFormat error.
func Load(path string) (Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewIndexError("failed to read icon index", path, errors.IndexNotFound, err)
	}

	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.NewIndexError("failed to parse icon index", path, errors.IndexFormat, err)
	}

	obj, ok := raw.(map[string]interface{})
	if !ok {
		return nil, errors.NewIndexError("icon index must contain a top-level JSON object", path, errors.IndexFormat, nil)
	}

	return Index(obj), nil
}

// Types returns all top-level type names, lexicographically sorted.
func (db Index) Types() []string {
	types := make([]string, 0, len(db))
	for k := range db {
		types = append(types, k)
	}
	sort.Strings(types)
	return types
}

// IsNested reports whether the type uses nested categories, i.e. at least
// one of its immediate values is itself an object. A mixed type (some
// object values, some not) counts as nested; the non-object entries are
// dropped by Entries.
func (db Index) IsNested(typeName string) bool {
	data, ok := db[typeName].(map[string]interface{})
	if !ok {
		return false
	}
	for _, v := range data {
		if _, ok := v.(map[string]interface{}); ok {
			return true
		}
	}
	return false
}

// Categories returns the sorted category names of a nested type.
// Flat and absent types yield an empty slice.
func (db Index) Categories(typeName string) []string {
	if !db.IsNested(typeName) {
		return []string{}
	}

	data := db[typeName].(map[string]interface{})
	cats := make([]string, 0, len(data))
	for k := range data {
		cats = append(cats, k)
	}
	sort.Strings(cats)
	return cats
}

// Entries returns the {id: relative path} mapping for a type. Nested types
// require a category; an empty or unknown category yields an empty mapping.
// Flat types ignore the category argument. Absent types yield an empty
// mapping.
func (db Index) Entries(typeName, category string) Entries {
	data, ok := db[typeName]
	if !ok {
		return Entries{}
	}

	if db.IsNested(typeName) {
		if category == "" {
			return Entries{}
		}
		sub, ok := data.(map[string]interface{})[category].(map[string]interface{})
		if !ok {
			return Entries{}
		}
		return coerceEntries(sub)
	}

	if flat, ok := data.(map[string]interface{}); ok {
		return coerceEntries(flat)
	}

	return Entries{}
}

// coerceEntries converts a raw JSON object into Entries. Scalar values are
// stringified; object values have no usable path and are dropped.
func coerceEntries(raw map[string]interface{}) Entries {
	entries := make(Entries, len(raw))
	for k, v := range raw {
		switch val := v.(type) {
		case string:
			entries[k] = val
		case map[string]interface{}:
			// A category object inside an entry listing; skip it.
		default:
			entries[k] = fmt.Sprint(val)
		}
	}
	return entries
}

// SortIDs orders ids for presentation: ids made entirely of digits come
// first, ascending by integer value, followed by the remaining ids in
// lexicographic order.
func SortIDs(ids []string) {
	sort.SliceStable(ids, func(i, j int) bool {
		ni, nj := isNumeric(ids[i]), isNumeric(ids[j])
		if ni != nj {
			return ni
		}
		if ni && nj {
			return numericLess(ids[i], ids[j])
		}
		return ids[i] < ids[j]
	})
}

// FilterIDs returns the ids containing the filter substring, preserving
// order. Matching is case-sensitive; an empty filter keeps everything.
func FilterIDs(ids []string, filter string) []string {
	if filter == "" {
		return ids
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if strings.Contains(id, filter) {
			out = append(out, id)
		}
	}
	return out
}

// SortedIDs returns the presentation-ordered, filtered id list for a set
// of entries.
func (e Entries) SortedIDs(filter string) []string {
	ids := make([]string, 0, len(e))
	for id := range e {
		ids = append(ids, id)
	}
	SortIDs(ids)
	return FilterIDs(ids, filter)
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// numericLess compares two all-digit strings by integer value without
// parsing, so ids longer than 64 bits still order correctly. Shorter
// trimmed strings are smaller; equal lengths fall back to byte order.
func numericLess(a, b string) bool {
	ta, tb := strings.TrimLeft(a, "0"), strings.TrimLeft(b, "0")
	if len(ta) != len(tb) {
		return len(ta) < len(tb)
	}
	if ta != tb {
		return ta < tb
	}
	// Equal values ("007" vs "7"); more leading zeros sorts first for
	// a deterministic order.
	return len(a) > len(b)
}
