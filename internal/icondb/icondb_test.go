package icondb_test

import (
	"os"
	"path/filepath"
	"testing"

	"iconview/internal/errors"
	"iconview/internal/icondb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to write a temporary index document
func writeTestIndex(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "icon_db.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const mixedIndexJSON = `{
  "Item": {
    "Cash": {"1002186": "cash/1002186.png", "5010000": "cash/5010000.png"},
    "Consume": {"2000000": "consume/2000000.png"}
  },
  "Mob": {"100100": "mob/100100.png", "100101": "mob/100101.png"},
  "Npc": {"9010000": "npc/9010000.png"}
}`

func TestLoad(t *testing.T) {
	t.Run("valid index", func(t *testing.T) {
		path := writeTestIndex(t, mixedIndexJSON)
		db, err := icondb.Load(path)

		require.NoError(t, err)
		require.NotNil(t, db)
		assert.Equal(t, []string{"Item", "Mob", "Npc"}, db.Types())
	})

	t.Run("top-level array is rejected", func(t *testing.T) {
		path := writeTestIndex(t, `["Item", "Mob"]`)
		db, err := icondb.Load(path)

		require.Error(t, err)
		assert.Nil(t, db)
		assert.True(t, errors.IsIndexFormat(err))
	})

	t.Run("invalid JSON is rejected", func(t *testing.T) {
		path := writeTestIndex(t, `{"Item": `)
		_, err := icondb.Load(path)

		require.Error(t, err)
		assert.True(t, errors.IsIndexFormat(err))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := icondb.Load(filepath.Join(t.TempDir(), "nope.json"))

		require.Error(t, err)
		assert.False(t, errors.IsIndexFormat(err))
	})

	t.Run("empty object", func(t *testing.T) {
		path := writeTestIndex(t, `{}`)
		db, err := icondb.Load(path)

		require.NoError(t, err)
		assert.Empty(t, db.Types())
	})
}

func TestIsNested(t *testing.T) {
	path := writeTestIndex(t, mixedIndexJSON)
	db, err := icondb.Load(path)
	require.NoError(t, err)

	assert.True(t, db.IsNested("Item"))
	assert.False(t, db.IsNested("Mob"))
	assert.False(t, db.IsNested("Missing"))

	t.Run("all flat values", func(t *testing.T) {
		db, err := icondb.Load(writeTestIndex(t, `{"Mob": {"1": "a.png", "2": "b.png"}}`))
		require.NoError(t, err)
		assert.False(t, db.IsNested("Mob"))
		assert.Empty(t, db.Categories("Mob"))
	})

	t.Run("one mapping value makes the type nested", func(t *testing.T) {
		db, err := icondb.Load(writeTestIndex(t, `{"Item": {"Cash": {"1": "a.png"}, "stray": "b.png"}}`))
		require.NoError(t, err)
		assert.True(t, db.IsNested("Item"))
	})

	t.Run("non-object type value", func(t *testing.T) {
		db, err := icondb.Load(writeTestIndex(t, `{"Broken": "not a mapping"}`))
		require.NoError(t, err)
		assert.False(t, db.IsNested("Broken"))
	})
}

func TestCategories(t *testing.T) {
	db, err := icondb.Load(writeTestIndex(t, mixedIndexJSON))
	require.NoError(t, err)

	assert.Equal(t, []string{"Cash", "Consume"}, db.Categories("Item"))
	assert.Empty(t, db.Categories("Mob"))
	assert.Empty(t, db.Categories("Missing"))
}

func TestEntries(t *testing.T) {
	db, err := icondb.Load(writeTestIndex(t, mixedIndexJSON))
	require.NoError(t, err)

	t.Run("nested type with category", func(t *testing.T) {
		entries := db.Entries("Item", "Cash")
		assert.Equal(t, icondb.Entries{
			"1002186": "cash/1002186.png",
			"5010000": "cash/5010000.png",
		}, entries)
	})

	t.Run("nested type without category", func(t *testing.T) {
		assert.Empty(t, db.Entries("Item", ""))
	})

	t.Run("nested type with unknown category", func(t *testing.T) {
		assert.Empty(t, db.Entries("Item", "Pet"))
	})

	t.Run("flat type ignores category", func(t *testing.T) {
		entries := db.Entries("Mob", "Cash")
		assert.Len(t, entries, 2)
		assert.Equal(t, "mob/100100.png", entries["100100"])
	})

	t.Run("absent type", func(t *testing.T) {
		assert.Empty(t, db.Entries("Missing", ""))
	})

	t.Run("repeated calls return equal mappings", func(t *testing.T) {
		first := db.Entries("Item", "Cash")
		second := db.Entries("Item", "Cash")
		assert.Equal(t, first, second)
	})

	t.Run("mixed type drops non-mapping values", func(t *testing.T) {
		db, err := icondb.Load(writeTestIndex(t, `{"Item": {"Cash": {"1": "a.png"}, "stray": "b.png"}}`))
		require.NoError(t, err)
		// "stray" is not a category, so it is silently invisible
		assert.Empty(t, db.Entries("Item", "stray"))
		assert.Equal(t, icondb.Entries{"1": "a.png"}, db.Entries("Item", "Cash"))
	})

	t.Run("flat type coerces scalar values", func(t *testing.T) {
		db, err := icondb.Load(writeTestIndex(t, `{"Mob": {"1": 42}}`))
		require.NoError(t, err)
		assert.Equal(t, "42", db.Entries("Mob", "")["1"])
	})
}

func TestSortIDs(t *testing.T) {
	t.Run("numeric ids order by value before non-numeric", func(t *testing.T) {
		ids := []string{"10", "2", "abc", "1"}
		icondb.SortIDs(ids)
		assert.Equal(t, []string{"1", "2", "10", "abc"}, ids)
	})

	t.Run("lexicographic order for non-numeric ids", func(t *testing.T) {
		ids := []string{"zeta", "Alpha", "beta", "100"}
		icondb.SortIDs(ids)
		assert.Equal(t, []string{"100", "Alpha", "beta", "zeta"}, ids)
	})

	t.Run("ids longer than 64 bits still order numerically", func(t *testing.T) {
		ids := []string{"99999999999999999999999", "100000000000000000000000", "5"}
		icondb.SortIDs(ids)
		assert.Equal(t, []string{"5", "99999999999999999999999", "100000000000000000000000"}, ids)
	})

	t.Run("empty id counts as non-numeric", func(t *testing.T) {
		ids := []string{"1", ""}
		icondb.SortIDs(ids)
		assert.Equal(t, []string{"1", ""}, ids)
	})
}

func TestFilterIDs(t *testing.T) {
	ids := []string{"100", "200", "Abc"}

	t.Run("substring match preserves order", func(t *testing.T) {
		assert.Equal(t, []string{"100", "200"}, icondb.FilterIDs(ids, "0"))
	})

	t.Run("case-sensitive", func(t *testing.T) {
		assert.Empty(t, icondb.FilterIDs(ids, "abc"))
		assert.Equal(t, []string{"Abc"}, icondb.FilterIDs(ids, "Abc"))
	})

	t.Run("empty filter keeps everything", func(t *testing.T) {
		assert.Equal(t, ids, icondb.FilterIDs(ids, ""))
	})
}

func TestSortedIDs(t *testing.T) {
	db, err := icondb.Load(writeTestIndex(t, `{"Mob": {"10": "a", "2": "b", "abc": "c", "1": "d"}}`))
	require.NoError(t, err)

	entries := db.Entries("Mob", "")
	assert.Equal(t, []string{"1", "2", "10", "abc"}, entries.SortedIDs(""))
	assert.Equal(t, []string{"1", "10"}, entries.SortedIDs("1"))
}
