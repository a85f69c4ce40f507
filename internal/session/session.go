// Package session models the browsing state of a single viewer session:
// the loaded index, the chosen image root, and the current type, category,
// filter, and id selection. It is an explicit, passed-around object with no
// toolkit dependencies, so the GUI, TUI, and CLI front ends all drive the
// same transitions.
package session

import (
	"path/filepath"
	"strings"
	"sync"

	"iconview/internal/errors"
	"iconview/internal/icondb"
)

// Session holds the in-memory browsing state. A session persists for the
// process lifetime and is replaced wholesale on each index load. It is
// safe for concurrent use; reloads can arrive from a watcher goroutine
// while the front end reads the selection.
type Session struct {
	mu         sync.RWMutex
	db         icondb.Index
	dbPath     string
	root       string
	typeName   string
	category   string
	filter     string
	selectedID string
}

// New creates an empty session with no index loaded.
func New() *Session {
	return &Session{}
}

// LoadIndex loads an icon index document and resets the selection: the
// first type is auto-selected, and for nested types so is the first
// category. A failed load leaves the prior state untouched.
func (s *Session) LoadIndex(path string) error {
	db, err := icondb.Load(path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.db = db
	s.dbPath = path
	s.typeName = ""
	s.category = ""
	s.filter = ""
	s.selectedID = ""

	if types := db.Types(); len(types) > 0 {
		s.selectType(types[0])
	}
	return nil
}

// Loaded reports whether an index has been loaded.
func (s *Session) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.db != nil
}

// Index returns the loaded index, or nil.
func (s *Session) Index() icondb.Index {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.db
}

// IndexPath returns the path the current index was loaded from.
func (s *Session) IndexPath() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dbPath
}

// SetRoot records the root directory relative image paths resolve against.
func (s *Session) SetRoot(dir string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.root = dir
}

// Root returns the current root directory; empty when unset.
func (s *Session) Root() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.root
}

// HasRoot reports whether a root directory has been chosen.
func (s *Session) HasRoot() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.root != ""
}

// Types returns the sorted type names of the loaded index.
func (s *Session) Types() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return []string{}
	}
	return s.db.Types()
}

// Type returns the currently selected type; empty when none.
func (s *Session) Type() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.typeName
}

// SelectType switches the current type. Nested types auto-select their
// first category; flat types clear the category. The id selection is
// dropped either way.
func (s *Session) SelectType(typeName string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectType(typeName)
}

func (s *Session) selectType(typeName string) {
	s.typeName = typeName
	s.category = ""
	s.selectedID = ""

	if s.db != nil && s.db.IsNested(typeName) {
		if cats := s.db.Categories(typeName); len(cats) > 0 {
			s.category = cats[0]
		}
	}
}

// IsNested reports whether the current type uses categories.
func (s *Session) IsNested() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isNested()
}

func (s *Session) isNested() bool {
	return s.db != nil && s.db.IsNested(s.typeName)
}

// Categories returns the categories of the current type; empty for flat
// types.
func (s *Session) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return []string{}
	}
	return s.db.Categories(s.typeName)
}

// Category returns the currently selected category; meaningful only when
// the current type is nested.
func (s *Session) Category() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.category
}

// SelectCategory switches the current category without changing the type.
// It is invalid unless the current type is nested.
func (s *Session) SelectCategory(category string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isNested() {
		return errors.Newf("type %q has no categories", s.typeName)
	}
	s.category = category
	s.selectedID = ""
	return nil
}

// SetFilter updates the id filter text. Surrounding whitespace is ignored
// and only the visible id list changes.
func (s *Session) SetFilter(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = strings.TrimSpace(text)
}

// Filter returns the current filter text.
func (s *Session) Filter() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter
}

// Entries returns the id to relative path mapping for the current
// type/category selection.
func (s *Session) Entries() icondb.Entries {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries()
}

func (s *Session) entries() icondb.Entries {
	if s.db == nil {
		return icondb.Entries{}
	}
	return s.db.Entries(s.typeName, s.category)
}

// VisibleIDs returns the presentation-ordered, filtered id list for the
// current selection.
func (s *Session) VisibleIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries().SortedIDs(s.filter)
}

// SelectID marks an id as selected and resolves its image path against the
// root directory. Type, category, and filter are untouched. The selection
// is recorded even when resolution fails, so the front end can retry after
// the user picks a root.
func (s *Session) SelectID(id string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selectedID = id

	rel, ok := s.entries()[id]
	if !ok {
		return "", errors.Newf("id %q not present under %s/%s", id, s.typeName, s.category)
	}
	return s.resolve(rel)
}

// SelectedID returns the currently selected id; empty when none.
func (s *Session) SelectedID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedID
}

// Resolve joins the root directory with a relative path and normalizes the
// result. Existence is not checked here; the image loader reports missing
// files. An unset root yields a RootNotSet error.
func (s *Session) Resolve(relPath string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resolve(relPath)
}

func (s *Session) resolve(relPath string) (string, error) {
	if s.root == "" {
		return "", errors.NewPathError("image root not set", relPath, errors.RootNotSet, nil)
	}
	return filepath.Clean(filepath.Join(s.root, relPath)), nil
}
