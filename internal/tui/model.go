// Package tui implements the terminal browser over an icon index: panes
// for types, categories, and ids, a live filter, and an info block for the
// selected entry. It drives the same session object as the GUI.
package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"iconview/internal/errors"
	"iconview/internal/preview"
	"iconview/internal/session"
)

type pane int

const (
	paneTypes pane = iota
	paneCategories
	paneIDs
)

const maxVisibleRows = 18

type Model struct {
	sess    *session.Session
	version string

	// Pane focus and per-pane cursors
	pane       pane
	typeCursor int
	catCursor  int
	idCursor   int

	// Cached visible id list for the current selection and filter
	ids []string

	// Filter entry state
	filtering   bool
	filterInput textinput.Model

	statusMsg string
	infoBlock string
	width     int
	height    int
}

// New creates a TUI model around a session. The session may already have
// an index and root configured by the command line.
func New(sess *session.Session, version string) *Model {
	ti := textinput.New()
	ti.Placeholder = "substring"
	ti.CharLimit = 64
	ti.Width = 24

	m := &Model{
		sess:        sess,
		version:     version,
		filterInput: ti,
		statusMsg:   "Ready",
	}
	if sess.Loaded() {
		m.statusMsg = "icon_db.json loaded"
	}
	m.ids = sess.VisibleIDs()
	return m
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if m.filtering {
			return m.handleFilterKeys(msg)
		}
		return m.handleBrowseKeys(msg)
	}
	return m, nil
}

func (m *Model) handleFilterKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.filtering = false
		m.filterInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.sess.SetFilter(m.filterInput.Value())
	m.refreshIDs()
	return m, cmd
}

func (m *Model) handleBrowseKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab":
		m.nextPane()
	case "shift+tab":
		m.prevPane()
	case "j", "down":
		m.moveCursor(1)
	case "k", "up":
		m.moveCursor(-1)
	case "g":
		m.setCursor(0)
	case "G":
		m.setCursor(1 << 30)
	case "/":
		m.filtering = true
		m.filterInput.Focus()
	case "enter", " ":
		if m.pane == paneIDs {
			m.previewSelected()
		}
	case "c":
		m.copySelectedID()
	}
	return m, nil
}

func (m *Model) nextPane() {
	m.pane++
	if m.pane > paneIDs {
		m.pane = paneTypes
	}
	if m.pane == paneCategories && !m.sess.IsNested() {
		m.pane = paneIDs
	}
}

func (m *Model) prevPane() {
	m.pane--
	if m.pane < paneTypes {
		m.pane = paneIDs
	}
	if m.pane == paneCategories && !m.sess.IsNested() {
		m.pane = paneTypes
	}
}

func (m *Model) moveCursor(delta int) {
	switch m.pane {
	case paneTypes:
		m.setCursor(m.typeCursor + delta)
	case paneCategories:
		m.setCursor(m.catCursor + delta)
	case paneIDs:
		m.setCursor(m.idCursor + delta)
	}
}

// setCursor clamps and applies a cursor position in the active pane.
// Moving in the type or category panes immediately switches the selection,
// mirroring the GUI selectors.
func (m *Model) setCursor(pos int) {
	switch m.pane {
	case paneTypes:
		types := m.sess.Types()
		m.typeCursor = clamp(pos, len(types))
		if len(types) > 0 {
			m.sess.SelectType(types[m.typeCursor])
			m.catCursor = 0
			m.refreshIDs()
		}
	case paneCategories:
		cats := m.sess.Categories()
		m.catCursor = clamp(pos, len(cats))
		if len(cats) > 0 {
			if err := m.sess.SelectCategory(cats[m.catCursor]); err == nil {
				m.refreshIDs()
			}
		}
	case paneIDs:
		m.idCursor = clamp(pos, len(m.ids))
	}
}

func clamp(pos, length int) int {
	if length == 0 {
		return 0
	}
	if pos < 0 {
		return 0
	}
	if pos >= length {
		return length - 1
	}
	return pos
}

func (m *Model) refreshIDs() {
	m.ids = m.sess.VisibleIDs()
	m.idCursor = 0
	m.infoBlock = ""
}

// previewSelected resolves the id under the cursor and fills the info
// block with its path, natural dimensions, and file size.
func (m *Model) previewSelected() {
	if len(m.ids) == 0 {
		return
	}
	id := m.ids[m.idCursor]

	fullPath, err := m.sess.SelectID(id)
	if err != nil {
		if errors.IsRootNotSet(err) {
			m.statusMsg = "PNG root not set"
			m.infoBlock = errorStyle.Render("Select an image root first (start with --root)")
		}
		return
	}

	var lines []string
	lines = append(lines, selectionInfo(m.sess, id))

	w, h, err := preview.Size(fullPath)
	if err != nil {
		m.statusMsg = "Image file not found"
		lines = append(lines, "Missing file: "+fullPath)
		m.infoBlock = strings.Join(lines, "\n")
		return
	}

	size := "?"
	if fi, err := os.Stat(fullPath); err == nil {
		size = humanize.Bytes(uint64(fi.Size()))
	}

	lines = append(lines, "Path: "+fullPath)
	lines = append(lines, fmt.Sprintf("Size: %dx%d px, %s", w, h, size))
	m.infoBlock = strings.Join(lines, "\n")
	m.statusMsg = "Image loaded"
}

func selectionInfo(sess *session.Session, id string) string {
	if sess.IsNested() {
		return fmt.Sprintf("Type: %s    Category: %s    ID: %s", sess.Type(), sess.Category(), id)
	}
	return fmt.Sprintf("Type: %s    ID: %s", sess.Type(), id)
}

func (m *Model) copySelectedID() {
	id := m.sess.SelectedID()
	if id == "" && len(m.ids) > 0 {
		id = m.ids[m.idCursor]
	}
	if id == "" {
		m.statusMsg = "No ID selected"
		return
	}

	if err := clipboard.WriteAll(id); err != nil {
		m.statusMsg = "Clipboard unavailable"
		return
	}
	m.statusMsg = "Copied ID: " + id
}

// View implements tea.Model
func (m *Model) View() string {
	var panes []string

	panes = append(panes, m.renderPane("Types", m.sess.Types(), m.typeCursor, m.pane == paneTypes))
	if m.sess.IsNested() {
		panes = append(panes, m.renderPane("Categories", m.sess.Categories(), m.catCursor, m.pane == paneCategories))
	}

	idTitle := fmt.Sprintf("IDs (%d)", len(m.ids))
	panes = append(panes, m.renderPane(idTitle, m.ids, m.idCursor, m.pane == paneIDs))

	body := lipgloss.JoinHorizontal(lipgloss.Top, panes...)

	var sections []string
	sections = append(sections, body)
	if m.filtering {
		sections = append(sections, "Filter: "+m.filterInput.View())
	} else if v := m.filterInput.Value(); v != "" {
		sections = append(sections, statusStyle.Render("Filter: "+v))
	}
	if m.infoBlock != "" {
		sections = append(sections, infoStyle.Render(m.infoBlock))
	}
	keybar := fmt.Sprintf("iconview %s  |  %s  |  tab: pane  /: filter  enter: preview  c: copy  q: quit", m.version, m.statusMsg)
	sections = append(sections, statusStyle.Render(keybar))

	return appStyle.Render(strings.Join(sections, "\n"))
}

// renderPane draws a scrolling single-column list with a cursor marker.
func (m *Model) renderPane(title string, items []string, cursor int, active bool) string {
	var s strings.Builder

	ts := titleStyle
	if active {
		ts = activeTitleStyle
	}
	s.WriteString(ts.Render(title) + "\n")

	if len(items) == 0 {
		s.WriteString(statusStyle.Render("(empty)") + "\n")
		return paneStyle.Render(s.String())
	}

	// Keep the cursor inside the visible window
	start := 0
	if cursor >= maxVisibleRows {
		start = cursor - maxVisibleRows + 1
	}
	end := start + maxVisibleRows
	if end > len(items) {
		end = len(items)
	}

	for i := start; i < end; i++ {
		marker := "  "
		style := unselectedStyle
		if i == cursor && active {
			marker = "> "
			style = selectedStyle
		}
		s.WriteString(marker + style.Render(items[i]) + "\n")
	}
	if end < len(items) {
		s.WriteString(statusStyle.Render(fmt.Sprintf("… %d more", len(items)-end)) + "\n")
	}

	return paneStyle.Render(s.String())
}

// Getters used by tests

// IDs returns the visible id list.
func (m *Model) IDs() []string {
	return m.ids
}

// Cursor returns the id-pane cursor position.
func (m *Model) Cursor() int {
	return m.idCursor
}

// Status returns the status line text.
func (m *Model) Status() string {
	return m.statusMsg
}

// Session returns the session driven by this model.
func (m *Model) Session() *session.Session {
	return m.sess
}
