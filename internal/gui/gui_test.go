package gui

import (
	"os"
	"path/filepath"
	"testing"

	"iconview/internal/config"
	"iconview/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestIndex(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "icon_db.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const testIndexJSON = `{
  "Item": {"Cash": {"1002186": "cash/1002186.png"}},
  "Mob": {"100100": "mob/100100.png"}
}`

// TestNewApp checks if the GUI application initializes without errors.
func TestNewApp(t *testing.T) {
	guiApp := NewApp(config.New(), session.New())

	require.NotNil(t, guiApp)
	require.NotNil(t, guiApp.GetMainWindow())
	assert.Equal(t, "Ready", guiApp.Status())
}

func TestLoadIndexUpdatesControls(t *testing.T) {
	guiApp := NewApp(config.New(), session.New())

	guiApp.LoadIndex(writeTestIndex(t, testIndexJSON))

	assert.Equal(t, "icon_db.json loaded", guiApp.Status())
	assert.Equal(t, []string{"Item", "Mob"}, guiApp.typeSelect.Options)

	// First type is nested, so the category selector is populated and shown
	assert.Equal(t, "Item", guiApp.typeSelect.Selected)
	assert.Equal(t, []string{"Cash"}, guiApp.categorySelect.Options)
	assert.True(t, guiApp.categoryBox.Visible())
	assert.Equal(t, []string{"1002186"}, guiApp.visibleIDs)
}

func TestLoadIndexFailureKeepsState(t *testing.T) {
	guiApp := NewApp(config.New(), session.New())
	guiApp.LoadIndex(writeTestIndex(t, testIndexJSON))

	guiApp.LoadIndex(writeTestIndex(t, `["not an object"]`))

	assert.Equal(t, "Error loading icon_db.json", guiApp.Status())
	// Prior selection survives a failed load
	assert.Equal(t, "Item", guiApp.Session().Type())
	assert.Equal(t, []string{"1002186"}, guiApp.visibleIDs)
}

func TestSelectFlatTypeHidesCategory(t *testing.T) {
	guiApp := NewApp(config.New(), session.New())
	guiApp.LoadIndex(writeTestIndex(t, testIndexJSON))

	guiApp.typeSelect.SetSelected("Mob")

	assert.False(t, guiApp.categoryBox.Visible())
	assert.Equal(t, []string{"100100"}, guiApp.visibleIDs)
	assert.Equal(t, "Mob: 1 entries", guiApp.titleLabel.Text)
}

func TestFilterNarrowsList(t *testing.T) {
	guiApp := NewApp(config.New(), session.New())
	guiApp.LoadIndex(writeTestIndex(t, `{"Mob": {"100": "a.png", "200": "b.png", "Abc": "c.png"}}`))

	guiApp.filterEntry.SetText("0")
	assert.Equal(t, []string{"100", "200"}, guiApp.visibleIDs)

	guiApp.filterEntry.SetText("")
	assert.Equal(t, []string{"100", "200", "Abc"}, guiApp.visibleIDs)
}

func TestSelectIDWithoutRoot(t *testing.T) {
	guiApp := NewApp(config.New(), session.New())
	guiApp.LoadIndex(writeTestIndex(t, testIndexJSON))

	guiApp.onIDSelected("1002186")

	assert.Equal(t, "PNG root not set", guiApp.Status())
	// Selection state is untouched by the failure
	assert.Equal(t, "Item", guiApp.Session().Type())
}

func TestSelectIDMissingFile(t *testing.T) {
	guiApp := NewApp(config.New(), session.New())
	guiApp.LoadIndex(writeTestIndex(t, testIndexJSON))
	guiApp.SetRoot(t.TempDir())

	guiApp.onIDSelected("1002186")

	assert.Equal(t, "Image file not found", guiApp.Status())
	assert.True(t, guiApp.missingLabel.Visible())
	assert.Contains(t, guiApp.infoLabel.Text, "Type: Item    Category: Cash    ID: 1002186")
	assert.Contains(t, guiApp.infoLabel.Text, "Missing file: ")
}

func TestIndexChangeCallbackOnlyPosts(t *testing.T) {
	guiApp := NewApp(config.New(), session.New())
	guiApp.LoadIndex(writeTestIndex(t, testIndexJSON))

	guiApp.onIndexChanged("/elsewhere/icon_db.json")

	// The callback queues the path; browsing state is untouched until the
	// drain goroutine picks it up.
	assert.Equal(t, "Item", guiApp.Session().Type())
	assert.Equal(t, []string{"1002186"}, guiApp.visibleIDs)
	assert.Equal(t, "icon_db.json loaded", guiApp.Status())

	select {
	case p := <-guiApp.reloadCh:
		assert.Equal(t, "/elsewhere/icon_db.json", p)
	default:
		t.Fatal("expected a queued reload")
	}
}

func TestIndexChangeCoalesces(t *testing.T) {
	guiApp := NewApp(config.New(), session.New())

	guiApp.onIndexChanged("a.json")
	guiApp.onIndexChanged("b.json") // must not block while one is pending

	assert.Len(t, guiApp.reloadCh, 1)
	assert.Equal(t, "a.json", <-guiApp.reloadCh)
}

func TestCopyWithoutSelection(t *testing.T) {
	guiApp := NewApp(config.New(), session.New())
	guiApp.LoadIndex(writeTestIndex(t, testIndexJSON))

	guiApp.copySelectedID()

	assert.Equal(t, "No ID selected", guiApp.Status())
}
