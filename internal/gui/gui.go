package gui

import (
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"iconview/internal/config"
	"iconview/internal/errors"
	"iconview/internal/log"
	"iconview/internal/preview"
	"iconview/internal/session"
	"iconview/internal/watch"
)

// App is the GUI application
type App struct {
	fyneApp    fyne.App
	mainWindow fyne.Window
	cfg        *config.Config
	sess       *session.Session
	watcher    *watch.FileWatcher

	// Left panel
	jsonPathLabel  *widget.Label
	rootPathLabel  *widget.Label
	typeSelect     *widget.Select
	categorySelect *widget.Select
	categoryBox    *fyne.Container
	filterEntry    *widget.Entry
	idList         *widget.List

	// Right panel
	titleLabel   *widget.Label
	previewImage *canvas.Image
	missingLabel *widget.Label
	infoLabel    *widget.Label

	// Bottom status line
	statusLabel *widget.Label

	// Ids currently shown in the list, in presentation order
	visibleIDs []string

	// Pending auto-reload paths posted by the watcher callback.
	// Buffered to one entry; bursts of change events coalesce.
	reloadCh chan string
}

// NewApp creates a new GUI application around a browsing session
func NewApp(cfg *config.Config, sess *session.Session) *App {
	fyneApp := app.NewWithID("io.github.iconview")
	fyneApp.Settings().SetTheme(newViewerTheme(cfg))

	a := &App{
		fyneApp:  fyneApp,
		cfg:      cfg,
		sess:     sess,
		reloadCh: make(chan string, 1),
	}

	a.mainWindow = a.fyneApp.NewWindow("Icon Viewer")
	a.mainWindow.Resize(fyne.NewSize(float32(cfg.Window.Width), float32(cfg.Window.Height)))

	a.buildUI()

	return a
}

// Run starts the GUI application
func (a *App) Run() {
	go a.drainReloads()
	a.mainWindow.Show()
	a.fyneApp.Run()
}

// GetMainWindow returns the main window for testing purposes
func (a *App) GetMainWindow() fyne.Window {
	return a.mainWindow
}

// Session returns the browsing session driven by this GUI
func (a *App) Session() *session.Session {
	return a.sess
}

// Status returns the current status line text
func (a *App) Status() string {
	return a.statusLabel.Text
}

func (a *App) setStatus(text string) {
	a.statusLabel.SetText(text)
}

// buildUI constructs the viewer layout: file selectors, type/category
// selectors, the filterable id list on the left; preview, info block, and
// copy button on the right; status line at the bottom.
func (a *App) buildUI() {
	// --- File selectors ---
	a.jsonPathLabel = widget.NewLabel("No icon_db.json loaded")
	a.jsonPathLabel.Wrapping = fyne.TextWrapBreak
	a.rootPathLabel = widget.NewLabel("No PNG root folder selected")
	a.rootPathLabel.Wrapping = fyne.TextWrapBreak

	loadButton := widget.NewButton("Load icon_db.json", a.onSelectJSON)
	rootButton := widget.NewButton("Select PNG root", a.onSelectRoot)

	// --- Type / Category / Filter ---
	a.typeSelect = widget.NewSelect([]string{}, a.onTypeChanged)
	a.typeSelect.PlaceHolder = "Type"

	a.categorySelect = widget.NewSelect([]string{}, a.onCategoryChanged)
	a.categorySelect.PlaceHolder = "Category"
	a.categoryBox = container.NewVBox(widget.NewLabel("Category:"), a.categorySelect)
	a.categoryBox.Hide() // start hidden, shown only for nested types

	a.filterEntry = widget.NewEntry()
	a.filterEntry.SetPlaceHolder("Search ID")
	a.filterEntry.OnChanged = func(text string) {
		a.sess.SetFilter(text)
		a.refreshIDList()
	}

	// --- ID list ---
	a.idList = widget.NewList(
		func() int {
			return len(a.visibleIDs)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("template id")
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < 0 || id >= len(a.visibleIDs) {
				return // Avoid index out of range
			}
			obj.(*widget.Label).SetText(a.visibleIDs[id])
		},
	)
	a.idList.OnSelected = func(id widget.ListItemID) {
		if id >= 0 && id < len(a.visibleIDs) {
			a.onIDSelected(a.visibleIDs[id])
		}
	}

	left := container.NewBorder(
		container.NewVBox(
			loadButton,
			a.jsonPathLabel,
			rootButton,
			a.rootPathLabel,
			widget.NewSeparator(),
			widget.NewLabel("Type:"),
			a.typeSelect,
			a.categoryBox,
			widget.NewLabel("Search ID:"),
			a.filterEntry,
			widget.NewLabel("IDs"),
		),
		nil, nil, nil,
		a.idList,
	)

	// --- Preview pane ---
	a.titleLabel = widget.NewLabel("No image loaded")
	a.titleLabel.Alignment = fyne.TextAlignCenter

	a.previewImage = &canvas.Image{}
	a.previewImage.FillMode = canvas.ImageFillContain

	a.missingLabel = widget.NewLabel("")
	a.missingLabel.Alignment = fyne.TextAlignCenter
	a.missingLabel.Hide()

	a.infoLabel = widget.NewLabel("")

	copyButton := widget.NewButton("Copy ID", a.copySelectedID)

	right := container.NewBorder(
		a.titleLabel,
		container.NewVBox(a.infoLabel, container.NewHBox(copyButton)),
		nil, nil,
		container.NewStack(a.previewImage, a.missingLabel),
	)

	// --- Status line ---
	a.statusLabel = widget.NewLabel("Ready")

	split := container.NewHSplit(left, right)
	split.SetOffset(0.3)

	a.mainWindow.SetContent(container.NewBorder(
		nil,
		a.statusLabel,
		nil, nil,
		split,
	))
}

// onSelectJSON opens the index file dialog
func (a *App) onSelectJSON() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		_ = reader.Close()
		a.LoadIndex(path)
	}, a.mainWindow)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".json"}))
	d.Show()
}

// LoadIndex loads an icon index document and refreshes every control.
// A failed load reports a blocking dialog and leaves prior state untouched.
func (a *App) LoadIndex(path string) {
	if err := a.sess.LoadIndex(path); err != nil {
		a.ShowError("Failed to load icon_db.json", err)
		a.setStatus("Error loading icon_db.json")
		return
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	a.jsonPathLabel.SetText(abs)
	a.setStatus("icon_db.json loaded")
	log.Infof("loaded icon index %s (%d types)", abs, len(a.sess.Types()))

	types := a.sess.Types()
	a.typeSelect.Options = types
	if len(types) > 0 {
		// Session already selected the first type; sync the widget,
		// which re-runs onTypeChanged idempotently.
		a.typeSelect.SetSelected(a.sess.Type())
	} else {
		a.typeSelect.ClearSelected()
		a.hideCategory()
		a.clearIDs()
		a.titleLabel.SetText("No types in JSON")
	}

	a.restartWatcher(path)
}

// onSelectRoot opens the image root folder dialog
func (a *App) onSelectRoot() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		a.SetRoot(uri.Path())
	}, a.mainWindow)
}

// SetRoot records the directory relative image paths resolve against
func (a *App) SetRoot(dir string) {
	a.sess.SetRoot(dir)
	a.rootPathLabel.SetText(dir)
	a.setStatus("PNG root set to: " + dir)
}

func (a *App) onTypeChanged(typeName string) {
	if typeName == "" {
		a.hideCategory()
		a.clearIDs()
		return
	}

	a.sess.SelectType(typeName)

	if cats := a.sess.Categories(); len(cats) > 0 {
		a.categorySelect.Options = cats
		a.categorySelect.SetSelected(a.sess.Category())
		a.categoryBox.Show()
	} else {
		a.hideCategory()
	}

	a.refreshIDList()
}

func (a *App) onCategoryChanged(category string) {
	if category == "" || !a.sess.IsNested() {
		return
	}
	if err := a.sess.SelectCategory(category); err != nil {
		log.Warnf("category selection rejected: %v", err)
		return
	}
	a.refreshIDList()
}

// refreshIDList re-derives the visible id list from the session and resets
// the preview pane.
func (a *App) refreshIDList() {
	a.clearIDs()

	typeName := a.sess.Type()
	if typeName == "" {
		a.titleLabel.SetText("No type selected")
		return
	}

	a.visibleIDs = a.sess.VisibleIDs()
	a.idList.Refresh()

	category := ""
	if a.sess.IsNested() {
		category = a.sess.Category()
	}

	if category != "" {
		a.titleLabel.SetText(fmt.Sprintf("%s/%s: %d entries", typeName, category, len(a.visibleIDs)))
	} else {
		a.titleLabel.SetText(fmt.Sprintf("%s: %d entries", typeName, len(a.visibleIDs)))
	}
}

// onIDSelected resolves and previews the image behind an id
func (a *App) onIDSelected(id string) {
	fullPath, err := a.sess.SelectID(id)
	if err != nil {
		if errors.IsRootNotSet(err) {
			a.setStatus("PNG root not set")
			dialog.ShowInformation(
				"PNG root not set",
				"Please select the PNG root folder first.",
				a.mainWindow,
			)
			return
		}
		log.Warnf("id selection failed: %v", err)
		return
	}

	res, err := preview.Load(fullPath, a.cfg.Preview.MaxWidth, a.cfg.Preview.MaxHeight)
	if err != nil {
		if errors.IsImageDecode(err) {
			// Decode failures get a blocking dialog, then fall back to
			// the inline missing presentation.
			a.ShowError("Failed to load image", err)
		}
		a.showMissingImage(fullPath, id)
		return
	}

	// Replacing the image reference releases the previous bitmap
	a.previewImage.Image = res.Image
	a.previewImage.Refresh()
	a.missingLabel.Hide()
	a.previewImage.Show()

	a.infoLabel.SetText(a.selectionInfo(id) + "\nPath: " + fullPath)
	a.setStatus("Image loaded")
}

// selectionInfo renders the "Type ... Category ... ID" prefix of the info
// block for the current selection.
func (a *App) selectionInfo(id string) string {
	typeName := a.sess.Type()
	if typeName == "" {
		typeName = "?"
	}
	if a.sess.IsNested() {
		category := a.sess.Category()
		if category == "" {
			category = "?"
		}
		return fmt.Sprintf("Type: %s    Category: %s    ID: %s", typeName, category, id)
	}
	return fmt.Sprintf("Type: %s    ID: %s", typeName, id)
}

// showMissingImage presents the inline not-found state with the attempted
// path, without a blocking dialog.
func (a *App) showMissingImage(fullPath, id string) {
	a.previewImage.Image = nil
	a.previewImage.Hide()
	a.missingLabel.SetText("Image not found")
	a.missingLabel.Show()

	a.infoLabel.SetText(a.selectionInfo(id) + "\nMissing file: " + fullPath)
	a.setStatus("Image file not found")
}

// copySelectedID puts the selected id on the system clipboard
func (a *App) copySelectedID() {
	id := a.sess.SelectedID()
	if id == "" {
		a.setStatus("No ID selected")
		return
	}

	a.mainWindow.Clipboard().SetContent(id)
	a.setStatus("Copied ID: " + id)
}

func (a *App) clearIDs() {
	a.visibleIDs = nil
	a.idList.UnselectAll()
	a.idList.Refresh()
	a.previewImage.Image = nil
	a.previewImage.Refresh()
	a.missingLabel.Hide()
	a.infoLabel.SetText("")
}

func (a *App) hideCategory() {
	a.categoryBox.Hide()
	a.categorySelect.Options = nil
	a.categorySelect.ClearSelected()
}

// restartWatcher rebinds the opt-in auto-reload watcher to the freshly
// loaded index file.
func (a *App) restartWatcher(path string) {
	if a.watcher != nil {
		a.watcher.Stop()
		a.watcher = nil
	}
	if !a.cfg.Behavior.AutoReload {
		return
	}

	w, err := watch.New(path, a.onIndexChanged)
	if err != nil {
		log.Warnf("could not watch index file: %v", err)
		return
	}
	if err := w.Start(); err != nil {
		log.Warnf("could not start index watcher: %v", err)
		return
	}
	a.watcher = w
}

// onIndexChanged runs on the watcher goroutine. It only posts the path;
// the reload itself happens in drainReloads, so the callback never touches
// session or widget state.
func (a *App) onIndexChanged(path string) {
	select {
	case a.reloadCh <- path:
	default:
		// A reload is already pending; coalesce.
	}
}

// drainReloads performs the queued reloads, serialized on one goroutine
// away from the watcher.
func (a *App) drainReloads() {
	for path := range a.reloadCh {
		log.Infof("index file changed, reloading: %s", path)
		a.LoadIndex(path)
	}
}

// ShowError displays an error message
func (a *App) ShowError(message string, err error) {
	log.Errorf("%s: %v", message, err)
	dialog.ShowError(fmt.Errorf("%s: %w", message, err), a.mainWindow)
}

// ShowInfo displays an information message
func (a *App) ShowInfo(message string) {
	log.Info(message)
	dialog.ShowInformation("Info", message, a.mainWindow)
}
