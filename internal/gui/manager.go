package gui

import (
	"food-menu/internal/catalog"
	"food-menu/internal/gui/components"
	"food-menu/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const (
	MainWindowTitle  = "Food Menu"
	MainWindowWidth  = 600
	MainWindowHeight = 400
)

// Manager owns the main window and the category windows opened from it.
// All methods must run on the Fyne UI goroutine.
type Manager struct {
	app        fyne.App
	window     fyne.Window
	logger     logger.Logger
	describer  Describer
	logoPath   string
	categories []string
	isShutdown bool

	catalog *catalog.Catalog
	views   map[string]*CategoryView

	logo      *components.ImageDisplay
	statusBar *components.StatusBar
}

// NewManager takes the fixed category set; categories without data still get
// a button and open a "no data" window.
func NewManager(fyneApp fyne.App, window fyne.Window, categories []string,
	describer Describer, logoPath string, log logger.Logger) *Manager {

	if log == nil {
		log = logger.NoOp{}
	}

	return &Manager{
		app:        fyneApp,
		window:     window,
		logger:     log,
		describer:  describer,
		logoPath:   logoPath,
		categories: categories,
		views:      make(map[string]*CategoryView),
		logo:       components.NewImageDisplay(logoPath),
		statusBar:  components.NewStatusBar(),
	}
}

// SetCatalog replaces the displayed catalog. Open category windows keep the
// items they were opened with.
func (m *Manager) SetCatalog(result catalog.BuildResult) {
	m.catalog = result.Catalog
	m.statusBar.SetSummary(
		result.Catalog.TotalItems(),
		len(result.Catalog.Categories()),
		len(result.Diagnostics),
	)

	m.logger.Debug("GUIManager", "catalog set", map[string]interface{}{
		"items":       result.Catalog.TotalItems(),
		"diagnostics": len(result.Diagnostics),
	})
}

func (m *Manager) GetMainContainer() *fyne.Container {
	buttons := container.NewHBox()
	for _, name := range m.categories {
		buttons.Add(widget.NewButton(name, func() { m.OpenCategory(name) }))
	}

	return container.NewBorder(
		container.NewCenter(buttons),
		m.statusBar.GetContainer(),
		nil, nil,
		m.logo.GetContainer(),
	)
}

func (m *Manager) MainMenu() *fyne.MainMenu {
	items := make([]*fyne.MenuItem, 0, len(m.categories))
	for _, name := range m.categories {
		items = append(items, fyne.NewMenuItem(name, func() { m.OpenCategory(name) }))
	}
	return fyne.NewMainMenu(fyne.NewMenu("Menu", items...))
}

// Show lays out and displays the main window.
func (m *Manager) Show() {
	m.window.SetMainMenu(m.MainMenu())
	m.window.SetContent(m.GetMainContainer())
	m.window.Resize(fyne.NewSize(MainWindowWidth, MainWindowHeight))
	m.window.CenterOnScreen()
	m.window.Show()
}

// OpenCategory shows the category's window, focusing it if already open.
func (m *Manager) OpenCategory(name string) *CategoryView {
	if view, ok := m.views[name]; ok {
		view.Window().RequestFocus()
		return view
	}

	items := m.catalog.Items(name)
	m.logger.Info("GUIManager", "opening category", map[string]interface{}{
		"category": name,
		"items":    len(items),
	})

	window := m.app.NewWindow(name + " Items")
	window.Resize(fyne.NewSize(CategoryWindowWidth, CategoryWindowHeight))
	window.CenterOnScreen()

	view := NewCategoryView(window, name, items, m.describer, m.logoPath, m.logger)
	m.views[name] = view
	window.SetOnClosed(func() {
		delete(m.views, name)
	})

	view.Show()
	return view
}

func (m *Manager) StatusBar() *components.StatusBar {
	return m.statusBar
}

// OpenCount reports how many category windows are open.
func (m *Manager) OpenCount() int {
	return len(m.views)
}

// Shutdown closes every open category window. The main window is left to the caller.
func (m *Manager) Shutdown() {
	if m.isShutdown {
		return
	}
	m.isShutdown = true

	closing := m.OpenCount()
	for _, view := range m.views {
		view.Close()
	}
	m.logger.Info("GUIManager", "shutdown completed", map[string]interface{}{
		"closed_windows": closing,
	})
}
