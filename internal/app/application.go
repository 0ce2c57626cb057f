package app

import (
	"food-menu/internal/catalog"
	"food-menu/internal/config"
	"food-menu/internal/gui"
	"food-menu/internal/logger"
	"food-menu/internal/shutdown"
	"food-menu/internal/watch"

	"fyne.io/fyne/v2"
)

const (
	AppName    = "Food Menu"
	AppID      = "com.foodmenu.desktop"
	AppVersion = "1.0.0"
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	config     config.Config
	logger     logger.Logger
	loader     *catalog.Loader
	guiManager *gui.Manager
	watcher    *watch.Watcher
	shutdown   *shutdown.Manager
}

// NewApplication builds the catalog and prepares the main window. The catalog is
// complete before any window is shown.
func NewApplication(fyneApp fyne.App, cfg config.Config, log logger.Logger) (*Application, error) {
	window := fyneApp.NewWindow(gui.MainWindowTitle)
	window.SetMaster()

	log.Info("Application", "starting application", map[string]interface{}{
		"version": AppVersion,
		"sources": len(cfg.Sources),
		"watch":   cfg.Watch,
	})

	loader := catalog.NewLoader(log)
	result := loader.Build(cfg.Sources)
	logDiagnostics(log, result)

	guiManager := gui.NewManager(fyneApp, window, categoryNames(cfg.Sources), loader, cfg.LogoPath, log)
	guiManager.SetCatalog(result)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		config:     cfg,
		logger:     log,
		loader:     loader,
		guiManager: guiManager,
		shutdown:   shutdown.NewManager(log),
	}

	if cfg.Watch {
		watcher, err := watch.New(cfg.SourcePaths(), cfg.Debounce, application.reload, log)
		if err != nil {
			return nil, err
		}
		application.watcher = watcher
	}

	if application.watcher != nil {
		application.shutdown.Register("watcher", application.watcher)
	}

	log.Info("Application", "initialization complete", nil)
	return application, nil
}

// Run shows the main window and blocks until the Fyne event loop exits.
func (a *Application) Run() error {
	if a.watcher != nil {
		if err := a.watcher.Start(); err != nil {
			a.logger.Warning("Application", "catalog watching disabled", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	// the signal goroutine has already stopped the registered components
	a.shutdown.Listen(func() {
		fyne.Do(func() {
			a.guiManager.Shutdown()
			a.fyneApp.Quit()
		})
	})

	a.window.SetCloseIntercept(func() {
		a.stop()
		a.window.Close()
	})

	a.guiManager.Show()
	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	// the event loop has ended, so only non-UI components are left to stop
	a.shutdown.Shutdown()
	return nil
}

// stop must run on the UI goroutine. Category windows close first, then the
// watcher stops so no reload is queued behind them.
func (a *Application) stop() {
	a.logger.Info("Application", "shutdown requested", nil)
	a.guiManager.Shutdown()
	a.shutdown.Shutdown()
}

// reload runs on the watcher goroutine. The new catalog is handed to the UI goroutine.
func (a *Application) reload() {
	result := a.loader.Build(a.config.Sources)
	logDiagnostics(a.logger, result)

	fyne.Do(func() {
		a.guiManager.SetCatalog(result)
	})
	a.logger.Info("Application", "catalog reloaded", map[string]interface{}{
		"items": result.Catalog.TotalItems(),
	})
}

func (a *Application) GUI() *gui.Manager {
	return a.guiManager
}

func logDiagnostics(log logger.Logger, result catalog.BuildResult) {
	for _, d := range result.Malformed() {
		log.Warning("Application", "skipped malformed catalog line", d.Fields())
	}
}

// categoryNames keeps the first occurrence of each configured category.
func categoryNames(sources []catalog.Source) []string {
	seen := make(map[string]bool, len(sources))
	names := make([]string, 0, len(sources))
	for _, src := range sources {
		if seen[src.Category] {
			continue
		}
		seen[src.Category] = true
		names = append(names, src.Category)
	}
	return names
}
