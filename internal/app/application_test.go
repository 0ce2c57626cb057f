package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"food-menu/internal/catalog"
	"food-menu/internal/config"
	"food-menu/internal/logger"
)

func testConfig(t *testing.T) (config.Config, string) {
	t.Helper()
	dir := t.TempDir()
	veg := filepath.Join(dir, "veg_items.txt")
	require.NoError(t, os.WriteFile(veg, []byte("Paneer Tikka : img/pt.png : desc/pt.txt\n"), 0644))

	cfg := config.Default()
	cfg.Sources = []catalog.Source{
		{Category: catalog.CategoryVeg, Path: veg},
		{Category: catalog.CategoryNonVeg, Path: filepath.Join(dir, "non_veg_items.txt")},
		{Category: catalog.CategoryVeg, Path: filepath.Join(dir, "veg_extra.txt")},
	}
	cfg.LogoPath = filepath.Join(dir, "logo.png")
	return cfg, veg
}

func TestNewApplication_BuildsCatalogBeforeShow(t *testing.T) {
	cfg, _ := testConfig(t)

	application, err := NewApplication(test.NewTempApp(t), cfg, logger.NoOp{})
	require.NoError(t, err)
	assert.Nil(t, application.watcher)

	status := application.GUI().StatusBar()
	assert.Equal(t, "1 item in 1 category", status.Summary())
	assert.Equal(t, "2 warnings", status.Warnings())

	menu := application.GUI().MainMenu()
	require.Len(t, menu.Items[0].Items, 2)
}

func TestApplication_ReloadSwapsCatalog(t *testing.T) {
	cfg, veg := testConfig(t)

	application, err := NewApplication(test.NewTempApp(t), cfg, logger.NoOp{})
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(veg,
		[]byte("Paneer Tikka : img/pt.png : desc/pt.txt\nAloo Gobi : img/ag.png : desc/ag.txt\n"), 0644))
	application.reload()

	assert.Eventually(t, func() bool {
		return application.GUI().StatusBar().Summary() == "2 items in 1 category"
	}, time.Second, 10*time.Millisecond)
}

func TestNewApplication_WithWatcher(t *testing.T) {
	cfg, _ := testConfig(t)
	cfg.Watch = true

	application, err := NewApplication(test.NewTempApp(t), cfg, logger.NoOp{})
	require.NoError(t, err)
	require.NotNil(t, application.watcher)
	t.Cleanup(func() { _ = application.watcher.Stop() })
}

func TestApplication_StopClosesWindowsAndWatcher(t *testing.T) {
	cfg, veg := testConfig(t)
	cfg.Watch = true
	cfg.Debounce = 20 * time.Millisecond

	application, err := NewApplication(test.NewTempApp(t), cfg, logger.NoOp{})
	require.NoError(t, err)
	require.NoError(t, application.watcher.Start())
	t.Cleanup(func() { _ = application.watcher.Stop() })

	application.GUI().OpenCategory(catalog.CategoryVeg)
	application.GUI().OpenCategory(catalog.CategoryNonVeg)
	require.Equal(t, 2, application.GUI().OpenCount())

	application.stop()

	assert.Equal(t, 0, application.GUI().OpenCount())
	select {
	case <-application.shutdown.Done():
	default:
		t.Fatal("shutdown did not run")
	}

	// a stopped watcher no longer reloads
	summary := application.GUI().StatusBar().Summary()
	require.NoError(t, os.WriteFile(veg, []byte("Aloo Gobi : img/ag.png : desc/ag.txt\nDal : img/d.png : desc/d.txt\n"), 0644))
	time.Sleep(3 * cfg.Debounce)
	assert.Equal(t, summary, application.GUI().StatusBar().Summary())
}

func TestCategoryNames(t *testing.T) {
	names := categoryNames([]catalog.Source{
		{Category: "Veg", Path: "a"},
		{Category: "Dessert", Path: "b"},
		{Category: "Veg", Path: "c"},
	})
	assert.Equal(t, []string{"Veg", "Dessert"}, names)
}
