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
	CategoryWindowWidth  = 500
	CategoryWindowHeight = 500
	NoDataText           = "No data available for this category."
	listWidth            = 160
	descriptionHeight    = 140
)

// Describer turns an item into display text without failing.
type Describer interface {
	Describe(item catalog.FoodItem) string
}

// CategoryView is the per-category window: Back on top, items on the left,
// the selected item's image in the middle and its description underneath.
type CategoryView struct {
	window    fyne.Window
	category  string
	items     []catalog.FoodItem
	describer Describer
	logger    logger.Logger

	list        *widget.List
	image       *components.ImageDisplay
	description *widget.Label
	backButton  *widget.Button
}

func NewCategoryView(window fyne.Window, category string, items []catalog.FoodItem,
	describer Describer, placeholder string, log logger.Logger) *CategoryView {

	v := &CategoryView{
		window:    window,
		category:  category,
		items:     items,
		describer: describer,
		logger:    log,
		image:     components.NewImageDisplay(placeholder),
	}

	v.description = widget.NewLabel("")
	v.description.Wrapping = fyne.TextWrapWord
	v.backButton = widget.NewButton("Back", v.Close)

	descriptionScroll := container.NewVScroll(v.description)
	descriptionScroll.SetMinSize(fyne.NewSize(CategoryWindowWidth, descriptionHeight))

	var left fyne.CanvasObject
	if len(items) > 0 {
		v.list = widget.NewList(
			func() int { return len(v.items) },
			func() fyne.CanvasObject { return widget.NewLabel("") },
			func(id widget.ListItemID, obj fyne.CanvasObject) {
				obj.(*widget.Label).SetText(v.items[id].Name)
			},
		)
		v.list.OnSelected = v.selectItem
		left = container.NewGridWrap(fyne.NewSize(listWidth, CategoryWindowHeight-descriptionHeight), v.list)
	} else {
		v.description.SetText(NoDataText)
	}

	window.SetContent(container.NewBorder(
		v.backButton,
		descriptionScroll,
		left,
		nil,
		v.image.GetContainer(),
	))

	return v
}

func (v *CategoryView) selectItem(id widget.ListItemID) {
	if id < 0 || id >= len(v.items) {
		return
	}
	item := v.items[id]

	v.logger.Debug("CategoryView", "item selected", map[string]interface{}{
		"category": v.category,
		"item":     item.Name,
	})

	v.image.SetFile(item.ImagePath)
	v.description.SetText(v.describer.Describe(item))
}

func (v *CategoryView) Show() {
	v.window.Show()
}

func (v *CategoryView) Close() {
	v.window.Close()
}

func (v *CategoryView) Window() fyne.Window {
	return v.window
}
