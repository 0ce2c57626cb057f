package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

type StatusBar struct {
	container    *fyne.Container
	summaryLabel *widget.Label
	warningLabel *widget.Label
}

func NewStatusBar() *StatusBar {
	summaryLabel := widget.NewLabel("Loading menu...")
	warningLabel := widget.NewLabel("")

	mainContainer := container.NewBorder(
		nil, nil,
		summaryLabel,
		warningLabel,
	)

	return &StatusBar{
		container:    mainContainer,
		summaryLabel: summaryLabel,
		warningLabel: warningLabel,
	}
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

func (sb *StatusBar) SetSummary(items, categories, warnings int) {
	sb.summaryLabel.SetText(fmt.Sprintf("%d %s in %d %s",
		items, plural(items, "item", "items"),
		categories, plural(categories, "category", "categories")))

	if warnings == 0 {
		sb.warningLabel.SetText("")
		return
	}
	sb.warningLabel.SetText(fmt.Sprintf("%d %s", warnings, plural(warnings, "warning", "warnings")))
}

func (sb *StatusBar) Summary() string {
	return sb.summaryLabel.Text
}

func (sb *StatusBar) Warnings() string {
	return sb.warningLabel.Text
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
