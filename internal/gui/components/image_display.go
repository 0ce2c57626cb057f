package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

const (
	ImageDisplayWidth  = 280
	ImageDisplayHeight = 220
)

// ImageDisplay shows a file-backed image, falling back to a placeholder file
// (the menu logo) until something else is selected.
type ImageDisplay struct {
	container   *fyne.Container
	image       *canvas.Image
	placeholder string
}

func NewImageDisplay(placeholder string) *ImageDisplay {
	img := canvas.NewImageFromFile(placeholder)
	img.FillMode = canvas.ImageFillContain
	img.ScaleMode = canvas.ImageScaleSmooth
	img.SetMinSize(fyne.NewSize(ImageDisplayWidth, ImageDisplayHeight))

	return &ImageDisplay{
		container:   container.NewStack(img),
		image:       img,
		placeholder: placeholder,
	}
}

func (d *ImageDisplay) GetContainer() *fyne.Container {
	return d.container
}

// SetFile displays path unchanged. Decoding happens when the image is painted.
func (d *ImageDisplay) SetFile(path string) {
	if path == "" {
		path = d.placeholder
	}
	d.image.File = path
	d.image.Resource = nil
	d.image.Image = nil
	d.image.Refresh()
}

// File reports the path currently displayed.
func (d *ImageDisplay) File() string {
	return d.image.File
}
