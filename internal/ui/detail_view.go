package ui

import (
	"image"
	"net/url"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/mealfinder/meal-finder/internal/model"
)

// DetailView renders one meal: the large image and the description text
// with its tags and links
type DetailView struct {
	localization *Localization

	image     *canvas.Image
	text      *widget.Label
	tags      *widget.Label
	links     *fyne.Container
	textArea  fyne.CanvasObject
	imageArea fyne.CanvasObject

	current *model.MealDetail
}

// NewDetailView creates an empty detail view showing the hint text
func NewDetailView(localization *Localization) *DetailView {
	dv := &DetailView{localization: localization}

	dv.image = canvas.NewImageFromImage(placeholderImage(int(DetailImageSize), int(DetailImageSize)))
	dv.image.FillMode = canvas.ImageFillContain
	dv.image.ScaleMode = canvas.ImageScaleSmooth
	dv.image.SetMinSize(fyne.NewSize(DetailImageSize, DetailImageSize))
	dv.imageArea = container.NewCenter(dv.image)

	dv.text = widget.NewLabel(localization.GetText(KeyDetailHint))
	dv.text.Wrapping = fyne.TextWrapWord

	dv.tags = widget.NewLabel("")
	dv.tags.TextStyle = fyne.TextStyle{Italic: true}
	dv.tags.Hide()

	dv.links = container.NewHBox()
	dv.links.Hide()

	dv.textArea = container.NewVScroll(container.NewVBox(dv.text, dv.tags, dv.links))
	return dv
}

// ImageArea returns the canvas object holding the meal image
func (dv *DetailView) ImageArea() fyne.CanvasObject {
	return dv.imageArea
}

// TextArea returns the scrollable description
func (dv *DetailView) TextArea() fyne.CanvasObject {
	return dv.textArea
}

// Show renders detail; a nil img shows the placeholder
func (dv *DetailView) Show(detail *model.MealDetail, img image.Image) {
	dv.current = detail

	if img == nil {
		img = placeholderImage(int(DetailImageSize), int(DetailImageSize))
	}
	dv.image.Image = img
	dv.image.Refresh()

	dv.text.SetText(detail.Description())

	if len(detail.Tags) > 0 {
		dv.tags.SetText(dv.localization.GetText(KeyTags) + ": " + strings.Join(detail.Tags, MiddleDotSeparator))
		dv.tags.Show()
	} else {
		dv.tags.SetText("")
		dv.tags.Hide()
	}

	dv.links.Objects = nil
	if link := parseLink(detail.YouTubeURL); link != nil {
		dv.links.Add(widget.NewHyperlink(dv.localization.GetText(KeyWatchVideo), link))
	}
	if link := parseLink(detail.SourceURL); link != nil {
		dv.links.Add(widget.NewHyperlink(dv.localization.GetText(KeyViewSource), link))
	}
	if len(dv.links.Objects) > 0 {
		dv.links.Show()
	} else {
		dv.links.Hide()
	}
	dv.links.Refresh()
}

// Current returns the meal being shown, nil if none
func (dv *DetailView) Current() *model.MealDetail {
	return dv.current
}

// Text returns the description currently shown
func (dv *DetailView) Text() string {
	return dv.text.Text
}

// Links returns the number of hyperlinks shown
func (dv *DetailView) Links() int {
	return len(dv.links.Objects)
}

// parseLink accepts absolute http(s) URLs only
func parseLink(raw string) *url.URL {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil
	}
	return u
}
