package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"github.com/tartampluch/go-worldclock/internal/config"
	"github.com/tartampluch/go-worldclock/internal/engine"
)

// Panel palette.
var (
	colorPanelFill   = color.NRGBA{R: 255, G: 255, B: 255, A: 230}
	colorPanelStroke = color.NRGBA{R: 200, G: 200, B: 200, A: 255}
	colorCity        = color.NRGBA{R: 40, G: 40, B: 40, A: 255}
	colorTime        = color.NRGBA{R: 20, G: 100, B: 180, A: 255}
	colorDate        = color.NRGBA{R: 80, G: 80, B: 80, A: 255}
	colorRegion      = color.NRGBA{R: 120, G: 120, B: 120, A: 255}
)

// ClockPanel displays one timezone: city on top, time and date in the
// middle, region and UTC offset at the bottom.
type ClockPanel struct {
	Entry engine.TimezoneEntry

	cityText   *canvas.Text
	timeText   *canvas.Text
	dateText   *canvas.Text
	regionText *canvas.Text
	offsetText *canvas.Text

	content fyne.CanvasObject
}

// NewClockPanel builds the panel with placeholder time and date.
func NewClockPanel(entry engine.TimezoneEntry) *ClockPanel {
	p := &ClockPanel{
		Entry:      entry,
		cityText:   newCenteredText(entry.City, colorCity, config.TextSizeCity, fyne.TextStyle{Bold: true}),
		timeText:   newCenteredText(config.PlaceholderTime, colorTime, config.TextSizeTime, fyne.TextStyle{Bold: true, Monospace: true}),
		dateText:   newCenteredText(config.PlaceholderDate, colorDate, config.TextSizeDate, fyne.TextStyle{}),
		regionText: newCenteredText(entry.Region, colorRegion, config.TextSizeRegion, fyne.TextStyle{Italic: true}),
		offsetText: newCenteredText(config.PlaceholderOffset, colorRegion, config.TextSizeOffset, fyne.TextStyle{Monospace: true}),
	}

	background := canvas.NewRectangle(colorPanelFill)
	background.StrokeColor = colorPanelStroke
	background.StrokeWidth = config.PanelStrokeWidth
	background.CornerRadius = config.PanelCornerRadius

	center := container.NewVBox(layout.NewSpacer(), p.timeText, p.dateText, layout.NewSpacer())
	footer := container.NewVBox(p.regionText, p.offsetText)

	p.content = container.NewStack(
		background,
		container.NewPadded(container.NewBorder(p.cityText, footer, nil, nil, center)),
	)
	return p
}

// CanvasObject returns the renderable panel.
func (p *ClockPanel) CanvasObject() fyne.CanvasObject {
	return p.content
}

// SetClock implements PanelView. It must run on the UI thread.
func (p *ClockPanel) SetClock(timeText, dateText, offsetText string) {
	setText(p.timeText, timeText)
	setText(p.dateText, dateText)
	setText(p.offsetText, offsetText)
}

// Texts returns the currently displayed time, date and offset.
func (p *ClockPanel) Texts() (timeText, dateText, offsetText string) {
	return p.timeText.Text, p.dateText.Text, p.offsetText.Text
}

func newCenteredText(text string, c color.Color, size float32, style fyne.TextStyle) *canvas.Text {
	t := canvas.NewText(text, c)
	t.Alignment = fyne.TextAlignCenter
	t.TextSize = size
	t.TextStyle = style
	return t
}

// setText skips the redraw when the text is unchanged (date and offset
// change rarely).
func setText(t *canvas.Text, text string) {
	if t.Text == text {
		return
	}
	t.Text = text
	t.Refresh()
}
