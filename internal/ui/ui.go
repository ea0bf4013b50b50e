package ui

import (
	"context"
	"image/color"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-worldclock/internal/config"
	"github.com/tartampluch/go-worldclock/internal/engine"
)

// Window background gradient, top to bottom.
var (
	colorGradientTop    = color.NRGBA{R: 30, G: 60, B: 114, A: 255}
	colorGradientBottom = color.NRGBA{R: 42, G: 82, B: 152, A: 255}
)

// WorldClockApp is the composition of the fyne application, the clock
// window and the controller refreshing it.
type WorldClockApp struct {
	App        fyne.App
	Window     fyne.Window
	I18nBundle *i18n.Bundle
	Localizer  *i18n.Localizer
	Ctx        context.Context

	// Language is the requested UI language (ISO 639-1).
	Language string

	Model      *engine.Model
	Controller *Controller
	Panels     []*ClockPanel

	SupportedLanguages []string
}

// NewWorldClockApp constructs the application and wires dependencies.
func NewWorldClockApp(a fyne.App, ctx context.Context, model *engine.Model, lang string) *WorldClockApp {
	a.SetIcon(theme.HistoryIcon())

	if lang == "" {
		lang = config.DefaultLanguage
	}

	return &WorldClockApp{
		App:                a,
		Ctx:                ctx,
		Language:           lang,
		Model:              model,
		SupportedLanguages: config.SupportedLanguages,
	}
}

// Run builds the window, starts the clocks and blocks in the UI loop.
func (app *WorldClockApp) Run() {
	app.SetupI18n()
	app.BuildWindow()

	app.Controller.Start()
	defer app.Controller.Stop()

	// Stop ticking as soon as shutdown begins; main quits the UI loop.
	go func() {
		<-app.Ctx.Done()
		app.Controller.Stop()
	}()

	app.Window.ShowAndRun()
}

// BuildWindow creates the clock window and its controller.
// Calling it again replaces both.
func (app *WorldClockApp) BuildWindow() {
	if app.Controller != nil {
		app.Controller.Stop()
	}
	if app.Window != nil {
		app.Window.Close()
	}

	app.Panels = nil
	app.Controller = NewController(app.Model, func(e engine.TimezoneEntry) PanelView {
		p := NewClockPanel(e)
		app.Panels = append(app.Panels, p)
		return p
	})

	w := app.App.NewWindow(app.GetMsgOr(config.TKeyWinTitle, config.FallbackWinTitle))
	w.SetContent(app.buildContent())
	w.Resize(fyne.NewSize(config.WindowWidth, config.WindowHeight))
	w.CenterOnScreen()
	w.SetMaster()

	app.Window = w

	slog.Info(config.MsgWindowBuilt,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyCount, len(app.Panels))
}

// buildContent lays out the title and the clock grid over the gradient.
func (app *WorldClockApp) buildContent() fyne.CanvasObject {
	title := canvas.NewText(app.GetMsgOr(config.TKeyHeaderTitle, config.FallbackHeaderTitle), color.White)
	title.Alignment = fyne.TextAlignCenter
	title.TextSize = config.TextSizeTitle
	title.TextStyle = fyne.TextStyle{Bold: true}

	cells := make([]fyne.CanvasObject, 0, len(app.Panels))
	for _, p := range app.Panels {
		cells = append(cells, p.CanvasObject())
	}
	grid := container.NewGridWithColumns(config.GridColumns, cells...)

	body := container.NewBorder(
		container.NewVBox(layout.NewSpacer(), title),
		nil, nil, nil,
		container.NewPadded(grid),
	)

	return container.NewStack(
		canvas.NewVerticalGradient(colorGradientTop, colorGradientBottom),
		container.NewPadded(body),
	)
}
