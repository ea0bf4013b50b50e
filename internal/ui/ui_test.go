package ui

import (
	"context"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-worldclock/internal/config"
	"github.com/tartampluch/go-worldclock/internal/engine"
)

// -----------------------------------------------------------------------------
// Mocks
// -----------------------------------------------------------------------------

// MockClock controls time for deterministic testing.
type MockClock struct {
	CurrentTime time.Time
}

func (m MockClock) Now() time.Time {
	return m.CurrentTime
}

// -----------------------------------------------------------------------------
// Test Setup Helper
// -----------------------------------------------------------------------------

// setupTestApp initializes a headless Fyne app pinned to 2024-01-01T12:00:00Z.
func setupTestApp(t *testing.T, lang string) *WorldClockApp {
	a := test.NewApp()
	t.Cleanup(a.Quit)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	model := engine.NewModel(MockClock{CurrentTime: newYear2024}, config.DefaultTimezones)
	app := NewWorldClockApp(a, ctx, model, lang)

	// Manually load I18n as Run() is skipped
	app.SetupI18n()

	return app
}

// -----------------------------------------------------------------------------
// Localization Tests
// -----------------------------------------------------------------------------

func TestLocalization_Switching(t *testing.T) {
	app := setupTestApp(t, "en")
	assert.Equal(t, "World Time Zones", app.GetMsg(config.TKeyHeaderTitle))
	assert.ElementsMatch(t, []string{"en", "fr"}, app.SupportedLanguages)

	app.Language = "fr"
	app.UpdateLocalizer()
	assert.Equal(t, "Fuseaux horaires du monde", app.GetMsg(config.TKeyHeaderTitle))

	// Regional variants match their base language.
	app.Language = "fr-CA"
	app.UpdateLocalizer()
	assert.Equal(t, "fr", app.Language)
}

func TestLocalization_Fallbacks(t *testing.T) {
	app := setupTestApp(t, "xx")
	assert.Equal(t, config.DefaultLanguage, app.Language, "Unsupported language falls back to default")
	assert.Equal(t, config.FallbackWinTitle, app.GetMsg(config.TKeyWinTitle))

	assert.Equal(t, "missing_key", app.GetMsg("missing_key"))
	assert.Equal(t, "fallback", app.GetMsgOr("missing_key", "fallback"))

	// Without a bundle the window still gets its English labels.
	bare := &WorldClockApp{}
	assert.Equal(t, config.FallbackHeaderTitle, bare.GetMsgOr(config.TKeyHeaderTitle, config.FallbackHeaderTitle))
}

// -----------------------------------------------------------------------------
// Window Tests
// -----------------------------------------------------------------------------

func TestBuildWindow_PanelsFollowConfiguration(t *testing.T) {
	app := setupTestApp(t, "en")
	app.BuildWindow()

	require.NotNil(t, app.Window)
	assert.Equal(t, config.FallbackWinTitle, app.Window.Title())
	require.Len(t, app.Panels, len(config.DefaultTimezones))
	require.Len(t, app.Controller.Panels(), len(app.Panels))

	for i, p := range app.Panels {
		assert.Equal(t, config.DefaultTimezones[i], p.Entry.Identifier)
		assert.Same(t, p, app.Controller.Panels()[i])

		timeText, dateText, _ := p.Texts()
		assert.Equal(t, config.PlaceholderTime, timeText, "Panels start with placeholders")
		assert.Equal(t, config.PlaceholderDate, dateText)
	}
}

func TestBuildWindow_EndToEnd(t *testing.T) {
	app := setupTestApp(t, "en")
	app.BuildWindow()
	app.Controller.Dispatch = func(fn func()) { fn() }
	app.Controller.Interval = time.Hour

	app.Controller.Start()
	t.Cleanup(app.Controller.Stop)

	byID := make(map[string]*ClockPanel)
	for _, p := range app.Panels {
		byID[p.Entry.Identifier] = p
	}

	timeText, dateText, offset := byID["Europe/London"].Texts()
	assert.Equal(t, "12:00:00", timeText)
	assert.Equal(t, "Mon, Jan 01 2024", dateText)
	assert.Equal(t, "UTC+00:00", offset)

	timeText, dateText, offset = byID["Asia/Tokyo"].Texts()
	assert.Equal(t, "21:00:00", timeText)
	assert.Equal(t, "Mon, Jan 01 2024", dateText)
	assert.Equal(t, "UTC+09:00", offset)
}

func TestBuildWindow_Rebuild(t *testing.T) {
	app := setupTestApp(t, "fr")
	app.BuildWindow()
	app.Controller.Dispatch = func(fn func()) { fn() }
	app.Controller.Interval = time.Hour
	app.Controller.Start()
	first := app.Controller

	app.BuildWindow()
	assert.Equal(t, StateStopped, first.State(), "Rebuilding stops the previous controller")
	assert.NotSame(t, first, app.Controller)
	assert.Len(t, app.Panels, len(config.DefaultTimezones), "Panels must not accumulate")
	assert.Equal(t, "Horloge mondiale - Fuseaux horaires", app.Window.Title())
}
