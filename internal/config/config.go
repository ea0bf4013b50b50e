package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName     = "Go World Clock"
	AppID       = "com.github.tartampluch.go-worldclock"
	LogFileName = "app.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagLang         = "lang"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stdout"
	FlagDescLang     = "Language of the window labels (en, fr)"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Timezones
// -----------------------------------------------------------------------------

// DefaultTimezones is the ordered list of IANA identifiers shown in the grid.
// Panels appear in this order.
var DefaultTimezones = []string{
	"America/New_York",
	"America/Los_Angeles",
	"Europe/London",
	"Europe/Paris",
	"Asia/Tokyo",
	"Asia/Dubai",
	"Asia/Singapore",
	"Australia/Sydney",
	"Pacific/Auckland",
}

const (
	// ZoneSeparator splits an IANA identifier into region and city.
	ZoneSeparator = "/"

	// TickInterval is the refresh period of the clock grid.
	TickInterval = 1000 * time.Millisecond
)

// -----------------------------------------------------------------------------
// Display Formats & Placeholders
// -----------------------------------------------------------------------------

const (
	TimeLayout = "15:04:05"         // HH:mm:ss
	DateLayout = "Mon, Jan 02 2006" // EEE, MMM dd yyyy

	FormatUTCOffset = "UTC%s%02d:%02d"
	SignPositive    = "+"
	SignNegative    = "-"

	PlaceholderTime   = "--:--:--"
	PlaceholderDate   = "---"
	PlaceholderOffset = ""
)

// -----------------------------------------------------------------------------
// UI Layout Constants
// -----------------------------------------------------------------------------

const (
	WindowWidth  = 900
	WindowHeight = 600
	GridColumns  = 4

	TextSizeTitle  = 28
	TextSizeCity   = 16
	TextSizeTime   = 24
	TextSizeDate   = 12
	TextSizeRegion = 10
	TextSizeOffset = 10

	PanelCornerRadius = 8
	PanelStrokeWidth  = 1
)

// -----------------------------------------------------------------------------
// Languages & Translation Keys (I18n)
// -----------------------------------------------------------------------------

const DefaultLanguage = "en"

// SupportedLanguages defines the list of available UI languages (ISO 639-1).
var SupportedLanguages = []string{"en", "fr"}

const (
	TKeyWinTitle    = "win_title"
	TKeyHeaderTitle = "header_title"
)

const (
	FallbackWinTitle    = "World Clock - Multiple Timezones"
	FallbackHeaderTitle = "World Time Zones"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrUnknownTimezone = "unknown timezone"
	ErrEmptyTimezone   = "timezone identifier is empty"
	ErrLogFile         = "failed to open log file"
	ErrCacheDir        = "could not determine user cache dir"
	ErrCreateDir       = "could not create app cache dir"
	ErrAppFailed       = "application failed unexpectedly"
	ErrLocalesAccess   = "failed to access embedded locales"
	ErrLocaleLoad      = "failed to load locale file"
	ErrLangParse       = "invalid language tag"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting   = "Starting application"
	MsgAppStop       = "Application stopped gracefully"
	MsgCtxCancel     = "Context cancelled, shutting down UI"
	MsgLogWarning    = "Warning: %s at %s: %v\n"
	MsgTickerStart   = "Clock ticker started"
	MsgTickerStop    = "Clock ticker stopped"
	MsgAlreadyRun    = "Clock ticker already running"
	MsgRefreshDone   = "Clock panels refreshed"
	MsgSnapshotFail  = "Snapshot failed, showing placeholder"
	MsgWindowBuilt   = "Clock window built"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleBadName = "Skipping malformed locale filename"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgTransMissing  = "Missing translation key"
	MsgLangFallback  = "Unsupported language, using default"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyInterval  = "interval"
	LogKeyTimezone  = "timezone"
	LogKeyCount     = "count"
	LogKeyFailed    = "failed"
	LogKeyDuration  = "duration_us"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyCommit  = "commit"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompUI     = "ui"
	CompEngine = "engine"
	CompTicker = "ticker"
	CompMain   = "main"
	CompI18n   = "i18n"
)
