package engine

import (
	"fmt"
	"strings"

	"github.com/tartampluch/go-worldclock/internal/config"
)

// TimezoneEntry is one configured clock of the grid.
// It is built once at startup and never mutated.
type TimezoneEntry struct {
	// Identifier is the IANA name, e.g. "Asia/Tokyo".
	Identifier string

	// City is the part after the last separator, underscores replaced by spaces.
	City string

	// Region is the part before the first separator.
	Region string
}

// NewTimezoneEntry derives the display fields from an IANA identifier.
// Identifiers without a separator use the whole identifier for both fields.
func NewTimezoneEntry(identifier string) TimezoneEntry {
	city := identifier[strings.LastIndex(identifier, config.ZoneSeparator)+1:]
	region, _, _ := strings.Cut(identifier, config.ZoneSeparator)

	return TimezoneEntry{
		Identifier: identifier,
		City:       strings.ReplaceAll(city, "_", " "),
		Region:     region,
	}
}

// ClockSnapshot is the formatted time of one timezone at one instant.
type ClockSnapshot struct {
	Time   string // HH:MM:SS, 24-hour
	Date   string // e.g. "Mon, Jan 01 2024"
	Offset string // e.g. "UTC+09:00"
}

// PlaceholderSnapshot is what a panel shows before its first refresh
// and whenever its timezone cannot be resolved.
var PlaceholderSnapshot = ClockSnapshot{
	Time:   config.PlaceholderTime,
	Date:   config.PlaceholderDate,
	Offset: config.PlaceholderOffset,
}

// UnknownTimezoneError reports an identifier the host timezone database cannot resolve.
type UnknownTimezoneError struct {
	Identifier string
	Err        error
}

func (e *UnknownTimezoneError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %q", config.ErrUnknownTimezone, e.Identifier)
	}
	return fmt.Sprintf("%s: %q: %v", config.ErrUnknownTimezone, e.Identifier, e.Err)
}

func (e *UnknownTimezoneError) Unwrap() error {
	return e.Err
}

// formatUTCOffset renders a zone offset in seconds as UTC±HH:MM.
func formatUTCOffset(offset int) string {
	sign := config.SignPositive
	if offset < 0 {
		sign = config.SignNegative
		offset = -offset
	}
	return fmt.Sprintf(config.FormatUTCOffset, sign, offset/3600, (offset%3600)/60)
}
