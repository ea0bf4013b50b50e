package engine

import (
	"errors"
	"log/slog"
	"sync"
	"time"
	// Fallback zoneinfo for hosts without a system timezone database.
	_ "time/tzdata"

	"github.com/tartampluch/go-worldclock/internal/config"
)

// Model owns the configured timezones and computes their current time.
// It is safe for concurrent use.
type Model struct {
	Clock Clock // Interface for time mocking.

	entries []TimezoneEntry

	locMut    sync.RWMutex
	locations map[string]*time.Location
}

// NewModel builds the fixed list of entries from the given identifiers.
// A nil clock defaults to RealClock.
func NewModel(clock Clock, identifiers []string) *Model {
	if clock == nil {
		clock = RealClock{}
	}

	entries := make([]TimezoneEntry, 0, len(identifiers))
	for _, id := range identifiers {
		entries = append(entries, NewTimezoneEntry(id))
	}

	return &Model{
		Clock:     clock,
		entries:   entries,
		locations: make(map[string]*time.Location, len(identifiers)),
	}
}

// Timezones returns the configured entries in declaration order.
// The returned slice is a copy; the model's list never changes.
func (m *Model) Timezones() []TimezoneEntry {
	out := make([]TimezoneEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Snapshot formats the current instant in the given timezone.
// It returns *UnknownTimezoneError when the identifier cannot be resolved.
func (m *Model) Snapshot(identifier string) (ClockSnapshot, error) {
	loc, err := m.location(identifier)
	if err != nil {
		return PlaceholderSnapshot, err
	}
	return snapshotAt(m.Clock.Now().In(loc)), nil
}

// location resolves and caches an identifier against the host timezone database.
func (m *Model) location(identifier string) (*time.Location, error) {
	// time.LoadLocation maps "" to UTC, which would hide a configuration mistake.
	if identifier == "" {
		return nil, &UnknownTimezoneError{Identifier: identifier, Err: errors.New(config.ErrEmptyTimezone)}
	}

	m.locMut.RLock()
	loc, ok := m.locations[identifier]
	m.locMut.RUnlock()
	if ok {
		return loc, nil
	}

	loc, err := time.LoadLocation(identifier)
	if err != nil {
		slog.Debug(config.ErrUnknownTimezone,
			config.LogKeyComponent, config.CompEngine,
			config.LogKeyTimezone, identifier,
			config.LogKeyError, err)
		return nil, &UnknownTimezoneError{Identifier: identifier, Err: err}
	}

	m.locMut.Lock()
	m.locations[identifier] = loc
	m.locMut.Unlock()
	return loc, nil
}

// snapshotAt formats an instant already converted to its zone.
func snapshotAt(t time.Time) ClockSnapshot {
	_, offset := t.Zone()
	return ClockSnapshot{
		Time:   t.Format(config.TimeLayout),
		Date:   t.Format(config.DateLayout),
		Offset: formatUTCOffset(offset),
	}
}
