package theme

import (
	"github.com/csheth/tubescout/internal/logger"
	"github.com/csheth/tubescout/internal/prefs"
)

// Manager holds the canonical theme. Whatever is drawn on screen is a
// projection of Current; persistence is best effort.
type Manager struct {
	store   prefs.Store
	log     logger.Logger
	current Theme
}

// NewManager loads the persisted preference and makes it current.
func NewManager(store prefs.Store, log logger.Logger) *Manager {
	if log == nil {
		log = logger.NewNop()
	}
	m := &Manager{store: store, log: log.With(logger.String("component", "theme"))}
	m.current = m.Preference()
	return m
}

// Preference reads the persisted theme, falling back to Default when the
// value is absent, unreadable or unrecognised.
func (m *Manager) Preference() Theme {
	if m.store == nil {
		return Default
	}
	value, err := m.store.Get(PreferenceKey)
	if err != nil {
		m.log.Debug("theme preference unavailable", logger.Error(err))
		return Default
	}
	t, ok := Parse(value)
	if !ok {
		m.log.Debug("ignoring unknown theme preference", logger.String("value", value))
		return Default
	}
	return t
}

// Apply makes t current and persists it. Write failures are logged and dropped.
func (m *Manager) Apply(t Theme) {
	if _, ok := Parse(string(t)); !ok {
		t = Default
	}
	m.current = t
	if m.store == nil {
		return
	}
	if err := m.store.Set(PreferenceKey, string(t)); err != nil {
		m.log.Debug("theme preference not saved", logger.String("theme", t.String()), logger.Error(err))
		return
	}
	m.log.Info("theme applied", logger.String("theme", t.String()))
}

// Toggle flips the current theme and applies the result.
func (m *Manager) Toggle() Theme {
	next := m.current.Toggle()
	m.Apply(next)
	return next
}

// ReloadFromStore adopts a preference written elsewhere without writing it
// back. It reports whether the current theme changed.
func (m *Manager) ReloadFromStore() bool {
	t := m.Preference()
	if t == m.current {
		return false
	}
	m.current = t
	m.log.Info("theme reloaded from preferences", logger.String("theme", t.String()))
	return true
}

// Current returns the active theme.
func (m *Manager) Current() Theme {
	return m.current
}

// Palette returns the palette of the active theme.
func (m *Manager) Palette() Palette {
	return PaletteFor(m.current)
}
