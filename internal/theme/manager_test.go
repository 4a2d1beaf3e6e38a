package theme

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csheth/tubescout/internal/prefs"
)

type failingStore struct {
	sets int
}

func (s *failingStore) Get(string) (string, error) { return "", errors.New("disk on fire") }
func (s *failingStore) Set(string, string) error {
	s.sets++
	return errors.New("read-only")
}

func TestDefaultsToLightWhenAbsent(t *testing.T) {
	m := NewManager(prefs.NewMemoryStore(), nil)
	assert.Equal(t, Light, m.Current())
	assert.Equal(t, Light, m.Preference())
}

func TestLoadsPersistedPreference(t *testing.T) {
	store := prefs.NewMemoryStore()
	require.NoError(t, store.Set(PreferenceKey, "dark"))
	m := NewManager(store, nil)
	assert.Equal(t, Dark, m.Current())
}

func TestUnknownPreferenceFallsBack(t *testing.T) {
	store := prefs.NewMemoryStore()
	require.NoError(t, store.Set(PreferenceKey, "sepia"))
	assert.Equal(t, Light, NewManager(store, nil).Current())
}

func TestToggleTwiceRestoresAndPersists(t *testing.T) {
	store := prefs.NewMemoryStore()
	m := NewManager(store, nil)

	assert.Equal(t, Dark, m.Toggle())
	persisted, err := store.Get(PreferenceKey)
	require.NoError(t, err)
	assert.Equal(t, "dark", persisted)

	assert.Equal(t, Light, m.Toggle())
	persisted, err = store.Get(PreferenceKey)
	require.NoError(t, err)
	assert.Equal(t, "light", persisted)
	assert.Equal(t, Light, m.Current())
}

func TestPersistenceFailuresAreIgnored(t *testing.T) {
	store := &failingStore{}
	m := NewManager(store, nil)
	assert.Equal(t, Light, m.Current())

	m.Apply(Dark)
	assert.Equal(t, Dark, m.Current())
	assert.Equal(t, 1, store.sets)
	assert.Equal(t, "dark", m.Palette().GlamourStyle)
}

func TestReloadFromStore(t *testing.T) {
	store := prefs.NewMemoryStore()
	m := NewManager(store, nil)
	assert.False(t, m.ReloadFromStore())

	require.NoError(t, store.Set(PreferenceKey, "dark"))
	assert.True(t, m.ReloadFromStore())
	assert.Equal(t, Dark, m.Current())
}

func TestToggleAffordance(t *testing.T) {
	assert.Equal(t, "Switch to dark mode", Light.Hint())
	assert.Equal(t, "Switch to light mode", Dark.Hint())
	assert.NotEqual(t, Light.Icon(), Dark.Icon())

	parsed, ok := Parse(" DARK ")
	require.True(t, ok)
	assert.Equal(t, Dark, parsed)
}
