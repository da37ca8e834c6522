package ui

import (
	"fyne.io/fyne/v2"

	"github.com/jmylchreest/colormine/internal/history"
)

// PreferencesStore persists history in the fyne application preferences.
type PreferencesStore struct {
	prefs fyne.Preferences
}

var _ history.Store = (*PreferencesStore)(nil)

// NewPreferencesStore wraps prefs, typically app.Preferences().
func NewPreferencesStore(prefs fyne.Preferences) *PreferencesStore {
	return &PreferencesStore{prefs: prefs}
}

// Get implements history.Store. An empty value counts as absent.
func (s *PreferencesStore) Get(key string) (string, bool, error) {
	v := s.prefs.String(key)
	return v, v != "", nil
}

// Set implements history.Store.
func (s *PreferencesStore) Set(key, value string) error {
	s.prefs.SetString(key, value)
	return nil
}
