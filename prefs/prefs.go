// ABOUTME: Local key-value persistence for UI preferences
// ABOUTME: Stores filter state and theme in SQLite at an XDG state path
package prefs

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	_ "github.com/mattn/go-sqlite3"

	"github.com/jeremiasmarinho/mini-seller-console/models"
)

const (
	filtersKey = "mini-seller-filters"
	themeKey   = "mini-seller-theme"

	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Store holds UI preferences between sessions. Every operation is
// best-effort: failures are logged and defaults returned, never
// surfaced to the caller. A nil Store behaves like an empty one, so the
// console runs fine when the preferences database cannot be opened.
type Store struct {
	db *sql.DB
}

// DefaultPath returns the preferences database location under the XDG
// state directory.
func DefaultPath() string {
	return filepath.Join(xdg.StateHome, "mini-seller", "prefs.db")
}

// Open opens (creating if needed) the preferences database.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, err
	}

	// Single connection avoids database locked errors.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS prefs (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// LoadFilters returns the persisted filter state, or the defaults when
// nothing usable is stored.
func (s *Store) LoadFilters() models.FilterCriteria {
	raw, ok := s.get(filtersKey)
	if !ok {
		return models.DefaultFilters()
	}

	var criteria models.FilterCriteria
	if err := json.Unmarshal([]byte(raw), &criteria); err != nil {
		log.Printf("prefs: discarding corrupt filter state: %v", err)
		return models.DefaultFilters()
	}
	return criteria.Normalize()
}

// SaveFilters persists the filter state.
func (s *Store) SaveFilters(criteria models.FilterCriteria) {
	data, err := json.Marshal(criteria)
	if err != nil {
		log.Printf("prefs: failed to encode filter state: %v", err)
		return
	}
	s.set(filtersKey, string(data))
}

// ResetFilters restores the defaults, overwrites the stored value, and
// returns the defaults.
func (s *Store) ResetFilters() models.FilterCriteria {
	defaults := models.DefaultFilters()
	s.SaveFilters(defaults)
	return defaults
}

// LoadTheme returns the persisted theme preference, defaulting to light.
func (s *Store) LoadTheme() string {
	theme, ok := s.get(themeKey)
	if !ok || (theme != ThemeLight && theme != ThemeDark) {
		return ThemeLight
	}
	return theme
}

// SaveTheme persists the theme preference.
func (s *Store) SaveTheme(theme string) {
	if theme != ThemeLight && theme != ThemeDark {
		log.Printf("prefs: ignoring unknown theme %q", theme)
		return
	}
	s.set(themeKey, theme)
}

func (s *Store) get(key string) (string, bool) {
	if s == nil || s.db == nil {
		return "", false
	}
	var value string
	err := s.db.QueryRow(`SELECT value FROM prefs WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false
	}
	if err != nil {
		log.Printf("prefs: read %s failed: %v", key, err)
		return "", false
	}
	return value, true
}

func (s *Store) set(key, value string) {
	if s == nil || s.db == nil {
		return
	}
	_, err := s.db.Exec(`INSERT INTO prefs (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		log.Printf("prefs: write %s failed: %v", key, err)
	}
}
