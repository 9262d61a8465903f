// ABOUTME: Tests for theme resolution and toggling
// ABOUTME: Covers name lookup, light/dark flip, status color fallback
package tui

import (
	"testing"

	"github.com/jeremiasmarinho/mini-seller-console/models"
)

func TestThemeByName(t *testing.T) {
	if got := ThemeByName("dark").Name; got != "dark" {
		t.Errorf("expected dark, got %s", got)
	}
	if got := ThemeByName("light").Name; got != "light" {
		t.Errorf("expected light, got %s", got)
	}
	if got := ThemeByName("unknown").Name; got != "light" {
		t.Errorf("unknown themes default to light, got %s", got)
	}
}

func TestThemeToggle(t *testing.T) {
	if got := LightTheme().Toggle().Name; got != "dark" {
		t.Errorf("light toggles to dark, got %s", got)
	}
	if got := DarkTheme().Toggle().Name; got != "light" {
		t.Errorf("dark toggles to light, got %s", got)
	}
}

func TestStatusStyleFallback(t *testing.T) {
	theme := LightTheme()
	for _, status := range models.LeadStatuses {
		if _, ok := theme.StatusColors[status]; !ok {
			t.Errorf("theme missing color for %s", status)
		}
	}
	// Unknown status falls back to the muted color without panicking.
	_ = theme.StatusStyle(models.LeadStatus("Mystery"))
}
