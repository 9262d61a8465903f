// ABOUTME: Filter bar handling for the leads table
// ABOUTME: Debounced search input, status cycling and filter reset
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeremiasmarinho/mini-seller-console/models"
)

// searchDebounce is how long typing must pause before the search term is
// applied to the table.
const searchDebounce = 300 * time.Millisecond

// searchAppliedMsg fires after the debounce window. Only the message
// carrying the latest sequence number wins; earlier keystrokes schedule
// messages that arrive stale and are ignored.
type searchAppliedMsg struct {
	seq int
}

func debounceSearchCmd(seq int) tea.Cmd {
	return tea.Tick(searchDebounce, func(time.Time) tea.Msg {
		return searchAppliedMsg{seq: seq}
	})
}

func (m Model) applySearch(msg searchAppliedMsg) Model {
	if msg.seq != m.searchSeq {
		return m
	}
	m.filters.Search = m.searchInput.Value()
	m.cursor = 0
	m.prefs.SaveFilters(m.filters)
	return m
}

func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.searchFocused = false
		m.searchInput.Blur()
		// Apply immediately on exit, skipping the debounce window.
		m.filters.Search = m.searchInput.Value()
		m.cursor = 0
		m.prefs.SaveFilters(m.filters)
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}

	before := m.searchInput.Value()
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if m.searchInput.Value() == before {
		return m, cmd
	}

	m.searchSeq++
	return m, tea.Batch(cmd, debounceSearchCmd(m.searchSeq))
}

// statusFilterRing is the cycling order of the status filter key.
var statusFilterRing = []string{
	models.StatusAll,
	string(models.StatusNew),
	string(models.StatusContacted),
	string(models.StatusQualified),
	string(models.StatusUnqualified),
}

func (m Model) cycleStatusFilter() Model {
	current := 0
	for i, status := range statusFilterRing {
		if status == m.filters.Status {
			current = i
			break
		}
	}
	m.filters.Status = statusFilterRing[(current+1)%len(statusFilterRing)]
	m.cursor = 0
	m.prefs.SaveFilters(m.filters)
	return m
}

func (m Model) resetFilters() Model {
	m.filters = m.prefs.ResetFilters()
	m.searchInput.SetValue("")
	m.cursor = 0
	return m
}
