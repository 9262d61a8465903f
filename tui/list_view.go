// ABOUTME: Leads list view with stats header, filter bar and table
// ABOUTME: Loading and load-error states with manual retry
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeremiasmarinho/mini-seller-console/prefs"
)

func (m Model) renderLoadingView() string {
	var s strings.Builder
	s.WriteString(m.styles.Title.Render("MINI SELLER"))
	s.WriteString("\n\n")
	s.WriteString(m.styles.Muted.Render("Loading leads..."))
	return s.String()
}

func (m Model) renderLoadErrorView() string {
	var s strings.Builder
	s.WriteString(m.styles.Title.Render("MINI SELLER"))
	s.WriteString("\n\n")
	s.WriteString(m.styles.Error.Render("Failed to load leads"))
	s.WriteString("\n")
	s.WriteString(m.styles.Muted.Render(m.loadErr))
	s.WriteString("\n\n")
	s.WriteString(m.styles.Help.Render("r: Retry • q: Quit"))
	return s.String()
}

func (m Model) handleLoadErrorKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "r":
		m.viewMode = ViewLoading
		return m, m.loadLeadsCmd()
	case "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) renderListView() string {
	var s strings.Builder

	s.WriteString(m.styles.Title.Render("MINI SELLER"))
	s.WriteString("\n\n")
	s.WriteString(m.renderTabs(0))
	s.WriteString("\n\n")
	s.WriteString(m.renderStats())
	s.WriteString("\n")
	s.WriteString(m.renderFilterBar())
	s.WriteString("\n\n")
	s.WriteString(m.renderLeadsTable())
	s.WriteString("\n")

	if m.notice != "" {
		s.WriteString(m.styles.Success.Render(m.notice))
		s.WriteString("\n")
	}
	s.WriteString(m.renderActivity())
	s.WriteString(m.renderListHelp())

	return s.String()
}

func (m Model) renderTabs(active int) string {
	tabs := []string{"Leads", "Opportunities"}
	var rendered []string
	for i, tab := range tabs {
		if i == active {
			rendered = append(rendered, m.styles.TabActive.Render(tab))
		} else {
			rendered = append(rendered, m.styles.TabInactive.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) renderStats() string {
	stats := m.ctrl.Statistics()
	return m.styles.Muted.Render(fmt.Sprintf(
		"Total: %d • Qualified: %d • Contacted: %d • Opportunities: %d • Conversion: %d%%",
		stats.Total, stats.Qualified, stats.Contacted, stats.Opportunities, stats.ConversionRate,
	))
}

func (m Model) renderFilterBar() string {
	var s strings.Builder
	s.WriteString(m.styles.Label.Render("Search: "))
	s.WriteString(m.searchInput.View())
	s.WriteString("   ")
	s.WriteString(m.styles.Label.Render("Status: "))
	s.WriteString(m.styles.Text.Render(m.filters.Status))
	if m.filters.Active() {
		s.WriteString("  ")
		s.WriteString(m.styles.Warning.Render("[filtered]"))
	}
	return s.String()
}

func (m Model) renderLeadsTable() string {
	filtered := m.filtered()
	if len(filtered) == 0 {
		if m.filters.Active() {
			return m.styles.Muted.Render("No leads match the current filters.")
		}
		return m.styles.Muted.Render("No leads.")
	}

	columns := []table.Column{
		{Title: "Name", Width: 20},
		{Title: "Company", Width: 16},
		{Title: "Email", Width: 26},
		{Title: "Source", Width: 10},
		{Title: "Score", Width: 5},
		{Title: "Status", Width: 12},
	}

	var rows []table.Row
	for _, lead := range filtered {
		rows = append(rows, table.Row{
			lead.Name,
			lead.Company,
			lead.Email,
			lead.Source,
			strconv.Itoa(lead.Score),
			string(lead.Status),
		})
	}

	height := m.height - 14
	if height < 3 {
		height = 3
	}
	if height > len(rows)+1 {
		height = len(rows) + 1
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)
	if m.cursor < len(rows) {
		t.SetCursor(m.cursor)
	}

	return t.View()
}

func (m Model) renderActivity() string {
	feed := m.ctrl.Activity()
	if len(feed) == 0 {
		return ""
	}
	limit := 3
	if len(feed) < limit {
		limit = len(feed)
	}
	var s strings.Builder
	for _, entry := range feed[:limit] {
		line := fmt.Sprintf("%s lead %s: %s", entry.Verb, entry.LeadID, entry.Detail)
		s.WriteString(m.styles.Muted.Render(line))
		s.WriteString("\n")
	}
	return s.String()
}

func (m Model) renderListHelp() string {
	help := []string{
		"↑/↓: Move",
		"Enter: Detail",
		"e: Edit",
		"c: Convert",
		"/: Search",
		"s: Status filter",
		"x: Reset filters",
		"Tab: Opportunities",
		"t: Theme",
		"q: Quit",
	}
	return m.styles.Help.Render(strings.Join(help, " • "))
}

func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	filtered := m.filtered()

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < len(filtered)-1 {
			m.cursor++
		}
		return m, nil
	case "enter":
		if m.cursor < len(filtered) {
			m.selectedID = filtered[m.cursor].ID
			m.notice = ""
			m.viewMode = ViewDetail
		}
		return m, nil
	case "e":
		if m.cursor < len(filtered) {
			m.selectedID = filtered[m.cursor].ID
			m.notice = ""
			return m.enterEditView(), nil
		}
		return m, nil
	case "c":
		if m.cursor < len(filtered) {
			m.selectedID = filtered[m.cursor].ID
			m.notice = ""
			return m.enterConvertView(), nil
		}
		return m, nil
	case "/":
		m.searchFocused = true
		m.searchInput.Focus()
		return m, nil
	case "s":
		return m.cycleStatusFilter(), nil
	case "x":
		return m.resetFilters(), nil
	case "tab":
		m.viewMode = ViewOpps
		return m, m.loadOppsCmd()
	case "t":
		m.theme = m.theme.Toggle()
		m.styles = m.theme.Styles()
		m.prefs.SaveTheme(themeName(m.theme))
		return m, nil
	}
	return m, nil
}

func themeName(t Theme) string {
	if t.Name == "dark" {
		return prefs.ThemeDark
	}
	return prefs.ThemeLight
}
