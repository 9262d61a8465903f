// ABOUTME: Opportunities tab
// ABOUTME: Table of converted opportunities in insertion order
package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) renderOppsView() string {
	var s strings.Builder
	s.WriteString(m.styles.Title.Render("MINI SELLER"))
	s.WriteString("\n\n")
	s.WriteString(m.renderTabs(1))
	s.WriteString("\n\n")
	s.WriteString(m.renderOppsTable())
	s.WriteString("\n")

	help := []string{"Tab: Leads", "t: Theme", "q: Quit"}
	s.WriteString(m.styles.Help.Render(strings.Join(help, " • ")))
	return s.String()
}

func (m Model) renderOppsTable() string {
	if len(m.opps) == 0 {
		return m.styles.Muted.Render("No opportunities yet. Convert a lead with 'c'.")
	}

	columns := []table.Column{
		{Title: "Name", Width: 20},
		{Title: "Account", Width: 18},
		{Title: "Stage", Width: 12},
		{Title: "Amount", Width: 12},
	}

	var rows []table.Row
	for _, opp := range m.opps {
		amount := "—"
		if opp.Amount != nil {
			amount = strconv.FormatFloat(*opp.Amount, 'f', 2, 64)
		}
		rows = append(rows, table.Row{
			opp.Name,
			opp.AccountName,
			string(opp.Stage),
			amount,
		})
	}

	height := m.height - 10
	if height < 3 {
		height = 3
	}
	if height > len(rows)+1 {
		height = len(rows) + 1
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(height),
	)
	return t.View()
}

func (m Model) handleOppsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "esc":
		m.viewMode = ViewList
		return m, nil
	case "t":
		m.theme = m.theme.Toggle()
		m.styles = m.theme.Styles()
		m.prefs.SaveTheme(themeName(m.theme))
		return m, nil
	case "q":
		return m, tea.Quit
	}
	return m, nil
}
