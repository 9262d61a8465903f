// ABOUTME: Lead detail panel
// ABOUTME: Read-only field display with edit and convert entry points
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) renderDetailView() string {
	lead, ok := m.selectedLead()
	if !ok {
		return m.styles.Error.Render("Lead no longer present.")
	}

	var s strings.Builder
	s.WriteString(m.styles.Title.Render("LEAD DETAIL"))
	s.WriteString("\n\n")

	row := func(label, value string) {
		s.WriteString(m.styles.Label.Render(fmt.Sprintf("%-10s", label)))
		s.WriteString(m.styles.Text.Render(value))
		s.WriteString("\n")
	}
	row("Name", lead.Name)
	row("Company", lead.Company)
	row("Email", lead.Email)
	row("Source", lead.Source)
	row("Score", fmt.Sprintf("%d", lead.Score))

	s.WriteString(m.styles.Label.Render(fmt.Sprintf("%-10s", "Status")))
	s.WriteString(m.theme.StatusStyle(lead.Status).Render(string(lead.Status)))
	s.WriteString("\n\n")

	help := []string{"e: Edit", "c: Convert", "Esc: Back", "q: Quit"}
	s.WriteString(m.styles.Help.Render(strings.Join(help, " • ")))
	return s.String()
}

func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.viewMode = ViewList
		return m, nil
	case "e":
		return m.enterEditView(), nil
	case "c":
		return m.enterConvertView(), nil
	case "q":
		return m, tea.Quit
	}
	return m, nil
}
