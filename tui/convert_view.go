// ABOUTME: Lead-to-opportunity conversion prompt
// ABOUTME: Optional amount input feeding the conversion workflow
package tui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) enterConvertView() Model {
	m.viewMode = ViewConvert
	m.formErr = ""
	m.saving = false
	m.amountInput.SetValue("")
	m.amountInput.Focus()
	return m
}

func (m Model) renderConvertView() string {
	lead, ok := m.selectedLead()
	if !ok {
		return m.styles.Error.Render("Lead no longer present.")
	}

	var s strings.Builder
	s.WriteString(m.styles.Title.Render("CONVERT LEAD — " + lead.Name))
	s.WriteString("\n\n")
	s.WriteString(m.styles.Text.Render("Creates a New opportunity for account \"" + lead.Company + "\"."))
	s.WriteString("\n\n")
	s.WriteString(m.styles.Label.Render("Amount: "))
	s.WriteString(m.amountInput.View())
	s.WriteString("\n\n")

	if m.saving {
		s.WriteString(m.styles.Warning.Render("Converting..."))
		s.WriteString("\n")
	}
	if m.formErr != "" {
		s.WriteString(m.styles.Error.Render(m.formErr))
		s.WriteString("\n")
	}

	help := []string{"Enter: Convert", "Esc: Cancel"}
	s.WriteString(m.styles.Help.Render(strings.Join(help, " • ")))
	return s.String()
}

func (m Model) handleConvertKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.saving {
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.viewMode = ViewList
		m.formErr = ""
		return m, nil
	case "enter":
		lead, ok := m.selectedLead()
		if !ok {
			m.viewMode = ViewList
			return m, nil
		}

		var amount *float64
		if raw := strings.TrimSpace(m.amountInput.Value()); raw != "" {
			value, err := strconv.ParseFloat(raw, 64)
			if err != nil || value < 0 {
				m.formErr = "amount must be a non-negative number"
				return m, nil
			}
			amount = &value
		}

		m.saving = true
		m.formErr = ""
		return m, m.convertLeadCmd(lead, amount)
	}

	var cmd tea.Cmd
	m.amountInput, cmd = m.amountInput.Update(msg)
	return m, cmd
}
