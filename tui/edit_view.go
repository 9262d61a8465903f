// ABOUTME: Lead edit form with optimistic save
// ABOUTME: Email input and status selector; failures keep the form open for retry
package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeremiasmarinho/mini-seller-console/models"
)

func (m Model) enterEditView() Model {
	lead, ok := m.selectedLead()
	if !ok {
		return m
	}
	m.viewMode = ViewEdit
	m.formErr = ""
	m.saving = false
	m.emailInput.SetValue(lead.Email)
	m.emailInput.Focus()
	m.focusIndex = 0
	m.statusIdx = 0
	for i, status := range models.LeadStatuses {
		if status == lead.Status {
			m.statusIdx = i
			break
		}
	}
	return m
}

func (m Model) renderEditView() string {
	lead, ok := m.selectedLead()
	if !ok {
		return m.styles.Error.Render("Lead no longer present.")
	}

	var s strings.Builder
	s.WriteString(m.styles.Title.Render("EDIT LEAD — " + lead.Name))
	s.WriteString("\n\n")

	if m.focusIndex == 0 {
		s.WriteString("> ")
	} else {
		s.WriteString("  ")
	}
	s.WriteString(m.styles.Label.Render("Email:  "))
	s.WriteString(m.emailInput.View())
	s.WriteString("\n")

	if m.focusIndex == 1 {
		s.WriteString("> ")
	} else {
		s.WriteString("  ")
	}
	s.WriteString(m.styles.Label.Render("Status: "))
	status := models.LeadStatuses[m.statusIdx]
	s.WriteString(m.theme.StatusStyle(status).Render("< " + string(status) + " >"))
	s.WriteString("\n\n")

	if m.saving {
		s.WriteString(m.styles.Warning.Render("Saving..."))
		s.WriteString("\n")
	}
	if m.formErr != "" {
		s.WriteString(m.styles.Error.Render("Save failed: " + m.formErr))
		s.WriteString("\n")
		s.WriteString(m.styles.Muted.Render("Press Enter to retry or Esc to discard."))
		s.WriteString("\n")
	}

	help := []string{"Tab: Next field", "←/→: Change status", "Enter: Save", "Esc: Cancel"}
	s.WriteString(m.styles.Help.Render(strings.Join(help, " • ")))
	return s.String()
}

func (m Model) handleEditKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.saving {
		// One in-flight save at a time; ignore input until it resolves.
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.viewMode = ViewList
		m.formErr = ""
		return m, nil
	case "tab", "shift+tab":
		m.focusIndex = (m.focusIndex + 1) % 2
		if m.focusIndex == 0 {
			m.emailInput.Focus()
		} else {
			m.emailInput.Blur()
		}
		return m, nil
	case "left", "right":
		if m.focusIndex == 1 {
			n := len(models.LeadStatuses)
			if msg.String() == "left" {
				m.statusIdx = (m.statusIdx + n - 1) % n
			} else {
				m.statusIdx = (m.statusIdx + 1) % n
			}
		}
		return m, nil
	case "enter":
		return m.submitEdit()
	}

	if m.focusIndex == 0 {
		var cmd tea.Cmd
		m.emailInput, cmd = m.emailInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// submitEdit builds the patch from the form and launches the optimistic
// save. Only changed fields are included.
func (m Model) submitEdit() (tea.Model, tea.Cmd) {
	lead, ok := m.selectedLead()
	if !ok {
		m.viewMode = ViewList
		return m, nil
	}

	var patch models.LeadPatch
	if email := strings.TrimSpace(m.emailInput.Value()); email != lead.Email {
		patch.Email = &email
	}
	if status := models.LeadStatuses[m.statusIdx]; status != lead.Status {
		patch.Status = &status
	}
	if patch.IsZero() {
		m.viewMode = ViewList
		return m, nil
	}

	m.saving = true
	m.formErr = ""
	return m, m.saveLeadCmd(lead.ID, patch)
}
