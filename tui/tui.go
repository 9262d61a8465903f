// ABOUTME: Terminal user interface for the lead console using bubbletea
// ABOUTME: Root model, view modes, async commands and message handling
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeremiasmarinho/mini-seller-console/leads"
	"github.com/jeremiasmarinho/mini-seller-console/models"
	"github.com/jeremiasmarinho/mini-seller-console/prefs"
)

// ViewMode represents the current console view.
type ViewMode int

const (
	ViewLoading ViewMode = iota
	ViewLoadError
	ViewList
	ViewDetail
	ViewEdit
	ViewConvert
	ViewOpps
)

// Messages produced by async commands.
type leadsLoadedMsg struct {
	leads []models.Lead
	err   error
}

type saveResultMsg struct {
	id  string
	err error
}

type convertResultMsg struct {
	opp models.Opportunity
	err error
}

type oppsLoadedMsg struct {
	opps []models.Opportunity
	err  error
}

// Model is the root bubbletea model.
type Model struct {
	ctrl  *leads.Controller
	prefs *prefs.Store

	viewMode ViewMode
	theme    Theme
	styles   Styles

	// Lead data as last observed from the controller.
	all []models.Lead

	// Filter bar state.
	filters       models.FilterCriteria
	searchInput   textinput.Model
	searchFocused bool
	searchSeq     int

	// List view state.
	cursor int

	// Detail/edit state.
	selectedID string
	emailInput textinput.Model
	statusIdx  int
	focusIndex int
	saving     bool
	formErr    string

	// Convert state.
	amountInput textinput.Model

	// Opportunities tab.
	opps []models.Opportunity

	// Transient footer notice and load error.
	notice  string
	loadErr string

	width  int
	height int
}

// NewModel wires the console to the controller and preference store.
func NewModel(ctrl *leads.Controller, prefStore *prefs.Store) Model {
	theme := ThemeByName(prefStore.LoadTheme())

	search := textinput.New()
	search.Placeholder = "search name, company or email"
	search.CharLimit = 64
	search.Width = 40

	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 120
	email.Width = 40

	amount := textinput.New()
	amount.Placeholder = "amount (optional)"
	amount.CharLimit = 16
	amount.Width = 20

	filters := prefStore.LoadFilters()
	search.SetValue(filters.Search)

	return Model{
		ctrl:        ctrl,
		prefs:       prefStore,
		viewMode:    ViewLoading,
		theme:       theme,
		styles:      theme.Styles(),
		filters:     filters,
		searchInput: search,
		emailInput:  email,
		amountInput: amount,
		width:       80,
		height:      24,
	}
}

func (m Model) Init() tea.Cmd {
	return m.loadLeadsCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case leadsLoadedMsg:
		if msg.err != nil {
			m.viewMode = ViewLoadError
			m.loadErr = msg.err.Error()
			return m, nil
		}
		m.all = msg.leads
		m.loadErr = ""
		m.viewMode = ViewList
		return m, nil

	case saveResultMsg:
		m.saving = false
		m.all = m.ctrl.Leads()
		if msg.err != nil {
			// Keep the edit form open so the user can retry.
			m.formErr = msg.err.Error()
			return m, nil
		}
		m.formErr = ""
		m.notice = "Saved lead " + msg.id
		m.viewMode = ViewList
		return m, nil

	case convertResultMsg:
		m.saving = false
		if msg.err != nil {
			m.formErr = msg.err.Error()
			return m, nil
		}
		m.formErr = ""
		m.notice = "Converted " + msg.opp.Name + " to opportunity"
		m.viewMode = ViewList
		return m, nil

	case oppsLoadedMsg:
		if msg.err == nil {
			m.opps = msg.opps
		}
		return m, nil

	case searchAppliedMsg:
		return m.applySearch(msg), nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

func (m Model) View() string {
	switch m.viewMode {
	case ViewLoading:
		return m.renderLoadingView()
	case ViewLoadError:
		return m.renderLoadErrorView()
	case ViewList:
		return m.renderListView()
	case ViewDetail:
		return m.renderDetailView()
	case ViewEdit:
		return m.renderEditView()
	case ViewConvert:
		return m.renderConvertView()
	case ViewOpps:
		return m.renderOppsView()
	}
	return ""
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// A focused text input owns every key except its exit keys.
	if m.viewMode == ViewList && m.searchFocused {
		return m.handleSearchKeys(msg)
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	}

	switch m.viewMode {
	case ViewLoadError:
		return m.handleLoadErrorKeys(msg)
	case ViewList:
		return m.handleListKeys(msg)
	case ViewDetail:
		return m.handleDetailKeys(msg)
	case ViewEdit:
		return m.handleEditKeys(msg)
	case ViewConvert:
		return m.handleConvertKeys(msg)
	case ViewOpps:
		return m.handleOppsKeys(msg)
	}

	return m, nil
}

// filtered returns the leads currently shown in the table.
func (m Model) filtered() []models.Lead {
	return leads.FilterLeads(m.all, m.filters)
}

func (m Model) selectedLead() (models.Lead, bool) {
	for _, lead := range m.all {
		if lead.ID == m.selectedID {
			return lead, true
		}
	}
	return models.Lead{}, false
}

// Commands.

func (m Model) loadLeadsCmd() tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		loaded, err := ctrl.Load(context.Background())
		return leadsLoadedMsg{leads: loaded, err: err}
	}
}

func (m Model) saveLeadCmd(id string, patch models.LeadPatch) tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		err := ctrl.Save(context.Background(), id, patch)
		return saveResultMsg{id: id, err: err}
	}
}

func (m Model) convertLeadCmd(lead models.Lead, amount *float64) tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		opp, err := ctrl.Convert(context.Background(), lead, amount)
		return convertResultMsg{opp: opp, err: err}
	}
}

func (m Model) loadOppsCmd() tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		opps, err := ctrl.Opportunities(context.Background())
		return oppsLoadedMsg{opps: opps, err: err}
	}
}
