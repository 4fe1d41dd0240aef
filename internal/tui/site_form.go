package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-master-password/internal/service"
	"github.com/MKhiriev/go-master-password/models"
)

// SiteFormModel adds a site for the unlocked user. Counter and type start at
// the configured defaults and are changed from the site list.
type SiteFormModel struct {
	ctx      context.Context
	sites    service.SiteService
	userName string

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func NewSiteFormModel(ctx context.Context, sites service.SiteService, userName string) *SiteFormModel {
	siteInput := textinput.New()
	siteInput.Placeholder = "example.com"
	siteInput.CharLimit = 256
	siteInput.Width = 40

	loginInput := textinput.New()
	loginInput.Placeholder = "optional"
	loginInput.CharLimit = 256
	loginInput.Width = 40

	m := &SiteFormModel{
		ctx:      ctx,
		sites:    sites,
		userName: userName,
		inputs:   []textinput.Model{siteInput, loginInput},
	}
	return m
}

// Init resets the form every time the page is opened.
func (m *SiteFormModel) Init() tea.Cmd {
	m.submitting = false
	m.errMsg = ""
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.inputs[0].Focus()
	return textinput.Blink
}

func (m *SiteFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(siteAddedMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeError(result.err)
			return m, nil
		}
		return m, func() tea.Msg { return NavigateTo{Page: pageSites, Payload: result} }
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Page: pageSites, Payload: clearStatusMsg{}} }
		case key.Matches(keyMsg, keys.tab):
			m.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}
			siteName := strings.TrimSpace(m.inputs[0].Value())
			if siteName == "" {
				m.errMsg = humanizeError(service.ErrEmptySiteName)
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdAdd(models.Site{
				UserName: m.userName,
				SiteName: siteName,
				Login:    strings.TrimSpace(m.inputs[1].Value()),
			})
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *SiteFormModel) View() string {
	var b strings.Builder
	b.WriteString("Site   │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Login  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Saving...]\n")
	} else {
		b.WriteString("\n[Save]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("NEW SITE", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: save")
}

func (m *SiteFormModel) cmdAdd(site models.Site) tea.Cmd {
	ctx, sites := m.ctx, m.sites

	return func() tea.Msg {
		saved, err := sites.AddSite(ctx, site)
		return siteAddedMsg{site: saved, err: err}
	}
}

func (m *SiteFormModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *SiteFormModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
