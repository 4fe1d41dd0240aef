// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-master-password/internal/crypto"
	"github.com/MKhiriev/go-master-password/internal/service"
	"github.com/MKhiriev/go-master-password/models"
)

const (
	statusTTL    = 3 * time.Second
	maskedSecret = "••••••••••••"
)

// SitesModel lists the sites of the unlocked user with their passwords.
// Passwords are masked until revealed with v.
type SitesModel struct {
	ctx       context.Context
	generator service.GeneratorService
	sites     service.SiteService
	copier    Copier
	buildInfo models.AppBuildInfo

	userName string
	key      *crypto.MasterKey

	rows    []siteRow
	idx     int
	loading bool
	reveal  bool

	confirm *confirmModel

	status string
	errMsg string
}

func NewSitesModel(ctx context.Context, d deps, userName string, key *crypto.MasterKey) *SitesModel {
	return &SitesModel{
		ctx:       ctx,
		generator: d.generator,
		sites:     d.sites,
		copier:    d.copier,
		buildInfo: d.buildInfo,
		userName:  userName,
		key:       key,
		loading:   true,
	}
}

func (m *SitesModel) Init() tea.Cmd {
	m.loading = true
	return m.cmdLoad()
}

func (m *SitesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sitesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.rows = msg.rows
		m.clampIndex()
		return m, nil

	case siteChangedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.replaceRow(msg.site)
		return m, tea.Batch(m.setStatus(msg.status), m.cmdRender(msg.site))

	case siteRow:
		m.replaceRendered(msg)
		return m, nil

	case siteAddedMsg:
		if msg.err != nil {
			return m, nil
		}
		m.loading = true
		return m, tea.Batch(m.setStatus(fmt.Sprintf("Added %s", msg.site.SiteName)), m.cmdLoad())

	case siteDeletedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.loading = true
		return m, tea.Batch(m.setStatus(fmt.Sprintf("Deleted %s", msg.name)), m.cmdLoad())

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		return m, m.setStatus(fmt.Sprintf("Copied password for %s", msg.name))

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		if m.confirm != nil {
			return m.updateConfirm(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m *SitesModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
		return m, nil
	case key.Matches(msg, keys.down):
		if m.idx < len(m.rows)-1 {
			m.idx++
		}
		return m, nil
	case key.Matches(msg, keys.reveal):
		m.reveal = !m.reveal
		return m, nil
	case key.Matches(msg, keys.newItem):
		return m, func() tea.Msg { return NavigateTo{Page: pageNewSite} }
	}

	row, ok := m.current()
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.copy):
		if row.err != nil {
			m.errMsg = humanizeError(row.err)
			return m, nil
		}
		return m, m.cmdCopy(row)
	case key.Matches(msg, keys.counterUp):
		return m, m.cmdBump(row.site, 1)
	case key.Matches(msg, keys.counterDown):
		return m, m.cmdBump(row.site, -1)
	case key.Matches(msg, keys.cycleType):
		return m, m.cmdCycleType(row.site)
	case key.Matches(msg, keys.delete):
		m.confirm = &confirmModel{message: row.site.SiteName}
		return m, nil
	}

	return m, nil
}

func (m *SitesModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.confirm = nil
		row, ok := m.current()
		if !ok {
			return m, nil
		}
		return m, m.cmdDelete(row.site)
	case key.Matches(msg, keys.no):
		m.confirm = nil
	}
	return m, nil
}

func (m *SitesModel) View() string {
	if m.confirm != nil {
		return renderPage("SITES", m.confirm.View(), "y: delete │ n: keep")
	}

	var b strings.Builder
	b.WriteString("User: ")
	b.WriteString(m.userName)
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case len(m.rows) == 0:
		b.WriteString("No sites yet, press n to add one\n")
	default:
		b.WriteString(helpStyle.Render(fmt.Sprintf("  %s %s %s %7s  %s", padRight("Site", 28), padRight("Login", 18), padRight("Type", 8), "Counter", "Password")))
		b.WriteString("\n")
		for i, row := range m.rows {
			line := fmt.Sprintf("%s %s %s %7d  %s",
				padRight(fitText(row.site.SiteName, 28), 28),
				padRight(fitText(valueOrDash(row.site.Login), 18), 18),
				padRight(row.site.Type.String(), 8),
				row.site.Counter,
				m.renderPassword(row),
			)
			if i == m.idx {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(renderBuildInfoFooter(m.buildInfo)))

	return renderPage("SITES", strings.TrimRight(b.String(), "\n"),
		"c: copy │ v: show/hide │ +/-: counter │ t: type │ n: new │ d: delete │ i: about │ q: quit")
}

func (m *SitesModel) renderPassword(row siteRow) string {
	switch {
	case row.err != nil:
		return errorStyle.Render("error")
	case row.password == "":
		return "..."
	case m.reveal:
		return passwordStyle.Render(row.password)
	default:
		return maskedSecret
	}
}

func (m *SitesModel) current() (siteRow, bool) {
	if len(m.rows) == 0 || m.idx < 0 || m.idx >= len(m.rows) {
		return siteRow{}, false
	}
	return m.rows[m.idx], true
}

func (m *SitesModel) clampIndex() {
	if m.idx >= len(m.rows) {
		m.idx = len(m.rows) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

// replaceRow swaps in an updated site and drops its stale password until
// the new one is rendered.
func (m *SitesModel) replaceRow(site models.Site) {
	for i := range m.rows {
		if m.rows[i].site.ID == site.ID {
			m.rows[i] = siteRow{site: site}
			return
		}
	}
}

func (m *SitesModel) replaceRendered(row siteRow) {
	for i := range m.rows {
		if m.rows[i].site.ID == row.site.ID {
			m.rows[i] = row
			return
		}
	}
}

func (m *SitesModel) setStatus(status string) tea.Cmd {
	m.status = status
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m *SitesModel) render(site models.Site) siteRow {
	password, err := m.generator.GeneratePassword(m.ctx, m.key, site)
	return siteRow{site: site, password: password, err: err}
}

func (m *SitesModel) cmdLoad() tea.Cmd {
	ctx, sites, userName := m.ctx, m.sites, m.userName

	return func() tea.Msg {
		list, err := sites.ListSites(ctx, userName)
		if err != nil {
			return sitesLoadedMsg{err: err}
		}

		rows := make([]siteRow, 0, len(list))
		for _, site := range list {
			rows = append(rows, m.render(site))
		}
		return sitesLoadedMsg{rows: rows}
	}
}

func (m *SitesModel) cmdRender(site models.Site) tea.Cmd {
	return func() tea.Msg {
		return m.render(site)
	}
}

func (m *SitesModel) cmdCopy(row siteRow) tea.Cmd {
	copier := m.copier

	return func() tea.Msg {
		if copier == nil {
			return copiedMsg{name: row.site.SiteName, err: errNoClipboard}
		}
		return copiedMsg{name: row.site.SiteName, err: copier.Copy(row.password)}
	}
}

func (m *SitesModel) cmdBump(site models.Site, delta int) tea.Cmd {
	ctx, sites := m.ctx, m.sites

	return func() tea.Msg {
		updated, err := sites.BumpCounter(ctx, site.ID, delta)
		return siteChangedMsg{
			site:   updated,
			status: fmt.Sprintf("%s counter %d", updated.SiteName, updated.Counter),
			err:    err,
		}
	}
}

func (m *SitesModel) cmdCycleType(site models.Site) tea.Cmd {
	ctx, sites := m.ctx, m.sites

	return func() tea.Msg {
		updated, err := sites.CycleType(ctx, site.ID)
		return siteChangedMsg{
			site:   updated,
			status: fmt.Sprintf("%s type %s", updated.SiteName, updated.Type),
			err:    err,
		}
	}
}

func (m *SitesModel) cmdDelete(site models.Site) tea.Cmd {
	ctx, sites := m.ctx, m.sites

	return func() tea.Msg {
		return siteDeletedMsg{name: site.SiteName, err: sites.DeleteSite(ctx, site.ID)}
	}
}
