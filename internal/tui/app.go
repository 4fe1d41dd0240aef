package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-master-password/internal/crypto"
)

const (
	pageUnlock  = "unlock"
	pageSites   = "sites"
	pageNewSite = "new"
)

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit and the about window
// 3) builds the site pages once the master key is derived
// 4) delegates all other messages to the active page
type RootModel struct {
	ctx  context.Context
	deps deps

	pages   map[string]tea.Model
	current tea.Model

	key        *crypto.MasterKey
	quitByUser bool

	showBuildInfo bool
}

// NewRootModel opens the unlock page.
func NewRootModel(ctx context.Context, d deps) RootModel {
	unlock := NewUnlockModel(ctx, d.generator, d.userName)
	return RootModel{
		ctx:     ctx,
		deps:    d,
		pages:   map[string]tea.Model{pageUnlock: unlock},
		current: unlock,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys for every page.
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		case "i":
			if r.isSitesPage() {
				r.showBuildInfo = !r.showBuildInfo
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	// Cross-page navigation.
	if nav, ok := msg.(NavigateTo); ok {
		next, exists := r.pages[nav.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = next

		if nav.Payload != nil {
			return r, func() tea.Msg { return nav.Payload }
		}
		return r, r.current.Init()
	}

	// A derived key unlocks the site pages.
	if result, ok := msg.(UnlockResult); ok && result.Err == nil && result.Key != nil {
		if r.key != nil {
			r.key.Wipe()
		}
		r.key = result.Key

		sites := NewSitesModel(r.ctx, r.deps, result.UserName, result.Key)
		r.pages[pageSites] = sites
		r.pages[pageNewSite] = NewSiteFormModel(r.ctx, r.deps.sites, result.UserName)
		r.current = sites
		return r, sites.Init()
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.deps.buildInfo)
	}
	if r.current == nil {
		return renderPage("mpw", "", "")
	}
	return r.current.View()
}

func (r RootModel) isSitesPage() bool {
	_, ok := r.current.(*SitesModel)
	return ok
}

// wipe zeroes the master key held by the session.
func (r RootModel) wipe() {
	if r.key != nil {
		r.key.Wipe()
	}
	if unlock, ok := r.pages[pageUnlock].(*UnlockModel); ok {
		unlock.cancel()
	}
}
