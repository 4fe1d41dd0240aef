package tui

import (
	"github.com/MKhiriev/go-master-password/internal/crypto"
	"github.com/MKhiriev/go-master-password/models"
)

// NavigateTo switches the active page. Payload, when set, is delivered to
// the new page as the next message.
type NavigateTo struct {
	Page    string
	Payload any
}

// UnlockResult is produced when the master key derivation finishes.
type UnlockResult struct {
	UserName string
	Key      *crypto.MasterKey
	Err      error
}

type siteRow struct {
	site     models.Site
	password string
	err      error
}

type sitesLoadedMsg struct {
	rows []siteRow
	err  error
}

type siteChangedMsg struct {
	site   models.Site
	status string
	err    error
}

type siteAddedMsg struct {
	site models.Site
	err  error
}

type siteDeletedMsg struct {
	name string
	err  error
}

type copiedMsg struct {
	name string
	err  error
}

type clearStatusMsg struct{}
