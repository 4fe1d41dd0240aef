package models

import "time"

// Site is the metadata needed to regenerate one site password. It never
// carries the generated password itself.
type Site struct {
	// ID is the client-generated UUID of the site record.
	ID string `json:"id"`

	// UserName is the master-password user the site belongs to. It is part
	// of the master key salt, so sites of different users never mix.
	UserName string `json:"user_name"`

	// SiteName is the site identifier fed into seed derivation
	// (e.g. "ebay.com").
	SiteName string `json:"site_name"`

	// Login is the account name used on the site. Informational only; it
	// does not take part in any derivation.
	Login string `json:"login,omitempty"`

	// Counter is the rotation nonce. Bumping it yields a new password for
	// the same site.
	Counter uint32 `json:"counter"`

	// Type selects the password template list.
	Type PasswordType `json:"type"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SiteList is the document written by export and read by import.
type SiteList struct {
	UserName string `json:"user_name"`
	Sites    []Site `json:"sites"`
}
