package service

import (
	"errors"

	"github.com/MKhiriev/go-master-password/internal/validators"
)

// Validation errors are shared with the validators package so that detail
// such as the index of a bad import entry survives unchanged.
var (
	ErrEmptyUserName       = validators.ErrEmptyUserName
	ErrEmptySiteName       = validators.ErrEmptySiteName
	ErrInvalidCounter      = validators.ErrInvalidCounter
	ErrInvalidPasswordType = validators.ErrInvalidPasswordType
)

var (
	ErrEmptyMasterPassword = errors.New("master password is required")
	ErrNoMasterKey         = errors.New("no master key")

	ErrSiteExists   = errors.New("a site with this name already exists")
	ErrSiteNotFound = errors.New("site not found")

	ErrInvalidImport = errors.New("invalid site list")
)
