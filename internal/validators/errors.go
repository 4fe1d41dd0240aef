package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidSiteID       = errors.New("invalid site id")
	ErrEmptyUserName       = errors.New("user name is required")
	ErrEmptySiteName       = errors.New("site name is required")
	ErrInvalidCounter      = errors.New("counter must be at least 1")
	ErrInvalidPasswordType = errors.New("invalid password type")
	ErrEmptySiteList       = errors.New("site list cannot be empty")
)
