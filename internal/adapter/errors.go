package adapter

import "errors"

var (
	ErrClipboardUnsupported = errors.New("clipboard is not supported on this system")
	ErrClipboardAccess      = errors.New("clipboard access failed")
)
