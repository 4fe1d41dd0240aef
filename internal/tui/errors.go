// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-master-password/internal/adapter"
	"github.com/MKhiriev/go-master-password/internal/service"
)

func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.Canceled):
		return "Cancelled"
	case errors.Is(err, service.ErrEmptyUserName):
		return "User name is required"
	case errors.Is(err, service.ErrEmptyMasterPassword):
		return "Master password is required"
	case errors.Is(err, service.ErrEmptySiteName):
		return "Site name is required"
	case errors.Is(err, service.ErrSiteExists):
		return "A site with this name already exists"
	case errors.Is(err, service.ErrSiteNotFound):
		return "Site no longer exists"
	case errors.Is(err, adapter.ErrClipboardUnsupported):
		return "Clipboard is not available on this system"
	default:
		return err.Error()
	}
}

var errNoClipboard = errors.New("no clipboard configured")
