// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"

	"github.com/MKhiriev/go-master-password/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	return renderPage("ABOUT", "Application: mpw\n"+info.String(), "esc: back")
}

func renderBuildInfoFooter(info models.AppBuildInfo) string {
	return fmt.Sprintf("mpw %s (%s)", info.BuildVersion(), info.BuildCommit())
}
