// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the interactive terminal UI of mpw on top of Bubble
// Tea.
//
// The UI unlocks a user with the master password, lists the user's sites
// with their generated passwords and lets the user copy, rotate and manage
// them. The master key lives only inside the running program and is wiped
// when it exits.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-master-password/internal/logger"
	"github.com/MKhiriev/go-master-password/internal/service"
	"github.com/MKhiriev/go-master-password/models"
)

var ErrUserQuit = errors.New("user quit")

// Copier puts a generated password on the clipboard.
type Copier interface {
	Copy(text string) error
}

type TUI struct {
	generator service.GeneratorService
	sites     service.SiteService
	copier    Copier

	userName  string
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

// New returns a TUI. userName pre-fills the unlock screen.
func New(services *service.Services, copier Copier, userName string, logger *logger.Logger) *TUI {
	return &TUI{
		generator: services.GeneratorService,
		sites:     services.SiteService,
		copier:    copier,
		userName:  userName,
		buildInfo: services.AppInfoService.GetAppBuildInfo(context.Background()),
		logger:    logger,
	}
}

// Run shows the UI until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	ctx = t.logger.WithContext(ctx)

	root := NewRootModel(ctx, t.deps())
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()

	result, ok := finalModel.(RootModel)
	if ok {
		result.wipe()
	}
	if runErr != nil {
		return runErr
	}
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

func (t *TUI) deps() deps {
	return deps{
		generator: t.generator,
		sites:     t.sites,
		copier:    t.copier,
		userName:  t.userName,
		buildInfo: t.buildInfo,
	}
}

// deps is what the pages share.
type deps struct {
	generator service.GeneratorService
	sites     service.SiteService
	copier    Copier
	userName  string
	buildInfo models.AppBuildInfo
}
