// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-master-password/internal/service"
)

// UnlockModel is the Bubble Tea model for the unlock screen. It renders the
// user name and master password inputs and derives the master key in a
// [tea.Cmd]. The derivation takes a noticeable moment; esc aborts it.
// On success an [UnlockResult] is handled by [RootModel], which opens the
// site list.
type UnlockModel struct {
	ctx       context.Context
	generator service.GeneratorService

	inputs  []textinput.Model
	focus   int
	spinner spinner.Model

	submitting bool
	abort      context.CancelFunc
	errMsg     string
}

// NewUnlockModel creates an [UnlockModel]. A non-empty userName is
// pre-filled and focus starts on the master password.
func NewUnlockModel(ctx context.Context, generator service.GeneratorService, userName string) *UnlockModel {
	nameInput := textinput.New()
	nameInput.Placeholder = "full name"
	nameInput.CharLimit = 128
	nameInput.Width = 40
	nameInput.SetValue(userName)

	passwordInput := textinput.New()
	passwordInput.Placeholder = "master password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	m := &UnlockModel{
		ctx:       ctx,
		generator: generator,
		inputs:    []textinput.Model{nameInput, passwordInput},
		spinner:   s,
	}
	if strings.TrimSpace(userName) != "" {
		m.focus = 1
	}
	m.inputs[m.focus].Focus()
	return m
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *UnlockModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [UnlockResult] clears submitting state; on error, populates errMsg.
//   - esc aborts a running derivation.
//   - tab / shift+tab move focus between inputs.
//   - enter validates inputs and starts the derivation.
//
// All other key events are forwarded to the focused input widget.
func (m *UnlockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case UnlockResult:
		m.submitting = false
		m.cancel()
		if msg.Err != nil {
			m.errMsg = humanizeError(msg.Err)
		}
		return m, nil

	case spinner.TickMsg:
		if !m.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			if m.submitting {
				m.cancel()
			}
			return m, nil
		case m.submitting:
			return m, nil
		case key.Matches(msg, keys.tab):
			m.focusNext()
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.focusPrev()
			return m, nil
		case key.Matches(msg, keys.enter):
			userName := strings.TrimSpace(m.inputs[0].Value())
			password := m.inputs[1].Value()
			if userName == "" {
				m.errMsg = humanizeError(service.ErrEmptyUserName)
				return m, nil
			}
			if password == "" {
				m.errMsg = humanizeError(service.ErrEmptyMasterPassword)
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			m.inputs[1].SetValue("")
			return m, tea.Batch(m.cmdUnlock(userName, password), m.spinner.Tick)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *UnlockModel) View() string {
	var b strings.Builder
	b.WriteString("Field            │ Value\n")
	b.WriteString("─────────────────┼────────────────────────────────────────────\n")
	b.WriteString("User name        │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Master password  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" Deriving master key...\n")
	} else {
		b.WriteString("\n[Unlock]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	hotKeys := "tab: next field │ enter: unlock"
	if m.submitting {
		hotKeys = "esc: abort"
	}
	return renderPage("MASTER PASSWORD", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *UnlockModel) cmdUnlock(userName, password string) tea.Cmd {
	ctx, cancel := context.WithCancel(m.ctx)
	m.abort = cancel
	generator := m.generator

	return func() tea.Msg {
		key, err := generator.DeriveMasterKey(ctx, userName, password)
		return UnlockResult{UserName: userName, Key: key, Err: err}
	}
}

func (m *UnlockModel) cancel() {
	if m.abort != nil {
		m.abort()
		m.abort = nil
	}
}

func (m *UnlockModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *UnlockModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
