// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides abstractions over the outside world that the
// service and UI layers talk to.
//
// The primary abstraction is [Clipboard], which decouples copying a generated
// password from the platform clipboard. [NewSystemClipboard] is backed by
// github.com/atotto/clipboard; [NewMemoryClipboard] keeps the text in
// process and serves tests and headless sessions.
package adapter

//go:generate mockgen -source=interfaces.go -destination=../mock/clipboard_mock.go -package=mock

// Clipboard reads and writes the text clipboard.
type Clipboard interface {
	// ReadAll returns the current clipboard text.
	ReadAll() (string, error)

	// WriteAll replaces the clipboard content with text.
	WriteAll(text string) error
}
