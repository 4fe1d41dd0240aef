// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the mpw application runtime.
//
// It wires configuration, the site store, services, the clipboard and the
// terminal UI into a single process lifecycle, and releases them again on
// exit.
package client
