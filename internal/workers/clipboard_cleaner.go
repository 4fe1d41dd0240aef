// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"crypto/sha256"
	"sync"
	"time"

	"github.com/MKhiriev/go-master-password/internal/adapter"
	"github.com/MKhiriev/go-master-password/internal/logger"
)

// ClipboardCleaner copies generated passwords to the clipboard and clears
// them again after a timeout. The clipboard is only cleared while it still
// holds the copied password, so text the user copied in the meantime is
// left alone.
//
// Only a SHA-256 fingerprint of the copied text is kept in memory.
type ClipboardCleaner struct {
	clipboard adapter.Clipboard
	timeout   time.Duration

	mu          sync.Mutex
	fingerprint [sha256.Size]byte
	pending     bool
	timer       *time.Timer
	generation  uint64

	logger *logger.Logger
}

// NewClipboardCleaner returns a cleaner that clears the clipboard timeout
// after each Copy. A timeout <= 0 disables clearing.
func NewClipboardCleaner(clipboard adapter.Clipboard, timeout time.Duration, logger *logger.Logger) *ClipboardCleaner {
	return &ClipboardCleaner{
		clipboard: clipboard,
		timeout:   timeout,
		logger:    logger,
	}
}

// Copy writes text to the clipboard and schedules its removal. A previous
// pending removal is replaced.
func (c *ClipboardCleaner) Copy(text string) error {
	if err := c.clipboard.WriteAll(text); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}

	c.fingerprint = sha256.Sum256([]byte(text))
	c.pending = true
	c.generation++

	if c.timeout > 0 {
		gen := c.generation
		c.timer = time.AfterFunc(c.timeout, func() {
			if err := c.expire(gen); err != nil {
				c.logger.Warn().Err(err).Msg("clear clipboard")
			}
		})
	}

	return nil
}

// Timeout reports how long a copied password stays on the clipboard.
func (c *ClipboardCleaner) Timeout() time.Duration {
	return c.timeout
}

// Flush clears the clipboard now if it still holds the last copied text.
func (c *ClipboardCleaner) Flush() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.flushLocked()
}

// expire is the timer callback of the Copy that produced gen. It does
// nothing once a newer Copy has taken over.
func (c *ClipboardCleaner) expire(gen uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		return nil
	}
	return c.flushLocked()
}

func (c *ClipboardCleaner) flushLocked() error {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	if !c.pending {
		return nil
	}
	c.pending = false

	current, err := c.clipboard.ReadAll()
	if err != nil {
		return err
	}
	if sha256.Sum256([]byte(current)) != c.fingerprint {
		c.logger.Debug().Msg("clipboard changed since copy, leaving it")
		return nil
	}

	if err = c.clipboard.WriteAll(""); err != nil {
		return err
	}

	c.logger.Debug().Msg("clipboard cleared")
	return nil
}

// Run blocks until ctx is done and then clears a still pending password, so
// nothing outlives the session on the clipboard.
func (c *ClipboardCleaner) Run(ctx context.Context) {
	<-ctx.Done()

	if err := c.Flush(); err != nil {
		c.logger.Warn().Err(err).Msg("clear clipboard on shutdown")
	}
}
