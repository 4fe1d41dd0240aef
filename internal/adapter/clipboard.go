package adapter

import (
	"fmt"
	"sync"

	"github.com/atotto/clipboard"
)

// systemClipboard is the [Clipboard] of the desktop session. On Linux it
// needs xclip, xsel or wl-clipboard on PATH.
type systemClipboard struct{}

// NewSystemClipboard returns the platform [Clipboard].
func NewSystemClipboard() Clipboard {
	return &systemClipboard{}
}

func (c *systemClipboard) ReadAll() (string, error) {
	if clipboard.Unsupported {
		return "", ErrClipboardUnsupported
	}

	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("%w: read: %w", ErrClipboardAccess, err)
	}
	return text, nil
}

func (c *systemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnsupported
	}

	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("%w: write: %w", ErrClipboardAccess, err)
	}
	return nil
}

// memoryClipboard keeps the clipboard text in process.
type memoryClipboard struct {
	mu   sync.Mutex
	text string
}

// NewMemoryClipboard returns an in-process [Clipboard].
func NewMemoryClipboard() Clipboard {
	return &memoryClipboard{}
}

func (c *memoryClipboard) ReadAll() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text, nil
}

func (c *memoryClipboard) WriteAll(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.text = text
	return nil
}
