package adapter

import (
	"errors"
	"sync"
	"testing"

	"github.com/atotto/clipboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryClipboard_RoundTrip(t *testing.T) {
	c := NewMemoryClipboard()

	text, err := c.ReadAll()
	require.NoError(t, err)
	assert.Empty(t, text)

	require.NoError(t, c.WriteAll("Jejr5[RepuSosp"))
	text, err = c.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "Jejr5[RepuSosp", text)
}

func TestMemoryClipboard_Concurrent(t *testing.T) {
	c := NewMemoryClipboard()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = c.WriteAll(string(rune('a' + i)))
			_, _ = c.ReadAll()
		}()
	}
	wg.Wait()

	text, err := c.ReadAll()
	require.NoError(t, err)
	assert.Len(t, text, 1)
}

func TestSystemClipboard_Unsupported(t *testing.T) {
	if !clipboard.Unsupported {
		t.Skip("a clipboard tool is available")
	}

	c := NewSystemClipboard()
	_, err := c.ReadAll()
	assert.True(t, errors.Is(err, ErrClipboardUnsupported))
	assert.ErrorIs(t, c.WriteAll("x"), ErrClipboardUnsupported)
}
