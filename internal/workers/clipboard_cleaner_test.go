package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-master-password/internal/adapter"
	"github.com/MKhiriev/go-master-password/internal/logger"
	"github.com/MKhiriev/go-master-password/internal/mock"
)

func TestClipboardCleaner_CopyThenFlush(t *testing.T) {
	cb := adapter.NewMemoryClipboard()
	cleaner := NewClipboardCleaner(cb, time.Hour, logger.Nop())

	require.NoError(t, cleaner.Copy("Jejr5[RepuSosp"))

	text, _ := cb.ReadAll()
	assert.Equal(t, "Jejr5[RepuSosp", text)

	require.NoError(t, cleaner.Flush())
	text, _ = cb.ReadAll()
	assert.Empty(t, text)
}

func TestClipboardCleaner_ClearsAfterTimeout(t *testing.T) {
	cb := adapter.NewMemoryClipboard()
	cleaner := NewClipboardCleaner(cb, 20*time.Millisecond, logger.Nop())

	require.NoError(t, cleaner.Copy("secret"))

	assert.Eventually(t, func() bool {
		text, _ := cb.ReadAll()
		return text == ""
	}, time.Second, 5*time.Millisecond)
}

func TestClipboardCleaner_LeavesForeignText(t *testing.T) {
	cb := adapter.NewMemoryClipboard()
	cleaner := NewClipboardCleaner(cb, time.Hour, logger.Nop())

	require.NoError(t, cleaner.Copy("secret"))
	require.NoError(t, cb.WriteAll("something the user copied"))

	require.NoError(t, cleaner.Flush())

	text, _ := cb.ReadAll()
	assert.Equal(t, "something the user copied", text)
}

func TestClipboardCleaner_StaleTimerKeepsNewerCopy(t *testing.T) {
	cb := adapter.NewMemoryClipboard()
	cleaner := NewClipboardCleaner(cb, time.Hour, logger.Nop())

	require.NoError(t, cleaner.Copy("first"))
	firstGen := cleaner.generation
	require.NoError(t, cleaner.Copy("second"))

	// The timer of the first copy fired just before the second copy.
	require.NoError(t, cleaner.expire(firstGen))

	text, _ := cb.ReadAll()
	assert.Equal(t, "second", text)

	require.NoError(t, cleaner.expire(cleaner.generation))
	text, _ = cb.ReadAll()
	assert.Empty(t, text)
}

func TestClipboardCleaner_DisabledTimeoutKeepsText(t *testing.T) {
	cb := adapter.NewMemoryClipboard()
	cleaner := NewClipboardCleaner(cb, -1, logger.Nop())

	require.NoError(t, cleaner.Copy("secret"))
	time.Sleep(20 * time.Millisecond)

	text, _ := cb.ReadAll()
	assert.Equal(t, "secret", text)
}

func TestClipboardCleaner_FlushWithoutCopyIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	cb := mock.NewMockClipboard(ctrl)

	cleaner := NewClipboardCleaner(cb, time.Hour, logger.Nop())
	require.NoError(t, cleaner.Flush())
}

func TestClipboardCleaner_CopyError(t *testing.T) {
	ctrl := gomock.NewController(t)
	cb := mock.NewMockClipboard(ctrl)
	boom := errors.New("no display")

	cb.EXPECT().WriteAll("secret").Return(boom)

	cleaner := NewClipboardCleaner(cb, time.Hour, logger.Nop())
	assert.ErrorIs(t, cleaner.Copy("secret"), boom)
	require.NoError(t, cleaner.Flush())
}

func TestClipboardCleaner_ReadErrorIsReturned(t *testing.T) {
	ctrl := gomock.NewController(t)
	cb := mock.NewMockClipboard(ctrl)
	boom := errors.New("read failed")

	cb.EXPECT().WriteAll("secret").Return(nil)
	cb.EXPECT().ReadAll().Return("", boom)

	cleaner := NewClipboardCleaner(cb, time.Hour, logger.Nop())
	require.NoError(t, cleaner.Copy("secret"))
	assert.ErrorIs(t, cleaner.Flush(), boom)
}

func TestClipboardCleaner_RunFlushesOnCancel(t *testing.T) {
	cb := adapter.NewMemoryClipboard()
	cleaner := NewClipboardCleaner(cb, time.Hour, logger.Nop())
	require.NoError(t, cleaner.Copy("secret"))

	ctx, cancel := context.WithCancel(context.Background())
	ws := NewWorkers(cleaner)
	ws.Run(ctx)

	cancel()
	ws.Wait()

	text, _ := cb.ReadAll()
	assert.Empty(t, text)
}
