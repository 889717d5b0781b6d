package mxbmm

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shohamc1/mxbmm/pkg/config"
	"github.com/shohamc1/mxbmm/pkg/filesystem"
	"github.com/shohamc1/mxbmm/pkg/output"
	"github.com/shohamc1/mxbmm/pkg/session"
)

// lockedBuffer is written by the watch loop and read by the test.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func startWatchLoop(t *testing.T, root string) (*lockedBuffer, func()) {
	t.Helper()
	cfg := config.Default()
	cfg.Mods.Root = root
	cfg.Watch.Debounce = 20 * time.Millisecond

	s := session.New(filesystem.NewOS(), cfg)
	buf := &lockedBuffer{}
	r, err := output.NewRenderer(buf, config.FormatText)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- watchLoop(ctx, s, r, 20*time.Millisecond, io.Discard)
	}()

	return buf, func() {
		cancel()
		assert.NoError(t, <-done)
		assert.NoError(t, s.Close())
	}
}

func TestWatchLoopRendersChanges(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "tracks"), 0755))

	buf, stop := startWatchLoop(t, root)
	defer stop()

	require.Eventually(t, func() bool {
		return strings.Contains(buf.String(), "Installed Mods")
	}, 5*time.Second, 10*time.Millisecond)
	assert.NotContains(t, buf.String(), "Fresh")

	require.NoError(t, os.MkdirAll(filepath.Join(root, "tracks", "Fresh"), 0755))

	require.Eventually(t, func() bool {
		return strings.Contains(buf.String(), "Fresh/")
	}, 5*time.Second, 10*time.Millisecond)
}

func TestWatchLoopPicksUpLateRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "mods")

	buf, stop := startWatchLoop(t, root)
	defer stop()

	require.Eventually(t, func() bool {
		return strings.Contains(buf.String(), "Installed Mods")
	}, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, os.MkdirAll(filepath.Join(root, "tracks", "Late"), 0755))

	require.Eventually(t, func() bool {
		return strings.Contains(buf.String(), "Late/")
	}, 5*time.Second, 10*time.Millisecond)
}
