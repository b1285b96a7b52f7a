package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer is written by the watch goroutine and read by the test.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestWatchDirs(t *testing.T) {
	dirs := watchDirs([]string{"/b/x.mid", "/a/y.mid", "/b/z.mid", "rel.mid"})
	assert.Equal(t, []string{".", "/a", "/b"}, dirs)
}

func TestWatchFiles(t *testing.T) {
	dir := t.TempDir()
	watched := filepath.Join(dir, "song.mid")
	other := filepath.Join(dir, "other.mid")
	require.NoError(t, os.WriteFile(watched, []byte("a"), 0o644))

	renders := make(chan struct{}, 100)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- watchFiles(ctx, []string{watched}, 20*time.Millisecond, func() {
			renders <- struct{}{}
		})
	}()

	// the watcher may not be registered yet, so keep touching the file
	require.Eventually(t, func() bool {
		require.NoError(t, os.WriteFile(watched, []byte("b"), 0o644))
		select {
		case <-renders:
			return true
		case <-time.After(100 * time.Millisecond):
			return false
		}
	}, 5*time.Second, 10*time.Millisecond)

	time.Sleep(200 * time.Millisecond)
	for len(renders) > 0 {
		<-renders
	}

	require.NoError(t, os.WriteFile(other, []byte("c"), 0o644))
	time.Sleep(200 * time.Millisecond)
	assert.Empty(t, renders, "unwatched files must not render")

	cancel()
	require.NoError(t, <-done)
}

func TestWatchFilesDropsPendingRender(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song.mid")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0o644))

	renders := make(chan struct{}, 10)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- watchFiles(ctx, []string{path}, time.Second, func() {
			renders <- struct{}{}
		})
	}()

	time.Sleep(200 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("b"), 0o644))
	time.Sleep(100 * time.Millisecond)
	cancel()
	require.NoError(t, <-done)

	time.Sleep(1500 * time.Millisecond)
	assert.Empty(t, renders)
}

func TestWatchCommandRendersAgain(t *testing.T) {
	path := writeMidi(t, "song.mid", melody...)

	var out syncBuffer
	prepareCmd(t, "", &out, "watch", "-p", path, "--delay", "20ms")
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- rootCmd.ExecuteContext(ctx)
	}()
	defer func() {
		cancel()
		require.NoError(t, <-done)
	}()

	require.Eventually(t, func() bool {
		return out.String() == "G.I.K\n"
	}, 5*time.Second, 10*time.Millisecond)

	data := midiBytes(t, beat...)
	require.Eventually(t, func() bool {
		require.NoError(t, os.WriteFile(path, data, 0o644))
		time.Sleep(50 * time.Millisecond)
		return strings.Contains(out.String(), ".G\n")
	}, 5*time.Second, 10*time.Millisecond)
	assert.True(t, strings.HasPrefix(out.String(), "G.I.K\n"))
}
