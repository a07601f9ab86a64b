package tail

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testInterval = 10 * time.Millisecond

func writeFile(t *testing.T, path string, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func appendFile(t *testing.T, path string, content string) {
	t.Helper()

	file, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	require.NoError(t, err)

	_, err = file.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, file.Close())
}

func recvChunk(t *testing.T, chunks <-chan []byte) string {
	t.Helper()

	select {
	case chunk := <-chunks:
		return string(chunk)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for chunk")
		return ""
	}
}

func TestSnapshotReadsWholeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.log")
	writeFile(t, path, "a\nb\n")

	reader := NewReader(path, testInterval)

	content, err := reader.Snapshot()
	require.NoError(t, err)

	assert.Equal(t, "a\nb\n", string(content))
	assert.Equal(t, int64(4), reader.Cursor())
}

func TestSnapshotMissingFile(t *testing.T) {
	reader := NewReader(filepath.Join(t.TempDir(), "missing.log"), testInterval)

	_, err := reader.Snapshot()
	assert.ErrorIs(t, err, ErrReadFailure)
}

func TestFollowEmitsInitialContentThenAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.log")
	writeFile(t, path, "a\nb\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := NewReader(path, testInterval)
	chunks := make(chan []byte, 16)
	done := make(chan error, 1)

	go func() {
		done <- reader.Follow(ctx, chunks)
	}()

	assert.Equal(t, "a\nb\n", recvChunk(t, chunks))

	appendFile(t, path, "c\n")
	assert.Equal(t, "c\n", recvChunk(t, chunks))

	appendFile(t, path, "d\ne\n")
	assert.Equal(t, "d\ne\n", recvChunk(t, chunks))

	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("follow did not stop on cancellation")
	}
}

func TestFollowTruncationResetsCursor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.log")
	writeFile(t, path, "first generation\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := NewReader(path, testInterval)
	chunks := make(chan []byte, 16)
	done := make(chan error, 1)

	go func() {
		done <- reader.Follow(ctx, chunks)
	}()

	assert.Equal(t, "first generation\n", recvChunk(t, chunks))

	writeFile(t, path, "D\n")
	assert.Equal(t, "D\n", recvChunk(t, chunks))

	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("follow did not stop on cancellation")
	}

	assert.Equal(t, int64(2), reader.Cursor())
}

func TestFollowFailsWhenFileVanishes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.log")
	writeFile(t, path, "a\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := NewReader(path, testInterval)
	chunks := make(chan []byte, 16)
	done := make(chan error, 1)

	go func() {
		done <- reader.Follow(ctx, chunks)
	}()

	assert.Equal(t, "a\n", recvChunk(t, chunks))

	require.NoError(t, os.Remove(path))

	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrReadFailure)
	case <-time.After(2 * time.Second):
		t.Fatal("follow did not fail after file removal")
	}
}

func TestLastLines(t *testing.T) {
	content := []byte("a\nb\nc\n")

	assert.Equal(t, "a\nb\nc\n", string(LastLines(content, 0)))
	assert.Equal(t, "a\nb\nc\n", string(LastLines(content, 3)))
	assert.Equal(t, "a\nb\nc\n", string(LastLines(content, 10)))
	assert.Equal(t, "b\nc\n", string(LastLines(content, 2)))
	assert.Equal(t, "c\n", string(LastLines(content, 1)))
	assert.Equal(t, "tail", string(LastLines([]byte("head\ntail"), 1)))
	assert.Equal(t, "", string(LastLines([]byte(""), 1)))
}
