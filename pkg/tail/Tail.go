package tail

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

// ErrReadFailure is returned when the followed file vanishes or turns
// unreadable mid-session. Recovery policy is to fail the session, following
// a renamed file is out of scope.
var ErrReadFailure = errors.New("read failure")

func NewReader(path string, interval time.Duration) *Reader {
	return &Reader{
		path:     path,
		interval: interval,
	}
}

func (r *Reader) Cursor() int64 {
	return r.cursor
}

// Snapshot reads the whole current file content and advances the cursor past
// it, so a subsequent Follow only emits appended bytes.
func (r *Reader) Snapshot() ([]byte, error) {
	content, err := os.ReadFile(r.path)

	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrReadFailure, err)
	}

	r.cursor = int64(len(content))
	r.primed = true

	return content, nil
}

// Follow emits the current file content once, then every appended byte range
// in file order, until the context is cancelled. A shrinking file is treated
// as truncated: the cursor resets and the new content is emitted in full.
func (r *Reader) Follow(ctx context.Context, chunks chan<- []byte) error {
	if !r.primed {
		content, err := r.Snapshot()

		if err != nil {
			return err
		}

		if err = emit(ctx, chunks, content); err != nil {
			return err
		}
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			chunk, err := r.poll()

			if err != nil {
				return err
			}

			if chunk == nil {
				continue
			}

			if err = emit(ctx, chunks, chunk); err != nil {
				return err
			}
		}
	}
}

// poll checks the file size exactly once per tick; a shrink followed by a
// grow within the same tick is indistinguishable from plain growth and is
// treated as such.
func (r *Reader) poll() ([]byte, error) {
	info, err := os.Stat(r.path)

	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrReadFailure, err)
	}

	size := info.Size()

	if size < r.cursor {
		r.cursor = 0
	}

	if size == r.cursor {
		return nil, nil
	}

	file, err := os.Open(r.path)

	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrReadFailure, err)
	}

	defer file.Close()

	if _, err = file.Seek(r.cursor, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrReadFailure, err)
	}

	chunk := make([]byte, size-r.cursor)
	n, err := io.ReadFull(file, chunk)

	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s", ErrReadFailure, err)
	}

	r.cursor += int64(n)

	return chunk[:n], nil
}

func emit(ctx context.Context, chunks chan<- []byte, chunk []byte) error {
	select {
	case chunks <- chunk:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// LastLines returns the trailing n lines of content, or all of it when
// n <= 0. A trailing newline does not start a new line.
func LastLines(content []byte, n int) []byte {
	if n <= 0 || len(content) == 0 {
		return content
	}

	end := len(content)

	if content[end-1] == '\n' {
		end--
	}

	seen := 0

	for i := end - 1; i >= 0; i-- {
		if content[i] == '\n' {
			seen++

			if seen == n {
				return content[i+1:]
			}
		}
	}

	return content
}
