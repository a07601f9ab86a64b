package resolver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrInvalidPath = errors.New("path escapes the allowed root")
	ErrNotFound    = errors.New("no such file")
	ErrNotReadable = errors.New("file is not readable")
)

// Resolve turns a client-supplied relative path into an absolute path that
// is guaranteed to live under root and to name a readable regular file. The
// requested string is untrusted; the result is computed once per session and
// never re-derived from client input afterwards.
func Resolve(root string, requested string) (string, error) {
	rootAbs, err := filepath.Abs(root)

	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidPath, err)
	}

	rootCanon, err := filepath.EvalSymlinks(rootAbs)

	if err != nil {
		return "", fmt.Errorf("%w: root: %s", ErrNotFound, err)
	}

	joined := filepath.Join(rootCanon, requested)

	if !within(rootCanon, joined) {
		return "", ErrInvalidPath
	}

	resolved, err := filepath.EvalSymlinks(joined)

	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}

		return "", fmt.Errorf("%w: %s", ErrNotReadable, err)
	}

	// A symlink inside the root may still point outside of it.
	if !within(rootCanon, resolved) {
		return "", ErrInvalidPath
	}

	info, err := os.Stat(resolved)

	if err != nil {
		return "", ErrNotFound
	}

	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("%w: not a regular file", ErrNotReadable)
	}

	file, err := os.Open(resolved)

	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrNotReadable, err)
	}

	file.Close()

	return resolved, nil
}

func within(root string, path string) bool {
	rel, err := filepath.Rel(root, path)

	if err != nil {
		return false
	}

	return rel != ".." && !strings.HasPrefix(rel, ".."+string(os.PathSeparator))
}
