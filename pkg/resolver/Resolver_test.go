package resolver

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestResolve(t *testing.T) {
	root := t.TempDir()

	rootCanon, err := filepath.EvalSymlinks(root)
	if err != nil {
		t.Fatal(err)
	}

	if err = os.WriteFile(filepath.Join(rootCanon, "demo.log"), []byte("a\nb\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err = os.MkdirAll(filepath.Join(rootCanon, "nested"), 0755); err != nil {
		t.Fatal(err)
	}

	if err = os.WriteFile(filepath.Join(rootCanon, "nested", "app.log"), []byte("x\n"), 0644); err != nil {
		t.Fatal(err)
	}

	outside := t.TempDir()

	if err = os.WriteFile(filepath.Join(outside, "secret.log"), []byte("s\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err = os.Symlink(filepath.Join(outside, "secret.log"), filepath.Join(rootCanon, "escape.log")); err != nil {
		t.Fatal(err)
	}

	type Wanted struct {
		resolved string
		error    error
	}

	type Parameters struct {
		requested string
	}

	testCases := []struct {
		name       string
		wanted     Wanted
		parameters Parameters
	}{
		{
			"Valid path",
			Wanted{
				resolved: filepath.Join(rootCanon, "demo.log"),
				error:    nil,
			},
			Parameters{
				requested: "demo.log",
			},
		},
		{
			"Valid nested path",
			Wanted{
				resolved: filepath.Join(rootCanon, "nested", "app.log"),
				error:    nil,
			},
			Parameters{
				requested: "nested/app.log",
			},
		},
		{
			"Traversal outside root",
			Wanted{
				resolved: "",
				error:    ErrInvalidPath,
			},
			Parameters{
				requested: "../../etc/passwd",
			},
		},
		{
			"Traversal to missing file outside root",
			Wanted{
				resolved: "",
				error:    ErrInvalidPath,
			},
			Parameters{
				requested: "../does-not-exist.log",
			},
		},
		{
			"Missing file inside root",
			Wanted{
				resolved: "",
				error:    ErrNotFound,
			},
			Parameters{
				requested: "missing.log",
			},
		},
		{
			"Directory instead of file",
			Wanted{
				resolved: "",
				error:    ErrNotReadable,
			},
			Parameters{
				requested: "nested",
			},
		},
		{
			"Symlink escaping the root",
			Wanted{
				resolved: "",
				error:    ErrInvalidPath,
			},
			Parameters{
				requested: "escape.log",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resolved, err := Resolve(rootCanon, tc.parameters.requested)

			assert.Equal(t, tc.wanted.resolved, resolved)

			if tc.wanted.error == nil {
				assert.Equal(t, nil, err)
			} else {
				assert.Equal(t, true, errors.Is(err, tc.wanted.error))
			}
		})
	}
}
