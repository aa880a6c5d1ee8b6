// Package filesystem provides the afero-backed implementations of types.FS.
package filesystem

import (
	"io/fs"

	"github.com/arthur-debert/wsinit/pkg/types"
	"github.com/spf13/afero"
)

// aferoFS implements types.FS using afero
type aferoFS struct {
	fs afero.Fs
}

// NewOS returns a types.FS backed by the real filesystem
func NewOS() types.FS {
	return &aferoFS{fs: afero.NewOsFs()}
}

// NewMemory returns an in-memory types.FS, used by tests
func NewMemory() types.FS {
	return &aferoFS{fs: afero.NewMemMapFs()}
}

func (a *aferoFS) Stat(name string) (fs.FileInfo, error) {
	return a.fs.Stat(name)
}

func (a *aferoFS) ReadFile(name string) ([]byte, error) {
	info, err := a.fs.Stat(name)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	return afero.ReadFile(a.fs, name)
}

func (a *aferoFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return afero.WriteFile(a.fs, name, data, perm)
}

func (a *aferoFS) MkdirAll(path string, perm fs.FileMode) error {
	return a.fs.MkdirAll(path, perm)
}
