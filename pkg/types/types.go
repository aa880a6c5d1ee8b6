// Package types holds the small shared contracts used across wsinit packages.
package types

import "io/fs"

// FS abstracts the filesystem operations wsinit performs. Production code
// uses the OS-backed implementation in pkg/filesystem; tests use the
// in-memory implementation in pkg/testutil.
type FS interface {
	// Stat returns file info for the named file
	Stat(name string) (fs.FileInfo, error)

	// ReadFile reads the named file and returns its contents
	ReadFile(name string) ([]byte, error)

	// WriteFile writes data to the named file, truncating any existing content
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// MkdirAll creates a directory path along with any necessary parents
	MkdirAll(path string, perm fs.FileMode) error
}
