package envfile

import (
	"io"
	"os"
)

// FileSystem abstracts file operations for testing.
type FileSystem interface {
	Open(name string) (io.ReadCloser, error)
}

// RealFileSystem implements FileSystem using the real file system.
type RealFileSystem struct{}

// Open opens the named file for reading.
func (r *RealFileSystem) Open(name string) (io.ReadCloser, error) {
	return os.Open(name) //nolint:gosec // intentional: env file path from user
}
