package filesystem

import (
	"io"
	"io/fs"
	"time"
)

// FileSystem provides an abstraction over file operations for testability
type FileSystem interface {
	// Metadata
	Stat(path string) (fs.FileInfo, error)
	Lstat(path string) (fs.FileInfo, error)
	Exists(path string) bool
	Getwd() (string, error)

	// Directory operations
	ReadDir(path string) ([]fs.DirEntry, error)
	Mkdir(path string, perm fs.FileMode) error

	// Entry operations
	Rename(oldPath, newPath string) error
	Remove(path string) error
	Chtimes(path string, atime, mtime time.Time) error

	// Content streams
	Open(path string) (io.ReadCloser, error)
	Create(path string) (io.WriteCloser, error)
	Append(path string) (io.WriteCloser, error)
}
