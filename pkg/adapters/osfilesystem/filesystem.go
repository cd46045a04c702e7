// Package osfilesystem provides a filesystem implementation using the os package.
package osfilesystem

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/user/frameseq/pkg/ports"
)

// FileSystem implements ports.FileSystem using the os package.
type FileSystem struct {
	// executable is swapped in tests.
	executable func() (string, error)
}

// New creates a new FileSystem.
func New() *FileSystem {
	return &FileSystem{executable: os.Executable}
}

// ReadDir enumerates dir. Entry kinds come from the directory read itself;
// platforms that do not report a type fall back to an lstat inside the os
// package, so symlinks are never followed.
func (fsys *FileSystem) ReadDir(dir string) ([]ports.DirEntry, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dirents, err := f.ReadDir(-1)
	if err != nil {
		return nil, err
	}

	entries := make([]ports.DirEntry, 0, len(dirents))
	for _, d := range dirents {
		entries = append(entries, ports.DirEntry{
			Name: d.Name(),
			Kind: kindOf(d.Type()),
		})
	}
	return entries, nil
}

// IsDir reports whether path is an existing directory. Symlinks to
// directories count.
func (fsys *FileSystem) IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsReadable opens path for reading and closes it straight away.
func (fsys *FileSystem) IsReadable(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	f.Close()
	return true
}

// ExecutableDir returns the directory holding the running binary with a
// trailing separator, ready to be prefixed to a relative path.
func (fsys *FileSystem) ExecutableDir() (string, error) {
	exe, err := fsys.executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe) + string(os.PathSeparator), nil
}

// MkdirAll creates a directory and all parent directories.
func (fsys *FileSystem) MkdirAll(path string) error {
	return os.MkdirAll(path, 0755)
}

// WriteFile writes data to a file, creating it if necessary.
func (fsys *FileSystem) WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}

func kindOf(mode fs.FileMode) ports.EntryKind {
	switch {
	case mode.IsRegular():
		return ports.KindRegular
	case mode.IsDir():
		return ports.KindDir
	default:
		return ports.KindOther
	}
}

// Ensure FileSystem implements ports.FileSystem
var _ ports.FileSystem = (*FileSystem)(nil)
