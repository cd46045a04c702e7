// Package dirlist lists the regular files of a single directory in natural
// order.
package dirlist

import (
	"errors"
	"fmt"

	"github.com/user/frameseq/pkg/adapters/logger"
	"github.com/user/frameseq/pkg/adapters/osfilesystem"
	"github.com/user/frameseq/pkg/natural"
	"github.com/user/frameseq/pkg/ports"
)

// ErrDirectoryOpenFailed is returned when a path cannot be opened as a
// directory: it does not exist, is not a directory, or is not accessible.
var ErrDirectoryOpenFailed = errors.New("directory open failed")

// Status codes returned by ListStatus.
const (
	StatusOK     = 0
	StatusFailed = -1
)

// Lister enumerates directories through a ports.FileSystem.
// A Lister holds no mutable state and may be shared.
type Lister struct {
	fs     ports.FileSystem
	logger ports.Logger
}

// New creates a Lister.
func New(fs ports.FileSystem, log ports.Logger) *Lister {
	return &Lister{
		fs:     fs,
		logger: log.WithComponent("dirlist"),
	}
}

// List returns the names of the regular files directly inside dir, relative
// to dir and sorted by natural.Compare. Directories, symlinks and other
// special entries are left out. Duplicate names reported by the file system
// are kept.
//
// When dir cannot be opened the returned error wraps ErrDirectoryOpenFailed
// and no names are returned.
func (l *Lister) List(dir string) ([]string, error) {
	entries, err := l.fs.ReadDir(dir)
	if err != nil {
		l.logger.Error("opendir failed %s", dir)
		return nil, fmt.Errorf("%w: %s: %w", ErrDirectoryOpenFailed, dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Kind != ports.KindRegular {
			l.logger.Debug("Skipping %s (%s)", e.Name, e.Kind)
			continue
		}
		names = append(names, e.Name)
	}

	natural.Sort(names)
	return names, nil
}

// ListStatus is the status-code form of List: StatusOK and the sorted names
// on success, StatusFailed and an empty slice when dir cannot be opened.
func (l *Lister) ListStatus(dir string) (int, []string) {
	names, err := l.List(dir)
	if err != nil {
		return StatusFailed, []string{}
	}
	return StatusOK, names
}

// ListDirectory lists dir on the local file system without logging.
func ListDirectory(dir string) ([]string, error) {
	return New(osfilesystem.New(), logger.NewNoop()).List(dir)
}
