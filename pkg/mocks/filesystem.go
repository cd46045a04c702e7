// Package mocks provides mock implementations for testing.
package mocks

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/user/frameseq/pkg/ports"
)

// FileSystem is an in-memory implementation of ports.FileSystem.
// Entries are returned in insertion order, which lets tests feed unsorted
// listings to the code under test.
type FileSystem struct {
	mu      sync.RWMutex
	dirs    map[string][]ports.DirEntry
	files   map[string][]byte
	exeDir  string
	exeErr  error
	readDir map[string]int

	ReadDirFunc       func(dir string) ([]ports.DirEntry, error)
	ExecutableDirFunc func() (string, error)
	WriteFileFunc     func(path string, data []byte) error
}

// NewFileSystem creates a new mock FileSystem whose executable directory is
// "/opt/frameseq/".
func NewFileSystem() *FileSystem {
	return &FileSystem{
		dirs:    make(map[string][]ports.DirEntry),
		files:   make(map[string][]byte),
		exeDir:  "/opt/frameseq/",
		readDir: make(map[string]int),
	}
}

// AddDir registers an empty directory.
func (m *FileSystem) AddDir(dir string) *FileSystem {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.dirs[dir]; !ok {
		m.dirs[dir] = nil
	}
	return m
}

// AddEntry adds an entry of the given kind under dir, creating dir if needed.
// Regular entries also become readable files and directory entries become
// listable directories.
func (m *FileSystem) AddEntry(dir, name string, kind ports.EntryKind) *FileSystem {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dirs[dir] = append(m.dirs[dir], ports.DirEntry{Name: name, Kind: kind})
	full := filepath.Join(dir, name)
	switch kind {
	case ports.KindRegular:
		m.files[full] = nil
	case ports.KindDir:
		if _, ok := m.dirs[full]; !ok {
			m.dirs[full] = nil
		}
	}
	return m
}

// AddFiles adds regular files under dir.
func (m *FileSystem) AddFiles(dir string, names ...string) *FileSystem {
	for _, name := range names {
		m.AddEntry(dir, name, ports.KindRegular)
	}
	return m
}

// SetExecutableDir sets the value returned by ExecutableDir.
func (m *FileSystem) SetExecutableDir(dir string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.exeDir = dir
	m.exeErr = err
}

func (m *FileSystem) ReadDir(dir string) ([]ports.DirEntry, error) {
	if m.ReadDirFunc != nil {
		return m.ReadDirFunc(dir)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	entries, ok := m.dirs[dir]
	if !ok {
		return nil, fmt.Errorf("open %s: no such file or directory", dir)
	}
	m.readDir[dir]++
	return append([]ports.DirEntry(nil), entries...), nil
}

func (m *FileSystem) IsDir(path string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.dirs[path]
	return ok
}

func (m *FileSystem) IsReadable(path string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.files[path]
	return ok
}

func (m *FileSystem) ExecutableDir() (string, error) {
	if m.ExecutableDirFunc != nil {
		return m.ExecutableDirFunc()
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.exeDir, m.exeErr
}

func (m *FileSystem) MkdirAll(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.dirs[path]; !ok {
		m.dirs[path] = nil
	}
	return nil
}

func (m *FileSystem) WriteFile(path string, data []byte) error {
	if m.WriteFileFunc != nil {
		return m.WriteFileFunc(path, data)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path] = data
	return nil
}

// GetFile returns the contents of a file (for test verification).
func (m *FileSystem) GetFile(path string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.files[path]
	return data, ok
}

// ReadDirCalls returns how many successful ReadDir calls hit dir.
func (m *FileSystem) ReadDirCalls(dir string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.readDir[dir]
}

var _ ports.FileSystem = (*FileSystem)(nil)
