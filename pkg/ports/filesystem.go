package ports

// EntryKind is the coarse type of a directory entry as reported by the
// directory read itself.
type EntryKind int

const (
	// KindRegular is a plain file.
	KindRegular EntryKind = iota
	// KindDir is a directory.
	KindDir
	// KindOther covers symlinks, devices, sockets, pipes and anything the
	// platform could not classify.
	KindOther
)

// String returns the string representation of the entry kind.
func (k EntryKind) String() string {
	switch k {
	case KindRegular:
		return "regular"
	case KindDir:
		return "dir"
	default:
		return "other"
	}
}

// DirEntry is a single name returned from reading a directory.
type DirEntry struct {
	// Name is relative to the directory that was read.
	Name string
	Kind EntryKind
}

// FileSystem abstracts the file system operations frameseq relies on.
type FileSystem interface {
	// ReadDir enumerates the entries of dir without recursing.
	// The directory handle is released before ReadDir returns.
	ReadDir(dir string) ([]DirEntry, error)

	// IsDir reports whether path denotes an existing directory.
	IsDir(path string) bool

	// IsReadable reports whether path can be opened for reading.
	// No handle is retained.
	IsReadable(path string) bool

	// ExecutableDir returns the directory of the running binary,
	// including a trailing path separator.
	ExecutableDir() (string, error)

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string) error

	// WriteFile writes data to a file, creating parent directories if necessary.
	WriteFile(path string, data []byte) error
}
