// Package resolve falls back to the program's install directory for
// resource paths that are not usable as given.
package resolve

import (
	"github.com/user/frameseq/pkg/ports"
)

// Resolver resolves paths against the running binary's directory.
type Resolver struct {
	fs     ports.FileSystem
	logger ports.Logger
}

// New creates a Resolver.
func New(fs ports.FileSystem, log ports.Logger) *Resolver {
	return &Resolver{
		fs:     fs,
		logger: log.WithComponent("resolve"),
	}
}

// ExecutableDir returns the directory of the running binary with a trailing
// separator.
func (r *Resolver) ExecutableDir() (string, error) {
	return r.fs.ExecutableDir()
}

// SanitizeFile returns path when it can be opened for reading, otherwise
// path prefixed with the executable directory. The fallback is not checked
// for readability.
func (r *Resolver) SanitizeFile(path string) string {
	if r.fs.IsReadable(path) {
		return path
	}
	return r.underExecutable(path)
}

// SanitizeDir returns path when it is an existing directory, otherwise path
// prefixed with the executable directory.
func (r *Resolver) SanitizeDir(path string) string {
	if r.fs.IsDir(path) {
		return path
	}
	return r.underExecutable(path)
}

func (r *Resolver) underExecutable(path string) string {
	dir, err := r.fs.ExecutableDir()
	if err != nil {
		r.logger.Warn("Executable directory unavailable, using %s as given: %v", path, err)
		return path
	}
	resolved := dir + path
	r.logger.Debug("Resolved %s to %s", path, resolved)
	return resolved
}
