// Package pathsplit splits file names into stem and extension.
//
// The split happens at the last '.' of the whole string. Separators are not
// special-cased, so callers should pass base names when directories may
// contain dots.
package pathsplit

import "strings"

// Stem returns path without its extension. A path with no dot is returned
// unchanged.
func Stem(path string) string {
	dot := strings.LastIndexByte(path, '.')
	if dot < 0 {
		return path
	}
	return path[:dot]
}

// Ext returns the extension of path without the leading dot, or "" when path
// has no dot.
func Ext(path string) string {
	dot := strings.LastIndexByte(path, '.')
	if dot < 0 {
		return ""
	}
	return path[dot+1:]
}

// WithExt replaces the extension of path with ext.
func WithExt(path, ext string) string {
	return Stem(path) + "." + ext
}
