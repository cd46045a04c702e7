package manifest

import (
	"fmt"
	"io"

	"github.com/user/frameseq/pkg/ports"
)

// Writer writes formatted manifests to files or streams.
type Writer struct {
	formatter Formatter
	fs        ports.FileSystem
}

// NewWriter creates a new Writer with the given Formatter.
func NewWriter(formatter Formatter, fs ports.FileSystem) *Writer {
	return &Writer{
		formatter: formatter,
		fs:        fs,
	}
}

// Write formats the manifest and writes it to path, creating parent
// directories as needed.
func (w *Writer) Write(path string, m *Manifest) error {
	content, err := w.formatter.Format(m)
	if err != nil {
		return err
	}
	if err := w.fs.WriteFile(path, []byte(content)); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// Print formats the manifest to out.
func (w *Writer) Print(out io.Writer, m *Manifest) error {
	content, err := w.formatter.Format(m)
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, content)
	return err
}
