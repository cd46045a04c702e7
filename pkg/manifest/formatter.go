package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned by FormatterFor for unsupported names.
var ErrUnknownFormat = errors.New("unknown manifest format")

// Formatter defines the interface for formatting a Manifest.
type Formatter interface {
	Format(m *Manifest) (string, error)
}

// FormatFunc is a function adapter for the Formatter interface.
type FormatFunc func(m *Manifest) (string, error)

// Format implements the Formatter interface.
func (f FormatFunc) Format(m *Manifest) (string, error) {
	return f(m)
}

var formatters = map[string]Formatter{
	"text": FormatFunc(formatText),
	"tsv":  FormatFunc(formatText),
	"yaml": FormatFunc(formatYAML),
	"json": FormatFunc(formatJSON),
}

// Names returns the supported format names.
func Names() []string {
	names := make([]string, 0, len(formatters))
	for name := range formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FormatterFor returns the formatter registered under name.
func FormatterFor(name string) (Formatter, error) {
	f, ok := formatters[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownFormat, name, strings.Join(Names(), ", "))
	}
	return f, nil
}

// formatText writes one file name per line, or "input<TAB>output" per line
// when the manifest carries jobs.
func formatText(m *Manifest) (string, error) {
	var sb strings.Builder
	if len(m.Jobs) > 0 {
		for _, job := range m.Jobs {
			sb.WriteString(job.Input)
			sb.WriteByte('\t')
			sb.WriteString(job.Output)
			sb.WriteByte('\n')
		}
		return sb.String(), nil
	}
	for _, name := range m.Files {
		sb.WriteString(name)
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

func formatYAML(m *Manifest) (string, error) {
	data, err := yaml.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("marshal yaml: %w", err)
	}
	return string(data), nil
}

func formatJSON(m *Manifest) (string, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal json: %w", err)
	}
	return string(data) + "\n", nil
}
