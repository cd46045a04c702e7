package pipeline

// =============================================================================
// List Stage Types
// =============================================================================

// ListInput selects the directory to enumerate.
type ListInput struct {
	Dir string
	// Extensions is a case-insensitive allow-list without dots.
	// Empty keeps every regular file.
	Extensions []string
}

// Frame is one input file in processing order.
type Frame struct {
	Index int    `json:"index" yaml:"index"`
	Name  string `json:"name" yaml:"name"`
	Path  string `json:"path" yaml:"path"`
	Stem  string `json:"stem" yaml:"stem"`
	Ext   string `json:"ext" yaml:"ext"`
}

// ListResult holds the frames of one directory in natural order.
type ListResult struct {
	// Dir is the directory actually read, after executable-dir fallback.
	Dir     string  `json:"dir" yaml:"dir"`
	Frames  []Frame `json:"frames" yaml:"frames"`
	Skipped int     `json:"skipped" yaml:"skipped"`
}

// Names returns the frame names in order.
func (r ListResult) Names() []string {
	names := make([]string, len(r.Frames))
	for i, f := range r.Frames {
		names[i] = f.Name
	}
	return names
}

// =============================================================================
// Plan Stage Types
// =============================================================================

// PlanInput describes how output names are derived from frames.
type PlanInput struct {
	Frames    []Frame
	OutputDir string
	// Format is the output extension. Empty keeps each frame's extension.
	Format string
	// Sequence is an optional fmt verb for the frame index, e.g. "%08d".
	// When set it replaces the stem.
	Sequence string
}

// Job maps one input file to its output file.
type Job struct {
	Index  int    `json:"index" yaml:"index"`
	Input  string `json:"input" yaml:"input"`
	Output string `json:"output" yaml:"output"`
}

// PlanResult lists the jobs in frame order.
type PlanResult struct {
	Jobs []Job `json:"jobs" yaml:"jobs"`
}
