// Package manifest renders listing and plan results for other tools.
package manifest

import (
	"github.com/user/frameseq/pkg/orchestrator"
	"github.com/user/frameseq/pkg/pipeline"
)

// Manifest is the serializable view of a run.
type Manifest struct {
	Dir   string         `json:"dir" yaml:"dir"`
	Files []string       `json:"files" yaml:"files"`
	Jobs  []pipeline.Job `json:"jobs,omitempty" yaml:"jobs,omitempty"`
}

// FromResult builds a Manifest from an orchestrator result.
func FromResult(r orchestrator.RunResult) *Manifest {
	m := &Manifest{
		Dir:   r.List.Dir,
		Files: r.List.Names(),
	}
	if r.Plan != nil {
		m.Jobs = r.Plan.Jobs
	}
	return m
}
