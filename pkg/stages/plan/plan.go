// Package plan implements the stage that assigns an output file to every
// frame.
package plan

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/user/frameseq/pkg/pipeline"
	"github.com/user/frameseq/pkg/ports"
)

var (
	// ErrNoFrames is returned when there is nothing to plan.
	ErrNoFrames = errors.New("no frames to plan")
	// ErrDuplicateOutput is returned when two frames map to the same output,
	// e.g. "a.png" and "a.jpg" converted to the same format.
	ErrDuplicateOutput = errors.New("duplicate output name")
	// ErrBadSequence is returned for a sequence pattern without exactly one
	// integer verb.
	ErrBadSequence = errors.New("sequence pattern needs one integer verb")
)

// Stage derives output names from frame names.
type Stage struct {
	logger ports.Logger
}

// NewStage creates a new plan stage.
func NewStage(log ports.Logger) *Stage {
	return &Stage{
		logger: log.WithComponent("plan"),
	}
}

// Execute builds one job per frame, in frame order. The output name is the
// frame stem, or the formatted index when a sequence is set, followed by the
// output format (or the frame's own extension when no format is given).
func (s *Stage) Execute(ctx context.Context, input pipeline.PlanInput) (pipeline.PlanResult, error) {
	result := pipeline.PlanResult{}

	if len(input.Frames) == 0 {
		return result, ErrNoFrames
	}
	if input.Sequence != "" {
		if err := checkSequence(input.Sequence); err != nil {
			return result, err
		}
	}

	format := strings.TrimPrefix(input.Format, ".")
	seen := make(map[string]string, len(input.Frames))
	result.Jobs = make([]pipeline.Job, 0, len(input.Frames))

	for _, frame := range input.Frames {
		select {
		case <-ctx.Done():
			return pipeline.PlanResult{}, ctx.Err()
		default:
		}

		stem := frame.Stem
		if input.Sequence != "" {
			stem = fmt.Sprintf(input.Sequence, frame.Index)
		}
		ext := format
		if ext == "" {
			ext = frame.Ext
		}
		name := stem
		if ext != "" {
			name = stem + "." + ext
		}

		if prev, ok := seen[name]; ok {
			return pipeline.PlanResult{}, fmt.Errorf("%w: %s and %s both map to %s", ErrDuplicateOutput, prev, frame.Name, name)
		}
		seen[name] = frame.Name

		result.Jobs = append(result.Jobs, pipeline.Job{
			Index:  frame.Index,
			Input:  frame.Path,
			Output: filepath.Join(input.OutputDir, name),
		})
		s.logger.Debug("Planned %s -> %s", frame.Name, name)
	}

	return result, nil
}

func checkSequence(pattern string) error {
	verbs := 0
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '%' {
			continue
		}
		i++
		if i < len(pattern) && pattern[i] == '%' {
			continue
		}
		for i < len(pattern) && strings.IndexByte("0123456789+- #", pattern[i]) >= 0 {
			i++
		}
		if i >= len(pattern) || strings.IndexByte("dxXob", pattern[i]) < 0 {
			return fmt.Errorf("%w: %q", ErrBadSequence, pattern)
		}
		verbs++
	}
	if verbs != 1 {
		return fmt.Errorf("%w: %q", ErrBadSequence, pattern)
	}
	return nil
}
