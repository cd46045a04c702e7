// Package list implements the stage that turns a directory into an ordered
// frame sequence.
package list

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/user/frameseq/pkg/dirlist"
	"github.com/user/frameseq/pkg/pathsplit"
	"github.com/user/frameseq/pkg/pipeline"
	"github.com/user/frameseq/pkg/ports"
	"github.com/user/frameseq/pkg/resolve"
)

// Stage lists a directory's regular files in natural order.
type Stage struct {
	lister   *dirlist.Lister
	resolver *resolve.Resolver
	logger   ports.Logger
}

// NewStage creates a new list stage.
func NewStage(fs ports.FileSystem, log ports.Logger) *Stage {
	return &Stage{
		lister:   dirlist.New(fs, log),
		resolver: resolve.New(fs, log),
		logger:   log.WithComponent("list"),
	}
}

// Execute resolves input.Dir, lists it and keeps the files whose extension
// is allowed. Frames are numbered from zero after filtering.
func (s *Stage) Execute(ctx context.Context, input pipeline.ListInput) (pipeline.ListResult, error) {
	if err := ctx.Err(); err != nil {
		return pipeline.ListResult{}, err
	}

	dir := s.resolver.SanitizeDir(input.Dir)
	names, err := s.lister.List(dir)
	if err != nil {
		return pipeline.ListResult{}, fmt.Errorf("list %s: %w", input.Dir, err)
	}

	allowed := extensionSet(input.Extensions)
	result := pipeline.ListResult{
		Dir:    dir,
		Frames: make([]pipeline.Frame, 0, len(names)),
	}
	for _, name := range names {
		ext := pathsplit.Ext(name)
		if len(allowed) > 0 && !allowed[strings.ToLower(ext)] {
			result.Skipped++
			continue
		}
		result.Frames = append(result.Frames, pipeline.Frame{
			Index: len(result.Frames),
			Name:  name,
			Path:  filepath.Join(dir, name),
			Stem:  pathsplit.Stem(name),
			Ext:   ext,
		})
	}

	if result.Skipped > 0 {
		s.logger.Debug("Filtered %d of %d files by extension", result.Skipped, len(names))
	}
	return result, nil
}

// extensionSet normalizes ".PNG", "png" and "Png" to "png".
func extensionSet(exts []string) map[string]bool {
	set := make(map[string]bool, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if ext != "" {
			set[ext] = true
		}
	}
	return set
}
