// Package orchestrator runs the list and plan stages for one directory.
package orchestrator

import (
	"context"
	"fmt"

	"github.com/user/frameseq/pkg/pipeline"
	"github.com/user/frameseq/pkg/ports"
)

// Config contains all configuration for a run.
type Config struct {
	// Input
	Dir        string
	Extensions []string

	// Planning. Plan is skipped when OutputDir is empty.
	OutputDir string
	Format    string
	Sequence  string
}

// RunResult is what a run produced.
type RunResult struct {
	List pipeline.ListResult
	// Plan is nil when no output directory was configured.
	Plan *pipeline.PlanResult
}

// Orchestrator coordinates the execution of all pipeline stages.
type Orchestrator struct {
	listStage pipeline.Stage[pipeline.ListInput, pipeline.ListResult]
	planStage pipeline.Stage[pipeline.PlanInput, pipeline.PlanResult]
	logger    ports.Logger
}

// New creates a new Orchestrator.
func New(
	listStage pipeline.Stage[pipeline.ListInput, pipeline.ListResult],
	planStage pipeline.Stage[pipeline.PlanInput, pipeline.PlanResult],
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		listStage: listStage,
		planStage: planStage,
		logger:    logger,
	}
}

// Run executes the pipeline.
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	o.logger.Info("Starting pipeline")

	// 1. List
	o.logger.Info("Listing %s", config.Dir)
	list, err := o.listStage.Execute(ctx, pipeline.ListInput{
		Dir:        config.Dir,
		Extensions: config.Extensions,
	})
	if err != nil {
		o.logger.Error("Failed to list directory: %s", err)
		return RunResult{}, fmt.Errorf("list stage: %w", err)
	}
	o.logger.Info("Found %d frames in %s", len(list.Frames), list.Dir)

	result := RunResult{List: list}
	if config.OutputDir == "" {
		o.logger.Info("Pipeline completed successfully")
		return result, nil
	}

	if err := ctx.Err(); err != nil {
		return RunResult{}, err
	}

	// 2. Plan
	o.logger.Info("Planning %d jobs into %s", len(list.Frames), config.OutputDir)
	plan, err := o.planStage.Execute(ctx, pipeline.PlanInput{
		Frames:    list.Frames,
		OutputDir: config.OutputDir,
		Format:    config.Format,
		Sequence:  config.Sequence,
	})
	if err != nil {
		o.logger.Error("Failed to plan outputs: %s", err)
		return RunResult{}, fmt.Errorf("plan stage: %w", err)
	}
	result.Plan = &plan

	o.logger.Info("Pipeline completed successfully")
	return result, nil
}
