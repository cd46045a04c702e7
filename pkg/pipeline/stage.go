// Package pipeline provides the stage abstraction and the data passed
// between frameseq stages.
package pipeline

import (
	"context"
)

// Stage is one step of a batch run.
type Stage[In, Out any] interface {
	Execute(ctx context.Context, input In) (Out, error)
}

// StageFunc is a function adapter for Stage interface.
type StageFunc[In, Out any] func(ctx context.Context, input In) (Out, error)

// Execute implements Stage interface.
func (f StageFunc[In, Out]) Execute(ctx context.Context, input In) (Out, error) {
	return f(ctx, input)
}

// Then runs first and feeds its output to second. The context is checked
// between the two stages.
func Then[A, B, C any](first Stage[A, B], second Stage[B, C]) Stage[A, C] {
	return StageFunc[A, C](func(ctx context.Context, input A) (C, error) {
		var zero C
		mid, err := first.Execute(ctx, input)
		if err != nil {
			return zero, err
		}
		if err := ctx.Err(); err != nil {
			return zero, err
		}
		return second.Execute(ctx, mid)
	})
}
