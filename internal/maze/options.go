package maze

import (
	"context"
	"fmt"
)

// Option configures BFS via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when BFS runs.
type Option func(*Options)

// Options holds the tunables of one BFS call.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxSteps, if > 0, bounds the number of dequeued nodes.
	// 0 disables the budget.
	MaxSteps int

	// IncludeStart prepends the start point to a non-empty path.
	IncludeStart bool

	// OnVisit is called for every dequeued node with its distance from start.
	OnVisit func(p Point, depth int)

	err error
}

// DefaultOptions returns Options with a background context, no step budget,
// the start point excluded from the path and a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(Point, int) {},
	}
}

// WithContext sets a context checked periodically during the search.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxSteps limits how many nodes BFS may dequeue.
//
//	n > 0: limit to n
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithIncludeStart controls whether the start point leads the returned path.
func WithIncludeStart(include bool) Option {
	return func(o *Options) {
		o.IncludeStart = include
	}
}

// WithOnVisit registers a hook run for each dequeued node.
func WithOnVisit(fn func(p Point, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
