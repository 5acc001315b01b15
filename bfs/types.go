// Package bfs provides tunable options, the traversal result and error
// definitions for breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/citynav/core"
)

// Sentinel errors for BFS execution. An unregistered start city is
// reported as a wrapped core.ErrUnknownCity.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by BFS.
type Option func(*Options)

// Options holds the parameters of one traversal.
type Options struct {
	// Ctx allows cancellation; it is checked once per dequeued city.
	Ctx context.Context

	// MaxDepth, if > 0, stops exploring beyond this many roads from the
	// start. 0 disables the limit.
	MaxDepth int

	err error
}

// DefaultOptions returns a background context and no depth limit.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits exploration depth. Negative values are a violation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth must be ≥ 0, got %d", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result is the outcome of a traversal.
type Result struct {
	// Source is the start city.
	Source string

	// Order lists cities in visit order, Source first.
	Order []string

	// Depth maps each visited city to its road count from Source.
	Depth map[string]int

	// Parent maps each visited city except Source to its predecessor.
	Parent map[string]string
}

// PathTo returns the fewest-roads path from Source to dest, or false if
// dest was not reached.
func (r *Result) PathTo(dest string) (core.Path, bool) {
	d, ok := r.Depth[dest]
	if !ok {
		return nil, false
	}
	path := make(core.Path, d+1)
	for cur, i := dest, d; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}

	return path, true
}
