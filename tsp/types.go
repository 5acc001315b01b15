package tsp

import (
	"errors"

	"github.com/katalvlaran/citynav/core"
)

var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to OptimalTour.
	ErrNilGraph = errors.New("tsp: graph is nil")

	// ErrBadWorkers is returned when WithWorkers is given a count below 1.
	ErrBadWorkers = errors.New("tsp: worker count must be at least 1")

	// ErrBadMaxCities is returned when WithMaxCities is given a negative limit.
	ErrBadMaxCities = errors.New("tsp: city limit must not be negative")

	// ErrTooManyCities is returned when the graph exceeds Options.MaxCities.
	ErrTooManyCities = errors.New("tsp: too many cities for an exact tour")
)

// DefaultMaxCities bounds the exact search: 11! ≈ 4·10⁷ candidates.
const DefaultMaxCities = 12

// Tour is a closed route. Path lists every city exactly once, starting at
// the start city; the closing road Path[len-1] → Path[0] is implicit and is
// included in Distance.
type Tour struct {
	Path     core.Path
	Distance float64
}

// Options configures OptimalTour.
type Options struct {
	// Workers is the number of goroutines searching candidate blocks.
	// 1 runs the search on the calling goroutine.
	Workers int

	// MaxCities refuses graphs with more cities (ErrTooManyCities).
	// 0 disables the limit.
	MaxCities int
}

// Option represents a functional option for configuring OptimalTour.
type Option func(*Options)

// WithWorkers sets the number of concurrent workers.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithMaxCities sets the largest graph OptimalTour will enumerate; 0 means
// no limit.
func WithMaxCities(n int) Option {
	return func(o *Options) { o.MaxCities = n }
}

// DefaultOptions returns the defaults: a single sequential worker and
// DefaultMaxCities.
func DefaultOptions() Options {
	return Options{Workers: 1, MaxCities: DefaultMaxCities}
}
