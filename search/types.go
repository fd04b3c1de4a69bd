// Package search defines core types, configuration options and sentinel
// errors for uniform-cost search over a grid.Grid.
package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/tilepath/coord"
)

// Sentinel errors returned by the search entry points.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrNoSources indicates that an engine or area search was given no seed coordinates.
	ErrNoSources = errors.New("search: at least one source coordinate is required")

	// ErrNoPath indicates the target is unreachable, or not stoppable without
	// WithEndOnUnstoppable.
	ErrNoPath = errors.New("search: no path found")

	// ErrExpansionLimit indicates the search expanded MaxExpansions nodes
	// without finishing.
	ErrExpansionLimit = errors.New("search: expansion limit reached")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Relaxation selects how a neighbor already waiting in the frontier is handled.
type Relaxation int

const (
	// RelaxStrict skips pushing a neighbor when a node for the same coordinate
	// is already queued with a lower or equal cost. Default.
	RelaxStrict Relaxation = iota

	// RelaxPermissive pushes a new node every time a neighbor is reached and
	// not yet expanded, leaving duplicate frontier entries. Stale entries are
	// skipped when popped, so paths are identical to RelaxStrict; only the
	// frontier grows larger.
	RelaxPermissive
)

// String returns the relaxation mode name.
func (r Relaxation) String() string {
	switch r {
	case RelaxStrict:
		return "strict"
	case RelaxPermissive:
		return "permissive"
	default:
		return fmt.Sprintf("Relaxation(%d)", int(r))
	}
}

// Heuristic estimates the remaining cost from a coordinate to the target.
// It only reorders the frontier; optimality holds only when it never
// overestimates the true remaining cost.
type Heuristic func(from, to coord.Coord) int

// Option configures a search via functional arguments.
// If an Option is invalid (e.g. a negative limit), it is recorded
// internally and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks that customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines. Checked once per popped node.
	Ctx context.Context

	// EndOnUnstoppable permits FindPath to target a coordinate marked
	// unstoppable. The target must still be walkable to be reached.
	EndOnUnstoppable bool

	// MaxExpansions, if > 0, aborts the search with ErrExpansionLimit once
	// that many nodes have been expanded. 0 disables the limit.
	MaxExpansions int

	// Relaxation selects strict (default) or permissive frontier relaxation.
	Relaxation Relaxation

	// Heuristic, if non-nil, is added to the accumulated cost when ordering
	// the frontier of a targeted search. Ignored by area searches.
	Heuristic Heuristic

	// OnVisit is called for every node as it is popped and cached, before its
	// neighbors are examined. Returning an error aborts the search.
	OnVisit func(c coord.Coord, cost int) error

	// Logger receives Debug records at search start and finish. Nil disables logging.
	Logger *slog.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - unstoppable targets rejected
//   - no expansion limit
//   - strict relaxation, no heuristic
//   - no-op OnVisit hook, no logger
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Relaxation: RelaxStrict,
		OnVisit:    func(coord.Coord, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithEndOnUnstoppable lets FindPath end on a coordinate marked unstoppable.
func WithEndOnUnstoppable() Option {
	return func(o *Options) {
		o.EndOnUnstoppable = true
	}
}

// WithMaxExpansions caps the number of expanded nodes.
//
//	n > 0: abort with ErrExpansionLimit after n expansions
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithRelaxation selects the frontier relaxation policy.
func WithRelaxation(r Relaxation) Option {
	return func(o *Options) {
		if r != RelaxStrict && r != RelaxPermissive {
			o.err = fmt.Errorf("%w: unknown relaxation %d", ErrOptionViolation, int(r))
			return
		}
		o.Relaxation = r
	}
}

// WithHeuristic orders the frontier by cost plus h(node, target).
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		o.Heuristic = h
	}
}

// WithOnVisit registers a callback run for every expanded node; returning
// an error from it stops the search.
func WithOnVisit(fn func(c coord.Coord, cost int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithLogger enables Debug logging of search start and finish.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// buildOptions applies opts over DefaultOptions and reports the first violation.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt == nil {
			return o, fmt.Errorf("%w: nil option", ErrOptionViolation)
		}
		opt(&o)
	}

	return o, o.err
}

// PathResult describes a successful path search.
type PathResult struct {
	// Path lists the coordinates stepped onto, start excluded, target last.
	// Empty (non-nil) when start equals target.
	Path []coord.Coord
	// Cost is the sum of entry costs along Path.
	Cost int
	// Expanded counts the nodes popped and expanded during the search.
	Expanded int
}
