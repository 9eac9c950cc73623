package debruijn

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidPath is returned when a path is not a walk in the
	// graph or has too few nodes for the requested metric.
	ErrInvalidPath = errors.New("debruijn: invalid path")

	// ErrNoCandidates is returned when path selection is invoked
	// without any candidate paths.
	ErrNoCandidates = errors.New("debruijn: no candidate paths")

	// ErrDegenerateInput is returned when path selection is invoked
	// with fewer than two competitors.
	ErrDegenerateInput = errors.New("debruijn: fewer than two competing paths")

	// ErrNonTermination is returned when a simplification pass stops
	// making progress. It is fatal to the run.
	ErrNonTermination = errors.New("debruijn: simplification failed to make progress")
)
