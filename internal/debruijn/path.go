package debruijn

import (
	"github.com/pkg/errors"
)

// A path's length is its node count; there is no separate metric
// function for it, len(path) is the contract everywhere.

// AverageWeight returns the arithmetic mean of the edge weights along
// the consecutive node pairs of path. It fails with ErrInvalidPath if
// path has fewer than two nodes or any consecutive pair is not an
// edge of the graph.
func (g *Graph) AverageWeight(path []string) (float64, error) {
	if len(path) < 2 {
		return 0, errors.Wrapf(ErrInvalidPath, "path of %d node(s) has no edges to average", len(path))
	}

	total := 0
	for i := 0; i+1 < len(path); i++ {
		w, ok := g.Weight(path[i], path[i+1])
		if !ok {
			return 0, errors.Wrapf(ErrInvalidPath, "no edge %s->%s", path[i], path[i+1])
		}
		total += w
	}
	return float64(total) / float64(len(path)-1), nil
}
