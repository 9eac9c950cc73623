package debruijn

import (
	"math/rand"

	"github.com/pkg/errors"
)

// selectBestPath keeps exactly one of several competing paths between
// the same two endpoints and removes the rest from the graph.
//
// The survivor is, in order of preference: the path with the strictly
// greatest mean weight, then the strictly greatest length, then one
// picked uniformly by rng when both metrics are fully tied. The delete
// flags control whether the removed paths' first/last nodes are
// deleted along with their interiors; nodes of the surviving path are
// never deleted.
func selectBestPath(
	g *Graph,
	paths [][]string,
	lengths []int,
	weights []float64,
	deleteEntryNode, deleteSinkNode bool,
	rng *rand.Rand,
) error {
	if len(paths) == 0 {
		return errors.Wrap(ErrNoCandidates, "select best path")
	}
	if len(weights) < 2 || len(lengths) < 2 {
		return errors.Wrapf(ErrDegenerateInput,
			"selection needs at least 2 weights and lengths, got %d and %d", len(weights), len(lengths))
	}
	if len(weights) != len(paths) || len(lengths) != len(paths) {
		return errors.Wrapf(ErrDegenerateInput,
			"%d paths with %d weights and %d lengths", len(paths), len(weights), len(lengths))
	}

	var best int
	switch {
	case !allSameFloats(weights):
		best = argmaxFloats(weights)
	case !allSameInts(lengths):
		best = argmaxInts(lengths)
	default:
		best = rng.Intn(len(paths))
	}

	retained := make(map[string]struct{}, len(paths[best]))
	for _, node := range paths[best] {
		retained[node] = struct{}{}
	}

	for i, path := range paths {
		if i == best {
			continue
		}
		removePath(g, path, deleteEntryNode, deleteSinkNode, retained)
	}
	return nil
}

// removePath deletes a losing path's nodes from the graph. Interior
// nodes always go; the first and last nodes only when the matching
// flag is set. Nodes in retained are left untouched.
func removePath(g *Graph, path []string, deleteEntryNode, deleteSinkNode bool, retained map[string]struct{}) {
	lo, hi := 1, len(path)-1
	if deleteEntryNode {
		lo = 0
	}
	if deleteSinkNode {
		hi = len(path)
	}
	for _, node := range path[lo:hi] {
		if _, keep := retained[node]; keep {
			continue
		}
		g.RemoveNode(node)
	}
}

func allSameFloats(xs []float64) bool {
	for _, x := range xs[1:] {
		if x != xs[0] {
			return false
		}
	}
	return true
}

func allSameInts(xs []int) bool {
	for _, x := range xs[1:] {
		if x != xs[0] {
			return false
		}
	}
	return true
}

func argmaxFloats(xs []float64) int {
	best := 0
	for i, x := range xs {
		if x > xs[best] {
			best = i
		}
	}
	return best
}

func argmaxInts(xs []int) int {
	best := 0
	for i, x := range xs {
		if x > xs[best] {
			best = i
		}
	}
	return best
}
