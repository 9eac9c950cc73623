package debruijn

import (
	"math/rand"

	"github.com/pkg/errors"
)

// progressGuard converts a simplification loop that has stopped
// changing the graph into an ErrNonTermination instead of spinning.
type progressGuard struct {
	resolutions int
	max         int
	lastKey     string
	lastNodes   int
	lastEdges   int
}

// step records one resolution attempt for key. It errors when the same
// structure is seen twice without the graph changing in between, or
// when the resolution count exceeds the configured maximum.
func (p *progressGuard) step(g *Graph, key string) error {
	if p.max > 0 && p.resolutions >= p.max {
		return errors.Wrapf(ErrNonTermination, "%d resolutions without reaching a fixpoint", p.resolutions)
	}
	if key == p.lastKey && g.NumNodes() == p.lastNodes && g.NumEdges() == p.lastEdges {
		return errors.Wrapf(ErrNonTermination, "%s detected twice without the graph changing", key)
	}
	p.resolutions++
	p.lastKey, p.lastNodes, p.lastEdges = key, g.NumNodes(), g.NumEdges()
	return nil
}

// SimplifyBubbles collapses every bubble of the graph to its single
// best path and returns the graph at the fixpoint where none remain.
// After each resolution the scan restarts, since the topology changed.
// maxResolutions bounds the loop (<= 0 means unbounded); exceeding it,
// or re-detecting a bubble the selector failed to change, is fatal.
func SimplifyBubbles(g *Graph, rng *rand.Rand, maxResolutions int) error {
	guard := progressGuard{max: maxResolutions}

	for {
		ancestor, join, found := findBubble(g)
		if !found {
			return nil
		}
		if err := guard.step(g, "bubble "+ancestor+".."+join); err != nil {
			return err
		}
		if err := solveBubble(g, ancestor, join, rng); err != nil {
			return err
		}
	}
}

// findBubble scans for a node with two predecessors sharing a lowest
// common ancestor. Nodes and predecessor pairs are visited in
// lexicographic order so detection is deterministic.
func findBubble(g *Graph) (ancestor, join string, found bool) {
	for _, node := range g.Nodes() {
		preds := g.Predecessors(node)
		if len(preds) < 2 {
			continue
		}
		for i := 0; i < len(preds); i++ {
			for j := i + 1; j < len(preds); j++ {
				if a, ok := g.LowestCommonAncestor(preds[i], preds[j]); ok {
					return a, node, true
				}
			}
		}
	}
	return "", "", false
}

// solveBubble resolves the bubble between ancestor and join by keeping
// the best of the simple paths between them. Both endpoints survive;
// only interior divergent nodes are removed.
func solveBubble(g *Graph, ancestor, join string, rng *rand.Rand) error {
	paths := g.SimplePaths(ancestor, join)

	lengths, weights, err := pathMetrics(g, paths)
	if err != nil {
		return err
	}
	return selectBestPath(g, paths, lengths, weights, false, false, rng)
}

// pathMetrics returns the length and mean edge weight of every path.
func pathMetrics(g *Graph, paths [][]string) ([]int, []float64, error) {
	lengths := make([]int, len(paths))
	weights := make([]float64, len(paths))
	for i, path := range paths {
		w, err := g.AverageWeight(path)
		if err != nil {
			return nil, nil, err
		}
		lengths[i] = len(path)
		weights[i] = w
	}
	return lengths, weights, nil
}
