package debruijn

import (
	"math/rand"
)

// Tips are one-sided bubbles: several sources funnel into the same
// join node (or one fork drains into several sinks) and only the best
// supported branch should survive. The losing branch's outer endpoint
// is a source or sink and disappears with it, so the matching delete
// flag is set when the selector removes it.

// SolveEntryTips removes the weakly supported entry branches of the
// graph until none remain. The source set is recomputed after every
// resolution since removals change which nodes qualify.
func SolveEntryTips(g *Graph, rng *rand.Rand, maxResolutions int) error {
	guard := progressGuard{max: maxResolutions}

	for {
		join, paths, found := findEntryTip(g)
		if !found {
			return nil
		}
		if err := guard.step(g, "entry tips into "+join); err != nil {
			return err
		}

		lengths, weights, err := pathMetrics(g, paths)
		if err != nil {
			return err
		}
		if err := selectBestPath(g, paths, lengths, weights, true, false, rng); err != nil {
			return err
		}
	}
}

// SolveOutTips removes the weakly supported exit branches of the graph
// until none remain, mirroring SolveEntryTips on the sink side.
func SolveOutTips(g *Graph, rng *rand.Rand, maxResolutions int) error {
	guard := progressGuard{max: maxResolutions}

	for {
		fork, paths, found := findOutTip(g)
		if !found {
			return nil
		}
		if err := guard.step(g, "out tips from "+fork); err != nil {
			return err
		}

		lengths, weights, err := pathMetrics(g, paths)
		if err != nil {
			return err
		}
		if err := selectBestPath(g, paths, lengths, weights, false, true, rng); err != nil {
			return err
		}
	}
}

// findEntryTip scans for the first node, in lexicographic order, where
// two or more paths from source nodes converge. The competing paths
// from every source to that node are returned.
func findEntryTip(g *Graph) (join string, paths [][]string, found bool) {
	starts := g.StartingNodes()
	if len(starts) < 2 {
		return "", nil, false
	}

	for _, node := range g.Nodes() {
		if len(g.Predecessors(node)) < 2 {
			continue
		}
		var candidates [][]string
		for _, start := range starts {
			if start == node {
				continue
			}
			candidates = append(candidates, g.SimplePaths(start, node)...)
		}
		if len(candidates) >= 2 {
			return node, candidates, true
		}
	}
	return "", nil, false
}

// findOutTip scans for the first node where the graph diverges toward
// two or more sink nodes, returning the competing paths to every sink.
func findOutTip(g *Graph) (fork string, paths [][]string, found bool) {
	sinks := g.SinkNodes()
	if len(sinks) < 2 {
		return "", nil, false
	}

	for _, node := range g.Nodes() {
		if len(g.Successors(node)) < 2 {
			continue
		}
		var candidates [][]string
		for _, sink := range sinks {
			if sink == node {
				continue
			}
			candidates = append(candidates, g.SimplePaths(node, sink)...)
		}
		if len(candidates) >= 2 {
			return node, candidates, true
		}
	}
	return "", nil, false
}
