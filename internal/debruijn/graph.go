// Package debruijn builds a weighted de Bruijn graph from a k-mer
// occurrence table, simplifies its bubbles and tips, and extracts
// contigs from the maximal unambiguous paths that remain
package debruijn

import (
	"sort"
)

// Graph is a mutable directed graph whose nodes are (k-1)-mers and
// whose edge weights are k-mer occurrence counts. Nodes are identified
// by their label; parallel edges never occur, adding the same edge
// twice accumulates its weight.
type Graph struct {
	// out maps a node to its successors and the weight of each edge
	out map[string]map[string]int

	// in maps a node to the set of its predecessors
	in map[string]map[string]struct{}
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		out: make(map[string]map[string]int),
		in:  make(map[string]map[string]struct{}),
	}
}

// Build turns a k-mer occurrence table into a de Bruijn graph: one
// edge per k-mer, from its (k-1)-mer prefix to its (k-1)-mer suffix,
// weighted by the k-mer's count.
func Build(counts map[string]int) *Graph {
	g := NewGraph()
	for kmer, count := range counts {
		g.AddEdge(kmer[:len(kmer)-1], kmer[1:], count)
	}
	return g
}

// AddNode inserts a node with the given label if absent.
func (g *Graph) AddNode(label string) {
	if _, ok := g.out[label]; ok {
		return
	}
	g.out[label] = make(map[string]int)
	g.in[label] = make(map[string]struct{})
}

// AddEdge inserts a directed edge u->v, adding either endpoint if
// absent. Re-adding an existing edge accumulates weight rather than
// overwriting it.
func (g *Graph) AddEdge(u, v string, weight int) {
	g.AddNode(u)
	g.AddNode(v)
	g.out[u][v] += weight
	g.in[v][u] = struct{}{}
}

// HasNode reports whether label is a node of the graph.
func (g *Graph) HasNode(label string) bool {
	_, ok := g.out[label]
	return ok
}

// Weight returns the weight of the edge u->v and whether it exists.
func (g *Graph) Weight(u, v string) (int, bool) {
	w, ok := g.out[u][v]
	return w, ok
}

// RemoveNode deletes the node with the given label and every edge
// incident to it. Removing an absent node is a no-op.
func (g *Graph) RemoveNode(label string) {
	if !g.HasNode(label) {
		return
	}
	for succ := range g.out[label] {
		delete(g.in[succ], label)
	}
	for pred := range g.in[label] {
		delete(g.out[pred], label)
	}
	delete(g.out, label)
	delete(g.in, label)
}

// RemoveNodes deletes every node in labels.
func (g *Graph) RemoveNodes(labels []string) {
	for _, label := range labels {
		g.RemoveNode(label)
	}
}

// Nodes returns every node label in lexicographic order.
func (g *Graph) Nodes() []string {
	nodes := make([]string, 0, len(g.out))
	for label := range g.out {
		nodes = append(nodes, label)
	}
	sort.Strings(nodes)
	return nodes
}

// NumNodes returns the node count.
func (g *Graph) NumNodes() int {
	return len(g.out)
}

// NumEdges returns the edge count.
func (g *Graph) NumEdges() int {
	count := 0
	for _, succs := range g.out {
		count += len(succs)
	}
	return count
}

// Successors returns the direct successors of u in lexicographic order.
func (g *Graph) Successors(u string) []string {
	succs := make([]string, 0, len(g.out[u]))
	for v := range g.out[u] {
		succs = append(succs, v)
	}
	sort.Strings(succs)
	return succs
}

// Predecessors returns the direct predecessors of v in lexicographic order.
func (g *Graph) Predecessors(v string) []string {
	preds := make([]string, 0, len(g.in[v]))
	for u := range g.in[v] {
		preds = append(preds, u)
	}
	sort.Strings(preds)
	return preds
}

// StartingNodes returns every node without predecessors.
func (g *Graph) StartingNodes() []string {
	var starts []string
	for _, node := range g.Nodes() {
		if len(g.in[node]) == 0 {
			starts = append(starts, node)
		}
	}
	return starts
}

// SinkNodes returns every node without successors.
func (g *Graph) SinkNodes() []string {
	var sinks []string
	for _, node := range g.Nodes() {
		if len(g.out[node]) == 0 {
			sinks = append(sinks, node)
		}
	}
	return sinks
}

// HasPath reports whether to is reachable from from.
func (g *Graph) HasPath(from, to string) bool {
	if !g.HasNode(from) || !g.HasNode(to) {
		return false
	}
	if from == to {
		return true
	}
	_, reached := g.reachableFrom(from)[to]
	return reached
}

// SimplePaths enumerates every simple path between from and to. Paths
// are explored over successors in lexicographic order so the result
// order is deterministic for a given graph.
func (g *Graph) SimplePaths(from, to string) [][]string {
	if !g.HasNode(from) || !g.HasNode(to) {
		return nil
	}

	var paths [][]string
	onPath := map[string]struct{}{from: {}}
	path := []string{from}

	var visit func(node string)
	visit = func(node string) {
		if node == to {
			paths = append(paths, append([]string(nil), path...))
			return
		}
		for _, succ := range g.Successors(node) {
			if _, seen := onPath[succ]; seen {
				continue
			}
			onPath[succ] = struct{}{}
			path = append(path, succ)
			visit(succ)
			path = path[:len(path)-1]
			delete(onPath, succ)
		}
	}
	visit(from)

	return paths
}

// LowestCommonAncestor returns a node from which both u and v are
// reachable such that no other common ancestor is strictly closer to
// the pair, and whether one exists. A node counts as its own ancestor.
// When several lowest ancestors are incomparable the lexicographically
// smallest label wins, keeping runs deterministic.
func (g *Graph) LowestCommonAncestor(u, v string) (string, bool) {
	ancestorsU := g.ancestorsOf(u)
	ancestorsV := g.ancestorsOf(v)

	var common []string
	for node := range ancestorsU {
		if _, ok := ancestorsV[node]; ok {
			common = append(common, node)
		}
	}
	if len(common) == 0 {
		return "", false
	}
	sort.Strings(common)

	commonSet := make(map[string]struct{}, len(common))
	for _, node := range common {
		commonSet[node] = struct{}{}
	}

	// an ancestor is lowest when no other common ancestor lies below it
	for _, candidate := range common {
		lowest := true
		for below := range g.reachableFrom(candidate) {
			if below == candidate {
				continue
			}
			if _, ok := commonSet[below]; ok {
				lowest = false
				break
			}
		}
		if lowest {
			return candidate, true
		}
	}

	// only reachable when ancestry is cyclic
	return common[0], true
}

// ancestorsOf returns the set of nodes that reach node, node included.
func (g *Graph) ancestorsOf(node string) map[string]struct{} {
	ancestors := map[string]struct{}{node: {}}
	queue := []string{node}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for pred := range g.in[current] {
			if _, seen := ancestors[pred]; seen {
				continue
			}
			ancestors[pred] = struct{}{}
			queue = append(queue, pred)
		}
	}
	return ancestors
}

// reachableFrom returns the set of nodes reachable from node,
// node excluded unless it lies on a cycle.
func (g *Graph) reachableFrom(node string) map[string]struct{} {
	reached := make(map[string]struct{})
	queue := []string{node}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for succ := range g.out[current] {
			if _, seen := reached[succ]; seen {
				continue
			}
			reached[succ] = struct{}{}
			queue = append(queue, succ)
		}
	}
	return reached
}
