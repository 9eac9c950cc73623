package debruijn

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/pkg/errors"
)

func Test_SimplifyBubbles(t *testing.T) {
	tests := []struct {
		name      string
		graph     func() *Graph
		wantNodes []string
	}{
		{
			"single bubble keeps the heavier branch",
			func() *Graph { return diamond(1, 5) },
			[]string{"A", "C", "D"},
		},
		{
			"no bubble leaves the graph unchanged",
			func() *Graph {
				g := NewGraph()
				g.AddEdge("TC", "CA", 1)
				g.AddEdge("CA", "AG", 1)
				return g
			},
			[]string{"AG", "CA", "TC"},
		},
		{
			"predecessor pair on the same branch",
			func() *Graph {
				// the direct edge A->C competes with A->B->C and wins
				g := NewGraph()
				g.AddEdge("A", "C", 5)
				g.AddEdge("A", "B", 1)
				g.AddEdge("B", "C", 1)
				return g
			},
			[]string{"A", "C"},
		},
		{
			"two disjoint bubbles",
			func() *Graph {
				g := diamond(1, 5)
				g.AddEdge("E", "F", 1)
				g.AddEdge("F", "H", 1)
				g.AddEdge("E", "G", 5)
				g.AddEdge("G", "H", 5)
				return g
			},
			[]string{"A", "C", "D", "E", "G", "H"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := tt.graph()
			rng := rand.New(rand.NewSource(9001))

			if err := SimplifyBubbles(g, rng, 0); err != nil {
				t.Fatalf("SimplifyBubbles() error = %v", err)
			}
			if got := g.Nodes(); !reflect.DeepEqual(got, tt.wantNodes) {
				t.Errorf("SimplifyBubbles() nodes = %v, want %v", got, tt.wantNodes)
			}
		})
	}
}

func Test_SimplifyBubbles_idempotent(t *testing.T) {
	g := diamond(1, 5)
	rng := rand.New(rand.NewSource(9001))

	if err := SimplifyBubbles(g, rng, 0); err != nil {
		t.Fatalf("SimplifyBubbles() error = %v", err)
	}
	nodes, edges := g.Nodes(), g.NumEdges()

	if err := SimplifyBubbles(g, rng, 0); err != nil {
		t.Fatalf("SimplifyBubbles() second run error = %v", err)
	}
	if got := g.Nodes(); !reflect.DeepEqual(got, nodes) {
		t.Errorf("SimplifyBubbles() second run nodes = %v, want %v", got, nodes)
	}
	if got := g.NumEdges(); got != edges {
		t.Errorf("SimplifyBubbles() second run edges = %d, want %d", got, edges)
	}
}

func Test_SimplifyBubbles_resolutionBound(t *testing.T) {
	// two disjoint bubbles but only one resolution allowed
	g := diamond(1, 5)
	g.AddEdge("E", "F", 1)
	g.AddEdge("F", "H", 1)
	g.AddEdge("E", "G", 5)
	g.AddEdge("G", "H", 5)
	rng := rand.New(rand.NewSource(9001))

	err := SimplifyBubbles(g, rng, 1)
	if errors.Cause(err) != ErrNonTermination {
		t.Errorf("SimplifyBubbles() error = %v, want %v", err, ErrNonTermination)
	}
}

func Test_SimplifyBubbles_noProgress(t *testing.T) {
	// the losing branch is a bare edge with no interior nodes, so
	// resolving it cannot change the graph; rather than rescanning
	// forever the run must abort
	g := NewGraph()
	g.AddEdge("A", "C", 1)
	g.AddEdge("A", "B", 5)
	g.AddEdge("B", "C", 5)
	rng := rand.New(rand.NewSource(9001))

	err := SimplifyBubbles(g, rng, 0)
	if errors.Cause(err) != ErrNonTermination {
		t.Errorf("SimplifyBubbles() error = %v, want %v", err, ErrNonTermination)
	}
}
