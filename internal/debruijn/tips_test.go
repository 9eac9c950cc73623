package debruijn

import (
	"math/rand"
	"reflect"
	"testing"
)

func Test_SolveEntryTips(t *testing.T) {
	tests := []struct {
		name      string
		graph     func() *Graph
		wantNodes []string
	}{
		{
			"weak entry branch removed with its source",
			func() *Graph {
				g := NewGraph()
				g.AddEdge("s1", "j", 10)
				g.AddEdge("s2", "x", 1)
				g.AddEdge("x", "j", 1)
				g.AddEdge("j", "z", 5)
				return g
			},
			[]string{"j", "s1", "z"},
		},
		{
			"tied weight keeps the longer entry",
			func() *Graph {
				g := NewGraph()
				g.AddEdge("s1", "j", 1)
				g.AddEdge("s2", "x", 1)
				g.AddEdge("x", "j", 1)
				g.AddEdge("j", "z", 5)
				return g
			},
			[]string{"j", "s2", "x", "z"},
		},
		{
			"single source is left alone",
			func() *Graph {
				g := NewGraph()
				g.AddEdge("s1", "j", 1)
				g.AddEdge("j", "z", 1)
				return g
			},
			[]string{"j", "s1", "z"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := tt.graph()
			rng := rand.New(rand.NewSource(9001))

			if err := SolveEntryTips(g, rng, 0); err != nil {
				t.Fatalf("SolveEntryTips() error = %v", err)
			}
			if got := g.Nodes(); !reflect.DeepEqual(got, tt.wantNodes) {
				t.Errorf("SolveEntryTips() nodes = %v, want %v", got, tt.wantNodes)
			}
		})
	}
}

func Test_SolveEntryTips_threeWay(t *testing.T) {
	// three sources funnel into j; only the best supported survives
	g := NewGraph()
	g.AddEdge("s1", "j", 10)
	g.AddEdge("s2", "j", 1)
	g.AddEdge("s3", "y", 2)
	g.AddEdge("y", "j", 2)
	g.AddEdge("j", "z", 5)
	rng := rand.New(rand.NewSource(9001))

	if err := SolveEntryTips(g, rng, 0); err != nil {
		t.Fatalf("SolveEntryTips() error = %v", err)
	}

	want := []string{"j", "s1", "z"}
	if got := g.Nodes(); !reflect.DeepEqual(got, want) {
		t.Errorf("SolveEntryTips() nodes = %v, want %v", got, want)
	}
}

func Test_SolveOutTips(t *testing.T) {
	tests := []struct {
		name      string
		graph     func() *Graph
		wantNodes []string
	}{
		{
			"weak exit branch removed with its sink",
			func() *Graph {
				g := NewGraph()
				g.AddEdge("a", "f", 5)
				g.AddEdge("f", "e1", 10)
				g.AddEdge("f", "x", 1)
				g.AddEdge("x", "e2", 1)
				return g
			},
			[]string{"a", "e1", "f"},
		},
		{
			"tied weight keeps the longer exit",
			func() *Graph {
				g := NewGraph()
				g.AddEdge("a", "f", 5)
				g.AddEdge("f", "e1", 1)
				g.AddEdge("f", "x", 1)
				g.AddEdge("x", "e2", 1)
				return g
			},
			[]string{"a", "e2", "f", "x"},
		},
		{
			"single sink is left alone",
			func() *Graph {
				g := NewGraph()
				g.AddEdge("a", "f", 1)
				g.AddEdge("f", "e1", 1)
				return g
			},
			[]string{"a", "e1", "f"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := tt.graph()
			rng := rand.New(rand.NewSource(9001))

			if err := SolveOutTips(g, rng, 0); err != nil {
				t.Fatalf("SolveOutTips() error = %v", err)
			}
			if got := g.Nodes(); !reflect.DeepEqual(got, tt.wantNodes) {
				t.Errorf("SolveOutTips() nodes = %v, want %v", got, tt.wantNodes)
			}
		})
	}
}
