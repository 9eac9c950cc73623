package debruijn

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func Test_Contigs(t *testing.T) {
	tests := []struct {
		name   string
		counts map[string]int
		want   []Contig
	}{
		{
			"single read",
			map[string]int{"TCA": 1, "CAG": 1, "AGA": 1},
			[]Contig{{Seq: "TCAGA", Length: 5}},
		},
		{
			"fork yields one contig per simple path",
			map[string]int{"TCA": 1, "CAG": 1, "CAT": 1},
			[]Contig{
				{Seq: "TCAG", Length: 4},
				{Seq: "TCAT", Length: 4},
			},
		},
		{
			"empty graph",
			map[string]int{},
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Build(tt.counts)
			got := Contigs(g, g.StartingNodes(), g.SinkNodes())
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Contigs() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_Contigs_reconstruction(t *testing.T) {
	// every node of the walk must reappear in the contig at its offset
	g := Build(map[string]int{"TCAG": 1, "CAGA": 1, "AGAC": 1, "GACT": 1})

	contigs := Contigs(g, g.StartingNodes(), g.SinkNodes())
	if len(contigs) != 1 {
		t.Fatalf("Contigs() returned %d contigs, want 1", len(contigs))
	}

	contig := contigs[0]
	path := []string{"TCA", "CAG", "AGA", "GAC", "ACT"}
	if want := len(path[0]) + len(path) - 1; contig.Length != want {
		t.Errorf("contig length = %d, want %d", contig.Length, want)
	}
	for i, node := range path {
		if got := contig.Seq[i : i+len(node)]; got != node {
			t.Errorf("contig substring at %d = %s, want %s", i, got, node)
		}
	}
}

func Test_WriteContigs(t *testing.T) {
	out := filepath.Join(t.TempDir(), "contigs.fasta")

	contigs := []Contig{
		{Seq: "TCAGACTGGCAT", Length: 12},
		{Seq: "GGCA", Length: 4},
	}
	if err := WriteContigs(contigs, out, 5); err != nil {
		t.Fatalf("WriteContigs() error = %v", err)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}

	want := strings.Join([]string{
		">contig_0 len=12",
		"TCAGA",
		"CTGGC",
		"AT",
		">contig_1 len=4",
		"GGCA",
		"",
	}, "\n")
	if string(got) != want {
		t.Errorf("WriteContigs() wrote %q, want %q", string(got), want)
	}
}
