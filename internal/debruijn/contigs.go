package debruijn

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Contig is a contiguous sequence rebuilt from a simple path between a
// source node and a sink node of the simplified graph.
type Contig struct {
	// Seq is the reconstructed sequence
	Seq string

	// Length is len(Seq)
	Length int
}

// Contigs enumerates every simple path from a starting node to a sink
// node and rebuilds each path's sequence. Consecutive nodes overlap on
// all but one character, so a path's sequence is its first node's full
// label followed by the last character of every node after it.
//
// No deduplication happens: one contig per simple path found.
func Contigs(g *Graph, startingNodes, sinkNodes []string) []Contig {
	var contigs []Contig
	for _, start := range startingNodes {
		for _, sink := range sinkNodes {
			if !g.HasPath(start, sink) {
				continue
			}
			for _, path := range g.SimplePaths(start, sink) {
				var b strings.Builder
				b.WriteString(path[0])
				for _, node := range path[1:] {
					b.WriteByte(node[len(node)-1])
				}
				seq := b.String()
				contigs = append(contigs, Contig{Seq: seq, Length: len(seq)})
			}
		}
	}
	return contigs
}

// WriteContigs writes contigs to path as fasta records, one per
// contig, with ">contig_<index> len=<length>" headers and sequences
// wrapped at width characters per line.
func WriteContigs(contigs []Contig, path string, width int) error {
	if width < 1 {
		return errors.Errorf("line width must be positive, got %d", width)
	}

	var b strings.Builder
	for i, contig := range contigs {
		fmt.Fprintf(&b, ">contig_%d len=%d\n", i, contig.Length)
		for offset := 0; offset < len(contig.Seq); offset += width {
			end := offset + width
			if end > len(contig.Seq) {
				end = len(contig.Seq)
			}
			b.WriteString(contig.Seq[offset:end])
			b.WriteByte('\n')
		}
	}

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return errors.Wrap(err, "failed to write contigs")
	}
	return nil
}
