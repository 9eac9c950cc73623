package cmd

import (
	"github.com/Melaniegou91/debruijn-tp/internal/debruijn"
	"github.com/spf13/cobra"
)

// graphCmd is for inspecting the raw de Bruijn graph before simplification
var graphCmd = &cobra.Command{
	Use:                        "graph",
	Short:                      "Build the raw de Bruijn graph and export it in DOT format",
	Run:                        debruijn.GraphCmd,
	SuggestionsMinimumDistance: 2,
	Long: `Build the weighted de Bruijn graph of a fastq file and write it in
graphviz DOT format, without simplifying it. Heavily supported edges
are drawn bold, weakly supported ones dashed.`,
}

// set flags
func init() {
	graphCmd.Flags().StringP("in", "i", "", "input fastq file with reads")
	graphCmd.Flags().StringP("out", "o", "graph.dot", "output DOT file")
	graphCmd.Flags().IntP("kmer-size", "k", 22, "k-mer size")
	graphCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(graphCmd)
}
