package cmd

import (
	"github.com/Melaniegou91/debruijn-tp/internal/debruijn"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// assembleCmd is for assembling the reads of a fastq file into contigs
var assembleCmd = &cobra.Command{
	Use:                        "assemble",
	Short:                      "Assemble the reads of a fastq file into contigs",
	Run:                        debruijn.AssembleCmd,
	SuggestionsMinimumDistance: 2,
	Long: `Assemble short overlapping reads into contigs. The reads are cut into
k-mers, the k-mers into a weighted de Bruijn graph. Bubbles caused by
sequencing noise and dangling tips from incomplete coverage are removed
before the contigs are read off the remaining unambiguous paths.`,
	Aliases: []string{"asm", "contigs"},
}

// set flags
func init() {
	assembleCmd.Flags().StringP("in", "i", "", "input fastq file with reads")
	assembleCmd.Flags().StringP("out", "o", "contigs.fasta", "output fasta file for the contigs")
	assembleCmd.Flags().StringP("graph", "f", "", "write the simplified graph in DOT format to this path")
	assembleCmd.Flags().IntP("kmer-size", "k", 22, "k-mer size")
	assembleCmd.Flags().Int64P("seed", "s", 9001, "seed for the tie-break random source")
	assembleCmd.MarkFlagRequired("in")

	// Bind the parameters to viper
	viper.BindPFlag("assembly.seed", assembleCmd.Flags().Lookup("seed"))

	rootCmd.AddCommand(assembleCmd)
}
