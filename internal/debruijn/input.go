package debruijn

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/Melaniegou91/debruijn-tp/config"
	"github.com/spf13/cobra"
)

// stderr is for logging to Stderr (without an annoying timestamp)
var stderr = log.New(os.Stderr, "", 0)

// Flags contains parsed cobra flags like "in", "out", "graph" that are
// used by multiple commands.
type Flags struct {
	// the path of the fastq file to read the reads from
	in string

	// the path of the fasta file to write the contigs to
	out string

	// the path to write the DOT render of the graph to (optional)
	graph string
}

// inputParser contains methods for parsing flags from the input &cobra.Command.
type inputParser struct{}

// NewFlags makes a new flags object manually. for testing.
func NewFlags(in, out, graph string, kmerSize int, seed int64) (*Flags, *config.Config) {
	c := config.New()
	c.Assembly.KmerSize = kmerSize
	c.Assembly.Seed = seed

	return &Flags{
		in:    in,
		out:   out,
		graph: graph,
	}, c
}

// parseCmdFlags gathers the in path, out path, etc from a cobra cmd object.
// returns Flags and a Config struct for debruijn.Assemble.
func parseCmdFlags(cmd *cobra.Command, args []string) (*Flags, *config.Config) {
	var err error
	fs := &Flags{} // parsed flags
	p := inputParser{}
	c := config.New()

	if fs.in, err = cmd.Flags().GetString("in"); fs.in == "" || err != nil {
		if len(args) > 0 {
			fs.in = args[0]
		} else {
			cmd.Help()
			stderr.Fatal("no fastq input path")
		}
	}

	if fs.out, err = cmd.Flags().GetString("out"); fs.out == "" || err != nil {
		fs.out = p.guessOutput(fs.in) // guess at an output name
	}

	if fs.graph, err = cmd.Flags().GetString("graph"); err != nil {
		fs.graph = "" // optional side output
	}

	// the k-mer size flag overrides the configured default
	if kmerSize, err := cmd.Flags().GetInt("kmer-size"); err == nil && kmerSize > 0 {
		c.Assembly.KmerSize = kmerSize
	}

	return fs, c
}

// guessOutput returns a fasta output path next to the input file.
func (p inputParser) guessOutput(in string) string {
	base := strings.TrimSuffix(filepath.Base(in), filepath.Ext(in))
	if base == "" {
		return "contigs.fasta"
	}
	return filepath.Join(filepath.Dir(in), base+".contigs.fasta")
}
