package debruijn

import (
	"math/rand"
	"time"

	"github.com/Melaniegou91/debruijn-tp/config"
	"github.com/Melaniegou91/debruijn-tp/internal/fastq"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// AssembleCmd runs the full assembly pipeline from a cobra command:
// fastq reads to simplified graph to contigs fasta.
func AssembleCmd(cmd *cobra.Command, args []string) {
	flags, conf := parseCmdFlags(cmd, args)

	logger, err := zap.NewDevelopment()
	if err != nil {
		stderr.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	if err := Assemble(flags, conf, logger); err != nil {
		stderr.Fatalf("assembly failed: %v", err)
	}
}

// GraphCmd builds the raw de Bruijn graph, without simplification, and
// writes its DOT render.
func GraphCmd(cmd *cobra.Command, args []string) {
	flags, conf := parseCmdFlags(cmd, args)

	g, err := buildFromFastq(flags.in, conf.Assembly.KmerSize)
	if err != nil {
		stderr.Fatalf("failed to build graph: %v", err)
	}
	if err := WriteDot(g, flags.out); err != nil {
		stderr.Fatalf("failed to write graph: %v", err)
	}
}

// Assemble reads the fastq file named by flags, builds the weighted de
// Bruijn graph, simplifies its bubbles and tips, and writes the
// resulting contigs as fasta. The graph is owned by one stage at a
// time and handed down the pipeline; any stage error aborts the run.
func Assemble(flags *Flags, conf *config.Config, logger *zap.Logger) error {
	start := time.Now()

	g, err := buildFromFastq(flags.in, conf.Assembly.KmerSize)
	if err != nil {
		return err
	}
	logger.Info("graph built",
		zap.String("in", flags.in),
		zap.Int("kmerSize", conf.Assembly.KmerSize),
		zap.Int("nodes", g.NumNodes()),
		zap.Int("edges", g.NumEdges()),
	)

	// one seeded source per run so tie-breaks are reproducible
	rng := rand.New(rand.NewSource(conf.Assembly.Seed))

	if err := SimplifyBubbles(g, rng, conf.Assembly.MaxPasses); err != nil {
		return err
	}
	logger.Info("bubbles simplified", zap.Int("nodes", g.NumNodes()), zap.Int("edges", g.NumEdges()))

	if err := SolveEntryTips(g, rng, conf.Assembly.MaxPasses); err != nil {
		return err
	}
	if err := SolveOutTips(g, rng, conf.Assembly.MaxPasses); err != nil {
		return err
	}
	logger.Info("tips resolved", zap.Int("nodes", g.NumNodes()), zap.Int("edges", g.NumEdges()))

	contigs := Contigs(g, g.StartingNodes(), g.SinkNodes())
	if err := WriteContigs(contigs, flags.out, conf.Output.LineWidth); err != nil {
		return err
	}

	if flags.graph != "" {
		if err := WriteDot(g, flags.graph); err != nil {
			return err
		}
	}

	logger.Info("assembly done",
		zap.String("out", flags.out),
		zap.Int("contigs", len(contigs)),
		zap.Duration("execution", time.Since(start)),
	)
	return nil
}

// buildFromFastq reads and validates the reads, counts their k-mers
// and builds the graph. All input errors surface here, before any
// simplification starts.
func buildFromFastq(in string, kmerSize int) (*Graph, error) {
	reads, err := fastq.Read(in)
	if err != nil {
		return nil, err
	}

	counts, err := fastq.Count(reads, kmerSize)
	if err != nil {
		return nil, err
	}

	return Build(counts), nil
}
