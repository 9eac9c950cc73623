// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/spf13/viper"
)

// AssemblyConfig is settings for graph construction and simplification
type AssemblyConfig struct {
	// the k-mer size used to cut reads into graph edges
	KmerSize int `mapstructure:"kmer-size"`

	// seed for the random source used to break full ties between paths
	Seed int64 `mapstructure:"seed"`

	// the maximum number of bubble/tip resolutions in a single pass
	// before the run is considered stuck
	MaxPasses int `mapstructure:"max-passes"`
}

// OutputConfig is settings for the contig writer
type OutputConfig struct {
	// the column at which contig sequences are wrapped
	LineWidth int `mapstructure:"line-width"`
}

// Config is the root-level settings struct and is a mix
// of defaults and command line arguments
type Config struct {
	// Assembly holds graph construction and simplification settings
	Assembly AssemblyConfig

	// Output holds contig serialization settings
	Output OutputConfig
}

// New returns a new Config struct populated by Viper settings
// (defaults and/or command line arguments)
func New() *Config {
	setDefaults()

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings into struct, %v", err)
	}

	return &c
}

// setDefaults registers the fallback value of every setting. Flags
// bound through viper.BindPFlag take precedence over these.
func setDefaults() {
	viper.SetDefault("assembly.kmer-size", 22)
	viper.SetDefault("assembly.seed", 9001)
	viper.SetDefault("assembly.max-passes", 1000)
	viper.SetDefault("output.line-width", 80)
}
