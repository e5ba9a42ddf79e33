// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config is the root-level settings struct and is a mix of settings
// available in an optional settings file and those available from the
// command line
type Config struct {
	// ordered per-locus allele FASTA files; the order defines the
	// column order of profiles and of the ST table
	AlleleFiles []string `mapstructure:"alleles"`

	// ST profile table files, merged in order into one table
	ProfileFiles []string `mapstructure:"profiles"`

	// whether to stop at the first match per locus and per
	// complete-profile table scan
	Fast bool `mapstructure:"fast"`

	// optional path to write the typing report to (stdout otherwise)
	Out string `mapstructure:"out"`
}

// New returns a new Config struct populated by Viper settings (either
// from the settings file and/or command line arguments)
func New() *Config {
	var c Config

	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings into struct, %v", err)
	}

	return &c
}
