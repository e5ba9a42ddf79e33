// Package cmd is for command line interactions with the mlstar application
package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "mlstar",
	Short: `Assign MLST sequence types to reference genomes.
Detects which known allele of each locus is present and resolves the
allelic profile against a table of known sequence types`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

func init() {
	cobra.OnInitialize(readSettings)

	// settings is an optional parameter for a settings file with the
	// alleles, profiles, fast and out keys
	rootCmd.PersistentFlags().StringP("settings", "s", "", "optional settings file")
	viper.BindPFlag("settings", rootCmd.PersistentFlags().Lookup("settings"))
}

// readSettings reads the optional settings file into viper before any
// command runs. Flags bound to the same keys override the file.
func readSettings() {
	settings := viper.GetString("settings")
	if settings == "" {
		return
	}
	viper.SetConfigFile(settings)
	if err := viper.ReadInConfig(); err != nil {
		stderr.Fatalf("failed to read settings file %s: %v", settings, err)
	}
}
