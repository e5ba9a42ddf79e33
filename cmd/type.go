package cmd

import (
	"os"

	"github.com/codinghedgehog/mlstar/config"
	"github.com/codinghedgehog/mlstar/internal/mlst"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// typeCmd is for typing reference genomes against an MLST scheme.
var typeCmd = &cobra.Command{
	Use:   "type [reference.fa ...]",
	Short: "Type reference genomes against an MLST scheme",
	Long: `Type one or more reference genomes against an MLST scheme.

For each reference genome, every configured locus is searched for its
known alleles, on both strands, to build an allelic profile. The profile
is then resolved against the merged ST profile table. A complete profile
resolves to exactly one sequence type or none; an incomplete profile
(a locus with no matching allele) resolves to a list of candidates.

The order of the allele files defines the column order of the profile and
must mirror the column order of the ST table files.`,
	Run:  runType,
	Args: cobra.MinimumNArgs(1),
}

func runType(cmd *cobra.Command, args []string) {
	c := config.New()
	if len(c.AlleleFiles) == 0 {
		cmd.Help()
		stderr.Fatal("no allele files: pass --alleles or set alleles in the settings file")
	}
	if len(c.ProfileFiles) == 0 {
		cmd.Help()
		stderr.Fatal("no ST table files: pass --profiles or set profiles in the settings file")
	}

	out := os.Stdout
	if c.Out != "" {
		fh, err := os.Create(c.Out)
		if err != nil {
			stderr.Fatalf("failed to create report file: %v", err)
		}
		defer fh.Close()
		out = fh
	}

	rep := mlst.NewReporter(out)
	run, err := mlst.NewRun(c.AlleleFiles, c.ProfileFiles, c.Fast, rep)
	if err != nil {
		stderr.Fatalf("%v", err)
	}
	if err := run.TypeAll(args); err != nil {
		stderr.Fatalf("%v", err)
	}
	rep.Summary()
}

// set flags
func init() {
	typeCmd.Flags().StringSliceP("alleles", "a", nil, "ordered per-locus allele FASTA files")
	typeCmd.Flags().StringSliceP("profiles", "p", nil, "ST profile table files, merged in order")
	typeCmd.Flags().BoolP("fast", "f", false, "stop at the first match per locus and per complete profile")
	typeCmd.Flags().StringP("out", "o", "", "write the typing report to a file instead of stdout")

	// Bind the parameters to viper
	viper.BindPFlag("alleles", typeCmd.Flags().Lookup("alleles"))
	viper.BindPFlag("profiles", typeCmd.Flags().Lookup("profiles"))
	viper.BindPFlag("fast", typeCmd.Flags().Lookup("fast"))
	viper.BindPFlag("out", typeCmd.Flags().Lookup("out"))

	rootCmd.AddCommand(typeCmd)
}
