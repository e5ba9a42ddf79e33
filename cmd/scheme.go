package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/codinghedgehog/mlstar/internal/mlst"
	"github.com/spf13/cobra"
)

// schemeCmd is for inspecting a typing scheme without running anything
// against it: it loads the allele catalog and ST tables and prints a
// summary, which also surfaces any format problem in the scheme files.
var schemeCmd = &cobra.Command{
	Use:   "scheme",
	Short: "Load and summarize an MLST scheme",
	Long: `Load the allele catalog and ST profile tables and print a summary:
the locus order, the allele count per locus, and the number of sequence
types. Fails on the same format errors a typing run would fail on.`,
	Run:     runScheme,
	Aliases: []string{"check"},
}

func runScheme(cmd *cobra.Command, args []string) {
	alleles, _ := cmd.Flags().GetStringSlice("alleles")
	profiles, _ := cmd.Flags().GetStringSlice("profiles")
	if len(alleles) == 0 {
		cmd.Help()
		stderr.Fatal("no allele files")
	}

	rep := mlst.NewReporter(os.Stdout)
	cat, err := mlst.ReadCatalog(alleles)
	if err != nil {
		stderr.Fatalf("%v", err)
	}
	fmt.Printf("loci (%d): %s\n", len(cat.Loci), strings.Join(cat.Names(), ", "))
	for _, locus := range cat.Loci {
		fmt.Printf("  %s: %d alleles\n", locus.Name, len(locus.Alleles))
	}

	if len(profiles) > 0 {
		table, err := mlst.LoadTables(profiles, len(cat.Loci), rep)
		if err != nil {
			stderr.Fatalf("%v", err)
		}
		fmt.Printf("sequence types: %d\n", table.Len())
	}
}

func init() {
	schemeCmd.Flags().StringSliceP("alleles", "a", nil, "ordered per-locus allele FASTA files")
	schemeCmd.Flags().StringSliceP("profiles", "p", nil, "ST profile table files")

	rootCmd.AddCommand(schemeCmd)
}
