package mlst

import (
	"errors"
	"strings"
	"testing"
)

// writeScheme lays down a two-locus scheme: arcc{1,2,4}, aroe{1,2}, and
// STs 5=(1,1), 9=(1,2), 12=(4,2).
func writeScheme(t *testing.T) (alleles, profiles []string) {
	t.Helper()
	arcc := writeFile(t, "arcc.fa", `>arcc1
ACGTACGT
>arcc2
GGGGTTTT
>arcc4
AATTCCGG
`)
	aroe := writeFile(t, "aroe.fa", `>aroe1
CCCCAAAA
>aroe2
GAGAGACC
`)
	st := writeFile(t, "profiles.txt", `5 1 1
9 1 2
12 4 2
`)
	return []string{arcc, aroe}, []string{st}
}

func TestTypeAllComplete(t *testing.T) {
	alleles, profiles := writeScheme(t)
	rep, _, report := testReporter()
	run, err := NewRun(alleles, profiles, false, rep)
	if err != nil {
		t.Fatalf("NewRun: %v", err)
	}

	ref := writeFile(t, "genome.fa", ">genomeA\nGGACGTACGTTTCCCCAAAAGG\n")
	if err := run.TypeAll([]string{ref}); err != nil {
		t.Fatalf("TypeAll: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(report.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("report has %d lines, expected header + 1: %q", len(lines), report.String())
	}
	if lines[0] != "Reference\tST\tarcc\taroe" {
		t.Errorf("header %q", lines[0])
	}
	if lines[1] != "genomeA\t5\t1\t1" {
		t.Errorf("report line %q, expected genomeA ST 5 profile 1,1", lines[1])
	}
}

func TestTypeAllPartial(t *testing.T) {
	alleles, profiles := writeScheme(t)
	rep, diag, report := testReporter()
	run, err := NewRun(alleles, profiles, false, rep)
	if err != nil {
		t.Fatalf("NewRun: %v", err)
	}

	// arcc1 present, aroe missing: candidates are STs 5 and 9
	ref := writeFile(t, "genome.fa", ">genomeB\nGGACGTACGTGG\n")
	if err := run.TypeAll([]string{ref}); err != nil {
		t.Fatalf("TypeAll: %v", err)
	}

	if !strings.Contains(report.String(), "genomeB\t5,9\t1\t-") {
		t.Errorf("report %q missing the candidate list line", report.String())
	}
	// one warning for the unmatched locus, one for the ambiguous lookup
	if rep.Warnings != 2 {
		t.Errorf("got %d warnings, expected 2", rep.Warnings)
	}
	if !strings.Contains(diag.String(), "incomplete profile") {
		t.Errorf("missing ambiguity warning in %q", diag.String())
	}
}

func TestTypeAllNoAssignment(t *testing.T) {
	alleles, profiles := writeScheme(t)
	rep, _, report := testReporter()
	run, err := NewRun(alleles, profiles, false, rep)
	if err != nil {
		t.Fatalf("NewRun: %v", err)
	}

	// complete profile (2,2) is not in the table
	ref := writeFile(t, "genome.fa", ">genomeC\nTTGGGGTTTTAAGAGAGACCAA\n")
	if err := run.TypeAll([]string{ref}); err != nil {
		t.Fatalf("TypeAll: %v", err)
	}
	if !strings.Contains(report.String(), "genomeC\t-\t2\t2") {
		t.Errorf("report %q, expected an unassigned row", report.String())
	}
}

// a fatal ambiguity on one reference aborts the run
func TestTypeAllAbortsOnAmbiguity(t *testing.T) {
	alleles, profiles := writeScheme(t)
	rep, _, _ := testReporter()
	run, err := NewRun(alleles, profiles, false, rep)
	if err != nil {
		t.Fatalf("NewRun: %v", err)
	}

	bad := writeFile(t, "bad.fa", ">bad\nACGTACGTCCGGGGTTTT\n")
	good := writeFile(t, "good.fa", ">good\nGGACGTACGTTTCCCCAAAAGG\n")

	err = run.TypeAll([]string{bad, good})
	var ambErr *AmbiguityError
	if !errors.As(err, &ambErr) {
		t.Fatalf("expected AmbiguityError, got %v", err)
	}
}

func TestTypeAllFormatErrorIsFatal(t *testing.T) {
	alleles, profiles := writeScheme(t)
	rep, _, _ := testReporter()
	run, err := NewRun(alleles, profiles, false, rep)
	if err != nil {
		t.Fatalf("NewRun: %v", err)
	}

	bad := writeFile(t, "bad.fa", ">bad\nACGTN\n")
	err = run.TypeAll([]string{bad})
	var fmtErr *FormatError
	if !errors.As(err, &fmtErr) {
		t.Fatalf("expected FormatError, got %v", err)
	}
}

// the same reference always yields the same report
func TestTypeReferenceDeterministic(t *testing.T) {
	ref := writeFile(t, "genome.fa", ">genomeA\nGGACGTACGTTTCCCCAAAAGG\n")

	var first string
	for i := 0; i < 5; i++ {
		alleles, profiles := writeScheme(t)
		rep, _, report := testReporter()
		run, err := NewRun(alleles, profiles, false, rep)
		if err != nil {
			t.Fatalf("NewRun: %v", err)
		}
		if err := run.TypeAll([]string{ref}); err != nil {
			t.Fatalf("TypeAll: %v", err)
		}
		if i == 0 {
			first = report.String()
		} else if report.String() != first {
			t.Fatalf("run %d differs:\n%q\n%q", i, report.String(), first)
		}
	}
}
