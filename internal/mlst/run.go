package mlst

import (
	"strconv"
	"strings"
)

// Run is a loaded typing scheme plus the settings for one typing run. The
// catalog and table are read-only once NewRun returns; per-reference state
// lives in the profile built for that reference.
type Run struct {
	Catalog *Catalog
	Table   *Table

	// Fast enables early-stop matching: stop at the first hit per locus
	// and at the first table row matching a complete profile. Trades
	// ambiguity detection for speed.
	Fast bool

	rep *Reporter
}

// NewRun loads the allele catalog and merges the ST profile tables.
func NewRun(alleleFiles, profileFiles []string, fast bool, rep *Reporter) (*Run, error) {
	cat, err := ReadCatalog(alleleFiles)
	if err != nil {
		return nil, err
	}
	table, err := LoadTables(profileFiles, len(cat.Loci), rep)
	if err != nil {
		return nil, err
	}
	rep.Infof("scheme loaded: %d loci (%s), %d sequence types",
		len(cat.Loci), strings.Join(cat.Names(), ","), table.Len())
	return &Run{Catalog: cat, Table: table, Fast: fast, rep: rep}, nil
}

// TypeAll types each reference genome in turn and writes the report. A
// fatal error on any reference aborts the remaining ones.
func (r *Run) TypeAll(paths []string) error {
	r.rep.Reportf("Reference\tST\t%s\n", strings.Join(r.Catalog.Names(), "\t"))
	for _, path := range paths {
		if err := r.TypeReference(path); err != nil {
			return err
		}
	}
	return nil
}

// TypeReference runs one reference genome end to end: read, build the
// allelic profile, resolve it against the table, report.
func (r *Run) TypeReference(path string) error {
	ref, err := ReadReference(path)
	if err != nil {
		return err
	}
	r.rep.Infof("reference %s: %d bases", ref.ID, len(ref.Seq))

	profile, err := BuildProfile(ref, r.Catalog, r.Fast, r.rep)
	if err != nil {
		return err
	}

	matches, err := Resolve(profile, r.Table, r.Fast)
	if err != nil {
		return err
	}

	switch {
	case len(matches) == 0:
		r.rep.Infof("reference %s: profile %s matches no known sequence type", ref.ID, profile)
	case len(matches) > 1:
		// only reachable for partial profiles, Resolve rejects the rest
		r.rep.Warnf("reference %s: incomplete profile %s is ambiguous, %d candidate sequence types",
			ref.ID, profile, len(matches))
	}

	r.rep.Reportf("%s\t%s\t%s\n", ref.ID, stColumn(matches), strings.Join(profileColumns(profile), "\t"))
	return nil
}

// stColumn renders the ST report column: "-" when unassigned, one id on a
// clean assignment, a comma list of candidates for a partial profile.
func stColumn(matches []STMatch) string {
	if len(matches) == 0 {
		return "-"
	}
	ids := make([]string, len(matches))
	for i, m := range matches {
		ids[i] = strconv.Itoa(m.ST)
	}
	return strings.Join(ids, ",")
}

func profileColumns(p Profile) []string {
	cols := make([]string, len(p.Entries))
	for i, e := range p.Entries {
		if e.Wildcard {
			cols[i] = "-"
		} else {
			cols[i] = strconv.Itoa(e.Number)
		}
	}
	return cols
}
