package mlst

import (
	"fmt"
	"strconv"
	"strings"
)

// Entry is one position of an allelic profile.
type Entry struct {
	// Locus is the locus name for the position
	Locus string

	// Number is the matched allele number; meaningless when Wildcard
	Number int

	// Wildcard marks a locus with no matching allele
	Wildcard bool

	// Reverse marks a match found on the reverse strand
	Reverse bool
}

// Profile is the ordered allelic profile of one reference genome: one
// entry per configured locus, in catalog order, which mirrors the column
// order of the ST profile table.
type Profile struct {
	Entries []Entry

	// Complete is true iff no entry is a wildcard
	Complete bool
}

// String renders the profile the way it appears in report lines, with "-"
// for wildcard positions, e.g. "1,3,-,12".
func (p Profile) String() string {
	var b strings.Builder
	for i, e := range p.Entries {
		if i > 0 {
			b.WriteByte(',')
		}
		if e.Wildcard {
			b.WriteByte('-')
		} else {
			b.WriteString(strconv.Itoa(e.Number))
		}
	}
	return b.String()
}

// BuildProfile invokes the locus matcher once per locus, in catalog order,
// against the reference sequence. An unmatched locus becomes a wildcard
// entry and a warning; the remaining loci are still evaluated. A
// reverse-strand match is recorded and noted. A same-locus ambiguity from
// the matcher is fatal and aborts the build.
func BuildProfile(ref *Reference, cat *Catalog, fast bool, rep *Reporter) (Profile, error) {
	p := Profile{Entries: make([]Entry, 0, len(cat.Loci)), Complete: true}
	for _, locus := range cat.Loci {
		res, err := MatchLocus(ref.Seq, locus, fast)
		if err != nil {
			return Profile{}, fmt.Errorf("reference %s: %w", ref.ID, err)
		}
		if !res.Found {
			p.Entries = append(p.Entries, Entry{Locus: locus.Name, Wildcard: true})
			p.Complete = false
			rep.Warnf("reference %s: no allele found for locus %s", ref.ID, locus.Name)
			continue
		}
		rep.Infof("reference %s: locus %s: allele %s at %d (%s)",
			ref.ID, locus.Name, res.ID, res.Pos, res.Orient)
		if res.Orient == Reverse {
			rep.Notef("reference %s: locus %s allele %s matched on the reverse strand at %d",
				ref.ID, locus.Name, res.ID, res.Pos)
		}
		p.Entries = append(p.Entries, Entry{
			Locus:   locus.Name,
			Number:  res.Number,
			Reverse: res.Orient == Reverse,
		})
	}
	return p, nil
}
