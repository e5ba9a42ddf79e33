package mlst

import "strings"

// Orientation is the strand a locus match was found on.
type Orientation int

const (
	// Forward means the allele sequence itself occurs in the reference
	Forward Orientation = iota

	// Reverse means only the reverse complement of the allele occurs
	Reverse
)

func (o Orientation) String() string {
	if o == Reverse {
		return "reverse"
	}
	return "forward"
}

// LocusResult is the outcome of matching one locus against one reference.
type LocusResult struct {
	// Locus is the locus name
	Locus string

	// Found is false when no allele of the locus occurs in the reference;
	// the profile entry for the locus becomes a wildcard
	Found bool

	// ID and Number identify the matched allele when Found
	ID     string
	Number int

	// Orient is the strand the match was found on
	Orient Orientation

	// Pos is the 0-based offset of the first occurrence in the reference,
	// in reference coordinates for either orientation
	Pos int
}

// MatchLocus tests every allele of the locus against the reference
// sequence, in the order the alleles were loaded. An allele matches if its
// sequence, or its reverse complement, occurs as a contiguous substring.
//
// A second matching allele within the locus is a fatal AmbiguityError: a
// locus carries exactly one allele in a genome. With fast set, matching
// stops at the first hit, which skips that check by construction.
func MatchLocus(ref string, locus *Locus, fast bool) (LocusResult, error) {
	res := LocusResult{Locus: locus.Name}
	for _, a := range locus.Alleles {
		found, orient, pos := findAllele(ref, a.Seq)
		if !found {
			continue
		}
		if res.Found {
			return res, ambiguityErrf(
				"locus %s: alleles %s and %s both present, a locus may carry only one allele",
				locus.Name, res.ID, a.ID)
		}
		res.Found = true
		res.ID = a.ID
		res.Number = a.Number
		res.Orient = orient
		res.Pos = pos
		if fast {
			break
		}
	}
	return res, nil
}

// findAllele locates seq in ref, trying the forward strand first. When the
// allele occurs in both orientations the forward hit wins.
func findAllele(ref, seq string) (bool, Orientation, int) {
	if seq == "" {
		return false, Forward, 0
	}
	if i := strings.Index(ref, seq); i >= 0 {
		return true, Forward, i
	}
	if i := strings.Index(ref, RevComp(seq)); i >= 0 {
		return true, Reverse, i
	}
	return false, Forward, 0
}
