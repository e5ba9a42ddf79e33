package mlst

// STMatch is one resolved candidate sequence type for a profile.
type STMatch struct {
	ST      int
	Alleles []int
}

// matches reports whether a table row satisfies the profile: wildcard
// positions accept any allele number, concrete positions must be equal.
// Cardinality must match exactly, wildcards never skip positions.
func (p Profile) matches(row Row) bool {
	if len(row.Alleles) != len(p.Entries) {
		return false
	}
	for i, e := range p.Entries {
		if e.Wildcard {
			continue
		}
		if row.Alleles[i] != e.Number {
			return false
		}
	}
	return true
}

// Resolve scans the ST table for rows matching the profile.
//
// A complete profile must resolve to at most one ST: a second match is a
// fatal AmbiguityError. A partial profile legitimately matches several
// rows and all of them are returned as candidates.
//
// With fast set the scan stops at the first match, but only for complete
// profiles; a partial profile is always scanned to completion since every
// candidate must be reported.
func Resolve(p Profile, t *Table, fast bool) ([]STMatch, error) {
	var matches []STMatch
	for _, row := range t.Rows() {
		if !p.matches(row) {
			continue
		}
		matches = append(matches, STMatch{ST: row.ST, Alleles: row.Alleles})
		if p.Complete {
			if len(matches) > 1 {
				return nil, ambiguityErrf(
					"complete profile %s matches ST %d and ST %d, table is inconsistent",
					p.String(), matches[0].ST, matches[1].ST)
			}
			if fast {
				break
			}
		}
	}
	return matches, nil
}
