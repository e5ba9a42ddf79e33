package mlst

import (
	"fmt"
	"strconv"
)

// Allele is one known variant of a locus.
type Allele struct {
	// ID is the full identifier from the FASTA header, e.g. "arcc123"
	ID string

	// Number is the numeric suffix of the ID; it is the value recorded in
	// allelic profiles and ST table rows
	Number int

	// Seq is the upper-cased nucleotide sequence, IUPAC codes allowed
	Seq string
}

// Locus is one marker gene fragment of the typing scheme. It owns the
// known alleles in file order: candidate evaluation during matching walks
// this slice, never a map, so results are deterministic.
type Locus struct {
	Name    string
	Alleles []Allele
}

// Catalog is the ordered set of loci. The order the allele files were
// configured in defines the column order of allelic profiles and of the
// ST profile table; it is fixed after loading.
type Catalog struct {
	Loci []*Locus
}

// Names returns the locus names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.Loci))
	for i, l := range c.Loci {
		names[i] = l.Name
	}
	return names
}

// splitAlleleID decomposes an allele identifier into its locus-name prefix
// and numeric suffix, e.g. "arcc123" into "arcc" and 123. An identifier
// with no trailing digits is malformed.
func splitAlleleID(id string) (locus string, number int, err error) {
	i := len(id)
	for i > 0 && id[i-1] >= '0' && id[i-1] <= '9' {
		i--
	}
	if i == len(id) {
		return "", 0, fmt.Errorf("allele id %q has no trailing allele number", id)
	}
	if i == 0 {
		return "", 0, fmt.Errorf("allele id %q has no locus prefix", id)
	}
	number, err = strconv.Atoi(id[i:])
	if err != nil {
		return "", 0, fmt.Errorf("allele id %q: bad allele number: %v", id, err)
	}
	return id[:i], number, nil
}
