package mlst

import (
	"bufio"
	"strconv"
	"strings"
)

// Row is one known sequence type: an ST identifier plus one allele number
// per locus, in catalog order.
type Row struct {
	ST      int
	Alleles []int
}

// Table is the merged ST profile table. Rows stay in load order so table
// scans are reproducible; index maps an ST id to its row position.
type Table struct {
	rows  []Row
	index map[int]int
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{index: make(map[int]int)}
}

// Len is the number of distinct sequence types loaded.
func (t *Table) Len() int { return len(t.rows) }

// Rows returns the rows in load order. Callers must not mutate them.
func (t *Table) Rows() []Row { return t.rows }

// Lookup returns the row for an ST id.
func (t *Table) Lookup(st int) (Row, bool) {
	i, ok := t.index[st]
	if !ok {
		return Row{}, false
	}
	return t.rows[i], true
}

// add enforces the duplicate policy: a re-loaded ST with the identical
// allele numbers is a warning and is ignored, a conflicting one is fatal.
func (t *Table) add(path string, line int, row Row, rep *Reporter) error {
	if i, ok := t.index[row.ST]; ok {
		if sameAlleles(t.rows[i].Alleles, row.Alleles) {
			rep.Warnf("%s:%d duplicate definition of ST %d, ignored", path, line, row.ST)
			return nil
		}
		return formatErrf(path, line, "ST %d redefined with a conflicting allelic profile", row.ST)
	}
	t.index[row.ST] = len(t.rows)
	t.rows = append(t.rows, row)
	return nil
}

func sameAlleles(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Load merges one profile table file into the table. Each line is an ST
// identifier followed by one allele number per locus, whitespace
// delimited; blank lines and '#' comments are skipped.
func (t *Table) Load(path string, loci int, rep *Reporter) error {
	fh, err := openReader(path)
	if err != nil {
		return err
	}
	defer func() { _ = fh.Close() }()

	sc := bufio.NewScanner(fh)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		f := strings.Fields(line)
		if len(f) != loci+1 {
			return formatErrf(path, ln, "%d columns, want 1 ST id + %d allele numbers", len(f), loci)
		}
		st, err := strconv.Atoi(f[0])
		if err != nil || st <= 0 {
			return formatErrf(path, ln, "bad ST id %q", f[0])
		}
		row := Row{ST: st, Alleles: make([]int, loci)}
		for i, field := range f[1:] {
			n, err := strconv.Atoi(field)
			if err != nil {
				return formatErrf(path, ln, "ST %d: bad allele number %q", st, field)
			}
			row.Alleles[i] = n
		}
		if err := t.add(path, ln, row, rep); err != nil {
			return err
		}
	}
	return sc.Err()
}

// LoadTables builds the single run-wide table from the profile files in
// order. Later files may add new STs but must not conflict with earlier
// ones.
func LoadTables(paths []string, loci int, rep *Reporter) (*Table, error) {
	t := NewTable()
	for _, path := range paths {
		if err := t.Load(path, loci, rep); err != nil {
			return nil, err
		}
	}
	return t, nil
}
