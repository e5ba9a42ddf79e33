package mlst

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strings"
)

// Reference is one reference genome: the identifier from the first header
// line of its FASTA file and the concatenation of every sequence line.
type Reference struct {
	ID   string
	Seq  string
	Path string
}

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// openReader opens path, or Stdin for "-". Gzip input is detected by the
// magic number (1F 8B) or a .gz suffix.
func openReader(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	var sig [2]byte
	n, _ := fh.Read(sig[:])
	_, _ = fh.Seek(0, io.SeekStart)
	if (n == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
	}
	return fh, nil
}

// ReadLocus parses one per-locus allele FASTA file into a Locus. Record
// order is preserved: it fixes the candidate-evaluation order during
// matching. Every record id must decompose into the same locus prefix plus
// an allele number, and every sequence character must be an IUPAC
// nucleotide code (sequences are upper-cased first).
func ReadLocus(path string) (*Locus, error) {
	fh, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	locus := &Locus{}
	var cur *Allele
	var seq strings.Builder

	flush := func(line int) error {
		if cur == nil {
			return nil
		}
		if seq.Len() == 0 {
			return formatErrf(path, line, "allele %s has no sequence", cur.ID)
		}
		cur.Seq = seq.String()
		locus.Alleles = append(locus.Alleles, *cur)
		cur = nil
		seq.Reset()
		return nil
	}

	sc := bufio.NewScanner(fh)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line[0] == '>' {
			if err := flush(ln); err != nil {
				return nil, err
			}
			id := strings.Fields(line[1:])
			if len(id) == 0 {
				return nil, formatErrf(path, ln, "empty FASTA header")
			}
			name, number, err := splitAlleleID(id[0])
			if err != nil {
				return nil, formatErrf(path, ln, "%v", err)
			}
			if locus.Name == "" {
				locus.Name = name
			} else if name != locus.Name {
				return nil, formatErrf(path, ln, "allele %s does not belong to locus %s", id[0], locus.Name)
			}
			cur = &Allele{ID: id[0], Number: number}
			continue
		}
		if cur == nil {
			return nil, formatErrf(path, ln, "sequence line before first FASTA header")
		}
		up := strings.ToUpper(line)
		for i := 0; i < len(up); i++ {
			if !validBase(up[i]) {
				return nil, formatErrf(path, ln, "allele %s: invalid nucleotide %q", cur.ID, up[i])
			}
		}
		seq.WriteString(up)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if err := flush(ln); err != nil {
		return nil, err
	}
	if len(locus.Alleles) == 0 {
		return nil, formatErrf(path, 0, "no alleles found")
	}
	return locus, nil
}

// ReadCatalog loads the allele files in the order given; that order
// becomes the locus order of the scheme. A repeated locus name across
// files is malformed.
func ReadCatalog(paths []string) (*Catalog, error) {
	cat := &Catalog{}
	seen := make(map[string]string)
	for _, path := range paths {
		locus, err := ReadLocus(path)
		if err != nil {
			return nil, err
		}
		if prev, ok := seen[locus.Name]; ok {
			return nil, formatErrf(path, 0, "locus %s already loaded from %s", locus.Name, prev)
		}
		seen[locus.Name] = path
		cat.Loci = append(cat.Loci, locus)
	}
	return cat, nil
}

// ReadReference parses one reference FASTA file. The identifier is taken
// from the first header line; every sequence line in the file is
// concatenated into a single sequence, so a file with several
// header-delimited records still yields one Reference under the first id.
// Every sequence character must be one of A, C, G or T; anything else,
// including lower case and IUPAC ambiguity codes, is a FormatError.
func ReadReference(path string) (*Reference, error) {
	fh, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	ref := &Reference{Path: path}
	var seq strings.Builder
	sawHeader := false

	sc := bufio.NewScanner(fh)
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line[0] == '>' {
			if !sawHeader {
				ref.ID = strings.TrimSpace(line[1:])
				if ref.ID == "" {
					return nil, formatErrf(path, ln, "empty FASTA header")
				}
				sawHeader = true
			}
			continue
		}
		if !sawHeader {
			return nil, formatErrf(path, ln, "sequence line before first FASTA header")
		}
		for i := 0; i < len(line); i++ {
			switch line[i] {
			case 'A', 'C', 'G', 'T':
			default:
				return nil, formatErrf(path, ln, "invalid base %q, reference sequences are strict A/C/G/T", line[i])
			}
		}
		seq.WriteString(line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if !sawHeader {
		return nil, formatErrf(path, 0, "no FASTA header found")
	}
	if seq.Len() == 0 {
		return nil, formatErrf(path, 0, "reference %s has no sequence", ref.ID)
	}
	ref.Seq = seq.String()
	return ref, nil
}
