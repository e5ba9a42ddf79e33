package mlst

import "testing"

func TestRevComp(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"single base", "A", "T"},
		{"plain", "AATTCCGG", "CCGGAATT"},
		{"palindrome", "ACGTACGT", "ACGTACGT"},
		{"iupac codes", "RYSWKM", "KMWSRY"},
		{"degenerate classes", "BDHVN", "NBDHV"},
		{"unknown byte becomes N", "AXG", "CNT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RevComp(tt.in); got != tt.want {
				t.Errorf("RevComp(%q) = %q, expected %q", tt.in, got, tt.want)
			}
		})
	}
}

// the reverse complement is an involution over the IUPAC alphabet
func TestRevCompInvolution(t *testing.T) {
	seqs := []string{
		"A", "ACGT", "AATTCCGG", "TTTTGGGG",
		"RYSWKMBDHVN", "ACGTNRYACGT", "GATTACA",
	}
	for _, s := range seqs {
		if got := RevComp(RevComp(s)); got != s {
			t.Errorf("RevComp(RevComp(%q)) = %q", s, got)
		}
	}
}

func TestValidBase(t *testing.T) {
	for _, b := range []byte("ACGTRYSWKMBDHVN") {
		if !validBase(b) {
			t.Errorf("validBase(%q) = false", b)
		}
	}
	for _, b := range []byte("acgtnXZ-. 1") {
		if validBase(b) {
			t.Errorf("validBase(%q) = true", b)
		}
	}
}
