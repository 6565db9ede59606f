package normalize

import (
	"testing"
)

// Test table covers each stage and combined pipelines.
func TestNormalize_Table(t *testing.T) {
	n := New()

	tests := []struct {
		name string
		in   string
		out  string
	}{
		{
			name: "identity ascii",
			in:   "silver bells",
			out:  "silver bells",
		},
		{
			name: "utf8 repair drops invalid bytes",
			in:   string([]byte{0xff, 'f', 'o', 'o', 0x80, ' ', 'b', 'a', 'r'}),
			out:  "foo bar",
		},
		{
			name: "case fold",
			in:   "StAyEd",
			out:  "stayed",
		},
		{
			name: "remove zero-widths",
			in:   "r​h‍yme", // ZERO WIDTH SPACE + ZERO WIDTH JOINER
			out:  "rhyme",
		},
		{
			name: "remove combining marks",
			in:   "café", // "café" using combining acute accent
			out:  "cafe",
		},
		{
			name: "width fold fullwidth",
			in:   "ＲＩＭＥ tail", // fullwidth letters
			out:  "rime tail",
		},
		{
			name: "nfkc ligature",
			in:   "oﬃce", // ffi ligature
			out:  "office",
		},
		{
			name: "curly apostrophe in contraction",
			in:   "wouldn’t I’ll",
			out:  "wouldn't i'll",
		},
		{
			name: "em dash to hyphen",
			in:   "rock—hard",
			out:  "rock-hard",
		},
		{
			name: "collapse spaces preserves line breaks",
			in:   "a\t\tb\nc   d",
			out:  "a b\nc d",
		},
		{
			name: "combined normalization",
			in:   "  He​ SAID\uFEFF don’t  \t",
			out:  "he said don't",
		},
		{
			name: "idempotent",
			in:   n.Normalize("Ｄon’t\t\tg‍o  "),
			out:  "don't go",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := n.Normalize(tc.in)
			if got != tc.out {
				t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.out)
			}
			// Idempotence check: normalize again should be identical
			got2 := n.Normalize(got)
			if got2 != got {
				t.Fatalf("Normalize not idempotent: %q -> %q", got, got2)
			}
		})
	}
}

// Spot-check internal helpers in isolation.
func TestApostropheFold(t *testing.T) {
	in := "won’t `tis oʼer – fine"
	want := "won't 'tis o'er - fine"
	got := apostropheFold(in)
	if got != want {
		t.Fatalf("apostropheFold(%q) = %q, want %q", in, got, want)
	}
}

func TestCollapseSpaces(t *testing.T) {
	in := " \t a \n b   c \r\n "
	want := "a\nb c"
	got := collapseSpaces(in)
	if got != want {
		t.Fatalf("collapseSpaces(%q) = %q, want %q", in, got, want)
	}
}
