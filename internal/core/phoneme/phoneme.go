// Package phoneme defines the ARPAbet phoneme value type shared by the
// morphology and rime packages, plus the phonological lookup tables
// (vowel nuclei, voicing pairs, ARPAbet to IPA)
package phoneme

import "strings"

// Phoneme is one ARPAbet symbol. Vowels carry a trailing stress digit
// (0 unstressed, 1 primary, 2 secondary); consonants never do
type Phoneme string

// vowelBases is the set of ARPAbet vowel symbols (stress digit stripped)
var vowelBases = map[string]struct{}{
	"AA": {}, "AE": {}, "AH": {}, "AO": {}, "AW": {}, "AY": {},
	"EH": {}, "ER": {}, "EY": {},
	"IH": {}, "IY": {},
	"OW": {}, "OY": {},
	"UH": {}, "UW": {},
}

// voicingPair maps each member of a voiced/voiceless consonant pair to its
// counterpart. Pairs differ only in vocal-cord voicing and are treated as
// near-equivalent for rhyme
var voicingPair = map[string]string{
	"P": "B", "B": "P",
	"T": "D", "D": "T",
	"K": "G", "G": "K",
	"F": "V", "V": "F",
	"S": "Z", "Z": "S",
	"SH": "ZH", "ZH": "SH",
	"CH": "JH", "JH": "CH",
	"TH": "DH", "DH": "TH",
}

// voiceless marks the voiceless member of each voicing pair, used to pick a
// canonical representative when two lines differ only in voicing
var voiceless = map[string]struct{}{
	"P": {}, "T": {}, "K": {}, "F": {}, "S": {}, "SH": {}, "CH": {}, "TH": {},
}

// Base returns the symbol with any stress digit stripped
func (p Phoneme) Base() string {
	return strings.TrimRight(string(p), "012")
}

// Stress returns the stress digit ("0", "1", "2") or "" for consonants
func (p Phoneme) Stress() string {
	return string(p)[len(p.Base()):]
}

// IsVowel reports whether p is a syllable nucleus
func (p Phoneme) IsVowel() bool {
	_, ok := vowelBases[p.Base()]
	return ok
}

// EqualBase reports whether two phonemes share a base symbol, ignoring stress
func (p Phoneme) EqualBase(q Phoneme) bool { return p.Base() == q.Base() }

// VoicingPairOf returns the voicing counterpart of a consonant and whether
// the symbol belongs to a voicing pair
func VoicingPairOf(base string) (string, bool) {
	v, ok := voicingPair[base]
	return v, ok
}

// IsVoicingPair reports whether two consonant bases differ only in voicing
func IsVoicingPair(a, b string) bool {
	v, ok := voicingPair[a]
	return ok && v == b
}

// Devoice returns the voiceless member of a voicing pair, or base unchanged
// when the symbol is not part of one
func Devoice(base string) string {
	if _, ok := voiceless[base]; ok {
		return base
	}
	if v, ok := VoicingPairOf(base); ok {
		return v
	}
	return base
}

// Valid reports whether p is a well-formed ARPAbet phoneme: a known symbol,
// with a stress digit present iff the symbol is a vowel
func (p Phoneme) Valid() bool {
	base := p.Base()
	if _, ok := vowelBases[base]; ok {
		return p.Stress() != ""
	}
	_, ok := ipaTable[base]
	return ok && p.Stress() == ""
}

// Seq converts a slice of raw symbol strings into phonemes
func Seq(symbols ...string) []Phoneme {
	out := make([]Phoneme, len(symbols))
	for i, s := range symbols {
		out[i] = Phoneme(s)
	}
	return out
}

// ParseSeq splits a space-separated ARPAbet string into phonemes.
// Empty input yields nil
func ParseSeq(s string) []Phoneme {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil
	}
	return Seq(fields...)
}

// Join renders a phoneme sequence as a space-separated string
func Join(ps []Phoneme) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = string(p)
	}
	return strings.Join(parts, " ")
}

// EqualSeq reports exact phoneme-by-phoneme equality, stress included
func EqualSeq(a, b []Phoneme) bool {
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

// CountVowels returns the number of syllable nuclei in ps
func CountVowels(ps []Phoneme) int {
	n := 0
	for _, p := range ps {
		if p.IsVowel() {
			n++
		}
	}
	return n
}

// MergeAOAA rewrites AO to AA (stress preserved), collapsing the caught-cot
// distinction. Applied at dictionary load when the merger is enabled
func MergeAOAA(ps []Phoneme) []Phoneme {
	out := make([]Phoneme, len(ps))
	for i, p := range ps {
		if p.Base() == "AO" {
			out[i] = Phoneme("AA" + p.Stress())
		} else {
			out[i] = p
		}
	}
	return out
}
