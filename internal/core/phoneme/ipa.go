package phoneme

import "strings"

// ipaTable maps bare ARPAbet symbols to IPA
var ipaTable = map[string]string{
	"AA": "ɑ", "AE": "æ", "AH": "ʌ", "AO": "ɔ",
	"AW": "aʊ", "AY": "aɪ",
	"B": "b", "CH": "tʃ", "D": "d", "DH": "ð",
	"EH": "ɛ", "ER": "ɝ", "EY": "eɪ",
	"F": "f", "G": "ɡ", "HH": "h",
	"IH": "ɪ", "IY": "i",
	"JH": "dʒ", "K": "k", "L": "l", "M": "m", "N": "n", "NG": "ŋ",
	"OW": "oʊ", "OY": "ɔɪ",
	"P": "p", "R": "ɹ", "S": "s", "SH": "ʃ", "T": "t", "TH": "θ",
	"UH": "ʊ", "UW": "u",
	"V": "v", "W": "w", "Y": "j", "Z": "z", "ZH": "ʒ",
}

// validOnsets lists the legal English syllable onsets used to place IPA
// stress marks per the Maximal Onset Principle. Single consonants are legal
// onsets except NG
var validOnsets = map[string]struct{}{
	"B": {}, "CH": {}, "D": {}, "DH": {}, "F": {}, "G": {}, "HH": {},
	"JH": {}, "K": {}, "L": {}, "M": {}, "N": {}, "P": {}, "R": {},
	"S": {}, "SH": {}, "T": {}, "TH": {}, "V": {}, "W": {}, "Y": {},
	"Z": {}, "ZH": {},
	// stop or fricative + liquid or glide
	"P L": {}, "P R": {}, "B L": {}, "B R": {}, "T R": {}, "D R": {},
	"K L": {}, "K R": {}, "G L": {}, "G R": {}, "F L": {}, "F R": {},
	"TH R": {}, "SH R": {},
	"S L": {}, "S M": {}, "S N": {}, "S P": {}, "S T": {}, "S K": {},
	"S W": {}, "S F": {},
	"T W": {}, "K W": {}, "D W": {}, "G W": {},
	// consonant + /j/
	"P Y": {}, "B Y": {}, "T Y": {}, "D Y": {}, "K Y": {}, "G Y": {},
	"F Y": {}, "V Y": {}, "TH Y": {}, "M Y": {}, "N Y": {}, "HH Y": {},
	// three-consonant onsets
	"S P L": {}, "S P R": {}, "S T R": {}, "S K R": {},
	"S K W": {}, "S K Y": {}, "S T Y": {}, "S P Y": {},
}

// ToIPA converts a single phoneme to IPA. Unstressed AH and ER render as
// the reduced vowels ə and ɚ. Unknown symbols pass through unchanged so the
// mapping stays total
func ToIPA(p Phoneme) string {
	base := p.Base()
	if base == "AH" && p.Stress() == "0" {
		return "ə"
	}
	if base == "ER" && p.Stress() == "0" {
		return "ɚ"
	}
	if ipa, ok := ipaTable[base]; ok {
		return ipa
	}
	return base
}

// SeqIPA converts a phoneme sequence to a plain IPA string without
// stress marks
func SeqIPA(ps []Phoneme) string {
	var b strings.Builder
	for _, p := range ps {
		b.WriteString(ToIPA(p))
	}
	return b.String()
}

// SeqIPAStressed converts a phoneme sequence to IPA with ˈ and ˌ marks
// placed at syllable onsets: for each stressed vowel the mark goes before
// the longest preceding consonant cluster that forms a valid English onset
func SeqIPAStressed(ps []Phoneme) string {
	markAt := make(map[int]string, 2)
	for i, p := range ps {
		var mark string
		switch p.Stress() {
		case "1":
			mark = "ˈ"
		case "2":
			mark = "ˌ"
		default:
			continue
		}
		markAt[onsetStart(ps, i)] = mark
	}

	var b strings.Builder
	for i, p := range ps {
		if m, ok := markAt[i]; ok {
			b.WriteString(m)
		}
		b.WriteString(ToIPA(p))
	}
	return b.String()
}

// onsetStart returns the index where the syllable onset of the vowel at vi
// begins. Word-initial consonants all join the onset; otherwise the cluster
// is trimmed from the left until it is a valid onset
func onsetStart(ps []Phoneme, vi int) int {
	j := vi - 1
	var cluster []string
	for j >= 0 && !ps[j].IsVowel() {
		cluster = append([]string{ps[j].Base()}, cluster...)
		j--
	}
	if j < 0 {
		return 0
	}
	for k := range cluster {
		if _, ok := validOnsets[strings.Join(cluster[k:], " ")]; ok {
			return vi - len(cluster) + k
		}
	}
	return vi
}
