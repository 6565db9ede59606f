package phonedict

import (
	"strings"
	"unicode"

	"versecraft/internal/core/phoneme"
)

// grapheme rules for out-of-dictionary words, longest pattern first.
// Vowel outputs carry no stress digit; stress is assigned afterwards
var g2pRules = []struct {
	g  string
	ph []string
}{
	{"tch", []string{"CH"}},
	{"igh", []string{"AY"}},
	{"ough", []string{"OW"}},
	{"sch", []string{"S", "K"}},
	{"ch", []string{"CH"}},
	{"sh", []string{"SH"}},
	{"th", []string{"TH"}},
	{"ph", []string{"F"}},
	{"wh", []string{"W"}},
	{"ck", []string{"K"}},
	{"ng", []string{"NG"}},
	{"qu", []string{"K", "W"}},
	{"wr", []string{"R"}},
	{"kn", []string{"N"}},
	{"oo", []string{"UW"}},
	{"ee", []string{"IY"}},
	{"ea", []string{"IY"}},
	{"ai", []string{"EY"}},
	{"ay", []string{"EY"}},
	{"oa", []string{"OW"}},
	{"ow", []string{"AW"}},
	{"ou", []string{"AW"}},
	{"oi", []string{"OY"}},
	{"oy", []string{"OY"}},
	{"au", []string{"AO"}},
	{"aw", []string{"AO"}},
	{"ar", []string{"AA", "R"}},
	{"or", []string{"AO", "R"}},
	{"er", []string{"ER"}},
	{"ir", []string{"ER"}},
	{"ur", []string{"ER"}},
}

var g2pLetters = map[byte][]string{
	'a': {"AE"}, 'e': {"EH"}, 'i': {"IH"}, 'o': {"AA"}, 'u': {"AH"},
	'b': {"B"}, 'd': {"D"}, 'f': {"F"}, 'g': {"G"}, 'h': {"HH"},
	'j': {"JH"}, 'k': {"K"}, 'l': {"L"}, 'm': {"M"}, 'n': {"N"},
	'p': {"P"}, 'r': {"R"}, 's': {"S"}, 't': {"T"}, 'v': {"V"},
	'w': {"W"}, 'x': {"K", "S"}, 'z': {"Z"},
}

func isG2PVowelLetter(b byte) bool {
	switch b {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// graphemePhones derives a best-effort pronunciation for a word absent
// from the dictionary. Returns nil when the word has no letters
func graphemePhones(word string) []phoneme.Phoneme {
	var b strings.Builder
	for _, r := range strings.ToLower(word) {
		if unicode.IsLetter(r) && r < 128 {
			b.WriteRune(r)
		}
	}
	w := b.String()
	if w == "" {
		return nil
	}

	// silent final e: "flame" should not end in a vowel
	if len(w) >= 3 && w[len(w)-1] == 'e' && !isG2PVowelLetter(w[len(w)-2]) {
		if strings.ContainsAny(w[:len(w)-1], "aeiouy") {
			w = w[:len(w)-1]
		}
	}

	var out []string
	for i := 0; i < len(w); {
		matched := false
		for _, r := range g2pRules {
			if strings.HasPrefix(w[i:], r.g) {
				out = append(out, r.ph...)
				i += len(r.g)
				matched = true
				break
			}
		}
		if matched {
			continue
		}
		switch c := w[i]; c {
		case 'c':
			if i+1 < len(w) && (w[i+1] == 'e' || w[i+1] == 'i' || w[i+1] == 'y') {
				out = append(out, "S")
			} else {
				out = append(out, "K")
			}
		case 'y':
			if i == 0 {
				out = append(out, "Y")
			} else {
				out = append(out, "IY")
			}
		default:
			if ph, ok := g2pLetters[c]; ok {
				out = append(out, ph...)
			}
		}
		i++
	}

	// first nucleus takes primary stress, the rest go unstressed
	phs := make([]phoneme.Phoneme, 0, len(out))
	stressed := false
	for _, s := range out {
		p := phoneme.Phoneme(s)
		if p.IsVowel() {
			if !stressed {
				p += "1"
				stressed = true
			} else {
				p += "0"
			}
		}
		phs = append(phs, p)
	}
	if len(phs) == 0 {
		return nil
	}
	return phs
}
