package tagger

import "strings"

// clitics that split off the end of a word, longest first so "'ll"
// wins over "'l"
var clitics = []string{"n't", "'ll", "'re", "'ve", "'d", "'s", "'m"}

func isPunctRune(r rune) bool {
	switch r {
	case '.', ',', '!', '?', ';', ':', '"', '(', ')', '[', ']', '{', '}', '…':
		return true
	}
	return false
}

// tokenize splits a line into raw tokens. Punctuation is peeled off
// word edges into its own tokens and clitic contractions are split so
// "wouldn't" yields "would" + "n't"
func tokenize(line string) []string {
	var out []string
	for _, field := range strings.Fields(line) {
		out = appendToken(out, field)
	}
	return out
}

func appendToken(out []string, tok string) []string {
	if tok == "" {
		return out
	}

	// leading punctuation
	r := []rune(tok)
	if isPunctRune(r[0]) {
		out = append(out, string(r[0]))
		return appendToken(out, string(r[1:]))
	}

	// trailing punctuation peels off after the rest is handled
	if last := r[len(r)-1]; isPunctRune(last) {
		out = appendToken(out, string(r[:len(r)-1]))
		return append(out, string(last))
	}

	lower := strings.ToLower(tok)
	for _, cl := range clitics {
		if len(lower) > len(cl) && strings.HasSuffix(lower, cl) {
			base := tok[:len(tok)-len(cl)]
			// possessive plural like "dogs'" keeps its apostrophe out
			if base == "" || strings.HasSuffix(base, "'") {
				break
			}
			out = appendToken(out, base)
			return append(out, lower[len(lower)-len(cl):])
		}
	}
	return append(out, tok)
}
