package tagger

import "strings"

// isKnown reports whether w is a lexicon citation form with the given
// coarse POS
func isKnown(w, pos string) bool {
	e, ok := lexicon[w]
	return ok && e.pos == pos
}

// stripCandidates returns plausible stems for a suffix, most specific
// first. Each candidate is (strip, append)
func stripCandidates(w, suffix string) []string {
	if !strings.HasSuffix(w, suffix) || len(w) <= len(suffix) {
		return nil
	}
	stem := w[:len(w)-len(suffix)]
	cands := []string{stem, stem + "e"}
	if strings.HasSuffix(stem, "i") {
		cands = append(cands, stem[:len(stem)-1]+"y")
	}
	// undouble a final consonant: stopped -> stop
	if len(stem) >= 2 && stem[len(stem)-1] == stem[len(stem)-2] {
		cands = append(cands, stem[:len(stem)-1])
	}
	return cands
}

// lemmatize produces the citation form for an inflected word given its
// Penn tag. Irregular forms are resolved before this is called
func lemmatize(word, tag string) string {
	var suffix, pos string
	switch tag {
	case "NNS", "NNPS":
		suffix, pos = "s", POSNoun
	case "VBZ":
		suffix, pos = "s", POSVerb
	case "VBD", "VBN":
		suffix, pos = "ed", POSVerb
	case "VBG":
		suffix, pos = "ing", POSVerb
	case "JJR":
		suffix, pos = "er", POSAdj
	case "JJS":
		suffix, pos = "est", POSAdj
	case "RBR":
		suffix, pos = "er", POSAdv
	case "RBS":
		suffix, pos = "est", POSAdv
	default:
		return word
	}

	// a lexicon hit beats shape rules: roses -> rose, making -> make
	for _, c := range stripCandidates(word, suffix) {
		if isKnown(c, pos) {
			return c
		}
	}

	// shape fallback for words outside the lexicon
	switch {
	case suffix == "s":
		if strings.HasSuffix(word, "ies") && len(word) > 4 {
			return word[:len(word)-3] + "y"
		}
		for _, sib := range []string{"ses", "xes", "zes", "ches", "shes"} {
			if strings.HasSuffix(word, sib) {
				return word[:len(word)-2]
			}
		}
		if strings.HasSuffix(word, "s") && !strings.HasSuffix(word, "ss") {
			return word[:len(word)-1]
		}
	case strings.HasSuffix(word, "i"+suffix): // tried, happier
		return word[:len(word)-len(suffix)-1] + "y"
	case strings.HasSuffix(word, suffix):
		stem := word[:len(word)-len(suffix)]
		if len(stem) >= 2 && stem[len(stem)-1] == stem[len(stem)-2] {
			return stem[:len(stem)-1]
		}
		return stem
	}
	return word
}
