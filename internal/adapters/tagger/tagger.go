package tagger

import (
	"strings"
	"unicode"
)

// Tagger assigns coarse POS, Penn tags, and lemmas to sentence tokens
// using a two pass scheme: a lexicon and suffix baseline, then a
// contextual correction sweep
type Tagger struct{}

// New builds a Tagger backed by the built-in lexicon
func New() *Tagger { return &Tagger{} }

// Tag tokenizes and tags one line of text
func (t *Tagger) Tag(line string) []Token {
	raw := tokenize(line)
	toks := make([]Token, 0, len(raw))
	for i, r := range raw {
		toks = append(toks, baseline(r, i))
	}
	contextual(toks)
	return toks
}

func punctTag(s string) string {
	switch s {
	case ".", "!", "?":
		return "."
	case ",":
		return ","
	case ";", ":", "…":
		return ":"
	case "(", "[", "{":
		return "-LRB-"
	case ")", "]", "}":
		return "-RRB-"
	}
	return "SYM"
}

// tagForPOS fills the citation-form Penn tag when the lexicon entry
// leaves it open
func tagForPOS(pos string) string {
	switch pos {
	case POSVerb:
		return "VB"
	case POSNoun:
		return "NN"
	case POSProper:
		return "NNP"
	case POSAdj:
		return "JJ"
	case POSAdv:
		return "RB"
	}
	return "NN"
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func baseline(raw string, idx int) Token {
	lower := strings.ToLower(raw)

	if len(raw) == 1 && isPunctRune([]rune(raw)[0]) {
		return Token{Text: raw, POS: POSPunct, Tag: punctTag(raw), Lemma: raw, Punct: true}
	}

	if f, ok := irregularForms[lower]; ok {
		return Token{Text: raw, POS: f.pos, Tag: f.tag, Lemma: f.lemma}
	}

	if e, ok := lexicon[lower]; ok {
		tag := e.tag
		if tag == "" {
			tag = tagForPOS(e.pos)
		}
		return Token{Text: raw, POS: e.pos, Tag: tag, Lemma: lower}
	}

	if isNumeric(lower) {
		return Token{Text: raw, POS: POSNum, Tag: "CD", Lemma: lower}
	}

	// a capitalized word past the sentence start reads as a proper noun
	if idx > 0 && unicode.IsUpper([]rune(raw)[0]) {
		return Token{Text: raw, POS: POSProper, Tag: "NNP", Lemma: lower}
	}

	return suffixGuess(raw, lower)
}

// suffixGuess tags an unknown word by its ending, checking stripped
// stems against the lexicon where that disambiguates
func suffixGuess(raw, lower string) Token {
	tok := func(pos, tag string) Token {
		return Token{Text: raw, POS: pos, Tag: tag, Lemma: lemmatize(lower, tag)}
	}

	switch {
	case strings.HasSuffix(lower, "ing") && len(lower) > 4:
		return tok(POSVerb, "VBG")
	case strings.HasSuffix(lower, "ed") && len(lower) > 3:
		return tok(POSVerb, "VBD")
	case strings.HasSuffix(lower, "ly") && len(lower) > 3:
		return tok(POSAdv, "RB")
	case strings.HasSuffix(lower, "est") && len(lower) > 4:
		if l := lemmatize(lower, "JJS"); isKnown(l, POSAdj) {
			return tok(POSAdj, "JJS")
		}
	case strings.HasSuffix(lower, "er") && len(lower) > 3:
		if l := lemmatize(lower, "JJR"); isKnown(l, POSAdj) {
			return tok(POSAdj, "JJR")
		}
		// agent nouns: singer, dreamer
		return tok(POSNoun, "NN")
	}

	if strings.HasSuffix(lower, "s") && !strings.HasSuffix(lower, "ss") && len(lower) > 2 {
		stemN := lemmatize(lower, "NNS")
		stemV := lemmatize(lower, "VBZ")
		switch {
		case isKnown(stemN, POSNoun):
			return tok(POSNoun, "NNS")
		case isKnown(stemV, POSVerb):
			return tok(POSVerb, "VBZ")
		default:
			// unresolved; the contextual pass may flip this to VBZ
			return tok(POSNoun, "NNS")
		}
	}

	for _, suf := range []string{"ness", "ment", "tion", "sion", "ity", "ance", "ence", "ship", "hood", "dom"} {
		if strings.HasSuffix(lower, suf) && len(lower) > len(suf)+2 {
			return tok(POSNoun, "NN")
		}
	}
	for _, suf := range []string{"ful", "ous", "ive", "able", "ible", "less", "ish"} {
		if strings.HasSuffix(lower, suf) && len(lower) > len(suf)+2 {
			return tok(POSAdj, "JJ")
		}
	}

	return tok(POSNoun, "NN")
}

// contextual fixes baseline calls using neighbouring tokens
func contextual(toks []Token) {
	prev := func(i int) *Token {
		for j := i - 1; j >= 0; j-- {
			if !toks[j].Punct {
				return &toks[j]
			}
		}
		return nil
	}

	haveLemma := map[string]bool{"have": true, "'ve": true, "'d": true}

	for i := range toks {
		cur := &toks[i]
		if cur.Punct {
			continue
		}
		p := prev(i)
		if p == nil {
			continue
		}

		switch {
		// a subject to the left turns an ambiguous -s noun into a verb
		case cur.Tag == "NNS" && !isKnown(cur.Lemma, POSNoun) &&
			(p.POS == POSPron || p.POS == POSNoun || p.POS == POSProper):
			retag(cur, POSVerb, "VBZ")

		// modals and infinitival "to" take a bare verb
		case (p.Tag == "MD" || p.Tag == "TO") && (cur.POS == POSNoun && cur.Tag == "NN"):
			retag(cur, POSVerb, "VB")

		// determiners and adjectives precede nouns, not bare verbs
		case (p.POS == POSDet || p.POS == POSAdj) && cur.POS == POSVerb &&
			(cur.Tag == "VB" || cur.Tag == "VBP"):
			retag(cur, POSNoun, "NN")

		// prepositions take nominals
		case p.POS == POSAdp && cur.POS == POSVerb && cur.Tag == "VB":
			retag(cur, POSNoun, "NN")

		// perfect auxiliary flips a past form to a participle
		case cur.Tag == "VBD" && p.POS == POSAux && haveLemma[p.Lemma]:
			cur.Tag = "VBN"
		}
	}
}

func retag(t *Token, pos, tag string) {
	t.POS = pos
	t.Tag = tag
	t.Lemma = lemmatize(strings.ToLower(t.Text), tag)
}
