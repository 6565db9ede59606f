// Package tagger provides a lexicon and heuristic part of speech tagger
// with Penn Treebank tags, lemmas, and contraction-aware tokenization
package tagger

// Token is one surface token of a tagged sentence
type Token struct {
	// Text is the surface form as it appeared (post normalization)
	Text string
	// POS is the coarse universal part of speech (NOUN, VERB, ADJ, ...)
	POS string
	// Tag is the fine-grained Penn Treebank tag (NNS, VBD, JJR, ...)
	Tag string
	// Lemma is the dictionary citation form
	Lemma string
	// Punct marks punctuation tokens, which callers usually filter
	Punct bool
}

// Coarse POS values
const (
	POSNoun    = "NOUN"
	POSProper  = "PROPN"
	POSVerb    = "VERB"
	POSAux     = "AUX"
	POSAdj     = "ADJ"
	POSAdv     = "ADV"
	POSPron    = "PRON"
	POSDet     = "DET"
	POSAdp     = "ADP"
	POSConj    = "CONJ"
	POSNum     = "NUM"
	POSPart    = "PART"
	POSPunct   = "PUNCT"
	POSUnknown = "X"
)
