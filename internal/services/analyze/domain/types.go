// Package domain defines the analyze service types and ports
package domain

import (
	"versecraft/internal/core/morph"
	"versecraft/internal/core/phoneme"
	"versecraft/internal/core/rime"
)

// WordAnalysis is one content word of a parsed sentence: its tagging, its
// pronunciation, and its morpheme decomposition
type WordAnalysis struct {
	Word      string            `json:"word"`
	Lemma     string            `json:"lemma"`
	POS       string            `json:"pos"`
	Tag       string            `json:"tag"`
	Phones    []phoneme.Phoneme `json:"phones"`
	Morphemes []morph.Morpheme  `json:"morphemes"`
}

// Sentence is a fully parsed input line. Punctuation tokens are dropped;
// Words keeps surface order
type Sentence struct {
	Text  string         `json:"text"`
	Words []WordAnalysis `json:"words"`
}

// MorphWords converts the sentence to the morphology words the rime
// extractor consumes
func (s Sentence) MorphWords() []morph.Word {
	out := make([]morph.Word, len(s.Words))
	for i, w := range s.Words {
		out[i] = morph.Word{Text: w.Word, Morphemes: w.Morphemes}
	}
	return out
}

// RhymeLine is one input line's share of a rhyme analysis: its full parse
// plus the attribution of the common rime onto its own phonemes
type RhymeLine struct {
	Sentence
	Rime rime.Attribution `json:"-"`
}

// RhymeAnalysis is the outcome of aligning two or more lines. Found false
// means the lines share no rime under the matching rules; Phones and Fuzzy
// are only meaningful when Found is true
type RhymeAnalysis struct {
	Found  bool              `json:"found"`
	Phones []phoneme.Phoneme `json:"phones,omitempty"`
	Fuzzy  bool              `json:"fuzzy,omitempty"`
	Lines  []RhymeLine       `json:"lines"`
}

// SchemeLine is one poem line with its assigned rhyme-group letter and its
// end-rime candidate rendered in IPA
type SchemeLine struct {
	Sentence
	Letter     string `json:"letter"`
	RimeStress string `json:"rime_stress,omitempty"` // stress digit of the candidate's opening vowel
	RimeIPA    string `json:"rime_ipa,omitempty"`
	AltIPA     string `json:"alt_ipa,omitempty"` // candidate from the preceding primary stress, if any
}

// SchemeGroup collects the lines sharing a scheme letter and, when at
// least two of them align, their common rime
type SchemeGroup struct {
	Letter   string            `json:"letter"`
	LineNums []int             `json:"line_nums"` // 1-indexed input positions
	Found    bool              `json:"found"`
	Phones   []phoneme.Phoneme `json:"phones,omitempty"`
	Fuzzy    bool              `json:"fuzzy,omitempty"`
}

// SchemeAnalysis is the detected end-rhyme scheme of a poem: one letter
// per line plus per-group rime summaries
type SchemeAnalysis struct {
	Scheme string        `json:"scheme"`
	Lines  []SchemeLine  `json:"lines"`
	Groups []SchemeGroup `json:"groups"`
}
