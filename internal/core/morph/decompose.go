// Package morph decomposes a word's phoneme sequence into a root morpheme
// and an inflectional-suffix morpheme using the loaded rule set
package morph

import (
	"versecraft/internal/core/phoneme"
	"versecraft/internal/core/ruleset"
)

// Morpheme is a contiguous slice of a word's phonemes with a label: the POS
// name for roots and base forms, the rule label for suffixes, or POS<TAG>
// for irregular unsegmented forms. Word is the surface word it came from,
// kept for display only
type Morpheme struct {
	Phones []phoneme.Phoneme `json:"phones"`
	Label  string            `json:"label"`
	Word   string            `json:"word"`
}

// Word pairs a surface token with its decomposed morphemes. Concatenating
// the morpheme phoneme sequences in order reproduces the word's phonemes
// exactly
type Word struct {
	Text      string     `json:"text"`
	Morphemes []Morpheme `json:"morphemes"`
}

// Phones returns the word's full phoneme sequence rebuilt from its morphemes
func (w Word) Phones() []phoneme.Phoneme {
	var out []phoneme.Phoneme
	for _, m := range w.Morphemes {
		out = append(out, m.Phones...)
	}
	return out
}

// Decomposer applies inflection rules to word phoneme sequences. The rule
// set is read-only; a Decomposer is safe for concurrent use
type Decomposer struct {
	rules *ruleset.Set
}

// New returns a Decomposer over the given rule set
func New(rules *ruleset.Set) *Decomposer {
	return &Decomposer{rules: rules}
}

// Decompose splits word phonemes into root + suffix morphemes. It never
// fails: with no matching rule, or a word phonetically identical to its
// lemma, the whole word comes back as a single base-form morpheme labeled
// pos; a rule that matches (pos, tag) but strips no candidate cleanly marks
// the word irregular, labeled e.g. VERB<PAST>
func (d *Decomposer) Decompose(word string, wordPhones, lemmaPhones []phoneme.Phoneme, pos, tag string) []Morpheme {
	base := []Morpheme{{Phones: wordPhones, Label: pos, Word: word}}

	rule := d.rules.FindRule(pos, tag)
	if rule == nil {
		return base
	}

	// Word phonetically identical to the lemma: an uninflected surface form.
	// A zero-suffix candidate, if the rule carries one, still applies below;
	// without one this is treated as the base form rather than an irregular
	if phoneme.EqualSeq(wordPhones, lemmaPhones) {
		for _, suffix := range rule.Suffixes {
			if len(suffix) == 0 {
				return []Morpheme{
					{Phones: wordPhones, Label: pos, Word: word},
					{Phones: nil, Label: rule.Label, Word: word},
				}
			}
		}
		return base
	}

	for _, suffix := range rule.Suffixes {
		n := len(suffix)
		if n == 0 || len(wordPhones) <= n {
			continue
		}
		prefix, tail := wordPhones[:len(wordPhones)-n], wordPhones[len(wordPhones)-n:]
		// first candidate that is the word's actual tail AND leaves the
		// lemma's phonemes wins
		if phoneme.EqualSeq(tail, suffix) && phoneme.EqualSeq(prefix, lemmaPhones) {
			return []Morpheme{
				{Phones: prefix, Label: pos, Word: word},
				{Phones: tail, Label: rule.Label, Word: word},
			}
		}
	}

	// rule matched but no clean strip: irregular form, left unsegmented
	return []Morpheme{{Phones: wordPhones, Label: pos + "<" + rule.Label + ">", Word: word}}
}
