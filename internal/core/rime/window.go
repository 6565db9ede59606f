// Package rime extracts trailing phoneme windows from decomposed lines and
// aligns them across lines to find the longest shared rime under a bounded
// near-rhyme tolerance
package rime

import (
	"versecraft/internal/core/morph"
	"versecraft/internal/core/phoneme"
)

// MaxSyllables caps how many vowel nuclei, counted from the line's end, a
// rime window may span
const MaxSyllables = 3

// Slot is one phoneme of a window together with the morpheme it belongs to
type Slot struct {
	Phone phoneme.Phoneme
	Morph *morph.Morpheme
}

// Window is the trailing (phoneme, morpheme) sequence of one line, in
// forward order. Recomputed per request, never stored
type Window struct {
	Slots []Slot
}

// Len returns the number of phonemes in the window
func (w Window) Len() int { return len(w.Slots) }

// Phones returns the window's phoneme sequence
func (w Window) Phones() []phoneme.Phoneme {
	out := make([]phoneme.Phoneme, len(w.Slots))
	for i, s := range w.Slots {
		out[i] = s.Phone
	}
	return out
}

// ExtractWindow walks a line backward (last word, last morpheme, last
// phoneme first) and accumulates slots until taking one more phoneme would
// bring a fourth vowel nucleus into the window. Lines with fewer than
// MaxSyllables vowels yield the whole line
func ExtractWindow(words []morph.Word) Window {
	var rev []Slot
	vowels := 0

loop:
	for wi := len(words) - 1; wi >= 0; wi-- {
		ms := words[wi].Morphemes
		for mi := len(ms) - 1; mi >= 0; mi-- {
			m := &ms[mi]
			for pi := len(m.Phones) - 1; pi >= 0; pi-- {
				p := m.Phones[pi]
				if p.IsVowel() {
					vowels++
					if vowels > MaxSyllables {
						break loop
					}
				}
				rev = append(rev, Slot{Phone: p, Morph: m})
			}
		}
	}

	// reverse back to forward order
	slots := make([]Slot, len(rev))
	for i, s := range rev {
		slots[len(rev)-1-i] = s
	}
	return Window{Slots: slots}
}
