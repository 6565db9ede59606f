package rime

import (
	"versecraft/internal/core/morph"
	"versecraft/internal/core/phoneme"
)

// Scheme assigns end-rhyme group letters to lines by pairwise alignment:
// the first unlabeled line opens a new group, and every later unlabeled
// line whose window shares a rime with it joins that group. Lines with
// empty windows never match and so always form their own group
func Scheme(windows []Window) []string {
	letters := make([]string, len(windows))
	next := 0
	for i := range windows {
		if letters[i] != "" {
			continue
		}
		letters[i] = schemeLetter(next)
		next++
		for j := i + 1; j < len(windows); j++ {
			if letters[j] != "" {
				continue
			}
			c, err := Align([]Window{windows[i], windows[j]})
			if err != nil || c == nil {
				continue
			}
			letters[j] = letters[i]
		}
	}
	return letters
}

// schemeLetter spells group n as A..Z, then AA, AB, ...
func schemeLetter(n int) string {
	s := ""
	for {
		s = string(rune('A'+n%26)) + s
		n = n/26 - 1
		if n < 0 {
			return s
		}
	}
}

// Candidate is one end-rime candidate of a line: the trailing slots from a
// stressed vowel to the line's end
type Candidate struct {
	Slots []Slot
}

// Phones returns the candidate's phoneme sequence
func (c Candidate) Phones() []phoneme.Phoneme {
	out := make([]phoneme.Phoneme, len(c.Slots))
	for i, s := range c.Slots {
		out[i] = s.Phone
	}
	return out
}

// Stress returns the stress digit of the candidate's opening vowel
func (c Candidate) Stress() string { return c.Slots[0].Phone.Stress() }

// StressCandidates finds a line's end-rime candidates. The main candidate
// starts at the primary- or secondary-stressed vowel closest to the line's
// end, falling back to the last vowel of any stress. When that vowel
// carries secondary stress, a second candidate from the preceding
// primary-stressed vowel (if one exists) is added
func StressCandidates(words []morph.Word) []Candidate {
	flat := flatten(words)

	last := -1
	for i := len(flat) - 1; i >= 0; i-- {
		p := flat[i].Phone
		if p.IsVowel() && (p.Stress() == "1" || p.Stress() == "2") {
			last = i
			break
		}
	}
	if last < 0 {
		for i := len(flat) - 1; i >= 0; i-- {
			if flat[i].Phone.IsVowel() {
				last = i
				break
			}
		}
	}
	if last < 0 {
		return nil
	}

	cands := []Candidate{{Slots: flat[last:]}}
	if flat[last].Phone.Stress() == "2" {
		for i := last - 1; i >= 0; i-- {
			p := flat[i].Phone
			if p.IsVowel() && p.Stress() == "1" {
				cands = append(cands, Candidate{Slots: flat[i:]})
				break
			}
		}
	}
	return cands
}

// flatten expands a line into slots in forward order, uncapped
func flatten(words []morph.Word) []Slot {
	var out []Slot
	for wi := range words {
		ms := words[wi].Morphemes
		for mi := range ms {
			m := &ms[mi]
			for _, p := range m.Phones {
				out = append(out, Slot{Phone: p, Morph: m})
			}
		}
	}
	return out
}
