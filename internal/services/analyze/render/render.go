package render

import (
	"fmt"
	"strings"

	"versecraft/internal/core/morph"
	"versecraft/internal/core/phoneme"
	"versecraft/internal/services/analyze/domain"
)

// morphIPA renders one morpheme as label(ipa)
func morphIPA(m morph.Morpheme) string {
	return m.Label + "(" + phoneme.SeqIPAStressed(m.Phones) + ")"
}

// wordLine renders one word's decomposition: "dogs  NOUN(ˈdɑɡ) + PL(z)"
func wordLine(w domain.WordAnalysis) string {
	parts := make([]string, len(w.Morphemes))
	for i, m := range w.Morphemes {
		parts[i] = morphIPA(m)
	}
	return w.Word + "  " + strings.Join(parts, " + ")
}

// Parse renders a sentence analysis, one word per row
func Parse(s domain.Sentence) string {
	var b strings.Builder
	for i, w := range s.Words {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(wordLine(w))
	}
	return b.String()
}

// Rhyme renders a full rhyme report: the common rime header, then for
// each line its word decompositions, the morpheme span of its rime share,
// and a phone-by-phone attribution
func Rhyme(r domain.RhymeAnalysis) string {
	var b strings.Builder

	if !r.Found {
		b.WriteString("No common rime found.\n")
	} else {
		kind := "exact match"
		if r.Fuzzy {
			kind = "fuzzy match"
		}
		fmt.Fprintf(&b, "Common rime: %s  [%s]  (%s)\n",
			phoneme.Join(r.Phones), phoneme.SeqIPA(r.Phones), kind)
	}

	for i, line := range r.Lines {
		fmt.Fprintf(&b, "\n── Line %d: %s\n", i+1, line.Text)
		for _, w := range line.Words {
			b.WriteString("   " + wordLine(w) + "\n")
		}
		if !r.Found {
			continue
		}

		att := line.Rime
		var (
			spanned []string
			seen    = map[[2]string]bool{}
			phones  []phoneme.Phoneme
		)
		for _, slot := range att.Slots {
			phones = append(phones, slot.Phone)
			key := [2]string{slot.Morph.Word, slot.Morph.Label}
			if !seen[key] {
				seen[key] = true
				spanned = append(spanned, fmt.Sprintf("%s(%s)", slot.Morph.Label, slot.Morph.Word))
			}
		}
		fmt.Fprintf(&b, "   Rime [%s] spans %d morphemes: %s\n",
			phoneme.SeqIPA(phones), att.MorphemeCount, strings.Join(spanned, " + "))
		for _, slot := range att.Slots {
			fmt.Fprintf(&b, "   %-4s [%s]  ← %s (%s)\n",
				string(slot.Phone), phoneme.ToIPA(slot.Phone), slot.Morph.Label, slot.Morph.Word)
		}
	}
	return b.String()
}
