// Package render formats analysis results as aligned plain text for the
// CLI tools and the text fields of the HTTP responses
package render

import (
	"strings"
	"unicode/utf8"

	"versecraft/internal/core/phoneme"
	"versecraft/internal/services/analyze/domain"
)

// Gloss renders a three-row interlinear gloss: surface words, IPA with
// hyphens at morpheme joints, and morpheme labels. Columns are padded to
// the widest cell and separated by two spaces
func Gloss(s domain.Sentence) string {
	if len(s.Words) == 0 {
		return ""
	}

	rows := [3][]string{}
	for _, w := range s.Words {
		ipas := make([]string, len(w.Morphemes))
		labels := make([]string, len(w.Morphemes))
		for i, m := range w.Morphemes {
			ipas[i] = phoneme.SeqIPAStressed(m.Phones)
			labels[i] = m.Label
		}
		rows[0] = append(rows[0], " "+w.Word)
		rows[1] = append(rows[1], "/"+strings.Join(ipas, "-")+"/")
		rows[2] = append(rows[2], " "+strings.Join(labels, "-"))
	}

	var b strings.Builder
	for ri, row := range rows {
		if ri > 0 {
			b.WriteByte('\n')
		}
		for ci, cell := range row {
			if ci > 0 {
				b.WriteString("  ")
			}
			b.WriteString(cell)
			if ci < len(row)-1 {
				b.WriteString(strings.Repeat(" ", colWidth(rows, ci)-utf8.RuneCountInString(cell)))
			}
		}
	}
	return b.String()
}

func colWidth(rows [3][]string, ci int) int {
	w := 0
	for _, row := range rows {
		if n := utf8.RuneCountInString(row[ci]); n > w {
			w = n
		}
	}
	return w
}
