package render

import (
	"fmt"
	"strconv"
	"strings"

	"versecraft/internal/core/phoneme"
	"versecraft/internal/services/analyze/domain"
)

// stressMark renders a stress digit for display: 1° and 2° for stressed
// candidates, bare 0 for unstressed ones
func stressMark(digit string) string {
	switch digit {
	case "1", "2":
		return digit + "°"
	default:
		return "0"
	}
}

// Scheme renders a rhyme-scheme report: the letter string, one row per
// line with its letter and end-rime candidate, then a rime summary for
// every group holding at least two lines
func Scheme(a domain.SchemeAnalysis) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Rhyme scheme: %s\n\n", a.Scheme)

	for i, ln := range a.Lines {
		fmt.Fprintf(&b, "  %s  %3d  %s", ln.Letter, i+1, ln.Text)
		if ln.RimeIPA != "" {
			fmt.Fprintf(&b, "  rime(%s): /%s/", stressMark(ln.RimeStress), ln.RimeIPA)
			if ln.AltIPA != "" {
				fmt.Fprintf(&b, "  alt(1°): /%s/", ln.AltIPA)
			}
		}
		b.WriteByte('\n')
	}

	for _, g := range a.Groups {
		if len(g.LineNums) < 2 {
			continue
		}
		nums := make([]string, len(g.LineNums))
		for i, n := range g.LineNums {
			nums[i] = strconv.Itoa(n)
		}
		fmt.Fprintf(&b, "\nGroup %s (lines %s): ", g.Letter, strings.Join(nums, ", "))
		if !g.Found {
			b.WriteString("no shared rime\n")
			continue
		}
		kind := "exact match"
		if g.Fuzzy {
			kind = "fuzzy match"
		}
		fmt.Fprintf(&b, "rime %s  [%s]  (%s)\n",
			phoneme.Join(g.Phones), phoneme.SeqIPA(g.Phones), kind)
	}
	return b.String()
}
