package rime

import (
	"fmt"

	"versecraft/internal/core/phoneme"
)

// Attribution maps one line's share of the common rime back onto its
// morphemes. Slots holds the aligned trailing phonemes of that line's
// window; MorphemeCount is the number of distinct (word, label) morphemes
// the rime touches in this line
type Attribution struct {
	Slots         []Slot
	MorphemeCount int
}

// Common is a found rime: the canonical shared phoneme sequence, whether
// any near-rhyme tolerance (voicing substitution or a consonant
// insertion/deletion) was needed, and per-line attributions in input order
type Common struct {
	Phones []phoneme.Phoneme
	Fuzzy  bool
	Lines  []Attribution
}

// Align finds the longest phoneme sequence shared by the suffixes of all
// windows. The sequence must contain at least one vowel nucleus. Vowels
// must match by bare symbol (stress ignored); consonants
// must match exactly or as a voicing pair; across the whole alignment at
// most one window may carry one extra or missing consonant. Candidate
// lengths are tried longest first, skeleton source lines and the edit slot
// in line order, and a zero-edit alignment is preferred over a one-edit
// alignment of equal length, so the search is deterministic. A nil Common
// with nil error means no common rime, which is a valid negative result
func Align(windows []Window) (*Common, error) {
	if len(windows) < 2 {
		return nil, fmt.Errorf("rime: align needs at least 2 windows, got %d", len(windows))
	}

	minLen := windows[0].Len()
	for _, w := range windows[1:] {
		if w.Len() < minLen {
			minLen = w.Len()
		}
	}
	if minLen == 0 {
		return nil, nil
	}

	for l := minLen; l >= 1; l-- {
		// zero-edit pass: try each line's tail as the skeleton
		for si := range windows {
			if c := reconcileExact(windows, si, l); c != nil {
				return c, nil
			}
		}
		// one-edit pass: one window may differ by a single consonant
		for si := range windows {
			for wi := range windows {
				if wi == si {
					continue
				}
				if c := reconcileOneEdit(windows, si, wi, l); c != nil {
					return c, nil
				}
			}
		}
	}
	return nil, nil
}

// tail returns the last n slots of a window
func tail(w Window, n int) []Slot { return w.Slots[len(w.Slots)-n:] }

// hasNucleus reports whether the candidate rime contains a vowel. A rime
// runs from a syllable nucleus onward; a bare consonant tail never rhymes
func hasNucleus(slots []Slot) bool {
	for _, s := range slots {
		if s.Phone.IsVowel() {
			return true
		}
	}
	return false
}

// matchSeq compares two equal-length phoneme runs under rhyme rules.
// Returns whether they reconcile and whether a voicing substitution was used
func matchSeq(a, b []Slot) (fuzzy, ok bool) {
	for i := range a {
		pa, pb := a[i].Phone, b[i].Phone
		av, bv := pa.IsVowel(), pb.IsVowel()
		if av != bv {
			return false, false
		}
		if av {
			if !pa.EqualBase(pb) {
				return false, false
			}
			continue
		}
		if pa.EqualBase(pb) {
			continue
		}
		if phoneme.IsVoicingPair(pa.Base(), pb.Base()) {
			fuzzy = true
			continue
		}
		return false, false
	}
	return fuzzy, true
}

// reconcileExact aligns every window's l-tail against the skeleton taken
// from windows[si] with substitutions only
func reconcileExact(windows []Window, si, l int) *Common {
	sk := tail(windows[si], l)
	if !hasNucleus(sk) {
		return nil
	}
	anyFuzzy := false
	segs := make([][]Slot, len(windows))
	for wi := range windows {
		seg := tail(windows[wi], l)
		fz, ok := matchSeq(seg, sk)
		if !ok {
			return nil
		}
		anyFuzzy = anyFuzzy || fz
		segs[wi] = seg
	}

	maps := make([][]int, len(windows))
	for wi := range windows {
		m := make([]int, l)
		for k := range m {
			m[k] = k
		}
		maps[wi] = m
	}
	return build(sk, segs, maps, anyFuzzy)
}

// reconcileOneEdit aligns all windows except wi exactly against the
// skeleton from windows[si], and lets wi carry one extra or one missing
// consonant relative to it
func reconcileOneEdit(windows []Window, si, wi, l int) *Common {
	sk := tail(windows[si], l)
	if !hasNucleus(sk) {
		return nil
	}

	segs := make([][]Slot, len(windows))
	maps := make([][]int, len(windows))
	for oi := range windows {
		if oi == wi {
			continue
		}
		seg := tail(windows[oi], l)
		if _, ok := matchSeq(seg, sk); !ok {
			return nil
		}
		segs[oi] = seg
		m := make([]int, l)
		for k := range m {
			m[k] = k
		}
		maps[oi] = m
	}

	// extra consonant in wi: its (l+1)-tail minus one consonant matches
	if windows[wi].Len() >= l+1 {
		seg := tail(windows[wi], l+1)
		if di, _, ok := matchWithDeletion(seg, sk, 0); ok {
			segs[wi] = seg
			m := make([]int, l)
			for k := range m {
				if k < di {
					m[k] = k
				} else {
					m[k] = k + 1
				}
			}
			maps[wi] = m
			return build(sk, segs, maps, true)
		}
	}

	// missing consonant in wi: the skeleton minus one interior consonant
	// matches its (l-1)-tail. The skipped consonant must have shared
	// material on its left; skipping the skeleton's leading phoneme would
	// just restate a shorter rime as a longer one
	if windows[wi].Len() >= l-1 && l >= 2 {
		seg := tail(windows[wi], l-1)
		if di, _, ok := matchWithDeletion(sk, seg, 1); ok {
			segs[wi] = seg
			m := make([]int, l)
			for k := range m {
				switch {
				case k < di:
					m[k] = k
				case k == di:
					m[k] = -1
				default:
					m[k] = k - 1
				}
			}
			maps[wi] = m
			return build(sk, segs, maps, true)
		}
	}
	return nil
}

// matchWithDeletion tries to reconcile longer against shorter by deleting
// exactly one consonant from longer at index >= minIdx, earliest position
// first. Returns the deleted index within longer
func matchWithDeletion(longer, shorter []Slot, minIdx int) (delIdx int, fuzzy, ok bool) {
	if len(longer) != len(shorter)+1 {
		return 0, false, false
	}
	for di := minIdx; di < len(longer); di++ {
		if longer[di].Phone.IsVowel() {
			continue
		}
		rest := make([]Slot, 0, len(shorter))
		rest = append(rest, longer[:di]...)
		rest = append(rest, longer[di+1:]...)
		if fz, m := matchSeq(rest, shorter); m {
			return di, fz, true
		}
	}
	return 0, false, false
}

// build assembles the canonical rime. Canonical phones are order
// independent: vowel positions keep the shared base with the strongest
// stress any line realizes, consonant positions fall back to the voiceless
// member when lines disagree by voicing. maps[wi][k] is the index into
// segs[wi] realizing skeleton position k, or -1 where that line skips an
// inserted consonant
func build(sk []Slot, segs [][]Slot, maps [][]int, editOrSub bool) *Common {
	phones := make([]phoneme.Phoneme, len(sk))
	for k := range sk {
		base := sk[k].Phone.Base()
		if sk[k].Phone.IsVowel() {
			stress := "0"
			for wi := range segs {
				if maps[wi][k] < 0 {
					continue
				}
				switch segs[wi][maps[wi][k]].Phone.Stress() {
				case "1":
					stress = "1"
				case "2":
					if stress != "1" {
						stress = "2"
					}
				}
			}
			phones[k] = phoneme.Phoneme(base + stress)
			continue
		}
		agree := true
		for wi := range segs {
			if maps[wi][k] < 0 {
				continue
			}
			if segs[wi][maps[wi][k]].Phone.Base() != base {
				agree = false
				break
			}
		}
		if agree {
			phones[k] = phoneme.Phoneme(base)
		} else {
			phones[k] = phoneme.Phoneme(phoneme.Devoice(base))
		}
	}

	lines := make([]Attribution, len(segs))
	for wi, seg := range segs {
		seen := make(map[[2]string]struct{}, 2)
		for _, s := range seg {
			seen[[2]string{s.Morph.Word, s.Morph.Label}] = struct{}{}
		}
		lines[wi] = Attribution{Slots: seg, MorphemeCount: len(seen)}
	}
	return &Common{Phones: phones, Fuzzy: editOrSub, Lines: lines}
}
