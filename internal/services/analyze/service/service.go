// Package service implements the analyze service
package service

import (
	"context"
	"strings"

	"versecraft/internal/core/morph"
	"versecraft/internal/core/normalize"
	"versecraft/internal/core/phoneme"
	"versecraft/internal/core/rime"
	"versecraft/internal/core/ruleset"
	perr "versecraft/internal/platform/errors"
	"versecraft/internal/platform/logger"
	"versecraft/internal/services/analyze/domain"
)

// Service implements domain.AnalyzerPort
type Service struct {
	tagger domain.TaggerPort
	lex    domain.LexiconPort
	dec    *morph.Decomposer
	norm   *normalize.Normalizer
	log    *logger.Logger
}

// New constructs an analyze service over a tagger, a lexicon, and a
// compiled rule set
func New(tg domain.TaggerPort, lex domain.LexiconPort, rules *ruleset.Set) *Service {
	return &Service{
		tagger: tg,
		lex:    lex,
		dec:    morph.New(rules),
		norm:   normalize.New(),
		log:    logger.Named("analyze"),
	}
}

// ParseSentence normalizes, tags, and decomposes one line of text.
// Punctuation tokens are dropped; words whose pronunciation cannot be
// resolved even by the grapheme fallback are logged and skipped
func (s *Service) ParseSentence(ctx context.Context, text string) (domain.Sentence, error) {
	norm := s.norm.Normalize(text)
	if strings.TrimSpace(norm) == "" {
		return domain.Sentence{}, perr.InvalidArgf("analyze: empty sentence")
	}

	out := domain.Sentence{Text: norm}
	for _, tok := range s.tagger.Tag(norm) {
		if tok.Punct {
			continue
		}
		wordPh, err := s.lex.LookupOrFallback(tok.Text, tok.Tag)
		if err != nil {
			s.log.Warn().Str("word", tok.Text).Err(err).Msg("no pronunciation, word skipped")
			continue
		}

		// the lemma's phonemes anchor suffix stripping; a word that is its
		// own lemma, or whose lemma is unpronounceable, decomposes against
		// itself and comes back whole
		lemmaPh := wordPh
		if !strings.EqualFold(tok.Lemma, tok.Text) {
			if lp, lerr := s.lex.LookupOrFallback(tok.Lemma, ""); lerr == nil {
				lemmaPh = lp
			} else {
				s.log.Debug().Str("lemma", tok.Lemma).Err(lerr).Msg("lemma lookup failed")
			}
		}

		out.Words = append(out.Words, domain.WordAnalysis{
			Word:      tok.Text,
			Lemma:     tok.Lemma,
			POS:       tok.POS,
			Tag:       tok.Tag,
			Phones:    wordPh,
			Morphemes: s.dec.Decompose(tok.Text, wordPh, lemmaPh, tok.POS, tok.Tag),
		})
	}
	return out, nil
}

// AnalyzeRhyme parses each line, extracts trailing rime windows, and
// aligns them. Lines that parse to nothing pronounceable are logged and
// skipped; at least two usable lines must remain
func (s *Service) AnalyzeRhyme(ctx context.Context, lines []string) (domain.RhymeAnalysis, error) {
	if len(lines) < 2 {
		return domain.RhymeAnalysis{}, perr.InvalidArgf("analyze: rhyme needs at least 2 lines, got %d", len(lines))
	}

	var (
		parsed  []domain.Sentence
		windows []rime.Window
	)
	for i, line := range lines {
		sent, err := s.ParseSentence(ctx, line)
		if err != nil || len(sent.Words) == 0 {
			s.log.Warn().Int("line", i+1).Msg("line has no pronounceable words, skipped")
			continue
		}
		w := rime.ExtractWindow(sent.MorphWords())
		if w.Len() == 0 {
			s.log.Warn().Int("line", i+1).Msg("line yields no rime window, skipped")
			continue
		}
		parsed = append(parsed, sent)
		windows = append(windows, w)
	}
	if len(windows) < 2 {
		return domain.RhymeAnalysis{}, perr.InvalidArgf("analyze: fewer than 2 pronounceable lines")
	}

	common, err := rime.Align(windows)
	if err != nil {
		return domain.RhymeAnalysis{}, perr.Wrap(err, perr.ErrorCodeUnknown, "analyze: align")
	}

	out := domain.RhymeAnalysis{Lines: make([]domain.RhymeLine, len(parsed))}
	for i, sent := range parsed {
		out.Lines[i] = domain.RhymeLine{Sentence: sent}
	}
	if common == nil {
		return out, nil
	}

	out.Found = true
	out.Phones = common.Phones
	out.Fuzzy = common.Fuzzy
	for i := range out.Lines {
		out.Lines[i].Rime = common.Lines[i]
	}
	return out, nil
}

// AnalyzeScheme detects the end-rhyme scheme of a poem: every pair of
// lines runs through the aligner and lines sharing a rime share a scheme
// letter. Unlike AnalyzeRhyme, a line that parses to nothing pronounceable
// keeps its position and simply forms its own group
func (s *Service) AnalyzeScheme(ctx context.Context, lines []string) (domain.SchemeAnalysis, error) {
	if len(lines) < 2 {
		return domain.SchemeAnalysis{}, perr.InvalidArgf("analyze: scheme needs at least 2 lines, got %d", len(lines))
	}

	sents := make([]domain.Sentence, len(lines))
	windows := make([]rime.Window, len(lines))
	for i, line := range lines {
		sent, err := s.ParseSentence(ctx, line)
		if err != nil {
			s.log.Warn().Int("line", i+1).Err(err).Msg("line not parseable, forms its own group")
			sent = domain.Sentence{Text: line}
		}
		sents[i] = sent
		windows[i] = rime.ExtractWindow(sent.MorphWords())
	}

	letters := rime.Scheme(windows)

	out := domain.SchemeAnalysis{
		Scheme: strings.Join(letters, ""),
		Lines:  make([]domain.SchemeLine, len(lines)),
	}
	for i, sent := range sents {
		sl := domain.SchemeLine{Sentence: sent, Letter: letters[i]}
		if cands := rime.StressCandidates(sent.MorphWords()); len(cands) > 0 {
			sl.RimeStress = cands[0].Stress()
			sl.RimeIPA = phoneme.SeqIPA(cands[0].Phones())
			if len(cands) > 1 {
				sl.AltIPA = phoneme.SeqIPA(cands[1].Phones())
			}
		}
		out.Lines[i] = sl
	}

	// groups in first-seen order, each re-aligned as a whole for its rime
	byLetter := make(map[string]int, len(letters))
	for i, letter := range letters {
		gi, ok := byLetter[letter]
		if !ok {
			gi = len(out.Groups)
			byLetter[letter] = gi
			out.Groups = append(out.Groups, domain.SchemeGroup{Letter: letter})
		}
		out.Groups[gi].LineNums = append(out.Groups[gi].LineNums, i+1)
	}
	for gi := range out.Groups {
		g := &out.Groups[gi]
		if len(g.LineNums) < 2 {
			continue
		}
		ws := make([]rime.Window, len(g.LineNums))
		for k, n := range g.LineNums {
			ws[k] = windows[n-1]
		}
		common, err := rime.Align(ws)
		if err != nil || common == nil {
			continue
		}
		g.Found = true
		g.Phones = common.Phones
		g.Fuzzy = common.Fuzzy
	}
	return out, nil
}

var _ domain.AnalyzerPort = (*Service)(nil)
