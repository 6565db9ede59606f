// Package phonedict resolves words to ARPAbet pronunciations. Lookups go
// through a fixed clitic table, then a CMU-format dictionary (embedded
// seed, optionally extended from a file), with a heteronym table picking
// between variants by Penn tag and a grapheme fallback for words the
// dictionary has never seen
package phonedict

import (
	"strings"

	"versecraft/internal/core/phoneme"
	perr "versecraft/internal/platform/errors"
)

// Options configure dictionary construction
type Options struct {
	// Path points at an additional CMU-format dictionary file whose
	// entries override the embedded seed. Empty means seed only
	Path string
	// MergeAO folds AO vowels into AA at load time (the cot-caught
	// merger), so "caught" and "cot" share a nucleus
	MergeAO bool
}

// DefaultOptions returns the stock configuration: embedded seed only,
// merger on
func DefaultOptions() Options { return Options{MergeAO: true} }

// Dict is an immutable pronunciation dictionary. Build once with New and
// share; lookups are safe for concurrent use
type Dict struct {
	entries map[string][][]phoneme.Phoneme
	het     map[string][]hetEntry
	mergeAO bool
}

// New loads the embedded seed dictionary and heteronym table, plus the
// optional external file from opts.Path
func New(opts Options) (*Dict, error) {
	d := &Dict{
		entries: make(map[string][][]phoneme.Phoneme),
		mergeAO: opts.MergeAO,
	}
	if err := d.parseCMU(seedDict, "embedded seed"); err != nil {
		return nil, err
	}
	if opts.Path != "" {
		if err := d.loadFile(opts.Path); err != nil {
			return nil, err
		}
	}
	het, err := loadHeteronyms(d.mergeAO)
	if err != nil {
		return nil, err
	}
	d.het = het
	return d, nil
}

// Size reports the number of distinct words in the dictionary
func (d *Dict) Size() int { return len(d.entries) }

// Lookup resolves a word to its pronunciation. When the dictionary holds
// several variants and a Penn tag is given, the heteronym table picks the
// matching one; otherwise the first variant in file order wins. Returns a
// NotFound error for unknown words
func (d *Dict) Lookup(word, tag string) ([]phoneme.Phoneme, error) {
	lower := strings.ToLower(word)

	if ph, ok := cliticPhones[lower]; ok {
		return d.merged(ph), nil
	}

	variants, ok := d.entries[lower]
	if !ok {
		return nil, perr.NotFoundf("phonedict: no pronunciation for %q", word)
	}
	if len(variants) > 1 && tag != "" {
		for _, h := range d.het[lower] {
			if h.matches(tag) {
				return h.phones, nil
			}
		}
	}
	return variants[0], nil
}

// LookupOrFallback is Lookup with a grapheme-rule fallback, so any word
// containing letters resolves to something pronounceable
func (d *Dict) LookupOrFallback(word, tag string) ([]phoneme.Phoneme, error) {
	ph, err := d.Lookup(word, tag)
	if err == nil {
		return ph, nil
	}
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		return nil, err
	}
	fb := graphemePhones(word)
	if len(fb) == 0 {
		return nil, err
	}
	return d.merged(fb), nil
}

// Variants returns every pronunciation on file for a word, in file order
func (d *Dict) Variants(word string) [][]phoneme.Phoneme {
	return d.entries[strings.ToLower(word)]
}

// merged applies the AO fold to a sequence when the merger is on
func (d *Dict) merged(ph []phoneme.Phoneme) []phoneme.Phoneme {
	if !d.mergeAO {
		return ph
	}
	return phoneme.MergeAOAA(ph)
}
