package phonedict

import (
	_ "embed"
	"os"
	"strings"

	"versecraft/internal/core/phoneme"
	perr "versecraft/internal/platform/errors"
)

//go:embed cmudict_seed.txt
var seedDict string

// parseCMU ingests CMU-format dictionary text: ";;;" comment lines, one
// entry per line, word and phones separated by two spaces, alternate
// pronunciations marked "WORD(1)". Later files override earlier words
func (d *Dict) parseCMU(text, src string) error {
	fresh := make(map[string]bool)
	for ln, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" || strings.HasPrefix(line, ";;;") {
			continue
		}
		word, rest, ok := strings.Cut(line, "  ")
		if !ok {
			return perr.Configf("phonedict: %s line %d: missing field separator", src, ln+1)
		}
		word = strings.ToLower(stripVariant(word))
		ph := phoneme.ParseSeq(rest)
		if word == "" || len(ph) == 0 {
			return perr.Configf("phonedict: %s line %d: empty entry", src, ln+1)
		}
		if d.mergeAO {
			ph = phoneme.MergeAOAA(ph)
		}
		if !fresh[word] {
			// the first mention in this file replaces any prior source
			d.entries[word] = nil
			fresh[word] = true
		}
		d.entries[word] = append(d.entries[word], ph)
	}
	return nil
}

func (d *Dict) loadFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return perr.Configf("phonedict: read %s: %v", path, err)
	}
	return d.parseCMU(string(raw), path)
}

// stripVariant removes a trailing "(n)" alternate marker
func stripVariant(w string) string {
	if i := strings.IndexByte(w, '('); i > 0 && strings.HasSuffix(w, ")") {
		return w[:i]
	}
	return w
}
