package phonedict

import (
	_ "embed"
	"encoding/json"
	"strings"

	"versecraft/internal/core/phoneme"
	perr "versecraft/internal/platform/errors"
)

//go:embed heteronyms.json
var heteronymsJSON []byte

// hetEntry is one tag-conditioned pronunciation of a heteronym
type hetEntry struct {
	tags   map[string]bool
	phones []phoneme.Phoneme
}

func (h hetEntry) matches(tag string) bool { return h.tags[tag] }

type rawHeteronym struct {
	Tags   []string `json:"tags"`
	Phones string   `json:"phones"`
}

// loadHeteronyms compiles the embedded heteronym table. The table is
// keyed by word; each entry lists the Penn tags that select a reading
func loadHeteronyms(mergeAO bool) (map[string][]hetEntry, error) {
	var raw map[string][]rawHeteronym
	if err := json.Unmarshal(heteronymsJSON, &raw); err != nil {
		return nil, perr.Configf("phonedict: parse heteronyms.json: %v", err)
	}
	out := make(map[string][]hetEntry, len(raw))
	for word, list := range raw {
		word = strings.ToLower(word)
		for _, r := range list {
			ph := phoneme.ParseSeq(r.Phones)
			if len(r.Tags) == 0 || len(ph) == 0 {
				return nil, perr.Configf("phonedict: heteronym %q: empty tags or phones", word)
			}
			if mergeAO {
				ph = phoneme.MergeAOAA(ph)
			}
			tags := make(map[string]bool, len(r.Tags))
			for _, t := range r.Tags {
				tags[t] = true
			}
			out[word] = append(out[word], hetEntry{tags: tags, phones: ph})
		}
	}
	return out, nil
}
