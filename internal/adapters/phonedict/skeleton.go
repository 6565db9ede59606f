package phonedict

import (
	"sort"

	"versecraft/internal/core/phoneme"
)

// SkeletonEntry is one tag-conditioned reading in a regenerated
// heteronym table. Entries for words not yet curated come back with
// empty Tags for hand-filling
type SkeletonEntry struct {
	Tags   []string `json:"tags"`
	Phones string   `json:"phones"`
}

// Skeleton builds a heteronym table covering every dictionary word with
// more than one pronunciation. Curated readings are carried over;
// uncurated words get one untagged entry per variant. The result is meant
// to be reviewed and fed back as heteronyms.json
func (d *Dict) Skeleton() map[string][]SkeletonEntry {
	out := make(map[string][]SkeletonEntry)
	for word, variants := range d.entries {
		if len(variants) < 2 {
			continue
		}
		if curated, ok := d.het[word]; ok {
			for _, h := range curated {
				tags := make([]string, 0, len(h.tags))
				for t := range h.tags {
					tags = append(tags, t)
				}
				sort.Strings(tags)
				out[word] = append(out[word], SkeletonEntry{
					Tags:   tags,
					Phones: phoneme.Join(h.phones),
				})
			}
			continue
		}
		for _, v := range variants {
			out[word] = append(out[word], SkeletonEntry{
				Tags:   []string{},
				Phones: phoneme.Join(v),
			})
		}
	}
	return out
}
