// Package ruleset loads the inflectional suffix-stripping rules from the
// embedded rules.json. Rules are keyed by (pos, tag) and carry an ordered
// list of candidate suffix phoneme sequences for the decomposer
package ruleset

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"versecraft/internal/core/phoneme"
)

//go:embed rules.json
var embedded []byte

type rawRule struct {
	POS      string     `json:"pos"`
	Tag      string     `json:"tag"`
	Label    string     `json:"label"`
	Suffixes [][]string `json:"suffixes"`
}

// Rule is one compiled inflection rule. Suffixes keeps file order; order is
// the candidate precedence when several could strip cleanly
type Rule struct {
	POS      string
	Tag      string
	Label    string
	Suffixes [][]phoneme.Phoneme
}

// Set is the compiled, immutable rule table. Loaded once at process start
// and shared read-only afterwards
type Set struct {
	rules []Rule
	index map[[2]string]*Rule
}

// Load compiles the embedded rules.json
func Load() (*Set, error) {
	return compile(embedded, "embedded rules.json")
}

// LoadFile compiles rules from an external file, overriding the embedded set
func LoadFile(path string) (*Set, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ruleset: read %s: %w", path, err)
	}
	return compile(raw, path)
}

func compile(raw []byte, src string) (*Set, error) {
	var rrs []rawRule
	if err := json.Unmarshal(raw, &rrs); err != nil {
		return nil, fmt.Errorf("ruleset: parse %s: %w", src, err)
	}
	if len(rrs) == 0 {
		return nil, fmt.Errorf("ruleset: %s holds no rules", src)
	}

	s := &Set{
		rules: make([]Rule, 0, len(rrs)),
		index: make(map[[2]string]*Rule, len(rrs)),
	}
	for i, rr := range rrs {
		if rr.POS == "" || rr.Tag == "" || rr.Label == "" {
			return nil, fmt.Errorf("ruleset: rule %d in %s: pos, tag and label are required", i, src)
		}
		if len(rr.Suffixes) == 0 {
			return nil, fmt.Errorf("ruleset: rule %d (%s/%s) in %s: at least one suffix candidate required",
				i, rr.POS, rr.Tag, src)
		}
		key := [2]string{rr.POS, rr.Tag}
		if _, dup := s.index[key]; dup {
			return nil, fmt.Errorf("ruleset: duplicate rule for (%s, %s) in %s", rr.POS, rr.Tag, src)
		}

		rule := Rule{POS: rr.POS, Tag: rr.Tag, Label: rr.Label}
		for j, suf := range rr.Suffixes {
			seq := phoneme.Seq(suf...)
			for _, p := range seq {
				if !p.Valid() {
					return nil, fmt.Errorf("ruleset: rule %d (%s/%s) suffix %d in %s: bad phoneme %q",
						i, rr.POS, rr.Tag, j, src, p)
				}
			}
			// an empty candidate is legal and means a zero suffix
			rule.Suffixes = append(rule.Suffixes, seq)
		}

		s.rules = append(s.rules, rule)
		s.index[key] = &s.rules[len(s.rules)-1]
	}
	return s, nil
}

// FindRule returns the rule for an exact (pos, tag) pair, or nil
func (s *Set) FindRule(pos, tag string) *Rule {
	return s.index[[2]string{pos, tag}]
}

// Len returns the number of loaded rules
func (s *Set) Len() int { return len(s.rules) }

// Rules returns the rules in file order
func (s *Set) Rules() []Rule { return s.rules }
