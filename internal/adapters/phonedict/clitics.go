package phonedict

import "versecraft/internal/core/phoneme"

// cliticPhones covers the contraction fragments the tokenizer splits off.
// These never appear in CMU-format dictionaries as standalone headwords
var cliticPhones = map[string][]phoneme.Phoneme{
	"n't": {"AH0", "N", "T"},
	"'ll": {"AH0", "L"},
	"'re": {"ER0"},
	"'ve": {"AH0", "V"},
	"'d":  {"AH0", "D"},
	"'s":  {"Z"},
	"'m":  {"AH0", "M"},
}
