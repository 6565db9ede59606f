// Command versecraft-heteronyms regenerates a heteronym table skeleton
// from the pronunciation dictionary: every word with more than one
// pronunciation, curated tag sets carried over, new words left untagged
// for review
package main

import (
	"encoding/json"
	"flag"
	"os"

	"versecraft/internal/adapters/phonedict"
	"versecraft/internal/platform/logger"
)

func main() {
	var (
		dictPath = flag.String("dict", "", "extra CMU-format dictionary file")
		noMerge  = flag.Bool("no-merge-ao", false, "keep AO distinct from AA (disable the cot-caught merger)")
		outPath  = flag.String("o", "", "write to file instead of stdout")
	)
	flag.Parse()

	l := logger.Get()

	dict, err := phonedict.New(phonedict.Options{Path: *dictPath, MergeAO: !*noMerge})
	if err != nil {
		l.Fatal().Err(err).Msg("load dictionary")
	}

	out := os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			l.Fatal().Err(err).Msg("create output file")
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(dict.Skeleton()); err != nil {
		l.Fatal().Err(err).Msg("encode skeleton")
	}
}
