// Command versecraft-gloss prints interlinear glosses: words, IPA with
// morpheme joints, and morpheme labels
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"versecraft/internal/adapters/phonedict"
	"versecraft/internal/adapters/tagger"
	"versecraft/internal/core/ruleset"
	"versecraft/internal/platform/logger"
	"versecraft/internal/services/analyze/render"
	"versecraft/internal/services/analyze/service"
)

func main() {
	var (
		rulesPath = flag.String("rules", "", "override the embedded inflection rules file")
		dictPath  = flag.String("dict", "", "extra CMU-format dictionary file")
		noMerge   = flag.Bool("no-merge-ao", false, "keep AO distinct from AA (disable the cot-caught merger)")
	)
	flag.Parse()

	l := logger.Get()
	svc := newService(l, *rulesPath, *dictPath, !*noMerge)

	for i, line := range inputLines(flag.Args()) {
		sent, err := svc.ParseSentence(context.Background(), line)
		if err != nil {
			l.Error().Err(err).Msg("parse failed")
			os.Exit(1)
		}
		if i > 0 {
			fmt.Println()
		}
		fmt.Println(render.Gloss(sent))
	}
}

func newService(l *logger.Logger, rulesPath, dictPath string, mergeAO bool) *service.Service {
	var (
		rules *ruleset.Set
		err   error
	)
	if rulesPath != "" {
		rules, err = ruleset.LoadFile(rulesPath)
	} else {
		rules, err = ruleset.Load()
	}
	if err != nil {
		l.Fatal().Err(err).Msg("load rules")
	}

	dict, err := phonedict.New(phonedict.Options{Path: dictPath, MergeAO: mergeAO})
	if err != nil {
		l.Fatal().Err(err).Msg("load dictionary")
	}
	return service.New(tagger.New(), dict, rules)
}

func inputLines(args []string) []string {
	if len(args) > 0 {
		return args
	}
	var out []string
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			out = append(out, line)
		}
	}
	return out
}
