// Command versecraft-scheme detects the end-rhyme scheme of a poem
package main

import (
	"bufio"
	"context"
	"encoding/json"
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
		asJSON    = flag.Bool("json", false, "emit JSON instead of a text report")
	)
	flag.Parse()

	l := logger.Get()
	svc := newService(l, *rulesPath, *dictPath, !*noMerge)

	lines := inputLines(flag.Args())
	if len(lines) < 2 {
		fmt.Fprintln(os.Stderr, "usage: versecraft-scheme [flags] LINE LINE [LINE...]  (or a poem on stdin, one line each)")
		os.Exit(2)
	}

	res, err := svc.AnalyzeScheme(context.Background(), lines)
	if err != nil {
		l.Error().Err(err).Msg("scheme detection failed")
		os.Exit(1)
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(res); err != nil {
			l.Error().Err(err).Msg("encode failed")
			os.Exit(1)
		}
		return
	}
	fmt.Print(render.Scheme(res))
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
