// Package module wires the analyze service into the API
package module

import (
	"net/http"

	modkit "versecraft/internal/modkit"
	"versecraft/internal/modkit/httpkit"
	str "versecraft/internal/platform/strings"

	"versecraft/internal/adapters/phonedict"
	"versecraft/internal/adapters/tagger"
	"versecraft/internal/core/ruleset"
	analyzehttp "versecraft/internal/services/analyze/http"
	"versecraft/internal/services/analyze/service"
)

// Ports exposes the analyzer and its loaded assets for cross module wiring
type Ports struct {
	Analyzer *service.Service
	Rules    *ruleset.Set
	Dict     *phonedict.Dict
}

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler

	svc      *service.Service
	rules    *ruleset.Set
	dict     *phonedict.Dict
	register func(httpkit.Router)
}

// New constructs the analyze module: rule set, dictionary, tagger, and
// service, then route registration
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("analyze"),
		modkit.WithPrefix("/analyze"),
	}, opts...)...)

	rules, err := loadRules(deps)
	if err != nil {
		panic(err)
	}
	dict, err := phonedict.New(dictOptions(deps))
	if err != nil {
		panic(err)
	}
	svc := service.New(tagger.New(), dict, rules)

	m := &Module{
		deps:   deps,
		name:   b.Name,
		prefix: b.Prefix,
		mws:    b.Mw,
		svc:    svc,
		rules:  rules,
		dict:   dict,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		analyzehttp.Register(r, svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

func loadRules(deps modkit.Deps) (*ruleset.Set, error) {
	if path := deps.Cfg.MayString("ANALYZE_RULES_PATH", ""); path != "" {
		return ruleset.LoadFile(path)
	}
	return ruleset.Load()
}

func dictOptions(deps modkit.Deps) phonedict.Options {
	opts := phonedict.DefaultOptions()
	opts.Path = deps.Cfg.MayString("PHONEDICT_PATH", "")
	opts.MergeAO = deps.Cfg.MayBool("PHONEDICT_MERGE_AO", true)
	return opts
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	httpkit.MountUnder(r, m.prefix, m.mws, func(rr httpkit.Router) {
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix implements the modkit.Module interface
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return Ports{Analyzer: m.svc, Rules: m.rules, Dict: m.dict} }
