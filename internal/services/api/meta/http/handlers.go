// Package http provides meta endpoints
package http

import (
	"net/http"
	"time"

	"versecraft/internal/core/version"
	"versecraft/internal/modkit/httpkit"
)

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	// RuleCount and DictSize describe the loaded analysis assets
	RuleCount int
	DictSize  int
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/ready", h.ready)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
	httpkit.Get(r, "/assets", h.assets)
}

// HealthResponse is the health payload
type HealthResponse struct {
	OK      bool   `json:"ok"       example:"true"`
	Service string `json:"service"  example:"versecraft-api"`
	Started string `json:"started"  example:"2026-08-01T13:00:00Z"`
	Now     string `json:"now"      example:"2026-08-01T13:05:00Z"`
}

// ReadyCheck describes a single dependency check
type ReadyCheck struct {
	Name   string `json:"name"   example:"ruleset"`
	Status string `json:"status" example:"ok"` // ok fail
	Error  string `json:"error,omitempty"`
}

// ReadyResponse summarizes readiness
type ReadyResponse struct {
	Status string       `json:"status" example:"ok"` // ok fail
	Checks []ReadyCheck `json:"checks"`
	Now    string       `json:"now"    example:"2026-08-01T13:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name    string `json:"name"    example:"versecraft-api"`
	Started string `json:"started" example:"2026-08-01T13:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
}

// AssetsResponse reports the loaded analysis assets and build info
type AssetsResponse struct {
	RuleCount int               `json:"rule_count" example:"12"`
	DictSize  int               `json:"dict_size"  example:"390"`
	Build     version.BuildInfo `json:"build"`
}

func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// ready verifies the embedded assets actually loaded; there are no
// external backends to probe
func (h *handlers) ready(_ *http.Request) (any, error) {
	check := func(name string, n int) ReadyCheck {
		if n <= 0 {
			return ReadyCheck{Name: name, Status: "fail", Error: "not loaded"}
		}
		return ReadyCheck{Name: name, Status: "ok"}
	}

	rules := check("ruleset", h.deps.RuleCount)
	dict := check("phonedict", h.deps.DictSize)

	overall := "ok"
	if rules.Status != "ok" || dict.Status != "ok" {
		overall = "fail"
	}

	return ReadyResponse{
		Status: overall,
		Checks: []ReadyCheck{rules, dict},
		Now:    time.Now().UTC().Format(time.RFC3339),
	}, nil
}

func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

func (h *handlers) service(_ *http.Request) (any, error) {
	uptime := time.Since(h.deps.StartedAt)
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(uptime / time.Second),
	}, nil
}

func (h *handlers) assets(_ *http.Request) (any, error) {
	return AssetsResponse{
		RuleCount: h.deps.RuleCount,
		DictSize:  h.deps.DictSize,
		Build:     version.Info(),
	}, nil
}
