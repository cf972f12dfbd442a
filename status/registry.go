package status

import (
	"fmt"
	"math"
	"strings"
	"sync/atomic"
)

// Counter and gauge names published by the simulation
const (
	MetricFrames      = "game.frames"
	MetricRollbacks   = "game.rollbacks"
	MetricShots       = "combat.shots"
	MetricHits        = "combat.hits"
	MetricSubmitted   = "network.submitted"
	MetricSubmitFails = "network.failed"
	MetricFrameMillis = "game.frame_ms"
)

// Gauge is an atomic float64; the zero value reads 0
type Gauge struct {
	bits atomic.Uint64
}

func (g *Gauge) Set(v float64) { g.bits.Store(math.Float64bits(v)) }

func (g *Gauge) Get() float64 { return math.Float64frombits(g.bits.Load()) }

// Registry holds the session's counters and gauges
// Writers cache pointers; readers take a formatted snapshot for the debug line
type Registry struct {
	Counters *MetricMap[atomic.Int64]
	Gauges   *MetricMap[Gauge]
}

func NewRegistry() *Registry {
	return &Registry{
		Counters: NewMetricMap[atomic.Int64](),
		Gauges:   NewMetricMap[Gauge](),
	}
}

// Counter returns the named counter
func (r *Registry) Counter(name string) *atomic.Int64 {
	return r.Counters.Get(name)
}

// Gauge returns the named gauge
func (r *Registry) Gauge(name string) *Gauge {
	return r.Gauges.Get(name)
}

// Line renders every metric as "name=value" pairs in key order, counters first
func (r *Registry) Line() string {
	var parts []string
	r.Counters.Range(func(k string, c *atomic.Int64) {
		parts = append(parts, fmt.Sprintf("%s=%d", k, c.Load()))
	})
	r.Gauges.Range(func(k string, g *Gauge) {
		parts = append(parts, fmt.Sprintf("%s=%.2f", k, g.Get()))
	})
	return strings.Join(parts, " ")
}
