// Package queues implements analytical steady-state queueing models
// (M/M/1, M/M/c, M/D/1, M/G/1 and a priority M/M/c).
//
// All models share one engine: inputs are validated when they are set, the two
// cached primitives (Lq and P0) are recomputed lazily on the first read after
// a change, and everything else is derived from them via Little's Law.
// Nothing here returns an error. Invalid inputs surface as NaN and valid but
// unstable configurations (ρ >= 1) surface as +Inf.
package queues

import (
	"math"
	"sync"

	"github.com/panyam/queuemodels/core"
	"github.com/panyam/queuemodels/logging"
)

// Queue is the shared state and cache engine behind every model.
// It is safe for concurrent use.
type Queue struct {
	mu         sync.Mutex
	discipline Discipline
	params     Params

	// true whenever an input changed since Lq/P0 were last computed
	dirty bool
	lq    float64
	p0    float64
}

func newQueue(d Discipline, arrivalRate, serviceRate float64) *Queue {
	q := &Queue{
		discipline: d,
		params:     Params{Servers: 1},
		lq:         math.NaN(),
		p0:         math.NaN(),
	}
	q.SetArrivalRate(arrivalRate)
	q.SetServiceRate(serviceRate)
	return q
}

// Name is the Kendall notation of the model, e.g. "M/M/c".
func (q *Queue) Name() string { return q.discipline.Name() }

// Kind is a short identifier of the model, e.g. "mmc".
func (q *Queue) Kind() string { return q.discipline.Kind() }

// Dirty reports whether Lq and P0 will be recomputed on the next read.
func (q *Queue) Dirty() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.dirty
}

// Params returns a copy of the current inputs.
func (q *Queue) Params() Params {
	return q.snapshot()
}

// SetArrivalRate sets a single-class arrival rate λ. Values that are not
// finite and positive are stored as NaN.
func (q *Queue) SetArrivalRate(lambda float64) {
	q.SetArrivalRates(lambda)
}

// SetArrivalRates sets per-class arrival rates; λ becomes their sum. If any
// rate is invalid, λ and every class slot become NaN.
func (q *Queue) SetArrivalRates(rates ...float64) {
	agg := core.AggregateRates(rates)
	q.update(func(p *Params) {
		p.ClassRates = agg.Classes
		p.ArrivalRate = agg.Total
	})
}

// SetServiceRate sets μ. Values that are not finite and positive are stored as NaN.
func (q *Queue) SetServiceRate(mu float64) {
	in := core.Positive(mu)
	q.update(func(p *Params) { p.ServiceRate = in.Float() })
}

func (q *Queue) setServers(c float64) {
	in := core.Positive(c)
	q.update(func(p *Params) { p.Servers = in.Float() })
}

func (q *Queue) setSigma(sigma float64) {
	in := core.NonNegative(sigma)
	q.update(func(p *Params) { p.Sigma = in.Float() })
}

// update applies a mutation and marks the cache stale, whether or not the
// new value is valid.
func (q *Queue) update(mutate func(p *Params)) {
	q.mu.Lock()
	defer q.mu.Unlock()
	mutate(&q.params)
	q.dirty = true
}

func (q *Queue) snapshot() Params {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.params.clone()
}

// refreshIfStale recomputes Lq and P0 if any input changed since the last
// computation and returns the inputs together with the cached values. The
// dirty check, the computation and the reset of the flag happen under one lock.
func (q *Queue) refreshIfStale() (p Params, lq, p0 float64) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.dirty {
		q.recompute()
	}
	return q.params.clone(), q.lq, q.p0
}

// must hold q.mu
func (q *Queue) recompute() {
	defer func() { q.dirty = false }()

	p := &q.params
	switch {
	case !q.discipline.IsValid(p):
		q.lq, q.p0 = math.NaN(), math.NaN()
		logging.Debug("%s: invalid inputs (lambda=%v mu=%v c=%v), lq/p0 = NaN",
			q.discipline.Name(), p.ArrivalRate, p.ServiceRate, p.Servers)
	case !q.discipline.IsFeasible(p):
		q.lq, q.p0 = math.Inf(1), math.Inf(1)
		logging.Debug("%s: unstable (rho=%.4f), lq/p0 = +Inf", q.discipline.Name(), p.Rho())
	default:
		q.lq, q.p0 = q.discipline.ComputeMetrics(p)
		logging.Debug("%s: recomputed lq=%.6g p0=%.6g", q.discipline.Name(), q.lq, q.p0)
	}
}

// Lq is the expected number of customers waiting in the queue.
func (q *Queue) Lq() float64 {
	_, lq, _ := q.refreshIfStale()
	return lq
}

// P0 is the probability that the system is empty.
func (q *Queue) P0() float64 {
	_, _, p0 := q.refreshIfStale()
	return p0
}

// R is the expected number of customers in service, λ/μ.
func (q *Queue) R() float64 {
	p := q.snapshot()
	return p.OfferedLoad()
}

// Rho is the traffic intensity λ/(μ·c).
func (q *Queue) Rho() float64 {
	p := q.snapshot()
	return p.Rho()
}

// Utilization is the fraction of time each server is busy; equal to Rho.
func (q *Queue) Utilization() float64 {
	return q.Rho()
}

// L is the expected number of customers in the system, Lq + r.
func (q *Queue) L() float64 {
	p, lq, _ := q.refreshIfStale()
	return lq + p.OfferedLoad()
}

// W is the expected time a customer spends in the system, L/λ.
func (q *Queue) W() float64 {
	p, lq, _ := q.refreshIfStale()
	return (lq + p.OfferedLoad()) / p.ArrivalRate
}

// Wq is the expected time a customer waits in the queue, Lq/λ.
func (q *Queue) Wq() float64 {
	p, lq, _ := q.refreshIfStale()
	return lq / p.ArrivalRate
}

// ArrivalRate returns the aggregate λ.
func (q *Queue) ArrivalRate() float64 {
	return q.snapshot().ArrivalRate
}

// ServiceRate returns μ.
func (q *Queue) ServiceRate() float64 {
	return q.snapshot().ServiceRate
}

// IsValid reports whether every input is a real number.
func (q *Queue) IsValid() bool {
	p := q.snapshot()
	return q.discipline.IsValid(&p)
}

// IsFeasible reports whether the inputs are valid and the system is stable.
func (q *Queue) IsFeasible() bool {
	p := q.snapshot()
	return q.discipline.IsFeasible(&p)
}
