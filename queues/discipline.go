package queues

import (
	"slices"

	"github.com/panyam/queuemodels/core"
)

// Params holds the validated inputs of a queue. Invalid inputs are stored
// as NaN; ArrivalRate is always the sum of ClassRates (or NaN).
type Params struct {
	ArrivalRate float64   // λ, aggregate over all classes
	ClassRates  []float64 // per-class λ in priority order
	ServiceRate float64   // μ
	Servers     float64   // c, 1 unless the discipline exposes it
	Sigma       float64   // σ of the service time, M/G/1 only
}

// OfferedLoad is r = λ/μ, the expected number of customers in service.
func (p *Params) OfferedLoad() float64 {
	return p.ArrivalRate / p.ServiceRate
}

// Rho is the traffic intensity λ/(μ·c).
func (p *Params) Rho() float64 {
	return p.ArrivalRate / (p.ServiceRate * p.Servers)
}

func (p *Params) clone() Params {
	c := *p
	c.ClassRates = slices.Clone(p.ClassRates)
	return c
}

// Discipline supplies the per-model pieces of a queue: which inputs make
// sense, when the system is stable, and the closed forms for Lq and P0.
// ComputeMetrics is only called on valid, feasible params.
type Discipline interface {
	Name() string
	Kind() string
	IsValid(p *Params) bool
	IsFeasible(p *Params) bool
	ComputeMetrics(p *Params) (lq, p0 float64)
}

// inputLister is implemented by disciplines with inputs beyond λ and μ.
type inputLister interface {
	extraInputs(p *Params) []Metric
}

// baseline validity: every configured input is a finite real number.
func baselineValid(p *Params) bool {
	return core.IsFinite(p.ArrivalRate) && core.IsFinite(p.ServiceRate) && core.IsFinite(p.Servers)
}

// baseline feasibility: valid and strictly below saturation.
func baselineFeasible(p *Params) bool {
	return baselineValid(p) && p.Rho() < 1
}
