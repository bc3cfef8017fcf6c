package queues

import "github.com/panyam/queuemodels/core"

// MG1Queue models a single server with Poisson arrivals and a general
// service-time distribution described by its standard deviation σ
// (Pollaczek-Khinchine).
type MG1Queue struct {
	*Queue
}

// NewMG1Queue creates an M/G/1 queue. sigma is the standard deviation of
// the service time; 0 gives deterministic service.
func NewMG1Queue(arrivalRate, serviceRate, sigma float64) *MG1Queue {
	q := &MG1Queue{Queue: newQueue(mg1{}, arrivalRate, serviceRate)}
	q.SetSigma(sigma)
	return q
}

// Sigma returns σ, or NaN if the last value set was invalid.
func (q *MG1Queue) Sigma() float64 {
	return q.snapshot().Sigma
}

// SetSigma sets σ. Values that are not finite and >= 0 are stored as NaN.
func (q *MG1Queue) SetSigma(sigma float64) {
	q.setSigma(sigma)
}

type mg1 struct{}

func (mg1) Name() string { return "M/G/1" }
func (mg1) Kind() string { return "mg1" }

func (mg1) IsValid(p *Params) bool {
	return baselineValid(p) && core.IsFinite(p.Sigma)
}

// IsFeasible only looks at λ and μ: a bad σ makes the queue invalid, never
// unstable.
func (mg1) IsFeasible(p *Params) bool {
	if !core.IsFinite(p.ArrivalRate) || !core.IsFinite(p.ServiceRate) {
		return false
	}
	return p.ArrivalRate/p.ServiceRate < 1
}

// Lq = (ρ² + λ²σ²) / (2(1-ρ)), P0 = 1 - ρ
func (mg1) ComputeMetrics(p *Params) (lq, p0 float64) {
	rho := p.ArrivalRate / p.ServiceRate
	lambda, sigma := p.ArrivalRate, p.Sigma
	lq = (rho*rho + lambda*lambda*sigma*sigma) / (2 * (1 - rho))
	p0 = 1 - rho
	return lq, p0
}

func (mg1) extraInputs(p *Params) []Metric {
	return []Metric{{Name: "sigma", Value: p.Sigma}}
}
