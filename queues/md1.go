package queues

// MD1Queue models a single server with Poisson arrivals and deterministic
// service times. Its queue is half as long as the M/M/1 queue with the same
// rates.
type MD1Queue struct {
	*Queue
}

// NewMD1Queue creates an M/D/1 queue with arrival rate λ and service rate μ.
func NewMD1Queue(arrivalRate, serviceRate float64) *MD1Queue {
	return &MD1Queue{Queue: newQueue(md1{}, arrivalRate, serviceRate)}
}

type md1 struct{}

func (md1) Name() string              { return "M/D/1" }
func (md1) Kind() string              { return "md1" }
func (md1) IsValid(p *Params) bool    { return baselineValid(p) }
func (md1) IsFeasible(p *Params) bool { return baselineFeasible(p) }

// Lq = λ² / (2μ(μ-λ)), P0 = 1 - ρ
func (md1) ComputeMetrics(p *Params) (lq, p0 float64) {
	lambda, mu := p.ArrivalRate, p.ServiceRate
	lq = (lambda * lambda) / (2 * mu * (mu - lambda))
	p0 = 1 - p.Rho()
	return lq, p0
}
