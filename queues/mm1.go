package queues

// MM1Queue models a single server with Poisson arrivals and exponential
// service times.
type MM1Queue struct {
	*Queue
}

// NewMM1Queue creates an M/M/1 queue with arrival rate λ and service rate μ.
func NewMM1Queue(arrivalRate, serviceRate float64) *MM1Queue {
	return &MM1Queue{Queue: newQueue(mm1{}, arrivalRate, serviceRate)}
}

type mm1 struct{}

func (mm1) Name() string              { return "M/M/1" }
func (mm1) Kind() string              { return "mm1" }
func (mm1) IsValid(p *Params) bool    { return baselineValid(p) }
func (mm1) IsFeasible(p *Params) bool { return baselineFeasible(p) }

func (mm1) ComputeMetrics(p *Params) (float64, float64) {
	return mm1Metrics(p.ArrivalRate, p.ServiceRate)
}

// mm1Metrics: Lq = λ² / (μ(μ-λ)), P0 = 1 - λ/μ
func mm1Metrics(lambda, mu float64) (lq, p0 float64) {
	lq = (lambda * lambda) / (mu * (mu - lambda))
	p0 = 1 - lambda/mu
	return lq, p0
}
