package queues

// MMcQueue models c identical servers sharing one FIFO queue with Poisson
// arrivals and exponential service times (Erlang C).
type MMcQueue struct {
	*Queue
}

// NewMMcQueue creates an M/M/c queue with arrival rate λ, per-server service
// rate μ and c servers.
func NewMMcQueue(arrivalRate, serviceRate, servers float64) *MMcQueue {
	return &MMcQueue{Queue: newMMcQueue(arrivalRate, serviceRate, servers)}
}

func newMMcQueue(arrivalRate, serviceRate, servers float64) *Queue {
	q := newQueue(mmc{}, arrivalRate, serviceRate)
	q.setServers(servers)
	return q
}

// Servers returns c, or NaN if the last value set was invalid.
func (q *MMcQueue) Servers() float64 {
	return q.snapshot().Servers
}

// SetServers sets c. Values that are not finite and positive are stored as NaN.
func (q *MMcQueue) SetServers(c float64) {
	q.setServers(c)
}

type mmc struct{}

func (mmc) Name() string { return "M/M/c" }
func (mmc) Kind() string { return "mmc" }

func (mmc) IsValid(p *Params) bool {
	return baselineValid(p)
}

func (m mmc) IsFeasible(p *Params) bool {
	return m.IsValid(p) && p.Rho() < 1
}

// ComputeMetrics uses the M/M/1 closed form for one server and the Erlang-C
// expressions otherwise, with Lq scaled by the P0 of the same pass.
func (mmc) ComputeMetrics(p *Params) (lq, p0 float64) {
	c := p.Servers
	rho := p.Rho()
	if c == 1 {
		return mm1Metrics(p.ArrivalRate, p.ServiceRate)
	}
	return erlangMetrics(p.OfferedLoad(), c, rho)
}

func (mmc) extraInputs(p *Params) []Metric {
	return []Metric{{Name: "c", Value: p.Servers}}
}
