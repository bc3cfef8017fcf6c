package queues

import (
	"math"
	"slices"
)

// MMcPriorityQueue is an M/M/c queue whose arrivals are split into
// non-preemptive priority classes. Class 1 has the highest priority.
// System-level metrics use the aggregate λ; the Class* accessors give the
// per-class view. All class indices are 1-based.
type MMcPriorityQueue struct {
	*MMcQueue
}

// NewMMcPriorityQueue creates a priority queue with one arrival rate per
// class, a per-server service rate μ and c servers.
func NewMMcPriorityQueue(classRates []float64, serviceRate, servers float64) *MMcPriorityQueue {
	q := newQueue(mmcPriority{}, math.NaN(), serviceRate)
	q.SetArrivalRates(classRates...)
	q.setServers(servers)
	return &MMcPriorityQueue{MMcQueue: &MMcQueue{Queue: q}}
}

// mmcPriority shares the M/M/c predicates and formulas; only the name differs.
type mmcPriority struct {
	mmc
}

func (mmcPriority) Name() string { return "M/M/c priority" }
func (mmcPriority) Kind() string { return "priority" }

// NumClasses is the number of priority classes.
func (q *MMcPriorityQueue) NumClasses() int {
	return len(q.snapshot().ClassRates)
}

// ClassArrivalRates returns a copy of all per-class arrival rates.
func (q *MMcPriorityQueue) ClassArrivalRates() []float64 {
	return q.snapshot().ClassRates
}

// ClassArrivalRate returns λ_k, or NaN if k is not a class.
func (q *MMcPriorityQueue) ClassArrivalRate(k int) float64 {
	p := q.snapshot()
	if k < 1 || k > len(p.ClassRates) {
		return math.NaN()
	}
	return p.ClassRates[k-1]
}

// classGuard applies the per-class guard order: bad k, invalid system,
// unstable system. ok is false when the sentinel should be returned.
func (q *MMcPriorityQueue) classGuard(p *Params, k, lowest int) (sentinel float64, ok bool) {
	if k < lowest || k > len(p.ClassRates) {
		return math.NaN(), false
	}
	if !q.discipline.IsValid(p) {
		return math.NaN(), false
	}
	if !q.discipline.IsFeasible(p) {
		return math.Inf(1), false
	}
	return 0, true
}

// cumulativeRho is Σ_{j<=k} λ_j/(μc).
func cumulativeRho(p *Params, k int) float64 {
	capacity := p.ServiceRate * p.Servers
	sum := 0.0
	for _, rate := range p.ClassRates[:k] {
		sum += rate / capacity
	}
	return sum
}

// remaining is B_k with B_0 = 1.
func remaining(p *Params, k int) float64 {
	if k == 0 {
		return 1
	}
	return 1 - cumulativeRho(p, k)
}

// RemainingCapacity is B_k = 1 - Σ_{j<=k} λ_j/(μc): the share of service
// capacity left over for classes below k. B_0 = 1.
func (q *MMcPriorityQueue) RemainingCapacity(k int) float64 {
	p := q.snapshot()
	if s, ok := q.classGuard(&p, k, 0); !ok {
		return s
	}
	return remaining(&p, k)
}

// ClassUtilization is ρ_k, the utilization due to classes 1..k.
func (q *MMcPriorityQueue) ClassUtilization(k int) float64 {
	p := q.snapshot()
	if s, ok := q.classGuard(&p, k, 1); !ok {
		return s
	}
	return cumulativeRho(&p, k)
}

// ClassWaitInQueue is Wq_k = (1-ρ)·Lq / (λ·B_{k-1}·B_k).
func (q *MMcPriorityQueue) ClassWaitInQueue(k int) float64 {
	p, lq, _ := q.refreshIfStale()
	if s, ok := q.classGuard(&p, k, 1); !ok {
		return s
	}
	return classWq(&p, lq, k)
}

func classWq(p *Params, lq float64, k int) float64 {
	return (1 - p.Rho()) * lq / (p.ArrivalRate * remaining(p, k-1) * remaining(p, k))
}

// ClassWaitInSystem is W_k = Wq_k + 1/μ.
func (q *MMcPriorityQueue) ClassWaitInSystem(k int) float64 {
	p, lq, _ := q.refreshIfStale()
	if s, ok := q.classGuard(&p, k, 1); !ok {
		return s
	}
	return classWq(&p, lq, k) + 1/p.ServiceRate
}

// ClassQueueLength is Lq_k = λ_k·Wq_k.
func (q *MMcPriorityQueue) ClassQueueLength(k int) float64 {
	p, lq, _ := q.refreshIfStale()
	if s, ok := q.classGuard(&p, k, 1); !ok {
		return s
	}
	return p.ClassRates[k-1] * classWq(&p, lq, k)
}

// ClassSystemCount is L_k = λ_k·W_k.
func (q *MMcPriorityQueue) ClassSystemCount(k int) float64 {
	p, lq, _ := q.refreshIfStale()
	if s, ok := q.classGuard(&p, k, 1); !ok {
		return s
	}
	return p.ClassRates[k-1] * (classWq(&p, lq, k) + 1/p.ServiceRate)
}

// ClassMetric is a snapshot of the per-class metrics of one priority class.
type ClassMetric struct {
	Class             int
	ArrivalRate       float64
	Utilization       float64
	RemainingCapacity float64
	WaitInQueue       float64
	WaitInSystem      float64
	QueueLength       float64
	SystemCount       float64
}

// ClassMetrics returns the metrics of every class, highest priority first.
func (q *MMcPriorityQueue) ClassMetrics() []ClassMetric {
	n := q.NumClasses()
	out := make([]ClassMetric, 0, n)
	for k := 1; k <= n; k++ {
		out = append(out, ClassMetric{
			Class:             k,
			ArrivalRate:       q.ClassArrivalRate(k),
			Utilization:       q.ClassUtilization(k),
			RemainingCapacity: q.RemainingCapacity(k),
			WaitInQueue:       q.ClassWaitInQueue(k),
			WaitInSystem:      q.ClassWaitInSystem(k),
			QueueLength:       q.ClassQueueLength(k),
			SystemCount:       q.ClassSystemCount(k),
		})
	}
	return out
}

// Metrics extends the M/M/c metrics with the per-class values.
func (q *MMcPriorityQueue) Metrics() []Metric {
	ms := slices.Clone(q.Queue.Metrics())
	for _, cm := range q.ClassMetrics() {
		ms = append(ms,
			Metric{Name: classMetricName("lambda", cm.Class), Value: cm.ArrivalRate},
			Metric{Name: classMetricName("rho", cm.Class), Value: cm.Utilization},
			Metric{Name: classMetricName("B", cm.Class), Value: cm.RemainingCapacity},
			Metric{Name: classMetricName("Lq", cm.Class), Value: cm.QueueLength},
			Metric{Name: classMetricName("L", cm.Class), Value: cm.SystemCount},
			Metric{Name: classMetricName("Wq", cm.Class), Value: cm.WaitInQueue},
			Metric{Name: classMetricName("W", cm.Class), Value: cm.WaitInSystem},
		)
	}
	return ms
}

// String renders the priority queue including every class.
func (q *MMcPriorityQueue) String() string {
	return renderMetrics(q.Name()+" queue", q.Metrics())
}

// GetUtilizationInfo reports the server pool plus one cumulative entry per class.
func (q *MMcPriorityQueue) GetUtilizationInfo() []UtilizationInfo {
	infos := q.Queue.GetUtilizationInfo()
	p := q.snapshot()
	for _, cm := range q.ClassMetrics() {
		infos = append(infos, UtilizationInfo{
			ResourceName:      classMetricName("class", cm.Class),
			Utilization:       cm.Utilization,
			Capacity:          p.ServiceRate * p.Servers,
			CurrentLoad:       cm.ArrivalRate,
			WarningThreshold:  DefaultWarningThreshold,
			CriticalThreshold: DefaultCriticalThreshold,
		})
	}
	return infos
}
