package queues

import (
	"fmt"
	"math"
)

// Model is the common surface of every queue in this package.
type Model interface {
	fmt.Stringer
	UtilizationProvider

	Name() string
	Kind() string
	Dirty() bool
	Params() Params
	IsValid() bool
	IsFeasible() bool

	SetArrivalRate(lambda float64)
	SetArrivalRates(rates ...float64)
	SetServiceRate(mu float64)

	Lq() float64
	P0() float64
	L() float64
	W() float64
	Wq() float64
	R() float64
	Rho() float64
	Utilization() float64
	Metrics() []Metric
}

var (
	_ Model = (*MM1Queue)(nil)
	_ Model = (*MMcQueue)(nil)
	_ Model = (*MD1Queue)(nil)
	_ Model = (*MG1Queue)(nil)
	_ Model = (*MMcPriorityQueue)(nil)
)

const (
	DefaultWarningThreshold  = 0.8
	DefaultCriticalThreshold = 0.95
)

// UtilizationProvider is an interface for models that can report their utilization.
type UtilizationProvider interface {
	// GetUtilizationInfo returns one entry per resource. Queues report their
	// server pool; priority queues add one cumulative entry per class.
	GetUtilizationInfo() []UtilizationInfo
}

// UtilizationInfo represents utilization information for a resource.
type UtilizationInfo struct {
	// ResourceName identifies the resource (e.g., "servers", "class_2")
	ResourceName string

	// ComponentPath is the name the owning queue was registered under, if any
	ComponentPath string

	// Utilization is the current utilization, NaN for invalid inputs
	Utilization float64

	// Capacity is the service capacity μ·c
	Capacity float64

	// CurrentLoad is the arrival rate feeding the resource
	CurrentLoad float64

	// IsBottleneck is set by GetBottleneckUtilization
	IsBottleneck bool

	WarningThreshold  float64
	CriticalThreshold float64
}

// Status classifies the utilization against its thresholds.
func (u UtilizationInfo) Status() string {
	switch {
	case math.IsNaN(u.Utilization):
		return "INVALID"
	case u.Utilization >= 1:
		return "UNSTABLE"
	case u.Utilization >= u.CriticalThreshold:
		return "CRITICAL"
	case u.Utilization >= u.WarningThreshold:
		return "WARNING"
	case u.Utilization >= 0.5:
		return "MODERATE"
	default:
		return "OK"
	}
}

// GetUtilizationInfo reports the server pool of the queue.
func (q *Queue) GetUtilizationInfo() []UtilizationInfo {
	p := q.snapshot()
	return []UtilizationInfo{{
		ResourceName:      "servers",
		Utilization:       p.Rho(),
		Capacity:          p.ServiceRate * p.Servers,
		CurrentLoad:       p.ArrivalRate,
		WarningThreshold:  DefaultWarningThreshold,
		CriticalThreshold: DefaultCriticalThreshold,
	}}
}

// GetBottleneckUtilization returns the highest utilization among all resources
// and marks it as the bottleneck. NaN utilizations are never the bottleneck.
func GetBottleneckUtilization(infos []UtilizationInfo) *UtilizationInfo {
	if len(infos) == 0 {
		return nil
	}

	var bottleneck *UtilizationInfo
	maxUtil := 0.0

	for i := range infos {
		if infos[i].Utilization > maxUtil {
			maxUtil = infos[i].Utilization
			bottleneck = &infos[i]
		}
	}

	if bottleneck != nil {
		bottleneck.IsBottleneck = true
	}

	return bottleneck
}
