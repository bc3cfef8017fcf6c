package queues

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	gfn "github.com/panyam/goutils/fn"
)

// Metric is one named value in a queue snapshot.
type Metric struct {
	Name  string
	Value float64
}

// Metrics returns every input and derived metric of the queue, inputs first.
// Lq and P0 are read through the cache like any other getter.
func (q *Queue) Metrics() []Metric {
	p, lq, p0 := q.refreshIfStale()
	r := p.OfferedLoad()
	l := lq + r

	ms := []Metric{
		{Name: "lambda", Value: p.ArrivalRate},
		{Name: "mu", Value: p.ServiceRate},
	}
	if il, ok := q.discipline.(inputLister); ok {
		ms = append(ms, il.extraInputs(&p)...)
	}
	return append(ms,
		Metric{Name: "rho", Value: p.Rho()},
		Metric{Name: "r", Value: r},
		Metric{Name: "P0", Value: p0},
		Metric{Name: "Lq", Value: lq},
		Metric{Name: "L", Value: l},
		Metric{Name: "Wq", Value: lq / p.ArrivalRate},
		Metric{Name: "W", Value: l / p.ArrivalRate},
	)
}

// String lists every input and derived metric with its current value.
func (q *Queue) String() string {
	return renderMetrics(q.Name()+" queue", q.Metrics())
}

func renderMetrics(title string, ms []Metric) string {
	lines := gfn.Map(ms, func(m Metric) string {
		return fmt.Sprintf("\t%s: %s", m.Name, FormatValue(m.Value, -1))
	})
	return title + "\n" + strings.Join(lines, "\n")
}

// FormatValue renders a metric, spelling out the sentinels. A negative
// precision uses the shortest exact representation.
func FormatValue(v float64, precision int) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	}
	if precision < 0 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

func classMetricName(name string, k int) string {
	return fmt.Sprintf("%s_%d", name, k)
}
