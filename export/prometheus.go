// Package export renders queue snapshots in the Prometheus text exposition
// format so that model predictions can be scraped or diffed next to
// measured metrics.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/panyam/queuemodels/scenario"
)

const namespace = "queuemodel"

// metricHelp documents the gauges emitted for each snapshot metric name.
// Per-class metrics ("Wq_2") use the help of their base name.
var metricHelp = map[string]string{
	"lambda": "Arrival rate (customers per unit time).",
	"mu":     "Per-server service rate.",
	"c":      "Number of servers.",
	"sigma":  "Standard deviation of the service time.",
	"rho":    "Traffic intensity lambda/(mu*c).",
	"r":      "Expected number of customers in service.",
	"P0":     "Probability that the system is empty.",
	"Lq":     "Expected number of customers waiting.",
	"L":      "Expected number of customers in the system.",
	"Wq":     "Expected time spent waiting.",
	"W":      "Expected time spent in the system.",
	"B":      "Capacity left for lower priority classes.",
}

// Registry builds a registry holding one gauge vector per metric name, with
// queue, model and class labels.
func Registry(models []scenario.Named) (*prometheus.Registry, error) {
	reg := prometheus.NewRegistry()
	gauges := map[string]*prometheus.GaugeVec{}

	for _, n := range models {
		for _, m := range n.Model.Metrics() {
			base, class := splitClass(m.Name)
			g, ok := gauges[base]
			if !ok {
				g = prometheus.NewGaugeVec(prometheus.GaugeOpts{
					Namespace: namespace,
					Name:      gaugeName(base),
					Help:      helpFor(base),
				}, []string{"queue", "model", "class"})
				if err := reg.Register(g); err != nil {
					return nil, fmt.Errorf("registering %s: %w", base, err)
				}
				gauges[base] = g
			}
			g.WithLabelValues(n.Name, n.Model.Kind(), class).Set(m.Value)
		}
	}
	return reg, nil
}

// WriteText writes every model's metrics in the Prometheus text format.
func WriteText(w io.Writer, models []scenario.Named) error {
	reg, err := Registry(models)
	if err != nil {
		return err
	}
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("writing %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

// splitClass turns "Wq_2" into ("Wq", "2") and "Lq" into ("Lq", "").
func splitClass(name string) (string, string) {
	if i := strings.LastIndexByte(name, '_'); i > 0 {
		return name[:i], name[i+1:]
	}
	return name, ""
}

// gaugeName maps snapshot names to Prometheus-style snake case.
func gaugeName(base string) string {
	switch base {
	case "lambda":
		return "arrival_rate"
	case "mu":
		return "service_rate"
	case "c":
		return "servers"
	case "sigma":
		return "service_time_stddev"
	case "rho":
		return "traffic_intensity"
	case "r":
		return "busy_servers"
	case "P0":
		return "empty_probability"
	case "Lq":
		return "queue_length"
	case "L":
		return "system_length"
	case "Wq":
		return "queue_wait"
	case "W":
		return "system_wait"
	case "B":
		return "remaining_capacity"
	}
	return strings.ToLower(base)
}

func helpFor(base string) string {
	if h, ok := metricHelp[base]; ok {
		return h
	}
	return "Queue model metric " + base + "."
}
