// Package scenario reads YAML files describing a set of named queues and
// builds the corresponding models.
//
//	queues:
//	  - name: checkout
//	    model: mmc
//	    arrival: 15
//	    service: 20
//	    servers: 2
//	  - name: support
//	    model: priority
//	    arrival: [6, 4, 5]
//	    service: 20
//	    servers: 2
//
// Numeric fields are kept loosely typed so that a value like "ten" decodes
// and then surfaces as an invalid (NaN) input on the model, the same way an
// out-of-range number does.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/panyam/queuemodels/core"
	"github.com/panyam/queuemodels/queues"
)

var ErrUnknownModel = errors.New("unknown queue model")

// QueueSpec is one queue entry in a scenario file.
type QueueSpec struct {
	Name    string `yaml:"name"`
	Model   string `yaml:"model"`
	Arrival any    `yaml:"arrival"`
	Service any    `yaml:"service"`
	Servers any    `yaml:"servers,omitempty"`
	Sigma   any    `yaml:"sigma,omitempty"`
}

// Scenario is the top-level document.
type Scenario struct {
	Queues []QueueSpec `yaml:"queues"`
}

// Named pairs a built model with the name it was declared under.
type Named struct {
	Name  string
	Model queues.Model
}

var builders = map[string]func(s QueueSpec) queues.Model{
	"mm1": func(s QueueSpec) queues.Model {
		q := queues.NewMM1Queue(1, s.service())
		q.SetArrivalRates(s.arrival()...)
		return q
	},
	"md1": func(s QueueSpec) queues.Model {
		q := queues.NewMD1Queue(1, s.service())
		q.SetArrivalRates(s.arrival()...)
		return q
	},
	"mg1": func(s QueueSpec) queues.Model {
		q := queues.NewMG1Queue(1, s.service(), s.sigma())
		q.SetArrivalRates(s.arrival()...)
		return q
	},
	"mmc": func(s QueueSpec) queues.Model {
		q := queues.NewMMcQueue(1, s.service(), s.servers())
		q.SetArrivalRates(s.arrival()...)
		return q
	},
	"priority": func(s QueueSpec) queues.Model {
		return queues.NewMMcPriorityQueue(s.arrival(), s.service(), s.servers())
	},
}

// Models lists the model kinds a scenario may use.
func Models() []string {
	kinds := make([]string, 0, len(builders))
	for k := range builders {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

func (s QueueSpec) arrival() []float64 {
	return core.AggregateAny(s.Arrival).Classes
}

func (s QueueSpec) service() float64 {
	return core.PositiveAny(s.Service).Float()
}

func (s QueueSpec) servers() float64 {
	if s.Servers == nil {
		return 1
	}
	return core.PositiveAny(s.Servers).Float()
}

func (s QueueSpec) sigma() float64 {
	if s.Sigma == nil {
		return 0
	}
	return core.NonNegativeAny(s.Sigma).Float()
}

// Build creates the model described by the spec. The only error is an
// unknown model kind; bad numbers become NaN inputs on the model.
func (s QueueSpec) Build() (queues.Model, error) {
	build, ok := builders[strings.ToLower(strings.TrimSpace(s.Model))]
	if !ok {
		return nil, fmt.Errorf("queue %q: %w %q (expected one of %s)",
			s.Name, ErrUnknownModel, s.Model, strings.Join(Models(), ", "))
	}
	return build(s), nil
}

// Build creates every queue in the scenario, in file order.
func (sc *Scenario) Build() ([]Named, error) {
	out := make([]Named, 0, len(sc.Queues))
	for i, spec := range sc.Queues {
		m, err := spec.Build()
		if err != nil {
			return nil, err
		}
		name := spec.Name
		if name == "" {
			name = fmt.Sprintf("queue%d", i+1)
		}
		out = append(out, Named{Name: name, Model: m})
	}
	return out, nil
}

// Decode parses a scenario document.
func Decode(r io.Reader) (*Scenario, error) {
	var sc Scenario
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil {
		if errors.Is(err, io.EOF) {
			return &sc, nil
		}
		return nil, fmt.Errorf("decoding scenario: %w", err)
	}
	return &sc, nil
}

// Parse parses a scenario from bytes.
func Parse(data []byte) (*Scenario, error) {
	return Decode(bytes.NewReader(data))
}

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening scenario: %w", err)
	}
	defer f.Close()
	return Decode(f)
}
