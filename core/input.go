package core

import (
	"encoding/json"
	"math"
	"strconv"

	"gonum.org/v1/gonum/floats"
)

// Input is a scalar queue parameter that has been through validation.
// It is either a Number or Invalid; an Invalid input always reads back as NaN.
type Input struct {
	value float64
	ok    bool
}

// Number wraps a value that already passed validation.
func Number(v float64) Input {
	return Input{value: v, ok: true}
}

// Invalid is the input that failed validation.
func Invalid() Input {
	return Input{value: math.NaN()}
}

// Valid reports whether the input holds a real number.
func (in Input) Valid() bool {
	return in.ok
}

// Float returns the number, or NaN for an invalid input.
func (in Input) Float() float64 {
	if !in.ok {
		return math.NaN()
	}
	return in.value
}

func (in Input) String() string {
	if !in.ok {
		return "invalid"
	}
	return strconv.FormatFloat(in.value, 'g', -1, 64)
}

// Positive accepts finite values strictly greater than zero.
func Positive(v float64) Input {
	if !IsFinite(v) || v <= 0 {
		return Invalid()
	}
	return Number(v)
}

// NonNegative accepts finite values greater than or equal to zero.
func NonNegative(v float64) Input {
	if !IsFinite(v) || v < 0 {
		return Invalid()
	}
	return Number(v)
}

// FromAny converts a loosely typed value (decoded YAML/JSON, CLI args that were
// already parsed) into a float. Only Go numeric kinds and json.Number are numbers;
// strings, bools, nil and anything else are reported as not numeric.
func FromAny(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return math.NaN(), false
		}
		return f, true
	}
	return math.NaN(), false
}

// PositiveAny validates a loosely typed value the same way Positive does,
// treating non-numeric values as invalid.
func PositiveAny(v any) Input {
	f, ok := FromAny(v)
	if !ok {
		return Invalid()
	}
	return Positive(f)
}

// NonNegativeAny is the loosely typed counterpart of NonNegative.
func NonNegativeAny(v any) Input {
	f, ok := FromAny(v)
	if !ok {
		return Invalid()
	}
	return NonNegative(f)
}

// Rates is an ordered sequence of per-class arrival rates together with
// their aggregate. If any element failed validation every slot is NaN and so
// is the total; the length is preserved either way.
type Rates struct {
	Classes []float64
	Total   float64
}

// AggregateRates validates each class rate (finite, > 0) and sums them.
// An empty sequence, or one whose sum overflows, has no valid total.
func AggregateRates(rates []float64) Rates {
	out := Rates{Classes: make([]float64, len(rates))}
	valid := len(rates) > 0
	for i, r := range rates {
		in := Positive(r)
		if !in.Valid() {
			valid = false
		}
		out.Classes[i] = in.Float()
	}
	if !valid {
		for i := range out.Classes {
			out.Classes[i] = math.NaN()
		}
		out.Total = math.NaN()
		return out
	}
	out.Total = floats.Sum(out.Classes)
	if !IsFinite(out.Total) {
		for i := range out.Classes {
			out.Classes[i] = math.NaN()
		}
		out.Total = math.NaN()
	}
	return out
}

// AggregateAny is AggregateRates for a decoded scalar-or-list value.
func AggregateAny(v any) Rates {
	switch items := v.(type) {
	case []any:
		rates := make([]float64, len(items))
		for i, item := range items {
			rates[i] = PositiveAny(item).Float()
		}
		return AggregateRates(rates)
	case []float64:
		return AggregateRates(items)
	case []int:
		rates := make([]float64, len(items))
		for i, item := range items {
			rates[i] = float64(item)
		}
		return AggregateRates(rates)
	}
	return AggregateRates([]float64{PositiveAny(v).Float()})
}
