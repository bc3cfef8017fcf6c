package queues

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// --- Helper functions for the M/M/c formulas ---

// erlangMetrics returns P0 and Lq of an M/M/c system with offered load r,
// c servers and utilization ρ = r/c < 1:
//
//	P0 = 1 / ( Σ_{i<c} r^i/i!  +  r^c / (c! (1-ρ)) )
//	Lq = r^c ρ / (c! (1-ρ)^2) · P0
//
// The terms r^i/i! are built incrementally as logarithms and combined with a
// log-sum-exp, so large c or r neither overflows nor costs more than O(c).
// For non-integer c the sum runs over whole i < c and c! is Γ(c+1).
func erlangMetrics(r, c, rho float64) (lq, p0 float64) {
	logR := math.Log(r)

	logTerms := make([]float64, 0, int(math.Ceil(c))+1)
	logTerm := 0.0 // log(r^0/0!)
	for i := 0.0; i < c; i++ {
		if i > 0 {
			logTerm += logR - math.Log(i)
		}
		logTerms = append(logTerms, logTerm)
	}

	var logC float64 // log(r^c/c!)
	if c == math.Trunc(c) {
		logC = logTerm + logR - math.Log(c)
	} else {
		lg, _ := math.Lgamma(c + 1)
		logC = c*logR - lg
	}
	logTail := logC - math.Log(1-rho)
	logTerms = append(logTerms, logTail)

	logDenom := floats.LogSumExp(logTerms)
	p0 = math.Exp(-logDenom)
	// r^c/(c!(1-ρ)) · P0, times ρ/(1-ρ)
	lq = math.Exp(logTail-logDenom) * rho / (1 - rho)
	return lq, p0
}
