package queues

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMM1Queue_Scenario(t *testing.T) {
	q := NewMM1Queue(15, 20)
	assert.Equal(t, "M/M/1", q.Name())
	assert.InDelta(t, 2.25, q.Lq(), tol)
	assert.InDelta(t, 0.25, q.P0(), tol)
	assert.InDelta(t, 0.75, q.Rho(), tol)
	assert.InDelta(t, 3.0, q.L(), tol)
	assert.InDelta(t, 0.2, q.W(), tol)
	assert.InDelta(t, 0.15, q.Wq(), tol)
}

func TestMM1Queue_ClosedForm(t *testing.T) {
	for _, tc := range []struct{ lambda, mu float64 }{
		{1, 2}, {0.5, 10}, {99, 100}, {3.3, 7.1},
	} {
		q := NewMM1Queue(tc.lambda, tc.mu)
		assert.InDelta(t, tc.lambda*tc.lambda/(tc.mu*(tc.mu-tc.lambda)), q.Lq(), tol)
		assert.InDelta(t, 1-tc.lambda/tc.mu, q.P0(), tol)
	}
}

func TestMMcQueue_Scenario(t *testing.T) {
	q := NewMMcQueue(15, 20, 2)
	assert.Equal(t, 2.0, q.Servers())
	assert.InDelta(t, 0.375, q.Rho(), tol)
	assert.InDelta(t, 0.75, q.R(), tol)

	expectedP0 := 1 / (1 + 0.75 + 0.75*0.75/(2*(1-0.375)))
	assert.InDelta(t, expectedP0, q.P0(), tol)

	expectedLq := (0.75 * 0.75 * 0.375 / (2 * (1 - 0.375) * (1 - 0.375))) * expectedP0
	assert.InDelta(t, expectedLq, q.Lq(), tol)
	assert.InDelta(t, 0.1227272727, q.Lq(), 1e-8)
}

func TestMMcQueue_SingleServerMatchesMM1(t *testing.T) {
	for _, tc := range []struct{ lambda, mu float64 }{
		{15, 20}, {1, 3}, {0.2, 0.25},
	} {
		mmcQ := NewMMcQueue(tc.lambda, tc.mu, 1)
		mm1Q := NewMM1Queue(tc.lambda, tc.mu)
		assert.InDelta(t, mm1Q.Lq(), mmcQ.Lq(), tol)
		assert.InDelta(t, mm1Q.P0(), mmcQ.P0(), tol)
		assert.InDelta(t, mm1Q.W(), mmcQ.W(), tol)
	}
}

func TestMMcQueue_ServerChanges(t *testing.T) {
	q := NewMMcQueue(15, 20, 2)
	twoServers := q.Lq()

	q.SetServers(3)
	assert.Less(t, q.Lq(), twoServers, "adding a server shortens the queue")

	q.SetServers(0)
	assert.True(t, math.IsNaN(q.Servers()))
	assert.True(t, math.IsNaN(q.Lq()))
	assert.True(t, math.IsNaN(q.Rho()))

	q.SetServers(0.5)
	assert.True(t, math.IsInf(q.Lq(), 1), "half a server cannot keep up with rho=1.5")
}

func TestMD1Queue_Scenario(t *testing.T) {
	q := NewMD1Queue(20, 25)
	assert.InDelta(t, 1.6, q.Lq(), tol)
	assert.InDelta(t, 0.2, q.P0(), tol)

	mm1Q := NewMM1Queue(20, 25)
	assert.InDelta(t, mm1Q.Lq()/2, q.Lq(), tol)
}

func TestMG1Queue_Scenario(t *testing.T) {
	q := NewMG1Queue(20, 25, 0.04)
	assert.InDelta(t, 3.2, q.Lq(), tol)
	assert.InDelta(t, 0.2, q.P0(), tol)
	assert.Equal(t, 0.04, q.Sigma())
}

func TestMG1Queue_DeterministicServiceMatchesMD1(t *testing.T) {
	mg1Q := NewMG1Queue(20, 25, 0)
	md1Q := NewMD1Queue(20, 25)
	assert.InDelta(t, md1Q.Lq(), mg1Q.Lq(), tol)
	assert.InDelta(t, md1Q.P0(), mg1Q.P0(), tol)
}

func TestMG1Queue_ExponentialServiceMatchesMM1(t *testing.T) {
	// exponential service has sigma = 1/mu
	mg1Q := NewMG1Queue(15, 20, 1.0/20)
	mm1Q := NewMM1Queue(15, 20)
	assert.InDelta(t, mm1Q.Lq(), mg1Q.Lq(), tol)
}

func TestMG1Queue_Sigma(t *testing.T) {
	q := NewMG1Queue(15, 20, 0)
	assert.Equal(t, 0.0, q.Sigma())

	q.SetSigma(1.2)
	assert.Equal(t, 1.2, q.Sigma())
	assert.True(t, q.Dirty())

	q.SetSigma(-1)
	assert.True(t, math.IsNaN(q.Sigma()))
	assert.True(t, q.Dirty())
	assert.False(t, q.IsValid())
	assert.True(t, q.IsFeasible(), "sigma does not take part in stability")
	assert.True(t, math.IsNaN(q.Lq()))
	assert.True(t, math.IsNaN(q.P0()))
}

func TestMG1Queue_InvalidSigmaBeatsInstability(t *testing.T) {
	q := NewMG1Queue(30, 20, math.Inf(1))
	assert.False(t, q.IsFeasible())
	assert.True(t, math.IsNaN(q.Lq()), "invalid inputs are reported before instability")

	q.SetSigma(1)
	assert.True(t, math.IsInf(q.Lq(), 1))
}

func TestErlangMetrics(t *testing.T) {
	// c = 1 reduces to the M/M/1 values
	lq, p0 := erlangMetrics(0.75, 1, 0.75)
	assert.InDelta(t, 0.25, p0, tol)
	assert.InDelta(t, 2.25, lq, tol)

	lq, p0 = erlangMetrics(0.75, 2, 0.375)
	assert.InDelta(t, 0.45454545454545453, p0, tol)
	assert.InDelta(t, 0.12272727272727273, lq, tol)

	// non-integer c uses Γ(c+1) and sums over i = 0, 1, 2
	lq, p0 = erlangMetrics(1.5, 2.5, 0.6)
	assert.InDelta(t, 0.17550125669547167, p0, tol)
	assert.InDelta(t, 0.5457119167183725, lq, tol)
}

func TestMMcQueue_ManyServers(t *testing.T) {
	tests := []struct {
		lambda, mu, c float64
		p0, lq        float64
	}{
		{100, 1, 171, 3.7200759760158597e-44, 1.0168411600101504e-10},
		{150, 1, 200, 7.175074051693259e-66, 0.00018045578320624895},
		{250, 1, 300, 2.6689269242003186e-109, 0.0063045993871142575},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("c=%v", tt.c), func(t *testing.T) {
			q := NewMMcQueue(tt.lambda, tt.mu, tt.c)
			require.True(t, q.IsFeasible())
			assert.False(t, math.IsNaN(q.Lq()) || math.IsInf(q.Lq(), 0))
			assert.InEpsilon(t, tt.p0, q.P0(), 1e-7)
			assert.InEpsilon(t, tt.lq, q.Lq(), 1e-7)
		})
	}

	// a very large pool stays finite and close to an empty queue
	q := NewMMcQueue(1, 1, 20000)
	assert.InDelta(t, 0, q.Lq(), tol)
	assert.InDelta(t, math.Exp(-1), q.P0(), tol)
}
