package queues

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScenarioPriorityQueue() *MMcPriorityQueue {
	return NewMMcPriorityQueue([]float64{6, 4, 5}, 20, 2)
}

func TestPriorityQueue_Init(t *testing.T) {
	q := newScenarioPriorityQueue()
	assert.True(t, q.Dirty())
	assert.InDelta(t, 15, q.ArrivalRate(), tol)
	assert.InDelta(t, 20, q.ServiceRate(), tol)
	assert.Equal(t, 3, q.NumClasses())
	if diff := cmp.Diff([]float64{6, 4, 5}, q.ClassArrivalRates()); diff != "" {
		t.Errorf("class rates mismatch (-want +got):\n%s", diff)
	}
}

func TestPriorityQueue_ArrivalRates(t *testing.T) {
	q := newScenarioPriorityQueue()

	q.SetArrivalRates(10, 5)
	assert.InDelta(t, 15, q.ArrivalRate(), tol)
	assert.Equal(t, []float64{10, 5}, q.ClassArrivalRates())

	q.SetArrivalRates(7, -8, 1)
	assert.True(t, math.IsNaN(q.ArrivalRate()))
	want := []float64{math.NaN(), math.NaN(), math.NaN()}
	if diff := cmp.Diff(want, q.ClassArrivalRates(), cmpopts.EquateNaNs()); diff != "" {
		t.Errorf("invalid rates must keep their shape (-want +got):\n%s", diff)
	}
	assert.False(t, q.IsValid())

	q.SetArrivalRates()
	assert.True(t, math.IsNaN(q.ArrivalRate()))
	assert.Empty(t, q.ClassArrivalRates())
}

func TestPriorityQueue_ClassArrivalRate(t *testing.T) {
	q := newScenarioPriorityQueue()
	assert.Equal(t, 6.0, q.ClassArrivalRate(1))
	assert.Equal(t, 4.0, q.ClassArrivalRate(2))
	assert.Equal(t, 5.0, q.ClassArrivalRate(3))
	assert.True(t, math.IsNaN(q.ClassArrivalRate(0)))
	assert.True(t, math.IsNaN(q.ClassArrivalRate(4)))
}

func TestPriorityQueue_RemainingCapacity(t *testing.T) {
	q := newScenarioPriorityQueue()
	assert.InDelta(t, 1.0, q.RemainingCapacity(0), tol)
	assert.InDelta(t, 0.85, q.RemainingCapacity(1), tol)
	assert.InDelta(t, 0.75, q.RemainingCapacity(2), tol)
	assert.InDelta(t, 0.625, q.RemainingCapacity(3), tol)

	assert.True(t, math.IsNaN(q.RemainingCapacity(-1)))
	assert.True(t, math.IsNaN(q.RemainingCapacity(4)))
}

func TestPriorityQueue_ClassUtilization(t *testing.T) {
	q := newScenarioPriorityQueue()
	assert.InDelta(t, 0.15, q.ClassUtilization(1), tol)
	assert.InDelta(t, 0.25, q.ClassUtilization(2), tol)
	assert.InDelta(t, q.Rho(), q.ClassUtilization(3), tol)

	assert.True(t, math.IsNaN(q.ClassUtilization(0)))
	assert.True(t, math.IsNaN(q.ClassUtilization(4)))
}

func TestPriorityQueue_ClassWaits(t *testing.T) {
	q := newScenarioPriorityQueue()
	lq, lambda, rho := q.Lq(), q.ArrivalRate(), q.Rho()

	for k := 1; k <= 3; k++ {
		wq := q.ClassWaitInQueue(k)
		expected := (1 - rho) * lq / (lambda * q.RemainingCapacity(k-1) * q.RemainingCapacity(k))
		assert.InDelta(t, expected, wq, tol, "class %d", k)
		assert.InDelta(t, wq+1.0/20, q.ClassWaitInSystem(k), tol, "class %d", k)
		assert.InDelta(t, q.ClassArrivalRate(k)*wq, q.ClassQueueLength(k), tol, "class %d", k)
		assert.InDelta(t, q.ClassArrivalRate(k)*q.ClassWaitInSystem(k), q.ClassSystemCount(k), tol, "class %d", k)
	}

	// higher priority classes wait less
	assert.Less(t, q.ClassWaitInQueue(1), q.ClassWaitInQueue(2))
	assert.Less(t, q.ClassWaitInQueue(2), q.ClassWaitInQueue(3))

	// the class queues add up to the system queue
	total := q.ClassQueueLength(1) + q.ClassQueueLength(2) + q.ClassQueueLength(3)
	assert.InDelta(t, lq, total, 1e-6)

	for _, k := range []int{0, -1, 4} {
		assert.True(t, math.IsNaN(q.ClassWaitInQueue(k)))
		assert.True(t, math.IsNaN(q.ClassWaitInSystem(k)))
		assert.True(t, math.IsNaN(q.ClassQueueLength(k)))
		assert.True(t, math.IsNaN(q.ClassSystemCount(k)))
	}
}

func TestPriorityQueue_SentinelGuards(t *testing.T) {
	unstable := NewMMcPriorityQueue([]float64{30, 20}, 20, 2)
	require.True(t, unstable.IsValid())
	require.False(t, unstable.IsFeasible())
	assert.True(t, math.IsInf(unstable.RemainingCapacity(1), 1))
	assert.True(t, math.IsInf(unstable.ClassUtilization(2), 1))
	assert.True(t, math.IsInf(unstable.ClassWaitInQueue(1), 1))
	assert.True(t, math.IsInf(unstable.ClassSystemCount(2), 1))
	assert.True(t, math.IsNaN(unstable.ClassWaitInQueue(3)), "a bad index is reported before instability")
	assert.Equal(t, 30.0, unstable.ClassArrivalRate(1))

	invalid := NewMMcPriorityQueue([]float64{3, 4}, 20, -2)
	assert.True(t, math.IsNaN(invalid.RemainingCapacity(0)))
	assert.True(t, math.IsNaN(invalid.ClassWaitInSystem(1)))
}

func TestPriorityQueue_BadIndexLeavesStateAlone(t *testing.T) {
	q := newScenarioPriorityQueue()
	lq := q.Lq()
	_ = q.ClassWaitInQueue(99)
	_ = q.RemainingCapacity(-3)
	assert.False(t, q.Dirty())
	assert.Equal(t, lq, q.Lq())
	assert.Equal(t, 3, q.NumClasses())
}

func TestPriorityQueue_ClassMetrics(t *testing.T) {
	q := newScenarioPriorityQueue()
	cms := q.ClassMetrics()
	require.Len(t, cms, 3)
	assert.Equal(t, 2, cms[1].Class)
	assert.InDelta(t, 0.75, cms[1].RemainingCapacity, tol)
	assert.InDelta(t, q.ClassWaitInQueue(3), cms[2].WaitInQueue, tol)
}
