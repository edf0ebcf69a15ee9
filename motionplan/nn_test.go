package motionplan

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func stubDistance(a, b State) float64 {
	return math.Abs(float64(a.(stubState)) - float64(b.(stubState)))
}

func TestLinearNearestNeighborsNearest(t *testing.T) {
	nn := NewLinearNearestNeighbors(stubDistance)
	test.That(t, nn.Nearest(stubState(0)), test.ShouldBeNil)

	obj := sumObjective{}
	m1 := newRootMotion(stubState(1), obj)
	m2 := newRootMotion(stubState(5), obj)
	m3 := newRootMotion(stubState(9), obj)
	nn.Add(m1)
	nn.Add(m2)
	nn.Add(m3)

	test.That(t, nn.Size(), test.ShouldEqual, 3)
	test.That(t, nn.Nearest(stubState(6)), test.ShouldEqual, m2)
	test.That(t, nn.Nearest(stubState(0)), test.ShouldEqual, m1)
}

func TestLinearNearestNeighborsNearestKOrdersAscending(t *testing.T) {
	nn := NewLinearNearestNeighbors(stubDistance)
	obj := sumObjective{}
	for _, v := range []stubState{0, 10, 20, 30} {
		nn.Add(newRootMotion(v, obj))
	}

	k := nn.NearestK(stubState(21), 2)
	test.That(t, len(k), test.ShouldEqual, 2)
	test.That(t, k[0].State, test.ShouldEqual, stubState(20))
	test.That(t, k[1].State, test.ShouldEqual, stubState(30))
}

func TestLinearNearestNeighborsNearestKClampsToSize(t *testing.T) {
	nn := NewLinearNearestNeighbors(stubDistance)
	obj := sumObjective{}
	nn.Add(newRootMotion(stubState(1), obj))

	k := nn.NearestK(stubState(0), 5)
	test.That(t, len(k), test.ShouldEqual, 1)
}

func TestLinearNearestNeighborsSetDistanceFunctionSwapsOrientation(t *testing.T) {
	// asymmetric "distance": positive only when the first argument exceeds
	// the second, zero otherwise. Swapping argument order changes which
	// stored state comes out nearest.
	asymmetric := func(a, b State) float64 {
		diff := float64(a.(stubState)) - float64(b.(stubState))
		if diff < 0 {
			return 0
		}
		return diff
	}
	nn := NewLinearNearestNeighbors(asymmetric)
	obj := sumObjective{}
	near := newRootMotion(stubState(2), obj)
	far := newRootMotion(stubState(8), obj)
	nn.Add(near)
	nn.Add(far)

	// distFn(m.State, target): near scores 0, far scores 3.
	test.That(t, nn.Nearest(stubState(5)), test.ShouldEqual, near)

	nn.SetDistanceFunction(func(a, b State) float64 { return asymmetric(b, a) })

	// distFn(m.State, target) now evaluates asymmetric(target, m.State):
	// near scores 3, far scores 0.
	test.That(t, nn.Nearest(stubState(5)), test.ShouldEqual, far)
}

func TestLinearNearestNeighborsClear(t *testing.T) {
	nn := NewLinearNearestNeighbors(stubDistance)
	obj := sumObjective{}
	nn.Add(newRootMotion(stubState(1), obj))
	nn.Clear()
	test.That(t, nn.Size(), test.ShouldEqual, 0)
	test.That(t, nn.List(), test.ShouldBeEmpty)
}
