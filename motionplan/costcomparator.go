package motionplan

import "golang.org/x/exp/slices"

// costComparator implements a strict weak order over Motions by cost,
// deferring every comparison to the objective's IsCostBetterThan predicate
// (spec §4.4). Kept as its own stateless functor, mirroring the teacher's
// habit of factoring comparator logic out of the planner loop (e.g.
// kNearestNeighbors' sort.Slice callback) rather than inlining it.
type costComparator struct {
	obj OptimizationObjective
}

func newCostComparator(obj OptimizationObjective) *costComparator {
	return &costComparator{obj: obj}
}

// less reports whether a's cost strictly precedes b's in the order induced
// by the objective. Used to sort a slice of Motions by cost; choose-parent
// and rewire compare raw costs through betterCost instead.
func (c *costComparator) less(a, b *Motion) bool {
	return c.obj.IsCostBetterThan(a.cost, b.cost)
}

// betterCost reports whether candidate is strictly preferable to incumbent.
func (c *costComparator) betterCost(candidate, incumbent Cost) bool {
	return c.obj.IsCostBetterThan(candidate, incumbent)
}

// sortByCostAscending sorts motions in place from best to worst cost using
// the objective's order.
func (c *costComparator) sortByCostAscending(motions []*Motion) {
	slices.SortFunc(motions, func(a, b *Motion) int {
		switch {
		case c.less(a, b):
			return -1
		case c.less(b, a):
			return 1
		default:
			return 0
		}
	})
}
