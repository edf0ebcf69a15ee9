package euclidean

import (
	"math"
	"math/rand"

	"github.com/ridgeline-robotics/omniplan/motionplan"
)

// PathLengthObjective implements motionplan.OptimizationObjective as plain
// Euclidean path length: zero state cost, edge cost equal to distance,
// costs combined additively. Grounded on plannerOptions.go's
// defaultDistanceFunc, which scores a motion by the two-norm between
// configurations.
type PathLengthObjective struct {
	space          *SpaceInformation
	rng            *rand.Rand
	optimalityGoal float64 // Solve stops early once BestCost <= this, if > 0
}

// NewPathLengthObjective returns a PathLengthObjective over space. An
// optimalityGoal of zero disables early termination on cost alone (spec
// §4.1's stopping condition then relies solely on the termination
// condition).
func NewPathLengthObjective(space *SpaceInformation, optimalityGoal float64) *PathLengthObjective {
	//nolint:gosec
	return &PathLengthObjective{space: space, rng: rand.New(rand.NewSource(3)), optimalityGoal: optimalityGoal}
}

func (o *PathLengthObjective) StateCost(motionplan.State) motionplan.Cost { return 0 }

func (o *PathLengthObjective) MotionCost(a, b motionplan.State) motionplan.Cost {
	return motionplan.Cost(o.space.Distance(a, b))
}

func (o *PathLengthObjective) CombineCosts(a, b motionplan.Cost) motionplan.Cost { return a + b }

func (o *PathLengthObjective) IdentityCost() motionplan.Cost { return 0 }

func (o *PathLengthObjective) InfiniteCost() motionplan.Cost {
	return motionplan.Cost(math.Inf(1))
}

func (o *PathLengthObjective) IsCostBetterThan(a, b motionplan.Cost) bool { return a < b }

func (o *PathLengthObjective) IsSatisfied(c motionplan.Cost) bool {
	if o.optimalityGoal <= 0 {
		return false
	}
	return float64(c) <= o.optimalityGoal
}

// AverageStateCost is always 0: path length has no per-state cost term,
// only edge cost, so there is nothing to sample. This also means a
// Planner left to default KConstant against this objective gets 0,
// which makes the T-RRT transition test reject every worsening step
// outright rather than admitting some by Metropolis probability. Since the
// planner passes accumulated path costs to that test and every edge of
// positive length raises the cost, with UseTRRT set no motion beyond the
// roots is then admitted.
// Objectives with a real per-state cost term should sample it here.
func (o *PathLengthObjective) AverageStateCost(n int) motionplan.Cost {
	return 0
}

func (o *PathLengthObjective) IsSymmetric() bool { return true }
