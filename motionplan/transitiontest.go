package motionplan

import (
	"math"
	"math/rand"
)

// transitionTest is the stateful T-RRT Metropolis acceptance test (spec
// §4.2). It decides whether a newly steered state should be admitted into
// the tree given the cost of the state it was steered from, adapting its
// internal temperature on repeated rejection so the planner keeps exploring
// through unfavorable cost regions rather than stalling.
type transitionTest struct {
	opt *Options
	rng *rand.Rand

	temperature     float64
	numStatesFailed int
}

func newTransitionTest(opt *Options, rng *rand.Rand) *transitionTest {
	return &transitionTest{
		opt:         opt,
		rng:         rng,
		temperature: opt.InitTemperature,
	}
}

// accept reports whether a motion from a state with cost costNear to a
// candidate state with cost costNew, separated by the given configuration
// distance, should be admitted. An improving step (costNew not worse than
// costNear) is always accepted. A worsening step's slope,
// (costNew-costNear)/distance, is accepted with Metropolis probability
// exp(-slope / (KConstant * temperature)) (spec §4.2 steps 2-3), and if
// rejected enough times in a row, the temperature is raised so future
// worsening steps become easier to accept.
func (tt *transitionTest) accept(costNear, costNew Cost, distance float64, obj OptimizationObjective) bool {
	if !obj.IsCostBetterThan(costNear, costNew) {
		// costNew is not worse than costNear: free transition.
		tt.numStatesFailed = 0
		return true
	}

	if distance <= 0 {
		distance = 1e-9
	}

	slope := (float64(costNew) - float64(costNear)) / distance
	transitionProbability := math.Exp(-slope / (tt.opt.KConstant * tt.temperature))

	if transitionProbability > tt.rng.Float64() {
		tt.numStatesFailed = 0
		tt.coolDown()
		return true
	}

	tt.registerRejection()
	return false
}

// registerRejection increments the consecutive-failure counter and raises
// the temperature once it reaches MaxStatesFailed, resetting the counter
// (spec §4.2 step 5). Called both from accept on a Metropolis rejection and
// from minExpansionControl.admit on a frontier-ratio rejection (spec §4.3),
// since both signal the tree is struggling to expand from here.
func (tt *transitionTest) registerRejection() {
	tt.numStatesFailed++
	if tt.numStatesFailed >= tt.opt.MaxStatesFailed {
		tt.heatUp()
		tt.numStatesFailed = 0
	}
}

// heatUp raises the temperature by TempChangeFactor, making subsequent
// worsening transitions easier to accept. Unbounded above: spec §4.2 only
// constrains the lower bound.
func (tt *transitionTest) heatUp() {
	tt.temperature *= tt.opt.TempChangeFactor
}

// coolDown lowers the temperature after an accepted worsening transition,
// clamped at MinTemperature so the test never becomes deterministic-reject.
func (tt *transitionTest) coolDown() {
	tt.temperature /= tt.opt.TempChangeFactor
	if tt.temperature < tt.opt.MinTemperature {
		tt.temperature = tt.opt.MinTemperature
	}
}
