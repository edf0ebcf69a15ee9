package euclidean

import (
	"context"
	"math/rand"
	"testing"

	"go.viam.com/test"

	"github.com/ridgeline-robotics/omniplan/motionplan"
)

func newTestPlanner(space *SpaceInformation, opt *motionplan.Options) *motionplan.Planner {
	obj := NewPathLengthObjective(space, 0)
	nn := motionplan.NewLinearNearestNeighbors(space.Distance)
	return motionplan.NewPlannerWithSeed(space, obj, nn, opt, nil, rand.New(rand.NewSource(7)))
}

func TestTrivialStraightLineSolve(t *testing.T) {
	space := NewSpaceInformation([]float64{0, 0}, []float64{10, 10}, 0.1, rand.New(rand.NewSource(42)))
	opt := motionplan.NewDefaultOptions()
	opt.UseTRRT = false
	planner := newTestPlanner(space, opt)

	goal := NewRegionGoal(space, Vector{9, 9}, 0.5, 1)
	tc := motionplan.NewIterationTerminationCondition(2000)
	result, err := planner.Solve(context.Background(), []motionplan.State{Vector{0, 0}}, goal, tc)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, result, test.ShouldNotBeNil)
	test.That(t, len(result.Path), test.ShouldBeGreaterThan, 1)
}

// TestTrivialStraightLineScenario reproduces spec.md's concrete scenario 1
// verbatim: a 2-D unit square, start (0,0), goal disk of radius 0.05 around
// (1,1), no obstacles, range=0.2, goalBias=0.05, seed=1, budget 2000
// iterations. An exact solution must be found with bestCost within ~2.5%
// of sqrt(2).
func TestTrivialStraightLineScenario(t *testing.T) {
	space := NewSpaceInformation([]float64{0, 0}, []float64{1, 1}, 0.01, rand.New(rand.NewSource(1)))
	obj := NewPathLengthObjective(space, 0)
	nn := motionplan.NewLinearNearestNeighbors(space.Distance)
	opt := motionplan.NewDefaultOptions()
	opt.Range = 0.2
	opt.GoalBias = 0.05
	opt.UseTRRT = false
	planner := motionplan.NewPlannerWithSeed(space, obj, nn, opt, nil, rand.New(rand.NewSource(1)))

	goal := NewRegionGoal(space, Vector{1, 1}, 0.05, 1)
	tc := motionplan.NewIterationTerminationCondition(2000)
	result, err := planner.Solve(context.Background(), []motionplan.State{Vector{0, 0}}, goal, tc)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, result, test.ShouldNotBeNil)
	test.That(t, result.Approximate, test.ShouldBeFalse)
	test.That(t, float64(result.Cost), test.ShouldBeLessThanOrEqualTo, 1.45)
}

func TestApproximateFallbackWhenGoalUnreachable(t *testing.T) {
	space := NewSpaceInformation([]float64{0, 0}, []float64{10, 10}, 0.1, rand.New(rand.NewSource(1)))
	// wall across the middle blocks any path to the far corner
	space.SetObstacle(func(v Vector) bool {
		return v[0] > 4.9 && v[0] < 5.1
	})
	opt := motionplan.NewDefaultOptions()
	opt.UseTRRT = false
	planner := newTestPlanner(space, opt)

	goal := NewRegionGoal(space, Vector{9, 9}, 0.3, 1)
	tc := motionplan.NewIterationTerminationCondition(500)
	result, err := planner.Solve(context.Background(), []motionplan.State{Vector{0, 0}}, goal, tc)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, result, test.ShouldNotBeNil)
	test.That(t, result.Approximate, test.ShouldBeTrue)
}

func TestSameSeedSolvesAreDeterministic(t *testing.T) {
	build := func() *motionplan.SolveResult {
		space := NewSpaceInformation([]float64{0, 0}, []float64{10, 10}, 0.2, rand.New(rand.NewSource(99)))
		opt := motionplan.NewDefaultOptions()
		opt.UseTRRT = false
		planner := newTestPlanner(space, opt)
		goal := NewRegionGoal(space, Vector{8, 8}, 0.5, 1)
		tc := motionplan.NewIterationTerminationCondition(300)
		result, err := planner.Solve(context.Background(), []motionplan.State{Vector{0, 0}}, goal, tc)
		test.That(t, err, test.ShouldBeNil)
		return result
	}

	r1 := build()
	r2 := build()
	test.That(t, r1.Cost, test.ShouldEqual, r2.Cost)
	test.That(t, len(r1.Path), test.ShouldEqual, len(r2.Path))
}

func TestTemperatureAdaptsUnderTRRT(t *testing.T) {
	space := NewSpaceInformation([]float64{0, 0}, []float64{10, 10}, 0.1, rand.New(rand.NewSource(11)))
	opt := motionplan.NewDefaultOptions()
	opt.UseTRRT = true
	opt.MaxStatesFailed = 2
	opt.InitTemperature = 1e-9
	planner := newTestPlanner(space, opt)

	goal := NewRegionGoal(space, Vector{9.5, 9.5}, 0.2, 1)
	tc := motionplan.NewIterationTerminationCondition(1500)
	result, err := planner.Solve(context.Background(), []motionplan.State{Vector{0, 0}}, goal, tc)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, result, test.ShouldNotBeNil)

	prog := planner.Progress()
	test.That(t, prog.Temperature, test.ShouldBeGreaterThan, opt.InitTemperature)
}
