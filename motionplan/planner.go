package motionplan

import (
	"context"
	"math"
	"math/rand"

	"golang.org/x/exp/slices"

	"github.com/ridgeline-robotics/omniplan/logging"
	"github.com/ridgeline-robotics/omniplan/utils"
)

// eulerE is the base of the natural logarithm, used in the k_rrg = e + e/d
// constant for the k-nearest neighborhood size (spec §4.1 step 3).
const eulerE = math.E

// testStateCount is the number of states averageStateCost samples when
// deriving KConstant's default (spec §4.6).
const testStateCount = 1000

// Progress is a snapshot of solve-loop state, used by the solve loop's
// periodic logging and readable by a harness between Solve calls (spec
// §6.3).
type Progress struct {
	Iterations          int
	CollisionChecks     int
	TreeSize            int
	BestCost            Cost
	HaveExactSolution   bool
	Approximate         bool
	ApproximateDistance float64
	Temperature         float64
}

// SolveResult is returned by Solve on success, including the approximate
// case (spec §4.1(m), §6.3).
type SolveResult struct {
	Path                []State
	Cost                Cost
	Approximate         bool
	ApproximateDistance float64
}

// Planner is the RRT*/T-RRT hard core (spec §2-§5). It depends on its
// collaborators only through the SpaceInformation, Goal, OptimizationObjective,
// and NearestNeighbors interfaces; it never implements configuration-space,
// goal, or cost-functional semantics itself.
type Planner struct {
	si  SpaceInformation
	obj OptimizationObjective
	nn  NearestNeighbors
	opt *Options

	logger logging.Logger
	rng    *rand.Rand

	cc  *costComparator
	tt  *transitionTest
	mec *minExpansionControl

	motions        []*Motion
	goalMotions    map[*Motion]bool
	bestGoalMotion *Motion
	approxMotion   *Motion
	approxDistance float64

	// kCoeff is k_rrg, the multiplier in k(n) = ceil(kCoeff * ln(n+1));
	// always e + e/d (spec §4.1 step 3), computed once in resolveDefaults.
	kCoeff float64

	iterations      int
	collisionChecks int
}

// NewPlanner constructs a Planner over the given collaborators. opt may be
// nil, in which case NewDefaultOptions is used, and logger may be nil, in
// which case a default "motionplan" logger is used. The random source is
// always a fixed-seed one, matching the teacher's habit of defaulting to a
// deterministic seed (NewRRTStarConnectMotionPlanner); NewPlannerWithSeed
// lets callers supply their own.
func NewPlanner(si SpaceInformation, obj OptimizationObjective, nn NearestNeighbors, opt *Options, logger logging.Logger) *Planner {
	return NewPlannerWithSeed(si, obj, nn, opt, logger, nil)
}

// NewPlannerWithSeed is NewPlanner with an explicit random source, for
// reproducible tests (spec's Testable Property P7, same-seed determinism).
// nil opt and logger are defaulted as in NewPlanner; a nil rng is replaced
// by NewPlanner's fixed-seed source.
func NewPlannerWithSeed(si SpaceInformation, obj OptimizationObjective, nn NearestNeighbors, opt *Options, logger logging.Logger, rng *rand.Rand) *Planner {
	if opt == nil {
		opt = NewDefaultOptions()
	}
	if logger == nil {
		logger = logging.NewLogger("motionplan")
	}
	if rng == nil {
		//nolint:gosec
		rng = rand.New(rand.NewSource(1))
	}
	p := &Planner{
		si:     si,
		obj:    obj,
		nn:     nn,
		opt:    opt,
		logger: logger,
		rng:    rng,
	}
	p.cc = newCostComparator(obj)
	return p
}

// Clear empties the nearest-neighbor index and discards the tree and all
// solve-loop bookkeeping. The other collaborators, the random source, and
// any Options fields filled in by a previous Solve's resolveDefaults are
// left as they are.
func (p *Planner) Clear() {
	p.nn.Clear()
	p.motions = nil
	p.goalMotions = nil
	p.bestGoalMotion = nil
	p.approxMotion = nil
	p.approxDistance = 0
	p.tt = nil
	p.mec = nil
	p.iterations = 0
	p.collisionChecks = 0
}

// Progress returns a snapshot of the current solve-loop state. Safe to call
// between Solve invocations; not safe to call concurrently with an
// in-progress Solve (spec §5: no concurrent collaborator/planner calls).
func (p *Planner) Progress() Progress {
	prog := Progress{
		Iterations:          p.iterations,
		CollisionChecks:     p.collisionChecks,
		TreeSize:            len(p.motions),
		HaveExactSolution:   p.bestGoalMotion != nil,
		Approximate:         p.bestGoalMotion == nil && p.approxMotion != nil,
		ApproximateDistance: p.approxDistance,
	}
	if p.bestGoalMotion != nil {
		prog.BestCost = p.bestGoalMotion.cost
	}
	if p.tt != nil {
		prog.Temperature = p.tt.temperature
	}
	return prog
}

// PlannerData exports the current tree shape (spec §6.4).
func (p *Planner) PlannerData() *PlannerData {
	return exportPlannerData(p.motions, p.goalMotions, p.iterations, p.collisionChecks)
}

// resolveDefaults fills in the zero-valued Options fields that depend on
// the concrete planning problem (spec §4.6): Range and FrontierThreshold
// scale off MaximumExtent, and KConstant (the transition test's Metropolis
// scale, spec §4.2) defaults to the objective's AverageStateCost. The
// k-nearest neighborhood coefficient k_rrg = e + e/d (spec §4.1 step 3) is
// always computed from Dimension; it is never configurable via Options.
func (p *Planner) resolveDefaults() {
	extent := p.si.MaximumExtent()
	if p.opt.Range <= 0 {
		p.opt.Range = extent * 0.05
	}
	if p.opt.FrontierThreshold <= 0 {
		p.opt.FrontierThreshold = extent * 0.01
	}
	if p.opt.KConstant <= 0 {
		p.opt.KConstant = float64(p.obj.AverageStateCost(testStateCount))
	}

	d := float64(p.si.Dimension())
	if d <= 0 {
		d = 1
	}
	p.kCoeff = eulerE + eulerE/d
}

// neighborhoodSize returns k(n) = ceil(kCoeff * ln(n+1)), never less than 1
// nor more than the number of motions currently in the tree (spec §4.1).
func (p *Planner) neighborhoodSize() int {
	n := len(p.motions)
	k := int(math.Ceil(p.kCoeff * math.Log(float64(n+1))))
	k = utils.MaxInt(k, 1)
	k = utils.MinInt(k, n)
	return k
}

// Solve grows the tree from starts until the best goal motion's cost meets
// the objective's sufficiency threshold, ctx is done, or tc fires (spec
// §4.1); merely reaching the goal does not stop it. Calling Solve
// again after a prior Solve continues growing the existing tree unless
// Clear was called in between.
func (p *Planner) Solve(ctx context.Context, starts []State, goal Goal, tc TerminationCondition) (*SolveResult, error) {
	if len(p.motions) == 0 {
		if len(starts) == 0 {
			return nil, ErrInvalidStart
		}
		for _, s := range starts {
			ok, err := p.si.CheckMotion(ctx, s, s)
			if err != nil {
				return nil, NewCollaboratorFaultError("start validation", err)
			}
			if !ok {
				return nil, ErrInvalidStart
			}
		}
		p.resolveDefaults()
		p.goalMotions = make(map[*Motion]bool)
		if p.opt.UseTRRT {
			p.tt = newTransitionTest(p.opt, p.rng)
			p.mec = newMinExpansionControl(p.opt, p.tt)
		}
		for _, s := range starts {
			root := newRootMotion(s, p.obj)
			p.nn.Add(root)
			p.motions = append(p.motions, root)
			if ok, dist := goal.IsSatisfied(s); ok {
				p.recordGoalMotion(root, dist)
			} else {
				p.recordApproximate(root, dist)
			}
		}
	}

	sampleableGoal, goalIsSampleable := goal.(SampleableGoal)

	out := p.si.AllocState()
	defer p.si.FreeState(out)
	newState := p.si.AllocState()
	defer p.si.FreeState(newState)

	logInterval := p.opt.LoggingInterval

	for !tc.IsSatisfied() {
		if p.bestGoalMotion != nil && p.obj.IsSatisfied(p.bestGoalMotion.cost) {
			break
		}

		select {
		case <-ctx.Done():
			return p.finish()
		default:
		}

		p.sample(sampleableGoal, goalIsSampleable, out)

		// nearest ranks by distance FROM each tree node TO the sample, the
		// same orientation as choose-parent; reset here in case the prior
		// iteration's rewire left the index in the opposite orientation.
		p.setNeighborhoodOrientation(false)
		nearest := p.nn.Nearest(out)
		p.steer(nearest.State, out, newState)

		ok, err := p.si.CheckMotion(ctx, nearest.State, newState)
		p.collisionChecks++
		if err != nil {
			return nil, NewCollaboratorFaultError("motion check", err)
		}
		if !ok {
			p.iterations++
			continue
		}

		parent, incCost, accepted := p.chooseParent(ctx, nearest, newState)
		if !accepted {
			p.iterations++
			continue
		}

		if p.opt.UseTRRT {
			dist := p.si.Distance(parent.State, newState)
			if !p.tt.accept(parent.cost, p.obj.CombineCosts(parent.cost, incCost), dist, p.obj) {
				p.iterations++
				continue
			}
			if !p.mec.admit(dist) {
				p.iterations++
				continue
			}
		}

		snapshot := p.si.AllocState()
		p.si.CopyState(snapshot, newState)
		newMotionState := newMotion(snapshot, parent, incCost, p.obj)
		parent.children = append(parent.children, newMotionState)
		p.nn.Add(newMotionState)
		p.motions = append(p.motions, newMotionState)

		if err := p.rewire(ctx, newMotionState); err != nil {
			return nil, err
		}

		if ok, dist := goal.IsSatisfied(snapshot); ok {
			p.recordGoalMotion(newMotionState, dist)
		} else {
			p.recordApproximate(newMotionState, dist)
		}

		p.iterations++
		if logInterval > 0 && p.iterations%logInterval == 0 {
			prog := p.Progress()
			p.logger.Debugw("solve progress",
				"iterations", prog.Iterations,
				"tree_size", prog.TreeSize,
				"best_cost", float64(prog.BestCost),
				"have_exact", prog.HaveExactSolution,
			)
		}
	}

	return p.finish()
}

// finish converts the planner's current best solution into a SolveResult,
// or ErrPlannerFailed if neither an exact nor an approximate candidate was
// ever recorded (spec §7). Logs at Warn when falling back to an
// approximate solution and at Info when an exact solution was found.
func (p *Planner) finish() (*SolveResult, error) {
	result := p.buildResult()
	if result == nil {
		return nil, ErrPlannerFailed
	}
	if result.Approximate {
		p.logger.Warnw("solve fell back to approximate solution",
			"distance", result.ApproximateDistance,
			"cost", float64(result.Cost),
		)
	} else {
		p.logger.Infow("solve found exact solution",
			"cost", float64(result.Cost),
		)
	}
	return result, nil
}

// sample draws the next candidate configuration into out, biased toward
// the goal region with probability GoalBias when the goal supports direct
// sampling and the goal set holds fewer motions than its MaxSampleCount
// (spec §4.1(a)).
func (p *Planner) sample(goal SampleableGoal, goalIsSampleable bool, out State) {
	if goalIsSampleable && goal.CanSample() && p.rng.Float64() < p.opt.GoalBias &&
		len(p.goalMotions) < goal.MaxSampleCount() {
		goal.SampleGoal(out)
		return
	}
	p.si.Sampler().SampleUniform(out)
}

// steer writes into out the state Range units from near toward target,
// clamped to target itself if it is already closer than Range (spec
// §4.1(c)).
func (p *Planner) steer(near, target, out State) {
	dist := p.si.Distance(near, target)
	if dist <= p.opt.Range {
		p.si.CopyState(out, target)
		return
	}
	p.si.Interpolate(near, target, p.opt.Range/dist, out)
}

// setNeighborhoodOrientation swaps the nearest-neighbor index's ranking
// distance function to match the query orientation choose-parent and
// rewire each require when the space's distance function is asymmetric
// (spec §4.1(g)/(j)): choose-parent ranks by distance FROM each candidate
// TO the new motion, rewire ranks by distance FROM the new motion TO each
// candidate. Symmetric spaces need no swap, since both orientations agree.
func (p *Planner) setNeighborhoodOrientation(forRewire bool) {
	if p.si.HasSymmetricDistance() {
		return
	}
	if forRewire {
		p.nn.SetDistanceFunction(func(a, b State) float64 { return p.si.Distance(b, a) })
	} else {
		p.nn.SetDistanceFunction(func(a, b State) float64 { return p.si.Distance(a, b) })
	}
}

// chooseParent selects, among the k-nearest existing motions sorted by the
// total cost newState would have under each, the first whose edge to
// newState passes the motion check. nearest is the sole
// candidate if the neighborhood query returns nothing. With DelayCC every
// candidate is checked in that order; without it nearest, already checked
// by the caller, is accepted without a second check.
func (p *Planner) chooseParent(ctx context.Context, nearest *Motion, newState State) (*Motion, Cost, bool) {
	k := p.neighborhoodSize()
	p.setNeighborhoodOrientation(false)
	neighbors := p.nn.NearestK(newState, k)
	if len(neighbors) == 0 {
		neighbors = []*Motion{nearest}
	}

	candidates := make([]parentCandidate, len(neighbors))
	for i, n := range neighbors {
		candidates[i].m = n
		candidates[i].incCost = p.obj.MotionCost(n.State, newState)
	}

	// sort ascending by total cost were this candidate chosen as parent
	sortCandidatesByTotalCost(candidates, p.obj, p.cc)

	if p.opt.DelayCC {
		for _, c := range candidates {
			ok, err := p.si.CheckMotion(ctx, c.m.State, newState)
			p.collisionChecks++
			if err != nil {
				continue
			}
			if ok {
				return c.m, c.incCost, true
			}
		}
		return nil, 0, false
	}

	// eager: candidates are already known-connectable via nearest's own
	// check when c.m == nearest; for other neighbors we must still verify.
	for _, c := range candidates {
		if c.m == nearest {
			return c.m, c.incCost, true
		}
		ok, err := p.si.CheckMotion(ctx, c.m.State, newState)
		p.collisionChecks++
		if err == nil && ok {
			return c.m, c.incCost, true
		}
	}
	return nil, 0, false
}

type parentCandidate struct {
	m       *Motion
	incCost Cost
}

func sortCandidatesByTotalCost(candidates []parentCandidate, obj OptimizationObjective, cc *costComparator) {
	slices.SortFunc(candidates, func(a, b parentCandidate) int {
		totalA := obj.CombineCosts(a.m.cost, a.incCost)
		totalB := obj.CombineCosts(b.m.cost, b.incCost)
		switch {
		case cc.betterCost(totalA, totalB):
			return -1
		case cc.betterCost(totalB, totalA):
			return 1
		default:
			return 0
		}
	})
}

// rewire re-parents any neighbor of newMotion that would become cheaper by
// routing through newMotion instead of its current parent (spec §4.1(k)).
func (p *Planner) rewire(ctx context.Context, newMotion *Motion) error {
	k := p.neighborhoodSize()
	p.setNeighborhoodOrientation(true)
	neighbors := p.nn.NearestK(newMotion.State, k)
	for _, n := range neighbors {
		if n == newMotion || n.parent == nil {
			continue
		}
		incCost := p.obj.MotionCost(newMotion.State, n.State)
		candidateCost := p.obj.CombineCosts(newMotion.cost, incCost)
		if !p.cc.betterCost(candidateCost, n.cost) {
			continue
		}
		ok, err := p.si.CheckMotion(ctx, newMotion.State, n.State)
		p.collisionChecks++
		if err != nil {
			return NewCollaboratorFaultError("rewire motion check", err)
		}
		if ok {
			n.rewireTo(newMotion, incCost, p.obj)
		}
	}
	return nil
}

func (p *Planner) recordGoalMotion(m *Motion, dist float64) {
	p.goalMotions[m] = true
	if p.bestGoalMotion == nil || p.cc.betterCost(m.cost, p.bestGoalMotion.cost) {
		p.bestGoalMotion = m
	}
	p.recordApproximate(m, dist)
}

func (p *Planner) recordApproximate(m *Motion, dist float64) {
	if p.approxMotion == nil || dist < p.approxDistance {
		p.approxMotion = m
		p.approxDistance = dist
	}
}

func (p *Planner) buildResult() *SolveResult {
	if p.bestGoalMotion != nil {
		return &SolveResult{
			Path: pathToRoot(p.bestGoalMotion),
			Cost: p.bestGoalMotion.cost,
		}
	}
	if p.approxMotion != nil {
		return &SolveResult{
			Path:                pathToRoot(p.approxMotion),
			Cost:                p.approxMotion.cost,
			Approximate:         true,
			ApproximateDistance: p.approxDistance,
		}
	}
	return nil
}
