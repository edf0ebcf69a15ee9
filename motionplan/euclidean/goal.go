package euclidean

import (
	"github.com/ridgeline-robotics/omniplan/motionplan"
)

// RegionGoal implements motionplan.SampleableGoal as a ball of Radius
// around Center.
type RegionGoal struct {
	Center Vector
	Radius float64

	space      *SpaceInformation
	sampled    int
	maxSamples int
}

// NewRegionGoal returns a RegionGoal that samples Center itself up to
// maxSamples times (there being only one distinguished point to sample in
// this reference implementation, since there is only one distinguished
// point in the goal region to sample).
func NewRegionGoal(space *SpaceInformation, center Vector, radius float64, maxSamples int) *RegionGoal {
	return &RegionGoal{Center: center, Radius: radius, space: space, maxSamples: maxSamples}
}

func (g *RegionGoal) IsSatisfied(s motionplan.State) (bool, float64) {
	d := g.space.Distance(s, g.Center)
	return d <= g.Radius, d
}

func (g *RegionGoal) MaxSampleCount() int { return g.maxSamples }

func (g *RegionGoal) CanSample() bool { return g.sampled < g.maxSamples }

func (g *RegionGoal) SampleGoal(out motionplan.State) {
	g.space.CopyState(out, g.Center)
	g.sampled++
}
