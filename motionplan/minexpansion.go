package motionplan

// minExpansionControl is the frontier/non-frontier expansion controller
// (spec §4.3). It classifies every candidate edge as a frontier expansion
// (steering distance above frontierThreshold, i.e. pushing into unexplored
// territory) or a non-frontier expansion (a short, already-dense edge), and
// throttles non-frontier growth once it outpaces frontierNodeRatio times
// the frontier count — otherwise the tree wastes effort thickening regions
// it has already covered instead of reaching outward.
type minExpansionControl struct {
	frontierThreshold float64
	frontierNodeRatio float64

	frontierCount    int
	nonFrontierCount int

	// tt is the transition test whose numStatesFailed counter a
	// frontier-ratio rejection biases (spec §4.3), shared rather than
	// duplicated since both exist to serve T-RRT's cost-biased exploration
	// together (spec's Redesign Flags resolution gates them with one
	// switch).
	tt *transitionTest
}

// newMinExpansionControl builds a controller over tt's shared rejection
// counter. Both counters start at 1, per spec §3/§4.3, to guard the
// nonFrontierCount/frontierCount ratio against division by zero.
func newMinExpansionControl(opt *Options, tt *transitionTest) *minExpansionControl {
	return &minExpansionControl{
		frontierThreshold: opt.FrontierThreshold,
		frontierNodeRatio: opt.FrontierNodeRatio,
		frontierCount:     1,
		nonFrontierCount:  1,
		tt:                tt,
	}
}

// admit classifies an edge of the given steering distance and reports
// whether it should be admitted into the tree (spec §4.3). A frontier edge
// (distance beyond frontierThreshold) is always admitted. A non-frontier
// edge is admitted only while the non-frontier-to-frontier ratio stays at
// or below frontierNodeRatio; once it doesn't, the edge is rejected and the
// transition test's failure counter is bumped instead, biasing it toward
// raising temperature.
func (m *minExpansionControl) admit(dist float64) bool {
	if dist > m.frontierThreshold {
		m.frontierCount++
		return true
	}

	if float64(m.nonFrontierCount)/float64(m.frontierCount) > m.frontierNodeRatio {
		m.tt.registerRejection()
		return false
	}
	m.nonFrontierCount++
	return true
}

// reset returns both counters to their initial value of 1. Planner.Clear
// does not call it; it drops the controller and Solve builds a new one.
func (m *minExpansionControl) reset() {
	m.frontierCount = 1
	m.nonFrontierCount = 1
}
