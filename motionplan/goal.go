package motionplan

// Goal is the external collaborator abstracting the goal region (spec
// §6.1). The planner only ever asks it whether a given state satisfies the
// goal and, incidentally, how far that state is from being satisfied.
type Goal interface {
	// IsSatisfied reports whether s lies in the goal region. distanceOut is
	// always populated (even when the result is false) so the planner can
	// track the best approximate candidate (spec §4.1(m)).
	IsSatisfied(s State) (ok bool, distanceOut float64)
}

// SampleableGoal is a Goal that can also be sampled directly, letting the
// planner bias expansion toward the goal region (spec §4.1(a)).
type SampleableGoal interface {
	Goal

	// MaxSampleCount bounds goal-biased sampling: the planner draws from
	// the goal region only while its goal set holds fewer motions than
	// this. Goal motions reached by uniform sampling are not capped by it.
	MaxSampleCount() int

	// CanSample reports whether SampleGoal can currently produce a new
	// sample (e.g. false once the goal region is exhausted).
	CanSample() bool

	// SampleGoal writes a goal-region sample into out.
	SampleGoal(out State)
}
