package motionplan

import "context"

// State is an opaque point in the configuration space. The planner never
// inspects a State's contents; it is allocated, copied, interpolated, and
// freed exclusively through SpaceInformation.
type State interface{}

// SpaceInformation is the external collaborator abstracting the
// configuration space: state allocation, distance, interpolation, and
// validity/motion checking. The planner core never implements any of this
// itself (spec §1, §6.1) — it is provided by the harness.
type SpaceInformation interface {
	// AllocState returns a new, unpopulated State owned by the caller.
	AllocState() State

	// CopyState copies src into dst in place.
	CopyState(dst, src State)

	// FreeState releases a State previously returned by AllocState.
	FreeState(s State)

	// Distance returns the configuration-space distance between a and b.
	// Need not be symmetric; see HasSymmetricDistance.
	Distance(a, b State) float64

	// CheckMotion reports whether the straight-line segment between a and b
	// is entirely valid (collision-free and within bounds). May perform
	// internal sub-sampling at the harness's configured resolution.
	CheckMotion(ctx context.Context, a, b State) (bool, error)

	// Interpolate writes into out the state a fraction t ([0,1]) of the way
	// from a to b.
	Interpolate(a, b State, t float64, out State)

	// HasSymmetricDistance reports whether Distance(a,b) == Distance(b,a)
	// for all a, b. Purely an optimization gate (spec §9); never required
	// for correctness.
	HasSymmetricDistance() bool

	// HasSymmetricInterpolate reports whether interpolating from a to b at
	// fraction t is the mirror of interpolating from b to a at 1-t.
	HasSymmetricInterpolate() bool

	// MaximumExtent returns the diameter of the space, used to scale the
	// default frontier threshold (spec §4.6).
	MaximumExtent() float64

	// Dimension returns the number of degrees of freedom, used to compute
	// k_rrg (spec §4.1).
	Dimension() int

	// Sampler returns a new uniform-sampling Sampler over this space.
	Sampler() Sampler
}

// Sampler draws independent, identically distributed configurations from a
// SpaceInformation's valid bounds.
type Sampler interface {
	// SampleUniform writes a uniformly-sampled state into out.
	SampleUniform(out State)
}
