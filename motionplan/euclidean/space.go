// Package euclidean provides a reference SpaceInformation, Goal, and
// OptimizationObjective over R^n, used only by motionplan's own tests and
// examples. Real harnesses supply their own collaborators (spec §1); this
// package exists so the hard core can be exercised end to end without one.
package euclidean

import (
	"context"
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/ridgeline-robotics/omniplan/motionplan"
)

// Vector is the concrete motionplan.State representation used throughout
// this package: a point in R^n.
type Vector []float64

// SpaceInformation implements motionplan.SpaceInformation over an
// axis-aligned box in R^n, grounded on plannerOptions.go's use of gonum's
// floats package for vector distance arithmetic.
type SpaceInformation struct {
	Lower, Upper []float64
	Resolution   float64
	rng          *rand.Rand
	obstacle     Obstacle
}

// NewSpaceInformation returns a SpaceInformation bounded by [lower, upper]
// in every dimension, checking motion validity by sub-sampling every
// resolution units.
func NewSpaceInformation(lower, upper []float64, resolution float64, rng *rand.Rand) *SpaceInformation {
	if rng == nil {
		//nolint:gosec
		rng = rand.New(rand.NewSource(1))
	}
	return &SpaceInformation{Lower: lower, Upper: upper, Resolution: resolution, rng: rng}
}

func (s *SpaceInformation) AllocState() motionplan.State {
	v := make(Vector, len(s.Lower))
	return v
}

func (s *SpaceInformation) CopyState(dst, src motionplan.State) {
	copy(dst.(Vector), src.(Vector))
}

func (s *SpaceInformation) FreeState(motionplan.State) {}

func (s *SpaceInformation) Distance(a, b motionplan.State) float64 {
	av, bv := a.(Vector), b.(Vector)
	diff := make([]float64, len(av))
	floats.SubTo(diff, av, bv)
	return floats.Norm(diff, 2)
}

// InBounds reports whether v lies within [Lower, Upper].
func (s *SpaceInformation) InBounds(v Vector) bool {
	for i, x := range v {
		if x < s.Lower[i] || x > s.Upper[i] {
			return false
		}
	}
	return true
}

// Obstacle, when set, marks a region of the space as invalid. Left nil, the
// whole box is free space.
type Obstacle func(v Vector) bool

func (s *SpaceInformation) CheckMotion(ctx context.Context, a, b motionplan.State) (bool, error) {
	av, bv := a.(Vector), b.(Vector)
	dist := s.Distance(av, bv)
	if dist == 0 {
		return s.checkState(av), nil
	}
	steps := int(dist/s.Resolution) + 1
	out := make(Vector, len(av))
	for i := 0; i <= steps; i++ {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		default:
		}
		t := float64(i) / float64(steps)
		s.Interpolate(av, bv, t, out)
		if !s.checkState(out) {
			return false, nil
		}
	}
	return true, nil
}

func (s *SpaceInformation) checkState(v Vector) bool {
	if !s.InBounds(v) {
		return false
	}
	if s.obstacle != nil && s.obstacle(v) {
		return false
	}
	return true
}

// SetObstacle installs a validity predicate, mirroring the
// collaborator-construction style of the teacher's option setters
// (plannerOptions.go's SetMetric).
func (s *SpaceInformation) SetObstacle(o Obstacle) {
	s.obstacle = o
}

func (s *SpaceInformation) Interpolate(a, b motionplan.State, t float64, out motionplan.State) {
	av, bv, ov := a.(Vector), b.(Vector), out.(Vector)
	for i := range av {
		ov[i] = av[i] + t*(bv[i]-av[i])
	}
}

func (s *SpaceInformation) HasSymmetricDistance() bool    { return true }
func (s *SpaceInformation) HasSymmetricInterpolate() bool { return true }

func (s *SpaceInformation) MaximumExtent() float64 {
	diff := make([]float64, len(s.Lower))
	floats.SubTo(diff, s.Upper, s.Lower)
	return floats.Norm(diff, 2)
}

func (s *SpaceInformation) Dimension() int { return len(s.Lower) }

func (s *SpaceInformation) Sampler() motionplan.Sampler {
	return &uniformSampler{space: s}
}

type uniformSampler struct {
	space *SpaceInformation
}

func (u *uniformSampler) SampleUniform(out motionplan.State) {
	ov := out.(Vector)
	for i := range ov {
		lo, hi := u.space.Lower[i], u.space.Upper[i]
		ov[i] = lo + u.space.rng.Float64()*(hi-lo)
	}
}
