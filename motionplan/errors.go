package motionplan

import "github.com/pkg/errors"

// ErrInvalidStart is returned by Solve when no valid root state exists at
// solve entry. No planner state is mutated before this is returned.
var ErrInvalidStart = errors.New("invalid start: no valid root state")

// ErrPlannerFailed is returned when the termination condition fires with no
// exact or approximate candidate ever recorded.
var ErrPlannerFailed = errors.New("motion planner failed to find a path")

// NewCollaboratorFaultError wraps an error returned by an external
// collaborator (sampler, distance, cost, or nearest-neighbor index) with the
// planner-loop context in which it occurred. The tree is left consistent;
// Clear remains valid after this is returned.
func NewCollaboratorFaultError(stage string, cause error) error {
	return errors.Wrapf(cause, "collaborator fault during %s", stage)
}
