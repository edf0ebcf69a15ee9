package motionplan

import "context"

// TerminationCondition is polled by the solve loop at the top of every
// iteration (spec §5). It is the only suspension point in the planner
// core: nothing else blocks, and nothing else is safe to call
// concurrently with Solve. A condition may itself be driven by another
// goroutine (e.g. a wall-clock timer or an operator cancel button) so long
// as IsSatisfied is safe to call from the solve loop's goroutine while that
// happens.
type TerminationCondition interface {
	// IsSatisfied reports whether the planner should stop iterating.
	IsSatisfied() bool
}

// contextTerminationCondition fires once ctx is done, mirroring the
// teacher's habit of threading a context.Context through the planner loop
// and checking ctx.Err() at each step (rrtStarConnect.go's solve loop).
type contextTerminationCondition struct {
	ctx context.Context
}

// NewContextTerminationCondition returns a TerminationCondition satisfied
// exactly when ctx is done.
func NewContextTerminationCondition(ctx context.Context) TerminationCondition {
	return &contextTerminationCondition{ctx: ctx}
}

func (c *contextTerminationCondition) IsSatisfied() bool {
	select {
	case <-c.ctx.Done():
		return true
	default:
		return false
	}
}

// IterationTerminationCondition fires once it has been polled a fixed
// number of times. Useful in tests wanting deterministic, time-independent
// termination. Since the solve loop polls its TerminationCondition exactly
// once per iteration (spec §5), counting polls is counting iterations; no
// separate tick hook is needed.
type IterationTerminationCondition struct {
	Max     int
	elapsed int
}

// NewIterationTerminationCondition returns a TerminationCondition satisfied
// once it has been polled max times.
func NewIterationTerminationCondition(max int) *IterationTerminationCondition {
	return &IterationTerminationCondition{Max: max}
}

func (c *IterationTerminationCondition) IsSatisfied() bool {
	if c.elapsed >= c.Max {
		return true
	}
	c.elapsed++
	return false
}
