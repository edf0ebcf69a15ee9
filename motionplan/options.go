package motionplan

import "encoding/json"

// Default parameter values (spec §4.6). Distances are expressed in the
// collaborator's own units; the planner never assumes metres or radians.
const (
	defaultGoalBias          = 0.05
	defaultDelayCC           = true
	defaultMaxStatesFailed   = 10
	defaultTempChangeFactor  = 2.0
	defaultMinTemperature    = 1e-9
	defaultInitTemperature   = 1e-4
	defaultFrontierNodeRatio = 0.1
	defaultLoggingInterval   = 0 // 0 disables periodic progress logs
	defaultUseTRRT           = false
)

// Options holds every tunable parameter of the planner core (spec §6.2).
// Fields left at their zero value after construction are resolved against
// MaximumExtent/Dimension/AverageStateCost at Solve entry (spec §4.6); this
// mirrors rrtStarConnectOptions, whose values are likewise either supplied
// or derived from the planning problem at hand.
type Options struct {
	// Range is the maximum distance, per SpaceInformation.Distance, that a
	// single steer step may travel. Zero means "derive from MaximumExtent".
	Range float64 `json:"range"`

	// GoalBias is the probability that a sample is drawn from the goal
	// region instead of uniformly from the space.
	GoalBias float64 `json:"goal_bias"`

	// DelayCC, when true, defers the motion-validity check on candidate
	// parent edges until after the lowest-cost parent has been selected
	// (spec §4.1(f), choose-parent with delayed collision checking).
	DelayCC bool `json:"delay_collision_checking"`

	// MaxStatesFailed is the number of consecutive transition-test
	// rejections at which the T-RRT temperature is raised; the rejection
	// that brings the count to this value triggers the raise (spec §4.2).
	MaxStatesFailed int `json:"max_states_failed"`

	// TempChangeFactor scales the adaptive temperature on repeated
	// rejection or on acceptance of a worse-cost state (spec §4.2).
	TempChangeFactor float64 `json:"temp_change_factor"`

	// MinTemperature and InitTemperature bound the T-RRT Metropolis
	// temperature.
	MinTemperature  float64 `json:"min_temperature"`
	InitTemperature float64 `json:"init_temperature"`

	// FrontierThreshold is the steering distance, per
	// SpaceInformation.Distance, above which a newly added motion counts as
	// a frontier node (spec §4.3). Zero means "derive from MaximumExtent".
	FrontierThreshold float64 `json:"frontier_threshold"`

	// FrontierNodeRatio is the largest ratio of non-frontier to frontier
	// expansions the min-expansion controller admits further non-frontier
	// expansions at (spec §4.3).
	FrontierNodeRatio float64 `json:"frontier_node_ratio"`

	// KConstant scales the transition test's Metropolis exponent (spec
	// §4.2, p = exp(-slope / (KConstant * temp))). It plays no part in
	// k-nearest neighborhood sizing, which always uses the fixed k_rrg =
	// e + e/d (spec §4.1 step 3) and is not configurable. Zero means
	// "derive from the objective's AverageStateCost" (spec §4.6).
	KConstant float64 `json:"k_constant"`

	// UseTRRT switches the cost-biased transition test and frontier-ratio
	// min-expansion control on or off; disabling it degenerates the
	// planner to plain k-nearest RRT* (spec's Redesign Flags resolution).
	UseTRRT bool `json:"use_t_rrt"`

	// LoggingInterval is the solve-loop iteration period of progress log
	// lines: a line is logged when an iteration that adds a motion ends on
	// a multiple of it, so iterations rejected on a multiple log nothing.
	// Zero disables periodic logging.
	LoggingInterval int `json:"logging_interval"`

	extra map[string]interface{}
}

// NewDefaultOptions returns an Options populated with the spec's defaults.
// Range, FrontierThreshold, and KConstant are left zero, to be resolved
// against the SpaceInformation/OptimizationObjective at Solve entry.
func NewDefaultOptions() *Options {
	return &Options{
		GoalBias:          defaultGoalBias,
		DelayCC:           defaultDelayCC,
		MaxStatesFailed:   defaultMaxStatesFailed,
		TempChangeFactor:  defaultTempChangeFactor,
		MinTemperature:    defaultMinTemperature,
		InitTemperature:   defaultInitTemperature,
		FrontierNodeRatio: defaultFrontierNodeRatio,
		UseTRRT:           defaultUseTRRT,
		LoggingInterval:   defaultLoggingInterval,
	}
}

// ApplyOverrides merges extra, a loosely-typed map as would arrive from a
// harness's configuration layer, onto o by round-tripping it through JSON.
// Unknown keys are ignored; keys matching a json tag above overwrite the
// corresponding field. Grounded on newRRTStarConnectOptions's
// marshal/unmarshal pattern for merging a map[string]interface{} onto a
// typed options struct.
func (o *Options) ApplyOverrides(extra map[string]interface{}) error {
	if len(extra) == 0 {
		return nil
	}
	jsonString, err := json.Marshal(extra)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(jsonString, o); err != nil {
		return err
	}
	o.extra = extra
	return nil
}
