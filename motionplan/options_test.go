package motionplan

import (
	"testing"

	"go.viam.com/test"
)

func TestNewDefaultOptions(t *testing.T) {
	o := NewDefaultOptions()
	test.That(t, o.GoalBias, test.ShouldEqual, defaultGoalBias)
	test.That(t, o.DelayCC, test.ShouldBeTrue)
	test.That(t, o.UseTRRT, test.ShouldBeFalse)
	test.That(t, o.Range, test.ShouldEqual, 0.0)
	test.That(t, o.KConstant, test.ShouldEqual, 0.0)
}

func TestApplyOverridesMergesKnownFields(t *testing.T) {
	o := NewDefaultOptions()
	err := o.ApplyOverrides(map[string]interface{}{
		"goal_bias":    0.2,
		"use_t_rrt":    true,
		"range":        1.5,
		"unknown_flag": "ignored",
	})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, o.GoalBias, test.ShouldEqual, 0.2)
	test.That(t, o.UseTRRT, test.ShouldBeTrue)
	test.That(t, o.Range, test.ShouldEqual, 1.5)

	// fields not present in the override map are left untouched
	test.That(t, o.MaxStatesFailed, test.ShouldEqual, defaultMaxStatesFailed)
}

func TestApplyOverridesEmptyIsNoop(t *testing.T) {
	o := NewDefaultOptions()
	before := *o
	err := o.ApplyOverrides(nil)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, o.GoalBias, test.ShouldEqual, before.GoalBias)
}
