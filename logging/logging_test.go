package logging

import (
	"testing"

	"go.viam.com/test"
)

func TestSubloggerNaming(t *testing.T) {
	logger, _ := NewObservedTestLogger(t)
	child := logger.Sublogger("planner")
	grandchild := child.Sublogger("transitiontest")

	impl, ok := grandchild.(*impl)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, impl.name, test.ShouldEqual, "planner.transitiontest")
}

func TestObservedLogsCaptureMessages(t *testing.T) {
	logger, observed := NewObservedTestLogger(t)
	logger.Infof("found solution with cost %.2f", 1.41)
	logger.Warnw("falling back to approximate solution", "distance", 0.2)

	entries := observed.All()
	test.That(t, len(entries), test.ShouldEqual, 2)
	test.That(t, entries[0].Message, test.ShouldEqual, "found solution with cost 1.41")
	test.That(t, entries[1].Message, test.ShouldEqual, "falling back to approximate solution")
	test.That(t, entries[1].ContextMap()["distance"], test.ShouldEqual, 0.2)
}
