package motionplan

import (
	"testing"

	pkgerrors "github.com/pkg/errors"
	"go.viam.com/test"
)

func TestNewCollaboratorFaultErrorWrapsCause(t *testing.T) {
	cause := pkgerrors.New("sampler exploded")
	err := NewCollaboratorFaultError("sampling", cause)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, pkgerrors.Cause(err), test.ShouldEqual, cause)
	test.That(t, err.Error(), test.ShouldContainSubstring, "sampling")
	test.That(t, err.Error(), test.ShouldContainSubstring, "sampler exploded")
}

func TestSentinelErrors(t *testing.T) {
	test.That(t, ErrInvalidStart, test.ShouldNotBeNil)
	test.That(t, ErrPlannerFailed, test.ShouldNotBeNil)
}
