package motionplan

import (
	"math/rand"
	"testing"

	"go.viam.com/test"
)

func TestTransitionTestAcceptsImprovingStep(t *testing.T) {
	opt := NewDefaultOptions()
	tt := newTransitionTest(opt, rand.New(rand.NewSource(1)))
	ok := tt.accept(5, 1, 1.0, sumObjective{})
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, tt.numStatesFailed, test.ShouldEqual, 0)
}

func TestTransitionTestRaisesTemperatureAfterRepeatedRejection(t *testing.T) {
	opt := NewDefaultOptions()
	opt.MaxStatesFailed = 3
	opt.KConstant = 1.0
	opt.InitTemperature = 1e-12 // pathologically cold: worsening steps reject
	tt := newTransitionTest(opt, rand.New(rand.NewSource(1)))
	initialTemp := tt.temperature

	for i := 0; i < opt.MaxStatesFailed; i++ {
		tt.accept(1, 100, 1.0, sumObjective{})
	}

	test.That(t, tt.temperature, test.ShouldBeGreaterThan, initialTemp)
	test.That(t, tt.numStatesFailed, test.ShouldEqual, 0)
}

func TestTransitionTestCoolDownClampsAtMinTemperature(t *testing.T) {
	opt := NewDefaultOptions()
	opt.MinTemperature = 0.5
	opt.InitTemperature = 0.6
	opt.TempChangeFactor = 10
	tt := newTransitionTest(opt, rand.New(rand.NewSource(1)))
	tt.coolDown()
	test.That(t, tt.temperature, test.ShouldEqual, opt.MinTemperature)
}
