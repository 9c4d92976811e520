package curve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wan9hao/apollo/curve"
)

func TestConstantAccelerationCruise(t *testing.T) {
	c := curve.NewConstantAcceleration(0, 10)
	c.AppendSegment(0, 8)

	assert.Equal(t, 8.0, c.ParamLength())
	assert.InDelta(t, 10.0, c.Evaluate(1, 0), 1e-12)
	assert.InDelta(t, 10.0, c.Evaluate(1, 7.9), 1e-12)
	assert.InDelta(t, 40.0, c.Evaluate(0, 4), 1e-12)
	assert.InDelta(t, 0.0, c.Evaluate(2, 4), 1e-12)
	assert.InDelta(t, 0.0, c.Evaluate(3, 4), 1e-12)

	// beyond the param length the end state is held
	assert.InDelta(t, 80.0, c.Evaluate(0, 9), 1e-12)
	assert.InDelta(t, 10.0, c.Evaluate(1, 9), 1e-12)
}

func TestConstantAccelerationBrakeToStop(t *testing.T) {
	c := curve.NewConstantAcceleration(0, 10)
	c.AppendSegment(-2, 5)
	c.AppendSegment(0, 3)

	assert.Equal(t, 8.0, c.ParamLength())
	assert.InDelta(t, 10.0, c.Evaluate(1, 0), 1e-12)
	assert.InDelta(t, 0.0, c.Evaluate(1, 5), 1e-12)
	assert.InDelta(t, 25.0, c.Evaluate(0, 6), 1e-12)
	assert.InDelta(t, 0.0, c.Evaluate(1, 7.9), 1e-12)
}

func TestConstantAccelerationNoNegativeSpeed(t *testing.T) {
	// braking segment longer than the time needed to stop
	c := curve.NewConstantAcceleration(0, 10)
	c.AppendSegment(-2, 10)

	for tt := 0.0; tt < 10; tt += 0.1 {
		assert.GreaterOrEqual(t, c.Evaluate(1, tt), 0.0)
	}
	assert.InDelta(t, 25.0, c.Evaluate(0, 9), 1e-12)
	assert.InDelta(t, 0.0, c.Evaluate(2, 9), 1e-12)
}

func TestQuarticPolynomialBoundary(t *testing.T) {
	c := curve.NewQuarticPolynomial(1, 2, 0.5, 6, -1, 4)

	assert.Equal(t, 4.0, c.ParamLength())
	assert.InDelta(t, 1.0, c.Evaluate(0, 0), 1e-9)
	assert.InDelta(t, 2.0, c.Evaluate(1, 0), 1e-9)
	assert.InDelta(t, 0.5, c.Evaluate(2, 0), 1e-9)
	assert.InDelta(t, 6.0, c.Evaluate(1, 4), 1e-9)
	assert.InDelta(t, -1.0, c.Evaluate(2, 4), 1e-9)
}

func TestQuinticPolynomialBoundary(t *testing.T) {
	c := curve.NewQuinticPolynomial(0, 10, 0, 40, 0, 0, 8)

	assert.Equal(t, 8.0, c.ParamLength())
	assert.InDelta(t, 0.0, c.Evaluate(0, 0), 1e-9)
	assert.InDelta(t, 10.0, c.Evaluate(1, 0), 1e-9)
	assert.InDelta(t, 0.0, c.Evaluate(2, 0), 1e-9)
	assert.InDelta(t, 40.0, c.Evaluate(0, 8), 1e-9)
	assert.InDelta(t, 0.0, c.Evaluate(1, 8), 1e-9)
	assert.InDelta(t, 0.0, c.Evaluate(2, 8), 1e-9)

	// derivative orders above the degree vanish
	assert.Equal(t, 0.0, c.Evaluate(6, 3))
}

func TestQuinticPolynomialDegenerateToQuadratic(t *testing.T) {
	// 边界条件与二次曲线一致时，五次拟合退化为该二次曲线
	c := curve.NewQuinticPolynomial(0, 0, 0.02, 100, 2, 0.02, 100)

	for s := 0.0; s <= 100; s += 10 {
		assert.InDelta(t, 0.01*s*s, c.Evaluate(0, s), 1e-6)
		assert.InDelta(t, 0.02*s, c.Evaluate(1, s), 1e-6)
		assert.InDelta(t, 0.02, c.Evaluate(2, s), 1e-6)
	}
}
