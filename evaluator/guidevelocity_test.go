package evaluator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wan9hao/apollo/evaluator"
	"github.com/wan9hao/apollo/utils/config"
)

func TestGuideVelocityCruise(t *testing.T) {
	cfg := config.DefaultEvaluator()
	ref := evaluator.GuideVelocity(&cfg, 0, evaluator.NewCruiseTarget(10))

	assert.Equal(t, 80, len(ref))
	for _, v := range ref {
		assert.InDelta(t, 10.0, v, 1e-12)
	}
}

func TestGuideVelocityAggressiveStop(t *testing.T) {
	cfg := config.DefaultEvaluator()
	// 5米内从10米/秒刹停：所需减速度-10，远超舒适制动界限-2.25
	ref := evaluator.GuideVelocity(&cfg, 0, evaluator.NewStopTarget(10, 5))

	assert.Equal(t, 80, len(ref))
	assert.InDelta(t, 10.0, ref[0], 1e-12)
	assert.InDelta(t, 0.0, ref[len(ref)-1], 1e-12)
	for _, v := range ref {
		assert.GreaterOrEqual(t, v, 0.0)
	}
}

func TestGuideVelocityComfortableStop(t *testing.T) {
	cfg := config.DefaultEvaluator()
	// 100米的余量允许先巡航再以舒适制动减速
	ref := evaluator.GuideVelocity(&cfg, 0, evaluator.NewStopTarget(10, 100))

	assert.Equal(t, 80, len(ref))
	// 巡航段保持目标速度
	assert.InDelta(t, 10.0, ref[0], 1e-12)
	assert.InDelta(t, 10.0, ref[50], 1e-12)
	// 时域末端已进入减速段
	assert.Less(t, ref[len(ref)-1], 10.0)
	// 速度单调非增
	for i := 1; i < len(ref); i++ {
		assert.LessOrEqual(t, ref[i], ref[i-1]+1e-12)
	}
}

func TestGuideVelocityStandstill(t *testing.T) {
	cfg := config.DefaultEvaluator()
	ref := evaluator.GuideVelocity(&cfg, 10, evaluator.NewStopTarget(0, 10))

	for _, v := range ref {
		assert.InDelta(t, 0.0, v, 1e-12)
	}
}
