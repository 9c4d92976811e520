package evaluator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wan9hao/apollo/curve"
	"github.com/wan9hao/apollo/evaluator"
	"github.com/wan9hao/apollo/pathtime"
	"github.com/wan9hao/apollo/utils/config"
)

// constSpeedLon 恒速纵向候选
func constSpeedLon(s0, v float64) curve.Curve {
	c := curve.NewConstantAcceleration(s0, v)
	c.AppendSegment(0, 8)
	return c
}

func TestCostsOnPerfectCruise(t *testing.T) {
	// 8秒时域、0.1秒分辨率、恒速10、零加加速度、无障碍物、巡航目标10
	cfg := config.DefaultEvaluator()
	snap := evaluator.NewSnapshot(&cfg, [3]float64{0, 10, 0},
		evaluator.NewCruiseTarget(10), pathtime.NewGraph(nil))
	lon := constSpeedLon(0, 10)

	assert.Zero(t, snap.LonComfortCost(lon))
	assert.Zero(t, snap.LonCollisionCost(lon))
	// 速度跟踪子项为零，只剩距离子项1/(1+80)的加权平均
	w := cfg.Weights
	expected := (1.0 / 81.0) * w.DistTravelled / (w.TargetSpeed + w.DistTravelled)
	assert.InDelta(t, expected, snap.ObjectiveCost(lon), 1e-9)
}

func collisionConfig() config.Evaluator {
	cfg := config.DefaultEvaluator()
	cfg.Collision.YieldBuffer = 0
	cfg.Collision.OvertakeBuffer = 0
	cfg.Collision.CostStd = 2.0
	return cfg
}

func TestLonCollisionCostInsideVsPast(t *testing.T) {
	// 阻塞区间[20,25]覆盖全部时间步，无缓冲，σ=2
	cfg := collisionConfig()
	graph := pathtime.NewGraph([]pathtime.Region{{
		TStart: 0, TEnd: 8,
		LowerStart: 20, LowerEnd: 20,
		UpperStart: 25, UpperEnd: 25,
	}})
	snap := evaluator.NewSnapshot(&cfg, [3]float64{0, 0, 0},
		evaluator.NewCruiseTarget(0), graph)

	inside := snap.LonCollisionCost(constSpeedLon(22, 0))
	past := snap.LonCollisionCost(constSpeedLon(50, 0))

	// 区间内部每个采样点的核值都取最大值1，聚合结果趋近1
	assert.InDelta(t, 1.0, inside, 1e-6)
	assert.Less(t, past, 1e-6)
	assert.Less(t, past, inside)
}

func TestLonCollisionCostMonotonicInDistance(t *testing.T) {
	cfg := collisionConfig()
	graph := pathtime.NewGraph([]pathtime.Region{{
		TStart: 0, TEnd: 8,
		LowerStart: 20, LowerEnd: 20,
		UpperStart: 25, UpperEnd: 25,
	}})
	snap := evaluator.NewSnapshot(&cfg, [3]float64{0, 0, 0},
		evaluator.NewCruiseTarget(0), graph)

	prev := snap.LonCollisionCost(constSpeedLon(26, 0))
	for _, s0 := range []float64{30, 35, 40, 50} {
		cost := snap.LonCollisionCost(constSpeedLon(s0, 0))
		assert.LessOrEqual(t, cost, prev)
		prev = cost
	}
}

func TestLatOffsetCostOppositeSideWeight(t *testing.T) {
	cfg := config.DefaultEvaluator()
	snap := evaluator.NewSnapshot(&cfg, [3]float64{0, 10, 0},
		evaluator.NewCruiseTarget(10), pathtime.NewGraph(nil))
	sValues := []float64{0, 20, 40, 60, 80, 100}

	// 始终与初始偏移同侧的候选：异侧权重不参与，代价与权重配置无关
	sameSide := curve.NewQuinticPolynomial(0.5, 0, 0, 0.5, 0, 0, 100)
	// 早早越过参考线到异侧且异侧幅度更大的候选
	crossing := curve.NewQuinticPolynomial(0.1, 0, 0, -0.9, 0, 0, 100)

	baseSame := snap.LatOffsetCost(sameSide, sValues)
	baseCrossing := snap.LatOffsetCost(crossing, sValues)

	flat := cfg
	flat.Weights.OppositeSideOffset = flat.Weights.SameSideOffset
	flatSnap := evaluator.NewSnapshot(&flat, [3]float64{0, 10, 0},
		evaluator.NewCruiseTarget(10), pathtime.NewGraph(nil))

	// 异侧权重只作用于符号与起点相反的采样点
	assert.InDelta(t, baseSame, flatSnap.LatOffsetCost(sameSide, sValues), 1e-12)
	// 异侧幅度更大时，更重的异侧权重推高聚合比值
	assert.Greater(t, baseCrossing, flatSnap.LatOffsetCost(crossing, sValues))
}

func TestLatComfortCostQuadraticOffset(t *testing.T) {
	cfg := config.DefaultEvaluator()
	snap := evaluator.NewSnapshot(&cfg, [3]float64{0, 10, 0},
		evaluator.NewCruiseTarget(10), pathtime.NewGraph(nil))

	lon := constSpeedLon(0, 10)
	// l(s)=0.01s²：l''恒为0.02，恒速10下横向加速度恒为0.02×10²=2
	lat := curve.NewQuinticPolynomial(0, 0, 0.02, 100, 2, 0.02, 100)

	assert.InDelta(t, 2.0, snap.LatComfortCost(lon, lat), 1e-6)
}
