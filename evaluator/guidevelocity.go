package evaluator

import (
	"github.com/wan9hao/apollo/curve"
	"github.com/wan9hao/apollo/utils/config"
)

// GuideVelocity 合成纵向引导速度参考序列
// 功能：生成整个规划时域上的理想舒适速度样本序列，仅用于目标达成代价的打分，
// 本身不是候选轨迹
// 参数：cfg-评价器配置，initS-初始纵向位置，target-规划目标
// 返回：以时间分辨率采样的速度值序列，覆盖[0, 规划时域)
// 算法说明：
//  1. 无停车点：整个时域保持目标巡航速度
//  2. 有停车点：按匀减速运动学计算从当前速度在剩余距离内恰好停住所需的
//     减速度a_req（剩余距离接近零时用epsilon保护）
//     - 若a_req比舒适制动界限更缓（刹车余量充足）：先以巡航速度继续行驶，
//       再以舒适制动减速，反解巡航时长使减速段恰好结束于停车距离
//     - 否则整个制动段以a_req减速
//  3. 合成的曲线短于规划时域时，以零加速度补齐剩余时域（保持已到达的速度，
//     若已停住则保持零）
func GuideVelocity(cfg *config.Evaluator, initS float64, target PlanningTarget) []float64 {
	comfortA := cfg.Comfort.LonAccelLowerBound * cfg.Comfort.AccelFactor

	cruiseV := target.CruiseSpeed()
	profile := curve.NewConstantAcceleration(initS, cruiseV)

	if !target.HasStopPoint() {
		profile.AppendSegment(0, cfg.Sampling.TimeLength)
	} else if cruiseV < cfg.Epsilon {
		// 已接近静止，保持不动
		profile.AppendSegment(0, cfg.Sampling.TimeLength)
	} else {
		stopA := cfg.Comfort.LonAccelLowerBound
		dist := target.StopPoint() - initS
		if dist > cfg.Epsilon {
			stopA = -cruiseV * cruiseV * 0.5 / dist
		}
		if stopA > comfortA {
			// 刹车余量充足，先巡航后以舒适制动减速
			stopT := cruiseV / (-comfortA)
			stopDist := cruiseV * stopT * 0.5
			cruiseT := (dist - stopDist) / cruiseV
			profile.AppendSegment(0, cruiseT)
			profile.AppendSegment(comfortA, stopT)
		} else {
			// 该距离与速度下无舒适制动可用，全程以所需减速度制动
			stopT := cruiseV / (-stopA)
			profile.AppendSegment(stopA, stopT)
		}
		if profile.ParamLength() < cfg.Sampling.TimeLength {
			profile.AppendSegment(0, cfg.Sampling.TimeLength-profile.ParamLength())
		}
	}

	grid := sampleGrid(cfg.Sampling.TimeLength, cfg.Sampling.TimeResolution)
	refSpeeds := make([]float64, len(grid))
	for i, t := range grid {
		refSpeeds[i] = profile.Evaluate(1, t)
	}
	return refSpeeds
}
