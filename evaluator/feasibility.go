package evaluator

import (
	"github.com/wan9hao/apollo/curve"
	"github.com/wan9hao/apollo/utils/config"
)

// FeasibilityChecker 纵向运动学可行性判定
// 功能：判断一条纵向候选曲线是否满足运动学约束
// 说明：由外部协作方提供；传入nil时评价器退回到默认检查器
type FeasibilityChecker func(lon curve.Curve) bool

// NewKinematicChecker 创建默认运动学可行性检查器
// 功能：按时间分辨率采样候选曲线，检查速度、加速度、加加速度是否在配置界限内
func NewKinematicChecker(cfg *config.Evaluator) FeasibilityChecker {
	grid := sampleGrid(cfg.Sampling.TimeLength, cfg.Sampling.TimeResolution)
	f := cfg.Feasibility
	return func(lon curve.Curve) bool {
		for _, t := range grid {
			v := lon.Evaluate(1, t)
			if v < f.SpeedLowerBound || v > f.SpeedUpperBound {
				return false
			}
			a := lon.Evaluate(2, t)
			if a < f.AccelLowerBound || a > f.AccelUpperBound {
				return false
			}
			jerk := lon.Evaluate(3, t)
			if jerk < f.JerkLowerBound || jerk > f.JerkUpperBound {
				return false
			}
		}
		return true
	}
}
