// 路径-时间障碍占用表，由上游障碍物预测映射构建，对本核心只读
package pathtime

import (
	"math"

	"github.com/samber/lo"
)

// Interval 纵向占用区间
// 功能：表示某一时刻沿参考线被障碍物占用的[s下界, s上界]范围
type Interval struct {
	Lower float64 // 区间下界（米）
	Upper float64 // 区间上界（米）
}

// Region 单个障碍物的路径-时间占用区域
// 功能：以梯形近似描述障碍物在[TStart, TEnd]内沿s的占用范围，
// 上下界随时间线性插值（匀速障碍物的ST图投影即为梯形）
type Region struct {
	TStart     float64 // 占用开始时刻（秒）
	TEnd       float64 // 占用结束时刻（秒）
	LowerStart float64 // TStart时刻的s下界
	LowerEnd   float64 // TEnd时刻的s下界
	UpperStart float64 // TStart时刻的s上界
	UpperEnd   float64 // TEnd时刻的s上界
}

// interval 求区域在t时刻的占用区间（线性插值）
func (r Region) interval(t float64) Interval {
	ratio := 0.0
	if r.TEnd > r.TStart {
		ratio = (t - r.TStart) / (r.TEnd - r.TStart)
	}
	return Interval{
		Lower: r.LowerStart + (r.LowerEnd-r.LowerStart)*ratio,
		Upper: r.UpperStart + (r.UpperEnd-r.UpperStart)*ratio,
	}
}

// contains 判断t时刻区域是否处于占用状态
func (r Region) contains(t float64) bool {
	return r.TStart <= t && t <= r.TEnd
}

// Graph 路径-时间占用图
// 功能：保存一个规划周期内全部障碍物占用区域，按离散时间步查询阻塞区间
// 说明：每周期构建一次，构建后只读
type Graph struct {
	regions []Region
}

// NewGraph 由障碍物占用区域构建路径-时间图
func NewGraph(regions []Region) *Graph {
	return &Graph{regions: regions}
}

// BlockingIntervals 查询各离散时间步的阻塞区间
// 功能：在[startT, endT)内以resolution为步长采样，返回每个时间步处于占用
// 状态的全部区间（某一步可能为空）
// 返回：按时间步索引的区间表，长度为采样步数
func (g *Graph) BlockingIntervals(startT, endT, resolution float64) [][]Interval {
	n := int(math.Ceil((endT - startT) / resolution))
	intervals := make([][]Interval, 0, n)
	for i := 0; i < n; i++ {
		t := startT + float64(i)*resolution
		active := lo.Filter(g.regions, func(r Region, _ int) bool {
			return r.contains(t)
		})
		intervals = append(intervals, lo.Map(active, func(r Region, _ int) Interval {
			return r.interval(t)
		}))
	}
	return intervals
}
