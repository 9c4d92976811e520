package evaluator

import (
	"math"

	"github.com/wan9hao/apollo/curve"
	"github.com/wan9hao/apollo/pathtime"
	"github.com/wan9hao/apollo/utils/config"
)

// Snapshot 单个规划周期的只读评价上下文
// 功能：封装五项代价计算所需的全部共享数据：配置常量、引导速度参考序列、
// 障碍物阻塞区间表、时间采样网格
// 说明：构建后不可变，各候选对的代价计算之间不共享可变状态，可按任意顺序
// 或并行计算
type Snapshot struct {
	cfg       *config.Evaluator
	timeGrid  []float64             // [0, 规划时域)上的时间采样点
	refSpeeds []float64             // 引导速度参考序列，与timeGrid对齐
	blocking  [][]pathtime.Interval // 各时间步的障碍物阻塞区间
}

// NewSnapshot 构建评价上下文
// 参数：cfg-评价器配置，initS-初始纵向状态[位置,速度,加速度]，
// target-规划目标，provider-阻塞区间提供者
// 说明：引导速度每周期只计算一次
func NewSnapshot(
	cfg *config.Evaluator,
	initS [3]float64,
	target PlanningTarget,
	provider BlockingIntervalProvider,
) *Snapshot {
	var blocking [][]pathtime.Interval
	if provider != nil {
		blocking = provider.BlockingIntervals(
			0, cfg.Sampling.TimeLength, cfg.Sampling.TimeResolution,
		)
	}
	return &Snapshot{
		cfg:       cfg,
		timeGrid:  sampleGrid(cfg.Sampling.TimeLength, cfg.Sampling.TimeResolution),
		refSpeeds: GuideVelocity(cfg, initS[0], target),
		blocking:  blocking,
	}
}

// ObjectiveCost 目标达成代价
// 功能：衡量候选纵向曲线对引导速度的跟踪失败程度与行驶距离不足程度
// 算法说明：
// 1. 速度子项：各采样点速度偏差的绝对值以t²加权求和，再除以t²权重和
//    （分母加epsilon保护），时间越靠后的偏差权重越大
// 2. 距离子项：1/(1+总行驶距离)，行驶越远该项越小
// 3. 两个子项按配置权重做加权平均（而非直接相加）
func (s *Snapshot) ObjectiveCost(lon curve.Curve) float64 {
	tMax := lon.ParamLength()
	distS := lon.Evaluate(0, tMax) - lon.Evaluate(0, 0)

	speedCostSum := 0.0
	speedWeightSum := 0.0
	for i, refSpeed := range s.refSpeeds {
		t := s.timeGrid[i]
		diff := refSpeed - lon.Evaluate(1, t)
		speedCostSum += t * t * math.Abs(diff)
		speedWeightSum += t * t
	}
	speedCost := speedCostSum / (speedWeightSum + s.cfg.Epsilon)
	distTravelledCost := 1.0 / (1.0 + distS)
	w := s.cfg.Weights
	return (speedCost*w.TargetSpeed + distTravelledCost*w.DistTravelled) /
		(w.TargetSpeed + w.DistTravelled)
}

// LonComfortCost 纵向舒适代价
// 功能：以加加速度衡量纵向曲线的不舒适程度
// 算法说明：按时间分辨率采样加加速度并以配置上界归一化，
// 以(平方和)/(绝对值和+epsilon)聚合——对偶发大尖峰的惩罚重于大量小值，
// 且结果保持尺度有界
func (s *Snapshot) LonComfortCost(lon curve.Curve) float64 {
	costSqrSum := 0.0
	costAbsSum := 0.0
	for _, t := range s.timeGrid {
		jerk := lon.Evaluate(3, t)
		cost := jerk / s.cfg.Comfort.LonJerkUpperBound
		costSqrSum += cost * cost
		costAbsSum += math.Abs(cost)
	}
	return costSqrSum / (costAbsSum + s.cfg.Epsilon)
}

// LonCollisionCost 纵向碰撞代价
// 功能：衡量候选纵向曲线与各时间步障碍物占用区间的冲突风险
// 算法说明：
// 1. 对每个存在阻塞区间的时间步，求候选曲线该时刻的纵向位置
// 2. 位置在区间下界减让行缓冲之前、或上界加超越缓冲之后时，
//    冲突距离取到较近缓冲边界的间隙；落在缓冲区间内时距离为零（最大危险）
// 3. 距离经高斯核exp(-dist²/(2σ²))转为代价（零距离处为1，随间隔平滑衰减），
//    逐障碍物逐时间步累计，按(平方和)/(绝对值和+epsilon)聚合
// 说明：奖励明确领先或明确落后于每个占用窗口的轨迹，惩罚贴近或穿越占用的轨迹
func (s *Snapshot) LonCollisionCost(lon curve.Curve) float64 {
	costSqrSum := 0.0
	costAbsSum := 0.0
	sigma := s.cfg.Collision.CostStd
	for i, intervals := range s.blocking {
		if len(intervals) == 0 {
			continue
		}
		t := float64(i) * s.cfg.Sampling.TimeResolution
		trajS := lon.Evaluate(0, t)
		for _, m := range intervals {
			dist := 0.0
			if trajS < m.Lower-s.cfg.Collision.YieldBuffer {
				dist = m.Lower - s.cfg.Collision.YieldBuffer - trajS
			} else if trajS > m.Upper+s.cfg.Collision.OvertakeBuffer {
				dist = trajS - m.Upper - s.cfg.Collision.OvertakeBuffer
			}
			cost := math.Exp(-dist * dist / (2 * sigma * sigma))
			costSqrSum += cost * cost
			costAbsSum += cost
		}
	}
	return costSqrSum / (costAbsSum + s.cfg.Epsilon)
}

// LatOffsetCost 横向偏移代价
// 功能：惩罚不必要的横向偏移，尤其是越过初始偏移所在一侧的摆动
// 参数：lat-横向候选曲线，sValues-纵向位置采样点
// 算法说明：各采样点的偏移以配置界限归一化；偏移符号与起点偏移同侧时用
// 同侧权重，异侧时用更重的异侧权重（抑制绕参考线振荡）；
// 按(平方和)/(绝对值和+epsilon)聚合
func (s *Snapshot) LatOffsetCost(lat curve.Curve, sValues []float64) float64 {
	latOffsetStart := lat.Evaluate(0, 0)
	costSqrSum := 0.0
	costAbsSum := 0.0
	for _, sv := range sValues {
		latOffset := lat.Evaluate(0, sv)
		cost := latOffset / s.cfg.LatOffsetBound
		if latOffset*latOffsetStart < 0 {
			costSqrSum += cost * cost * s.cfg.Weights.OppositeSideOffset
			costAbsSum += math.Abs(cost) * s.cfg.Weights.OppositeSideOffset
		} else {
			costSqrSum += cost * cost * s.cfg.Weights.SameSideOffset
			costAbsSum += math.Abs(cost) * s.cfg.Weights.SameSideOffset
		}
	}
	return costSqrSum / (costAbsSum + s.cfg.Epsilon)
}

// LatComfortCost 横向舒适代价
// 功能：衡量以当前纵向速度/加速度跟随横向偏移曲线所产生的横向加速度
// 算法说明：cost(t) = l''(s)·ṡ(t)² + l'(s)·s̈(t)，取整个时域上绝对值的
// 最大值（最坏情况而非平均——单个尖峰才是安全相关量）
func (s *Snapshot) LatComfortCost(lon, lat curve.Curve) float64 {
	maxCost := 0.0
	for _, t := range s.timeGrid {
		sv := lon.Evaluate(0, t)
		sDot := lon.Evaluate(1, t)
		sDDot := lon.Evaluate(2, t)
		lPrime := lat.Evaluate(1, sv)
		lPrimePrime := lat.Evaluate(2, sv)
		cost := lPrimePrime*sDot*sDot + lPrime*sDDot
		maxCost = math.Max(maxCost, math.Abs(cost))
	}
	return maxCost
}

// Evaluate 计算一个候选对的聚合代价
// 功能：计算五项代价并按配置权重加权求和；开启分项记录时附带分项向量
// 说明：分项向量为[目标达成, 纵向舒适, 纵向碰撞, 横向偏移]——横向舒适
// 参与聚合但不记录在分项向量中，调参消费方需自行考虑这一不对称
func (s *Snapshot) Evaluate(lon, lat curve.Curve) PairCost {
	objectiveCost := s.ObjectiveCost(lon)
	lonComfortCost := s.LonComfortCost(lon)
	lonCollisionCost := s.LonCollisionCost(lon)

	// 由纵向曲线的实际可达距离决定横向评估视界
	evaluationHorizon := math.Min(
		s.cfg.Sampling.DecisionHorizon,
		lon.Evaluate(0, lon.ParamLength()),
	)
	sValues := sampleGrid(evaluationHorizon, s.cfg.Sampling.SpaceResolution)

	latOffsetCost := s.LatOffsetCost(lat, sValues)
	latComfortCost := s.LatComfortCost(lon, lat)

	w := s.cfg.Weights
	pair := PairCost{
		Lon: lon,
		Lat: lat,
		Cost: objectiveCost*w.Objective +
			lonComfortCost*w.LonJerk +
			lonCollisionCost*w.LonCollision +
			latOffsetCost*w.LatOffset +
			latComfortCost*w.LatComfort,
	}
	if s.cfg.TrackComponents {
		pair.Components = []float64{
			objectiveCost, lonComfortCost, lonCollisionCost, latOffsetCost,
		}
	}
	return pair
}
