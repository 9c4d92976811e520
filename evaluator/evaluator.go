// 格点轨迹评价器：对纵向×横向候选曲线的笛卡尔积做多目标代价排序
package evaluator

import (
	"git.fiblab.net/general/common/v2/mathutil"
	"github.com/samber/lo"
	"github.com/wan9hao/apollo/curve"
	"github.com/wan9hao/apollo/pathtime"
	"github.com/wan9hao/apollo/utils/config"
	"github.com/wan9hao/apollo/utils/container"
)

// BlockingIntervalProvider 障碍物阻塞区间提供者
// 功能：给定时间窗口与时间步分辨率，返回每个时间步沿路径被预测障碍物
// 占用的区间集合（可能为空）
type BlockingIntervalProvider interface {
	BlockingIntervals(startT, endT, resolution float64) [][]pathtime.Interval
}

// PairCost 候选对的代价记录
// 功能：一个(纵向曲线, 横向曲线)候选对及其聚合代价
// 说明：Components仅在分项记录模式下非nil，内容为
// [目标达成, 纵向舒适, 纵向碰撞, 横向偏移]；横向舒适参与聚合但不记录
type PairCost struct {
	Lon        curve.Curve // 纵向候选曲线s(t)
	Lat        curve.Curve // 横向候选曲线l(s)
	Cost       float64     // 聚合代价
	Components []float64   // 分项代价向量（分项记录模式下有效）
}

// TrajectoryEvaluator 轨迹评价器
// 功能：过滤候选曲线、计算笛卡尔积的代价并维护按代价升序的候选集合
// 说明：构造时完成全部评价，之后的查询只做读取与弹出；集合只出不进。
// 各候选对的代价计算互相独立，评价器内部按确定性顺序串行计算，
// 固定输入下排序结果可复现
type TrajectoryEvaluator struct {
	snapshot *Snapshot
	queue    *container.PriorityQueue[PairCost]
}

// NewTrajectoryEvaluator 创建轨迹评价器并完成全部候选对的评价
// 参数：cfg-评价器配置，initS-初始纵向状态[位置,速度,加速度]，
// target-规划目标，lonCandidates/latCandidates-候选曲线集合，
// provider-阻塞区间提供者，feasible-运动学可行性判定（nil则用默认检查器）
// 算法说明：
//  1. 设置了停车点时，过滤掉时域末端位置越过停车点的纵向候选（会冲过停车点）
//  2. 过滤掉不满足运动学可行性的纵向候选
//  3. 横向候选不做可行性过滤，与存活的纵向候选无条件配对
//  4. 逐对计算聚合代价，批量压入最小堆后一次建堆
func NewTrajectoryEvaluator(
	cfg *config.Evaluator,
	initS [3]float64,
	target PlanningTarget,
	lonCandidates, latCandidates []curve.Curve,
	provider BlockingIntervalProvider,
	feasible FeasibilityChecker,
) *TrajectoryEvaluator {
	if feasible == nil {
		feasible = NewKinematicChecker(cfg)
	}
	e := &TrajectoryEvaluator{
		snapshot: NewSnapshot(cfg, initS, target, provider),
		queue:    container.NewPriorityQueue[PairCost](),
	}

	stopPoint := mathutil.INF
	if target.HasStopPoint() {
		stopPoint = target.StopPoint()
	}
	survivors := lo.Filter(lonCandidates, func(lon curve.Curve, _ int) bool {
		return lon.Evaluate(0, cfg.Sampling.TimeLength) <= stopPoint && feasible(lon)
	})

	for _, lon := range survivors {
		for _, lat := range latCandidates {
			pair := e.snapshot.Evaluate(lon, lat)
			e.queue.Push(pair, pair.Cost)
		}
	}
	e.queue.Heapify()
	log.Debugf("evaluator: %v valid trajectory pairs", e.queue.Len())
	return e
}

// HasMorePairs 是否还有剩余候选对
func (e *TrajectoryEvaluator) HasMorePairs() bool {
	return e.queue.Len() > 0
}

// NumPairs 剩余候选对数量
func (e *TrajectoryEvaluator) NumPairs() int {
	return e.queue.Len()
}

// PopBestPair 弹出并返回当前代价最低的候选对
// 说明：集合为空时调用属于编程错误，立刻中止当前规划周期
func (e *TrajectoryEvaluator) PopBestPair() PairCost {
	if !e.HasMorePairs() {
		log.Panic("evaluator: no more trajectory pairs")
	}
	pair, _ := e.queue.HeapPop()
	return pair
}

// BestCost 查看当前最低聚合代价，不弹出
// 说明：集合为空时调用属于编程错误
func (e *TrajectoryEvaluator) BestCost() float64 {
	if !e.HasMorePairs() {
		log.Panic("evaluator: no more trajectory pairs")
	}
	return e.queue.FirstPriority()
}

// BestComponents 查看当前最优候选对的分项代价向量，不弹出
// 说明：仅在分项记录模式下有效，其余情况调用属于编程错误
func (e *TrajectoryEvaluator) BestComponents() []float64 {
	if !e.snapshot.cfg.TrackComponents {
		log.Panic("evaluator: component tracking is disabled")
	}
	if !e.HasMorePairs() {
		log.Panic("evaluator: no more trajectory pairs")
	}
	return e.queue.First().Components
}
