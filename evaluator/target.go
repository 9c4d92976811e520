package evaluator

// PlanningTarget 规划目标描述
// 功能：描述一个规划周期的目标：目标巡航速度，以及可选的停车点
// 说明：单个评价周期内不可变
type PlanningTarget struct {
	cruiseSpeed float64
	stopPoint   float64
	hasStop     bool
}

// NewCruiseTarget 创建巡航目标（无停车点）
// 参数：cruiseSpeed-目标巡航速度（米/秒）
func NewCruiseTarget(cruiseSpeed float64) PlanningTarget {
	return PlanningTarget{cruiseSpeed: cruiseSpeed}
}

// NewStopTarget 创建带停车点的目标
// 参数：cruiseSpeed-目标巡航速度（米/秒），stopPoint-沿参考线的停车位置（米）
func NewStopTarget(cruiseSpeed, stopPoint float64) PlanningTarget {
	return PlanningTarget{cruiseSpeed: cruiseSpeed, stopPoint: stopPoint, hasStop: true}
}

// CruiseSpeed 目标巡航速度
func (t PlanningTarget) CruiseSpeed() float64 {
	return t.cruiseSpeed
}

// HasStopPoint 是否设置了停车点
func (t PlanningTarget) HasStopPoint() bool {
	return t.hasStop
}

// StopPoint 停车点位置
// 说明：未设置停车点时调用属于编程错误
func (t PlanningTarget) StopPoint() float64 {
	if !t.hasStop {
		log.Panic("evaluator: target has no stop point")
	}
	return t.stopPoint
}
