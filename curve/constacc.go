package curve

// accSegment 恒定加速度段
// 功能：记录一段恒定加速度运动的起始状态与持续时间
type accSegment struct {
	t0       float64 // 段起始时刻
	s0       float64 // 段起始位置
	v0       float64 // 段起始速度
	a        float64 // 段内恒定加速度
	duration float64 // 段持续时间
}

// ConstantAcceleration 分段恒加速度曲线
// 功能：由若干(加速度, 持续时间)段拼接而成的s(t)曲线
// 说明：用于合成引导速度参考轨迹；段内速度减到零后保持停止，
// 不会产生负速度（刹停后位置保持不变）
type ConstantAcceleration struct {
	segs []accSegment
	endT float64 // 曲线总时长
	endS float64 // 末端位置
	endV float64 // 末端速度
}

// NewConstantAcceleration 创建分段恒加速度曲线
// 参数：s0-初始位置，v0-初始速度
func NewConstantAcceleration(s0, v0 float64) *ConstantAcceleration {
	if v0 < 0 {
		log.Panicf("curve: negative initial speed %v", v0)
	}
	return &ConstantAcceleration{endS: s0, endV: v0}
}

// AppendSegment 追加一段恒加速度运动
// 参数：a-加速度，duration-持续时间
// 算法说明：
// 1. 以当前末端状态为新段的起始状态
// 2. 若段内速度降为零，则末端状态为刹停点（速度置零）
// 3. 否则按匀加速运动公式推进末端状态
func (c *ConstantAcceleration) AppendSegment(a, duration float64) {
	if duration < 0 {
		log.Panicf("curve: negative segment duration %v", duration)
	}
	seg := accSegment{
		t0:       c.endT,
		s0:       c.endS,
		v0:       c.endV,
		a:        a,
		duration: duration,
	}
	c.segs = append(c.segs, seg)
	c.endT += duration
	if a < 0 && seg.v0+a*duration < 0 {
		// 段内刹停
		c.endS = seg.s0 + seg.v0*seg.v0/(2*-a)
		c.endV = 0
	} else {
		c.endS = seg.s0 + seg.v0*duration + 0.5*a*duration*duration
		c.endV = seg.v0 + a*duration
	}
}

// ParamLength 曲线总时长
func (c *ConstantAcceleration) ParamLength() float64 {
	return c.endT
}

// Evaluate 求曲线在t时刻的order阶导数值
// 功能：0阶为位置，1阶为速度，2阶为加速度，3阶为加加速度（恒为零）
// 说明：超出曲线时长时按末端状态保持；段内刹停后按静止处理
func (c *ConstantAcceleration) Evaluate(order int, t float64) float64 {
	if order < 0 || order > 3 {
		log.Panicf("curve: unsupported derivative order %v", order)
	}
	seg, tau, ok := c.locate(t)
	if !ok {
		// 超出末端，保持末端状态
		switch order {
		case 0:
			return c.endS
		case 1:
			return c.endV
		default:
			return 0
		}
	}
	if seg.a < 0 && seg.v0+seg.a*tau < 0 {
		// 已刹停
		switch order {
		case 0:
			return seg.s0 + seg.v0*seg.v0/(2*-seg.a)
		default:
			return 0
		}
	}
	switch order {
	case 0:
		return seg.s0 + seg.v0*tau + 0.5*seg.a*tau*tau
	case 1:
		return seg.v0 + seg.a*tau
	case 2:
		return seg.a
	default:
		return 0
	}
}

// locate 定位t所在的段，返回段及段内局部时间
func (c *ConstantAcceleration) locate(t float64) (accSegment, float64, bool) {
	for _, seg := range c.segs {
		if t < seg.t0+seg.duration {
			return seg, t - seg.t0, true
		}
	}
	return accSegment{}, 0, false
}
