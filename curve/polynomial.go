package curve

// polynomial 多项式曲线公共实现
// 功能：按系数表示的多项式及其任意阶导数求值
type polynomial struct {
	coef   []float64 // coef[i]为i次项系数
	length float64   // 参数域长度
}

// Evaluate 求多项式在x处的order阶导数值
// 算法说明：对order阶导数采用Horner法求值，i次项的系数乘以下降阶乘i*(i-1)*...*(i-order+1)
func (p *polynomial) Evaluate(order int, x float64) float64 {
	if order < 0 {
		log.Panicf("curve: unsupported derivative order %v", order)
	}
	if order >= len(p.coef) {
		return 0
	}
	r := 0.0
	for i := len(p.coef) - 1; i >= order; i-- {
		f := 1.0
		for k := 0; k < order; k++ {
			f *= float64(i - k)
		}
		r = r*x + p.coef[i]*f
	}
	return r
}

// ParamLength 参数域长度
func (p *polynomial) ParamLength() float64 {
	return p.length
}

// QuarticPolynomial 四次多项式曲线
// 功能：给定起点(x0, dx0, ddx0)与终点一阶、二阶导数(dx1, ddx1)，
// 在参数长度T上拟合的四次多项式，常用于不约束终点位置的纵向巡航候选
type QuarticPolynomial struct {
	polynomial
}

// NewQuarticPolynomial 由边界条件构造四次多项式
func NewQuarticPolynomial(x0, dx0, ddx0, dx1, ddx1, length float64) *QuarticPolynomial {
	if length <= 0 {
		log.Panicf("curve: non-positive param length %v", length)
	}
	t := length
	b0 := dx1 - dx0 - ddx0*t
	b1 := ddx1 - ddx0
	return &QuarticPolynomial{polynomial{
		coef: []float64{
			x0,
			dx0,
			0.5 * ddx0,
			(3*b0 - b1*t) / (3 * t * t),
			(-2*b0 + b1*t) / (4 * t * t * t),
		},
		length: length,
	}}
}

// QuinticPolynomial 五次多项式曲线
// 功能：给定起点(x0, dx0, ddx0)与终点(x1, dx1, ddx1)，在参数长度T上拟合的
// 五次多项式，用于停车纵向候选与横向偏移候选
type QuinticPolynomial struct {
	polynomial
}

// NewQuinticPolynomial 由边界条件构造五次多项式
func NewQuinticPolynomial(x0, dx0, ddx0, x1, dx1, ddx1, length float64) *QuinticPolynomial {
	if length <= 0 {
		log.Panicf("curve: non-positive param length %v", length)
	}
	t := length
	t2 := t * t
	t3 := t2 * t
	b0 := x1 - x0 - dx0*t - 0.5*ddx0*t2
	b1 := dx1 - dx0 - ddx0*t
	b2 := ddx1 - ddx0
	return &QuinticPolynomial{polynomial{
		coef: []float64{
			x0,
			dx0,
			0.5 * ddx0,
			(20*b0 - 8*b1*t + b2*t2) / (2 * t3),
			(-15*b0 + 7*b1*t - b2*t2) / (t3 * t),
			(12*b0 - 6*b1*t + b2*t2) / (2 * t3 * t2),
		},
		length: length,
	}}
}
