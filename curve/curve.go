// 一维轨迹曲线抽象，纵向曲线为s(t)，横向曲线为l(s)
package curve

// Curve 一维参数曲线
// 功能：描述一条标量参数曲线，支持求值与求导
// 说明：纵向候选曲线要求支持0~3阶导数（位置、速度、加速度、加加速度），
// 横向候选曲线要求支持0~2阶导数（偏移、斜率、曲率变化率）
type Curve interface {
	// Evaluate 求曲线在param处的order阶导数值，order=0表示函数值本身
	Evaluate(order int, param float64) float64
	// ParamLength 曲线的有效参数域长度
	ParamLength() float64
}
