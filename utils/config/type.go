package config

// Sampling 时域与采样配置
// 功能：定义轨迹评价的规划时域与离散化分辨率
type Sampling struct {
	TimeLength      float64 `yaml:"time_length"`      // 规划时域总长（秒）
	TimeResolution  float64 `yaml:"time_resolution"`  // 时间采样分辨率（秒）
	SpaceResolution float64 `yaml:"space_resolution"` // 空间采样分辨率（米）
	DecisionHorizon float64 `yaml:"decision_horizon"` // 横向评估的决策视界（米）
}

// Comfort 舒适性配置
// 功能：定义引导速度合成与纵向舒适代价的舒适性界限
type Comfort struct {
	LonJerkUpperBound  float64 `yaml:"lon_jerk_upper_bound"`  // 纵向加加速度上界（米/秒³）
	LonAccelLowerBound float64 `yaml:"lon_accel_lower_bound"` // 纵向加速度下界（米/秒²，负值，最大制动）
	AccelFactor        float64 `yaml:"accel_factor"`          // 舒适加速度系数，舒适制动=下界×系数
}

// Collision 纵向碰撞代价配置
type Collision struct {
	YieldBuffer    float64 `yaml:"yield_buffer"`    // 让行缓冲（米），加在障碍物占用区间之前
	OvertakeBuffer float64 `yaml:"overtake_buffer"` // 超越缓冲（米），加在障碍物占用区间之后
	CostStd        float64 `yaml:"cost_std"`        // 高斯核标准差σ（米）
}

// Weights 代价项权重配置
// 功能：五项代价的聚合权重与子项权重
type Weights struct {
	Objective          float64 `yaml:"objective"`            // 目标达成代价权重
	LonJerk            float64 `yaml:"lon_jerk"`             // 纵向舒适（加加速度）代价权重
	LonCollision       float64 `yaml:"lon_collision"`        // 纵向碰撞代价权重
	LatOffset          float64 `yaml:"lat_offset"`           // 横向偏移代价权重
	LatComfort         float64 `yaml:"lat_comfort"`          // 横向舒适代价权重
	TargetSpeed        float64 `yaml:"target_speed"`         // 目标代价内部：速度跟踪子项权重
	DistTravelled      float64 `yaml:"dist_travelled"`       // 目标代价内部：行驶距离子项权重
	SameSideOffset     float64 `yaml:"same_side_offset"`     // 横向偏移：与初始偏移同侧的权重
	OppositeSideOffset float64 `yaml:"opposite_side_offset"` // 横向偏移：与初始偏移异侧的权重（抑制越线摆动）
}

// Feasibility 纵向运动学可行性界限
// 功能：默认可行性检查器使用的速度、加速度、加加速度范围
type Feasibility struct {
	SpeedLowerBound float64 `yaml:"speed_lower_bound"` // 速度下界（米/秒）
	SpeedUpperBound float64 `yaml:"speed_upper_bound"` // 速度上界（米/秒）
	AccelLowerBound float64 `yaml:"accel_lower_bound"` // 加速度下界（米/秒²）
	AccelUpperBound float64 `yaml:"accel_upper_bound"` // 加速度上界（米/秒²）
	JerkLowerBound  float64 `yaml:"jerk_lower_bound"`  // 加加速度下界（米/秒³）
	JerkUpperBound  float64 `yaml:"jerk_upper_bound"`  // 加加速度上界（米/秒³）
}

// Evaluator 轨迹评价器配置
// 功能：评价器的全部只读常量，一个规划周期内不变
type Evaluator struct {
	Sampling        Sampling    `yaml:"sampling"`
	Comfort         Comfort     `yaml:"comfort"`
	Collision       Collision   `yaml:"collision"`
	Weights         Weights     `yaml:"weights"`
	Feasibility     Feasibility `yaml:"feasibility"`
	LatOffsetBound  float64     `yaml:"lat_offset_bound"`           // 横向偏移归一化界限（米）
	Epsilon         float64     `yaml:"epsilon"`                    // 比值聚合分母的保护项
	TrackComponents bool        `yaml:"track_components,omitempty"` // 记录分项代价（用于离线权重调参）
}

// Init 初始纵向状态
type Init struct {
	S float64 `yaml:"s"`           // 初始纵向位置（米）
	V float64 `yaml:"v"`           // 初始纵向速度（米/秒）
	A float64 `yaml:"a"`           // 初始纵向加速度（米/秒²）
	L float64 `yaml:"l,omitempty"` // 初始横向偏移（米）
}

// Obstacle 场景中单个障碍物的路径-时间占用描述
// 说明：障碍物尾部位置在[TStart, TEnd]内由SStart线性移动到SEnd，
// 占用区间为[尾部, 尾部+Length]
type Obstacle struct {
	TStart float64 `yaml:"t_start"` // 占用开始时刻（秒）
	TEnd   float64 `yaml:"t_end"`   // 占用结束时刻（秒）
	SStart float64 `yaml:"s_start"` // TStart时刻的尾部位置（米）
	SEnd   float64 `yaml:"s_end"`   // TEnd时刻的尾部位置（米）
	Length float64 `yaml:"length"`  // 障碍物占用长度（米）
}

// Scenario 演示场景配置
// 功能：场景运行器的输入：初始状态、规划目标、障碍物与候选采样规模
type Scenario struct {
	Init        Init       `yaml:"init"`
	CruiseSpeed float64    `yaml:"cruise_speed"`         // 目标巡航速度（米/秒）
	StopPoint   *float64   `yaml:"stop_point,omitempty"` // 停车点位置（米），为空表示无停车要求
	Obstacles   []Obstacle `yaml:"obstacles,omitempty"`  // 障碍物列表
	Seed        uint64     `yaml:"seed"`                 // 采样随机种子
	LonSamples  int        `yaml:"lon_samples"`          // 纵向候选数量
	LatSamples  int        `yaml:"lat_samples"`          // 横向候选数量
}

// Config YAML配置文件的根结构
type Config struct {
	Evaluator Evaluator `yaml:"evaluator"` // 评价器参数
	Scenario  Scenario  `yaml:"scenario"`  // 演示场景
}
