package config

// DefaultEvaluator 评价器默认参数
// 功能：返回一套经过标定的默认参数，配置文件可覆盖其中任意项
func DefaultEvaluator() Evaluator {
	return Evaluator{
		Sampling: Sampling{
			TimeLength:      8.0,
			TimeResolution:  0.1,
			SpaceResolution: 1.0,
			DecisionHorizon: 200.0,
		},
		Comfort: Comfort{
			LonJerkUpperBound:  2.0,
			LonAccelLowerBound: -4.5,
			AccelFactor:        0.5,
		},
		Collision: Collision{
			YieldBuffer:    1.0,
			OvertakeBuffer: 0.5,
			CostStd:        0.5,
		},
		Weights: Weights{
			Objective:          10.0,
			LonJerk:            1.0,
			LonCollision:       5.0,
			LatOffset:          2.0,
			LatComfort:         10.0,
			TargetSpeed:        1.0,
			DistTravelled:      10.0,
			SameSideOffset:     1.0,
			OppositeSideOffset: 10.0,
		},
		Feasibility: Feasibility{
			SpeedLowerBound: 0.0,
			SpeedUpperBound: 40.0,
			AccelLowerBound: -4.5,
			AccelUpperBound: 4.0,
			JerkLowerBound:  -4.0,
			JerkUpperBound:  2.0,
		},
		LatOffsetBound:  3.0,
		Epsilon:         1e-6,
		TrackComponents: false,
	}
}
