package main

import (
	"flag"
	"math"
	"os"

	easy "git.fiblab.net/utils/logrus-easy-formatter"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"github.com/wan9hao/apollo/curve"
	"github.com/wan9hao/apollo/evaluator"
	"github.com/wan9hao/apollo/pathtime"
	"github.com/wan9hao/apollo/utils/config"
	"github.com/wan9hao/apollo/utils/randengine"
)

var (
	// 配置文件路径
	configPath = flag.String("config", "", "config file path")
	// 输出排名前几的候选对
	topK = flag.Int("top", 5, "number of best-ranked trajectory pairs to print")

	// log
	logLevels = map[string]logrus.Level{
		"trace":    logrus.TraceLevel,
		"debug":    logrus.DebugLevel,
		"info":     logrus.InfoLevel,
		"warn":     logrus.WarnLevel,
		"error":    logrus.ErrorLevel,
		"critical": logrus.FatalLevel,
		"off":      logrus.PanicLevel,
	}
	logLevel = flag.String("log.level", "info", "日志级别（可选项：trace debug info warn error critical off）")

	log = logrus.WithField("module", "lattice")
)

func main() {
	flag.Parse()
	logrus.SetFormatter(&easy.Formatter{
		TimestampFormat: "2006-01-02 15:04:05.0000",
		LogFormat:       "[%module%] [%time%] [%lvl%] %msg%\n",
	})
	// log: 运行时才修改
	if level, ok := logLevels[*logLevel]; ok {
		logrus.SetLevel(level)
	} else {
		log.Panicf("log.level must be one of %v", logLevels)
	}
	// 获取配置，评价器参数在默认值基础上被配置文件覆盖
	c := config.Config{Evaluator: config.DefaultEvaluator()}
	if *configPath == "" {
		log.Panic("config file must be specified")
	}
	file, err := os.ReadFile(*configPath)
	if err != nil {
		log.Panicf("config file load err: %v", err)
	}
	if err := yaml.UnmarshalStrict(file, &c); err != nil {
		log.Panicf("config file load err: %v", err)
	}
	log.Infof("%+v", c)

	sc := c.Scenario
	target := evaluator.NewCruiseTarget(sc.CruiseSpeed)
	if sc.StopPoint != nil {
		target = evaluator.NewStopTarget(sc.CruiseSpeed, *sc.StopPoint)
	}
	graph := pathtime.NewGraph(lo.Map(sc.Obstacles, func(o config.Obstacle, _ int) pathtime.Region {
		return pathtime.Region{
			TStart:     o.TStart,
			TEnd:       o.TEnd,
			LowerStart: o.SStart,
			LowerEnd:   o.SEnd,
			UpperStart: o.SStart + o.Length,
			UpperEnd:   o.SEnd + o.Length,
		}
	}))

	engine := randengine.New(sc.Seed)
	lonCandidates := sampleLonCandidates(&c.Evaluator, sc, engine)
	latCandidates := sampleLatCandidates(&c.Evaluator, sc, engine)

	e := evaluator.NewTrajectoryEvaluator(
		&c.Evaluator,
		[3]float64{sc.Init.S, sc.Init.V, sc.Init.A},
		target,
		lonCandidates, latCandidates,
		graph,
		nil,
	)
	if !e.HasMorePairs() {
		// 合法结局：由上游决定回退行为（例如默认安全轨迹）
		log.Warnf("no feasible trajectory pairs (%v lon x %v lat sampled)",
			len(lonCandidates), len(latCandidates))
		return
	}
	log.Infof("ranked %v trajectory pairs, best cost %.4f", e.NumPairs(), e.BestCost())
	for i := 0; i < *topK && e.HasMorePairs(); i++ {
		pair := e.PopBestPair()
		tEnd := c.Evaluator.Sampling.TimeLength
		sEnd := pair.Lon.Evaluate(0, tEnd)
		log.Infof("#%v cost=%.4f end_s=%.2f end_v=%.2f end_l=%.2f",
			i+1, pair.Cost,
			sEnd,
			pair.Lon.Evaluate(1, tEnd),
			pair.Lat.Evaluate(0, math.Min(sEnd-sc.Init.S, pair.Lat.ParamLength())),
		)
	}
}

// sampleLonCandidates 采样纵向候选曲线
// 功能：演示场景中替代上游格点采样器：末端速度在[0, 1.2×巡航速度]上
// 均匀铺开并加入少量随机扰动的四次多项式巡航候选；设置了停车点时额外
// 加入恰好停在停车点的五次多项式候选
func sampleLonCandidates(cfg *config.Evaluator, sc config.Scenario, e *randengine.Engine) []curve.Curve {
	n := sc.LonSamples
	if n < 2 {
		n = 7
	}
	t := cfg.Sampling.TimeLength
	candidates := make([]curve.Curve, 0, n+1)
	for i := 0; i < n; i++ {
		endV := sc.CruiseSpeed * 1.2 * float64(i) / float64(n-1)
		endV = lo.Clamp(endV+0.2*e.NormFloat64(), 0, cfg.Feasibility.SpeedUpperBound)
		candidates = append(candidates, curve.NewQuarticPolynomial(
			sc.Init.S, sc.Init.V, sc.Init.A, endV, 0, t,
		))
	}
	if sc.StopPoint != nil {
		candidates = append(candidates, curve.NewQuinticPolynomial(
			sc.Init.S, sc.Init.V, sc.Init.A, *sc.StopPoint, 0, 0, t,
		))
	}
	return candidates
}

// sampleLatCandidates 采样横向候选曲线
// 功能：演示场景中替代上游格点采样器：末端偏移在横向界限的±1/2范围内
// 均匀铺开的五次多项式偏移候选，参数域为决策视界
func sampleLatCandidates(cfg *config.Evaluator, sc config.Scenario, e *randengine.Engine) []curve.Curve {
	n := sc.LatSamples
	if n < 2 {
		n = 5
	}
	candidates := make([]curve.Curve, 0, n)
	for i := 0; i < n; i++ {
		endL := 0.5 * cfg.LatOffsetBound * (2*float64(i)/float64(n-1) - 1)
		endL = lo.Clamp(endL+0.05*e.NormFloat64(), -cfg.LatOffsetBound, cfg.LatOffsetBound)
		candidates = append(candidates, curve.NewQuinticPolynomial(
			sc.Init.L, 0, 0, endL, 0, 0, cfg.Sampling.DecisionHorizon,
		))
	}
	return candidates
}
