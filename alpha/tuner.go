package alpha

import (
	"github.com/anyongjin/go-bayesopt"
	"github.com/banbox/banalpha/core"
	"github.com/banbox/banexg/errs"
	"github.com/banbox/banexg/log"
	"go.uber.org/zap"
)

/*
CoefTuner 对成本/风险系数做贝叶斯搜索：每组候选系数跑一次
蒙特卡洛权重搜索，以单位系数下的净收益为评分，取最优。
*/
type CoefTuner struct {
	Universe  []string
	Util      *NetRevenueUtil
	Rounds    int // 默认20
	NumTrials int // 每轮mc尝试次数，默认DefMcTrials
	MaxCoef   float64
}

func NewCoefTuner(universe []string, util *NetRevenueUtil) *CoefTuner {
	return &CoefTuner{
		Universe:  universe,
		Util:      util,
		Rounds:    20,
		NumTrials: DefMcTrials,
		MaxCoef:   2.0,
	}
}

func (t *CoefTuner) Run() (float64, float64, float64, *errs.Error) {
	if t.Util == nil {
		return 0, 0, 0, errs.NewMsg(core.ErrBadConfig, "util is required for tuner")
	}
	params := []bayesopt.Param{
		bayesopt.UniformParam{Name: "cost_coef", Min: 0, Max: t.MaxCoef},
		bayesopt.UniformParam{Name: "risk_coef", Min: 0, Max: t.MaxCoef},
	}
	options := []bayesopt.OptimizerOption{
		bayesopt.WithParallel(1),
		bayesopt.WithMinimize(false),
		bayesopt.WithRounds(t.Rounds),
		bayesopt.WithRandomRounds(t.Rounds / 3),
	}
	score := &NetRevenueUtil{
		Revenue: t.Util.Revenue, Cost: t.Util.Cost, Risk: t.Util.Risk,
		CostCoef: 1.0, RiskCoef: 1.0, LastWeights: t.Util.LastWeights,
	}
	opt := bayesopt.New(params, options...)
	best, bestSc, err_ := opt.Optimize(func(m map[bayesopt.Param]float64) float64 {
		cand := &NetRevenueUtil{
			Revenue: t.Util.Revenue, Cost: t.Util.Cost, Risk: t.Util.Risk,
			CostCoef: 1.0, RiskCoef: 1.0, LastWeights: t.Util.LastWeights,
		}
		for k, v := range m {
			switch k.GetName() {
			case "cost_coef":
				cand.CostCoef = v
			case "risk_coef":
				cand.RiskCoef = v
			}
		}
		weights, msg := SearchMC(t.Universe, t.NumTrials, cand.Eval)
		if weights == nil {
			log.Warn("tuner trial no weights", zap.String("msg", msg))
			return -mcSentinel
		}
		return score.Eval(weights)
	})
	if err_ != nil {
		return 0, 0, 0, errs.New(core.ErrRunTime, err_)
	}
	costCoef, riskCoef := 1.0, 1.0
	for k, v := range best {
		switch k.GetName() {
		case "cost_coef":
			costCoef = v
		case "risk_coef":
			riskCoef = v
		}
	}
	log.Info("coef tune done", zap.Float64("cost", costCoef),
		zap.Float64("risk", riskCoef), zap.Float64("score", bestSc))
	return costCoef, riskCoef, bestSc, nil
}
