package alpha

import (
	"math"

	"github.com/banbox/banalpha/core"
	"github.com/banbox/banalpha/utils"
	"github.com/banbox/banexg/errs"
	"github.com/banbox/banexg/log"
	"go.uber.org/zap"
)

// Weights 标的→带符号权重
type Weights map[string]float64

func (w Weights) SumAbs() float64 {
	return utils.SumAbs(w)
}

func (w Weights) Clone() Weights {
	res := make(Weights, len(w))
	for k, v := range w {
		res[k] = v
	}
	return res
}

/*
权重生成方法，配置期解析为封闭的枚举，避免运行期字符串分发
*/
const (
	WtEqual = iota + 1
	WtFactorValue
	WtMonteCarlo
)

var WtMethodNames = map[int]string{
	WtEqual:       "equal_weight",
	WtFactorValue: "factor_value_weight",
	WtMonteCarlo:  "mc",
}

func ParseMethod(name string) (int, *errs.Error) {
	for method, text := range WtMethodNames {
		if text == name {
			return method, nil
		}
	}
	return 0, errs.NewMsg(core.ErrUnknownMethod, "unknown pc method: %s", name)
}

/*
Builder 组合构建器。按选定方法生成原始权重，然后统一做
非有限值清零、选股过滤、绝对值归一化。
*/
type Builder struct {
	Method    int
	Universe  []string
	Revenue   RevenueModel
	Cost      CostModel
	Risk      RiskModel
	Selector  StockSelector
	Util      *NetRevenueUtil // mc方法的效用函数，nil时自动组装
	NumTrials int             // mc随机尝试次数，默认5
}

/*
Validate 校验方法与模型的搭配，配置错误直接失败
*/
func (b *Builder) Validate() *errs.Error {
	switch b.Method {
	case WtEqual:
	case WtFactorValue:
		if b.Revenue == nil {
			return errs.NewMsg(core.ErrBadConfig,
				"revenue model is required for factor_value_weight")
		}
	case WtMonteCarlo:
		if b.Revenue == nil && b.Cost == nil && b.Risk == nil {
			return errs.NewMsg(core.ErrBadConfig,
				"at least one model of revenue/cost/risk is required for mc")
		}
	default:
		return errs.NewMsg(core.ErrUnknownMethod, "unknown pc method: %v", b.Method)
	}
	if len(b.Universe) == 0 {
		return errs.NewMsg(core.ErrBadConfig, "universe is empty")
	}
	return nil
}

/*
Build 生成归一化后的目标权重。last为当前持仓对应的上期权重，
仅monte-carlo方法的成本项使用。
归一化后 sum(|w|) 为0或1（1e-8容差内）。
*/
func (b *Builder) Build(last Weights) (Weights, *errs.Error) {
	var raw Weights
	var msg string
	switch b.Method {
	case WtEqual:
		raw, msg = b.equalWeight()
	case WtFactorValue:
		raw, msg = b.factorValueWeight()
	case WtMonteCarlo:
		raw, msg = b.searchMC(last)
	default:
		return nil, errs.NewMsg(core.ErrUnknownMethod, "unknown pc method: %v", b.Method)
	}
	if msg != "" {
		log.Warn("weight generate", zap.String("method", WtMethodNames[b.Method]),
			zap.String("msg", msg))
	}
	if raw == nil {
		return nil, errs.NewMsg(core.ErrNoFeasible, "%s: %s", WtMethodNames[b.Method], msg)
	}
	for k, v := range raw {
		if !utils.IsFinite(v) {
			raw[k] = 0
		}
	}
	if b.Selector != nil {
		selected := b.Selector.GetSelection()
		for k := range raw {
			if !selected[k] {
				raw[k] = 0
			}
		}
	}
	if wSum := raw.SumAbs(); wSum > core.WeightDust {
		for k := range raw {
			raw[k] /= wSum
		}
	}
	return raw, nil
}

func (b *Builder) equalWeight() (Weights, string) {
	res := make(Weights, len(b.Universe))
	for _, symbol := range b.Universe {
		res[symbol] = 1.0
	}
	return res, ""
}

/*
factorValueWeight 用收益模型的原始预测值做权重。最小值为负时
整体加 2*|min| 平移到非负——近似处理，并非通用的纯多头投影。
*/
func (b *Builder) factorValueWeight() (Weights, string) {
	raw := b.Revenue.MakeForecast()
	res := make(Weights, len(raw))
	minVal := math.Inf(1)
	for k, v := range raw {
		if !utils.IsFinite(v) {
			v = 0
		}
		res[k] = v
		if v < minVal {
			minVal = v
		}
	}
	if minVal < 0 {
		delta := 2 * math.Abs(minVal)
		for k := range res {
			res[k] += delta
		}
	}
	return res, ""
}
