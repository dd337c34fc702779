package alpha

/*
收益/成本/风险模型由外部提供，引擎只消费以下契约。
*/
type RevenueModel interface {
	// ForecastRevenue 对目标权重的预期收益
	ForecastRevenue(target Weights) float64
	// MakeForecast 逐标的原始预测值，用于因子值加权
	MakeForecast() Weights
}

type CostModel interface {
	CalcCost(last, target Weights) float64
}

type RiskModel interface {
	CalcRisk(target Weights) float64
}

// StockSelector 选股器：返回允许持仓的标的集合
type StockSelector interface {
	GetSelection() map[string]bool
}

/*
NetRevenueUtil 净收益效用：util = revenue - costCoef*cost - riskCoef*risk。
系数默认1.0，保持可配置。未提供的模型按0贡献处理。
*/
type NetRevenueUtil struct {
	Revenue  RevenueModel
	Cost     CostModel
	Risk     RiskModel
	CostCoef float64
	RiskCoef float64
	// LastWeights 当前持仓对应的上期权重，供成本模型使用
	LastWeights func() Weights
}

func NewNetRevenueUtil(revenue RevenueModel, cost CostModel, risk RiskModel, last func() Weights) *NetRevenueUtil {
	return &NetRevenueUtil{
		Revenue:     revenue,
		Cost:        cost,
		Risk:        risk,
		CostCoef:    1.0,
		RiskCoef:    1.0,
		LastWeights: last,
	}
}

func (u *NetRevenueUtil) Eval(target Weights) float64 {
	var revenue, cost, risk float64
	if u.Revenue != nil {
		revenue = u.Revenue.ForecastRevenue(target)
	}
	if u.Cost != nil {
		var last Weights
		if u.LastWeights != nil {
			last = u.LastWeights()
		}
		cost = u.Cost.CalcCost(last, target)
	}
	if u.Risk != nil {
		risk = u.Risk.CalcRisk(target)
	}
	return revenue - u.CostCoef*cost - u.RiskCoef*risk
}
